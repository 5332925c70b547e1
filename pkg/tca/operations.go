package tca

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Operation describes how a logical operation name maps onto the HTTP
// surface: a path template with {param} placeholders, an HTTP method, and the
// ordered list of call arguments that belong in the path rather than in the
// query string or body.
type Operation struct {
	Path       string   `json:"path"       yaml:"path"`
	Method     string   `json:"method"     yaml:"method"`
	PathParams []string `json:"pathParams" yaml:"pathParams"`
}

// Operations maps operation names to descriptors. The table is generated from
// the API's OpenAPI document by tca-gen; the dispatcher is polymorphic over
// the whole table and never hardcodes a name.
type Operations map[string]Operation

// SupportedMethods lists the HTTP methods a descriptor may carry. Anything
// else indicates a malformed table, not a runtime error.
var SupportedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// IsSupportedMethod reports whether method is one of SupportedMethods.
func IsSupportedMethod(method string) bool {
	for _, m := range SupportedMethods {
		if method == m {
			return true
		}
	}

	return false
}

// Lookup returns the descriptor registered under name.
func (o Operations) Lookup(name string) (Operation, bool) {
	op, ok := o[name]

	return op, ok
}

// Register adds or replaces a descriptor. It validates the descriptor shape
// so malformed tables fail at registration rather than at call time.
func (o Operations) Register(name string, op Operation) error {
	if name == "" {
		return ErrOperationNameEmpty
	}

	if op.Path == "" {
		return fmt.Errorf("%w: operation %s", ErrOperationPathEmpty, name)
	}

	if !IsSupportedMethod(op.Method) {
		return fmt.Errorf("%w: %s (operation %s)", ErrUnsupportedMethod, op.Method, name)
	}

	o[name] = op

	return nil
}

// Names returns all registered operation names, sorted.
func (o Operations) Names() []string {
	names := make([]string, 0, len(o))
	for name := range o {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Clone returns a shallow copy of the table.
func (o Operations) Clone() Operations {
	out := make(Operations, len(o))
	for name, op := range o {
		out[name] = op
	}

	return out
}

// PathParamNames extracts the {param} placeholder names from a path template,
// in order of appearance.
func PathParamNames(path string) []string {
	var params []string

	rest := path
	for {
		start := strings.Index(rest, "{")
		if start < 0 {
			break
		}

		end := strings.Index(rest[start:], "}")
		if end < 0 {
			break
		}

		params = append(params, rest[start+1:start+end])
		rest = rest[start+end+1:]
	}

	return params
}
