// Package generator turns an OpenAPI document into the Go operations table
// the SDK dispatches against. Each operation with an operationId becomes one
// entry: path template, HTTP method, and the {param} names that belong in the
// path.
package generator

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/pb33f/libopenapi"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
	"github.com/thecompaniesapi/tca-go/pkg/tca"
)

// NamedOperation pairs an operation name with its descriptor.
type NamedOperation struct {
	Name string
	Op   tca.Operation
}

// Generator extracts operations from an OpenAPI document.
type Generator struct {
	document libopenapi.Document
}

// ParseFile parses an OpenAPI specification file.
func ParseFile(filePath string) (*Generator, error) {
	specBytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading OpenAPI file: %w", err)
	}

	return Parse(specBytes)
}

// Parse parses an OpenAPI specification from memory.
func Parse(specBytes []byte) (*Generator, error) {
	document, err := libopenapi.NewDocument(specBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing OpenAPI document: %w", err)
	}

	return &Generator{document: document}, nil
}

// Operations extracts every operation carrying an operationId, sorted by
// name. Methods outside the SDK's supported set are skipped: the dispatcher
// treats them as a malformed table, so the generator never emits them.
func (g *Generator) Operations() ([]NamedOperation, error) {
	model, errs := g.document.BuildV3Model()
	if errs != nil {
		return nil, fmt.Errorf("building v3 model: %v", errs)
	}

	var operations []NamedOperation

	paths := model.Model.Paths
	if paths == nil || paths.PathItems == nil {
		return operations, nil
	}

	for pair := paths.PathItems.First(); pair != nil; pair = pair.Next() {
		pathTemplate := pair.Key()

		pathItem := pair.Value()
		if pathItem == nil {
			continue
		}

		methods := map[string]*v3.Operation{
			"GET":    pathItem.Get,
			"POST":   pathItem.Post,
			"PUT":    pathItem.Put,
			"PATCH":  pathItem.Patch,
			"DELETE": pathItem.Delete,
		}

		for method, op := range methods {
			if op == nil || op.OperationId == "" {
				continue
			}

			operations = append(operations, NamedOperation{
				Name: op.OperationId,
				Op: tca.Operation{
					Path:       pathTemplate,
					Method:     method,
					PathParams: tca.PathParamNames(pathTemplate),
				},
			})
		}
	}

	sort.Slice(operations, func(i, j int) bool {
		return operations[i].Name < operations[j].Name
	})

	return operations, nil
}

// Emit renders the operations table as a Go source file.
func Emit(pkg string, operations []NamedOperation) ([]byte, error) {
	if len(operations) == 0 {
		return nil, tca.ErrNoOperationsLoaded
	}

	var buf bytes.Buffer

	buf.WriteString("// Code generated by tca-gen from the Companies API OpenAPI document. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	buf.WriteString("// DefaultOperations is the operations table for The Companies API v2.\n")
	buf.WriteString("var DefaultOperations = Operations{\n")

	for _, named := range operations {
		fmt.Fprintf(&buf, "\t%q: {\n", named.Name)

		// Gofmt aligns the field values inside each entry, so the padding
		// depends on whether PathParams is present.
		if len(named.Op.PathParams) > 0 {
			fmt.Fprintf(&buf, "\t\tPath:       %q,\n", named.Op.Path)
			fmt.Fprintf(&buf, "\t\tMethod:     %q,\n", named.Op.Method)
			buf.WriteString("\t\tPathParams: []string{")

			for i, param := range named.Op.PathParams {
				if i > 0 {
					buf.WriteString(", ")
				}

				fmt.Fprintf(&buf, "%q", param)
			}

			buf.WriteString("},\n")
		} else {
			fmt.Fprintf(&buf, "\t\tPath:   %q,\n", named.Op.Path)
			fmt.Fprintf(&buf, "\t\tMethod: %q,\n", named.Op.Method)
		}

		buf.WriteString("\t},\n")
	}

	buf.WriteString("}\n")

	return buf.Bytes(), nil
}

// WriteFile emits the table to a file.
func WriteFile(path, pkg string, operations []NamedOperation) error {
	source, err := Emit(pkg, operations)
	if err != nil {
		return err
	}

	err = os.WriteFile(path, source, 0600)
	if err != nil {
		return fmt.Errorf("writing generated file: %w", err)
	}

	return nil
}
