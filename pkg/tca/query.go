package tca

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
)

// SerializeQuery flattens call arguments into query string values.
//
// Rules, observable at the HTTP layer:
//   - nil values are dropped
//   - booleans become lowercase "true"/"false"
//   - strings and numbers become their plain string form
//   - maps, slices, arrays and structs are marshaled to compact JSON and then
//     percent-encoded as a single value under that key
//
// The percent-encoding of JSON values happens before the URL query itself is
// encoded, so JSON-valued parameters are double-encoded on the wire. Deployed
// SDKs for this API share that behavior and server-side captures depend on
// it, so it is preserved here.
func SerializeQuery(params map[string]interface{}) map[string]string {
	serialized := make(map[string]string, len(params))

	for key, value := range params {
		if isNil(value) {
			continue
		}

		switch v := value.(type) {
		case bool:
			serialized[key] = strconv.FormatBool(v)
		case string:
			serialized[key] = v
		case json.Number:
			serialized[key] = v.String()
		default:
			if isStructured(value) {
				raw, err := json.Marshal(value)
				if err != nil {
					// Unmarshalable values degrade to their string form
					// rather than failing the whole request.
					serialized[key] = fmt.Sprint(value)

					continue
				}

				serialized[key] = url.QueryEscape(string(raw))

				continue
			}

			serialized[key] = fmt.Sprint(value)
		}
	}

	return serialized
}

// QueryValues converts serialized parameters into url.Values for the
// transport to encode.
func QueryValues(params map[string]interface{}) url.Values {
	values := url.Values{}
	for key, value := range SerializeQuery(params) {
		values.Set(key, value)
	}

	return values
}

// isNil treats untyped nils and nil pointers, maps and slices alike: none of
// them appear in the serialized query.
func isNil(value interface{}) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// isStructured reports whether value serializes as a JSON object or array.
func isStructured(value interface{}) bool {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return false
		}

		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	default:
		return false
	}
}
