package dealer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// object is a decoded JSON object as produced by encoding/json into an
// interface{}.
type object map[string]interface{}

// lookup walks path through nested objects. A missing key or a JSON null at
// any segment reports found=false. An intermediate value that is present but
// not an object is an error.
func lookup(obj object, path ...string) (interface{}, bool, error) {
	var cur interface{} = map[string]interface{}(obj)

	for i, key := range path {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false, fmt.Errorf("%s is %s, not an object: %w", strings.Join(path[:i], "."), jsonType(cur), ErrWrongType)
		}

		next, ok := m[key]
		if !ok || next == nil {
			return nil, false, nil
		}

		cur = next
	}

	return cur, true, nil
}

// hasKey reports whether the last segment of path is a key of the object the
// rest of path leads to, whatever its value, null included.
func hasKey(obj object, path ...string) (bool, error) {
	parent, found, err := lookup(obj, path[:len(path)-1]...)
	if err != nil || !found {
		return false, err
	}

	m, ok := parent.(map[string]interface{})
	if !ok {
		return false, fmt.Errorf("%s is %s, not an object: %w", strings.Join(path[:len(path)-1], "."), jsonType(parent), ErrWrongType)
	}

	_, ok = m[path[len(path)-1]]
	return ok, nil
}

func stringAt(obj object, path ...string) (string, bool, error) {
	v, found, err := lookup(obj, path...)
	if err != nil || !found {
		return "", found, err
	}

	s, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("%s is %s, not a string: %w", strings.Join(path, "."), jsonType(v), ErrWrongType)
	}

	return s, true, nil
}

func floatAt(obj object, path ...string) (float64, error) {
	v, found, err := lookup(obj, path...)
	if err != nil || !found {
		return 0, err
	}

	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%s is not a representable number: %w", strings.Join(path, "."), err)
		}
		return f, nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("%s is %s, not a number: %w", strings.Join(path, "."), jsonType(v), ErrWrongType)
	}
}

func boolAt(obj object, path ...string) (bool, error) {
	v, found, err := lookup(obj, path...)
	if err != nil || !found {
		return false, err
	}

	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%s is %s, not a boolean: %w", strings.Join(path, "."), jsonType(v), ErrWrongType)
	}

	return b, nil
}

func jsonType(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "a string"
	case float64, json.Number:
		return "a number"
	case bool:
		return "a boolean"
	case []interface{}:
		return "an array"
	case map[string]interface{}:
		return "an object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
