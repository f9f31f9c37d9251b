package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// applyFilter evaluates a JSONPath expression against the JSON form of v and
// returns the result as a string.
func applyFilter(v any, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", fmt.Errorf("empty jsonpath expression")
	}

	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return "", err
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", fmt.Errorf("jsonpath %q: %w", expr, err)
	}
	return stringify(val)
}

func stringify(v any) (string, error) {
	// jsonpath often returns a slice with a single element.
	if arr, ok := v.([]any); ok {
		if len(arr) == 0 {
			return "", fmt.Errorf("no value found")
		}
		if len(arr) == 1 {
			return stringify(arr[0])
		}
		b, err := json.Marshal(arr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch t := v.(type) {
	case nil:
		return "", fmt.Errorf("no value found")
	case string:
		return t, nil
	case float64, bool, int, int64:
		return fmt.Sprint(t), nil
	case map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprint(t), nil
	}
}
