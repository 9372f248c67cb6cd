package tools

import (
	"fmt"
	"strconv"
	"strings"
)

// Argument readers. JSON decoding hands every number over as float64 and
// orchestrators occasionally pass numerics as strings, so the readers accept
// both. A missing or null argument reads as nil (no constraint); a value of
// the wrong shape is the one condition a tool reports as an error.

func optString(args map[string]any, key string) (*string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("argument %q must be a string", key)
	}
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	return &s, nil
}

func optFloat(args map[string]any, key string) (*float64, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch n := v.(type) {
	case float64:
		return &n, nil
	case int:
		f := float64(n)
		return &f, nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %q must be a number", key)
		}
		return &f, nil
	default:
		return nil, fmt.Errorf("argument %q must be a number", key)
	}
}

func optInt(args map[string]any, key string) (*int, error) {
	f, err := optFloat(args, key)
	if err != nil {
		return nil, fmt.Errorf("argument %q must be an integer", key)
	}
	if f == nil {
		return nil, nil
	}
	i := int(*f)
	if float64(i) != *f {
		return nil, fmt.Errorf("argument %q must be an integer", key)
	}
	return &i, nil
}
