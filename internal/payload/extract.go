package payload

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Helpers for navigating raw upstream JSON decoded into map[string]any.
// Every accessor returns a zero value on a missing or mistyped field so that
// projection never fails on partial payloads.

func dig(m map[string]any, path ...string) any {
	var cur any = m
	for _, key := range path {
		node, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur, ok = node[key]
		if !ok {
			return nil
		}
	}
	return cur
}

func digMap(m map[string]any, path ...string) map[string]any {
	if v, ok := dig(m, path...).(map[string]any); ok {
		return v
	}
	return nil
}

func digList(m map[string]any, path ...string) []any {
	if v, ok := dig(m, path...).([]any); ok {
		return v
	}
	return nil
}

func digString(m map[string]any, path ...string) string {
	if v, ok := dig(m, path...).(string); ok {
		return v
	}
	return ""
}

func digBool(m map[string]any, path ...string) bool {
	if v, ok := dig(m, path...).(bool); ok {
		return v
	}
	return false
}

// digFloat accepts the numeric shapes encoding/json can produce plus numbers
// serialized as strings (Moralis returns balances that way).
func digFloat(m map[string]any, path ...string) float64 {
	switch v := dig(m, path...).(type) {
	case float64:
		return v
	case json.Number:
		f, _ := v.Float64()
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
