package builtin

import "fmt"

// Config values arrive through YAML decoding, so numbers can surface as
// int, int64, uint64, or float64 depending on the document. These helpers
// normalize lookups.

func stringConfig(config map[string]any, key, fallback string) string {
	if v, ok := config[key].(string); ok {
		return v
	}
	return fallback
}

func boolConfig(config map[string]any, key string, fallback bool) bool {
	if v, ok := config[key].(bool); ok {
		return v
	}
	return fallback
}

func intConfig(config map[string]any, key string, fallback int) int {
	if v, ok := toInt(config[key]); ok {
		return v
	}
	return fallback
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// mustString and mustInt enforce a node's input contract at run time. A
// mismatch aborts the whole chain run, matching the infallible Run contract.

func mustString(nodeName string, v any) string {
	s, ok := v.(string)
	if !ok {
		panic(fmt.Sprintf("node %q expected string input, got %T", nodeName, v))
	}
	return s
}

func mustInt(nodeName string, v any) int {
	n, ok := toInt(v)
	if !ok {
		panic(fmt.Sprintf("node %q expected integer input, got %T", nodeName, v))
	}
	return n
}

func mustSlice(nodeName string, v any) []any {
	s, ok := v.([]any)
	if !ok {
		panic(fmt.Sprintf("node %q expected []any input, got %T", nodeName, v))
	}
	return s
}
