package mcp

import (
	"encoding/json"
	"strings"
)

// Argument coercion for MCP tool calls. Clients are loose with types:
// arrays arrive as []any, as JSON-encoded strings, or as comma-separated
// strings, so extraction is tolerant rather than strict.

// stringArg extracts a non-empty string argument.
func stringArg(args map[string]any, key string) (string, bool) {
	v, ok := args[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// stringSliceArg extracts a string-slice argument. Accepted shapes: a
// JSON array, a JSON-encoded array in a string, or a comma-separated
// string. Blank entries are dropped; a missing or empty value yields nil.
func stringSliceArg(args map[string]any, key string) []string {
	switch v := args[key].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return v
	case string:
		return splitKeywords(v)
	default:
		return nil
	}
}

// splitKeywords turns a string form of a keyword list into a slice. A
// JSON-looking string is decoded first; anything else splits on commas.
func splitKeywords(s string) []string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		var decoded []string
		if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
			return decoded
		}
	}
	var out []string
	for _, part := range strings.Split(trimmed, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
