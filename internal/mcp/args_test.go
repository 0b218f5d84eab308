package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for argument coercion:
// - stringArg: present, missing, wrong type, empty
// - stringSliceArg: []any, []string, JSON-encoded string, comma-separated
//   string, blank entries dropped, unusable shapes yield nil

func TestStringArg(t *testing.T) {
	t.Parallel()

	args := map[string]any{"path": "src/main.cpp", "count": 3, "empty": ""}

	v, ok := stringArg(args, "path")
	assert.True(t, ok)
	assert.Equal(t, "src/main.cpp", v)

	_, ok = stringArg(args, "missing")
	assert.False(t, ok)
	_, ok = stringArg(args, "count")
	assert.False(t, ok)
	_, ok = stringArg(args, "empty")
	assert.False(t, ok)
}

func TestStringSliceArg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args map[string]any
		want []string
	}{
		{"any slice", map[string]any{"k": []any{"a", "b"}}, []string{"a", "b"}},
		{"any slice drops blanks", map[string]any{"k": []any{"a", "", 7}}, []string{"a"}},
		{"string slice", map[string]any{"k": []string{"a", "b"}}, []string{"a", "b"}},
		{"json string", map[string]any{"k": `["a", "b"]`}, []string{"a", "b"}},
		{"comma separated", map[string]any{"k": "a, b ,c"}, []string{"a", "b", "c"}},
		{"single name", map[string]any{"k": "factorial"}, []string{"factorial"}},
		{"blank string", map[string]any{"k": "  "}, nil},
		{"missing", map[string]any{}, nil},
		{"wrong type", map[string]any{"k": 42}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stringSliceArg(tt.args, "k"))
		})
	}
}

func TestSplitKeywords_MalformedJSONFallsBackToCommas(t *testing.T) {
	t.Parallel()

	// Looks like JSON but is not: treated as comma-separated text.
	assert.Equal(t, []string{`["a"`, `b]`}, splitKeywords(`["a", b]`))
}
