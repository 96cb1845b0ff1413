package pretty_test

import (
	"strings"
	"testing"

	"github.com/teleivo/assertive/assert"

	"github.com/teleivo/gopp/pretty"
)

func TestFormatScalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"int", 42, "42"},
		{"negative int", -7, "-7"},
		{"float", 3.5, "3.5"},
		{"nil", nil, "nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := format(t, tt.in, testConfig())
			assert.Equals(t, got, tt.want, "formatting of %v", tt.in)
		})
	}
}

func TestFormatStringQuoting(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", `'hello'`},
		{"prefers single on tie", "no quotes here", `'no quotes here'`},
		{"picks single when double is more frequent", `he said "hi"`, `'he said "hi"'`},
		{"picks double when single is more frequent", `it's a can't`, `"it's a can't"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := format(t, tt.in, testConfig())
			assert.Equals(t, got, tt.want, "quoting of %q", tt.in)
		})
	}
}

// TestTruncation is spec.md §8 property 7: a sequence with N > max_seq_len
// elements renders exactly max_seq_len elements plus a trailing comment
// naming how many were dropped.
func TestTruncation(t *testing.T) {
	cfg := testConfig()
	cfg.MaxSeqLen = 2

	got := format(t, []int{1, 2, 3, 4, 5}, cfg)

	assert.Truef(t, strings.Contains(got, "...and 3 more elements"), "expected truncation comment, got %q", got)
	assert.Falsef(t, strings.Contains(got, "4"), "expected element 4 to be dropped, got %q", got)
}

func TestFormatSlice(t *testing.T) {
	got := format(t, []int{1, 2, 3}, testConfig())
	assert.Equals(t, got, "[1, 2, 3]", "formatting of a short int slice")
}

func TestFormatEmptySlice(t *testing.T) {
	got := format(t, []int{}, testConfig())
	assert.Equals(t, got, "[]", "formatting of an empty slice")
}
