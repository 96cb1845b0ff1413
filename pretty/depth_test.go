package pretty_test

import (
	"strings"
	"testing"

	"github.com/teleivo/assertive/assert"

	"github.com/teleivo/gopp/pretty"
)

// TestDepthExhaustedPlaceholder covers spec.md §7's "depth exhausted"
// policy: a value nested past the configured depth renders as a
// single-element TYPE(...) placeholder instead of recursing further.
func TestDepthExhaustedPlaceholder(t *testing.T) {
	cfg := testConfig()
	cfg.Depth = 1

	got := format(t, [][]int{{1, 2}}, cfg)
	assert.Truef(t, strings.Contains(got, "(...)"), "expected a depth placeholder, got %q", got)
}
