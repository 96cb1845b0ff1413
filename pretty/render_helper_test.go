package pretty_test

import (
	"strings"
	"testing"

	"github.com/teleivo/gopp/layout"
	"github.com/teleivo/gopp/pretty"
	"github.com/teleivo/gopp/sdoc"
)

// format dispatches value against [pretty.Default] and lays it out into a
// plain string, for tests that only care about the final text rather than
// the Doc tree.
func format(t *testing.T, value any, cfg pretty.Config) string {
	t.Helper()
	return formatWith(t, value, cfg, nil)
}

// formatWith is like format but dispatches against reg instead of
// [pretty.Default]; reg == nil also selects [pretty.Default].
func formatWith(t *testing.T, value any, cfg pretty.Config, reg *pretty.Registry) string {
	t.Helper()

	seq, err := pretty.ToSDocs(value, cfg, reg)
	if err != nil {
		t.Fatalf("ToSDocs: %v", err)
	}

	var b strings.Builder
	for s := range seq {
		switch v := s.(type) {
		case sdoc.Str:
			b.WriteString(string(v))
		case sdoc.Line:
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(" ", v.Indent))
		}
	}
	return b.String()
}

func testConfig() pretty.Config {
	cfg := pretty.DefaultConfig()
	cfg.Width = layout.DefaultWidth
	return cfg
}
