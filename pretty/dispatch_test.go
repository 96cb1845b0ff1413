package pretty_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"

	"github.com/teleivo/gopp/doc"
	"github.com/teleivo/gopp/pretty"
)

type node struct {
	Name string
	Next *node
}

// TestCycleSafety is spec.md §8 property 6: formatting a self-referential
// value terminates and names the cycle root.
func TestCycleSafety(t *testing.T) {
	reg := pretty.NewRegistry()
	pretty.RegisterBuiltins(reg)
	require.NoErrorf(t, reg.RegisterType(reflect.TypeOf(&node{}), pretty.Printer{Func: func(v any, ctx *pretty.Context) (any, error) {
		n := v.(*node)
		nextDoc, err := pretty.Dispatch(n.Next, ctx.Nested())
		if err != nil {
			return nil, err
		}
		return pretty.BuildFuncCall(ctx, pretty.Identifier("node"), []doc.Doc{nextDoc}, nil, false, ""), nil
	}}), "registering *node printer")

	root := &node{Name: "root"}
	root.Next = root

	got := formatWith(t, root, testConfig(), reg)
	assert.Truef(t, strings.Contains(got, "Recursion on"), "expected a recursion placeholder, got %q", got)
}

func TestWarnOncePerMessage(t *testing.T) {
	reg := pretty.NewRegistry()
	pretty.RegisterBuiltins(reg)

	var warnings []string
	reg.WarnFunc = func(msg string) { warnings = append(warnings, msg) }

	require.NoErrorf(t, reg.RegisterType(reflect.TypeOf(0), pretty.Printer{Func: func(v any, ctx *pretty.Context) (any, error) {
		panic("boom")
	}}), "registering panicking int printer")

	formatWith(t, 1, testConfig(), reg)
	formatWith(t, 2, testConfig(), reg)

	assert.Equals(t, len(warnings), 1, "each distinct warning message should only fire once")
}
