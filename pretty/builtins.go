package pretty

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/teleivo/gopp/doc"
	"github.com/teleivo/gopp/token"
)

// RegisterBuiltins installs the scalar and container printers into reg.
// [Default] has them installed at package init; callers building a private
// registry for isolation call this explicitly.
func RegisterBuiltins(reg *Registry) {
	must(reg.RegisterPredicate(isKind(reflect.Bool), Printer{Func: printBool}))
	must(reg.RegisterPredicate(isIntKind, Printer{Func: printInt}))
	must(reg.RegisterPredicate(isFloatKind, Printer{Func: printFloat}))
	must(reg.RegisterPredicate(isStringKind, Printer{Func: printString}))
	must(reg.RegisterPredicate(isNilable, Printer{Func: printNil}))
	must(reg.RegisterPredicate(isByteSliceKind, Printer{Func: printByteSlice}))
	must(reg.RegisterPredicate(isMapKind, Printer{Func: printMap}))
	must(reg.RegisterPredicate(isSliceOrArrayKind, Printer{Func: printSequence}))
}

func init() {
	RegisterBuiltins(Default)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func isKind(k reflect.Kind) func(v any) bool {
	return func(v any) bool {
		return v != nil && reflect.TypeOf(v).Kind() == k
	}
}

func isIntKind(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloatKind(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isStringKind(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Kind() == reflect.String
}

func isNilable(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func isMapKind(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Map
}

func isSliceOrArrayKind(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

func isByteSliceKind(v any) bool {
	if v == nil {
		return false
	}
	t := reflect.TypeOf(v)
	return t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8
}

// printByteSlice renders a []byte the same way a string is rendered, with
// a `b` prefix annotated separately, matching the reference
// implementation's byte-string handling.
func printByteSlice(v any, ctx *Context) (any, error) {
	b := reflect.ValueOf(v).Bytes()
	d := stringDoc(string(b), ctx)
	return doc.Concat{doc.Annotated{Doc: doc.Text("b"), Annotation: token.StringAffix}, d}, nil
}

func printNil(v any, ctx *Context) (any, error) {
	return BuiltinIdentifier("nil"), nil
}

func printBool(v any, ctx *Context) (any, error) {
	b := reflect.ValueOf(v).Bool()
	s := "false"
	if b {
		s = "true"
	}
	return doc.Annotated{Doc: doc.Text(s), Annotation: token.KeywordConstant}, nil
}

func printInt(v any, ctx *Context) (any, error) {
	rv := reflect.ValueOf(v)
	var s string
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		s = strconv.FormatUint(rv.Uint(), 10)
	default:
		s = strconv.FormatInt(rv.Int(), 10)
	}
	return doc.Annotated{Doc: doc.Text(s), Annotation: token.NumberInt}, nil
}

func printFloat(v any, ctx *Context) (any, error) {
	f := reflect.ValueOf(v).Float()
	s := strconv.FormatFloat(f, 'g', -1, 64)
	return doc.Annotated{Doc: doc.Text(s), Annotation: token.NumberFloat}, nil
}

// printSequence renders a slice or array value as `[elem, elem, …]`,
// truncating to ctx.MaxSeqLen elements with a trailing "...and N more
// elements" comment when the value has more.
func printSequence(v any, ctx *Context) (any, error) {
	rv := reflect.ValueOf(v)
	n := rv.Len()
	shown := n
	truncated := false
	if ctx.MaxSeqLen >= 0 && n > ctx.MaxSeqLen {
		shown = ctx.MaxSeqLen
		truncated = true
	}

	nested := ctx.Nested()
	elementStrategy := Hang
	if n == 1 {
		elementStrategy = Plain
	}
	elements := make([]elementDoc, 0, shown+1)
	for i := 0; i < shown; i++ {
		d, err := Dispatch(rv.Index(i).Interface(), nested.UseMultilineStrategy(elementStrategy))
		if err != nil {
			return nil, err
		}
		elements = append(elements, elementDoc{Doc: d})
	}

	dangle := n == 1 && rv.Kind() == reflect.Array
	forceBreak := false
	if truncated {
		elements = append(elements, elementDoc{Doc: doc.Nil, Comment: fmt.Sprintf("...and %d more elements", n-shown)})
		forceBreak = true
	}

	return SequenceOfDocs(ctx, doc.Text("["), elements, doc.Text("]"), dangle, forceBreak), nil
}

type mapEntry struct {
	key   reflect.Value
	value reflect.Value
}

// printMap renders a map value as `{key: value, …}`, optionally sorting
// keys with a total order that falls back to comparing (type name, value
// string) for keys that are not themselves ordered, matching spec.md
// §4.C's stable-ordering-for-incomparable-pairs rule.
func printMap(v any, ctx *Context) (any, error) {
	rv := reflect.ValueOf(v)
	entries := make([]mapEntry, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		entries = append(entries, mapEntry{key: k, value: rv.MapIndex(k)})
	}

	if ctx.SortMappingKeys {
		sort.Slice(entries, func(i, j int) bool {
			return mapKeyLess(entries[i].key, entries[j].key)
		})
	}

	n := len(entries)
	shown := n
	truncated := false
	if ctx.MaxSeqLen >= 0 && n > ctx.MaxSeqLen {
		shown = ctx.MaxSeqLen
		truncated = true
	}

	nested := ctx.Nested()
	elements := make([]elementDoc, 0, shown+1)
	for i := 0; i < shown; i++ {
		e := entries[i]

		var kd doc.Doc
		var err error
		if e.key.Kind() == reflect.String {
			// Not a nested call on purpose: the key renders under the
			// caller's own depth budget, only with its multiline strategy
			// overridden.
			kd, err = Dispatch(e.key.Interface(), ctx.UseMultilineStrategy(Parens))
		} else {
			kd, err = Dispatch(e.key.Interface(), nested)
		}
		if err != nil {
			return nil, err
		}

		vd, err := Dispatch(e.value.Interface(), nested.UseMultilineStrategy(Indented))
		if err != nil {
			return nil, err
		}
		elements = append(elements, elementDoc{Doc: doc.Concat{kd, doc.Text(": "), vd}})
	}

	forceBreak := false
	if truncated {
		elements = append(elements, elementDoc{Doc: doc.Nil, Comment: fmt.Sprintf("...and %d more elements", n-shown)})
		forceBreak = true
	}

	return SequenceOfDocs(ctx, doc.Text("{"), elements, doc.Text("}"), false, forceBreak), nil
}

func mapKeyLess(a, b reflect.Value) bool {
	if a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.String:
			return a.String() < b.String()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return a.Int() < b.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return a.Uint() < b.Uint()
		case reflect.Float32, reflect.Float64:
			return a.Float() < b.Float()
		}
	}
	return fmt.Sprintf("%s:%v", a.Type(), a.Interface()) < fmt.Sprintf("%s:%v", b.Type(), b.Interface())
}
