package pretty

import (
	"fmt"
	"reflect"

	"github.com/teleivo/gopp/doc"
	"github.com/teleivo/gopp/token"
)

var (
	lparen = doc.Text("(")
	rparen = doc.Text(")")
	comma  = doc.Text(",")
	assign = doc.Text("=")
)

// Bracket wraps child between left and right, indenting a soft-broken
// nested region. This is the common shape behind every bracketed
// container printer (sequence, mapping, call).
func Bracket(ctx *Context, left doc.Doc, child doc.Doc, right doc.Doc) doc.Doc {
	return doc.Concat{
		left,
		doc.Nest{Indent: ctx.Indent, Doc: doc.Concat{doc.SoftLine, child}},
		doc.SoftLine,
		right,
	}
}

// Identifier annotates s as a function or type name.
func Identifier(s string) doc.Doc {
	return doc.Annotated{Doc: doc.Text(s), Annotation: token.FunctionName}
}

// BuiltinIdentifier annotates s as the name of a built-in function or type.
func BuiltinIdentifier(s string) doc.Doc {
	return doc.Annotated{Doc: doc.Text(s), Annotation: token.BuiltinName}
}

// KeywordArg annotates s as a keyword argument's parameter name.
func KeywordArg(s string) doc.Doc {
	return doc.Annotated{Doc: doc.Text(s), Annotation: token.VariableName}
}

// QualifiedIdentifier renders rt's name prefixed by its package path, the
// way a constructor call for an unregistered type is named in its
// depth-exhausted or fallback placeholder — the Go analogue of the
// reference implementation's general_identifier, which prefers a
// qualified name (`__module__.__qualname__`) over a bare one when the
// type did not come from a builtin package.
func QualifiedIdentifier(rt reflect.Type) doc.Doc {
	if rt == nil {
		return BuiltinIdentifier("nil")
	}
	name := rt.Name()
	if name == "" {
		name = rt.String()
	}
	if pkg := rt.PkgPath(); pkg != "" {
		return Identifier(pkg + "." + name)
	}
	return BuiltinIdentifier(name)
}

// KeywordArgDoc is one `name=value` keyword argument to [BuildFuncCall].
type KeywordArgDoc struct {
	Name string
	Doc  doc.Doc
}

// BuildFuncCall assembles `head(arg, …, name=value, …)`. When hugSoleArg is
// true and the call has exactly one positional argument and no keyword
// arguments, the parentheses hug the argument directly with no added
// indentation — used when that argument is itself a bracketed container,
// so the call does not add a redundant level of nesting around it.
// trailingComment, if non-empty, is rendered as a comment line before the
// closing paren and forces the call to break.
func BuildFuncCall(ctx *Context, head doc.Doc, argdocs []doc.Doc, kwargdocs []KeywordArgDoc, hugSoleArg bool, trailingComment string) doc.Doc {
	kwParts := make([]doc.Doc, len(kwargdocs))
	for i, kw := range kwargdocs {
		kwParts[i] = doc.Concat{KeywordArg(kw.Name), assign, kw.Doc}
	}

	if len(argdocs) == 0 && len(kwParts) == 0 {
		return doc.Concat{head, lparen, rparen}
	}

	if hugSoleArg && len(kwParts) == 0 && len(argdocs) == 1 && trailingComment == "" {
		return doc.Group{Doc: doc.Concat{head, lparen, argdocs[0], rparen}}
	}

	all := make([]doc.Doc, 0, len(argdocs)+len(kwParts)+1)
	all = append(all, argdocs...)
	all = append(all, kwParts...)
	if trailingComment != "" {
		all = append(all, CommentDoc(trailingComment))
	}

	forceBreak := trailingComment != ""
	var parts []doc.Doc
	for i, d := range all {
		last := i == len(all)-1
		part := doc.Concat{d, condComma(!last)}
		if !last {
			part = doc.Concat{part, doc.Line}
		}
		parts = append(parts, part)
	}

	inner := doc.Concat{head, Bracket(ctx, lparen, doc.Concat(parts), rparen)}
	if forceBreak {
		return doc.AlwaysBreak{Doc: inner}
	}
	return doc.Group{Doc: inner}
}

// KeywordArgValue is one `name=value` argument to [Call], where value is an
// arbitrary Go value rather than an already-rendered Doc.
type KeywordArgValue struct {
	Name  string
	Value any
}

// Call builds the canonical call-shape Doc for head(args…, kwargs…),
// dispatching each argument value through ctx, the Go analogue of the
// reference implementation's pretty_call: if depth is exhausted it emits
// the `head(...)` placeholder instead of recursing, and a lone positional
// argument whose value is a slice, array, or map hugs the call's
// parentheses directly against its own brackets rather than adding a
// redundant indentation level.
func Call(ctx *Context, head doc.Doc, args []any, kwargs []KeywordArgValue) (doc.Doc, error) {
	if ctx.DepthLeft == 0 {
		return doc.Concat{head, lparen, doc.Text("..."), rparen}, nil
	}

	if len(args) == 1 && len(kwargs) == 0 && isHuggable(args[0]) {
		d, err := Dispatch(args[0], ctx)
		if err != nil {
			return nil, err
		}
		return BuildFuncCall(ctx, head, []doc.Doc{d}, nil, true, ""), nil
	}

	nested := ctx.Nested().UseMultilineStrategy(Hang)

	argdocs := make([]doc.Doc, len(args))
	for i, a := range args {
		d, err := Dispatch(a, nested)
		if err != nil {
			return nil, err
		}
		argdocs[i] = d
	}

	kwargdocs := make([]KeywordArgDoc, len(kwargs))
	for i, kw := range kwargs {
		d, err := Dispatch(kw.Value, nested)
		if err != nil {
			return nil, err
		}
		kwargdocs[i] = KeywordArgDoc{Name: kw.Name, Doc: d}
	}

	return BuildFuncCall(ctx, head, argdocs, kwargdocs, false, ""), nil
}

func isHuggable(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

func condComma(want bool) doc.Doc {
	if want {
		return comma
	}
	return doc.Nil
}

// CommentDoc wraps text as a `# text` annotated comment doc, word-wrapped
// by [doc.Fill] so the layout engine may break it across multiple comment
// lines when it does not fit flat.
func CommentDoc(text string) doc.Doc {
	words := splitWords(text)
	parts := make([]doc.Doc, 0, len(words)*2)
	for i, w := range words {
		if i > 0 {
			parts = append(parts, doc.Line)
		}
		parts = append(parts, doc.Text(w))
	}
	return doc.Annotated{
		Doc:        doc.Concat{doc.Text("# "), doc.Fill(parts)},
		Annotation: token.CommentSingle,
	}
}

// TruncationComment renders the "...and N more elements" marker spec.md
// §4.C and §8 property 7 require when a container is truncated to
// max_seq_len elements.
func TruncationComment(n int) doc.Doc {
	return CommentDoc(fmt.Sprintf("...and %d more elements", n))
}

func splitWords(s string) []string {
	var words []string
	start := -1
	for i, r := range s {
		if r == ' ' || r == '\t' || r == '\n' {
			if start >= 0 {
				words = append(words, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, s[start:])
	}
	return words
}
