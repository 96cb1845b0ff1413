// Package doc implements the algebraic document language used to describe
// the set of all legal layouts of a value, before the layout engine in
// package layout narrows that set down to one.
//
// A Doc is built from a small closed set of variants: [Text], [Nil],
// [HardLine], [Concat], [Nest], [FlatChoice], [Group], [AlwaysBreak],
// [Fill], [Contextual] and [Annotated]. None of these types carry layout
// decisions themselves; [Normalize] rewrites a tree into canonical form and
// the layout engine picks a concrete rendering.
//
// The design and the normalization rules are a Go port of the Doc algebra
// in tommikaikkonen/prettyprinter (doctypes.py, doc.py), itself inspired by
// Wadler's "A prettier printer" and the Haskell wl-pprint/prettyprinter
// packages.
package doc

import "fmt"

// Doc is the closed sum type of the document algebra. Implementations are
// exhaustively matched by [Normalize] and by the layout engine; an unknown
// Doc variant reaching either is an implementation bug.
type Doc interface {
	isDoc()
}

// Text is literal text content. Its width is its length in runes.
type Text string

func (Text) isDoc() {}

// nilDoc is the empty document. Use the [Nil] value.
type nilDoc struct{}

func (nilDoc) isDoc() {}

// Nil is the empty Doc.
var Nil Doc = nilDoc{}

// hardLine is a mandatory newline. Use the [HardLine] value.
type hardLine struct{}

func (hardLine) isDoc() {}

// HardLine is a mandatory newline; it forces any enclosing [Group] to break.
var HardLine Doc = hardLine{}

// Concat is sequential composition of a list of Docs.
type Concat []Doc

func (Concat) isDoc() {}

// Nest adds Indent to the current indentation for Doc. Indentation only
// affects the column that a [HardLine] lands on; it does not change the
// width of the current line.
type Nest struct {
	Indent int
	Doc    Doc
}

func (Nest) isDoc() {}

// FlatChoice offers the layout engine two alternatives: WhenFlat is used
// while laying out in flat mode, WhenBroken while broken.
type FlatChoice struct {
	WhenBroken Doc
	WhenFlat   Doc
}

func (FlatChoice) isDoc() {}

// Line renders as a single space when its enclosing group fits flat, or a
// hard line break when it does not.
var Line Doc = FlatChoice{WhenBroken: HardLine, WhenFlat: Text(" ")}

// SoftLine renders as nothing when its enclosing group fits flat, or a hard
// line break when it does not.
var SoftLine Doc = FlatChoice{WhenBroken: HardLine, WhenFlat: Nil}

// Group marks Doc as a point of layout choice: the layout engine tries to
// render it flat, falling back to broken mode if it does not fit.
type Group struct {
	Doc Doc
}

func (Group) isDoc() {}

// AlwaysBreak forces Doc into broken mode. The instruction propagates
// outward through [Normalize] to any enclosing [Group] or [FlatChoice];
// Docs nested inside Doc may still be laid out flat.
type AlwaysBreak struct {
	Doc Doc
}

func (AlwaysBreak) isDoc() {}

// Fill lays out an alternating sequence of content and whitespace Docs,
// breaking only the whitespace elements that do not fit, like a filled
// paragraph of text.
type Fill []Doc

func (Fill) isDoc() {}

// ContextualFunc is evaluated by the layout engine when it reaches a
// [Contextual] node, with the indentation, output column, and the page and
// ribbon widths in effect at that point.
type ContextualFunc func(indent, column, pageWidth, ribbonWidth int) Doc

// Contextual is a Doc decided lazily, at layout time, from the current
// layout state.
type Contextual struct {
	Fn ContextualFunc
}

func (Contextual) isDoc() {}

// Annotated attaches an arbitrary annotation to Doc. The renderer consumes
// annotations that are syntax token classes (see package token); printers
// consume annotations that are comment payloads.
type Annotated struct {
	Doc        Doc
	Annotation any
}

func (Annotated) isDoc() {}

// Align renders every new line inside doc flush with the column the Align
// node itself started on, regardless of the indentation in effect.
func Align(d Doc) Doc {
	return Contextual{Fn: func(indent, column, _, _ int) Doc {
		return Nest{Indent: column - indent, Doc: d}
	}}
}

// Hang is like [Align] but adds i columns of additional indentation for any
// line after the first.
func Hang(i int, d Doc) Doc {
	return Align(Nest{Indent: i, Doc: d})
}

// Seq concatenates docs; it is a small variadic convenience over [Concat],
// which already accepts a slice of Docs directly.
func Seq(docs ...Doc) Doc {
	return Concat(docs)
}

// Intersperse returns a copy of docs with sep inserted between every pair of
// consecutive elements.
func Intersperse(sep Doc, docs []Doc) []Doc {
	if len(docs) == 0 {
		return nil
	}
	out := make([]Doc, 0, 2*len(docs)-1)
	for i, d := range docs {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, d)
	}
	return out
}

// Validate reports an error if v is not a legal Doc value, i.e. neither a
// string nor a [Doc]. It mirrors prettyprinter's validate_doc and is used by
// printers that accept either form from user code.
func Validate(v any) (Doc, error) {
	switch t := v.(type) {
	case Doc:
		return t, nil
	case string:
		return Text(t), nil
	default:
		return nil, fmt.Errorf("doc: invalid doc: %#v", v)
	}
}
