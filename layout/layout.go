// Package layout implements the stack-based layout algorithm that turns a
// normalized [doc.Doc] into a linear stream of [sdoc.SDoc] instructions.
//
// The algorithm is a Go port of best_layout in tommikaikkonen/prettyprinter
// (layout.py), itself derived from Wadler's "A prettier printer" by way of
// Lindig's "Strictly Pretty" stack-and-loop formulation and the extensions
// in Haskell's wl-pprint/prettyprinter packages. Two fitting predicates are
// available: [Fast], a one-line lookahead, and [Smart], which looks
// ahead to the end of the current nesting level at the cost of more work.
// [Fill] always uses the fast predicate regardless of which strategy the
// caller picked, matching the reference implementation.
package layout

import (
	"iter"

	"github.com/teleivo/gopp/internal/assert"

	"github.com/teleivo/gopp/doc"
	"github.com/teleivo/gopp/sdoc"
)

// Strategy selects which fitting predicate [Render] uses for [doc.Group].
type Strategy int

const (
	// Smart looks ahead to the end of the enclosing nesting level before
	// giving up, producing prettier output at higher cost.
	Smart Strategy = iota
	// Fast looks ahead only as far as the next hard line break.
	Fast
)

// Default page and ribbon width, matching the reference implementation's
// layout_smart/layout_fast defaults.
const (
	DefaultWidth          = 79
	DefaultRibbonFraction = 0.9
)

// Options configures [Render].
type Options struct {
	// Width is the maximum page width in columns.
	Width int
	// RibbonFrac bounds the fraction of Width usable for non-leading-
	// whitespace content on any single line.
	RibbonFrac float64
	// Strategy picks the fitting predicate used to decide whether a Group
	// fits flat.
	Strategy Strategy
}

// DefaultOptions returns the reference implementation's default width and
// ribbon fraction with the [Smart] strategy.
func DefaultOptions() Options {
	return Options{Width: DefaultWidth, RibbonFrac: DefaultRibbonFraction, Strategy: Smart}
}

const (
	breakMode = iota
	flatMode
)

// item is one entry of the layout stack. A plain item carries a Doc still
// to be processed; a pop item is a placeholder emitted after everything
// nested inside an Annotated has been processed, so that PushAnn/PopAnn
// bracket their extent in balanced, properly nested pairs.
type item struct {
	indent int
	mode   int
	doc    doc.Doc
	isPop  bool
	pop    any
}

func ribbonWidth(pageWidth int, ribbonFrac float64) int {
	w := int(ribbonFrac*float64(pageWidth) + 0.5)
	if w > pageWidth {
		w = pageWidth
	}
	if w < 0 {
		w = 0
	}
	return w
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Render lays out d according to opts and returns the resulting SDoc stream
// as a lazy sequence. Consuming a prefix of the sequence and stopping early
// (range-break) is safe: Render only computes as much of the layout as the
// consumer actually ranges over.
func Render(d doc.Doc, opts Options) iter.Seq[sdoc.SDoc] {
	fits := fastFits
	if opts.Strategy == Smart {
		fits = smartFits
	}

	return func(yield func(sdoc.SDoc) bool) {
		normalized := doc.Normalize(d)
		ribbon := ribbonWidth(opts.Width, opts.RibbonFrac)
		width := opts.Width

		stack := []item{{indent: 0, mode: breakMode, doc: normalized}}
		outcol := 0

		for len(stack) > 0 {
			it := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if it.isPop {
				if !yield(sdoc.PopAnn{Annotation: it.pop}) {
					return
				}
				continue
			}

			indent, mode, dd := it.indent, it.mode, it.doc

			if dd == doc.Nil {
				continue
			}
			if dd == doc.HardLine {
				if !yield(sdoc.Line{Indent: indent}) {
					return
				}
				outcol = indent
				continue
			}

			switch v := dd.(type) {
			case doc.Text:
				if !yield(sdoc.Str(v)) {
					return
				}
				outcol += len([]rune(string(v)))
			case doc.Concat:
				for i := len(v) - 1; i >= 0; i-- {
					stack = append(stack, item{indent: indent, mode: mode, doc: v[i]})
				}
			case doc.Contextual:
				evaluated := v.Fn(indent, outcol, width, ribbon)
				stack = append(stack, item{indent: indent, mode: mode, doc: doc.Normalize(evaluated)})
			case doc.Annotated:
				if !yield(sdoc.PushAnn{Annotation: v.Annotation}) {
					return
				}
				stack = append(stack, item{indent: indent, mode: mode, isPop: true, pop: v.Annotation})
				stack = append(stack, item{indent: indent, mode: mode, doc: v.Doc})
			case doc.FlatChoice:
				if mode == breakMode {
					stack = append(stack, item{indent: indent, mode: mode, doc: v.WhenBroken})
				} else {
					stack = append(stack, item{indent: indent, mode: mode, doc: v.WhenFlat})
				}
			case doc.Nest:
				stack = append(stack, item{indent: indent + v.Indent, mode: mode, doc: v.Doc})
			case doc.Group:
				groupStack := make([]item, len(stack), len(stack)+1)
				copy(groupStack, stack)
				groupStack = append(groupStack, item{indent: indent, mode: flatMode, doc: v.Doc})

				minNestingLevel := min(outcol, indent)
				colsLeftInLine := width - outcol
				colsLeftInRibbon := indent + ribbon - outcol
				available := min(colsLeftInLine, colsLeftInRibbon)

				if fits(width, opts.RibbonFrac, minNestingLevel, available, groupStack) {
					stack = append(stack, item{indent: indent, mode: flatMode, doc: v.Doc})
				} else {
					stack = append(stack, item{indent: indent, mode: breakMode, doc: v.Doc})
				}
			case doc.Fill:
				stack = layoutFill(stack, v, indent, mode, outcol, width, opts.RibbonFrac, ribbon)
			case doc.AlwaysBreak:
				stack = append(stack, item{indent: indent, mode: breakMode, doc: v.Doc})
			default:
				assert.That(false, "layout: unknown doc variant %T reached Render", dd)
			}
		}
	}
}

// layoutFill implements Fill's alternating content/whitespace strategy:
// each content element is measured against the fast predicate independent
// of its neighbors, and only the whitespace between two elements that do
// not both fit flat is broken.
func layoutFill(stack []item, docs doc.Fill, indent, mode, outcol, width int, ribbonFrac float64, ribbon int) []item {
	if len(docs) == 0 {
		return stack
	}

	firstDoc := docs[0]
	flatContent := item{indent: indent, mode: flatMode, doc: firstDoc}
	brokenContent := item{indent: indent, mode: breakMode, doc: firstDoc}

	minNestingLevel := min(outcol, indent)
	colsLeftInLine := width - outcol
	colsLeftInRibbon := indent + ribbon - outcol
	available := min(colsLeftInLine, colsLeftInRibbon)

	doesFit := fastFits(width, ribbonFrac, minNestingLevel, available, []item{flatContent})

	if len(docs) == 1 {
		if doesFit {
			return append(stack, flatContent)
		}
		return append(stack, brokenContent)
	}

	whitespace := docs[1]
	flatWhitespace := item{indent: indent, mode: flatMode, doc: whitespace}
	brokenWhitespace := item{indent: indent, mode: breakMode, doc: whitespace}

	if len(docs) == 2 {
		if doesFit {
			return append(stack, flatWhitespace, flatContent)
		}
		return append(stack, brokenWhitespace, brokenContent)
	}

	remaining := item{indent: indent, mode: mode, doc: doc.Fill(docs[2:])}
	fstSndFlat := item{indent: indent, mode: flatMode, doc: doc.Concat(docs[:3])}
	fstSndFits := fastFits(width, ribbonFrac, minNestingLevel, available, []item{fstSndFlat})

	switch {
	case fstSndFits:
		return append(stack, remaining, flatWhitespace, flatContent)
	case doesFit:
		return append(stack, remaining, brokenWhitespace, flatContent)
	default:
		return append(stack, remaining, brokenWhitespace, brokenContent)
	}
}
