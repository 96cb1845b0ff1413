package pretty

import "github.com/teleivo/gopp/doc"

// maxPracticalRibbonWidth bounds the estimated minimum flat width of a
// sequence or mapping beyond which it is always broken, even if it would
// technically still fit: a line that is merely very long rather than
// legitimately too wide to read gains nothing from staying flat.
const maxPracticalRibbonWidth = 150

// elementDoc is one item of a sequence or mapping about to be assembled by
// [SequenceOfDocs]: its rendered Doc plus an optional comment that, when
// present, forces the whole container to break and is rendered after the
// element on the same line when that fits, or on its own line above the
// element otherwise.
type elementDoc struct {
	Doc     doc.Doc
	Comment string
}

// SequenceOfDocs assembles left, elements (each separated by ", "), and
// right into a bracketed container Doc, deciding whether the result must
// always break: forceBreak is set by the caller when the container itself
// carries a trailing comment or exceeds max_seq_len; this function adds to
// that decision whenever the minimum possible flat width exceeds
// [maxPracticalRibbonWidth] or any element carries a comment. dangle, when
// true, appends a trailing separator after the final element (used for
// single-element tuples).
func SequenceOfDocs(ctx *Context, left doc.Doc, elements []elementDoc, right doc.Doc, dangle, forceBreak bool) doc.Doc {
	if len(elements) == 0 {
		return doc.Concat{left, right}
	}

	minOutputLen := 2 + len(", ")*(len(elements)-1) + len(elements)
	willBreak := forceBreak || minOutputLen > maxPracticalRibbonWidth

	hasComment := false
	parts := make([]doc.Doc, 0, len(elements))
	for i, el := range elements {
		last := i == len(elements)-1
		wantsComma := !last || dangle

		if el.Comment != "" {
			hasComment = true
			flat := doc.Concat{el.Doc, condComma(wantsComma), doc.Text("  "), CommentDoc(el.Comment)}
			broken := doc.Concat{CommentDoc(el.Comment), doc.HardLine, el.Doc, condComma(wantsComma)}
			parts = append(parts, doc.Group{Doc: doc.FlatChoice{WhenFlat: flat, WhenBroken: broken}})
		} else {
			parts = append(parts, doc.Concat{el.Doc, condComma(wantsComma)})
		}
		if !last {
			if hasComment {
				parts = append(parts, doc.HardLine)
			} else {
				parts = append(parts, doc.Line)
			}
		}
	}

	outer := doc.Group{Doc: Bracket(ctx, left, doc.Concat(parts), right)}
	if willBreak || hasComment {
		return doc.AlwaysBreak{Doc: outer.Doc}
	}
	return outer
}
