package layout

import "github.com/teleivo/gopp/doc"

// fastFits performs one-line lookahead: it reports a fit as soon as it
// reaches the first hard line break (or the end of the stack) within
// maxWidth, and no fit on overflow or on an [doc.AlwaysBreak]. A nested
// Group is assumed to be laid out flat, the same optimistic assumption the
// reference implementation makes.
func fastFits(pageWidth int, ribbonFrac float64, minNestingLevel, maxWidth int, stack []item) bool {
	charsLeft := maxWidth

	for charsLeft >= 0 {
		if len(stack) == 0 {
			return true
		}

		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if it.isPop {
			continue
		}

		indent, mode, dd := it.indent, it.mode, it.doc

		if dd == doc.Nil {
			continue
		}
		if dd == doc.HardLine {
			return true
		}

		switch v := dd.(type) {
		case doc.Text:
			charsLeft -= len([]rune(string(v)))
		case doc.Concat:
			for i := len(v) - 1; i >= 0; i-- {
				stack = append(stack, item{indent: indent, mode: mode, doc: v[i]})
			}
		case doc.Annotated:
			stack = append(stack, item{indent: indent, mode: mode, doc: v.Doc})
		case doc.Fill:
			for i := len(v) - 1; i >= 0; i-- {
				stack = append(stack, item{indent: indent, mode: mode, doc: v[i]})
			}
		case doc.Nest:
			stack = append(stack, item{indent: indent + v.Indent, mode: mode, doc: v.Doc})
		case doc.AlwaysBreak:
			return false
		case doc.FlatChoice:
			if mode == flatMode {
				stack = append(stack, item{indent: indent, mode: mode, doc: v.WhenFlat})
			} else {
				stack = append(stack, item{indent: indent, mode: mode, doc: v.WhenBroken})
			}
		case doc.Group:
			stack = append(stack, item{indent: indent, mode: flatMode, doc: v.Doc})
		case doc.Contextual:
			ribbon := ribbonWidth(pageWidth, ribbonFrac)
			evaluated := v.Fn(indent, maxWidth-charsLeft, pageWidth, ribbon)
			stack = append(stack, item{indent: indent, mode: mode, doc: doc.Normalize(evaluated)})
		default:
			panic("layout: unknown doc variant reached fastFits")
		}
	}

	return false
}

// smartFits looks ahead past hard line breaks as long as the nesting level
// has not returned above minNestingLevel, so a Group only fits flat if its
// entire remaining block at the current or deeper indentation also fits.
// This is pricier than [fastFits] but avoids breaking a group merely
// because something after it, at a shallower indent, happens to be long.
func smartFits(pageWidth int, ribbonFrac float64, minNestingLevel, maxWidth int, stack []item) bool {
	charsLeft := maxWidth

	for charsLeft >= 0 {
		if len(stack) == 0 {
			return true
		}

		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if it.isPop {
			continue
		}

		indent, mode, dd := it.indent, it.mode, it.doc

		if dd == doc.Nil {
			continue
		}
		if dd == doc.HardLine {
			if indent > minNestingLevel {
				charsLeft = pageWidth - indent
				continue
			}
			return true
		}

		switch v := dd.(type) {
		case doc.Text:
			charsLeft -= len([]rune(string(v)))
		case doc.Concat:
			for i := len(v) - 1; i >= 0; i-- {
				stack = append(stack, item{indent: indent, mode: mode, doc: v[i]})
			}
		case doc.Annotated:
			stack = append(stack, item{indent: indent, mode: mode, doc: v.Doc})
		case doc.Fill:
			for i := len(v) - 1; i >= 0; i-- {
				stack = append(stack, item{indent: indent, mode: mode, doc: v[i]})
			}
		case doc.Nest:
			stack = append(stack, item{indent: indent + v.Indent, mode: mode, doc: v.Doc})
		case doc.AlwaysBreak:
			return false
		case doc.FlatChoice:
			if mode == flatMode {
				stack = append(stack, item{indent: indent, mode: mode, doc: v.WhenFlat})
			} else {
				stack = append(stack, item{indent: indent, mode: mode, doc: v.WhenBroken})
			}
		case doc.Group:
			stack = append(stack, item{indent: indent, mode: flatMode, doc: v.Doc})
		case doc.Contextual:
			ribbon := ribbonWidth(pageWidth, ribbonFrac)
			evaluated := v.Fn(indent, maxWidth-charsLeft, pageWidth, ribbon)
			stack = append(stack, item{indent: indent, mode: mode, doc: doc.Normalize(evaluated)})
		default:
			panic("layout: unknown doc variant reached smartFits")
		}
	}

	return false
}
