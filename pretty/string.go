package pretty

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/teleivo/gopp/doc"
	"github.com/teleivo/gopp/token"
)

// printString renders a Go string value as a quoted literal, choosing the
// quote character that appears fewer times in the value (preferring `'`
// on a tie) and highlighting escape sequences with their own annotation.
// A value whose single-line form does not fit the available width is split
// across lines at whitespace boundaries, then at non-word boundaries, then
// arbitrarily, one string literal per physical line, joined the way
// ctx.MultilineStrategy dictates.
func printString(v any, ctx *Context) (any, error) {
	s := reflect.ValueOf(v).String()
	return stringDoc(s, ctx), nil
}

// stringDoc defers the fit decision to layout time: only there are the
// current column, page width, and ribbon width known. This mirrors the
// reference implementation's pretty_str evaluator closure.
func stringDoc(s string, ctx *Context) doc.Doc {
	quote := chooseQuote(s)
	flatLen := len([]rune(s)) + 2
	indent := ctx.Indent
	strategy := ctx.MultilineStrategy

	return doc.Contextual{Fn: func(nestIndent, column, pageWidth, ribbonWidth int) doc.Doc {
		availWidth := min(pageWidth-column, nestIndent+ribbonWidth-column)
		if flatLen <= availWidth {
			return quoteLine(s, quote)
		}

		lineStartCol := nestIndent + indent
		lineEndCol := min(pageWidth, lineStartCol+ribbonWidth)
		maxLineLen := lineEndCol - lineStartCol - 2
		if maxLineLen < 1 {
			maxLineLen = 1
		}

		lines := strToLines(maxLineLen, quote, s)
		docs := make([]doc.Doc, len(lines))
		for i, l := range lines {
			docs[i] = quoteLine(l, quote)
		}
		return multilineStrategyDoc(strategy, indent, docs)
	}}
}

// chooseQuote picks the quote character that occurs fewer times in s,
// preferring `'` on a tie (including when neither appears), matching
// spec.md §8 property 5's fixed tie-breaker.
func chooseQuote(s string) byte {
	if !strings.ContainsRune(s, '\'') {
		return '\''
	}
	if !strings.ContainsRune(s, '"') {
		return '"'
	}
	if strings.Count(s, `'`) <= strings.Count(s, `"`) {
		return '\''
	}
	return '"'
}

// escapeChar reports the literal escape text for r under quote (e.g. "\n",
// "\xHH") and whether r needs escaping at all; ok=false means r renders as
// itself.
func escapeChar(r rune, quote byte) (escaped string, ok bool) {
	switch {
	case r == rune(quote) || r == '\\':
		return "\\" + string(r), true
	case r == '\n':
		return `\n`, true
	case r == '\t':
		return `\t`, true
	case r == '\r':
		return `\r`, true
	case !unicode.IsPrint(r):
		return escapeRune(r), true
	default:
		return "", false
	}
}

// quoteLine renders one line of string content as a single quoted,
// escape-highlighted string literal Doc.
func quoteLine(s string, quote byte) doc.Doc {
	var plain strings.Builder
	parts := []doc.Doc{doc.Text(string(quote))}

	flush := func() {
		if plain.Len() > 0 {
			parts = append(parts, doc.Text(plain.String()))
			plain.Reset()
		}
	}

	for _, r := range s {
		if esc, ok := escapeChar(r, quote); ok {
			flush()
			parts = append(parts, doc.Annotated{Doc: doc.Text(esc), Annotation: token.StringEscape})
		} else {
			plain.WriteRune(r)
		}
	}
	flush()
	parts = append(parts, doc.Text(string(quote)))

	return doc.Annotated{Doc: doc.Concat(parts), Annotation: token.StringLiteral}
}

// escapedLen is the display width of s once escaped for quote, matching
// the reference implementation's escaped_len used to decide line packing.
func escapedLen(s string, quote byte) int {
	n := 0
	for _, r := range s {
		if esc, ok := escapeChar(r, quote); ok {
			n += len(esc)
		} else {
			n++
		}
	}
	return n
}

const hexDigits = "0123456789abcdef"

func escapeRune(r rune) string {
	if r <= 0xFF {
		return "\\x" + hexByte(byte(r))
	}
	return "\\u" + hexRune(r)
}

func hexByte(b byte) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0xF]})
}

func hexRune(r rune) string {
	out := make([]byte, 4)
	for i := 3; i >= 0; i-- {
		out[i] = hexDigits[r&0xF]
		r >>= 4
	}
	return string(out)
}

var (
	whitespaceRunPattern = regexp.MustCompile(`\s+`)
	nonWordRunPattern    = regexp.MustCompile(`\W+`)
)

// splitAlternating splits s on re's matches the way Python's re.split with
// a single capturing group around the whole pattern does: the result
// always alternates non-matching content (even indices, possibly empty)
// with matching separators (odd indices).
func splitAlternating(re *regexp.Regexp, s string) []string {
	locs := re.FindAllStringIndex(s, -1)
	out := make([]string, 0, 2*len(locs)+1)
	last := 0
	for _, loc := range locs {
		out = append(out, s[last:loc[0]], s[loc[0]:loc[1]])
		last = loc[1]
	}
	out = append(out, s[last:])
	return out
}

// splitRunesAt splits s after its first n runes.
func splitRunesAt(s string, n int) (string, string) {
	r := []rune(s)
	if n < 0 {
		n = 0
	}
	if n > len(r) {
		n = len(r)
	}
	return string(r[:n]), string(r[n:])
}

// strToLines packs s into physical lines no wider than maxLen (measured in
// escaped-display columns for quote), splitting first at whitespace runs,
// falling back to non-word runs when s has no whitespace, and finally
// cutting a single run arbitrarily when it alone exceeds maxLen. Ported
// from the reference implementation's str_to_lines.
func strToLines(maxLen int, quote byte, s string) []string {
	if len([]rune(s)) <= maxLen {
		if s == "" {
			return nil
		}
		return []string{s}
	}

	segments := splitAlternating(whitespaceRunPattern, s)
	if len(segments) <= 1 {
		segments = splitAlternating(nonWordRunPattern, s)
	}

	var lines []string
	var curParts []string
	curLen := 0

	i := 0
	var nextPart string
	var nextIsWS bool
	pending := false

	for {
		if !pending {
			if i >= len(segments) {
				break
			}
			nextPart = segments[i]
			nextIsWS = i%2 == 1
			i++
			if nextPart == "" {
				continue
			}
			pending = true
		}

		nextLen := escapedLen(nextPart, quote)
		curLen += nextLen

		switch {
		case curLen == maxLen:
			if !nextIsWS && len(curParts) > 1 {
				lines = append(lines, strings.Join(curParts, ""))
				curParts = nil
				curLen = 0
			} else {
				curParts = append(curParts, nextPart)
				lines = append(lines, strings.Join(curParts, ""))
				curParts = nil
				curLen = 0
				pending = false
			}
		case curLen > maxLen:
			if !nextIsWS && len(curParts) > 0 {
				lines = append(lines, strings.Join(curParts, ""))
				curParts = nil
				curLen = 0
				continue
			}

			remaining := maxLen - (curLen - nextLen)
			if remaining < 1 {
				remaining = 1
			}
			thisLinePart, nextLinePart := splitRunesAt(nextPart, remaining)
			if thisLinePart != "" {
				curParts = append(curParts, thisLinePart)
			}
			if len(curParts) > 0 {
				lines = append(lines, strings.Join(curParts, ""))
			}
			curParts = nil
			curLen = 0

			if nextLinePart != "" {
				nextPart = nextLinePart
			} else {
				pending = false
			}
		default:
			curParts = append(curParts, nextPart)
			pending = false
		}
	}

	if len(curParts) > 0 {
		lines = append(lines, strings.Join(curParts, ""))
	}

	return lines
}

// multilineStrategyDoc joins per-line string-literal docs according to
// strategy: plain places no framing around the lines; parens wraps them in
// a single pair of parentheses; indented breaks into the lines on their
// own indented block; hang adds extra indent to every line after the
// first, without breaking before the first.
func multilineStrategyDoc(strategy MultilineStrategy, indent int, lines []doc.Doc) doc.Doc {
	body := doc.Concat(doc.Intersperse(doc.HardLine, lines))

	switch strategy {
	case Parens:
		return doc.AlwaysBreak{Doc: doc.Concat{
			doc.Text("("),
			doc.Nest{Indent: indent, Doc: doc.Concat{doc.HardLine, body}},
			doc.HardLine,
			doc.Text(")"),
		}}
	case Indented:
		return doc.AlwaysBreak{Doc: doc.Nest{Indent: indent, Doc: doc.Concat{doc.HardLine, body}}}
	case Hang:
		return doc.AlwaysBreak{Doc: doc.Nest{Indent: indent, Doc: body}}
	default:
		return doc.AlwaysBreak{Doc: body}
	}
}
