// Package render walks the SDoc stream produced by package layout into
// actual output bytes: [Plain] writes unstyled text, [Colored] additionally
// emits ANSI SGR escapes for annotations carrying a [token.Kind] payload.
//
// Both are ports of the reference implementation's
// default_render_to_stream/colored_render_to_stream (render.py, color.py):
// buffer one line at a time so the last text chunk on the line can have its
// trailing whitespace trimmed, then walk the buffered chunks in order.
package render

import (
	"io"
	"iter"
	"strings"

	"github.com/teleivo/gopp/sdoc"
	"github.com/teleivo/gopp/token"
)

// Plain renders seq to w as plain text. Annotation push/pop markers are
// ignored; no escape sequence is ever written.
func Plain(w io.Writer, seq iter.Seq[sdoc.SDoc]) error {
	return render(w, seq, nil, false)
}

// Colored renders seq to w, emitting style's ANSI sequence for every
// annotation whose payload is a [token.Kind]. Annotations carrying any
// other payload (for example [token.Comment]) are structural only and do
// not affect coloring.
func Colored(w io.Writer, seq iter.Seq[sdoc.SDoc], style Style) error {
	return render(w, seq, style, true)
}

func render(w io.Writer, seq iter.Seq[sdoc.SDoc], style Style, useColor bool) error {
	var line []sdoc.SDoc
	var colorStack []token.Kind

	for s := range seq {
		ln, ok := s.(sdoc.Line)
		if !ok {
			line = append(line, s)
			continue
		}

		if err := writeLine(w, line, style, useColor, &colorStack); err != nil {
			return err
		}
		line = line[:0]
		if _, err := io.WriteString(w, "\n"+strings.Repeat(" ", ln.Indent)); err != nil {
			return err
		}
	}

	if err := writeLine(w, line, style, useColor, &colorStack); err != nil {
		return err
	}

	if useColor && len(colorStack) > 0 {
		return writeSeq(w, reset)
	}
	return nil
}

// writeLine writes one line's worth of buffered SDoc, trimming trailing
// whitespace from the last Str chunk on the line. This papers over a
// trailing space some printers leave behind, such as after a dict key's
// colon when the value breaks onto its own line.
func writeLine(w io.Writer, line []sdoc.SDoc, style Style, useColor bool, colorStack *[]token.Kind) error {
	lastStr := -1
	for i, s := range line {
		if _, ok := s.(sdoc.Str); ok {
			lastStr = i
		}
	}

	for i, s := range line {
		switch v := s.(type) {
		case sdoc.Str:
			text := string(v)
			if i == lastStr {
				text = strings.TrimRight(text, " \t")
			}
			if _, err := io.WriteString(w, text); err != nil {
				return err
			}
		case sdoc.PushAnn:
			kind, ok := v.Annotation.(token.Kind)
			if !useColor || !ok {
				continue
			}
			*colorStack = append(*colorStack, kind)
			if err := writeSeq(w, style[kind]); err != nil {
				return err
			}
		case sdoc.PopAnn:
			if _, ok := v.Annotation.(token.Kind); !useColor || !ok {
				continue
			}
			if len(*colorStack) == 0 {
				continue
			}
			*colorStack = (*colorStack)[:len(*colorStack)-1]
			if len(*colorStack) > 0 {
				if err := writeSeq(w, style[(*colorStack)[len(*colorStack)-1]]); err != nil {
					return err
				}
			} else if err := writeSeq(w, reset); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSeq(w io.Writer, s Sequence) error {
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w, escape+"["+string(s)+"m")
	return err
}
