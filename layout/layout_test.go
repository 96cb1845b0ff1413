package layout_test

import (
	"strings"
	"testing"

	"github.com/teleivo/assertive/assert"

	"github.com/teleivo/gopp/doc"
	"github.com/teleivo/gopp/layout"
	"github.com/teleivo/gopp/sdoc"
)

func render(t *testing.T, d doc.Doc, opts layout.Options) string {
	t.Helper()

	var b strings.Builder
	for s := range layout.Render(d, opts) {
		switch v := s.(type) {
		case sdoc.Str:
			b.WriteString(string(v))
		case sdoc.Line:
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(" ", v.Indent))
		case sdoc.PushAnn, sdoc.PopAnn:
			// no textual effect
		}
	}
	return b.String()
}

func TestRenderFlatWhenFits(t *testing.T) {
	d := doc.Group{Doc: doc.Concat{doc.Text("a"), doc.Line, doc.Text("b")}}
	got := render(t, d, layout.DefaultOptions())
	assert.Equals(t, got, "a b", "rendering of a short group")
}

// TestBreakMonotonicity is spec.md §8 property 2: a Doc that fits flat must
// never be broken by the smart layout.
func TestBreakMonotonicity(t *testing.T) {
	d := doc.Group{Doc: doc.Concat{doc.Text("short"), doc.Line, doc.Text("doc")}}
	opts := layout.Options{Width: 79, RibbonFrac: 0.9, Strategy: layout.Smart}
	got := render(t, d, opts)
	assert.Falsef(t, strings.Contains(got, "\n"), "expected %q to stay flat", got)
}

func TestRenderBreaksWhenTooWide(t *testing.T) {
	d := doc.Group{Doc: doc.Concat{
		doc.Text("a very long first element that will not fit"),
		doc.Line,
		doc.Text("and a second one"),
	}}
	opts := layout.Options{Width: 20, RibbonFrac: 0.9, Strategy: layout.Smart}
	got := render(t, d, opts)
	assert.Truef(t, strings.Contains(got, "\n"), "expected %q to break", got)
}

// TestWidthBound is spec.md §8 property 1: with no Text chunk wider than W
// and no HardLine, every output line is at most W characters wide.
func TestWidthBound(t *testing.T) {
	words := []string{"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing"}
	docs := make([]doc.Doc, len(words))
	for i, w := range words {
		docs[i] = doc.Text(w)
	}
	d := doc.Group{Doc: doc.Concat(doc.Intersperse(doc.Line, docs))}

	const width = 20
	got := render(t, d, layout.Options{Width: width, RibbonFrac: 0.9, Strategy: layout.Smart})
	for _, line := range strings.Split(got, "\n") {
		assert.Truef(t, len(line) <= width, "line %q exceeds width %d", line, width)
	}
}

// TestAlign is concrete scenario 2 from spec.md §8.
func TestAlign(t *testing.T) {
	d := doc.Concat{
		doc.Text("lorem "),
		doc.Align(doc.Concat{doc.Text("ipsum"), doc.HardLine, doc.Text("aligned!")}),
	}
	got := render(t, d, layout.Options{Width: 20, RibbonFrac: 0.9, Strategy: layout.Smart})
	want := "lorem ipsum\n      aligned!"
	assert.Equals(t, got, want, "Align rendering")
}

// TestFillParagraph is concrete scenario 3 from spec.md §8: a filled
// paragraph never splits a word and keeps every line within the width.
func TestFillParagraph(t *testing.T) {
	words := []string{
		"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing",
		"elit", "sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore",
		"et", "dolore", "magna", "aliqua", "ut",
	}
	docs := make([]doc.Doc, len(words))
	for i, w := range words {
		docs[i] = doc.Text(w)
	}
	d := doc.Fill(doc.Intersperse(doc.Line, docs))

	const width = 20
	got := render(t, d, layout.Options{Width: width, RibbonFrac: 0.9, Strategy: layout.Smart})

	for _, line := range strings.Split(got, "\n") {
		assert.Truef(t, len(strings.TrimLeft(line, " ")) <= width, "line %q exceeds width %d", line, width)
	}
	for _, w := range words {
		assert.Truef(t, strings.Contains(got, w), "expected %q to contain word %q", got, w)
	}
}

// TestFillSingleElement exercises the len(docs)==1 branch of Fill.
func TestFillSingleElement(t *testing.T) {
	d := doc.Fill{doc.Text("lonely")}
	got := render(t, d, layout.DefaultOptions())
	assert.Equals(t, got, "lonely", "Fill with a single element")
}

func TestRenderHardLineForcesBreak(t *testing.T) {
	d := doc.Group{Doc: doc.Concat{doc.Text("a"), doc.HardLine, doc.Text("b")}}
	got := render(t, d, layout.DefaultOptions())
	assert.Equals(t, got, "a\nb", "HardLine always breaks")
}

func TestRenderEarlyStop(t *testing.T) {
	d := doc.Concat{doc.Text("a"), doc.Text("b"), doc.Text("c")}
	var got []sdoc.SDoc
	for s := range layout.Render(d, layout.DefaultOptions()) {
		got = append(got, s)
		if len(got) == 1 {
			break
		}
	}
	assert.EqualValues(t, len(got), 1, "iteration should stop after one item")
}
