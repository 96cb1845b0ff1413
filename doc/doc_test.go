package doc_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/gopp/doc"
)

func TestNormalizeConcat(t *testing.T) {
	tests := map[string]struct {
		in   doc.Doc
		want doc.Doc
	}{
		"empty concat becomes nil": {
			in:   doc.Concat{},
			want: doc.Nil,
		},
		"singleton concat unwraps": {
			in:   doc.Concat{doc.Text("a")},
			want: doc.Text("a"),
		},
		"nested concat flattens": {
			in:   doc.Concat{doc.Concat{doc.Text("a"), doc.Text("b")}, doc.Text("c")},
			want: doc.Concat{doc.Text("a"), doc.Text("b"), doc.Text("c")},
		},
		"nil children are dropped": {
			in:   doc.Concat{doc.Text("a"), doc.Nil, doc.Text("b")},
			want: doc.Concat{doc.Text("a"), doc.Text("b")},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := doc.Normalize(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestAlwaysBreakHoisting verifies property 3 from spec.md §8: normalizing
// Group(Concat([a, AlwaysBreak(b), c])) yields a form where the enclosing
// Group has been replaced by AlwaysBreak.
func TestAlwaysBreakHoisting(t *testing.T) {
	in := doc.Group{Doc: doc.Concat{
		doc.Text("a"),
		doc.AlwaysBreak{Doc: doc.Text("b")},
		doc.Text("c"),
	}}

	want := doc.AlwaysBreak{Doc: doc.Concat{doc.Text("a"), doc.Text("b"), doc.Text("c")}}

	got := doc.Normalize(in)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Normalize() mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeNest(t *testing.T) {
	in := doc.Nest{Indent: 2, Doc: doc.AlwaysBreak{Doc: doc.Text("a")}}
	want := doc.AlwaysBreak{Doc: doc.Nest{Indent: 2, Doc: doc.Text("a")}}

	got := doc.Normalize(in)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Normalize() mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeGroup(t *testing.T) {
	tests := map[string]struct {
		in   doc.Doc
		want doc.Doc
	}{
		"group of always-break collapses": {
			in:   doc.Group{Doc: doc.AlwaysBreak{Doc: doc.Text("a")}},
			want: doc.AlwaysBreak{Doc: doc.Text("a")},
		},
		"group of nil collapses to nil": {
			in:   doc.Group{Doc: doc.Nil},
			want: doc.Nil,
		},
		"group of plain doc is preserved": {
			in:   doc.Group{Doc: doc.Text("a")},
			want: doc.Group{Doc: doc.Text("a")},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := doc.Normalize(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeFlatChoice(t *testing.T) {
	tests := map[string]struct {
		in   doc.Doc
		want doc.Doc
	}{
		"broken branch always-break wins outright": {
			in: doc.FlatChoice{
				WhenBroken: doc.AlwaysBreak{Doc: doc.Text("broken")},
				WhenFlat:   doc.Text("flat"),
			},
			want: doc.AlwaysBreak{Doc: doc.Text("broken")},
		},
		"flat branch always-break collapses to broken": {
			in: doc.FlatChoice{
				WhenBroken: doc.Text("broken"),
				WhenFlat:   doc.AlwaysBreak{Doc: doc.Text("flat")},
			},
			want: doc.Text("broken"),
		},
		"plain choice is preserved": {
			in:   doc.Line,
			want: doc.Line,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := doc.Normalize(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	in := doc.Group{Doc: doc.Concat{
		doc.Text("a"),
		doc.Nest{Indent: 2, Doc: doc.Concat{doc.Nil, doc.Text("b")}},
		doc.AlwaysBreak{Doc: doc.Text("c")},
	}}

	once := doc.Normalize(in)
	twice := doc.Normalize(once)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("Normalize() is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestIntersperse(t *testing.T) {
	got := doc.Intersperse(doc.Text(","), []doc.Doc{doc.Text("a"), doc.Text("b"), doc.Text("c")})
	want := []doc.Doc{doc.Text("a"), doc.Text(","), doc.Text("b"), doc.Text(","), doc.Text("c")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Intersperse() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	d, err := doc.Validate("hello")
	assert.NoError(t, err)
	assert.Equals(t, d, doc.Doc(doc.Text("hello")), "Validate(%q)", "hello")

	_, err = doc.Validate(42)
	if err == nil {
		t.Fatalf("Validate(42) = nil error, want an error")
	}
}
