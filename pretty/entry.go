package pretty

import (
	"io"
	"iter"

	"github.com/teleivo/gopp/layout"
	"github.com/teleivo/gopp/render"
	"github.com/teleivo/gopp/sdoc"
)

// ToSDocs is the top-level entry point: it dispatches value into a Doc
// under cfg (and reg, or [Default] if nil), lays it out, and returns the
// resulting lazy SDoc stream. The stream is consumable exactly once.
func ToSDocs(value any, cfg Config, reg *Registry) (iter.Seq[sdoc.SDoc], error) {
	ctx := NewContext(cfg, reg)
	d, err := Dispatch(value, ctx)
	if err != nil {
		return nil, err
	}

	opts := layout.Options{Width: cfg.Width, RibbonFrac: cfg.RibbonFraction, Strategy: layout.Smart}
	return layout.Render(d, opts), nil
}

// Fprint formats value and writes it to w using the plain renderer.
func Fprint(w io.Writer, value any, cfg Config, reg *Registry) error {
	seq, err := ToSDocs(value, cfg, reg)
	if err != nil {
		return err
	}
	return render.Plain(w, seq)
}

// FprintColored formats value and writes it to w using the colored
// renderer under style.
func FprintColored(w io.Writer, value any, cfg Config, reg *Registry, style render.Style) error {
	seq, err := ToSDocs(value, cfg, reg)
	if err != nil {
		return err
	}
	return render.Colored(w, seq, style)
}
