// Command goppfmt is a small demo CLI for package pretty: it reads a JSON
// value from stdin and writes its pretty-printed rendering to stdout,
// color-coding the output when stdout is a terminal.
//
// It exists to exercise package pretty through a real I/O path; it is not
// the deliverable.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"

	"golang.org/x/term"

	"github.com/teleivo/gopp/internal/version"
	"github.com/teleivo/gopp/layout"
	"github.com/teleivo/gopp/pretty"
	"github.com/teleivo/gopp/render"
)

func main() {
	if err := run(os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(args []string, r io.Reader, w io.Writer, wErr io.Writer) error {
	flags := flag.NewFlagSet(args[0], flag.ExitOnError)
	flags.SetOutput(wErr)

	width := flags.Int("width", layout.DefaultWidth, "page width in columns; 0 auto-detects the terminal width of stdout")
	ribbon := flags.Float64("ribbon", layout.DefaultRibbonFraction, "fraction of width usable for non-indentation content")
	depth := flags.Int("depth", pretty.Unbounded, "maximum nesting depth before a printer emits a placeholder")
	maxSeqLen := flags.Int("max-seq-len", pretty.DefaultMaxSeqLen, "maximum elements shown per sequence or mapping before truncation")
	sortKeys := flags.Bool("sort-keys", false, "sort mapping keys in the output")
	color := flags.String("color", "auto", "colorize output: 'auto', 'always', or 'never'")
	showVersion := flags.Bool("version", false, "print the version and exit")
	cpuProfile := flags.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile := flags.String("memprofile", "", "write memory profile to `file`")

	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintln(w, version.Version())
		return nil
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	var value any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&value); err != nil && err != io.EOF {
		return fmt.Errorf("failed to decode JSON input: %v", err)
	}

	cfg := pretty.DefaultConfig()
	cfg.Width = resolveWidth(*width, w)
	cfg.RibbonFraction = *ribbon
	cfg.Depth = *depth
	cfg.MaxSeqLen = *maxSeqLen
	cfg.SortMappingKeys = *sortKeys

	useColor, err := resolveColor(*color, w)
	if err != nil {
		return err
	}

	if useColor {
		err = pretty.FprintColored(w, value, cfg, nil, render.DefaultStyle())
	} else {
		err = pretty.Fprint(w, value, cfg, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to render value: %v", err)
	}
	fmt.Fprintln(w)

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			return fmt.Errorf("could not create memory profile: %v", err)
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("could not write memory profile: %v", err)
		}
	}

	return nil
}

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	if f, ok := w.(*os.File); ok && render.IsTerminal(f) {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return layout.DefaultWidth
}

func resolveColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)
		return ok && render.IsTerminal(f), nil
	default:
		return false, fmt.Errorf("invalid -color=%q: want 'auto', 'always', or 'never'", mode)
	}
}
