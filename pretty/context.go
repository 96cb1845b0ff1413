// Package pretty implements the value-to-Doc dispatcher: a process-wide
// printer registry (type-keyed, deferred, predicate), the per-call
// PrettyContext threaded through recursive printer calls, the built-in
// printers for primitive and container shapes, the comment-annotation
// wrappers, and the function-call Doc builder.
//
// It is a Go port of the dispatch and registry machinery in
// tommikaikkonen/prettyprinter (prettyprinter.py), adapted to Go's static
// type system: dynamic dispatch on the Python type hierarchy becomes
// dispatch on reflect.Type, and the deferred-by-qualified-name registry is
// keyed by a caller-chosen string resolved against reflect.Type.String().
package pretty

import "math"

// MultilineStrategy selects how a string value that does not fit on one
// line is rendered across several lines.
type MultilineStrategy int

const (
	// Plain starts each physical line with no special framing.
	Plain MultilineStrategy = iota
	// Parens wraps the lines in a single pair of parentheses.
	Parens
	// Indented starts the lines on a new line and indents all of them by
	// Config.Indent.
	Indented
	// Hang keeps the first line in place and indents every line after the
	// first by Config.Indent.
	Hang
)

// Unbounded marks a [Config.Depth] with no recursion limit.
const Unbounded = math.MaxInt

// Config holds the defaults applied to every top-level call into the
// dispatcher: indentation increment, recursion depth budget, layout width
// and ribbon fraction, container truncation length, and key ordering for
// map-like values.
type Config struct {
	Indent            int
	Depth             int
	Width             int
	RibbonFraction    float64
	MaxSeqLen         int
	SortMappingKeys   bool
	MultilineStrategy MultilineStrategy
}

// DefaultIndent and DefaultMaxSeqLen mirror the reference implementation's
// PrettyContext constructor defaults (indent=4, max_seq_len=1000). The width
// and ribbon fraction in [DefaultConfig] equal layout.DefaultWidth and
// layout.DefaultRibbonFraction.
const (
	DefaultIndent    = 4
	DefaultMaxSeqLen = 1000
)

// DefaultConfig returns the configuration new top-level calls use unless
// the caller overrides it.
func DefaultConfig() Config {
	return Config{
		Indent:            DefaultIndent,
		Depth:             Unbounded,
		Width:             79,
		RibbonFraction:    0.9,
		MaxSeqLen:         DefaultMaxSeqLen,
		SortMappingKeys:   false,
		MultilineStrategy: Plain,
	}
}

// Context is the per-call state threaded through every printer
// invocation. It is conceptually immutable and passed around by value
// (through a pointer for sharing the mutable fields below): Nested,
// Assoc, and UseMultilineStrategy all return a new *Context rather than
// mutating the receiver, except for the visited set, which is
// intentionally a single shared, mutable structure used for cycle
// detection across an entire top-level call.
type Context struct {
	Indent            int
	DepthLeft         int
	MultilineStrategy MultilineStrategy
	MaxSeqLen         int
	SortMappingKeys   bool

	registry *Registry
	visited  *visitSet
	userCtx  map[string]any
}

// NewContext creates the root Context for a top-level dispatch call,
// using reg for printer lookup (the zero value selects [Default]).
func NewContext(cfg Config, reg *Registry) *Context {
	if reg == nil {
		reg = Default
	}
	return &Context{
		Indent:            cfg.Indent,
		DepthLeft:         cfg.Depth,
		MultilineStrategy: cfg.MultilineStrategy,
		MaxSeqLen:         cfg.MaxSeqLen,
		SortMappingKeys:   cfg.SortMappingKeys,
		registry:          reg,
		visited:           newVisitSet(),
		userCtx:           nil,
	}
}

func (c *Context) clone() *Context {
	n := *c
	return &n
}

// Nested returns a copy of c with DepthLeft decremented by one, mirroring
// PrettyContext.nested_call. Printers descending into child values must
// pass the nested context down, not c itself.
func (c *Context) Nested() *Context {
	n := c.clone()
	if n.DepthLeft != Unbounded {
		n.DepthLeft--
	}
	return n
}

// UseMultilineStrategy returns a copy of c with MultilineStrategy replaced.
func (c *Context) UseMultilineStrategy(s MultilineStrategy) *Context {
	n := c.clone()
	n.MultilineStrategy = s
	return n
}

// Assoc returns a copy of c whose user context has key set to value,
// leaving c's own user context untouched (a whole-map functional update,
// mirroring PrettyContext.assoc).
func (c *Context) Assoc(key string, value any) *Context {
	n := c.clone()
	m := make(map[string]any, len(c.userCtx)+1)
	for k, v := range c.userCtx {
		m[k] = v
	}
	m[key] = value
	n.userCtx = m
	return n
}

// Get returns the user-context value stored under key, or nil if absent.
func (c *Context) Get(key string) any {
	return c.userCtx[key]
}

// Registry returns the printer registry this context dispatches through.
func (c *Context) Registry() *Registry {
	return c.registry
}
