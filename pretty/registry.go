package pretty

import (
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/teleivo/gopp/internal/assert"
)

// PrinterFunc produces a Doc for v under ctx. It may return a plain string
// instead of a [doc.Doc]; [doc.Validate] accepts either.
type PrinterFunc func(v any, ctx *Context) (any, error)

// TrailingCommentFunc is a PrinterFunc variant that additionally accepts
// the trailing-comment text attached to v via [WithTrailingComment].
// Registering one declares the printer's capability to render it; a
// printer without one simply never receives trailing comment text, and
// the dispatcher warns once instead of raising, matching spec.md §9 note
// 4's "capability flag at registration time" resolution of the source's
// signature-probing trick.
type TrailingCommentFunc func(v any, ctx *Context, trailing string) (any, error)

// Printer bundles a printer's required Func with its optional trailing
// comment capability.
type Printer struct {
	Func         PrinterFunc
	TrailingFunc TrailingCommentFunc
}

type predicateEntry struct {
	predicate func(v any) bool
	printer   Printer
}

// Registry is the process-wide, three-part printer lookup structure: a
// type-keyed map, a deferred string-keyed map resolved lazily, and an
// ordered predicate list. Registration and lookup take an internal lock,
// so printers may be registered while other goroutines dispatch; the
// WarnFunc field is read without that lock.
type Registry struct {
	mu         sync.RWMutex
	byType     map[reflect.Type]Printer
	deferred   map[string]Printer
	predicates []predicateEntry

	warnMu sync.Mutex
	warned map[string]bool
	// WarnFunc receives one-line descriptions of dispatch-time recoverable
	// problems (a printer panicked, a printer lacks trailing-comment
	// support). It defaults to writing to os.Stderr; tests and embedders
	// may replace it before any dispatch call. Each distinct message is
	// only ever passed to WarnFunc once per registry, matching spec.md
	// §7's "emit a one-time warning" policy.
	WarnFunc func(msg string)
}

// Default is the registry used by [Dispatch] and every built-in printer
// registration unless a call explicitly threads a different *Registry
// through its Context.
var Default = NewRegistry()

// NewRegistry returns an empty registry with no printers registered.
func NewRegistry() *Registry {
	return &Registry{
		byType:   make(map[reflect.Type]Printer),
		deferred: make(map[string]Printer),
		warned:   make(map[string]bool),
		WarnFunc: defaultWarn,
	}
}

func (r *Registry) warn(msg string) {
	r.warnMu.Lock()
	already := r.warned[msg]
	r.warned[msg] = true
	r.warnMu.Unlock()
	if already {
		return
	}

	fn := r.WarnFunc
	if fn == nil {
		fn = defaultWarn
	}
	fn(msg)
}

// RegisterType registers p as the printer for values of exactly type rt.
// Registering a second printer for the same type is a programmer error
// (an invariant violation, not a usage mistake a caller recovers from) and
// panics via internal/assert, matching the teacher's convention for
// "should never happen given correct call sites" conditions.
func (r *Registry) RegisterType(rt reflect.Type, p Printer) error {
	if rt == nil {
		return fmt.Errorf("pretty: RegisterType: nil type")
	}
	if p.Func == nil {
		return fmt.Errorf("pretty: RegisterType(%s): Printer.Func is nil", rt)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.byType[rt]
	assert.That(!exists, "pretty: a printer is already registered for type %s", rt)

	r.byType[rt] = p
	return nil
}

// RegisterDeferred registers p under a caller-chosen name, resolved the
// first time [Dispatch] encounters a value whose reflect.Type.String()
// equals name. Resolution promotes the entry into the type-keyed registry
// and removes it from the deferred map.
func (r *Registry) RegisterDeferred(name string, p Printer) error {
	if name == "" {
		return fmt.Errorf("pretty: RegisterDeferred: empty name")
	}
	if p.Func == nil {
		return fmt.Errorf("pretty: RegisterDeferred(%q): Printer.Func is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.deferred[name]; exists {
		return fmt.Errorf("pretty: a deferred printer is already registered for %q", name)
	}
	r.deferred[name] = p
	return nil
}

// RegisterPredicate appends (pred, p) to the predicate registry. Predicates
// are tried in registration order, only after type-keyed and deferred
// lookup both fail.
func (r *Registry) RegisterPredicate(pred func(v any) bool, p Printer) error {
	if pred == nil {
		return fmt.Errorf("pretty: RegisterPredicate: nil predicate")
	}
	if p.Func == nil {
		return fmt.Errorf("pretty: RegisterPredicate: Printer.Func is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.predicates = append(r.predicates, predicateEntry{predicate: pred, printer: p})
	return nil
}

// IsRegistered reports whether rt has a printer. When checkDeferred is
// true, a deferred entry keyed by rt.String() also counts; if
// registerDeferred is also true, a matching deferred entry is promoted
// into the type-keyed registry as a side effect. checkSuperclasses has no
// effect in this Go port: Go's type system has no class hierarchy to walk
// beyond exact type identity, so only predicate-registry fallback plays
// the role the source's ancestor-chain walk does (see DESIGN.md).
func (r *Registry) IsRegistered(rt reflect.Type, checkSuperclasses, checkDeferred, registerDeferred bool) bool {
	_ = checkSuperclasses

	r.mu.RLock()
	_, ok := r.byType[rt]
	r.mu.RUnlock()
	if ok {
		return true
	}

	if !checkDeferred {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.deferred[rt.String()]
	if !ok {
		return false
	}
	if registerDeferred {
		delete(r.deferred, rt.String())
		r.byType[rt] = p
	}
	return true
}

// lookup resolves a printer for v's type following spec.md §3's order:
// (1) exact type, (2) deferred exact-type entry (promoted on match),
// (4) predicate registry. Step (3), walking a type's ancestor chain, has
// no Go analogue (see IsRegistered) and is skipped.
func (r *Registry) lookup(v any, rt reflect.Type) (Printer, bool) {
	r.mu.RLock()
	p, ok := r.byType[rt]
	r.mu.RUnlock()
	if ok {
		return p, true
	}

	if rt != nil {
		r.mu.Lock()
		if p, ok := r.deferred[rt.String()]; ok {
			delete(r.deferred, rt.String())
			r.byType[rt] = p
			r.mu.Unlock()
			return p, true
		}
		r.mu.Unlock()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, entry := range r.predicates {
		if entry.predicate(v) {
			return entry.printer, true
		}
	}

	return Printer{}, false
}

func defaultWarn(msg string) {
	fmt.Fprintln(os.Stderr, "pretty:", msg)
}
