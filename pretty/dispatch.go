package pretty

import (
	"fmt"
	"reflect"

	"github.com/teleivo/gopp/doc"
)

// Dispatch converts v into a Doc under ctx, following spec.md §4.B:
// unwrap any comment wrapper, check for recursion, look up and call a
// printer (catching panics), validate its return value, and re-attach any
// captured comment to the result.
//
// ctx.Registry() supplies the printer lookup chain; pass a *Context built
// with a specific *Registry to dispatch against something other than
// [Default].
func Dispatch(v any, ctx *Context) (doc.Doc, error) {
	inner, commentText, trailingText, hasComment, hasTrailing := unwrapComments(v)

	if ctx.isVisited(inner) {
		return recursionPlaceholder(inner), nil
	}

	id, tracked := ctx.startVisit(inner)
	if tracked {
		defer ctx.endVisit(id)
	}

	rt := reflect.TypeOf(inner)

	if ctx.DepthLeft == 0 {
		d := depthPlaceholder(rt)
		if hasComment {
			d = doc.Annotated{Doc: d, Annotation: asCommentAnnotation(commentText)}
		}
		return d, nil
	}

	reg := ctx.Registry()
	printer, ok := reg.lookup(inner, rt)

	var (
		result any
		err    error
	)
	if !ok {
		result = fmt.Sprintf("%#v", inner)
	} else {
		result, err = runPrinter(reg, printer, inner, ctx, trailingText, hasTrailing)
	}

	if err != nil {
		reg.warn(fmt.Sprintf("printer for %s failed: %v; falling back to default representation", typeName(rt), err))
		result = fmt.Sprintf("%#v", inner)
	}

	d, verr := doc.Validate(result)
	if verr != nil {
		return nil, fmt.Errorf("pretty: printer for %s returned neither text nor a Doc: %w", typeName(rt), verr)
	}

	if hasComment {
		d = doc.Annotated{Doc: d, Annotation: asCommentAnnotation(commentText)}
	}

	return d, nil
}

// runPrinter calls printer.Func (or printer.TrailingFunc, if v carries a
// trailing comment and the printer declared support for one), recovering
// from any panic the printer raises and turning it into an error so the
// caller can warn-and-fall-back instead of crashing, matching spec.md
// §7's "Printer raised during dispatch" policy.
func runPrinter(reg *Registry, p Printer, v any, ctx *Context, trailing string, hasTrailing bool) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	if hasTrailing {
		if p.TrailingFunc != nil {
			return p.TrailingFunc(v, ctx, trailing)
		}
		reg.warn(fmt.Sprintf("printer for %T does not support trailing comments; it will not show up in output", v))
	}
	return p.Func(v, ctx)
}

func typeName(rt reflect.Type) string {
	if rt == nil {
		return "<nil>"
	}
	return rt.String()
}

// depthPlaceholder renders spec.md §7's "Depth exhausted" placeholder: a
// single-element `TYPE(...)` standing in for a value the dispatcher will
// not recurse into any further.
func depthPlaceholder(rt reflect.Type) doc.Doc {
	return doc.Concat{QualifiedIdentifier(rt), doc.Text("(...)")}
}

// recursionPlaceholder renders spec.md §8 property 6's required
// "Recursion on" substring, naming the cycle root's type and identity.
func recursionPlaceholder(v any) doc.Doc {
	id, _ := identity(v)
	return doc.Text(fmt.Sprintf("<Recursion on %s with id=%d>", typeName(reflect.TypeOf(v)), id))
}
