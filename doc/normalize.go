package doc

// Normalize rewrites d into canonical form: it removes [Nil]s, flattens
// nested [Concat] (a [Fill] nested in a Fill is kept as is), and hoists [AlwaysBreak] outward so the layout
// engine can check it near the top of each [Group] cheaply.
//
// Normalize always renormalizes both branches of a [FlatChoice] eagerly
// rather than caching per-branch on first access; spec.md §9 notes that the
// reference implementation's lazy, cached normalization of FlatChoice is an
// optimization detail that tests must not depend on. Normalize is
// idempotent: Normalize(Normalize(d)) produces a Doc equal to Normalize(d).
func Normalize(d Doc) Doc {
	switch t := d.(type) {
	case Text:
		return t
	case nilDoc:
		return t
	case hardLine:
		return t
	case Concat:
		return normalizeConcat(t)
	case Nest:
		inner := Normalize(t.Doc)
		if ab, ok := inner.(AlwaysBreak); ok {
			return AlwaysBreak{Doc: Nest{Indent: t.Indent, Doc: ab.Doc}}
		}
		return Nest{Indent: t.Indent, Doc: inner}
	case FlatChoice:
		broken := Normalize(t.WhenBroken)
		if ab, ok := broken.(AlwaysBreak); ok {
			return ab
		}
		flat := Normalize(t.WhenFlat)
		if _, ok := flat.(AlwaysBreak); ok {
			// When the flat branch is forced to break, only the broken
			// branch can ever be chosen, so collapse to it.
			return broken
		}
		return FlatChoice{WhenBroken: broken, WhenFlat: flat}
	case Group:
		inner := Normalize(t.Doc)
		if ab, ok := inner.(AlwaysBreak); ok {
			return ab
		}
		if inner == Nil {
			return Nil
		}
		return Group{Doc: inner}
	case AlwaysBreak:
		inner := Normalize(t.Doc)
		if ab, ok := inner.(AlwaysBreak); ok {
			return ab
		}
		return AlwaysBreak{Doc: inner}
	case Fill:
		return normalizeFill(t)
	case Contextual:
		return t
	case Annotated:
		return Annotated{Doc: Normalize(t.Doc), Annotation: t.Annotation}
	default:
		panic("doc: unknown Doc variant in Normalize")
	}
}

func normalizeConcat(c Concat) Doc {
	var out []Doc
	propagateBreak := false
	for _, child := range c {
		n := Normalize(child)
		switch v := n.(type) {
		case Concat:
			out = append(out, v...)
		case AlwaysBreak:
			propagateBreak = true
			out = append(out, v.Doc)
		case nilDoc:
			continue
		default:
			out = append(out, v)
		}
	}

	var res Doc
	switch len(out) {
	case 0:
		res = Nil
	case 1:
		res = out[0]
	default:
		res = Concat(out)
	}

	if propagateBreak {
		res = AlwaysBreak{Doc: res}
	}
	return res
}

func normalizeFill(f Fill) Doc {
	var out []Doc
	propagateBreak := false
	for _, child := range f {
		n := Normalize(child)
		if ab, ok := n.(AlwaysBreak); ok {
			propagateBreak = true
			n = ab.Doc
		}
		if n == Nil {
			continue
		}
		out = append(out, n)
	}

	if len(out) == 0 {
		return Nil
	}

	var res Doc = Fill(out)
	if propagateBreak {
		res = AlwaysBreak{Doc: res}
	}
	return res
}
