package ftree

// Concat concatenates a followed by b, sharing every untouched subtree
// of both inputs, in amortized O(log(min(Measure(a), Measure(b)))).
func Concat[T any](a, b *Tree[T]) *Tree[T] {
	tracer().Debugf("Concat: %d + %d elements", measureTree(a), measureTree(b))
	return app3(a, nil, b)
}

// app3 is the standard finger-tree concatenation algorithm: the right
// digit of a, any explicit middle children, and the left digit of b are
// regrouped into 2-3 nodes (per the spec's residue table, see
// nodesFromChildren) and spliced in between the two spines, which are
// concatenated recursively with those nodes as their own middle run.
func app3[T any](a *Tree[T], mid []child[T], b *Tree[T]) *Tree[T] {
	switch {
	case a == nil:
		return prependAll(mid, b)
	case b == nil:
		return appendAll(a, mid)
	case a.one != nil:
		return pushLeft(app3[T](nil, mid, b), a.one)
	case b.one != nil:
		return pushRight(app3[T](a, mid, nil), b.one)
	default:
		combined := make([]child[T], 0, int(a.right.n)+len(mid)+int(b.left.n))
		combined = append(combined, a.right.items()...)
		combined = append(combined, mid...)
		combined = append(combined, b.left.items()...)
		tracer().Debugf("app3: regrouping %d boundary children into 2-3 nodes", len(combined))
		grouped := nodesFromChildren(combined)
		midNodes := make([]child[T], len(grouped))
		for i, nd := range grouped {
			midNodes[i] = nd
		}
		newSpine := app3(a.spine, midNodes, b.spine)
		return makeDeep(a.left, newSpine, b.right)
	}
}

// prependAll conses each item of mid onto t, right to left, so the
// resulting order is mid[0], mid[1], ..., then t's own elements.
func prependAll[T any](mid []child[T], t *Tree[T]) *Tree[T] {
	for i := len(mid) - 1; i >= 0; i-- {
		t = pushLeft(t, mid[i])
	}
	return t
}

// appendAll snocs each item of mid onto t, left to right.
func appendAll[T any](t *Tree[T], mid []child[T]) *Tree[T] {
	for _, c := range mid {
		t = pushRight(t, c)
	}
	return t
}
