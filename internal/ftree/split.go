package ftree

// Split produces (left, right) such that left holds the first i leaves
// and right holds the remaining Measure(t)-i. Fails with ErrOutOfRange
// when i is outside [0, Measure(t)].
func Split[T any](t *Tree[T], i int) (*Tree[T], *Tree[T], error) {
	m := measureTree(t)
	if i < 0 || i > m {
		tracer().Debugf("Split(%d): out of range for measure %d", i, m)
		return nil, nil, ErrOutOfRange
	}
	if i == 0 {
		return nil, t, nil
	}
	if i == m {
		return t, nil, nil
	}
	tracer().Debugf("Split(%d) of %d: descending to locate boundary element", i, m)
	l, x, r := splitTreeAt(t, i)
	return l, pushLeft(r, x), nil
}

// splitNode splits a 2-3 node's children at local index i, treating the
// node's children as a digit of the same size (via node23.asDigit).
func splitNode[T any](i int, nd *node23[T]) (left []child[T], at child[T], right []child[T]) {
	return nd.asDigit().splitAt(i)
}

// splitTreeAt locates the single element at index i and returns the
// trees strictly to its left and right, plus the located element itself
// (as a raw child, since it may come from anywhere in the level
// structure). Requires 0 <= i < Measure(t) and t non-nil.
func splitTreeAt[T any](t *Tree[T], i int) (*Tree[T], child[T], *Tree[T]) {
	assert(t != nil, "splitTreeAt called on empty tree")
	if t.one != nil {
		return nil, t.one, nil
	}
	sizePr := t.left.measure()
	if i < sizePr {
		l, x, r := t.left.splitAt(i)
		var leftTree *Tree[T]
		if len(l) > 0 {
			leftTree = treeFromDigitItems(l)
		}
		rightTree := deepL(r, t.spine, t.right)
		return leftTree, x, rightTree
	}
	sizeM := measureTree(t.spine)
	if i < sizePr+sizeM {
		ml, xs, mr := splitTreeAt(t.spine, i-sizePr)
		nd, ok := xs.(*node23[T])
		assert(ok, "splitTreeAt: spine element is not a node23")
		l, x, r := splitNode(i-sizePr-measureTree(ml), nd)
		leftTree := deepR(t.left, ml, l)
		rightTree := deepL(r, mr, t.right)
		return leftTree, x, rightTree
	}
	l, x, r := t.right.splitAt(i - sizePr - sizeM)
	var rightTree *Tree[T]
	if len(r) > 0 {
		rightTree = treeFromDigitItems(r)
	}
	leftTree := deepR(t.left, t.spine, l)
	return leftTree, x, rightTree
}
