package ftree

// Tree is a persistent 2-3 finger tree over elements of type T, annotated
// with a cached additive measure (element count). A nil *Tree[T] is the
// canonical Empty tree — there is exactly one such value per element
// type, matching Go's own nil-means-absent convention (mirrored from the
// teacher's btree.Tree, whose nil root means empty).
//
// A non-nil tree with a non-nil one field is a Single; a non-nil tree
// with a nil one field is a Deep, and its left/right digits are always
// populated (size 1..4).
type Tree[T any] struct {
	m     int
	one   child[T]
	left  digit[T]
	spine *Tree[T]
	right digit[T]
}

// Measure returns the element count in O(1).
func Measure[T any](t *Tree[T]) int {
	return measureTree(t)
}

func measureTree[T any](t *Tree[T]) int {
	if t == nil {
		return 0
	}
	if t.one != nil {
		return t.one.measure()
	}
	return t.m
}

func makeDeep[T any](left digit[T], spine *Tree[T], right digit[T]) *Tree[T] {
	return &Tree[T]{
		left:  left,
		spine: spine,
		right: right,
		m:     left.measure() + measureTree(spine) + right.measure(),
	}
}

func makeSingle[T any](x child[T]) *Tree[T] {
	return &Tree[T]{one: x}
}

// Left returns the leftmost element. Fails with ErrEmpty when the tree
// has no elements.
func Left[T any](t *Tree[T]) (T, error) {
	var zero T
	if t == nil {
		return zero, ErrEmpty
	}
	if t.one != nil {
		return descendChild[T](t.one, 0), nil
	}
	return descendChild[T](t.left.kid[0], 0), nil
}

// Right mirrors Left for the rightmost element.
func Right[T any](t *Tree[T]) (T, error) {
	var zero T
	if t == nil {
		return zero, ErrEmpty
	}
	if t.one != nil {
		return descendChild[T](t.one, 0), nil
	}
	last := t.right.kid[t.right.n-1]
	return descendChild[T](last, last.measure()-1), nil
}

// PushLeft inserts a new leaf at the front and returns a new tree.
func PushLeft[T any](t *Tree[T], x T) *Tree[T] {
	return pushLeft[T](t, leaf[T]{v: x})
}

// PushRight inserts a new leaf at the back and returns a new tree.
func PushRight[T any](t *Tree[T], x T) *Tree[T] {
	return pushRight[T](t, leaf[T]{v: x})
}

func pushLeft[T any](t *Tree[T], x child[T]) *Tree[T] {
	if t == nil {
		return makeSingle(x)
	}
	if t.one != nil {
		return makeDeep(digit1(x), nil, digit1(t.one))
	}
	if !t.left.isFull() {
		return makeDeep(t.left.prepend(x), t.spine, t.right)
	}
	tracer().Debugf("pushLeft: left digit full, pushing node3 into spine")
	d := t.left
	newLeftDigit := newDigit[T](x, d.kid[0])
	node := newNode3[T](d.kid[1], d.kid[2], d.kid[3])
	newSpine := pushLeft(t.spine, node)
	return makeDeep(newLeftDigit, newSpine, t.right)
}

func pushRight[T any](t *Tree[T], x child[T]) *Tree[T] {
	if t == nil {
		return makeSingle(x)
	}
	if t.one != nil {
		return makeDeep(digit1(t.one), nil, digit1(x))
	}
	if !t.right.isFull() {
		return makeDeep(t.left, t.spine, t.right.append(x))
	}
	tracer().Debugf("pushRight: right digit full, pushing node3 into spine")
	d := t.right
	node := newNode3[T](d.kid[0], d.kid[1], d.kid[2])
	newSpine := pushRight(t.spine, node)
	newRightDigit := newDigit[T](d.kid[3], x)
	return makeDeep(t.left, newSpine, newRightDigit)
}

// PopLeft removes the frontmost leaf and returns its value along with the
// remaining tree. Fails with ErrEmpty when the tree has no elements.
func PopLeft[T any](t *Tree[T]) (T, *Tree[T], error) {
	var zero T
	c, rest, ok := popLeft(t)
	if !ok {
		return zero, nil, ErrEmpty
	}
	lf, ok := c.(leaf[T])
	assert(ok, "PopLeft: resolved to non-leaf child")
	return lf.v, rest, nil
}

// PopRight mirrors PopLeft for the back of the tree.
func PopRight[T any](t *Tree[T]) (*Tree[T], T, error) {
	var zero T
	rest, c, ok := popRight(t)
	if !ok {
		return nil, zero, ErrEmpty
	}
	lf, ok := c.(leaf[T])
	assert(ok, "PopRight: resolved to non-leaf child")
	return rest, lf.v, nil
}

func popLeft[T any](t *Tree[T]) (child[T], *Tree[T], bool) {
	if t == nil {
		return nil, nil, false
	}
	if t.one != nil {
		return t.one, nil, true
	}
	head, rest := t.left.dropFirst()
	return head, deepL(rest, t.spine, t.right), true
}

func popRight[T any](t *Tree[T]) (*Tree[T], child[T], bool) {
	if t == nil {
		return nil, nil, false
	}
	if t.one != nil {
		return nil, t.one, true
	}
	rest, last := t.right.dropLast()
	return deepR(t.left, t.spine, rest), last, true
}

// deepL rebuilds a Deep tree whose left digit may have become empty
// (0..3 leftover items), borrowing the frontmost spine node to refill it,
// or collapsing to a tree built purely from the right digit when the
// spine is also empty.
func deepL[T any](leftItems []child[T], spine *Tree[T], right digit[T]) *Tree[T] {
	if len(leftItems) > 0 {
		return makeDeep(digitFromSlice(leftItems), spine, right)
	}
	if spine != nil {
		tracer().Debugf("deepL: left digit empty, borrowing node3 from spine")
		headNode, restSpine, ok := popLeft(spine)
		assert(ok, "deepL: spine reported empty unexpectedly")
		nd, ok := headNode.(*node23[T])
		assert(ok, "deepL: spine child is not a node23")
		return makeDeep(nd.asDigit(), restSpine, right)
	}
	tracer().Debugf("deepL: left digit and spine both empty, collapsing to right digit")
	return collapseDigit(right.items())
}

// deepR mirrors deepL for a right digit that may have become empty.
func deepR[T any](left digit[T], spine *Tree[T], rightItems []child[T]) *Tree[T] {
	if len(rightItems) > 0 {
		return makeDeep(left, spine, digitFromSlice(rightItems))
	}
	if spine != nil {
		tracer().Debugf("deepR: right digit empty, borrowing node3 from spine")
		restSpine, lastNode, ok := popRight(spine)
		assert(ok, "deepR: spine reported empty unexpectedly")
		nd, ok := lastNode.(*node23[T])
		assert(ok, "deepR: spine child is not a node23")
		return makeDeep(left, restSpine, nd.asDigit())
	}
	tracer().Debugf("deepR: right digit and spine both empty, collapsing to left digit")
	return collapseDigit(left.items())
}

// collapseDigit (and treeFromDigitItems, the name used by split)
// builds a tree purely from a flat run of 0..4 children, used whenever a
// Deep tree loses both one digit's last item and its spine in the same
// operation.
func collapseDigit[T any](items []child[T]) *Tree[T] {
	return treeFromDigitItems(items)
}

func treeFromDigitItems[T any](items []child[T]) *Tree[T] {
	var t *Tree[T]
	for _, it := range items {
		t = pushRight(t, it)
	}
	return t
}
