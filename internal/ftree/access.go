package ftree

// descendChild walks down through nested node23 levels to the leaf that
// holds local index i within child c, returning its element. It is the
// single place that "unwraps" the erased child[T] representation down
// to T, regardless of how many spine levels deep c actually sits.
func descendChild[T any](c child[T], i int) T {
	if lf, ok := c.(leaf[T]); ok {
		assert(i == 0, "descendChild: leaf reached with nonzero remainder")
		return lf.v
	}
	nd := c.(*node23[T])
	remaining := i
	for _, k := range nd.children() {
		m := k.measure()
		if remaining < m {
			return descendChild[T](k, remaining)
		}
		remaining -= m
	}
	assert(false, "descendChild: index exceeded node measure")
	var zero T
	return zero
}

// replaceInChild is the write-side mirror of descendChild: it returns a
// new child with the leaf at local index i replaced by v, sharing every
// untouched sibling and node.
func replaceInChild[T any](c child[T], i int, v T) child[T] {
	if _, ok := c.(leaf[T]); ok {
		assert(i == 0, "replaceInChild: leaf reached with nonzero remainder")
		return leaf[T]{v: v}
	}
	nd := c.(*node23[T])
	remaining := i
	for idx := 0; idx < int(nd.n); idx++ {
		k := nd.kid[idx]
		m := k.measure()
		if remaining < m {
			replaced := replaceInChild(k, remaining, v)
			switch nd.n {
			case 2:
				if idx == 0 {
					return newNode2(replaced, nd.kid[1])
				}
				return newNode2(nd.kid[0], replaced)
			default:
				switch idx {
				case 0:
					return newNode3(replaced, nd.kid[1], nd.kid[2])
				case 1:
					return newNode3(nd.kid[0], replaced, nd.kid[2])
				default:
					return newNode3(nd.kid[0], nd.kid[1], replaced)
				}
			}
		}
		remaining -= m
	}
	assert(false, "replaceInChild: index exceeded node measure")
	return nil
}

// locate finds which item of items holds local measure offset i and the
// remaining offset within that item.
func locate[T any](items []child[T], i int) (idx int, local int) {
	remaining := i
	for idx, k := range items {
		m := k.measure()
		if remaining < m {
			return idx, remaining
		}
		remaining -= m
	}
	assert(false, "locate: index exceeded items measure")
	return 0, 0
}

// Get returns the leaf element at index i. Fails with ErrOutOfRange when
// i is outside [0, Measure(t)).
func Get[T any](t *Tree[T], i int) (T, error) {
	var zero T
	if t == nil || i < 0 || i >= measureTree(t) {
		return zero, ErrOutOfRange
	}
	return treeGet(t, i), nil
}

func treeGet[T any](t *Tree[T], i int) T {
	assert(t != nil, "treeGet called on empty tree")
	if t.one != nil {
		return descendChild[T](t.one, i)
	}
	lm := t.left.measure()
	if i < lm {
		idx, local := locate(t.left.items(), i)
		return descendChild[T](t.left.kid[idx], local)
	}
	i -= lm
	sm := measureTree(t.spine)
	if i < sm {
		return treeGet(t.spine, i)
	}
	i -= sm
	idx, local := locate(t.right.items(), i)
	return descendChild[T](t.right.kid[idx], local)
}

// Set returns a new tree with the element at index i replaced by v.
// Fails with ErrOutOfRange when i is outside [0, Measure(t)).
func Set[T any](t *Tree[T], i int, v T) (*Tree[T], error) {
	if t == nil || i < 0 || i >= measureTree(t) {
		return nil, ErrOutOfRange
	}
	return treeSet(t, i, v), nil
}

func treeSet[T any](t *Tree[T], i int, v T) *Tree[T] {
	assert(t != nil, "treeSet called on empty tree")
	if t.one != nil {
		return &Tree[T]{one: replaceInChild(t.one, i, v)}
	}
	lm := t.left.measure()
	if i < lm {
		idx, local := locate(t.left.items(), i)
		items := append([]child[T](nil), t.left.items()...)
		items[idx] = replaceInChild(items[idx], local, v)
		return makeDeep(digitFromSlice(items), t.spine, t.right)
	}
	i -= lm
	sm := measureTree(t.spine)
	if i < sm {
		return makeDeep(t.left, treeSet(t.spine, i, v), t.right)
	}
	i -= sm
	idx, local := locate(t.right.items(), i)
	items := append([]child[T](nil), t.right.items()...)
	items[idx] = replaceInChild(items[idx], local, v)
	return makeDeep(t.left, t.spine, digitFromSlice(items))
}
