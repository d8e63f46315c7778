package ftree

// ForEach walks leaf elements in order, front to back. Iteration stops
// early if fn returns false.
func ForEach[T any](t *Tree[T], fn func(v T) bool) {
	if t == nil || fn == nil {
		return
	}
	forEachChild(t, fn)
}

// ForEachBack mirrors ForEach, walking back to front.
func ForEachBack[T any](t *Tree[T], fn func(v T) bool) {
	if t == nil || fn == nil {
		return
	}
	forEachChildBack(t, fn)
}

func forEachChild[T any](t *Tree[T], fn func(v T) bool) bool {
	if t == nil {
		return true
	}
	if t.one != nil {
		return forEachLeafUnder(t.one, fn)
	}
	for _, c := range t.left.items() {
		if !forEachLeafUnder(c, fn) {
			return false
		}
	}
	if !forEachChild(t.spine, fn) {
		return false
	}
	for _, c := range t.right.items() {
		if !forEachLeafUnder(c, fn) {
			return false
		}
	}
	return true
}

func forEachLeafUnder[T any](c child[T], fn func(v T) bool) bool {
	if lf, ok := c.(leaf[T]); ok {
		return fn(lf.v)
	}
	nd := c.(*node23[T])
	for _, k := range nd.children() {
		if !forEachLeafUnder(k, fn) {
			return false
		}
	}
	return true
}

func forEachChildBack[T any](t *Tree[T], fn func(v T) bool) bool {
	if t == nil {
		return true
	}
	if t.one != nil {
		return forEachLeafUnderBack(t.one, fn)
	}
	items := t.right.items()
	for i := len(items) - 1; i >= 0; i-- {
		if !forEachLeafUnderBack(items[i], fn) {
			return false
		}
	}
	if !forEachChildBack(t.spine, fn) {
		return false
	}
	items = t.left.items()
	for i := len(items) - 1; i >= 0; i-- {
		if !forEachLeafUnderBack(items[i], fn) {
			return false
		}
	}
	return true
}

func forEachLeafUnderBack[T any](c child[T], fn func(v T) bool) bool {
	if lf, ok := c.(leaf[T]); ok {
		return fn(lf.v)
	}
	nd := c.(*node23[T])
	kids := nd.children()
	for i := len(kids) - 1; i >= 0; i-- {
		if !forEachLeafUnderBack(kids[i], fn) {
			return false
		}
	}
	return true
}
