package ftree

// digit is a small ordered buffer of 1 to 4 children, the unit of
// end-manipulation at a given tree level. Empty digits do not exist.
type digit[T any] struct {
	kid [4]child[T]
	n   uint8 // 1..4
}

func digit1[T any](a child[T]) digit[T] {
	return digit[T]{kid: [4]child[T]{a}, n: 1}
}

func newDigit[T any](items ...child[T]) digit[T] {
	assert(len(items) >= 1 && len(items) <= 4, "newDigit requires 1..4 children")
	d := digit[T]{n: uint8(len(items))}
	copy(d.kid[:], items)
	return d
}

func (d digit[T]) items() []child[T] {
	return d.kid[:d.n]
}

func (d digit[T]) measure() int {
	m := 0
	for _, c := range d.items() {
		m += c.measure()
	}
	return m
}

func (d digit[T]) isFull() bool {
	return d.n == 4
}

// prepend returns a new digit with x at the front. Panics (internal
// Overflow, per spec.md §7) if the digit is already at size 4 — callers
// must check isFull first and cascade into the spine instead.
func (d digit[T]) prepend(x child[T]) digit[T] {
	assert(d.n < 4, "digit prepend overflow")
	var out digit[T]
	out.n = d.n + 1
	out.kid[0] = x
	copy(out.kid[1:], d.kid[:d.n])
	return out
}

// append returns a new digit with x at the back. Same overflow contract
// as prepend.
func (d digit[T]) append(x child[T]) digit[T] {
	assert(d.n < 4, "digit append overflow")
	var out digit[T]
	out.n = d.n + 1
	copy(out.kid[:], d.kid[:d.n])
	out.kid[d.n] = x
	return out
}

// dropFirst returns the first child and the remaining digit contents as
// a plain slice (which may be empty — the caller decides how to rebuild
// a tree shape from it).
func (d digit[T]) dropFirst() (child[T], []child[T]) {
	assert(d.n >= 1, "dropFirst called on impossible empty digit")
	rest := append([]child[T](nil), d.kid[1:d.n]...)
	return d.kid[0], rest
}

// dropLast is the mirror of dropFirst.
func (d digit[T]) dropLast() ([]child[T], child[T]) {
	assert(d.n >= 1, "dropLast called on impossible empty digit")
	rest := append([]child[T](nil), d.kid[:d.n-1]...)
	return rest, d.kid[d.n-1]
}

// splitAt locates the child at local measure offset i (0 <= i < d.measure())
// and returns the children strictly to its left, the located child itself,
// and the children strictly to its right.
func (d digit[T]) splitAt(i int) (left []child[T], at child[T], right []child[T]) {
	assert(i >= 0 && i < d.measure(), "digit splitAt index out of range")
	remaining := i
	for idx := 0; idx < int(d.n); idx++ {
		c := d.kid[idx]
		m := c.measure()
		if remaining < m {
			return append([]child[T](nil), d.kid[:idx]...), c, append([]child[T](nil), d.kid[idx+1:d.n]...)
		}
		remaining -= m
	}
	assert(false, "digit splitAt fell through")
	return nil, nil, nil
}

func digitFromSlice[T any](items []child[T]) digit[T] {
	assert(len(items) >= 1 && len(items) <= 4, "digitFromSlice requires 1..4 children")
	return newDigit(items...)
}
