package imms

import (
	"github.com/npillmayer/imms/internal/ftree"
)

// Seq is a persistent, ordered sequence of elements of type T. The zero
// value is a valid, empty sequence — Seq[T]{} behaves exactly like
// Empty[T](), mirroring the teacher's Cord{} convention.
type Seq[T any] struct {
	t *ftree.Tree[T]
}

// Empty returns the canonical empty sequence.
func Empty[T any]() Seq[T] {
	return Seq[T]{}
}

// Of builds a sequence from a fixed list of elements.
func Of[T any](xs ...T) Seq[T] {
	return OfSlice(xs)
}

// OfSlice builds a sequence from a Go slice, copying no more than the
// slice's own backing: the tree's leaves hold the elements by value.
func OfSlice[T any](xs []T) Seq[T] {
	var t *ftree.Tree[T]
	for _, x := range xs {
		t = ftree.PushRight(t, x)
	}
	return Seq[T]{t: t}
}

// OfSeq builds a sequence from a Go 1.23-style iterator, the idiomatic
// stand-in for spec.md's "of-iterable" constructor. Iterates the source
// exactly once, satisfying the builder contract of spec.md §5.
func OfSeq[T any](src func(yield func(T) bool)) (Seq[T], error) {
	if src == nil {
		return Seq[T]{}, ErrNullArgument
	}
	var t *ftree.Tree[T]
	src(func(v T) bool {
		t = ftree.PushRight(t, v)
		return true
	})
	return Seq[T]{t: t}, nil
}

// ToSlice materializes the sequence to a Go slice in forward order. This
// may be expensive for large sequences — as with the teacher's
// Cord.String(), clients working with large sequences should prefer
// Iterate or Get over materializing the whole thing.
func (s Seq[T]) ToSlice() []T {
	out := make([]T, 0, s.Count())
	ftree.ForEach(s.t, func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Count returns the cached element count in O(1).
func (s Seq[T]) Count() int {
	return ftree.Measure(s.t)
}

// IsEmpty reports whether Count() == 0.
func (s Seq[T]) IsEmpty() bool {
	return s.Count() == 0
}

// First returns the leftmost element. Fails with ErrEmpty if the
// sequence has no elements.
func (s Seq[T]) First() (T, error) {
	v, err := ftree.Left(s.t)
	return v, mapTreeErr(err)
}

// Last returns the rightmost element. Fails with ErrEmpty if the
// sequence has no elements.
func (s Seq[T]) Last() (T, error) {
	v, err := ftree.Right(s.t)
	return v, mapTreeErr(err)
}

// AddFirst inserts x at the front.
func (s Seq[T]) AddFirst(x T) Seq[T] {
	return Seq[T]{t: ftree.PushLeft(s.t, x)}
}

// AddLast inserts x at the back.
func (s Seq[T]) AddLast(x T) Seq[T] {
	return Seq[T]{t: ftree.PushRight(s.t, x)}
}

// DropFirst removes the leftmost element. Fails with ErrEmpty if the
// sequence has no elements.
func (s Seq[T]) DropFirst() (Seq[T], error) {
	_, rest, err := ftree.PopLeft(s.t)
	if err != nil {
		return Seq[T]{}, mapTreeErr(err)
	}
	return Seq[T]{t: rest}, nil
}

// DropLast removes the rightmost element. Fails with ErrEmpty if the
// sequence has no elements.
func (s Seq[T]) DropLast() (Seq[T], error) {
	rest, _, err := ftree.PopRight(s.t)
	if err != nil {
		return Seq[T]{}, mapTreeErr(err)
	}
	return Seq[T]{t: rest}, nil
}

// normalizeReadIndex applies spec.md §4.3's negative-index policy for
// read-only accessors and Set: i' = i + count when i < 0, valid in
// [0, count).
func normalizeReadIndex(i, count int) (int, bool) {
	if i < 0 {
		i += count
	}
	if i < 0 || i >= count {
		return 0, false
	}
	return i, true
}

// normalizeInsertIndex applies spec.md §4.3's insert-specific policy:
// negative i counts from end+1, valid in [0, count] after normalization
// (so that inserting at count, i.e. appending, is expressible).
func normalizeInsertIndex(i, count int) (int, bool) {
	if i < 0 {
		i += count + 1
	}
	if i < 0 || i > count {
		return 0, false
	}
	return i, true
}

// Get returns the element at index i. Negative i counts from the end.
// Fails with ErrOutOfRange if i is outside [-count, count).
func (s Seq[T]) Get(i int) (T, error) {
	var zero T
	idx, ok := normalizeReadIndex(i, s.Count())
	if !ok {
		return zero, ErrOutOfRange
	}
	v, err := ftree.Get(s.t, idx)
	return v, mapTreeErr(err)
}

// Set returns a new sequence with the element at index i replaced by x.
// Same negative-index rule as Get.
func (s Seq[T]) Set(i int, x T) (Seq[T], error) {
	idx, ok := normalizeReadIndex(i, s.Count())
	if !ok {
		return Seq[T]{}, ErrOutOfRange
	}
	nt, err := ftree.Set(s.t, idx, x)
	if err != nil {
		return Seq[T]{}, mapTreeErr(err)
	}
	return Seq[T]{t: nt}, nil
}

// Insert returns a new sequence with x inserted before position i.
// Negative i counts from end+1; inserting at Count() is equivalent to
// AddLast. Fails with ErrOutOfRange if i is outside [-count-1, count].
func (s Seq[T]) Insert(i int, x T) (Seq[T], error) {
	count := s.Count()
	idx, ok := normalizeInsertIndex(i, count)
	if !ok {
		tracer().Debugf("Insert(%d): out of range for count %d", i, count)
		return Seq[T]{}, ErrOutOfRange
	}
	if idx == count {
		return s.AddLast(x), nil
	}
	tracer().Debugf("Insert: splitting at %d of %d", idx, count)
	left, right, err := ftree.Split(s.t, idx)
	if err != nil {
		return Seq[T]{}, mapTreeErr(err)
	}
	mid := ftree.PushRight(left, x)
	return Seq[T]{t: ftree.Concat(mid, right)}, nil
}

// Remove returns a new sequence with the element at index i removed.
// Same negative-index rule as Get.
func (s Seq[T]) Remove(i int) (Seq[T], error) {
	count := s.Count()
	idx, ok := normalizeReadIndex(i, count)
	if !ok {
		tracer().Debugf("Remove(%d): out of range for count %d", i, count)
		return Seq[T]{}, ErrOutOfRange
	}
	tracer().Debugf("Remove: splitting at %d of %d", idx, count)
	left, right, err := ftree.Split(s.t, idx)
	if err != nil {
		return Seq[T]{}, mapTreeErr(err)
	}
	_, rest, err := ftree.PopLeft(right)
	if err != nil {
		return Seq[T]{}, mapTreeErr(err)
	}
	return Seq[T]{t: ftree.Concat(left, rest)}, nil
}

// InsertRange returns a new sequence with xs spliced in before position
// i. Same index policy as Insert.
func (s Seq[T]) InsertRange(i int, xs Seq[T]) (Seq[T], error) {
	count := s.Count()
	idx, ok := normalizeInsertIndex(i, count)
	if !ok {
		return Seq[T]{}, ErrOutOfRange
	}
	if idx == count {
		return s.Concat(xs), nil
	}
	left, right, err := ftree.Split(s.t, idx)
	if err != nil {
		return Seq[T]{}, mapTreeErr(err)
	}
	return Seq[T]{t: ftree.Concat(ftree.Concat(left, xs.t), right)}, nil
}

// AddFirstRange prepends xs in order: AddFirstRange([a,b,c]) followed by
// iteration yields a,b,c,<original elements...>.
func (s Seq[T]) AddFirstRange(xs Seq[T]) Seq[T] {
	return Seq[T]{t: ftree.Concat(xs.t, s.t)}
}

// AddLastRange appends xs in order.
func (s Seq[T]) AddLastRange(xs Seq[T]) Seq[T] {
	return Seq[T]{t: ftree.Concat(s.t, xs.t)}
}

// Concat concatenates other after the receiver.
func (s Seq[T]) Concat(other Seq[T]) Seq[T] {
	tracer().Debugf("Concat: %d + %d elements", s.Count(), other.Count())
	return Seq[T]{t: ftree.Concat(s.t, other.t)}
}

// SplitAt returns the sub-sequences of length i and Count()-i. Fails
// with ErrOutOfRange if i is outside [0, count].
func (s Seq[T]) SplitAt(i int) (Seq[T], Seq[T], error) {
	tracer().Debugf("SplitAt(%d) of %d", i, s.Count())
	l, r, err := ftree.Split(s.t, i)
	if err != nil {
		tracer().Errorf("SplitAt(%d): %s", i, err.Error())
		return Seq[T]{}, Seq[T]{}, mapTreeErr(err)
	}
	return Seq[T]{t: l}, Seq[T]{t: r}, nil
}

// Take returns the first n elements. Fails with ErrOutOfRange if n is
// outside [0, count].
func (s Seq[T]) Take(n int) (Seq[T], error) {
	l, _, err := s.SplitAt(n)
	return l, err
}

// Skip returns all but the first n elements. Fails with ErrOutOfRange if
// n is outside [0, count].
func (s Seq[T]) Skip(n int) (Seq[T], error) {
	_, r, err := s.SplitAt(n)
	return r, err
}

// Slice returns the inclusive range [start, end]. Negative indices count
// from the end (-1 = last element). Fails with ErrOutOfRange if either
// bound, after normalization, falls outside [0, count).
//
// If start > end after normalization, Slice returns the empty sequence
// and no error.
func (s Seq[T]) Slice(start, end int) (Seq[T], error) {
	count := s.Count()
	a, ok := normalizeReadIndex(start, count)
	if !ok {
		return Seq[T]{}, ErrOutOfRange
	}
	b, ok := normalizeReadIndex(end, count)
	if !ok {
		return Seq[T]{}, ErrOutOfRange
	}
	if a > b {
		return Seq[T]{}, nil
	}
	_, right, err := ftree.Split(s.t, a)
	if err != nil {
		return Seq[T]{}, mapTreeErr(err)
	}
	left, _, err := ftree.Split(right, b-a+1)
	if err != nil {
		return Seq[T]{}, mapTreeErr(err)
	}
	return Seq[T]{t: left}, nil
}

// Reverse returns the sequence with element order reversed, in O(n).
func (s Seq[T]) Reverse() Seq[T] {
	var out *ftree.Tree[T]
	ftree.ForEach(s.t, func(v T) bool {
		out = ftree.PushLeft(out, v)
		return true
	})
	return Seq[T]{t: out}
}

// Filter retains elements satisfying p.
func (s Seq[T]) Filter(p func(T) bool) Seq[T] {
	var out *ftree.Tree[T]
	ftree.ForEach(s.t, func(v T) bool {
		if p(v) {
			out = ftree.PushRight(out, v)
		}
		return true
	})
	return Seq[T]{t: out}
}

// All reports whether p holds for every element, short-circuiting on the
// first failure. Vacuously true on an empty sequence.
func (s Seq[T]) All(p func(T) bool) bool {
	ok := true
	ftree.ForEach(s.t, func(v T) bool {
		if !p(v) {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// Any reports whether p holds for some element, short-circuiting on the
// first match.
func (s Seq[T]) Any(p func(T) bool) bool {
	found := false
	ftree.ForEach(s.t, func(v T) bool {
		if p(v) {
			found = true
			return false
		}
		return true
	})
	return found
}

// IndexOf returns the first index where p holds, or (-1, false) — the
// "none" case — if p never holds.
func (s Seq[T]) IndexOf(p func(T) bool) (int, bool) {
	idx, found := -1, false
	i := 0
	ftree.ForEach(s.t, func(v T) bool {
		if p(v) {
			idx, found = i, true
			return false
		}
		i++
		return true
	})
	return idx, found
}

// SequenceEqual reports whether s and other have the same length and
// elements, compared pairwise with eq.
func (s Seq[T]) SequenceEqual(other Seq[T], eq func(a, b T) bool) bool {
	if s.Count() != other.Count() {
		return false
	}
	equal := true
	i := 0
	xs := s.ToSlice()
	ftree.ForEach(other.t, func(v T) bool {
		if !eq(xs[i], v) {
			equal = false
			return false
		}
		i++
		return true
	})
	return equal
}

// Iterate visits every element front to back.
func (s Seq[T]) Iterate(visit func(T)) {
	ftree.ForEach(s.t, func(v T) bool {
		visit(v)
		return true
	})
}

// IterateBack visits every element back to front.
func (s Seq[T]) IterateBack(visit func(T)) {
	ftree.ForEachBack(s.t, func(v T) bool {
		visit(v)
		return true
	})
}

// IterateWhile visits elements front to back until pred returns false.
func (s Seq[T]) IterateWhile(pred func(T) bool) {
	ftree.ForEach(s.t, pred)
}

// IterateBackWhile visits elements back to front until pred returns false.
func (s Seq[T]) IterateBackWhile(pred func(T) bool) {
	ftree.ForEachBack(s.t, pred)
}

// Map applies f to every element, producing a new sequence of (possibly
// different) element type U. Go methods cannot introduce a second type
// parameter, so spec.md's map(f) is exposed as this package-level
// function rather than a Seq[T] method.
func Map[T, U any](s Seq[T], f func(T) U) Seq[U] {
	var out *ftree.Tree[U]
	ftree.ForEach(s.t, func(v T) bool {
		out = ftree.PushRight(out, f(v))
		return true
	})
	return Seq[U]{t: out}
}

// FlatMap concatenates the sub-sequences produced by f, in order.
func FlatMap[T, U any](s Seq[T], f func(T) Seq[U]) Seq[U] {
	var out *ftree.Tree[U]
	ftree.ForEach(s.t, func(v T) bool {
		out = ftree.Concat(out, f(v).t)
		return true
	})
	return Seq[U]{t: out}
}

// Fold reduces the sequence front to back: Fold(s, init, f) computes
// f(...f(f(init, s[0]), s[1])..., s[n-1]).
func Fold[T, A any](s Seq[T], init A, f func(A, T) A) A {
	acc := init
	ftree.ForEach(s.t, func(v T) bool {
		acc = f(acc, v)
		return true
	})
	return acc
}

// FoldBack reduces the sequence back to front.
func FoldBack[T, A any](s Seq[T], init A, f func(A, T) A) A {
	acc := init
	ftree.ForEachBack(s.t, func(v T) bool {
		acc = f(acc, v)
		return true
	})
	return acc
}

// Equal compares two sequences of comparable element type using the
// ambient (==) equality, the default-comparator case of spec.md's
// sequence-equal.
func Equal[T comparable](a, b Seq[T]) bool {
	return a.SequenceEqual(b, func(x, y T) bool { return x == y })
}
