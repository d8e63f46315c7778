package imms

import (
	"github.com/npillmayer/imms/internal/ftree"
)

// Builder accumulates elements into a sequence without exposing any
// intermediate tree to client code, satisfying the transient-use
// contract of spec.md §5: every observable step remains a valid Seq[T],
// but no partially-built state escapes until Seq is called. The zero
// value is a valid, empty builder.
type Builder[T any] struct {
	t    *ftree.Tree[T]
	done bool
}

// NewBuilder creates a new, empty Builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Seq returns the sequence built so far. It is legal to continue calling
// Seq multiple times, but Append/Prepend after the first call fail with
// ErrBuilderSealed.
func (b *Builder[T]) Seq() Seq[T] {
	b.done = true
	return Seq[T]{t: b.t}
}

// Reset discards the sequence built so far and prepares the builder for
// reuse.
func (b *Builder[T]) Reset() {
	b.t = nil
	b.done = false
}

// Append adds x to the back of the sequence under construction.
func (b *Builder[T]) Append(x T) error {
	if b.done {
		return ErrBuilderSealed
	}
	b.t = ftree.PushRight(b.t, x)
	return nil
}

// Prepend adds x to the front of the sequence under construction.
func (b *Builder[T]) Prepend(x T) error {
	if b.done {
		return ErrBuilderSealed
	}
	b.t = ftree.PushLeft(b.t, x)
	return nil
}

// AppendSeq splices an entire sequence onto the back in a single
// operation, for bulk range-extension callers.
func (b *Builder[T]) AppendSeq(xs Seq[T]) error {
	if b.done {
		return ErrBuilderSealed
	}
	b.t = ftree.Concat(b.t, xs.t)
	return nil
}

// PrependSeq splices an entire sequence onto the front in a single
// operation.
func (b *Builder[T]) PrependSeq(xs Seq[T]) error {
	if b.done {
		return ErrBuilderSealed
	}
	b.t = ftree.Concat(xs.t, b.t)
	return nil
}
