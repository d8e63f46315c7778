/*
Package imms implements a persistent (immutable) sequence built on a 2-3
finger tree with a cached additive measure (element count).

A Seq[T] stores elements in an internal/ftree tree. Edit-like operations
such as Insert, Remove, Concat, and SplitAt are non-destructive: they
return new Seq[T] values and never modify the receiver or any sequence
previously derived from it.

Typical usage:

	s := imms.Of(1, 2, 3)
	s2, _ := s.Insert(1, 99)
	v, _ := s2.Get(1) // 99

Package internal/ftree contains the generic persistent finger-tree
engine; this package is the façade over it.
*/
package imms

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("imms")
}
