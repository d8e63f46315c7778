// Package ftree implements a persistent 2-3 finger tree annotated with an
// additive integer measure (element count).
//
// The package is intentionally not a generic associative container. It is
// specialized for sequence storage: fast operations at both ends, indexed
// access and update, split and concatenation, all in better-than-linear
// time, sharing structure across versions. The implementation mirrors the
// classic Hinze/Paterson finger tree, adapted to a single erased child
// representation so a single type parameter can thread through every
// level of the tree (see child.go).
//
// Current status:
//   - digit/node/tree core structure with cached measures,
//   - end operations (pushLeft/pushRight/popLeft/popRight) with overflow
//     and underflow cascades,
//   - measure-guided indexed access and update,
//   - app3-style concatenation with the spec's node regrouping table,
//   - split with deepL/deepR smart constructors,
//   - forward/backward iteration with early exit,
//   - a debug-only structural self-check.
package ftree

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("ftree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic("ftree: " + msg)
	}
}
