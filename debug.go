package imms

import (
	"io"

	"github.com/npillmayer/imms/internal/ftree"
)

// DumpDOT writes the internal tree structure backing s in Graphviz DOT
// format to w, for debugging. It never returns an error: writer failures
// are the caller's concern, matching the teacher's Cord2Dot.
func DumpDOT[T any](w io.Writer, s Seq[T]) {
	ftree.DumpDOT(s.t, w)
}
