package ftree

import (
	"fmt"
	"io"
)

// DumpDOT writes the internal structure of t in Graphviz DOT format, for
// debugging. Shared subtrees (structural sharing between persistent
// versions) are rendered as separate nodes rather than deduplicated — a
// deliberate simplification, since the goal is to visualize one tree's
// shape, not the sharing graph across a whole version history.
func DumpDOT[T any](t *Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	id := 0
	next := func() int {
		id++
		return id
	}

	var walkChild func(c child[T]) int
	walkChild = func(c child[T]) int {
		me := next()
		if lf, ok := c.(leaf[T]); ok {
			fmt.Fprintf(w, "\"%d\" [label=\"%v\",shape=box,style=filled,fillcolor=\"#a3d7e4\"];\n", me, lf.v)
			return me
		}
		nd := c.(*node23[T])
		fmt.Fprintf(w, "\"%d\" [label=\"node/%d\",shape=circle,style=filled,color=black,fillcolor=\"#cce5ff\"];\n", me, nd.m)
		for _, k := range nd.children() {
			kid := walkChild(k)
			fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", me, kid)
		}
		return me
	}

	var walkTree func(t *Tree[T]) int
	walkTree = func(t *Tree[T]) int {
		me := next()
		switch {
		case t == nil:
			fmt.Fprintf(w, "\"%d\" [label=\"\",shape=circle,fixedsize=true,width=.3];\n", me)
		case t.one != nil:
			fmt.Fprintf(w, "\"%d\" [label=\"single\",shape=diamond];\n", me)
			kid := walkChild(t.one)
			fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", me, kid)
		default:
			fmt.Fprintf(w, "\"%d\" [label=\"deep/%d\",shape=diamond,style=filled,fillcolor=\"#ffddcc\"];\n", me, t.m)
			for _, c := range t.left.items() {
				kid := walkChild(c)
				fmt.Fprintf(w, "\"%d\" -> \"%d\" [label=\"L\"];\n", me, kid)
			}
			spine := walkTree(t.spine)
			fmt.Fprintf(w, "\"%d\" -> \"%d\" [label=\"M\"];\n", me, spine)
			for _, c := range t.right.items() {
				kid := walkChild(c)
				fmt.Fprintf(w, "\"%d\" -> \"%d\" [label=\"R\"];\n", me, kid)
			}
		}
		return me
	}
	walkTree(t)
	io.WriteString(w, "}\n")
}
