package flex

import (
	"fmt"
	"io"
	"strings"
)

// String returns the indented textual dump of node and its subtree
// described in spec.md §6: one line per node with its layout rect, children
// nested under a "__" indent so whitespace-stripping terminals still show
// structure.
func String(node *Node) string {
	var b strings.Builder
	Fprint(&b, node)
	return b.String()
}

// Fprint writes node's debug dump to w.
func Fprint(w io.Writer, node *Node) {
	fprintNode(w, node, 0)
}

func fprintNode(w io.Writer, node *Node, depth int) {
	l := node.layout
	fmt.Fprintf(w, "%snode x=%.4g y=%.4g w=%.4g h=%.4g\n",
		strings.Repeat("__", depth), l.X(), l.Y(),
		l.Dimensions[DimensionWidth], l.Dimensions[DimensionHeight])
	for i := 0; i < node.ChildCount(); i++ {
		fprintNode(w, node.Child(i), depth+1)
	}
}
