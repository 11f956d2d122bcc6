package graph

import (
	"bytes"
	"fmt"
	"strconv"
)

// WriteDot renders g as a Graphviz DOT digraph, with accepting nodes (per
// the accept map: node index -> rule id, -1 meaning non-accepting) drawn
// filled green. This is the full extent of "rendering" this repository
// performs — layout and rasterization stay an external collaborator
// consuming this text, per spec.md §1's Non-goal and the "Graph artifact"
// interface in spec.md §6.
//
// Grounded on the teacher's nex/graph.go writeDotGraph/dumpDotGraph.
func WriteDot(g *Graph, id string, accept map[int]int) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", id)
	for n := 0; n < g.NodeCount(); n++ {
		if rule, ok := accept[n]; ok && rule >= 0 {
			fmt.Fprintf(&buf, "  %d [shape=doublecircle,style=filled,color=green,label=\"%d (rule %d)\"];\n", n, n, rule)
		} else {
			fmt.Fprintf(&buf, "  %d [shape=circle];\n", n)
		}
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %d -> %d [label=%q];\n", e.Src, e.Dst, dotEdgeLabel(e))
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}

func dotEdgeLabel(e Edge) string {
	if e.IsEpsilon() {
		return "ε"
	}
	var b bytes.Buffer
	for i, c := range e.Label {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(dotByte(c))
	}
	return b.String()
}

func dotByte(c byte) string {
	if strconvIsPrint(c) {
		return string(c)
	}
	return "0x" + strconv.FormatInt(int64(c), 16)
}

func strconvIsPrint(c byte) bool {
	return c >= 0x20 && c < 0x7f
}
