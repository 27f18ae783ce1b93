package dot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/pdsreach/core"
	"github.com/katalvlaran/pdsreach/pdsgraph"
)

// DumpDOT renders g as a Graphviz DOT digraph. StateNode values render as
// ellipses labelled with their state's String(); IntermediateNode values
// render as boxes labelled with their pending action chain. Edges carry
// their action's String() as a label. Output is deterministic: nodes and
// edges are sorted by Key before rendering.
func DumpDOT[S core.Symbol, E core.Symbol, TA core.Symbol, UA core.Symbol](g *pdsgraph.Graph[S, E, TA, UA]) string {
	var b strings.Builder
	b.WriteString("digraph pdsreach {\n")
	b.WriteString("\trankdir=LR;\n")

	type nodeLine struct {
		key, line string
	}
	var nodeLines []nodeLine
	for n := range g.EnumerateNodes() {
		shape := "ellipse"
		if _, ok := n.(core.IntermediateNode[S, E, TA]); ok {
			shape = "box"
		}
		line := fmt.Sprintf("\t%q [shape=%s, label=%q];\n", n.Key(), shape, n.String())
		nodeLines = append(nodeLines, nodeLine{key: n.Key(), line: line})
	}
	sort.Slice(nodeLines, func(i, j int) bool { return nodeLines[i].key < nodeLines[j].key })
	for _, nl := range nodeLines {
		b.WriteString(nl.line)
	}

	var edgeLines []nodeLine
	for e := range g.EnumerateEdges() {
		line := fmt.Sprintf("\t%q -> %q [label=%q];\n", e.Source.Key(), e.Target.Key(), e.Action.String())
		edgeLines = append(edgeLines, nodeLine{key: e.Key(), line: line})
	}
	sort.Slice(edgeLines, func(i, j int) bool { return edgeLines[i].key < edgeLines[j].key })
	for _, el := range edgeLines {
		b.WriteString(el.line)
	}

	b.WriteString("}\n")
	return b.String()
}
