// Package dot renders a pdsgraph.Graph for human inspection: a Graphviz
// DOT dump (DumpDOT) and a YAML node/edge dump (DumpYAML). Neither feeds
// back into saturate or pdsgraph; this package only reads.
//
// Node shapes follow the sealed Node union: StateNode renders as a
// labelled ellipse, IntermediateNode as a labelled box, so the two node
// kinds are visually distinguishable in a rendered graph.
package dot
