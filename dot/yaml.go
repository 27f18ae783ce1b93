package dot

import (
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pdsreach/core"
	"github.com/katalvlaran/pdsreach/pdsgraph"
)

// yamlNode and yamlEdge are the marshalled shapes of DumpYAML's output —
// plain structs rather than the engine's own Node/Edge types, since those
// carry unexported fields and interface values yaml.v3 cannot round-trip.
type yamlNode struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
	Kind  string `yaml:"kind"`
}

type yamlEdge struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	Action string `yaml:"action"`
}

type yamlGraph struct {
	Nodes []yamlNode `yaml:"nodes"`
	Edges []yamlEdge `yaml:"edges"`
}

// DumpYAML renders g's nodes and edges as YAML, for tooling that prefers
// a structured dump over DOT text. Nodes are sorted by key and edges by
// (source, target, action) for deterministic output.
func DumpYAML[S core.Symbol, E core.Symbol, TA core.Symbol, UA core.Symbol](g *pdsgraph.Graph[S, E, TA, UA]) ([]byte, error) {
	var out yamlGraph

	for n := range g.EnumerateNodes() {
		kind := "state"
		if _, ok := n.(core.IntermediateNode[S, E, TA]); ok {
			kind = "intermediate"
		}
		out.Nodes = append(out.Nodes, yamlNode{Key: n.Key(), Label: n.String(), Kind: kind})
	}
	sort.Slice(out.Nodes, func(i, j int) bool { return out.Nodes[i].Key < out.Nodes[j].Key })

	for e := range g.EnumerateEdges() {
		out.Edges = append(out.Edges, yamlEdge{
			Source: e.Source.Key(),
			Target: e.Target.Key(),
			Action: e.Action.String(),
		})
	}
	sort.Slice(out.Edges, func(i, j int) bool {
		if out.Edges[i].Source != out.Edges[j].Source {
			return out.Edges[i].Source < out.Edges[j].Source
		}
		if out.Edges[i].Target != out.Edges[j].Target {
			return out.Edges[i].Target < out.Edges[j].Target
		}
		return out.Edges[i].Action < out.Edges[j].Action
	})

	return yaml.Marshal(out)
}
