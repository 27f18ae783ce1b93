package saturate

import "github.com/katalvlaran/pdsreach/core"

type workKind uint8

const (
	kindExpandNode workKind = iota
	kindIntroduceEdge
	kindIntroduceUntargetedDynPop
)

// WorkItem is one pending unit of saturation work: either
// a node awaiting expansion, a candidate edge to close against the
// graph, or a candidate untargeted-dyn-pop association.
type WorkItem[S core.Symbol, E core.Symbol, TA core.Symbol, UA core.Symbol] struct {
	kind   workKind
	node   core.Node[S, E, TA]
	edge   core.Edge[S, E, TA]
	action UA
}

func expandNodeItem[S core.Symbol, E core.Symbol, TA core.Symbol, UA core.Symbol](n core.Node[S, E, TA]) WorkItem[S, E, TA, UA] {
	return WorkItem[S, E, TA, UA]{kind: kindExpandNode, node: n}
}

func introduceEdgeItem[S core.Symbol, E core.Symbol, TA core.Symbol, UA core.Symbol](e core.Edge[S, E, TA]) WorkItem[S, E, TA, UA] {
	return WorkItem[S, E, TA, UA]{kind: kindIntroduceEdge, edge: e}
}

func introduceUntargetedDynPopItem[S core.Symbol, E core.Symbol, TA core.Symbol, UA core.Symbol](n core.Node[S, E, TA], a UA) WorkItem[S, E, TA, UA] {
	return WorkItem[S, E, TA, UA]{kind: kindIntroduceUntargetedDynPop, node: n, action: a}
}

// String renders the item for Options.Verbose tracing.
func (w WorkItem[S, E, TA, UA]) String() string {
	switch w.kind {
	case kindExpandNode:
		return "ExpandNode(" + w.node.String() + ")"
	case kindIntroduceEdge:
		return "IntroduceEdge(" + w.edge.String() + ")"
	case kindIntroduceUntargetedDynPop:
		return "IntroduceUntargetedDynPop(" + w.node.String() + ", " + w.action.String() + ")"
	default:
		return "?"
	}
}
