package pdsgraph

import (
	"iter"
	"sync"

	"github.com/katalvlaran/pdsreach/core"
)

// pushIn records an incoming Push edge: source --Push(Element)--> (target, implicit).
type pushIn[S core.Symbol, E core.Symbol, TA core.Symbol] struct {
	Source  core.Node[S, E, TA]
	Element E
}

// popOut records an outgoing Pop edge: (source, implicit) --Pop(Element)--> Target.
type popOut[S core.Symbol, E core.Symbol, TA core.Symbol] struct {
	Target  core.Node[S, E, TA]
	Element E
}

// dynPopOut records an outgoing DynTargetedPop edge.
type dynPopOut[S core.Symbol, E core.Symbol, TA core.Symbol] struct {
	Target core.Node[S, E, TA]
	Action TA
}

// Graph is the indexed edge/node storage.
//
// muNode guards nodes; muEdge guards edges, the direction indices, and
// the untargeted-dyn-pop associations (mirroring lvlath's
// muVert/muEdgeAdj split in graph/core/types.go).
type Graph[S core.Symbol, E core.Symbol, TA core.Symbol, UA core.Symbol] struct {
	muNode sync.RWMutex
	muEdge sync.RWMutex

	nodes map[string]core.Node[S, E, TA]
	edges map[string]core.Edge[S, E, TA]

	byTargetPush   map[string][]pushIn[S, E, TA]
	bySourceNop    map[string][]core.Node[S, E, TA]
	bySourcePop    map[string][]popOut[S, E, TA]
	bySourceDynPop map[string][]dynPopOut[S, E, TA]

	// byTarget indexes every edge, of any action kind, by its target. It
	// backs FindEdgesByTarget, which epsilon-closure uses to compose a
	// newly-discovered Nop edge backward against whatever already reaches
	// its source, regardless of what kind of edge that predecessor is.
	byTarget map[string][]core.Edge[S, E, TA]

	// untargetedDynPop[node.Key()][action] == struct{} iff the
	// association has been added.
	untargetedDynPop map[string]map[UA]struct{}
	// untargetedDynPopNode remembers the node value for each key present
	// in untargetedDynPop, for enumeration.
	untargetedDynPopNode map[string]core.Node[S, E, TA]
}

// New returns an empty Graph.
func New[S core.Symbol, E core.Symbol, TA core.Symbol, UA core.Symbol]() *Graph[S, E, TA, UA] {
	return &Graph[S, E, TA, UA]{
		nodes:                make(map[string]core.Node[S, E, TA]),
		edges:                make(map[string]core.Edge[S, E, TA]),
		byTargetPush:         make(map[string][]pushIn[S, E, TA]),
		bySourceNop:          make(map[string][]core.Node[S, E, TA]),
		bySourcePop:          make(map[string][]popOut[S, E, TA]),
		bySourceDynPop:       make(map[string][]dynPopOut[S, E, TA]),
		byTarget:             make(map[string][]core.Edge[S, E, TA]),
		untargetedDynPop:     make(map[string]map[UA]struct{}),
		untargetedDynPopNode: make(map[string]core.Node[S, E, TA]),
	}
}

func (g *Graph[S, E, TA, UA]) rememberNode(n core.Node[S, E, TA]) {
	// Caller holds muNode.
	if _, ok := g.nodes[n.Key()]; !ok {
		g.nodes[n.Key()] = n
	}
}

// AddEdge inserts edge into the graph and its direction indices.
// Idempotent: adding the same edge twice is a no-op the second time.
// Reports whether the edge was newly added.
func (g *Graph[S, E, TA, UA]) AddEdge(edge core.Edge[S, E, TA]) bool {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	key := edge.Key()
	if _, ok := g.edges[key]; ok {
		return false
	}
	g.edges[key] = edge

	g.muNode.Lock()
	g.rememberNode(edge.Source)
	g.rememberNode(edge.Target)
	g.muNode.Unlock()

	switch edge.Action.Kind() {
	case core.KindNop:
		srcKey := edge.Source.Key()
		g.bySourceNop[srcKey] = append(g.bySourceNop[srcKey], edge.Target)
	case core.KindPush:
		tgtKey := edge.Target.Key()
		g.byTargetPush[tgtKey] = append(g.byTargetPush[tgtKey], pushIn[S, E, TA]{Source: edge.Source, Element: edge.Action.Element()})
	case core.KindPop:
		srcKey := edge.Source.Key()
		g.bySourcePop[srcKey] = append(g.bySourcePop[srcKey], popOut[S, E, TA]{Target: edge.Target, Element: edge.Action.Element()})
	case core.KindDynTargetedPop:
		srcKey := edge.Source.Key()
		g.bySourceDynPop[srcKey] = append(g.bySourceDynPop[srcKey], dynPopOut[S, E, TA]{Target: edge.Target, Action: edge.Action.DynArg()})
	}

	tgtKey := edge.Target.Key()
	g.byTarget[tgtKey] = append(g.byTarget[tgtKey], edge)
	return true
}

// HasEdge reports whether edge is already stored.
func (g *Graph[S, E, TA, UA]) HasEdge(edge core.Edge[S, E, TA]) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	_, ok := g.edges[edge.Key()]
	return ok
}

// AddUntargetedDynamicPopAction associates action with node. Idempotent.
// Reports whether the association was newly added.
func (g *Graph[S, E, TA, UA]) AddUntargetedDynamicPopAction(node core.Node[S, E, TA], action UA) bool {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	key := node.Key()
	set, ok := g.untargetedDynPop[key]
	if !ok {
		set = make(map[UA]struct{})
		g.untargetedDynPop[key] = set
		g.untargetedDynPopNode[key] = node
	}
	if _, ok := set[action]; ok {
		return false
	}
	set[action] = struct{}{}

	g.muNode.Lock()
	g.rememberNode(node)
	g.muNode.Unlock()
	return true
}

// HasUntargetedDynamicPopAction reports whether the association was added.
func (g *Graph[S, E, TA, UA]) HasUntargetedDynamicPopAction(node core.Node[S, E, TA], action UA) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	set, ok := g.untargetedDynPop[node.Key()]
	if !ok {
		return false
	}
	_, ok = set[action]
	return ok
}

// FindPushEdgesByTarget yields every (source, element) of an incoming
// Push edge ending at n.
func (g *Graph[S, E, TA, UA]) FindPushEdgesByTarget(n core.Node[S, E, TA]) iter.Seq2[core.Node[S, E, TA], E] {
	g.muEdge.RLock()
	matches := append([]pushIn[S, E, TA](nil), g.byTargetPush[n.Key()]...)
	g.muEdge.RUnlock()
	return func(yield func(core.Node[S, E, TA], E) bool) {
		for _, m := range matches {
			if !yield(m.Source, m.Element) {
				return
			}
		}
	}
}

// FindNopEdgesBySource yields every target of an outgoing Nop edge from n.
func (g *Graph[S, E, TA, UA]) FindNopEdgesBySource(n core.Node[S, E, TA]) iter.Seq[core.Node[S, E, TA]] {
	g.muEdge.RLock()
	matches := append([]core.Node[S, E, TA](nil), g.bySourceNop[n.Key()]...)
	g.muEdge.RUnlock()
	return func(yield func(core.Node[S, E, TA]) bool) {
		for _, m := range matches {
			if !yield(m) {
				return
			}
		}
	}
}

// FindPopEdgesBySource yields every (target, element) of an outgoing Pop
// edge from n.
func (g *Graph[S, E, TA, UA]) FindPopEdgesBySource(n core.Node[S, E, TA]) iter.Seq2[core.Node[S, E, TA], E] {
	g.muEdge.RLock()
	matches := append([]popOut[S, E, TA](nil), g.bySourcePop[n.Key()]...)
	g.muEdge.RUnlock()
	return func(yield func(core.Node[S, E, TA], E) bool) {
		for _, m := range matches {
			if !yield(m.Target, m.Element) {
				return
			}
		}
	}
}

// FindTargetedDynamicPopEdgesBySource yields every (target, action) of an
// outgoing DynTargetedPop edge from n.
func (g *Graph[S, E, TA, UA]) FindTargetedDynamicPopEdgesBySource(n core.Node[S, E, TA]) iter.Seq2[core.Node[S, E, TA], TA] {
	g.muEdge.RLock()
	matches := append([]dynPopOut[S, E, TA](nil), g.bySourceDynPop[n.Key()]...)
	g.muEdge.RUnlock()
	return func(yield func(core.Node[S, E, TA], TA) bool) {
		for _, m := range matches {
			if !yield(m.Target, m.Action) {
				return
			}
		}
	}
}

// FindEdgesByTarget yields every edge, of any action kind, ending at n.
// It is the general counterpart to FindPushEdgesByTarget: where that one
// narrows to Push predecessors, this yields all of them so a caller can
// compose a new edge backward regardless of what kind its predecessor is.
func (g *Graph[S, E, TA, UA]) FindEdgesByTarget(n core.Node[S, E, TA]) iter.Seq[core.Edge[S, E, TA]] {
	g.muEdge.RLock()
	matches := append([]core.Edge[S, E, TA](nil), g.byTarget[n.Key()]...)
	g.muEdge.RUnlock()
	return func(yield func(core.Edge[S, E, TA]) bool) {
		for _, m := range matches {
			if !yield(m) {
				return
			}
		}
	}
}

// UntargetedDynamicPopActions yields every action associated with n.
func (g *Graph[S, E, TA, UA]) UntargetedDynamicPopActions(n core.Node[S, E, TA]) iter.Seq[UA] {
	g.muEdge.RLock()
	set := g.untargetedDynPop[n.Key()]
	matches := make([]UA, 0, len(set))
	for a := range set {
		matches = append(matches, a)
	}
	g.muEdge.RUnlock()
	return func(yield func(UA) bool) {
		for _, m := range matches {
			if !yield(m) {
				return
			}
		}
	}
}

// EnumerateNodes yields every node the graph has stored, for
// introspection and pretty-printing.
func (g *Graph[S, E, TA, UA]) EnumerateNodes() iter.Seq[core.Node[S, E, TA]] {
	g.muNode.RLock()
	out := make([]core.Node[S, E, TA], 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	g.muNode.RUnlock()
	return func(yield func(core.Node[S, E, TA]) bool) {
		for _, n := range out {
			if !yield(n) {
				return
			}
		}
	}
}

// EnumerateEdges yields every edge the graph has stored.
func (g *Graph[S, E, TA, UA]) EnumerateEdges() iter.Seq[core.Edge[S, E, TA]] {
	g.muEdge.RLock()
	out := make([]core.Edge[S, E, TA], 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdge.RUnlock()
	return func(yield func(core.Edge[S, E, TA]) bool) {
		for _, e := range out {
			if !yield(e) {
				return
			}
		}
	}
}

// NodeCount returns the number of distinct nodes stored.
func (g *Graph[S, E, TA, UA]) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of distinct edges stored.
func (g *Graph[S, E, TA, UA]) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.edges)
}
