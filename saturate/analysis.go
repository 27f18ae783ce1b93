package saturate

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/pdsreach/core"
	"github.com/katalvlaran/pdsreach/pdsgraph"
	"github.com/katalvlaran/pdsreach/workqueue"
)

// EdgeFunc is the edge-generating function contract: pure, and called
// by the engine at most once per state.
type EdgeFunc[S core.Symbol, E core.Symbol, TA core.Symbol] func(S) iter.Seq2[[]core.Action[E, TA], S]

// DynPopFunc is the untargeted-dyn-pop-generating function contract.
type DynPopFunc[S core.Symbol, UA core.Symbol] func(S) iter.Seq[UA]

// Options configures an Analysis. A nil *Options uses defaults: a FIFO
// work collection and no tracing.
type Options[S core.Symbol, E core.Symbol, TA core.Symbol, UA core.Symbol] struct {
	// Work, if non-nil, is the work collection the Analysis drains from.
	// Defaults to workqueue.NewFIFO.
	Work workqueue.Collection[WorkItem[S, E, TA, UA]]

	// Verbose, if true, prints each closure step's dispatched work item
	// via fmt.Printf — the same opt-in tracing convention as
	// flow.FlowOptions.Verbose.
	Verbose bool
}

// Analysis is the sole owner of the state a saturation needs: it
// exclusively holds the awareness map, known-states set, graph, function
// lists, and work collection that together define the saturation's
// fixpoint.
type Analysis[S core.Symbol, E core.Symbol, TA core.Symbol, UA core.Symbol] struct {
	handler core.DynamicPopHandler[S, E, TA, UA]
	graph   *pdsgraph.Graph[S, E, TA, UA]
	work    workqueue.Collection[WorkItem[S, E, TA, UA]]

	knownStates map[S]struct{}
	seen        map[string]struct{}
	expanded    map[string]struct{}

	edgeFuncs   []EdgeFunc[S, E, TA]
	dynPopFuncs []DynPopFunc[S, UA]

	startAnchors map[string]struct{}

	verbose bool
}

// New returns an empty Analysis driven by handler. opts may be nil.
func New[S core.Symbol, E core.Symbol, TA core.Symbol, UA core.Symbol](
	handler core.DynamicPopHandler[S, E, TA, UA],
	opts *Options[S, E, TA, UA],
) *Analysis[S, E, TA, UA] {
	a := &Analysis[S, E, TA, UA]{
		handler:      handler,
		graph:        pdsgraph.New[S, E, TA, UA](),
		knownStates:  make(map[S]struct{}),
		seen:         make(map[string]struct{}),
		expanded:     make(map[string]struct{}),
		startAnchors: make(map[string]struct{}),
	}
	if opts != nil && opts.Work != nil {
		a.work = opts.Work
	} else {
		a.work = workqueue.NewFIFO[WorkItem[S, E, TA, UA]]()
	}
	if opts != nil {
		a.verbose = opts.Verbose
	}
	return a
}

// Graph exposes the underlying indexed graph for query and dot.
func (a *Analysis[S, E, TA, UA]) Graph() *pdsgraph.Graph[S, E, TA, UA] {
	return a.graph
}

// IsClosed reports whether the work collection is empty.
func (a *Analysis[S, E, TA, UA]) IsClosed() bool {
	return a.work.Empty()
}

// Size returns (node_count, edge_count).
func (a *Analysis[S, E, TA, UA]) Size() (nodes int, edges int) {
	return a.graph.NodeCount(), a.graph.EdgeCount()
}

// Stats holds a snapshot of an Analysis's bookkeeping, for diagnostics
// and logging.
type Stats struct {
	Nodes        int
	Edges        int
	KnownStates  int
	StartAnchors int
	Closed       bool
}

// Stats returns a snapshot of a's current size and registration counts.
func (a *Analysis[S, E, TA, UA]) Stats() Stats {
	nodes, edges := a.Size()
	return Stats{
		Nodes:        nodes,
		Edges:        edges,
		KnownStates:  len(a.knownStates),
		StartAnchors: len(a.startAnchors),
		Closed:       a.IsClosed(),
	}
}

// KnownStates returns the lazy sequence of every state that has been
// expanded as a StateNode.
func (a *Analysis[S, E, TA, UA]) KnownStates() iter.Seq[S] {
	return func(yield func(S) bool) {
		for s := range a.knownStates {
			if !yield(s) {
				return
			}
		}
	}
}

// Anchor builds the IntermediateNode(StateNode(s), actions) used as the
// registration/query key for a start state.
func Anchor[S core.Symbol, E core.Symbol, TA core.Symbol](s S, actions []core.Action[E, TA]) core.Node[S, E, TA] {
	return core.IntermediateNode[S, E, TA]{
		Target:  core.StateNode[S, E, TA]{State: s},
		Actions: actions,
	}
}

// IsStartAnchor reports whether anchor was registered via AddStartState.
func (a *Analysis[S, E, TA, UA]) IsStartAnchor(anchor core.Node[S, E, TA]) bool {
	_, ok := a.startAnchors[anchor.Key()]
	return ok
}

// ReachableStates returns the lazy sequence of all s' such that there is
// a Nop edge from anchor to StateNode(s') in the current graph. It does
// not validate that anchor was registered as a start state — callers
// that need the ReachabilityRequestForNonStartState error should use
// package query.
func (a *Analysis[S, E, TA, UA]) ReachableStates(anchor core.Node[S, E, TA]) iter.Seq[S] {
	return func(yield func(S) bool) {
		for target := range a.graph.FindNopEdgesBySource(anchor) {
			if sn, ok := target.(core.StateNode[S, E, TA]); ok {
				if !yield(sn.State) {
					return
				}
			}
		}
	}
}

func (a *Analysis[S, E, TA, UA]) trace(item WorkItem[S, E, TA, UA]) {
	if a.verbose {
		fmt.Printf("saturate: dispatch %s\n", item)
	}
}
