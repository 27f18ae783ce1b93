package query

import (
	"context"
	"fmt"
	"iter"

	"github.com/katalvlaran/pdsreach/core"
	"github.com/katalvlaran/pdsreach/saturate"
)

// IsClosed reports whether a has no pending saturation work.
func IsClosed[S core.Symbol, E core.Symbol, TA core.Symbol, UA core.Symbol](a *saturate.Analysis[S, E, TA, UA]) bool {
	return a.IsClosed()
}

// ClosureStep performs one step of saturation and reports whether work
// remained.
func ClosureStep[S core.Symbol, E core.Symbol, TA core.Symbol, UA core.Symbol](a *saturate.Analysis[S, E, TA, UA]) bool {
	return a.ClosureStep()
}

// FullyClose drives a to completion or until ctx is cancelled.
func FullyClose[S core.Symbol, E core.Symbol, TA core.Symbol, UA core.Symbol](ctx context.Context, a *saturate.Analysis[S, E, TA, UA]) error {
	return a.FullyClose(ctx)
}

// GetSize returns (node_count, edge_count) of a's current graph.
func GetSize[S core.Symbol, E core.Symbol, TA core.Symbol, UA core.Symbol](a *saturate.Analysis[S, E, TA, UA]) (nodes int, edges int) {
	return a.Size()
}

// GetReachableStates returns the lazy sequence of states reachable by
// empty stack from (s, actions), or ErrReachabilityRequestForNonStartState
// if (s, actions) was never registered via AddStartState.
//
// The returned sequence reflects the graph at call time; callers wanting
// a final answer must FullyClose first.
func GetReachableStates[S core.Symbol, E core.Symbol, TA core.Symbol, UA core.Symbol](
	a *saturate.Analysis[S, E, TA, UA],
	s S,
	actions []core.Action[E, TA],
) (iter.Seq[S], error) {
	anchor := saturate.Anchor[S, E, TA](s, actions)
	if !a.IsStartAnchor(anchor) {
		return nil, fmt.Errorf("%w: state=%v", ErrReachabilityRequestForNonStartState, s)
	}

	return a.ReachableStates(anchor), nil
}
