package pdsreach

import (
	"context"
	"iter"

	"github.com/katalvlaran/pdsreach/core"
	"github.com/katalvlaran/pdsreach/query"
	"github.com/katalvlaran/pdsreach/saturate"
)

// ErrReachabilityRequestForNonStartState re-exports query's sentinel
// error so callers using only this package's facade never need to
// import query directly to check errors.Is.
var ErrReachabilityRequestForNonStartState = query.ErrReachabilityRequestForNonStartState

// NewAnalysis returns an empty saturate.Analysis driven by handler. opts
// may be nil.
func NewAnalysis[S core.Symbol, E core.Symbol, TA core.Symbol, UA core.Symbol](
	handler core.DynamicPopHandler[S, E, TA, UA],
	opts *saturate.Options[S, E, TA, UA],
) *saturate.Analysis[S, E, TA, UA] {
	return saturate.New[S, E, TA, UA](handler, opts)
}

// IsClosed reports whether a has no pending saturation work.
func IsClosed[S core.Symbol, E core.Symbol, TA core.Symbol, UA core.Symbol](a *saturate.Analysis[S, E, TA, UA]) bool {
	return query.IsClosed(a)
}

// ClosureStep performs one step of saturation and reports whether work
// remained.
func ClosureStep[S core.Symbol, E core.Symbol, TA core.Symbol, UA core.Symbol](a *saturate.Analysis[S, E, TA, UA]) bool {
	return query.ClosureStep(a)
}

// FullyClose drives a to completion or until ctx is cancelled.
func FullyClose[S core.Symbol, E core.Symbol, TA core.Symbol, UA core.Symbol](ctx context.Context, a *saturate.Analysis[S, E, TA, UA]) error {
	return query.FullyClose(ctx, a)
}

// GetSize returns (node_count, edge_count) of a's current graph.
func GetSize[S core.Symbol, E core.Symbol, TA core.Symbol, UA core.Symbol](a *saturate.Analysis[S, E, TA, UA]) (nodes int, edges int) {
	return query.GetSize(a)
}

// GetReachableStates returns the lazy sequence of states reachable by
// empty stack from (s, actions), or ErrReachabilityRequestForNonStartState
// if (s, actions) was never registered via a.AddStartState.
func GetReachableStates[S core.Symbol, E core.Symbol, TA core.Symbol, UA core.Symbol](
	a *saturate.Analysis[S, E, TA, UA],
	s S,
	actions []core.Action[E, TA],
) (iter.Seq[S], error) {
	return query.GetReachableStates(a, s, actions)
}
