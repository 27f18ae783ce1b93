// Package saturate is the saturation engine: the work-
// driven fixpoint computation that closes a pdsgraph.Graph under the
// CFL-reachability rules implied by a pushdown system's edges, so that a
// Nop edge from a start anchor to a StateNode means "the stack can
// become empty while reaching that state".
//
// Analysis owns an awareness map (Seen/Expanded per node), the
// known-states set, the edge-
// generating and dyn-pop-generating function lists (append-only), the
// pdsgraph.Graph, and a workqueue.Collection of pending work. All
// registration methods (AddEdge, AddEdgeFunction,
// AddUntargetedDynamicPopAction, AddUntargetedDynamicPopActionFunction,
// AddStartState) are additive and may be called before or after closure,
// re-opening it.
//
// ClosureStep performs one step of the fixpoint; FullyClose iterates it
// to completion.
//
// Errors:
//
//	(none) — saturate never returns an error itself; FullyClose only
//	propagates ctx.Err() on cancellation. get_reachable_states' single
//	error kind lives in package query.
package saturate
