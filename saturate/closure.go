package saturate

import (
	"context"

	"github.com/katalvlaran/pdsreach/core"
)

// ClosureStep performs one step of saturation: take a work item, if
// any, and dispatch it. It is a no-op on a closed analysis (returns
// false).
func (a *Analysis[S, E, TA, UA]) ClosureStep() bool {
	item, ok := a.work.Take()
	if !ok {
		return false
	}
	a.trace(item)

	switch item.kind {
	case kindExpandNode:
		a.expandNode(item.node)
	case kindIntroduceEdge:
		a.introduceEdge(item.edge)
	case kindIntroduceUntargetedDynPop:
		a.introduceUntargetedDynPop(item.node, item.action)
	}
	return true
}

// FullyClose iterates ClosureStep until the work collection is empty or
// ctx is cancelled. Termination for a given PDS is the caller's
// responsibility; ctx only lets a caller abandon a
// saturation that turns out not to terminate in reasonable time.
func (a *Analysis[S, E, TA, UA]) FullyClose(ctx context.Context) error {
	for {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		if !a.ClosureStep() {
			return nil
		}
	}
}

// expandNode marks node Expanded and either runs it through every
// registered function (StateNode) or advances its action chain by one
// step (IntermediateNode).
func (a *Analysis[S, E, TA, UA]) expandNode(node core.Node[S, E, TA]) {
	key := node.Key()
	delete(a.seen, key)
	a.expanded[key] = struct{}{}

	switch n := node.(type) {
	case core.StateNode[S, E, TA]:
		a.knownStates[n.State] = struct{}{}
		for _, f := range a.edgeFuncs {
			a.catchUpEdgeFunc(n.State, f)
		}
		for _, g := range a.dynPopFuncs {
			a.catchUpDynPopFunc(n.State, g)
		}
	case core.IntermediateNode[S, E, TA]:
		edge := core.Decompose[S, E, TA](node, n.Actions, n.Target)
		a.enqueueIntroduceEdgeIfNew(edge)
	}
}

// expandNewDestinations implements the expand-gating heuristic:
// newly-reachable destinations are only expanded if at least one
// consequent edge was actually produced by this step.
func (a *Analysis[S, E, TA, UA]) expandNewDestinations(dests []core.Node[S, E, TA]) {
	if len(dests) == 0 {
		return
	}
	visited := make(map[string]struct{}, len(dests))
	for _, d := range dests {
		key := d.Key()
		if _, ok := visited[key]; ok {
			continue
		}
		visited[key] = struct{}{}
		if _, ok := a.expanded[key]; !ok {
			a.enqueueExpandNode(d)
		}
	}
}

// introduceEdge computes the CFL-reachability closure consequences of
// edge by its action kind, enqueues the consequent work (including the
// expansion of edge's target when it is an IntermediateNode), then
// inserts edge into the graph.
func (a *Analysis[S, E, TA, UA]) introduceEdge(edge core.Edge[S, E, TA]) {
	if a.graph.HasEdge(edge) {
		return
	}

	var newDests []core.Node[S, E, TA]
	record := func(ne core.Edge[S, E, TA]) {
		if a.enqueueIntroduceEdgeIfNew(ne) {
			newDests = append(newDests, ne.Target)
		}
	}

	// Epsilon-extension, forward half: whatever action reaches `to`, a
	// trailing Nop out of `to` costs nothing further, so the same action
	// also reaches wherever that Nop leads. This is the general form of
	// the rule Push k; Nop -> Push k, which therefore has no case of its
	// own in the switch below, and is what lets a Nop
	// produced deep in a chain (e.g. by a matched push/pop) propagate
	// back to an anchor through any number of intervening Nop edges.
	for t := range a.graph.FindNopEdgesBySource(edge.Target) {
		record(core.Edge[S, E, TA]{Source: edge.Source, Target: t, Action: edge.Action})
	}

	// Epsilon-extension, backward half: mirrors the forward half above.
	// edge itself may be the Nop whose existence lets some already-stored
	// predecessor edge extend further. Whatever already reaches `from`
	// (Nop, Push, Pop or DynTargetedPop alike) also reaches `to` once this
	// Nop is in the graph. Without this half, the forward half alone only
	// catches the composition when the Nop happens to be discovered
	// before its predecessor; registering a start state (which introduces
	// an anchor--Nop-->state edge) ahead of the edges it depends on is
	// enough to miss it, so both directions are needed for the result to
	// stop depending on discovery order.
	if edge.Action.Kind() == core.KindNop {
		for pe := range a.graph.FindEdgesByTarget(edge.Source) {
			record(core.Edge[S, E, TA]{Source: pe.Source, Target: edge.Target, Action: pe.Action})
		}
	}

	switch edge.Action.Kind() {
	case core.KindPush:
		k := edge.Action.Element()

		// Pop edges from `to` matching k -> IntroduceEdge(from --Nop--> t)
		for t, elem := range a.graph.FindPopEdgesBySource(edge.Target) {
			if elem == k {
				record(core.Edge[S, E, TA]{Source: edge.Source, Target: t, Action: core.Nop[E, TA]()})
			}
		}

		// Targeted dyn-pop edges from `to` -> handler alternatives
		for t, act := range a.graph.FindTargetedDynamicPopEdgesBySource(edge.Target) {
			for _, alt := range a.handler.PerformTargetedDynamicPop(k, act) {
				record(core.Decompose[S, E, TA](edge.Source, alt, t))
			}
		}

		// Untargeted dyn-pop actions at `to` -> handler alternatives
		for act := range a.graph.UntargetedDynamicPopActions(edge.Target) {
			for _, alt := range a.handler.PerformUntargetedDynamicPop(k, act) {
				dest := core.Node[S, E, TA](core.StateNode[S, E, TA]{State: alt.Dest})
				record(core.Decompose[S, E, TA](edge.Source, alt.Actions, dest))
			}
		}

	case core.KindPop:
		// Push edges ending at `from` matching k -> IntroduceEdge(p --Nop--> to)
		k := edge.Action.Element()
		for p, elem := range a.graph.FindPushEdgesByTarget(edge.Source) {
			if elem == k {
				record(core.Edge[S, E, TA]{Source: p, Target: edge.Target, Action: core.Nop[E, TA]()})
			}
		}

	case core.KindDynTargetedPop:
		// Push edges ending at `from` -> handler alternatives
		act := edge.Action.DynArg()
		for p, k := range a.graph.FindPushEdgesByTarget(edge.Source) {
			for _, alt := range a.handler.PerformTargetedDynamicPop(k, act) {
				record(core.Decompose[S, E, TA](p, alt, edge.Target))
			}
		}
	}

	a.expandNewDestinations(newDests)

	// An intermediate target still owes the rest of its action chain;
	// expanding it introduces the chain's next edge.
	if _, ok := edge.Target.(core.IntermediateNode[S, E, TA]); ok {
		a.enqueueExpandNode(edge.Target)
	}
	a.graph.AddEdge(edge)
}

// introduceUntargetedDynPop closes a candidate untargeted-dyn-pop
// association against every push edge ending at `from`.
func (a *Analysis[S, E, TA, UA]) introduceUntargetedDynPop(from core.Node[S, E, TA], action UA) {
	if a.graph.HasUntargetedDynamicPopAction(from, action) {
		return
	}

	for p, k := range a.graph.FindPushEdgesByTarget(from) {
		for _, alt := range a.handler.PerformUntargetedDynamicPop(k, action) {
			dest := core.Node[S, E, TA](core.StateNode[S, E, TA]{State: alt.Dest})
			edge := core.Decompose[S, E, TA](p, alt.Actions, dest)
			a.enqueueIntroduceEdgeIfNew(edge)
			a.enqueueExpandNode(dest)
		}
	}

	a.graph.AddUntargetedDynamicPopAction(from, action)
}
