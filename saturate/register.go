package saturate

import "github.com/katalvlaran/pdsreach/core"

// enqueueExpandNode enqueues ExpandNode(n) unless n is already Seen or
// Expanded.
func (a *Analysis[S, E, TA, UA]) enqueueExpandNode(n core.Node[S, E, TA]) {
	key := n.Key()
	if _, ok := a.expanded[key]; ok {
		return
	}
	if _, ok := a.seen[key]; ok {
		return
	}
	a.seen[key] = struct{}{}
	a.work.Offer(expandNodeItem[S, E, TA, UA](n))
}

// enqueueIntroduceEdgeIfNew enqueues IntroduceEdge(edge) unless the graph
// already has it. Reports whether it
// enqueued.
func (a *Analysis[S, E, TA, UA]) enqueueIntroduceEdgeIfNew(edge core.Edge[S, E, TA]) bool {
	if a.graph.HasEdge(edge) {
		return false
	}
	a.work.Offer(introduceEdgeItem[S, E, TA, UA](edge))
	return true
}

// enqueueIntroduceUntargetedDynPopIfNew enqueues
// IntroduceUntargetedDynPop(n, act) unless the graph already has the
// association.
func (a *Analysis[S, E, TA, UA]) enqueueIntroduceUntargetedDynPopIfNew(n core.Node[S, E, TA], act UA) bool {
	if a.graph.HasUntargetedDynamicPopAction(n, act) {
		return false
	}
	a.work.Offer(introduceUntargetedDynPopItem[S, E, TA, UA](n, act))
	return true
}

// AddEdge compiles actions into a chain of single-action edges from
// StateNode(s1) to StateNode(s2) per the decomposition rule, and
// enqueues the first edge of that chain.
func (a *Analysis[S, E, TA, UA]) AddEdge(s1 S, actions []core.Action[E, TA], s2 S) {
	from := core.Node[S, E, TA](core.StateNode[S, E, TA]{State: s1})
	to := core.Node[S, E, TA](core.StateNode[S, E, TA]{State: s2})
	edge := core.Decompose[S, E, TA](from, actions, to)
	a.enqueueIntroduceEdgeIfNew(edge)
}

// AddEdgeFunction registers f and runs the catch-up pass: for every
// state already in known_states, calls f(s) and enqueues IntroduceEdge
// for each produced (actions, to_state).
func (a *Analysis[S, E, TA, UA]) AddEdgeFunction(f EdgeFunc[S, E, TA]) {
	a.edgeFuncs = append(a.edgeFuncs, f)
	for s := range a.knownStates {
		a.catchUpEdgeFunc(s, f)
	}
}

func (a *Analysis[S, E, TA, UA]) catchUpEdgeFunc(s S, f EdgeFunc[S, E, TA]) {
	from := core.Node[S, E, TA](core.StateNode[S, E, TA]{State: s})
	for actions, to := range f(s) {
		toNode := core.Node[S, E, TA](core.StateNode[S, E, TA]{State: to})
		edge := core.Decompose[S, E, TA](from, actions, toNode)
		a.enqueueIntroduceEdgeIfNew(edge)
	}
}

// AddUntargetedDynamicPopAction enqueues an IntroduceUntargetedDynPop
// candidate for StateNode(s).
func (a *Analysis[S, E, TA, UA]) AddUntargetedDynamicPopAction(s S, action UA) {
	node := core.Node[S, E, TA](core.StateNode[S, E, TA]{State: s})
	a.enqueueIntroduceUntargetedDynPopIfNew(node, action)
}

// AddUntargetedDynamicPopActionFunction registers g and runs the
// catch-up pass over known_states.
func (a *Analysis[S, E, TA, UA]) AddUntargetedDynamicPopActionFunction(g DynPopFunc[S, UA]) {
	a.dynPopFuncs = append(a.dynPopFuncs, g)
	for s := range a.knownStates {
		a.catchUpDynPopFunc(s, g)
	}
}

func (a *Analysis[S, E, TA, UA]) catchUpDynPopFunc(s S, g DynPopFunc[S, UA]) {
	node := core.Node[S, E, TA](core.StateNode[S, E, TA]{State: s})
	for action := range g(s) {
		a.enqueueIntroduceUntargetedDynPopIfNew(node, action)
	}
}

// AddStartState registers (s, actions) as a query anchor and enqueues
// ExpandNode(IntermediateNode(StateNode(s), actions)).
// Subsequent get_reachable_states(s, actions, _) calls locate this exact
// node by structural identity.
func (a *Analysis[S, E, TA, UA]) AddStartState(s S, actions []core.Action[E, TA]) {
	anchor := Anchor(s, actions)
	a.startAnchors[anchor.Key()] = struct{}{}
	a.enqueueExpandNode(anchor)
}
