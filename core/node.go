package core

// Node is the saturation graph's vertex type: a tagged union of StateNode
// and IntermediateNode. Implementations are sealed to this package's
// two concrete types via the unexported isNode marker.
//
// Equality and identity are structural, via Key: two IntermediateNode
// values built from the same (target, actions) pair always report the
// same Key, which is what lets saturation share an intermediate node
// across independently-registered edges. Node values should never be
// compared with ==: IntermediateNode embeds a slice, and a slice-bearing
// struct behind an interface panics on == comparison.
type Node[S Symbol, E Symbol, TA Symbol] interface {
	isNode()
	// Key returns a string that is identical for two nodes iff they are
	// the same node per the structural-equality rule above.
	Key() string
	String() string
}

// StateNode identifies a PDS state.
type StateNode[S Symbol, E Symbol, TA Symbol] struct {
	State S
}

func (StateNode[S, E, TA]) isNode() {}

// Key returns the node's structural identity string.
func (n StateNode[S, E, TA]) Key() string { return "S:" + n.State.String() }

// String implements fmt.Stringer.
func (n StateNode[S, E, TA]) String() string { return n.State.String() }

// IntermediateNode stands for "execute the action sequence Actions, then
// continue from Target". Actions is empty only for a start anchor
// registered without an initial stack word. Two IntermediateNode
// values are the same node iff their (Target, Actions) pair is
// structurally equal, regardless of how each was constructed — this
// sharing is load-bearing for saturation efficiency.
type IntermediateNode[S Symbol, E Symbol, TA Symbol] struct {
	Target  Node[S, E, TA]
	Actions []Action[E, TA]
}

func (IntermediateNode[S, E, TA]) isNode() {}

// Key returns the node's structural identity string.
func (n IntermediateNode[S, E, TA]) Key() string {
	return "I:" + n.Target.Key() + "/" + ActionsKey(n.Actions)
}

// String implements fmt.Stringer.
func (n IntermediateNode[S, E, TA]) String() string {
	return "<" + ActionsKey(n.Actions) + " -> " + n.Target.String() + ">"
}

// Edge is a single-action transition {Source, Target, Action}.
// Multi-action registrations are never stored directly; they are
// decomposed into a chain of single-action edges via Decompose.
type Edge[S Symbol, E Symbol, TA Symbol] struct {
	Source Node[S, E, TA]
	Target Node[S, E, TA]
	Action Action[E, TA]
}

// Key returns a string uniquely identifying this edge's value, used by
// the graph's edge set to enforce the no-duplicate-edges invariant.
func (e Edge[S, E, TA]) Key() string {
	return e.Source.Key() + "--" + e.Action.Key() + "-->" + e.Target.Key()
}

func (e Edge[S, E, TA]) String() string {
	return e.Source.String() + " --" + e.Action.String() + "--> " + e.Target.String()
}

// Decompose implements the decomposition rule: given a source node
// `from`, an action list, and a final destination `to`, it returns the
// single edge that begins the chain realizing `from --actions--> to`:
//
//	actions = []     -> from --Nop--> to
//	actions = [x]     -> from --x--> to
//	actions = x :: xs -> from --x--> IntermediateNode(to, xs)
//
// The same rule governs expanding an IntermediateNode(target, actions)
// by calling Decompose(node, actions, target).
func Decompose[S Symbol, E Symbol, TA Symbol](from Node[S, E, TA], actions []Action[E, TA], to Node[S, E, TA]) Edge[S, E, TA] {
	switch len(actions) {
	case 0:
		return Edge[S, E, TA]{Source: from, Target: to, Action: Nop[E, TA]()}
	case 1:
		return Edge[S, E, TA]{Source: from, Target: to, Action: actions[0]}
	default:
		rest := make([]Action[E, TA], len(actions)-1)
		copy(rest, actions[1:])
		inter := IntermediateNode[S, E, TA]{Target: to, Actions: rest}
		return Edge[S, E, TA]{Source: from, Target: inter, Action: actions[0]}
	}
}
