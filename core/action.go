package core

import "fmt"

// ActionKind tags which of the four stack-action variants an Action holds.
type ActionKind uint8

const (
	// KindNop traverses the edge without touching the stack.
	KindNop ActionKind = iota
	// KindPush pushes Element.
	KindPush
	// KindPop pops iff the stack top equals Element.
	KindPop
	// KindDynTargetedPop pops whatever is on top; DynArg names which
	// handler alternative set to consult.
	KindDynTargetedPop
)

// String renders the kind name, used by Action.String and error messages.
func (k ActionKind) String() string {
	switch k {
	case KindNop:
		return "Nop"
	case KindPush:
		return "Push"
	case KindPop:
		return "Pop"
	case KindDynTargetedPop:
		return "DynTargetedPop"
	default:
		return "Unknown"
	}
}

// Action is a single stack action, one of four variants: Nop, Push(e),
// Pop(e), DynTargetedPop(a). It is always a single action —
// multi-action sequences are decomposed into chains of
// IntermediateNode-separated single-action edges (see Decompose).
type Action[E Symbol, TA Symbol] struct {
	kind    ActionKind
	element E
	dynArg  TA
}

// Nop builds a stack-neutral action.
func Nop[E Symbol, TA Symbol]() Action[E, TA] {
	return Action[E, TA]{kind: KindNop}
}

// PushAction builds an action that pushes e.
func PushAction[E Symbol, TA Symbol](e E) Action[E, TA] {
	return Action[E, TA]{kind: KindPush, element: e}
}

// PopAction builds an action that pops iff the top equals e.
func PopAction[E Symbol, TA Symbol](e E) Action[E, TA] {
	return Action[E, TA]{kind: KindPop, element: e}
}

// DynTargetedPopAction builds a targeted dynamic-pop action carrying the
// user's action token a.
func DynTargetedPopAction[E Symbol, TA Symbol](a TA) Action[E, TA] {
	return Action[E, TA]{kind: KindDynTargetedPop, dynArg: a}
}

// Kind reports which of the four variants this action is.
func (a Action[E, TA]) Kind() ActionKind { return a.kind }

// Element returns the pushed/popped element. Valid only for KindPush and
// KindPop; the zero value of E otherwise.
func (a Action[E, TA]) Element() E { return a.element }

// DynArg returns the targeted-dyn-pop action token. Valid only for
// KindDynTargetedPop; the zero value of TA otherwise.
func (a Action[E, TA]) DynArg() TA { return a.dynArg }

// Equal reports whether a and b are the same action, comparing the
// element/token that is relevant to their kind.
func (a Action[E, TA]) Equal(b Action[E, TA]) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindPush, KindPop:
		return a.element == b.element
	case KindDynTargetedPop:
		return a.dynArg == b.dynArg
	default:
		return true
	}
}

// Key returns a string uniquely identifying this action's value, used to
// build the structural keys of IntermediateNode and Edge.
func (a Action[E, TA]) Key() string {
	switch a.kind {
	case KindPush:
		return "Push(" + a.element.String() + ")"
	case KindPop:
		return "Pop(" + a.element.String() + ")"
	case KindDynTargetedPop:
		return "DynTargetedPop(" + a.dynArg.String() + ")"
	default:
		return "Nop"
	}
}

// String implements fmt.Stringer for pretty printing.
func (a Action[E, TA]) String() string {
	return a.Key()
}

// ActionsKey returns a structural key for a slice of actions, used when
// interning IntermediateNode chains.
func ActionsKey[E Symbol, TA Symbol](actions []Action[E, TA]) string {
	if len(actions) == 0 {
		return ""
	}
	s := actions[0].Key()
	for _, a := range actions[1:] {
		s += ";" + a.Key()
	}
	return s
}

// UntargetedResult is one alternative produced by
// DynamicPopHandler.PerformUntargetedDynamicPop: a continuation action
// list together with the destination state it leads to.
type UntargetedResult[S Symbol, E Symbol, TA Symbol] struct {
	Actions []Action[E, TA]
	Dest    S
}

func (r UntargetedResult[S, E, TA]) String() string {
	return fmt.Sprintf("(%s -> %s)", ActionsKey(r.Actions), r.Dest.String())
}

// DynamicPopHandler is the user-supplied collaborator that resolves
// dynamic-pop actions. Both methods must be pure and total over the
// alphabet: the engine may call them more than once with the same
// (element, action) pair during saturation and assumes repeated calls
// return the same results.
type DynamicPopHandler[S Symbol, E Symbol, TA Symbol, UA Symbol] interface {
	// PerformTargetedDynamicPop returns the zero-or-more ways a
	// DynTargetedPop(action) succeeds against stack top e, each as a
	// (possibly empty) continuation action list.
	PerformTargetedDynamicPop(e E, action TA) []([]Action[E, TA])

	// PerformUntargetedDynamicPop returns the zero-or-more ways an
	// untargeted dyn-pop action succeeds against stack top e, each
	// naming its own destination state.
	PerformUntargetedDynamicPop(e E, action UA) []UntargetedResult[S, E, TA]
}
