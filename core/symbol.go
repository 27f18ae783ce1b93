package core

// Symbol is the constraint satisfied by every user-supplied alphabet type
// plugged into the engine: State, StackElement, and the two dynamic-pop
// action token types. comparable gives value equality (so nodes and
// actions can key maps and sets); String gives every extension point a
// readable label for tracing and DOT output.
//
// Total ordering is deliberately not part of this constraint: nothing in
// the saturation engine needs a comparator, only equality.
// Callers who want deterministic enumeration order can sort by String().
type Symbol interface {
	comparable
	String() string
}
