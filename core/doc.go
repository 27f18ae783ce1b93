// Package core defines the stack-action vocabulary and node/edge types
// shared by every other pdsreach package: the four edge-action kinds
// (Nop, Push, Pop, DynTargetedPop), the dynamic-pop handler contract, and
// the tagged-union Node and Edge types the saturation engine operates on.
//
// Nodes come in two flavors:
//
//	StateNode(s)                — identifies a PDS state.
//	IntermediateNode(to, acts)  — "still owes acts before reaching to".
//
// IntermediateNode identity is structural: two nodes built from the same
// (target, actions) pair compare equal via Key(), regardless of when or
// where they were constructed. This is what lets saturation share work
// across independently-registered edges that happen to decompose into
// the same tail.
//
// Errors:
//
//	(none) — core is pure data; all fallible operations live in saturate/query.
package core
