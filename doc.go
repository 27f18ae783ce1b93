// Package pdsreach computes reachability over pushdown systems: states
// connected by stack-discipline edges (push, pop, and dynamic-pop
// variants resolved by a caller-supplied handler), saturated into a
// direct answer to "from state s with stack word w, which states can the
// system reach with an empty stack?"
//
// Everything is organized under six subpackages:
//
//	core/      — the Node/Edge/Action vocabulary and structural identity
//	pdsgraph/  — the indexed graph the saturation engine mutates
//	workqueue/ — pluggable FIFO/LIFO/Priority work collections
//	saturate/  — the CFL-reachability saturation engine
//	query/     — the five operations a caller actually needs
//	dot/       — Graphviz DOT and YAML dumps, for inspection only
//
// Quick sketch:
//
//	a := saturate.New[State, StackElem, TargetedAction, UntargetedAction](handler, nil)
//	a.AddEdge(s1, actions, s2)
//	a.AddStartState(s0, nil)
//	a.FullyClose(ctx)
//	states, err := query.GetReachableStates(a, s0, nil)
//
// This package's own functions are thin pass-throughs to saturate/query
// for callers who would rather not import both by hand.
//
//	go get github.com/katalvlaran/pdsreach
package pdsreach
