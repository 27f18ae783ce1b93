// Package query is the thin external surface: it wraps a
// *saturate.Analysis with the five operations callers actually need
// (is_closed, closure_step, fully_close, get_reachable_states, get_size)
// and turns "anchor never registered" into a single sentinel error
// instead of a silent empty sequence.
//
// Errors:
//
//	ErrReachabilityRequestForNonStartState — GetReachableStates was
//	called with an (s, actions) pair never passed to AddStartState.
package query
