package query

import "errors"

// ErrReachabilityRequestForNonStartState indicates GetReachableStates
// was called with a (state, actions) pair that was never registered via
// saturate.Analysis.AddStartState.
var ErrReachabilityRequestForNonStartState = errors.New("query: reachability requested for a state/actions pair that was never registered as a start state")
