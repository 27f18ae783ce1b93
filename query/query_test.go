package query_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pdsreach/core"
	"github.com/katalvlaran/pdsreach/query"
	"github.com/katalvlaran/pdsreach/saturate"
)

type sym string

func (s sym) String() string { return string(s) }

type noopHandler struct{}

func (noopHandler) PerformTargetedDynamicPop(sym, sym) [][]core.Action[sym, sym] { return nil }
func (noopHandler) PerformUntargetedDynamicPop(sym, sym) []core.UntargetedResult[sym, sym, sym] {
	return nil
}

func TestGetReachableStatesRejectsUnregisteredAnchor(t *testing.T) {
	a := saturate.New[sym, sym, sym, sym](noopHandler{}, nil)
	a.AddStartState("A", nil)
	require.NoError(t, query.FullyClose(context.Background(), a))

	_, err := query.GetReachableStates[sym, sym, sym, sym](a, "Q", nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, query.ErrReachabilityRequestForNonStartState))
}

func TestGetReachableStatesReturnsClosure(t *testing.T) {
	a := saturate.New[sym, sym, sym, sym](noopHandler{}, nil)
	a.AddEdge("A", []core.Action[sym, sym]{core.PushAction[sym, sym]("x")}, "B")
	a.AddEdge("B", []core.Action[sym, sym]{core.PopAction[sym, sym]("x")}, "C")
	a.AddStartState("A", nil)
	require.NoError(t, query.FullyClose(context.Background(), a))
	require.True(t, query.IsClosed[sym, sym, sym, sym](a))

	seq, err := query.GetReachableStates[sym, sym, sym, sym](a, "A", nil)
	require.NoError(t, err)

	var got []string
	for s := range seq {
		got = append(got, string(s))
	}
	sort.Strings(got)
	require.Equal(t, []string{"A", "C"}, got)

	nodes, edges := query.GetSize[sym, sym, sym, sym](a)
	require.Greater(t, nodes, 0)
	require.Greater(t, edges, 0)
}

func TestClosureStepReopensAfterNewRegistration(t *testing.T) {
	a := saturate.New[sym, sym, sym, sym](noopHandler{}, nil)
	a.AddStartState("A", nil)
	require.NoError(t, query.FullyClose(context.Background(), a))
	require.True(t, query.IsClosed[sym, sym, sym, sym](a))

	a.AddEdge("A", []core.Action[sym, sym]{core.PushAction[sym, sym]("x")}, "B")
	require.False(t, query.IsClosed[sym, sym, sym, sym](a))
	require.True(t, query.ClosureStep[sym, sym, sym, sym](a))
	require.True(t, query.IsClosed[sym, sym, sym, sym](a))
}
