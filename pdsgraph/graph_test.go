package pdsgraph

import (
	"testing"

	"github.com/katalvlaran/pdsreach/core"
)

type sym string

func (s sym) String() string { return string(s) }

func state(s string) core.Node[sym, sym, sym] {
	return core.StateNode[sym, sym, sym]{State: sym(s)}
}

func TestAddEdgeIsIdempotent(t *testing.T) {
	g := New[sym, sym, sym, sym]()
	e := core.Edge[sym, sym, sym]{Source: state("A"), Target: state("B"), Action: core.PushAction[sym, sym]("x")}

	if !g.AddEdge(e) {
		t.Fatalf("expected first AddEdge to report newly added")
	}
	if g.AddEdge(e) {
		t.Fatalf("expected second AddEdge to report already present")
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("expected exactly one stored edge, got %d", g.EdgeCount())
	}

	count := 0
	for src, elem := range g.FindPushEdgesByTarget(state("B")) {
		count++
		if src.Key() != state("A").Key() || elem != sym("x") {
			t.Fatalf("unexpected match %v %v", src, elem)
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one push-edge match, got %d", count)
	}
}

func TestUntargetedDynPopIdempotent(t *testing.T) {
	g := New[sym, sym, sym, sym]()
	n := state("B")
	if !g.AddUntargetedDynamicPopAction(n, sym("beta")) {
		t.Fatalf("expected first add to report newly added")
	}
	if g.AddUntargetedDynamicPopAction(n, sym("beta")) {
		t.Fatalf("expected second add to report already present")
	}
	if !g.HasUntargetedDynamicPopAction(n, sym("beta")) {
		t.Fatalf("expected association to be present")
	}
	if g.HasUntargetedDynamicPopAction(n, sym("gamma")) {
		t.Fatalf("expected unrelated action to be absent")
	}
}

func TestIndicesBySource(t *testing.T) {
	g := New[sym, sym, sym, sym]()
	a, b, c := state("A"), state("B"), state("C")
	g.AddEdge(core.Edge[sym, sym, sym]{Source: a, Target: b, Action: core.Nop[sym, sym]()})
	g.AddEdge(core.Edge[sym, sym, sym]{Source: b, Target: c, Action: core.PopAction[sym, sym]("x")})
	g.AddEdge(core.Edge[sym, sym, sym]{Source: b, Target: c, Action: core.DynTargetedPopAction[sym, sym]("alpha")})

	var nopTargets []core.Node[sym, sym, sym]
	for t := range g.FindNopEdgesBySource(a) {
		nopTargets = append(nopTargets, t)
	}
	if len(nopTargets) != 1 || nopTargets[0].Key() != b.Key() {
		t.Fatalf("expected one nop target B, got %v", nopTargets)
	}

	popCount := 0
	for tgt, elem := range g.FindPopEdgesBySource(b) {
		popCount++
		if tgt.Key() != c.Key() || elem != sym("x") {
			t.Fatalf("unexpected pop match %v %v", tgt, elem)
		}
	}
	if popCount != 1 {
		t.Fatalf("expected one pop match, got %d", popCount)
	}

	dynCount := 0
	for tgt, act := range g.FindTargetedDynamicPopEdgesBySource(b) {
		dynCount++
		if tgt.Key() != c.Key() || act != sym("alpha") {
			t.Fatalf("unexpected dyn-pop match %v %v", tgt, act)
		}
	}
	if dynCount != 1 {
		t.Fatalf("expected one dyn-pop match, got %d", dynCount)
	}

	if g.NodeCount() != 3 {
		t.Fatalf("expected 3 distinct nodes, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 3 {
		t.Fatalf("expected 3 distinct edges, got %d", g.EdgeCount())
	}
}

func TestFindEdgesByTargetSpansAllKinds(t *testing.T) {
	g := New[sym, sym, sym, sym]()
	a, b, c := state("A"), state("B"), state("C")
	g.AddEdge(core.Edge[sym, sym, sym]{Source: a, Target: c, Action: core.Nop[sym, sym]()})
	g.AddEdge(core.Edge[sym, sym, sym]{Source: b, Target: c, Action: core.PopAction[sym, sym]("x")})
	g.AddEdge(core.Edge[sym, sym, sym]{Source: b, Target: c, Action: core.DynTargetedPopAction[sym, sym]("alpha")})
	g.AddEdge(core.Edge[sym, sym, sym]{Source: a, Target: b, Action: core.PushAction[sym, sym]("x")})

	kinds := make(map[core.ActionKind]int)
	count := 0
	for e := range g.FindEdgesByTarget(c) {
		count++
		kinds[e.Action.Kind()]++
	}
	if count != 3 {
		t.Fatalf("expected 3 edges ending at C, got %d", count)
	}
	if kinds[core.KindNop] != 1 || kinds[core.KindPop] != 1 || kinds[core.KindDynTargetedPop] != 1 {
		t.Fatalf("expected one edge of each of Nop/Pop/DynTargetedPop ending at C, got %v", kinds)
	}

	var bTargeting []core.Edge[sym, sym, sym]
	for e := range g.FindEdgesByTarget(b) {
		bTargeting = append(bTargeting, e)
	}
	if len(bTargeting) != 1 || bTargeting[0].Action.Kind() != core.KindPush {
		t.Fatalf("expected exactly one Push edge ending at B, got %v", bTargeting)
	}
}
