package core

import "testing"

type strSym string

func (s strSym) String() string { return string(s) }

func TestActionKeyDistinguishesVariants(t *testing.T) {
	push := PushAction[strSym, strSym]("x")
	pop := PopAction[strSym, strSym]("x")
	nop := Nop[strSym, strSym]()
	dyn := DynTargetedPopAction[strSym, strSym]("alpha")

	keys := map[string]Action[strSym, strSym]{
		"push": push, "pop": pop, "nop": nop, "dyn": dyn,
	}
	seen := make(map[string]string)
	for name, a := range keys {
		if other, ok := seen[a.Key()]; ok {
			t.Fatalf("%s and %s collide on key %q", name, other, a.Key())
		}
		seen[a.Key()] = name
	}
}

func TestIntermediateNodeStructuralEquality(t *testing.T) {
	target := StateNode[strSym, strSym, strSym]{State: "C"}
	acts := []Action[strSym, strSym]{PushAction[strSym, strSym]("x"), PopAction[strSym, strSym]("y")}

	n1 := IntermediateNode[strSym, strSym, strSym]{Target: target, Actions: acts}

	// Independently constructed but structurally identical.
	acts2 := []Action[strSym, strSym]{PushAction[strSym, strSym]("x"), PopAction[strSym, strSym]("y")}
	n2 := IntermediateNode[strSym, strSym, strSym]{Target: target, Actions: acts2}

	if n1.Key() != n2.Key() {
		t.Fatalf("expected structurally-equal nodes to share a key, got %q vs %q", n1.Key(), n2.Key())
	}

	acts3 := []Action[strSym, strSym]{PushAction[strSym, strSym]("x")}
	n3 := IntermediateNode[strSym, strSym, strSym]{Target: target, Actions: acts3}
	if n1.Key() == n3.Key() {
		t.Fatalf("expected distinct tail lengths to have distinct keys")
	}
}

func TestDecompose(t *testing.T) {
	from := StateNode[strSym, strSym, strSym]{State: "A"}
	to := StateNode[strSym, strSym, strSym]{State: "B"}

	t.Run("empty", func(t *testing.T) {
		e := Decompose[strSym, strSym, strSym](from, nil, to)
		if e.Action.Kind() != KindNop || e.Target.Key() != to.Key() {
			t.Fatalf("expected from --Nop--> to, got %s", e)
		}
	})

	t.Run("single", func(t *testing.T) {
		acts := []Action[strSym, strSym]{PushAction[strSym, strSym]("x")}
		e := Decompose[strSym, strSym, strSym](from, acts, to)
		if e.Action.Kind() != KindPush || e.Target.Key() != to.Key() {
			t.Fatalf("expected from --Push x--> to, got %s", e)
		}
	})

	t.Run("multi", func(t *testing.T) {
		acts := []Action[strSym, strSym]{PushAction[strSym, strSym]("x"), PopAction[strSym, strSym]("y")}
		e := Decompose[strSym, strSym, strSym](from, acts, to)
		if e.Action.Kind() != KindPush {
			t.Fatalf("expected first action to be Push, got %s", e.Action)
		}
		inter, ok := e.Target.(IntermediateNode[strSym, strSym, strSym])
		if !ok {
			t.Fatalf("expected target to be an IntermediateNode, got %T", e.Target)
		}
		if len(inter.Actions) != 1 || inter.Actions[0].Kind() != KindPop {
			t.Fatalf("expected intermediate tail [Pop y], got %v", inter.Actions)
		}
		if inter.Target.Key() != to.Key() {
			t.Fatalf("expected intermediate target to be %s, got %s", to, inter.Target)
		}
	})
}
