package control

import (
	"testing"
)

func TestDebugProbes(t *testing.T) {
	dp := NewDebugProbes()
	dp.RegisterProbe("b", func() any { return 2 })
	dp.RegisterProbe("a", func() any { return 1 })

	names := dp.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("Names = %v, want [a b]", names)
	}

	state := dp.DumpState()
	if state["a"] != 1 || state["b"] != 2 {
		t.Errorf("DumpState = %v", state)
	}

	dp.UnregisterProbe("a")
	if _, ok := dp.DumpState()["a"]; ok {
		t.Error("probe a still present after unregister")
	}
}

func TestMetricsRegistry(t *testing.T) {
	mr := NewMetricsRegistry()
	if !mr.Updated().IsZero() {
		t.Error("fresh registry should have zero update time")
	}

	mr.Set("posts", 3)
	mr.Add("posts", 2)
	mr.Add("folds", 1)

	if got := mr.Get("posts"); got != 5 {
		t.Errorf("posts = %d, want 5", got)
	}
	if got := mr.Get("missing"); got != 0 {
		t.Errorf("missing counter = %d, want 0", got)
	}

	snap := mr.GetSnapshot()
	if snap["posts"] != 5 || snap["folds"] != 1 {
		t.Errorf("snapshot = %v", snap)
	}
	if mr.Updated().IsZero() {
		t.Error("update time not recorded")
	}

	// Snapshot is a copy, not a view.
	snap["posts"] = 99
	if mr.Get("posts") != 5 {
		t.Error("mutating a snapshot changed the registry")
	}
}
