package control

import (
	"sort"
	"testing"
)

func TestDebugProbesRegisterAndDump(t *testing.T) {
	dp := NewDebugProbes()
	dp.RegisterProbe("a", func() any { return 1 })
	dp.RegisterProbe("b", func() any { return "two" })

	names := dp.ProbeNames()
	sort.Strings(names)
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("names = %v", names)
	}
	if v, ok := dp.DumpProbe("a"); !ok || v != 1 {
		t.Fatalf("probe a = %v ok=%v", v, ok)
	}
	if _, ok := dp.DumpProbe("missing"); ok {
		t.Fatal("missing probe reported ok")
	}
	state := dp.DumpState()
	if state["b"] != "two" {
		t.Fatalf("state = %v", state)
	}
}

func TestRegisterPlatformProbes(t *testing.T) {
	dp := NewDebugProbes()
	RegisterPlatformProbes(dp)
	v, ok := dp.DumpProbe("platform.cpus")
	if !ok {
		t.Fatal("platform.cpus probe missing")
	}
	if n, ok := v.(int); !ok || n < 1 {
		t.Fatalf("platform.cpus = %v", v)
	}
}
