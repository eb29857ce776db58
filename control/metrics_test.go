package control

import "testing"

func TestMetricsCountersAndGauges(t *testing.T) {
	mr := NewMetricsRegistry()
	mr.Inc("threads.started")
	mr.Add("threads.started", 2)
	mr.Set("stack.size", 2<<20)

	if got := mr.Counter("threads.started"); got != 3 {
		t.Fatalf("counter = %d, want 3", got)
	}
	if got := mr.Counter("missing"); got != 0 {
		t.Fatalf("missing counter = %d, want 0", got)
	}

	snap := mr.GetSnapshot()
	if snap["threads.started"] != uint64(3) {
		t.Fatalf("snapshot counter = %v", snap["threads.started"])
	}
	if snap["stack.size"] != 2<<20 {
		t.Fatalf("snapshot gauge = %v", snap["stack.size"])
	}

	// snapshot must be detached from the registry
	snap["threads.started"] = uint64(99)
	if got := mr.Counter("threads.started"); got != 3 {
		t.Fatalf("snapshot mutation leaked back: %d", got)
	}
}
