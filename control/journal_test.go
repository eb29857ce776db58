package control

import (
	"testing"
	"time"
)

func TestJournalRecordAndOrder(t *testing.T) {
	j := NewJournal(4)
	for i := 0; i < 3; i++ {
		j.Record(Event{Kind: EventStarted, ID: uint64(i + 1)})
	}
	evs := j.Recent()
	if len(evs) != 3 {
		t.Fatalf("len = %d, want 3", len(evs))
	}
	for i, ev := range evs {
		if ev.ID != uint64(i+1) {
			t.Fatalf("event %d: id %d, want %d", i, ev.ID, i+1)
		}
		if ev.When.IsZero() {
			t.Fatalf("event %d: zero timestamp", i)
		}
	}
}

func TestJournalCapacityTrim(t *testing.T) {
	j := NewJournal(2)
	for i := 1; i <= 5; i++ {
		j.Record(Event{Kind: EventExited, ID: uint64(i)})
	}
	if j.Len() != 2 {
		t.Fatalf("len = %d, want 2", j.Len())
	}
	evs := j.Recent()
	if evs[0].ID != 4 || evs[1].ID != 5 {
		t.Fatalf("retained ids %d,%d want 4,5", evs[0].ID, evs[1].ID)
	}
}

func TestJournalKeepsExplicitTimestamp(t *testing.T) {
	j := NewJournal(0)
	when := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	j.Record(Event{Kind: EventAdopted, When: when})
	if got := j.Recent()[0].When; !got.Equal(when) {
		t.Fatalf("when = %v, want %v", got, when)
	}
}

func TestEventKindString(t *testing.T) {
	cases := map[EventKind]string{
		EventStarted:     "started",
		EventExited:      "exited",
		EventAdopted:     "adopted",
		EventStartFailed: "start-failed",
		EventKind(99):    "unknown",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("kind %d: %q, want %q", int(k), got, want)
		}
	}
}
