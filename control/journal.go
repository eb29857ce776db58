// control/journal.go
// Author: momentics <momentics@gmail.com>
//
// Bounded in-memory journal of thread lifecycle events. Backed by a
// growable ring held to a fixed capacity; old entries fall off as new
// ones arrive.

package control

import (
	"sync"
	"time"

	"github.com/eapache/queue"
)

// EventKind labels a lifecycle transition.
type EventKind int

const (
	EventStarted EventKind = iota
	EventExited
	EventAdopted
	EventStartFailed
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventExited:
		return "exited"
	case EventAdopted:
		return "adopted"
	case EventStartFailed:
		return "start-failed"
	default:
		return "unknown"
	}
}

// Event is one journal entry.
type Event struct {
	When time.Time
	Kind EventKind
	ID   uint64
	TID  uint64
	Note string
}

// defaultJournalCap bounds a journal constructed with capacity <= 0.
const defaultJournalCap = 256

// Journal records recent lifecycle events for post-mortem inspection.
type Journal struct {
	mu  sync.Mutex
	q   *queue.Queue
	cap int
}

// NewJournal creates a journal keeping at most capacity events.
func NewJournal(capacity int) *Journal {
	if capacity <= 0 {
		capacity = defaultJournalCap
	}
	return &Journal{q: queue.New(), cap: capacity}
}

// Record appends ev, dropping the oldest entry when full. A zero When
// is stamped with the current time.
func (j *Journal) Record(ev Event) {
	if ev.When.IsZero() {
		ev.When = time.Now()
	}
	j.mu.Lock()
	j.q.Add(ev)
	for j.q.Length() > j.cap {
		j.q.Remove()
	}
	j.mu.Unlock()
}

// Recent returns the retained events, oldest first.
func (j *Journal) Recent() []Event {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Event, 0, j.q.Length())
	for i := 0; i < j.q.Length(); i++ {
		out = append(out, j.q.Get(i).(Event))
	}
	return out
}

// Len reports the number of retained events.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.q.Length()
}
