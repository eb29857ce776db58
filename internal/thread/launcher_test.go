package thread

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/momentics/hioload-thread/api"
	"github.com/momentics/hioload-thread/control"
	"github.com/momentics/hioload-thread/fake"
)

// Creation failure must abort exactly once: one starter attempt, one fatal
// report, no retry, and the entry function never runs.
func TestStartFatalOnCreationFailure(t *testing.T) {
	boom := errors.New("no threads left")
	st := fake.NewStarter()
	st.SetFailure(boom)

	metrics := control.NewMetricsRegistry()
	journal := control.NewJournal(8)
	cfg := DefaultConfig()
	cfg.Starter = st
	cfg.Slot = NewLocalSlot()
	cfg.Metrics = metrics
	cfg.Journal = journal
	l := NewLauncher(cfg)

	var calls int
	var lastMsg string
	orig := fatalf
	fatalf = func(format string, args ...any) {
		calls++
		lastMsg = fmt.Sprintf(format, args...)
	}
	defer func() { fatalf = orig }()

	l.Start(func(*api.ControlBlock) {
		t.Error("entry ran after failed creation")
	}, &api.ControlBlock{})

	if calls != 1 {
		t.Fatalf("fatalf called %d times, want 1", calls)
	}
	if !strings.Contains(lastMsg, boom.Error()) {
		t.Fatalf("fatal message %q does not mention the cause", lastMsg)
	}
	if got := st.Calls(); got != 1 {
		t.Fatalf("starter called %d times, want exactly 1", got)
	}
	if got := metrics.Counter("starter.failures"); got != 1 {
		t.Fatalf("starter.failures = %d, want 1", got)
	}
	evs := journal.Recent()
	if len(evs) != 1 || evs[0].Kind != control.EventStartFailed {
		t.Fatalf("journal = %+v, want one start-failed event", evs)
	}
}

func TestStartNilArgumentsPanic(t *testing.T) {
	l := NewLauncher(DefaultConfig())
	for name, fn := range map[string]func(){
		"nil entry": func() { l.Start(nil, &api.ControlBlock{}) },
		"nil block": func() { l.Start(func(*api.ControlBlock) {}, nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: no panic", name)
				}
			}()
			fn()
		}()
	}
}

func TestStartThreadConfigSequence(t *testing.T) {
	requireThreadIDs(t)

	st := fake.NewStarter()
	st.SetInline(true)

	cfg := DefaultConfig()
	cfg.Starter = st
	cfg.Slot = NewLocalSlot()
	cfg.NamePrefix = "bridge"
	l := NewLauncher(cfg)

	ran := 0
	for i := 0; i < 3; i++ {
		l.Start(func(*api.ControlBlock) { ran++ }, &api.ControlBlock{})
	}
	if ran != 3 {
		t.Fatalf("entries ran %d times, want 3", ran)
	}

	cfgs := st.Configs()
	if len(cfgs) != 3 {
		t.Fatalf("recorded %d configs, want 3", len(cfgs))
	}
	for i, c := range cfgs {
		if c.StackSize != StackSize {
			t.Errorf("config %d: stack size %d, want %d", i, c.StackSize, StackSize)
		}
		if want := fmt.Sprintf("bridge-%d", i+1); c.Name != want {
			t.Errorf("config %d: name %q, want %q", i, c.Name, want)
		}
		if c.CPU != -1 {
			t.Errorf("config %d: cpu %d, want -1", i, c.CPU)
		}
	}
}

func TestAdoptInstallsAndRejectsSecond(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	slot := NewLocalSlot()
	cfg := DefaultConfig()
	cfg.Slot = slot
	l := NewLauncher(cfg)

	var block api.ControlBlock
	if err := l.Adopt(&block); err != nil {
		t.Skipf("adopt unavailable: %v", err)
	}
	if !boundsValid(block.StackLo, block.StackHi) {
		t.Fatalf("adopted bounds invalid: [%#x, %#x)", block.StackLo, block.StackHi)
	}
	got, ok := slot.Get()
	if !ok || got != &block {
		t.Fatalf("slot after adopt: %p ok=%v, want %p", got, ok, &block)
	}
	if l.Count() != 1 {
		t.Fatalf("count = %d, want 1", l.Count())
	}

	var second api.ControlBlock
	if err := l.Adopt(&second); !errors.Is(err, api.ErrSlotOccupied) {
		t.Fatalf("second adopt: %v, want ErrSlotOccupied", err)
	}
	if err := l.Adopt(nil); !errors.Is(err, api.ErrInvalidArgument) {
		t.Fatalf("nil adopt: %v, want ErrInvalidArgument", err)
	}
}
