package thread

import (
	"errors"
	"sync/atomic"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/momentics/hioload-thread/api"
)

func TestDescriptorSingleConsume(t *testing.T) {
	block := &api.ControlBlock{}
	d := newDescriptor(func(*api.ControlBlock) {}, block)

	p := d.consume()
	if p.block != block {
		t.Fatalf("payload block %p, want %p", p.block, block)
	}
	if p.entry == nil {
		t.Fatal("payload entry dropped")
	}
	if d.entry != nil || d.block != nil {
		t.Fatal("descriptor retains payload after consume")
	}
}

func TestDescriptorDoubleConsumePanics(t *testing.T) {
	d := newDescriptor(func(*api.ControlBlock) {}, &api.ControlBlock{})
	d.consume()
	defer func() {
		if recover() == nil {
			t.Fatal("second consume did not panic")
		}
	}()
	d.consume()
}

// One descriptor per start, consumed exactly once, fully released: the
// storm checks the accounting holds under a thousand concurrent handoffs.
func TestDescriptorStormSingleUse(t *testing.T) {
	const n = 1000
	var consumed uint64

	allocBefore, relBefore := descriptorCounts()

	var g errgroup.Group
	for i := 0; i < n; i++ {
		d := newDescriptor(func(*api.ControlBlock) {}, &api.ControlBlock{})
		g.Go(func() error {
			p := d.consume()
			if p.block == nil {
				return errors.New("payload lost its block")
			}
			atomic.AddUint64(&consumed, 1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if consumed != n {
		t.Fatalf("consumed %d descriptors, want %d", consumed, n)
	}

	allocAfter, relAfter := descriptorCounts()
	if got, want := allocAfter-allocBefore, uint64(n); got != want {
		t.Fatalf("allocated %d descriptors, want %d", got, want)
	}
	if got, want := relAfter-relBefore, uint64(n); got != want {
		t.Fatalf("released %d descriptors, want %d", got, want)
	}
}
