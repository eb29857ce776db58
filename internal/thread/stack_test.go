package thread

import "testing"

func TestStackBoundsWindow(t *testing.T) {
	const hi = uintptr(0x7fff12340000)
	lo, top := stackBounds(hi)
	if top != hi {
		t.Fatalf("top: got %#x want %#x", top, hi)
	}
	if lo >= top {
		t.Fatalf("lo %#x not below top %#x", lo, top)
	}
	if got, want := top-lo, StackSize-StackGuard; got != want {
		t.Fatalf("window width: got %d want %d", got, want)
	}
	if !boundsValid(lo, top) {
		t.Fatalf("stackBounds output rejected by boundsValid: [%#x, %#x)", lo, top)
	}
}

func TestBoundsValidRejectsDegenerateWindows(t *testing.T) {
	cases := []struct {
		name string
		lo   uintptr
		hi   uintptr
	}{
		{"inverted", 0x2000000, 0x1000000},
		{"empty", 0x1000000, 0x1000000},
		{"too narrow", 0x1000000, 0x1000000 + StackSize - StackGuard - 1},
		{"too wide", 0x1000000, 0x1000000 + StackSize},
	}
	for _, c := range cases {
		if boundsValid(c.lo, c.hi) {
			t.Errorf("%s: window [%#x, %#x) unexpectedly valid", c.name, c.lo, c.hi)
		}
	}
}

func TestStackGeometryConstants(t *testing.T) {
	if StackGuard >= StackSize {
		t.Fatalf("guard %d must be below stack size %d", StackGuard, StackSize)
	}
	if StackSize%4096 != 0 || StackGuard%4096 != 0 {
		t.Fatalf("stack geometry must be page aligned: size=%d guard=%d", StackSize, StackGuard)
	}
}
