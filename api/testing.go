// Package api
// Author: momentics
//
// Mock/testing utilities for the core contracts; extendable for new interfaces.

package api

// MockStarter is a test and mock-friendly implementation of ThreadStarter.
type MockStarter struct {
	StartThreadFunc func(cfg ThreadConfig, run func()) error
}

func (m *MockStarter) StartThread(cfg ThreadConfig, run func()) error {
	return m.StartThreadFunc(cfg, run)
}

// MockCrosscall is a test and mock-friendly implementation of Crosscall.
type MockCrosscall struct {
	InvokeFunc func(entry EntryFunc, block *ControlBlock)
}

func (m *MockCrosscall) Invoke(entry EntryFunc, block *ControlBlock) {
	m.InvokeFunc(entry, block)
}

// MockSlot is a test and mock-friendly implementation of Slot.
type MockSlot struct {
	SetFunc   func(block *ControlBlock) (ThreadID, error)
	GetFunc   func() (*ControlBlock, bool)
	ClearFunc func(tid ThreadID)
}

func (m *MockSlot) Set(block *ControlBlock) (ThreadID, error) { return m.SetFunc(block) }
func (m *MockSlot) Get() (*ControlBlock, bool)                { return m.GetFunc() }
func (m *MockSlot) Clear(tid ThreadID)                        { m.ClearFunc(tid) }

// Extend with mocks for additional core contracts as the architecture evolves.
