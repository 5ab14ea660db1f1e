package kernel

import "testing"

func TestNewRejectsTaskCountBelowTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for TaskCount < 2")
		}
	}()
	New(Config{TaskCount: 1}, fakeClock{})
}

func TestInsertTaskRejectsOutOfRangeID(t *testing.T) {
	k := New(Config{TaskCount: 2}, fakeClock{})
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-range id")
		}
	}()
	k.InsertTask(5, func() {}, make([]byte, 150))
}

func TestInsertTaskSetsNeedInit(t *testing.T) {
	k := New(Config{TaskCount: 2}, fakeClock{})
	k.InsertTask(0, func() {}, make([]byte, 150))

	if !k.table[0].flags.has(flagNeedInit) {
		t.Fatalf("expected freshly inserted task to carry NEED_INIT")
	}
}

func TestStartMultitaskingPaintsStacksBeforeHandoff(t *testing.T) {
	k := New(Config{TaskCount: 2, SpaceReporting: true}, fakeClock{})
	k.InsertTask(0, func() {}, make([]byte, 150))
	k.InsertTask(1, func() {}, make([]byte, 150))

	defer func() {
		// simSwitcher.coldStart panics on a hosted build; that's the
		// documented boundary of what this package can exercise without
		// real hardware. The painting and bookkeeping that happen before
		// the handoff are still verified here.
		recover()
		if k.table[0].stack[len(k.table[0].stack)-1] != stackCanary {
			t.Fatalf("expected stack 0 to be painted before cold-start")
		}
		if k.table[0].flags.has(flagNeedInit) {
			t.Fatalf("expected NEED_INIT cleared on task 0 before cold-start")
		}
	}()
	k.StartMultitasking()
}

func TestStartMultitaskingRequiresFullyPopulatedTable(t *testing.T) {
	k := New(Config{TaskCount: 2}, fakeClock{})
	k.InsertTask(0, func() {}, make([]byte, 150))
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for an unpopulated slot")
		}
	}()
	k.StartMultitasking()
}

func TestTaskTrampolineLoopsTheBody(t *testing.T) {
	k := New(Config{TaskCount: 2}, fakeClock{})
	calls := 0
	k.InsertTask(0, func() { calls++ }, make([]byte, 150))
	k.InsertTask(1, func() {}, make([]byte, 150))

	prev := defaultKernel
	SetDefault(k)
	defer SetDefault(prev)

	defer func() {
		// taskTrampoline calls k.Yield after every body() return, and
		// simSwitcher.yield panics on a hosted build; that's the
		// documented boundary of what this package can exercise without
		// real hardware. One full lap of body-then-yield is still
		// verified here.
		recover()
		if calls != 1 {
			t.Fatalf("expected body to run once before the first yield, got %d", calls)
		}
	}()
	taskTrampoline()
}

func TestNewTCBPointsEntryAtTrampolineNotBody(t *testing.T) {
	tcb := newTCB(0, func() {}, make([]byte, 150))
	if tcb.entry != funcPC(taskTrampoline) {
		t.Fatalf("expected entry to be taskTrampoline's address, not the task body's")
	}
	if tcb.body == nil {
		t.Fatalf("expected body to be retained for the trampoline to call")
	}
}

func TestStartMultitaskingTwiceIsRejected(t *testing.T) {
	k := New(Config{TaskCount: 2}, fakeClock{})
	k.InsertTask(0, func() {}, make([]byte, 150))
	k.InsertTask(1, func() {}, make([]byte, 150))
	k.started = true

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for a second StartMultitasking call")
		}
	}()
	k.StartMultitasking()
}
