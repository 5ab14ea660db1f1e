package kernel

import "testing"

func newTestTable(n int) []*TCB {
	table := make([]*TCB, n)
	for i := range table {
		table[i] = &TCB{id: uint8(i)}
	}
	return table
}

func TestPickNextRoundRobinAllRunnable(t *testing.T) {
	table := newTestTable(3)

	next, found := pickNext(table, 0, 0)
	if !found || next != 1 {
		t.Fatalf("expected task 1, got %d (found=%v)", next, found)
	}

	next, found = pickNext(table, 1, 0)
	if !found || next != 2 {
		t.Fatalf("expected task 2, got %d (found=%v)", next, found)
	}

	next, found = pickNext(table, 2, 0)
	if !found || next != 0 {
		t.Fatalf("expected task 0 (wraps), got %d (found=%v)", next, found)
	}
}

// TestPickNextSkipsSleeping mirrors S2: one sleeping task, wakeup not
// yet reached, must be skipped in favor of the next runnable one.
func TestPickNextSkipsSleeping(t *testing.T) {
	table := newTestTable(3)
	table[1].flags.set(flagSleeping)
	table[1].wakeup = 1000

	next, found := pickNext(table, 0, 500)
	if !found || next != 2 {
		t.Fatalf("expected task 2 (skipping sleeping task 1), got %d", next)
	}
}

// TestPickNextWakesSleepingTask checks that once now >= wakeup, a
// sleeping task becomes selectable again and its flag is cleared.
func TestPickNextWakesSleepingTask(t *testing.T) {
	table := newTestTable(2)
	table[1].flags.set(flagSleeping)
	table[1].wakeup = 1000

	next, found := pickNext(table, 0, 1000)
	if !found || next != 1 {
		t.Fatalf("expected task 1 to wake, got %d (found=%v)", next, found)
	}
	if table[1].flags.has(flagSleeping) {
		t.Fatalf("expected SLEEPING cleared on wake")
	}
}

// TestPickNextSkipsPaused mirrors S3: a paused task is never selected
// regardless of its sleep state.
func TestPickNextSkipsPaused(t *testing.T) {
	table := newTestTable(3)
	table[1].flags.set(flagPaused)

	next, found := pickNext(table, 0, 0)
	if !found || next != 2 {
		t.Fatalf("expected task 2 (skipping paused task 1), got %d", next)
	}

	next, found = pickNext(table, 2, 0)
	if !found || next != 0 {
		t.Fatalf("expected wraparound to task 0, got %d", next)
	}
}

// TestPickNextNoneRunnable mirrors S6: every task either paused or
// sleeping past the observation window, so the scheduler reports
// nothing is ready instead of looping forever itself.
func TestPickNextNoneRunnable(t *testing.T) {
	table := newTestTable(2)
	table[0].flags.set(flagPaused)
	table[1].flags.set(flagSleeping)
	table[1].wakeup = 100000

	_, found := pickNext(table, 0, 0)
	if found {
		t.Fatalf("expected no runnable task")
	}
}

// TestPickNextVisitsCurrentLast checks the do-while shape directly: if
// every other task is unavailable, the scheduler still falls back to
// re-selecting the current task rather than reporting nothing.
func TestPickNextVisitsCurrentLast(t *testing.T) {
	table := newTestTable(3)
	table[1].flags.set(flagPaused)
	table[2].flags.set(flagPaused)

	next, found := pickNext(table, 0, 0)
	if !found || next != 0 {
		t.Fatalf("expected task 0 to be re-selected, got %d (found=%v)", next, found)
	}
}

func TestPickNextThreeTaskPauseUnpause(t *testing.T) {
	// S3: three tasks A(0),B(1),C(2). B is paused.
	table := newTestTable(3)
	table[1].flags.set(flagPaused)

	// A yields -> C (skipping B).
	next, found := pickNext(table, 0, 0)
	if !found || next != 2 {
		t.Fatalf("expected C (2), got %d", next)
	}

	// C yields -> A (skipping B).
	next, found = pickNext(table, 2, 0)
	if !found || next != 0 {
		t.Fatalf("expected A (0), got %d", next)
	}

	// unpause B, A yields -> B runs next.
	table[1].flags.clear(flagPaused)
	next, found = pickNext(table, 0, 0)
	if !found || next != 1 {
		t.Fatalf("expected B (1) after unpause, got %d", next)
	}
}
