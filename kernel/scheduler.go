package kernel

// pickNext implements the round-robin policy: a single pass over the
// task table, starting one slot past currentID and wrapping back around
// to currentID itself. This is a do-while, not a pre-test loop:
// visiting currentID last is what lets a task that is the only runnable
// one get re-selected without starving — a naive pre-test loop would
// either skip the current task entirely or visit it twice.
//
// It is a pure function over the table's flags and wakeup times, so the
// round-robin, sleep, and pause scenarios can be exercised directly in
// tests without any hardware dependency. It mutates the SLEEPING bit of
// the selected task (clearing it on wake) exactly as
// original_source/SimpleOS.h's yield() does inline.
func pickNext(table []*TCB, currentID uint8, now uint64) (next uint8, found bool) {
	n := uint8(len(table))
	start := (currentID + 1) % n
	i := start
	for {
		t := table[i]
		switch {
		case t.flags.has(flagPaused):
			// skip
		case !t.flags.has(flagSleeping):
			return i, true
		case t.wakeup <= now:
			t.flags.clear(flagSleeping)
			return i, true
		}
		i = (i + 1) % n
		if i == start {
			break
		}
	}
	return 0, false
}
