//go:build !avr

package kernel

func newSwitcher() switcher { return simSwitcher{} }

// simSwitcher stands in for avrSwitcher on every build that isn't
// targeting the real board (including plain `go test`). There is no
// hosted way to safely repoint a running Go program's stack pointer —
// doing so would corrupt the host Go runtime's own goroutine bookkeeping
// — so these panic rather than pretend to work. Everything that doesn't
// require an actual context transfer (TCB state, flags, the scheduler's
// pickNext, stack instrumentation, the rest of the public API) is fully
// exercised by this package's tests; the few tests that do reach a
// handoff here recover its panic and check only the work done before it.
type simSwitcher struct{}

func (simSwitcher) yield(cur *TCB, seedStatus uint8) {
	panic("kernel: Yield requires the avr build tag")
}

func (simSwitcher) coldStart(task *TCB, seedStatus uint8) {
	panic("kernel: StartMultitasking requires the avr build tag")
}

func (simSwitcher) captureStatus() uint8 {
	return 0
}
