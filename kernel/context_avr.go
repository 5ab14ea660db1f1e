//go:build avr

package kernel

import "unsafe"

func newSwitcher() switcher { return avrSwitcher{} }

// avrSwitcher backs switcher on the real target. Its primitives are
// declared with no Go body; the implementation lives in
// context_avr.s, transliterated from original_source/SimpleOS.h's
// yield()/startMultitasking() inline assembly, generalized from the
// three hardcoded tasks of example1.cpp to an arbitrary task count.
type avrSwitcher struct{}

func (avrSwitcher) yield(cur *TCB, seedStatus uint8) {
	avrYield(unsafe.Pointer(&cur.savedSP), seedStatus)
}

func (avrSwitcher) coldStart(task *TCB, seedStatus uint8) {
	avrColdStart(unsafe.Pointer(&task.savedSP), task.entry, seedStatus)
}

func (avrSwitcher) captureStatus() uint8 {
	return avrReadSREG()
}

// avrYield saves the caller's register file and SREG onto the stack
// whose top is *spAddr, switches SP to the scratch region at the top of
// RAM, calls kernel_scheduleNext (now running on the scratch stack,
// where it's safe for its idle path to read the platform clock, which
// needs a valid, non-task-owned stack), and resumes or cold-starts
// whatever it returns. Bodiless; implemented in context_avr.s, the same
// way joy/domain.go's retFromFork() and setHeapPointers() carry no
// directive at all for a same-package assembly body.
func avrYield(spAddr unsafe.Pointer, seedStatus uint8)

// avrColdStart synthesizes the minimal stack frame a return instruction
// can consume — entry as the return target, seedStatus as SREG — and
// transfers control to entry. Used only for task 0 at kernel start,
// where there is no saved register file to restore instead.
func avrColdStart(spAddr unsafe.Pointer, entry uintptr, seedStatus uint8)

func avrReadSREG() uint8
