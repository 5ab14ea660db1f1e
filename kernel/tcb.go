package kernel

import "unsafe"

// TCB is the per-task control block. One is allocated statically per
// slot in the task table; none is ever freed.
//
// The first three fields' order is load-bearing: context_avr.s indexes
// savedSP, flags and entry by hand-computed displacement off the *TCB
// kernel_scheduleNext returns, the same way the Go runtime's own
// assembly hardcodes offsets into g and m. Field order must not change
// without updating the offsets there too.
type TCB struct {
	savedSP uintptr   // valid only while this task is not current
	flags   taskFlags
	entry   uintptr
	id      uint8
	wakeup  uint64 // meaningful only while flagSleeping is set

	// body is the user-supplied task function. entry never points at it
	// directly — it points at taskTrampoline, which calls body in a loop
	// so a body that returns is safely re-entered rather than falling
	// off into whatever garbage sits above its synthesized entry frame.
	body func()

	stack     []byte
	stackBase uintptr
	stackSize uintptr
}

var tcbLayout TCB

// Byte offsets of TCB's asm-visible fields. context_avr.s's avrYield
// epilogue uses these (as fixed immediates, recomputed by hand to match)
// to decide whether to resume a saved register file or cold-start a
// task that InsertTask (or RestartTask) marked flagNeedInit.
const (
	tcbSavedSPOffset = unsafe.Offsetof(tcbLayout.savedSP)
	tcbFlagsOffset   = unsafe.Offsetof(tcbLayout.flags)
	tcbEntryOffset   = unsafe.Offsetof(tcbLayout.entry)
)

// ID returns the task's slot number.
func (t *TCB) ID() uint8 {
	return t.id
}

func newTCB(id uint8, entry func(), stack []byte) *TCB {
	if len(stack) == 0 {
		panic("kernel: task stack must not be empty")
	}
	base := uintptr(unsafe.Pointer(&stack[0]))
	size := uintptr(len(stack))
	return &TCB{
		id:        id,
		flags:     flagNeedInit,
		entry:     funcPC(taskTrampoline),
		body:      entry,
		stack:     stack,
		stackBase: base,
		stackSize: size,
		// Top-of-stack, descending convention: savedSP starts at the
		// very top byte of the region.
		savedSP: base + size - 1,
	}
}

// funcPC extracts the entry address of a non-closure, argumentless
// function value, the same trick used in
// other_examples/bhardwajRahul-go-dav-os__scheduler.go's NewTaskEntry:
// a Go func value is itself a pointer to a small struct whose first
// word is the code address.
func funcPC(fn func()) uintptr {
	fnVal := *(*uintptr)(unsafe.Pointer(&fn))
	return *(*uintptr)(unsafe.Pointer(fnVal))
}
