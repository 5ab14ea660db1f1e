// Package kernel implements the cooperative task kernel: per-task
// control blocks, the round-robin scheduler, the public task API, and
// optional stack high-water-mark instrumentation. The only part of this
// package that actually switches stacks is gated behind the avr build
// tag (see context_avr.go/.s); everything else is ordinary, testable Go.
package kernel

import (
	"github.com/nrother/simple-os/internal/trust"
	"github.com/nrother/simple-os/platform"
)

// Kernel is the process-wide kernel state: the task table, the
// currently running task, and the status register snapshot replayed
// into every cold-started task. Grounded on joy/family.go's
// currentFamily/familyImpl singleton pair, generalized into a value so
// tests can construct independent instances instead of sharing package
// globals.
type Kernel struct {
	cfg        Config
	table      []*TCB
	currentID  uint8
	seedStatus uint8
	clock      platform.Clock
	sw         switcher
	started    bool
}

// defaultKernel is the singleton the package-level free-function API
// (Yield, Sleep, ...) operates on, and the only Kernel the avr build's
// assembly can reach (see kernelScheduleNext in context.go). Grounded
// on joy/family.go's FamilyAPI-over-package-functions pattern: no task
// can outlive the kernel, so a single shared instance is safe under the
// single-threaded cooperative discipline tasks run under.
var defaultKernel = New(Config{TaskCount: 2}, platform.Default)

// New constructs a Kernel. cfg.TaskCount must be at least 2. clock
// supplies the monotonic millisecond counter and busy-wait the
// scheduler's idle path needs.
func New(cfg Config, clock platform.Clock) *Kernel {
	cfg = cfg.withDefaults()
	if cfg.TaskCount < 2 {
		panic("kernel: TaskCount must be at least 2")
	}
	return &Kernel{
		cfg:   cfg,
		table: make([]*TCB, cfg.TaskCount),
		clock: clock,
		sw:    newSwitcher(),
	}
}

// taskTrampoline is the address cold-start and the yield_init branch
// actually transfer control to; no TCB's entry field ever points at a
// user body directly. Grounded on original_source/SimpleOS.h's
// createTask macro, which expands every task body into
// `while(true){ body(); yield(); }` so that a body which returns is
// re-entered instead of running off the end of its synthesized frame.
// Since avrColdStart/avrYield jump to a code address with no argument
// registers set up, this has to recover "which task am I" from
// defaultKernel.currentID rather than receiving its TCB as a parameter —
// which also means the real asm switcher only ever drives defaultKernel.
func taskTrampoline() {
	for {
		defaultKernel.table[defaultKernel.currentID].body()
		defaultKernel.Yield()
	}
}

// SetDefault replaces the singleton the package-level free functions
// (Yield, Sleep, PauseTask, ...) operate on. Firmware startup calls this
// once, before StartMultitasking; tests that only exercise a Kernel
// value directly never need it.
func SetDefault(k *Kernel) {
	defaultKernel = k
}

// InsertTask initializes slot id with entry and stack. stack must be
// statically allocated by the caller — a package-level array, not
// something returned by make() at runtime — since the kernel itself
// never allocates. entry is free to return: the kernel never cold-starts
// or resumes entry itself, only taskTrampoline, which calls entry in a
// loop and yields after every return.
func (k *Kernel) InsertTask(id uint8, entry func(), stack []byte) {
	if k.started {
		panic("kernel: cannot InsertTask after StartMultitasking")
	}
	if int(id) >= len(k.table) {
		panic("kernel: task id out of range")
	}
	k.table[id] = newTCB(id, entry, stack)
}

// StartMultitasking is called once, after every InsertTask call, from
// the program's single-threaded startup. It never returns. Every slot
// must already be registered; StartMultitasking panics if one is not.
// Task 0 must not be PAUSED; the kernel does not verify that.
func (k *Kernel) StartMultitasking() {
	if k.started {
		panic("kernel: StartMultitasking called twice")
	}
	for _, t := range k.table {
		if t == nil {
			panic("kernel: task slot not populated before StartMultitasking")
		}
	}
	if k.cfg.SpaceReporting {
		paintStacks(k.table)
	}
	k.seedStatus = k.sw.captureStatus()
	k.currentID = 0
	t0 := k.table[0]
	t0.flags.clear(flagNeedInit)
	k.started = true
	trust.Debugf("kernel: cold-starting task 0")
	k.sw.coldStart(t0, k.seedStatus)
}
