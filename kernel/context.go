package kernel

// switcher is the narrow seam between the scheduler's decision logic
// (pure Go, unit-tested directly) and the machine-specific register
// save/restore. Exactly one implementation is linked in per build:
// avrSwitcher (context_avr.go/.s) on the real target, simSwitcher
// (context_sim.go) everywhere else. This mirrors joy/sprintft.go's own
// admission that assembly/linker-touching code can't be driven by
// testing.T — everything on this side of the seam is tested; nothing on
// the other side is.
type switcher interface {
	// yield saves the currently running task cur's full register file
	// and status register onto its own stack, then switches the
	// hardware stack pointer to the shared scratch region. Once safely
	// parked there it calls kernelScheduleNext — an exported Go symbol,
	// not a passed-in closure, since the assembly side only ever needs
	// the one fixed entry point — to choose the task to resume, then
	// either resumes it or cold-starts it depending on whether it has
	// run before. From a Go caller's point of view this is an ordinary
	// call that simply took a while: it "returns" once some later
	// yield, on this same task, resumes it.
	yield(cur *TCB, seedStatus uint8)

	// coldStart launches a task that has never run: there is no saved
	// register file to restore, only an entry point to jump into. Used
	// once, by StartMultitasking, to launch task 0.
	coldStart(task *TCB, seedStatus uint8)

	// captureStatus snapshots the machine's status register for use as
	// the kernel's seedStatus.
	captureStatus() uint8
}

// kernelScheduleNext is the fixed entry point the scratch-stack side of
// yield calls back into once it is safe to do so. It wraps the pure
// pickNext with an idle retry: keep scanning, busy waiting between full
// passes, until some task is selected. There is no bound on how long
// that can take; selection is the only exit. Grounded on
// joy/family.go's package-level functions wrapping the package's
// singleton state (permitPreemption, prohibitPreemption); this is the
// same shape, //go:export'd so the assembly side can call it by symbol
// name.
//
//go:export kernel_scheduleNext
func kernelScheduleNext() *TCB {
	k := defaultKernel
	for {
		if id, found := pickNext(k.table, k.currentID, k.clock.NowMS()); found {
			k.currentID = id
			t := k.table[id]
			// A task that restarted itself had its savedSP overwritten by
			// avrYield's save after RestartTask reset it; a cold start
			// always begins from the initial top-of-stack.
			if t.flags.has(flagNeedInit) {
				t.savedSP = t.stackBase + t.stackSize - 1
			}
			return t
		}
		k.clock.DelayUS(1000)
	}
}

// kernelSeedStatus hands avrYield's cold-start branch the status
// register snapshot taken once, at StartMultitasking, for every task
// cold-started from inside yield rather than at boot: tasks other than
// task 0 on their first selection, and any task after RestartTask.
//
//go:export kernel_seedStatus
func kernelSeedStatus() uint8 {
	return defaultKernel.seedStatus
}
