package kernel

import "github.com/nrother/simple-os/internal/trust"

// Yield voluntarily gives up the remainder of the current task's slice.
// It is the only way control ever leaves a task; there is no
// preemption. Yield does not return until the scheduler resumes this
// same task again.
func (k *Kernel) Yield() {
	cur := k.table[k.currentID]
	k.sw.yield(cur, k.seedStatus)
}

// Sleep marks the current task SLEEPING with a wakeup time ms
// milliseconds in the future, then yields. A sleeping task is skipped
// by the scheduler until its wakeup time is reached; there is no
// cross-task wake primitive, only time.
func (k *Kernel) Sleep(ms uint64) {
	cur := k.table[k.currentID]
	cur.flags.set(flagSleeping)
	cur.wakeup = k.clock.NowMS() + ms
	k.sw.yield(cur, k.seedStatus)
}

// PauseTask marks id PAUSED. A paused task is never selected by the
// scheduler, sleeping or not, until UnpauseTask clears the flag. A
// task may pause itself, in which case it does not run again until
// some other task unpauses it.
func (k *Kernel) PauseTask(id uint8) {
	k.table[id].flags.set(flagPaused)
}

// UnpauseTask clears id's PAUSED flag, making it eligible for
// scheduling again on the next pass.
func (k *Kernel) UnpauseTask(id uint8) {
	k.table[id].flags.clear(flagPaused)
}

// IsTaskPaused reports whether id is currently PAUSED.
func (k *Kernel) IsTaskPaused(id uint8) bool {
	return k.table[id].flags.has(flagPaused)
}

// CurrentTaskID returns the id of the task presently running — i.e. the
// caller, if called from task code.
func (k *Kernel) CurrentTaskID() uint8 {
	return k.currentID
}

// RestartTask marks id NEED_INIT, the same flag a freshly inserted task
// carries, so the next time the scheduler selects it, it begins again
// from its entry point instead of resuming wherever it last yielded.
// Grounded on original_source/SimpleOS.h's restartTask: "restarting a
// task is as simple as setting this flag." A task may restart itself —
// the restart takes effect the next time it is scheduled, which, for
// self-restart, is only after it yields or sleeps.
func (k *Kernel) RestartTask(id uint8) {
	trust.Infof("kernel: restarting task %d", id)
	t := k.table[id]
	// Reset to the initial top-of-stack now, rather than leaving
	// whatever mid-execution value savedSP held: the cold-start path
	// (avrColdStart, and context_avr.s's yield_init branch) both just
	// load savedSP and jump to entry, with no idea whether it is fresh
	// or stale.
	t.savedSP = t.stackBase + t.stackSize - 1
	t.flags.set(flagNeedInit)
}

// Yield calls defaultKernel.Yield. See (*Kernel).Yield.
func Yield() { defaultKernel.Yield() }

// Sleep calls defaultKernel.Sleep. See (*Kernel).Sleep.
func Sleep(ms uint64) { defaultKernel.Sleep(ms) }

// PauseTask calls defaultKernel.PauseTask. See (*Kernel).PauseTask.
func PauseTask(id uint8) { defaultKernel.PauseTask(id) }

// UnpauseTask calls defaultKernel.UnpauseTask. See (*Kernel).UnpauseTask.
func UnpauseTask(id uint8) { defaultKernel.UnpauseTask(id) }

// IsTaskPaused calls defaultKernel.IsTaskPaused. See (*Kernel).IsTaskPaused.
func IsTaskPaused(id uint8) bool { return defaultKernel.IsTaskPaused(id) }

// CurrentTaskID calls defaultKernel.CurrentTaskID. See (*Kernel).CurrentTaskID.
func CurrentTaskID() uint8 { return defaultKernel.CurrentTaskID() }

// RestartTask calls defaultKernel.RestartTask. See (*Kernel).RestartTask.
func RestartTask(id uint8) { defaultKernel.RestartTask(id) }

// InsertTask calls defaultKernel.InsertTask. See (*Kernel).InsertTask.
func InsertTask(id uint8, entry func(), stack []byte) {
	defaultKernel.InsertTask(id, entry, stack)
}

// StartMultitasking calls defaultKernel.StartMultitasking and never
// returns. See (*Kernel).StartMultitasking.
func StartMultitasking() { defaultKernel.StartMultitasking() }
