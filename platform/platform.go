// Package platform isolates the two things the kernel needs from its
// host: a monotonic millisecond clock and a short busy-wait. Boot code,
// peripheral drivers and anything else touching hardware directly live
// outside this package and outside the kernel.
package platform

// Clock is the platform's time source, required by the scheduler's idle
// path and by Sleep's wakeup-time arithmetic.
type Clock interface {
	// NowMS returns a monotonic millisecond counter. Overflow handling is
	// the clock's responsibility; the scheduler performs no
	// signed/unsigned conversion on the value.
	NowMS() uint64

	// DelayUS busy-waits for approximately the given number of
	// microseconds. Used only by the scheduler's idle retry loop.
	DelayUS(us uint32)
}

// Default is the Clock wired in by the build-tagged platform backend
// (avr.go or sim.go). Kernel code should take a Clock as a constructor
// argument rather than reading this directly; it exists so that simple
// callers (demo firmware) don't need to construct one themselves.
var Default Clock = newDefaultClock()
