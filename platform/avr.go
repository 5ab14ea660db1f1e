//go:build avr

package platform

import (
	"device/avr"
	"runtime/volatile"
)

// avrClock drives NowMS from a Timer0 interrupt, much like Arduino's own
// millis(): Timer0 is configured in CTC mode for a ~1kHz compare-match
// rate at startup, and each compare-match A interrupt bumps a counter
// the scheduler's idle loop polls.
type avrClock struct{}

var millisCounter volatile.Register32

func newDefaultClock() Clock {
	configureTimer0()
	return avrClock{}
}

func configureTimer0() {
	// CTC mode, prescaler /64, compare value tuned for a 16MHz part to
	// match every ~1ms; boards clocked differently would need a
	// different compare value; clock setup is deliberately the host's
	// job, not the kernel's.
	avr.TCCR0A.Set(avr.TCCR0A_WGM01)
	avr.TCCR0B.Set(avr.TCCR0B_CS01 | avr.TCCR0B_CS00)
	avr.OCR0A.Set(249)
	avr.TIMSK0.Set(avr.TIMSK0_OCIE0A)
}

//go:interrupt TIMER0_COMPA
func timer0Compare() {
	millisCounter.Set(millisCounter.Get() + 1)
}

func (avrClock) NowMS() uint64 {
	return uint64(millisCounter.Get())
}

// DelayUS busy-waits by spinning NOP instructions; it must not rely on
// the millisecond counter, since the scheduler's idle path calls it
// precisely when no task — and therefore no guarantee about interrupt
// latency — is runnable.
func (avrClock) DelayUS(us uint32) {
	// ~4 cycles per iteration at 16MHz gives roughly 1 iteration per
	// 250ns; this is a coarse approximation, matching SimpleOS.h's own
	// delayMicroseconds(1000) busy-wait, which made no stronger guarantee
	// either.
	iterations := us * 4
	for i := uint32(0); i < iterations; i++ {
		avr.Asm("nop")
	}
}
