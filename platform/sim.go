//go:build !avr

package platform

import "time"

// simClock backs Default on hosted builds (go test, and any tooling run
// on a development machine rather than the target board).
type simClock struct {
	start time.Time
}

func newDefaultClock() Clock {
	return &simClock{start: time.Now()}
}

func (c *simClock) NowMS() uint64 {
	return uint64(time.Since(c.start).Milliseconds())
}

func (c *simClock) DelayUS(us uint32) {
	time.Sleep(time.Duration(us) * time.Microsecond)
}
