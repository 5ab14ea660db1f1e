//go:build avr

package trust

import "machine"

// stdErrSink writes log lines to the board's default UART. There is no
// semihosting target on AVR, so a fatal error halts instead of exiting.
type stdErrSink struct{}

func (stdErrSink) WriteString(s string) {
	machine.Serial.Write([]byte(s))
}

func defaultOnFatal(int) {
	for {
	}
}
