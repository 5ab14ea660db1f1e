//go:build !avr

package trust

import (
	"fmt"
	"os"
)

type stdErrSink struct{}

func (stdErrSink) WriteString(s string) {
	fmt.Fprint(os.Stderr, s)
}

func defaultOnFatal(code int) {
	os.Exit(code)
}
