// Package trust is a small leveled logger for the kernel's diagnostic
// output. It is not on any hot path: the kernel only logs at task
// lifecycle transitions (cold start, restart), never from inside
// the context-switch critical region.
package trust

import "fmt"

type MaskLevel int

const (
	Nothing   MaskLevel = 0x0
	ErrorMask MaskLevel = 0x1
	WarnMask  MaskLevel = 0x2
	InfoMask  MaskLevel = 0x4
	DebugMask MaskLevel = 0x8
	StatsMask MaskLevel = 0x10
	fatalMask MaskLevel = 0x80
)

// Sink receives formatted log lines. Swappable so the kernel package
// stays host-testable without a UART.
type Sink interface {
	WriteString(string)
}

var sink Sink = stdErrSink{}
var onFatal func(int) = defaultOnFatal

var level = fatalMask | StatsMask | ErrorMask | WarnMask | InfoMask | DebugMask

// SetSink replaces the destination for log output, returning the previous
// sink so callers can restore it (tests do this routinely).
func SetSink(s Sink) Sink {
	prev := sink
	sink = s
	return prev
}

// SetOnFatal replaces the hook invoked by Fatalf after the message is
// written. Defaults to os.Exit on hosted builds.
func SetOnFatal(f func(int)) {
	onFatal = f
}

// SetLevel lets you set an error mask directly. Each level bit also
// enables every less severe level after it in the order Error, Warn,
// Info, Debug, Stats, so ErrorMask | DebugMask is the same as ErrorMask,
// and StatsMask alone is the only way to enable a single level. It
// returns the previous mask.
func SetLevel(mask MaskLevel) MaskLevel {
	if mask&0x1f == 0 {
		fmt.Println(" WARN: trust.SetLevel is turning off log messages")
	}
	result := Nothing
	switch {
	case mask&ErrorMask > 0:
		result |= ErrorMask
		fallthrough
	case mask&WarnMask > 0:
		result |= WarnMask
		fallthrough
	case mask&InfoMask > 0:
		result |= InfoMask
		fallthrough
	case mask&DebugMask > 0:
		result |= DebugMask
		fallthrough
	case mask&StatsMask > 0:
		result |= StatsMask
	}
	r := level & 0x1f
	level = result | fatalMask
	return r
}

func Level() MaskLevel {
	return level
}

// LevelToString renders the current level mask as a space-separated list
// of the enabled severities, most severe first.
func LevelToString() string {
	result := ""
	switch {
	case level&ErrorMask > 0:
		result += "error "
		fallthrough
	case level&WarnMask > 0:
		result += "warn "
		fallthrough
	case level&InfoMask > 0:
		result += "info "
		fallthrough
	case level&DebugMask > 0:
		result += "debug "
		fallthrough
	case level&StatsMask > 0:
		result += "stats"
	}
	return result
}

func logf(l MaskLevel, format string, params ...interface{}) {
	if level&l == 0 {
		return
	}
	prefix := ""
	switch {
	case l&fatalMask > 0:
		prefix = "FATAL:"
	case l&ErrorMask > 0:
		prefix = "ERROR:"
	case l&WarnMask > 0:
		prefix = " WARN:"
	case l&InfoMask > 0:
		prefix = " INFO:"
	case l&DebugMask > 0:
		prefix = "DEBUG:"
	case l&StatsMask > 0:
		prefix = "STATS:"
	}
	msg := fmt.Sprintf(format, params...)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	sink.WriteString(prefix + " " + msg)
}

// Fatalf prints the given log message and then invokes the fatal hook
// with exitCode. Fatalf is not maskable.
func Fatalf(exitCode int, format string, params ...interface{}) {
	logf(fatalMask, format, params...)
	onFatal(exitCode)
}

func Errorf(format string, params ...interface{}) {
	logf(ErrorMask, format, params...)
}

func Warnf(format string, params ...interface{}) {
	logf(WarnMask, format, params...)
}

func Infof(format string, params ...interface{}) {
	logf(InfoMask, format, params...)
}

func Debugf(format string, params ...interface{}) {
	logf(DebugMask, format, params...)
}

// Statsf prints the given log message using the StatsMask level, with an
// extra category label visible in the log line.
func Statsf(category string, format string, params ...interface{}) {
	logf(StatsMask, "[%s] "+format, append([]interface{}{category}, params...)...)
}
