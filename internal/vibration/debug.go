package vibration

import (
	"io"
	"log"
)

var (
	opsLogger   *log.Logger
	diagLogger  *log.Logger
	traceLogger *log.Logger
)

// SetLogWriters configures the three logging streams for the vibration
// package. Pass nil for any writer to disable that stream. The hot
// path logs per-sample telemetry on the trace stream, so production
// runs normally leave it nil.
func SetLogWriters(ops, diag, trace io.Writer) {
	opsLogger = newLogger("[vibration] ", ops)
	diagLogger = newLogger("[vibration] ", diag)
	traceLogger = newLogger("[vibration] ", trace)
}

func newLogger(prefix string, w io.Writer) *log.Logger {
	if w == nil {
		return nil
	}
	return log.New(w, prefix, log.LstdFlags|log.Lmicroseconds)
}

// opsf logs to the ops stream (warnings, flush failures, data loss).
func opsf(format string, args ...interface{}) {
	if opsLogger != nil {
		opsLogger.Printf(format, args...)
	}
}

// diagf logs to the diag stream (dropped samples, batch activity).
func diagf(format string, args ...interface{}) {
	if diagLogger != nil {
		diagLogger.Printf(format, args...)
	}
}

// tracef logs to the trace stream (per-sample telemetry).
func tracef(format string, args ...interface{}) {
	if traceLogger != nil {
		traceLogger.Printf(format, args...)
	}
}
