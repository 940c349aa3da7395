// Package monitoring carries the shared diagnostic logger for the
// ingest daemon. The retry paths around store open and stream dial log
// through Logf, so deployments can redirect or mute those messages
// without touching the call sites.
package monitoring

import "log"

// Logf is the process-wide diagnostic logger, defaulting to log.Printf.
var Logf func(format string, v ...interface{}) = log.Printf

// discard drops all diagnostics.
func discard(string, ...interface{}) {}

// SetLogger replaces the process logger and returns the previous one so
// callers can restore it. A nil replacement mutes diagnostics.
func SetLogger(f func(format string, v ...interface{})) func(format string, v ...interface{}) {
	prev := Logf
	if f == nil {
		f = discard
	}
	Logf = f
	return prev
}
