package vibration

import "sync/atomic"

// StreamStats counts message dispositions so long-running ingests can
// report drop rates without per-sample logging.
type StreamStats struct {
	received  atomic.Int64
	control   atomic.Int64
	malformed atomic.Int64
	outliers  atomic.Int64
	accepted  atomic.Int64
}

// StatsSnapshot is a point-in-time copy of the counters.
type StatsSnapshot struct {
	Received  int64
	Control   int64
	Malformed int64
	Outliers  int64
	Accepted  int64
}

// Snapshot returns the current counter values.
func (s *StreamStats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Received:  s.received.Load(),
		Control:   s.control.Load(),
		Malformed: s.malformed.Load(),
		Outliers:  s.outliers.Load(),
		Accepted:  s.accepted.Load(),
	}
}

// LogStats emits a one-line summary on the diag stream.
func (s *StreamStats) LogStats() {
	snap := s.Snapshot()
	diagf("stream stats: received=%d accepted=%d control=%d malformed=%d outliers=%d",
		snap.Received, snap.Accepted, snap.Control, snap.Malformed, snap.Outliers)
}
