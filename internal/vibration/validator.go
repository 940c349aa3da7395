package vibration

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrControlMessage marks gateway control strings. The stream emits
// these around authentication and sensor resets; they are dropped
// without touching pipeline state and without being counted.
var ErrControlMessage = errors.New("control message")

// controlMessages are matched verbatim against the full message body.
var controlMessages = map[string]struct{}{
	"Authenticated":         {},
	"Authentication failed": {},
	"Resetting sensor...":   {},
}

type rawPayload struct {
	A   []float64 `json:"a"`
	Vib []float64 `json:"vib"`
}

// ParseReading validates one inbound stream message. Control strings
// return ErrControlMessage; anything that fails to parse as a payload
// with exactly three accelerations and three vibration velocities is
// malformed. Outlier screening is separate (see RawReading.Outlier)
// because the limit is per-pipeline tuning.
func ParseReading(msg []byte) (RawReading, error) {
	if _, ok := controlMessages[string(msg)]; ok {
		return RawReading{}, ErrControlMessage
	}

	var p rawPayload
	if err := json.Unmarshal(msg, &p); err != nil {
		return RawReading{}, fmt.Errorf("parse reading: %w", err)
	}
	if len(p.A) != 3 || len(p.Vib) != 3 {
		return RawReading{}, fmt.Errorf(
			"parse reading: want 3 accelerations and 3 vibration velocities, got %d and %d",
			len(p.A), len(p.Vib))
	}

	var r RawReading
	copy(r.Accel[:], p.A)
	copy(r.Vib[:], p.Vib)
	return r, nil
}

// Outlier reports whether any acceleration component strictly exceeds
// the physical limit. Such samples are sensor glitches; letting one
// through would corrupt the integrator state for the rest of the
// reset interval.
func (r RawReading) Outlier(limit float64) bool {
	for _, a := range r.Accel {
		if math.Abs(a) > limit {
			return true
		}
	}
	return false
}
