package vibration

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// rmsWindow is a fixed-capacity circular buffer over the most recent
// derived values. Slots start at zero, so RMS is attenuated until the
// window first fills; that startup transient is part of the calibrated
// behaviour and is preserved deliberately.
type rmsWindow struct {
	values []float64
	next   int
}

func newRMSWindow(size int) rmsWindow {
	return rmsWindow{values: make([]float64, size)}
}

// Push overwrites the oldest slot and returns the RMS over the whole
// window. The divisor is always the capacity, never the number of
// slots written so far.
func (w *rmsWindow) Push(v float64) float64 {
	w.values[w.next] = v
	w.next = (w.next + 1) % len(w.values)
	return math.Sqrt(floats.Dot(w.values, w.values) / float64(len(w.values)))
}
