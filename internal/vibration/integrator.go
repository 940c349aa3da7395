package vibration

// integrator double-integrates filtered acceleration into velocity and
// displacement with the trapezoid rule at a fixed sample interval.
// Open-loop integration of a biased signal drifts without bound, so
// the pipeline zeroes the accumulated state every ResetInterval
// samples via Reset. The resulting periodic discontinuity is a
// documented tradeoff, not a bug.
type integrator struct {
	dt float64

	velocity     float64
	displacement float64
	prevAccel    float64
	prevVelocity float64
}

// Step integrates one filtered acceleration sample and returns the
// updated velocity and displacement.
func (g *integrator) Step(accel float64) (velocity, displacement float64) {
	g.velocity += ((accel + g.prevAccel) / 2) * g.dt
	g.prevAccel = accel
	g.displacement += ((g.velocity + g.prevVelocity) / 2) * g.dt
	g.prevVelocity = g.velocity
	return g.velocity, g.displacement
}

// Reset zeroes the drift-accumulating state. The previous-sample
// values are left alone: the next Step trapezoid still spans the
// discontinuity the same way the calibrated system does.
func (g *integrator) Reset() {
	g.velocity = 0
	g.displacement = 0
}
