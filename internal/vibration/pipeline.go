package vibration

import (
	"errors"
	"fmt"
)

// Pipeline owns every piece of per-sensor state: three filter
// cascades, three integrators, six RMS windows, the sequence counter
// and the reset counter. It processes messages strictly in arrival
// order on a single goroutine; filter and integrator state carry a
// sequential per-sample dependency that forbids concurrent mutation.
type Pipeline struct {
	params   Params
	axes     AxisMap
	sensorID int

	filters     [3]biasFilter
	integrators [3]integrator
	velWindows  [3]rmsWindow
	dispWindows [3]rmsWindow

	// nextSeq is the sequence number the next accepted sample will
	// carry. Seeded from max(existing)+1 at startup so rows never
	// collide across restarts.
	nextSeq    int64
	sinceReset int

	stats StreamStats
}

// NewPipeline builds a pipeline for one sensor. nextSeq is the first
// sequence number to assign; callers seed it from the store's current
// maximum plus one.
func NewPipeline(params Params, axes AxisMap, sensorID int, nextSeq int64) (*Pipeline, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline params: %w", err)
	}
	p := &Pipeline{
		params:   params,
		axes:     axes,
		sensorID: sensorID,
		nextSeq:  nextSeq,
	}
	for i := 0; i < 3; i++ {
		p.filters[i] = biasFilter{alpha: params.HPFAlpha, beta: params.LPFBeta}
		p.integrators[i] = integrator{dt: params.DT}
		p.velWindows[i] = newRMSWindow(params.WindowSize)
		p.dispWindows[i] = newRMSWindow(params.WindowSize)
	}
	return p, nil
}

// Process runs one inbound message through the full pipeline and
// returns the completed row, or nil when the message is dropped.
// Dropped messages leave all filter, integrator and window state
// bit-identical and do not advance the sequence counter.
func (p *Pipeline) Process(msg []byte) *Row {
	p.stats.received.Add(1)

	reading, err := ParseReading(msg)
	if err != nil {
		if errors.Is(err, ErrControlMessage) {
			p.stats.control.Add(1)
			diagf("skipping control message: %s", msg)
		} else {
			p.stats.malformed.Add(1)
			diagf("dropping malformed message: %v", err)
		}
		return nil
	}

	if reading.Outlier(p.params.AccelLimit) {
		p.stats.outliers.Add(1)
		diagf("dropping outlier: x=%.2f y=%.2f z=%.2f",
			reading.Accel[0], reading.Accel[1], reading.Accel[2])
		return nil
	}

	// All three axes advance in lock step on every accepted sample.
	var velRMS, dispRMS [3]float64
	for i := 0; i < 3; i++ {
		filtered := p.filters[i].Apply(reading.Accel[i])
		velocity, displacement := p.integrators[i].Step(filtered)
		velRMS[i] = p.velWindows[i].Push(velocity)
		dispRMS[i] = p.dispWindows[i].Push(displacement)
	}

	seq := p.nextSeq
	p.nextSeq++
	p.stats.accepted.Add(1)

	hVel, vVel, aVel := p.axes.Remap(velRMS)
	hDisp, vDisp, aDisp := p.axes.Remap(dispRMS)

	row := &Row{
		Sequence: seq,
		X:        reading.Accel[0],
		Y:        reading.Accel[1],
		Z:        reading.Accel[2],
		HVib:     reading.Vib[0],
		VVib:     reading.Vib[1],
		AVib:     reading.Vib[2],
		HVel:     hVel,
		VVel:     vVel,
		AVel:     aVel,
		HDisp:    hDisp,
		VDisp:    vDisp,
		ADisp:    aDisp,
		SensorID: p.sensorID,
	}

	tracef("sample %d: x=%.3f y=%.3f z=%.3f h_vel=%.6f v_vel=%.6f a_vel=%.6f",
		seq, row.X, row.Y, row.Z, row.HVel, row.VVel, row.AVel)

	// Drift reset runs strictly after the row is assembled so the
	// reset-sample row still carries the pre-reset values.
	p.sinceReset++
	if p.sinceReset >= p.params.ResetInterval {
		for i := range p.integrators {
			p.integrators[i].Reset()
		}
		p.sinceReset = 0
	}

	return row
}

// Stats exposes the running message counters.
func (p *Pipeline) Stats() StatsSnapshot {
	return p.stats.Snapshot()
}

// NextSequence returns the sequence number the next accepted sample
// will be assigned.
func (p *Pipeline) NextSequence() int64 {
	return p.nextSeq
}
