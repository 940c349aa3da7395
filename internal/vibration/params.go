package vibration

import "fmt"

// Defaults match the deployed sensor calibration. DT is a fixed
// constant, not a measured inter-sample interval: downstream RMS
// magnitudes are calibrated against it, so substituting a wall-clock
// delta would silently rescale every derived value.
const (
	DefaultHPFAlpha      = 0.84
	DefaultLPFBeta       = 0.32
	DefaultDT            = 0.015
	DefaultWindowSize    = 10
	DefaultResetInterval = 20
	DefaultAccelLimit    = 49050
	DefaultBatchSize     = 10
)

// Params holds the numeric tuning for one sensor pipeline.
type Params struct {
	// HPFAlpha is the single-pole high-pass coefficient that strips
	// the DC/gravity component from raw acceleration.
	HPFAlpha float64

	// LPFBeta is the single-pole low-pass coefficient that blends the
	// high-pass output with its previous value.
	LPFBeta float64

	// DT is the fixed sample interval in seconds used for both
	// integration passes.
	DT float64

	// WindowSize is the RMS window capacity, shared by all six
	// velocity and displacement windows for the process lifetime.
	WindowSize int

	// ResetInterval is the accepted-sample count after which the
	// integrator drift state is zeroed.
	ResetInterval int

	// AccelLimit is the physical outlier bound: any axis whose
	// absolute acceleration exceeds it rejects the whole sample.
	AccelLimit float64

	// BatchSize is the pending-row count that triggers a flush.
	BatchSize int
}

// DefaultParams returns the calibrated production tuning.
func DefaultParams() Params {
	return Params{
		HPFAlpha:      DefaultHPFAlpha,
		LPFBeta:       DefaultLPFBeta,
		DT:            DefaultDT,
		WindowSize:    DefaultWindowSize,
		ResetInterval: DefaultResetInterval,
		AccelLimit:    DefaultAccelLimit,
		BatchSize:     DefaultBatchSize,
	}
}

// Validate checks that the tuning values can drive a pipeline.
func (p Params) Validate() error {
	if p.DT <= 0 {
		return fmt.Errorf("dt must be positive, got %v", p.DT)
	}
	if p.WindowSize <= 0 {
		return fmt.Errorf("window size must be positive, got %d", p.WindowSize)
	}
	if p.ResetInterval <= 0 {
		return fmt.Errorf("reset interval must be positive, got %d", p.ResetInterval)
	}
	if p.AccelLimit <= 0 {
		return fmt.Errorf("acceleration limit must be positive, got %v", p.AccelLimit)
	}
	if p.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", p.BatchSize)
	}
	return nil
}
