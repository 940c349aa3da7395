package vibration

// biasFilter is the per-axis two-pole cascade: a single-pole high-pass
// strips the DC/gravity component, then a single-pole low-pass knocks
// down the remaining high-frequency noise. The output is a pure
// function of (raw, prevRaw, prevHPF, prevLPF) and the coefficients,
// so identical inputs and state reproduce identical bits.
type biasFilter struct {
	alpha float64
	beta  float64

	prevRaw float64
	prevHPF float64
	prevLPF float64
}

// Apply runs one raw acceleration sample through the cascade and
// advances the state. State updates unconditionally on every call.
func (f *biasFilter) Apply(raw float64) float64 {
	hpf := f.alpha * (f.prevHPF + raw - f.prevRaw)
	lpf := f.beta*hpf + (1-f.beta)*f.prevLPF
	f.prevRaw = raw
	f.prevHPF = hpf
	f.prevLPF = lpf
	return lpf
}
