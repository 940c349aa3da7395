// Package vibration implements the per-sensor signal pipeline: raw
// triaxial acceleration is denoised by a two-pole filter cascade,
// double-integrated into velocity and displacement, reduced to rolling
// RMS amplitudes, and assembled into rows for batched persistence.
//
// All per-axis state lives on a Pipeline value so multiple sensors can
// run side by side without cross-contamination. A Pipeline is not safe
// for concurrent use: the stream reader is its only caller.
package vibration

// RawReading is one accepted sensor message: a triaxial acceleration
// sample plus the sensor's own vibration velocity triple. The vibration
// triple already arrives in semantic order (horizontal, vertical,
// axial); acceleration arrives in physical axis order (x, y, z).
type RawReading struct {
	Accel [3]float64
	Vib   [3]float64
}

// Row is the externally visible unit written to the samples table and
// read by the dashboard. It is immutable once assembled; ownership
// passes to the persister's pending batch until flushed.
type Row struct {
	Sequence int64

	// Raw acceleration, physical axis order.
	X, Y, Z float64

	// Raw vibration velocity, semantic order.
	HVib, VVib, AVib float64

	// Windowed RMS velocity, semantic order.
	HVel, VVel, AVel float64

	// Windowed RMS displacement, semantic order.
	HDisp, VDisp, ADisp float64

	SensorID int
}
