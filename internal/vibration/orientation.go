package vibration

// Physical axis indices into raw sensor triples.
const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2
)

// AxisMap assigns each semantic orientation the physical axis index
// that measures it. The mapping is a mounting convention: remounting a
// sensor changes the table, never the numeric pipeline.
type AxisMap struct {
	Horizontal int
	Vertical   int
	Axial      int
}

// DefaultAxisMap reflects the standard mounting: z measures horizontal,
// y vertical, x axial.
var DefaultAxisMap = AxisMap{Horizontal: AxisZ, Vertical: AxisY, Axial: AxisX}

// Remap reorders a per-axis triple into (horizontal, vertical, axial).
func (m AxisMap) Remap(v [3]float64) (horizontal, vertical, axial float64) {
	return v[m.Horizontal], v[m.Vertical], v[m.Axial]
}
