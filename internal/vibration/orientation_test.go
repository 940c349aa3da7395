package vibration

import "testing"

func TestDefaultAxisMapRemap(t *testing.T) {
	h, v, a := DefaultAxisMap.Remap([3]float64{10, 20, 30})
	if h != 30 || v != 20 || a != 10 {
		t.Errorf("Remap = (%v, %v, %v), want z→horizontal=30 y→vertical=20 x→axial=10", h, v, a)
	}
}

func TestCustomAxisMap(t *testing.T) {
	// A remounted sensor swaps the table, not the pipeline.
	m := AxisMap{Horizontal: AxisX, Vertical: AxisZ, Axial: AxisY}
	h, v, a := m.Remap([3]float64{10, 20, 30})
	if h != 10 || v != 30 || a != 20 {
		t.Errorf("Remap = (%v, %v, %v), want (10, 30, 20)", h, v, a)
	}
}
