package vibration

import "testing"

func TestIntegratorStep(t *testing.T) {
	g := integrator{dt: 0.015}

	// First sample: trapezoid spans the implicit zero previous sample.
	vel, disp := g.Step(2)
	wantVel := ((2 + 0.0) / 2) * 0.015
	wantDisp := ((wantVel + 0.0) / 2) * 0.015
	if vel != wantVel || disp != wantDisp {
		t.Fatalf("Step(2) = (%v, %v), want (%v, %v)", vel, disp, wantVel, wantDisp)
	}

	// Second sample: both trapezoids use the previous sample's values.
	vel2, disp2 := g.Step(4)
	wantVel2 := wantVel + ((4+2.0)/2)*0.015
	wantDisp2 := wantDisp + ((wantVel2+wantVel)/2)*0.015
	if vel2 != wantVel2 || disp2 != wantDisp2 {
		t.Fatalf("Step(4) = (%v, %v), want (%v, %v)", vel2, disp2, wantVel2, wantDisp2)
	}
}

func TestIntegratorReset(t *testing.T) {
	g := integrator{dt: 0.015}
	for i := 0; i < 5; i++ {
		g.Step(1.5)
	}

	g.Reset()
	if g.velocity != 0 || g.displacement != 0 {
		t.Fatalf("after Reset: velocity=%v displacement=%v, want both zero", g.velocity, g.displacement)
	}

	// Reset is a hard zero of the accumulators only; the trapezoid
	// history carries across the discontinuity.
	if g.prevAccel == 0 || g.prevVelocity == 0 {
		t.Errorf("Reset must not clear previous-sample state: prevAccel=%v prevVelocity=%v",
			g.prevAccel, g.prevVelocity)
	}
}

func TestIntegratorZeroInputStaysZero(t *testing.T) {
	g := integrator{dt: 0.015}
	for i := 0; i < 100; i++ {
		vel, disp := g.Step(0)
		if vel != 0 || disp != 0 {
			t.Fatalf("sample %d: zero input produced velocity=%v displacement=%v", i, vel, disp)
		}
	}
}
