package z2d

import (
	"math"
	"testing"
)

func TestPoint_Ops(t *testing.T) {
	p := Pt(3, 4)

	if got := p.Add(Pt(1, 1)); got != Pt(4, 5) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Sub(Pt(1, 1)); got != Pt(2, 3) {
		t.Errorf("Sub = %v", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v", got)
	}
	if got := p.Distance(Pt(0, 0)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPoint_Lerp(t *testing.T) {
	got := Pt(0, 0).Lerp(Pt(10, 20), 0.5)
	if math.Abs(got.X-5) > 1e-12 || math.Abs(got.Y-10) > 1e-12 {
		t.Errorf("Lerp = %v, want (5,10)", got)
	}
	if got := Pt(2, 2).Lerp(Pt(4, 4), 0); got != Pt(2, 2) {
		t.Errorf("Lerp(t=0) = %v, want start", got)
	}
}
