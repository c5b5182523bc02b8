package path

import (
	"math"
	"testing"
)

func TestFlatten_PreservesEndpoints(t *testing.T) {
	nodes := []Node{
		MoveTo{Point: Point{X: 10, Y: 10}},
		CurveTo{
			Control1: Point{X: 20, Y: 40},
			Control2: Point{X: 60, Y: 40},
			Point:    Point{X: 70, Y: 10},
		},
	}

	out := Flatten(nodes, Tolerance)
	if len(out) < 3 {
		t.Fatalf("expected the curve to subdivide, got %d nodes", len(out))
	}
	if _, ok := out[0].(MoveTo); !ok {
		t.Fatalf("out[0] = %T, want MoveTo", out[0])
	}
	last, ok := out[len(out)-1].(LineTo)
	if !ok {
		t.Fatalf("out[last] = %T, want LineTo", out[len(out)-1])
	}
	if last.Point != (Point{X: 70, Y: 10}) {
		t.Errorf("final point = %v, want curve endpoint (70,10)", last.Point)
	}
	for _, n := range out {
		if _, ok := n.(CurveTo); ok {
			t.Error("CurveTo survived flattening")
		}
	}
}

func TestFlatten_WithinTolerance(t *testing.T) {
	p0 := Point{X: 0, Y: 0}
	p1 := Point{X: 0, Y: 100}
	p2 := Point{X: 100, Y: 100}
	p3 := Point{X: 100, Y: 0}
	nodes := []Node{MoveTo{Point: p0}, CurveTo{Control1: p1, Control2: p2, Point: p3}}

	out := Flatten(nodes, Tolerance)

	// Every polyline vertex must lie on the curve to within a loose bound
	// derived from the tolerance. Sample the curve densely and check each
	// vertex's distance to the nearest sample.
	var curve []Point
	for i := 0; i <= 5000; i++ {
		curve = append(curve, cubicAt(p0, p1, p2, p3, float64(i)/5000))
	}
	for _, n := range out {
		lt, ok := n.(LineTo)
		if !ok {
			continue
		}
		best := math.Inf(1)
		for _, c := range curve {
			if d := lt.Point.Distance(c); d < best {
				best = d
			}
		}
		if best > Tolerance {
			t.Errorf("vertex %v is %.3f from the curve, want <= %.2f", lt.Point, best, Tolerance)
		}
	}
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	a := p0.Lerp(p1, t)
	b := p1.Lerp(p2, t)
	c := p2.Lerp(p3, t)
	d := a.Lerp(b, t)
	e := b.Lerp(c, t)
	return d.Lerp(e, t)
}

func TestFlatten_Quadratic(t *testing.T) {
	nodes := []Node{
		MoveTo{Point: Point{X: 0, Y: 0}},
		QuadTo{
			Control: Point{X: 50, Y: 80},
			Point:   Point{X: 100, Y: 0},
		},
	}

	out := Flatten(nodes, Tolerance)
	if len(out) < 3 {
		t.Fatalf("expected the quadratic to subdivide, got %d nodes", len(out))
	}
	last, ok := out[len(out)-1].(LineTo)
	if !ok {
		t.Fatalf("out[last] = %T, want LineTo", out[len(out)-1])
	}
	if last.Point != (Point{X: 100, Y: 0}) {
		t.Errorf("final point = %v, want curve endpoint (100,0)", last.Point)
	}
	for _, n := range out {
		if _, ok := n.(QuadTo); ok {
			t.Error("QuadTo survived flattening")
		}
	}

	// Split points lie on the curve; spot-check the midpoint, which for
	// this symmetric curve is (50, 40).
	var closest float64 = 1e9
	for _, n := range out {
		if lt, ok := n.(LineTo); ok {
			if d := lt.Point.Distance(Point{X: 50, Y: 40}); d < closest {
				closest = d
			}
		}
	}
	if closest > 2 {
		t.Errorf("no vertex near the curve midpoint (50,40); closest is %.2f away", closest)
	}
}

func TestFlatten_PassThrough(t *testing.T) {
	nodes := []Node{
		MoveTo{Point: Point{X: 1, Y: 1}},
		LineTo{Point: Point{X: 2, Y: 2}},
		Close{},
	}
	out := Flatten(nodes, Tolerance)
	if len(out) != 3 {
		t.Errorf("len = %d, want 3 (no curves to flatten)", len(out))
	}
}

func TestSubpaths(t *testing.T) {
	tests := []struct {
		name    string
		nodes   []Node
		count   int
		closed  []bool
		lengths []int
	}{
		{
			name: "open polyline",
			nodes: []Node{
				MoveTo{Point: Point{X: 0, Y: 0}},
				LineTo{Point: Point{X: 1, Y: 0}},
				LineTo{Point: Point{X: 1, Y: 1}},
			},
			count: 1, closed: []bool{false}, lengths: []int{3},
		},
		{
			name: "closed with trailing implicit move",
			nodes: []Node{
				MoveTo{Point: Point{X: 0, Y: 0}},
				LineTo{Point: Point{X: 1, Y: 0}},
				LineTo{Point: Point{X: 1, Y: 1}},
				Close{},
				MoveTo{Point: Point{X: 0, Y: 0}},
			},
			count: 1, closed: []bool{true}, lengths: []int{3},
		},
		{
			name: "two subpaths",
			nodes: []Node{
				MoveTo{Point: Point{X: 0, Y: 0}},
				LineTo{Point: Point{X: 1, Y: 0}},
				MoveTo{Point: Point{X: 5, Y: 5}},
				LineTo{Point: Point{X: 6, Y: 5}},
			},
			count: 2, closed: []bool{false, false}, lengths: []int{2, 2},
		},
		{
			name: "duplicate vertices collapse",
			nodes: []Node{
				MoveTo{Point: Point{X: 0, Y: 0}},
				LineTo{Point: Point{X: 0, Y: 0}},
				LineTo{Point: Point{X: 1, Y: 0}},
			},
			count: 1, closed: []bool{false}, lengths: []int{2},
		},
		{
			name: "degenerate closed point",
			nodes: []Node{
				MoveTo{Point: Point{X: 10, Y: 10}},
				Close{},
			},
			count: 1, closed: []bool{true}, lengths: []int{1},
		},
		{
			name: "closing vertex dropped",
			nodes: []Node{
				MoveTo{Point: Point{X: 0, Y: 0}},
				LineTo{Point: Point{X: 1, Y: 0}},
				LineTo{Point: Point{X: 1, Y: 1}},
				LineTo{Point: Point{X: 0, Y: 0}},
				Close{},
			},
			count: 1, closed: []bool{true}, lengths: []int{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subs := Subpaths(tt.nodes)
			if len(subs) != tt.count {
				t.Fatalf("len(subpaths) = %d, want %d", len(subs), tt.count)
			}
			for i, sp := range subs {
				if sp.Closed != tt.closed[i] {
					t.Errorf("subpath %d closed = %v, want %v", i, sp.Closed, tt.closed[i])
				}
				if len(sp.Points) != tt.lengths[i] {
					t.Errorf("subpath %d has %d points, want %d", i, len(sp.Points), tt.lengths[i])
				}
			}
		})
	}
}
