package raster

import "testing"

func collect(f *Filler, contours [][]Point, rule FillRule, antialias bool) map[[2]int]uint8 {
	got := map[[2]int]uint8{}
	f.Fill(contours, rule, antialias, func(x, y int, coverage uint8) {
		got[[2]int{x, y}] = coverage
	})
	return got
}

func TestFill_SquareCenters(t *testing.T) {
	// A 4x4 square aligned to pixel edges covers exactly the pixels
	// whose centers fall inside, under single-sample filling.
	f := NewFiller(10, 10)
	square := [][]Point{{{X: 2, Y: 2}, {X: 6, Y: 2}, {X: 6, Y: 6}, {X: 2, Y: 6}}}

	got := collect(f, square, FillRuleNonZero, false)
	if len(got) != 16 {
		t.Fatalf("covered %d pixels, want 16", len(got))
	}
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			if got[[2]int{x, y}] != 255 {
				t.Errorf("pixel (%d,%d) coverage = %d, want 255", x, y, got[[2]int{x, y}])
			}
		}
	}
}

func TestFill_AntialiasedEdge(t *testing.T) {
	// A square whose right edge splits pixel 5 in half: the boundary
	// column gets partial coverage, interior pixels full coverage.
	f := NewFiller(10, 10)
	square := [][]Point{{{X: 2, Y: 2}, {X: 5.5, Y: 2}, {X: 5.5, Y: 6}, {X: 2, Y: 6}}}

	got := collect(f, square, FillRuleNonZero, true)
	if cov := got[[2]int{3, 3}]; cov != 255 {
		t.Errorf("interior coverage = %d, want 255", cov)
	}
	edge := got[[2]int{5, 3}]
	if edge < 100 || edge > 155 {
		t.Errorf("edge coverage = %d, want about half", edge)
	}
	if _, ok := got[[2]int{6, 3}]; ok {
		t.Error("pixel right of the square reported coverage")
	}
}

func TestFill_ClipsToSurface(t *testing.T) {
	f := NewFiller(4, 4)
	big := [][]Point{{{X: -10, Y: -10}, {X: 20, Y: -10}, {X: 20, Y: 20}, {X: -10, Y: 20}}}

	got := collect(f, big, FillRuleNonZero, false)
	if len(got) != 16 {
		t.Errorf("covered %d pixels, want the full 4x4 surface", len(got))
	}
	for pos := range got {
		if pos[0] < 0 || pos[0] >= 4 || pos[1] < 0 || pos[1] >= 4 {
			t.Errorf("coverage reported outside the surface at %v", pos)
		}
	}
}

func TestFill_FillRules(t *testing.T) {
	// Two concentric squares wound the same way: even-odd leaves the
	// middle empty, non-zero fills it.
	contours := [][]Point{
		{{X: 0, Y: 0}, {X: 9, Y: 0}, {X: 9, Y: 9}, {X: 0, Y: 9}},
		{{X: 3, Y: 3}, {X: 6, Y: 3}, {X: 6, Y: 6}, {X: 3, Y: 6}},
	}
	f := NewFiller(10, 10)

	evenOdd := collect(f, contours, FillRuleEvenOdd, false)
	if _, ok := evenOdd[[2]int{4, 4}]; ok {
		t.Error("even-odd filled the inner square")
	}
	if evenOdd[[2]int{1, 1}] != 255 {
		t.Error("even-odd missed the outer band")
	}

	nonZero := collect(f, contours, FillRuleNonZero, false)
	if nonZero[[2]int{4, 4}] != 255 {
		t.Error("non-zero left the inner square empty")
	}
}

func TestFill_OpposingWindings(t *testing.T) {
	// Concentric squares with opposite windings cancel under non-zero,
	// producing a ring. This is the configuration stroke outlines use.
	contours := [][]Point{
		{{X: 0, Y: 0}, {X: 9, Y: 0}, {X: 9, Y: 9}, {X: 0, Y: 9}},
		{{X: 3, Y: 3}, {X: 3, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 3}},
	}
	f := NewFiller(10, 10)

	got := collect(f, contours, FillRuleNonZero, false)
	if _, ok := got[[2]int{4, 4}]; ok {
		t.Error("hole was filled despite opposing windings")
	}
	if got[[2]int{1, 1}] != 255 {
		t.Error("ring band missing")
	}
}

func TestFill_SharedVertexNotDoubleCounted(t *testing.T) {
	// Two triangles sharing a vertex: the half-open crossing convention
	// must not double-count rays passing exactly through it. The shared
	// vertex sits on the y = 5.5 row of pixel-center samples.
	contours := [][]Point{
		{{X: 1, Y: 1}, {X: 5, Y: 5.5}, {X: 1, Y: 9}},
		{{X: 9, Y: 1}, {X: 5, Y: 5.5}, {X: 9, Y: 9}},
	}
	f := NewFiller(12, 12)

	got := collect(f, contours, FillRuleEvenOdd, false)
	if got[[2]int{2, 5}] != 255 {
		t.Error("left triangle interior missing")
	}
	if got[[2]int{8, 5}] != 255 {
		t.Error("right triangle interior missing")
	}
}

func TestFill_Degenerate(t *testing.T) {
	f := NewFiller(10, 10)
	if got := collect(f, nil, FillRuleNonZero, true); len(got) != 0 {
		t.Errorf("empty contour set covered %d pixels", len(got))
	}
	line := [][]Point{{{X: 1, Y: 1}, {X: 5, Y: 1}}}
	if got := collect(f, line, FillRuleNonZero, true); len(got) != 0 {
		t.Errorf("two-point contour covered %d pixels", len(got))
	}
}
