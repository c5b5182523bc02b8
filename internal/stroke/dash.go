package stroke

// ApplyDash splits a polyline into the "on" runs of an alternating
// dash/gap pattern. The pattern must have even length with at least one
// positive entry; offset shifts the starting position within the pattern
// cycle. A closed polyline is unrolled by appending its first point, and
// all emitted runs are open (they are capped like any open subpath).
func ApplyDash(points []Point, closed bool, pattern []float64, offset float64) [][]Point {
	pts := dedupe(points)
	if len(pts) < 2 || len(pattern) == 0 {
		return nil
	}
	if closed {
		pts = append(pts, pts[0])
	}

	var patternLen float64
	for _, l := range pattern {
		patternLen += l
	}
	if patternLen <= 0 {
		return nil
	}

	// Position the pattern cursor at the offset.
	for offset < 0 {
		offset += patternLen
	}
	for offset >= patternLen {
		offset -= patternLen
	}
	idx := 0
	remaining := pattern[0]
	for offset > 0 {
		if offset < remaining {
			remaining -= offset
			break
		}
		offset -= remaining
		idx = (idx + 1) % len(pattern)
		remaining = pattern[idx]
	}

	var runs [][]Point
	var run []Point
	on := idx%2 == 0

	if on {
		run = append(run, pts[0])
	}

	for i := 1; i < len(pts); i++ {
		seg := pts[i].Sub(pts[i-1])
		segLen := seg.Length()
		pos := 0.0
		for segLen-pos > remaining {
			pos += remaining
			split := pts[i-1].Add(seg.Scale(pos / segLen))
			if on {
				run = append(run, split)
				if len(run) > 1 {
					runs = append(runs, run)
				}
				run = nil
			} else {
				run = []Point{split}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remaining = pattern[idx]
			// Zero-length pattern entries toggle state without advancing.
		}
		remaining -= segLen - pos
		if on {
			run = append(run, pts[i])
		}
	}
	if on && len(run) > 1 {
		runs = append(runs, run)
	}
	return runs
}
