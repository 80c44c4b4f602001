// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

package raster

import "github.com/mathertel/gfxDraw/point"

// CircleQuadrant walks one quadrant of a radius-r circle centred at the
// origin using the mid-point (Bresenham) circle algorithm, emitting
// points relative to centre (cx, cy). Quadrant q in {0,1,2,3} selects
// which eighth-pair is emitted and in which order: 0 the lower-right
// sweep, 1 the lower-left, 2 the upper-left, 3 the upper-right, clockwise
// when the y-axis points down. Pixels within a quadrant are emitted in
// order of increasing angle.
func CircleQuadrant(cx, cy, r int16, q int, sink point.Sink) {
	if r == 0 {
		sink(point.New(cx, cy))
		return
	}

	// Canonical quadrant: offsets (x, y) with x, y >= 0, swept in
	// increasing-angle order from (r, 0) to (0, r) — the lower-right
	// quadrant (q == 0) in screen coordinates where y grows downward.
	// The other three quadrants are obtained by mirroring this list and,
	// where mirroring reverses the angular direction, reading it back to
	// front.
	canon := canonicalQuadrant(r)

	var offsets []point.Point
	switch q {
	case 0:
		offsets = canon
	case 1: // lower-left: mirror canon across the y-axis, reverse order
		offsets = make([]point.Point, len(canon))
		for i, p := range canon {
			offsets[len(canon)-1-i] = point.New(-p.X, p.Y)
		}
	case 2: // upper-left: negate both axes, keep order
		offsets = make([]point.Point, len(canon))
		for i, p := range canon {
			offsets[i] = point.New(-p.X, -p.Y)
		}
	default: // upper-right (q == 3): mirror across the x-axis, reverse order
		offsets = make([]point.Point, len(canon))
		for i, p := range canon {
			offsets[len(canon)-1-i] = point.New(p.X, -p.Y)
		}
	}

	for _, p := range offsets {
		sink(point.New(cx+p.X, cy+p.Y))
	}
}

// canonicalQuadrant returns the (x, y) offsets, x, y >= 0, of a
// radius-r circle swept in increasing-angle order from (r, 0) to (0, r)
// using the mid-point (Bresenham) circle algorithm (err = 2 - 2r).
func canonicalQuadrant(r int16) []point.Point {
	a := int16(0)
	b := r
	err := int32(2) - int32(2)*int32(r)

	var near, far []point.Point // near the x-axis, and near the y-axis
	for a <= b {
		near = append(near, point.New(b, a))
		if a != b {
			far = append(far, point.New(a, b))
		}

		if err <= 0 {
			a++
			err += int32(2)*int32(a) + 1
		}
		if err > 0 {
			b--
			err -= int32(2)*int32(b) + 1
		}
	}

	out := make([]point.Point, 0, len(near)+len(far))
	out = append(out, near...)
	for i := len(far) - 1; i >= 0; i-- {
		out = append(out, far[i])
	}
	return out
}

// fullCirclePixels returns every lattice pixel of a radius-r circle
// centred at (cx, cy), in clockwise order starting from (cx+r, cy).
func fullCirclePixels(cx, cy, r int16) []point.Point {
	var all []point.Point
	collect := func(p point.Point) { all = append(all, p) }
	for q := 0; q < 4; q++ {
		CircleQuadrant(cx, cy, r, q, collect)
	}
	return all
}

// nearestPixelIndex returns the index into pixels of the point closest
// to p by squared distance. It is used to snap an arc endpoint that does
// not land exactly on the rounded lattice circle to the rasterized pixel
// nearest it.
func nearestPixelIndex(pixels []point.Point, p point.Point) int {
	best := 0
	var bestDist int64
	for i, q := range pixels {
		dx := int64(q.X - p.X)
		dy := int64(q.Y - p.Y)
		d := dx*dx + dy*dy
		if i == 0 || d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// CircleSegment draws a circular arc of radius r centred at (cx, cy)
// from pStart to pEnd. sweep selects clockwise (true) or
// counter-clockwise (false) traversal; largeArc requests the full circle
// when start and end coincide. pStart and pEnd are forced into the
// output exactly, even when they do not lie on the rounded lattice
// circle (cx, cy, r) themselves — they are snapped to their nearest
// rasterized pixel only to find where the swept range begins and ends,
// the same guarantee draw_arc's ellipse path gives via sampleEllipse.
// Counter-clockwise arcs are computed by mirroring vertically, running
// the clockwise computation, then mirroring the result back before
// emission, so a single quadrant walker serves both directions.
func CircleSegment(cx, cy, r int16, pStart, pEnd point.Point, largeArc, sweep bool, sink point.Sink) {
	if r == 0 {
		sink(point.New(cx, cy))
		return
	}

	mirror := func(p point.Point) point.Point {
		if sweep {
			return p
		}
		return point.New(p.X, 2*cy-p.Y)
	}

	start := mirror(pStart)
	end := mirror(pEnd)

	fullCircle := start == end && largeArc

	all := fullCirclePixels(cx, cy, r)
	si := nearestPixelIndex(all, start)
	ei := nearestPixelIndex(all, end)

	win := NewWindow(func(p point.Point) {
		sink(mirror(p))
	})
	defer win.Flush()

	win.Propose(start)

	n := len(all)
	if fullCircle {
		for k := 1; k < n; k++ {
			win.Propose(all[(si+k)%n])
		}
	} else {
		for k := si; k != ei; k = (k + 1) % n {
			if k != si {
				win.Propose(all[k])
			}
		}
		if ei != si {
			win.Propose(all[ei])
		}
	}

	win.Propose(end)
}
