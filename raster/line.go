// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

package raster

import "github.com/mathertel/gfxDraw/point"

// DrawLine emits every lattice point on the straight segment from
// (x0, y0) to (x1, y1) using Bresenham's integer algorithm, directly to
// sink (no smoothing window). Consecutive points differ by at most one
// step on each axis, so a diagonal line advances diagonally where both
// coordinates change. Both endpoints are emitted; horizontal and vertical
// lines use a tight specialised loop, diagonal lines use the classic
// err accumulator updated by 2*dx and 2*dy.
//
// The emitted sequence has exactly max(|dx|, |dy|) + 1 points, in
// traversal order from start to end.
func DrawLine(x0, y0, x1, y1 int16, sink point.Sink) {
	if x0 == x1 {
		step := int16(1)
		if y1 < y0 {
			step = -1
		}
		for y := y0; ; y += step {
			sink(point.New(x0, y))
			if y == y1 {
				break
			}
		}
		return
	}

	if y0 == y1 {
		step := int16(1)
		if x1 < x0 {
			step = -1
		}
		for x := x0; ; x += step {
			sink(point.New(x, y0))
			if x == x1 {
				break
			}
		}
		return
	}

	dx := abs16(x1 - x0)
	dy := abs16(y1 - y0)
	sx := int16(1)
	if x0 > x1 {
		sx = -1
	}
	sy := int16(1)
	if y0 > y1 {
		sy = -1
	}

	err := dx - dy
	for {
		sink(point.New(x0, y0))
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
