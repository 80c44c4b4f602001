// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

package raster

import "github.com/mathertel/gfxDraw/point"

// fixedScale is the fixed-point factor used by the de Casteljau
// evaluation below; it is disjoint from the 256-scaled trig convention
// used by the arc sampler (see §9 Numeric discipline).
const fixedScale = 1000

// DrawCubic samples a cubic Bézier curve with control points p0..p3
// using de Casteljau evaluation in 1000-scaled fixed point, pushing each
// candidate pixel through a fresh smoothing window before delivering it
// to sink. Endpoints are always emitted exactly.
//
// The step count is heuristic: roughly one sample per expected pixel of
// arc length, estimated from the Manhattan length of the control
// polygon, so steps = (sum of |dx|,|dy| along p0-p1-p2-p3) / 2.
func DrawCubic(p0x, p0y, p1x, p1y, p2x, p2y, p3x, p3y int16, sink point.Sink) {
	win := NewWindow(sink)
	defer win.Flush()

	steps := cubicSteps(p0x, p0y, p1x, p1y, p2x, p2y, p3x, p3y)

	win.Propose(point.New(p0x, p0y))
	for n := int32(1); n < steps; n++ {
		t := n * fixedScale / steps
		x, y := evalCubic1000(p0x, p0y, p1x, p1y, p2x, p2y, p3x, p3y, t)
		win.Propose(point.New(x, y))
	}
	win.Propose(point.New(p3x, p3y))
}

func cubicSteps(p0x, p0y, p1x, p1y, p2x, p2y, p3x, p3y int16) int32 {
	sum := int32(abs16(p0x-p1x)) + int32(abs16(p0y-p1y)) +
		int32(abs16(p1x-p2x)) + int32(abs16(p1y-p2y)) +
		int32(abs16(p2x-p3x)) + int32(abs16(p2y-p3y))
	steps := sum / 2
	if steps < 1 {
		steps = 1
	}
	return steps
}

// evalCubic1000 evaluates the cubic at parameter t (scaled by 1000)
// using three successive fixed-point linear interpolations (de
// Casteljau). Each interpolation's integer division truncates toward
// zero; there is no separate rounding step.
func evalCubic1000(p0x, p0y, p1x, p1y, p2x, p2y, p3x, p3y int16, t int32) (int16, int16) {
	lerp := func(ax, ay, bx, by int32) (int32, int32) {
		x := ax + (bx-ax)*t/fixedScale
		y := ay + (by-ay)*t/fixedScale
		return x, y
	}

	q0x, q0y := lerp(int32(p0x), int32(p0y), int32(p1x), int32(p1y))
	q1x, q1y := lerp(int32(p1x), int32(p1y), int32(p2x), int32(p2y))
	q2x, q2y := lerp(int32(p2x), int32(p2y), int32(p3x), int32(p3y))

	r0x, r0y := lerp(q0x, q0y, q1x, q1y)
	r1x, r1y := lerp(q1x, q1y, q2x, q2y)

	sx, sy := lerp(r0x, r0y, r1x, r1y)
	return int16(sx), int16(sy)
}
