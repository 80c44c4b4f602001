// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

package raster

import (
	"math"

	"github.com/mathertel/gfxDraw/point"
	"github.com/mathertel/gfxDraw/trig"
)

// DrawArc converts an SVG endpoint-form elliptic arc to centre form
// following the W3C algorithm, then either dispatches to CircleSegment
// (when rx == ry) or samples the ellipse by integer degree. phi is the
// ellipse rotation in degrees. largeArc and sweep are the SVG flags.
//
// The start and end lattice points are always emitted exactly, regardless
// of where angular sampling would otherwise place them.
func DrawArc(x0, y0, rx, ry, phi int16, largeArc, sweep bool, x1, y1 int16, sink point.Sink) {
	if x0 == x1 && y0 == y1 {
		sink(point.New(x0, y0))
		return
	}

	if rx == 0 || ry == 0 {
		// Degenerate ellipse: treat as a straight chord.
		DrawLine(x0, y0, x1, y1, sink)
		return
	}

	phiRad := float64(phi) * math.Pi / 180
	sinPhi, cosPhi := math.Sin(phiRad), math.Cos(phiRad)

	// Step 1: compute (x1', y1'), the midpoint vector in the ellipse's
	// rotated frame.
	dx2 := float64(x0-x1) / 2
	dy2 := float64(y0-y1) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	rxf, ryf := math.Abs(float64(rx)), math.Abs(float64(ry))

	// Step 2: scale up the radii if the chord cannot otherwise fit.
	lambda := (x1p*x1p)/(rxf*rxf) + (y1p*y1p)/(ryf*ryf)
	if lambda > 1 {
		scale := math.Sqrt(lambda)
		rxf *= scale
		ryf *= scale
	}

	// Step 3: compute (cx', cy'), the ellipse centre in the rotated frame.
	num := rxf*rxf*ryf*ryf - rxf*rxf*y1p*y1p - ryf*ryf*x1p*x1p
	den := rxf*rxf*y1p*y1p + ryf*ryf*x1p*x1p
	var coef float64
	if den != 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * (rxf * y1p / ryf)
	cyp := -coef * (ryf * x1p / rxf)

	// Step 4: transform the centre back to user space.
	mx := float64(x0+x1) / 2
	my := float64(y0+y1) / 2
	cx := cosPhi*cxp - sinPhi*cyp + mx
	cy := sinPhi*cxp + cosPhi*cyp + my

	if int16(math.Round(rxf)) == int16(math.Round(ryf)) {
		r := int16(math.Round(rxf))
		CircleSegment(int16(math.Round(cx)), int16(math.Round(cy)), r, point.New(x0, y0), point.New(x1, y1), largeArc, sweep, sink)
		return
	}

	sampleEllipse(cx, cy, rxf, ryf, phiRad, x0, y0, x1, y1, sweep, sink)
}

// sampleEllipse walks the rotated ellipse by integer degree using the
// fixed-point trig table, stepping -1 degree when sweep (clockwise) is
// set and +1 degree otherwise, and pushes every candidate through a
// smoothing window. Start and end points are forced exactly.
func sampleEllipse(cx, cy, rx, ry, phiRad float64, x0, y0, x1, y1 int16, sweep bool, sink point.Sink) {
	win := NewWindow(sink)
	defer win.Flush()

	sinPhi, cosPhi := math.Sin(phiRad), math.Cos(phiRad)

	ellipsePoint := func(theta int32) point.Point {
		ct := float64(trig.Cos256(theta)) / 256
		st := float64(trig.Sin256(theta)) / 256
		ex := rx * ct
		ey := ry * st
		x := cx + ex*cosPhi - ey*sinPhi
		y := cy + ex*sinPhi + ey*cosPhi
		return point.New(int16(math.Round(x)), int16(math.Round(y)))
	}

	angleOf := func(px, py int16) int32 {
		// Angle in the ellipse's own unrotated frame.
		dx := float64(px) - cx
		dy := float64(py) - cy
		ux := dx*cosPhi + dy*sinPhi
		uy := -dx*sinPhi + dy*cosPhi
		return trig.VectorAngle(int32(math.Round(ux/rx*1000)), int32(math.Round(uy/ry*1000)))
	}

	startAngle := angleOf(x0, y0)
	endAngle := angleOf(x1, y1)

	step := int32(1)
	if sweep {
		step = -1
	}

	win.Propose(point.New(x0, y0))

	theta := startAngle
	for i := 0; i < 360; i++ {
		theta += step
		if theta >= 360 {
			theta -= 360
		}
		if theta < 0 {
			theta += 360
		}
		if theta == endAngle {
			break
		}
		win.Propose(ellipsePoint(theta))
	}

	win.Propose(point.New(x1, y1))
}

