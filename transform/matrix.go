// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

// Package transform applies affine transforms to a parsed segment.List:
// translation, scaling, and rotation, all carried out in the same
// 1000-scaled fixed-point arithmetic the rest of the rasterizer uses.
package transform

import (
	"github.com/mathertel/gfxDraw/segment"
	"github.com/mathertel/gfxDraw/trig"
)

// Matrix is a 3x3 affine transform stored 1000-scaled: applying it to a
// point (x, y) yields ((a*x + b*y + c) / 1000, (d*x + e*y + f) / 1000),
// rounded half away from zero. The bottom row is always (0, 0, 1000) and
// is not stored.
type Matrix struct {
	A, B, C int32
	D, E, F int32
}

// Identity is the no-op transform.
var Identity = Matrix{A: 1000, E: 1000}

// Apply transforms (x, y) and returns the rounded result.
func (m Matrix) Apply(x, y int16) (int16, int16) {
	nx := round1000(m.A*int32(x) + m.B*int32(y) + m.C)
	ny := round1000(m.D*int32(x) + m.E*int32(y) + m.F)
	return clamp16(nx), clamp16(ny)
}

func round1000(v int32) int32 {
	if v >= 0 {
		return (v + 500) / 1000
	}
	return -((-v + 500) / 1000)
}

func clamp16(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

// Mul returns m applied after n: (m.Mul(n)).Apply(p) == m.Apply(n.Apply(p)).
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: round1000(m.A*n.A + m.B*n.D),
		B: round1000(m.A*n.B + m.B*n.E),
		C: round1000(m.A*n.C+m.B*n.F) + m.C,
		D: round1000(m.D*n.A + m.E*n.D),
		E: round1000(m.D*n.B + m.E*n.E),
		F: round1000(m.D*n.C+m.E*n.F) + m.F,
	}
}

// Translate returns a matrix that shifts by (dx, dy).
func Translate(dx, dy int16) Matrix {
	return Matrix{A: 1000, E: 1000, C: int32(dx) * 1000, F: int32(dy) * 1000}
}

// Scale returns a matrix that scales about the origin. permille is the
// scale factor expressed in thousandths, so 1000 is unity.
func Scale(permille int32) Matrix {
	return Matrix{A: permille, E: permille}
}

// ScaleAbout returns a matrix that scales about (cx, cy) rather than the
// origin: translate -center, scale, translate +center.
func ScaleAbout(permille int32, cx, cy int16) Matrix {
	return Translate(cx, cy).Mul(Scale(permille)).Mul(Translate(-cx, -cy))
}

// Rotate returns a matrix that rotates by deg degrees about the origin,
// clockwise in screen (y-down) coordinates, using the shared fixed-point
// trig table.
func Rotate(deg int32) Matrix {
	c := trig.Cos256(deg)
	s := trig.Sin256(deg)
	// cos/sin are 256-scaled; rescale to the matrix's 1000 scale.
	return Matrix{
		A: c * 1000 / 256, B: -s * 1000 / 256,
		D: s * 1000 / 256, E: c * 1000 / 256,
	}
}

// RotateAbout returns a matrix that rotates by deg degrees about (cx, cy).
func RotateAbout(deg int32, cx, cy int16) Matrix {
	return Translate(cx, cy).Mul(Rotate(deg)).Mul(Translate(-cx, -cy))
}

// Apply transforms every segment in path by m and returns a new list; path
// itself is untouched. Move, Line and Cubic segments have every
// coordinate transformed directly. Close carries no coordinates and
// passes through unchanged. Arc segments have only their end point
// transformed directly: rx, ry and phi are corrected for the matrix's
// scale and rotation, derived by probing how m moves the point
// (1000, 0) relative to the origin, since a skewed or non-uniformly scaled matrix cannot be expressed as a
// rotated ellipse in closed form and gfxDraw does not support skew.
// Circle segments are left untransformed: a transformed circle is
// generally an ellipse, which the Circle variant cannot represent, so
// scaling or rotating a widget built from the `O` extension has no
// effect on it.
func Apply(path segment.List, m Matrix) segment.List {
	out := make(segment.List, len(path))
	scale, rot := probe(m)

	for i, s := range path {
		switch s.Kind {
		case segment.Move, segment.Line:
			x, y := m.Apply(s.X, s.Y)
			out[i] = segment.Segment{Kind: s.Kind, X: x, Y: y}
		case segment.Cubic:
			c1x, c1y := m.Apply(s.C1X, s.C1Y)
			c2x, c2y := m.Apply(s.C2X, s.C2Y)
			x, y := m.Apply(s.X, s.Y)
			out[i] = segment.NewCubic(c1x, c1y, c2x, c2y, x, y)
		case segment.Arc:
			x, y := m.Apply(s.X, s.Y)
			rx := scaleRadius(s.Rx, scale)
			ry := scaleRadius(s.Ry, scale)
			phi := s.Phi + rot
			out[i] = segment.NewArc(rx, ry, phi, s.LargeArc(), s.Sweep(), x, y)
		case segment.Circle:
			out[i] = s
		case segment.Close:
			out[i] = s
		}
	}
	return out
}

// probe derives the uniform scale (1000-scaled) and rotation (degrees)
// that m applies, by transforming the origin and the point (1000, 0) and
// measuring how far apart they land. This only recovers the correct
// answer for matrices built from Translate/Scale/Rotate composition,
// which is the only kind the widget layer constructs.
func probe(m Matrix) (scale int32, rotDeg int16) {
	ox, oy := m.Apply(0, 0)
	px, py := m.Apply(1000, 0)
	dx := int32(px) - int32(ox)
	dy := int32(py) - int32(oy)
	sq := dx*dx + dy*dy
	scale = isqrt(sq)
	if sq-scale*scale > scale {
		// isqrt floors; round to the nearest integer instead.
		scale++
	}
	rotDeg = int16(trig.VectorAngle(dx, dy))
	return scale, rotDeg
}

func scaleRadius(r int16, scalePermille int32) int16 {
	return clamp16(round1000(int32(r) * scalePermille))
}

// isqrt returns the integer square root of a non-negative value via
// Newton's method, used only to recover a scale factor from a squared
// distance in probe.
func isqrt(v int32) int32 {
	if v <= 0 {
		return 0
	}
	x := v
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + v/x) / 2
	}
	return x
}
