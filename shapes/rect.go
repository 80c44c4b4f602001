// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

// Package shapes provides the derived primitives built directly on the
// rasterizer rather than through the path mini-language: rectangles and
// rounded rectangles, drawn border-first then filled row by row, and the
// segment.List builders the widget's set_rect/set_circle convenience
// methods use.
package shapes

import (
	"github.com/mathertel/gfxDraw/point"
	"github.com/mathertel/gfxDraw/raster"
	"github.com/mathertel/gfxDraw/segment"
)

// DrawRect draws the border of the w x h rectangle with top-left corner
// (x, y) to borderSink, clockwise starting at the top edge, then — if
// fillSink is non-nil — fills every intermediate row between the left
// and right borders. A negative w or h is handled by negating it and
// shifting the origin so the rectangle always ends up with a positive
// extent, matching how the path parser's relative coordinates can
// produce either sign.
func DrawRect(x, y, w, h int16, borderSink, fillSink point.Sink) {
	if w < 0 {
		x += w
		w = -w
	}
	if h < 0 {
		y += h
		h = -h
	}
	if w == 0 || h == 0 {
		return
	}

	x1 := x + w
	y1 := y + h

	raster.DrawLine(x, y, x1, y, borderSink)   // top
	raster.DrawLine(x1, y, x1, y1, borderSink) // right
	raster.DrawLine(x1, y1, x, y1, borderSink) // bottom
	raster.DrawLine(x, y1, x, y, borderSink)   // left

	if fillSink == nil {
		return
	}
	for row := y + 1; row < y1; row++ {
		for col := x + 1; col < x1; col++ {
			fillSink(point.New(col, row))
		}
	}
}

// DrawRoundedRect draws a rectangle whose four corners are replaced by a
// radius-r quarter circle, clamped to min(w, h)/2. The corner arcs are
// routed through borderSink, as are the straight edge runs between them;
// the interior (including the rows that only clip the rounded corners)
// is routed through fillSink.
func DrawRoundedRect(x, y, w, h, r int16, borderSink, fillSink point.Sink) {
	if w < 0 {
		x += w
		w = -w
	}
	if h < 0 {
		y += h
		h = -h
	}
	if w == 0 || h == 0 {
		return
	}

	maxR := w
	if h < maxR {
		maxR = h
	}
	maxR /= 2
	if r > maxR {
		r = maxR
	}
	if r <= 0 {
		DrawRect(x, y, w, h, borderSink, fillSink)
		return
	}

	x1 := x + w
	y1 := y + h

	// Corner centres, one radius in from each side.
	tl := point.New(x+r, y+r)
	tr := point.New(x1-r, y+r)
	br := point.New(x1-r, y1-r)
	bl := point.New(x+r, y1-r)

	raster.CircleQuadrant(tl.X, tl.Y, r, 2, borderSink) // top-left: upper-left quadrant
	raster.DrawLine(x+r, y, x1-r, y, borderSink)        // top edge
	raster.CircleQuadrant(tr.X, tr.Y, r, 3, borderSink) // top-right
	raster.DrawLine(x1, y+r, x1, y1-r, borderSink)      // right edge
	raster.CircleQuadrant(br.X, br.Y, r, 0, borderSink) // bottom-right
	raster.DrawLine(x1-r, y1, x+r, y1, borderSink)      // bottom edge
	raster.CircleQuadrant(bl.X, bl.Y, r, 1, borderSink) // bottom-left
	raster.DrawLine(x, y1-r, x, y+r, borderSink)        // left edge

	if fillSink == nil {
		return
	}
	for row := y + 1; row < y1; row++ {
		left, right := rowSpan(row, x, y, x1, y1, r)
		for col := left + 1; col < right; col++ {
			fillSink(point.New(col, row))
		}
	}
}

// rowSpan returns the inclusive horizontal extent of the rounded
// rectangle's border on row, used to bound the interior fill.
func rowSpan(row, x, y, x1, y1, r int16) (left, right int16) {
	switch {
	case row < y+r:
		dy := y + r - row
		dx := chordHalfWidth(r, dy)
		return x + r - dx, x1 - r + dx
	case row > y1-r:
		dy := row - (y1 - r)
		dx := chordHalfWidth(r, dy)
		return x + r - dx, x1 - r + dx
	default:
		return x, x1
	}
}

// chordHalfWidth returns the integer half-width of a circle of radius r
// at vertical offset dy from its centre, via the same relation the
// midpoint circle algorithm is built on.
func chordHalfWidth(r, dy int16) int16 {
	rr := int32(r) * int32(r)
	dd := int32(dy) * int32(dy)
	if dd > rr {
		return 0
	}
	return isqrt32(rr - dd)
}

func isqrt32(v int32) int16 {
	if v <= 0 {
		return 0
	}
	x := v
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + v/x) / 2
	}
	return int16(x)
}

// RectPath returns the Move/Line/Close segment.List a PathWidget's
// set_rect builds, the generic-path equivalent of DrawRect.
func RectPath(x, y, w, h int16) segment.List {
	if w < 0 {
		x += w
		w = -w
	}
	if h < 0 {
		y += h
		h = -h
	}
	return segment.List{
		segment.NewMove(x, y),
		segment.NewLine(x+w, y),
		segment.NewLine(x+w, y+h),
		segment.NewLine(x, y+h),
		segment.NewClose(),
	}
}

// RoundedRectPath returns the generic-path equivalent of
// DrawRoundedRect, built from Arc segments at each corner.
func RoundedRectPath(x, y, w, h, r int16) segment.List {
	if w < 0 {
		x += w
		w = -w
	}
	if h < 0 {
		y += h
		h = -h
	}
	maxR := w
	if h < maxR {
		maxR = h
	}
	maxR /= 2
	if r > maxR {
		r = maxR
	}
	if r <= 0 {
		return RectPath(x, y, w, h)
	}

	x1 := x + w
	y1 := y + h

	return segment.List{
		segment.NewMove(x+r, y),
		segment.NewLine(x1-r, y),
		segment.NewArc(r, r, 0, false, true, x1, y+r),
		segment.NewLine(x1, y1-r),
		segment.NewArc(r, r, 0, false, true, x1-r, y1),
		segment.NewLine(x+r, y1),
		segment.NewArc(r, r, 0, false, true, x, y1-r),
		segment.NewLine(x, y+r),
		segment.NewArc(r, r, 0, false, true, x+r, y),
		segment.NewClose(),
	}
}

// CirclePath returns the single Circle segment a PathWidget's set_circle
// builds.
func CirclePath(cx, cy, r int16) segment.List {
	return segment.List{segment.NewCircle(cx, cy, r)}
}
