// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

// Package widget ties a parsed path, an affine matrix, and a pair of
// colours into a single drawable unit: the PathWidget.
package widget

import (
	"github.com/mathertel/gfxDraw/fill"
	"github.com/mathertel/gfxDraw/pathparse"
	"github.com/mathertel/gfxDraw/point"
	"github.com/mathertel/gfxDraw/segment"
	"github.com/mathertel/gfxDraw/shapes"
	"github.com/mathertel/gfxDraw/transform"
)

// PathWidget owns a segment list, the affine matrix applied to it at
// draw time, and the two colours a draw call binds to the fill engine's
// stroke and fill sinks.
type PathWidget struct {
	Path   segment.List
	Matrix transform.Matrix

	StrokeColour point.Colour
	FillColour   point.Colour

	// MinX, MinY, MaxX, MaxY hold the bounding box of the last Draw
	// call's output. They start invalid (MinX > MaxX) until a Draw
	// actually emits a pixel.
	MinX, MinY, MaxX, MaxY int16
}

// New returns an empty widget with the identity matrix and both colours
// transparent.
func New() *PathWidget {
	w := &PathWidget{Matrix: transform.Identity}
	w.resetBounds()
	return w
}

func (w *PathWidget) resetBounds() {
	w.MinX, w.MinY = 32767, 32767
	w.MaxX, w.MaxY = -32768, -32768
}

// SetPath replaces the widget's path with the result of parsing text.
// A malformed tail is silently dropped, per the parser's recoverable
// error handling; callers that care can call pathparse.Parse directly.
func (w *PathWidget) SetPath(text string) {
	segs, _ := pathparse.Parse(text)
	w.Path = segs
}

// AddSegment appends one segment to the widget's path.
func (w *PathWidget) AddSegment(s segment.Segment) {
	w.Path = append(w.Path, s)
}

// SetRect replaces the widget's path with a w x h rectangle whose
// top-left corner is the origin.
func (w *PathWidget) SetRect(width, height int16) {
	w.Path = shapes.RectPath(0, 0, width, height)
}

// SetRoundedRect replaces the widget's path with a w x h rectangle with
// corner radius r, top-left corner at the origin.
func (w *PathWidget) SetRoundedRect(width, height, r int16) {
	w.Path = shapes.RoundedRectPath(0, 0, width, height, r)
}

// SetCircle replaces the widget's path with a single full circle of
// radius r centred at the origin.
func (w *PathWidget) SetCircle(r int16) {
	w.Path = shapes.CirclePath(0, 0, r)
}

// Move pre-multiplies the matrix by a translation, so it composes
// outside whatever transform was already set.
func (w *PathWidget) Move(dx, dy int16) {
	w.Matrix = transform.Translate(dx, dy).Mul(w.Matrix)
}

// Scale pre-multiplies the matrix by a scale about the origin. permille
// is the scale factor in thousandths: 1000 is unity.
func (w *PathWidget) Scale(permille int32) {
	w.Matrix = transform.Scale(permille).Mul(w.Matrix)
}

// ScaleAbout pre-multiplies the matrix by a scale about (cx, cy).
func (w *PathWidget) ScaleAbout(permille int32, cx, cy int16) {
	w.Matrix = transform.ScaleAbout(permille, cx, cy).Mul(w.Matrix)
}

// Rotate pre-multiplies the matrix by a rotation, in degrees, about the
// origin.
func (w *PathWidget) Rotate(deg int32) {
	w.Matrix = transform.Rotate(deg).Mul(w.Matrix)
}

// RotateAbout pre-multiplies the matrix by a rotation about (cx, cy).
func (w *PathWidget) RotateAbout(deg int32, cx, cy int16) {
	w.Matrix = transform.RotateAbout(deg, cx, cy).Mul(w.Matrix)
}

// Draw clones the widget's path, applies the matrix, and runs the fill
// engine with sinks bound to the widget's stroke and fill colours,
// forwarding every emitted pixel to sink. Draw also records the
// bounding box of everything it emitted, overwriting whatever an
// earlier Draw call left there. sink is never called with an alpha-zero
// pixel: a transparent fill colour suppresses interior pixels, and a
// transparent stroke colour makes the fill engine draw the border in the
// fill colour instead.
func (w *PathWidget) Draw(sink point.ColourSink) {
	w.resetBounds()
	if len(w.Path) == 0 {
		return
	}

	transformed := transform.Apply(w.Path.Clone(), w.Matrix)

	track := func(p point.Point) {
		if p.X < w.MinX {
			w.MinX = p.X
		}
		if p.X > w.MaxX {
			w.MaxX = p.X
		}
		if p.Y < w.MinY {
			w.MinY = p.Y
		}
		if p.Y > w.MaxY {
			w.MaxY = p.Y
		}
	}

	var strokeSink, fillSink point.Sink
	if !w.StrokeColour.IsTransparent() {
		strokeSink = func(p point.Point) {
			track(p)
			sink(p, w.StrokeColour)
		}
	}
	if !w.FillColour.IsTransparent() {
		fillSink = func(p point.Point) {
			track(p)
			sink(p, w.FillColour)
		}
	}

	fill.FillSegments(transformed, strokeSink, fillSink)
}
