// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

// Package walker threads a pen through a segment.List, dispatching each
// segment to the matching raster primitive and emitting a final break
// once the whole path has been walked.
package walker

import (
	"github.com/mathertel/gfxDraw/point"
	"github.com/mathertel/gfxDraw/raster"
	"github.com/mathertel/gfxDraw/segment"
)

// DrawSegments walks path in order, threading a running pen position
// through Move/Line/Cubic/Arc segments and dispatching each to its raster
// primitive. Circle segments ignore the pen entirely, since they carry
// their own center. Close draws a line back to the sub-path's start, the
// same as an explicit Line to that point would. A point.Break is always
// emitted after the last segment of a non-empty path, so a caller feeding this stream into
// the smoothing window or fill engine sees a clean sub-path terminator
// even for a path with a single trailing Close.
func DrawSegments(path segment.List, sink point.Sink) {
	var curX, curY int16
	var startX, startY int16
	var have bool

	for _, s := range path {
		switch s.Kind {
		case segment.Move:
			if have {
				sink(point.Break)
			}
			curX, curY = s.X, s.Y
			startX, startY = s.X, s.Y
			have = true
			sink(point.New(curX, curY))

		case segment.Line:
			raster.DrawLine(curX, curY, s.X, s.Y, sink)
			curX, curY = s.X, s.Y

		case segment.Cubic:
			raster.DrawCubic(curX, curY, s.C1X, s.C1Y, s.C2X, s.C2Y, s.X, s.Y, sink)
			curX, curY = s.X, s.Y

		case segment.Arc:
			raster.DrawArc(curX, curY, s.Rx, s.Ry, s.Phi, s.LargeArc(), s.Sweep(), s.X, s.Y, sink)
			curX, curY = s.X, s.Y

		case segment.Circle:
			raster.CircleSegment(s.X, s.Y, s.Rx, point.New(s.X+s.Rx, s.Y), point.New(s.X+s.Rx, s.Y), true, true, sink)

		case segment.Close:
			raster.DrawLine(curX, curY, startX, startY, sink)
			curX, curY = startX, startY
		}
	}

	if len(path) > 0 {
		sink(point.Break)
	}
}
