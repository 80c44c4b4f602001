// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

// Package fill implements the three-phase scanline fill engine: it turns
// the boundary pixel stream the walker produces into border
// and interior pixels via an even-odd crossing count.
package fill

import (
	"sort"

	"github.com/mathertel/gfxDraw/point"
	"github.com/mathertel/gfxDraw/segment"
	"github.com/mathertel/gfxDraw/walker"
)

// Edge is a horizontal pixel run on one scanline: (X, Y, Len) with
// Len >= 0. Len == 0 denotes a marker-only edge inserted by phase B to
// double an extremum's crossing. A BreakY edge (Y == point.BreakY)
// separates the sub-paths phase A traced; it carries no pixels.
type Edge struct {
	X, Y, Len int16
}

// IsBreak reports whether e is a sub-path separator rather than a run.
func (e Edge) IsBreak() bool {
	return e.Y == point.BreakY
}

// FillSegments runs the full three-phase engine over path and delivers
// border pixels to strokeSink and interior pixels to fillSink. Either
// sink may be nil: a nil strokeSink is replaced with fillSink so the
// contour is still traced; a nil fillSink simply receives no interior
// calls, degenerating to a border-only draw.
func FillSegments(path segment.List, strokeSink, fillSink point.Sink) {
	if strokeSink == nil {
		strokeSink = fillSink
	}

	edges := collectEdges(path)
	edges = doubleExtrema(edges)
	emitScanlines(edges, strokeSink, fillSink)
}

// collectEdges runs the walker and coalesces consecutive same-y,
// adjacent-or-overlapping pixels into Edges (phase A).
//
// A closed sub-path's last traced pixel is its start point revisited,
// many edges after the first one was flushed: the stream-consecutive
// rule alone would leave it as a spurious extra one-pixel edge on the
// same scanline as the sub-path's first edge, over-counting that row's
// crossings. Since a sub-path is logically a cycle, its first and last
// edge are merged whenever they land on the same row and touch, the same
// way any other stream-adjacent run would be.
func collectEdges(path segment.List) []Edge {
	var edges []Edge
	var cur *Edge
	subStart := 0

	flush := func() {
		if cur != nil {
			edges = append(edges, *cur)
			cur = nil
		}
	}

	closeSubPath := func() {
		flush()
		if len(edges) > subStart+1 {
			first := edges[subStart]
			last := edges[len(edges)-1]
			if first.Y == last.Y && runsTouch(first, last) {
				edges[subStart] = mergeRuns(first, last)
				edges = edges[:len(edges)-1]
			}
		}
		edges = append(edges, Edge{Y: point.BreakY})
		subStart = len(edges)
	}

	sink := func(p point.Point) {
		if p.IsBreak() {
			closeSubPath()
			return
		}
		if cur != nil && p.Y == cur.Y {
			switch {
			case p.X == cur.X+cur.Len:
				cur.Len++
				return
			case p.X == cur.X-1:
				cur.X--
				cur.Len++
				return
			case p.X >= cur.X && p.X < cur.X+cur.Len:
				return
			}
		}
		flush()
		cur = &Edge{X: p.X, Y: p.Y, Len: 1}
	}

	walker.DrawSegments(path, sink)
	flush()
	return edges
}

func runsTouch(a, b Edge) bool {
	return !(int32(a.X)+int32(a.Len) < int32(b.X) || int32(b.X)+int32(b.Len) < int32(a.X))
}

func mergeRuns(a, b Edge) Edge {
	lo := a.X
	if b.X < lo {
		lo = b.X
	}
	hi := a.X + a.Len
	if b.X+b.Len > hi {
		hi = b.X + b.Len
	}
	return Edge{X: lo, Y: a.Y, Len: hi - lo}
}

// doubleExtrema scans each sub-path cyclically and inserts a zero-length
// marker edge, equal to the peak edge, immediately before every slope
// reversal (phase B). BreakY edges pass through untouched and delimit
// where one sub-path's cyclic scan ends and the next begins.
func doubleExtrema(edges []Edge) []Edge {
	var out []Edge
	start := 0
	for i := 0; i <= len(edges); i++ {
		if i == len(edges) || edges[i].IsBreak() {
			out = append(out, doubleSubPath(edges[start:i])...)
			if i < len(edges) {
				out = append(out, edges[i])
			}
			start = i + 1
		}
	}
	return out
}

func doubleSubPath(sub []Edge) []Edge {
	n := len(sub)
	if n < 2 {
		return append([]Edge(nil), sub...)
	}

	transitions := make([]int, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		transitions[i] = sign32(int32(sub[j].Y) - int32(sub[i].Y))
	}

	dir := 0
	for i := n - 1; i >= 0; i-- {
		if transitions[i] != 0 {
			dir = transitions[i]
			break
		}
	}

	out := make([]Edge, 0, n+2)
	for i := 0; i < n; i++ {
		out = append(out, sub[i])
		t := transitions[i]
		if t != 0 {
			if dir != 0 && t != dir {
				out = append(out, Edge{X: sub[i].X, Y: sub[i].Y, Len: 0})
			}
			dir = t
		}
	}
	return out
}

func sign32(v int32) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// emitScanlines stable-sorts the real (non-break) edges by (Y, X, Len)
// and walks them, flipping an inside/outside flag at every crossing
// (phase C).
func emitScanlines(edges []Edge, strokeSink, fillSink point.Sink) {
	real := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if !e.IsBreak() {
			real = append(real, e)
		}
	}
	sort.SliceStable(real, func(i, j int) bool {
		a, b := real[i], real[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Len < b.Len
	})

	inside := false
	var curY int16
	haveY := false
	var lastX int32

	for _, e := range real {
		if !haveY || e.Y != curY {
			inside = false
			lastX = 1 << 30
			curY = e.Y
			haveY = true
		}

		if e.Len >= 1 && strokeSink != nil {
			for k := int16(0); k < e.Len; k++ {
				strokeSink(point.New(e.X+k, e.Y))
			}
		}

		if inside && fillSink != nil {
			for x := lastX; x < int32(e.X); x++ {
				fillSink(point.New(int16(x), e.Y))
			}
		}

		inside = !inside
		lastX = int32(e.X) + int32(e.Len)
	}
}
