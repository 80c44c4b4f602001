// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

// Package raster holds the primitive pixel generators — lines, cubic
// Béziers, circle quadrants and arcs, elliptic arcs — and the smoothing
// window that sits between every one of them and the caller's sink. The
// window is the single reason the fill engine can trust its scanline
// crossings: it guarantees the boundary stream has no holes, no
// duplicates, and no diagonal-only corners that would confuse even-odd
// counting.
package raster

import "github.com/mathertel/gfxDraw/point"

// Window is a three-slot sliding buffer between a primitive generator
// and the final sink. Its lifetime is one primitive call, or one walker
// pass if the caller chooses to share it across segments; it is
// re-initialised at each BreakY flush.
//
// Slots are named the way the spec names them: w[0] is the newest
// candidate installed so far, w[2] the oldest. Geometry checks (corner
// dropping, gap closing) are evaluated against the about-to-be-shifted
// window before a new candidate is installed, which is equivalent to
// evaluating the post-shift window the spec describes but avoids
// re-deriving already-emitted state.
type Window struct {
	w    [3]point.Point
	sink point.Sink
}

var invalidSlot = point.Point{X: 0, Y: point.InvalidY}

// NewWindow returns a Window that forwards smoothed pixels to sink.
func NewWindow(sink point.Sink) *Window {
	win := &Window{sink: sink}
	win.reset()
	return win
}

func (win *Window) reset() {
	win.w[0] = invalidSlot
	win.w[1] = invalidSlot
	win.w[2] = invalidSlot
}

// Propose feeds one candidate pixel through the window.
func (win *Window) Propose(p point.Point) {
	if p == win.w[0] {
		return // rule 1: duplicate suppression
	}
	if p.IsBreak() {
		win.flush() // rule 2
		return
	}
	win.insert(p)
}

// Flush drains the window oldest-to-newest and invalidates it. The
// caller uses this once a primitive has no further candidates, mirroring
// the BreakY flush.
func (win *Window) Flush() {
	win.flush()
}

func (win *Window) flush() {
	if win.w[2].IsValid() {
		win.sink(win.w[2])
	}
	if win.w[1].IsValid() {
		win.sink(win.w[1])
	}
	if win.w[0].IsValid() {
		win.sink(win.w[0])
	}
	win.reset()
}

// insert applies rule 4's geometry checks against the current window
// before shifting p in. The corner-drop check needs two points of prior
// history (w[0] and w[1]); the gap checks only need one (w[0]), since
// they concern the pair about to be formed between the current newest
// slot and the incoming candidate.
func (win *Window) insert(p point.Point) {
	if !win.w[0].IsValid() {
		win.shiftIn(p)
		return
	}
	cur0 := win.w[0]

	if win.w[1].IsValid() {
		cur1 := win.w[1]
		if isCorner(p, cur0, cur1) {
			// cur0 is a redundant 8-connected corner: it has not been
			// emitted yet, so drop it by collapsing the window around it.
			win.w[0] = cur1
			win.w[1] = win.w[2]
			win.w[2] = invalidSlot
			win.insert(p)
			return
		}
	}

	dx := absInt(int(p.X) - int(cur0.X))
	dy := absInt(int(p.Y) - int(cur0.Y))

	switch {
	case dx == 2 || dy == 2:
		// Single-pixel gap: splice the integer midpoint in first.
		mid := point.New(cur0.X+sign16(p.X-cur0.X), cur0.Y+sign16(p.Y-cur0.Y))
		win.shiftIn(mid)
		win.shiftIn(p)
	case dx > 2 || dy > 2:
		// Large gap: flush both older slots, bridge with a straight line
		// (which emits both endpoints itself, including cur0 and p), and
		// start the window over empty.
		if win.w[2].IsValid() {
			win.sink(win.w[2])
		}
		if win.w[1].IsValid() {
			win.sink(win.w[1])
		}
		DrawLine(cur0.X, cur0.Y, p.X, p.Y, win.sink)
		win.reset()
	default:
		win.shiftIn(p)
	}
}

// shiftIn emits the oldest slot (if valid) and shifts p into w[0].
func (win *Window) shiftIn(p point.Point) {
	if win.w[2].IsValid() {
		win.sink(win.w[2])
	}
	win.w[2] = win.w[1]
	win.w[1] = win.w[0]
	win.w[0] = p
}

// isCorner reports whether mid is an 8-connected staircase corner
// between newer and older: newer and mid are 4-neighbours on one axis
// while mid and older are 4-neighbours on the other axis, so mid
// contributes no border pixel a fill algorithm could not infer from
// newer and older alone.
func isCorner(newer, mid, older point.Point) bool {
	dxNM := newer.X - mid.X
	dyNM := newer.Y - mid.Y
	dxMO := mid.X - older.X
	dyMO := mid.Y - older.Y

	horizNM := dyNM == 0 && (dxNM == 1 || dxNM == -1)
	vertNM := dxNM == 0 && (dyNM == 1 || dyNM == -1)
	horizMO := dyMO == 0 && (dxMO == 1 || dxMO == -1)
	vertMO := dxMO == 0 && (dyMO == 1 || dyMO == -1)

	return (horizNM && vertMO) || (vertNM && horizMO)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign16(v int16) int16 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
