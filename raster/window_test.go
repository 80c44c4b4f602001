// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

package raster

import (
	"testing"

	"github.com/mathertel/gfxDraw/point"
	"github.com/stretchr/testify/assert"
)

func TestWindowDuplicateSuppression(t *testing.T) {
	var got []point.Point
	win := NewWindow(func(p point.Point) { got = append(got, p) })
	win.Propose(point.New(1, 1))
	win.Propose(point.New(1, 1))
	win.Propose(point.New(2, 1))
	win.Flush()
	assert.Equal(t, []point.Point{point.New(1, 1), point.New(2, 1)}, got)
}

func TestWindowGapClosing(t *testing.T) {
	var got []point.Point
	win := NewWindow(func(p point.Point) { got = append(got, p) })
	win.Propose(point.New(0, 0))
	win.Propose(point.New(2, 0)) // 1-pixel gap, midpoint (1,0) must appear
	win.Flush()
	assert.Contains(t, got, point.New(1, 0))
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Neighbour4(got[i]))
	}
}

func TestWindowLargeGapBridged(t *testing.T) {
	var got []point.Point
	win := NewWindow(func(p point.Point) { got = append(got, p) })
	win.Propose(point.New(0, 0))
	win.Propose(point.New(10, 0))
	win.Flush()
	assert.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Neighbour4(got[i]))
	}
	assert.Equal(t, point.New(0, 0), got[0])
	assert.Equal(t, point.New(10, 0), got[len(got)-1])
}

func TestWindowLargeGapWithFullWindowKeepsMiddleSlot(t *testing.T) {
	var got []point.Point
	win := NewWindow(func(p point.Point) { got = append(got, p) })
	// Fill the window to 3 valid slots before the jump, so the large-gap
	// branch must flush w[2] and w[1], not just w[2].
	win.Propose(point.New(0, 0))
	win.Propose(point.New(1, 0))
	win.Propose(point.New(2, 0))
	win.Propose(point.New(10, 0))
	win.Flush()
	assert.Contains(t, got, point.New(1, 0))
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Neighbour4(got[i]))
	}
	assert.Equal(t, point.New(0, 0), got[0])
	assert.Equal(t, point.New(10, 0), got[len(got)-1])
}

func TestWindowCornerDrop(t *testing.T) {
	var got []point.Point
	win := NewWindow(func(p point.Point) { got = append(got, p) })
	// (0,0) -> (1,0) -> (1,1): the middle point is an 8-connected corner
	// relative to (0,0) and (1,1) and should not survive as a distinct
	// border pixel once both neighbours are known.
	win.Propose(point.New(0, 0))
	win.Propose(point.New(1, 0))
	win.Propose(point.New(1, 1))
	win.Flush()
	assert.NotContains(t, got, point.New(1, 0))
}
