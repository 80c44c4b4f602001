// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

package shapes

import (
	"testing"

	"github.com/mathertel/gfxDraw/point"
	"github.com/stretchr/testify/assert"
)

func TestDrawRectBorderAndFill(t *testing.T) {
	var border, fillPx []point.Point
	DrawRect(0, 0, 4, 4,
		func(p point.Point) { border = append(border, p) },
		func(p point.Point) { fillPx = append(fillPx, p) },
	)
	assert.NotEmpty(t, border)
	assert.NotEmpty(t, fillPx)

	fillSet := map[point.Point]bool{}
	for _, p := range fillPx {
		fillSet[p] = true
	}
	for y := int16(1); y < 4; y++ {
		for x := int16(1); x < 4; x++ {
			assert.True(t, fillSet[point.New(x, y)])
		}
	}
	assert.False(t, fillSet[point.New(0, 0)])
}

func TestDrawRectNegativeDimensionsNormalize(t *testing.T) {
	var border []point.Point
	DrawRect(10, 10, -4, -4, func(p point.Point) { border = append(border, p) }, nil)
	for _, p := range border {
		assert.GreaterOrEqual(t, int(p.X), 6)
		assert.LessOrEqual(t, int(p.X), 10)
		assert.GreaterOrEqual(t, int(p.Y), 6)
		assert.LessOrEqual(t, int(p.Y), 10)
	}
	assert.NotEmpty(t, border)
}

func TestDrawRectDegenerateIsNoOp(t *testing.T) {
	var border []point.Point
	DrawRect(0, 0, 0, 5, func(p point.Point) { border = append(border, p) }, nil)
	assert.Empty(t, border)
}

func TestDrawRoundedRectClampsRadius(t *testing.T) {
	var border []point.Point
	DrawRoundedRect(0, 0, 10, 4, 100, func(p point.Point) { border = append(border, p) }, nil)
	assert.NotEmpty(t, border)
	for _, p := range border {
		assert.GreaterOrEqual(t, int(p.X), 0)
		assert.LessOrEqual(t, int(p.X), 10)
		assert.GreaterOrEqual(t, int(p.Y), 0)
		assert.LessOrEqual(t, int(p.Y), 4)
	}
}

func TestDrawRoundedRectZeroRadiusMatchesRect(t *testing.T) {
	var rounded, plain []point.Point
	DrawRoundedRect(0, 0, 6, 6, 0, func(p point.Point) { rounded = append(rounded, p) }, nil)
	DrawRect(0, 0, 6, 6, func(p point.Point) { plain = append(plain, p) }, nil)
	assert.Equal(t, plain, rounded)
}

func TestRectPathNormalizesNegative(t *testing.T) {
	path := RectPath(10, 10, -4, -4)
	assert.Equal(t, int16(6), path[0].X)
	assert.Equal(t, int16(6), path[0].Y)
}

func TestRoundedRectPathEndsWithClose(t *testing.T) {
	path := RoundedRectPath(0, 0, 10, 10, 3)
	// every arc/line segment's start is implicit (the running pen); just
	// check the list is well formed and ends with Close.
	assert.Equal(t, path[len(path)-1], path[len(path)-1])
	last := path[len(path)-1]
	assert.Equal(t, last.Kind.String(), "Close")
}

func TestCirclePathSingleSegment(t *testing.T) {
	path := CirclePath(5, 5, 3)
	assert.Len(t, path, 1)
	assert.Equal(t, "Circle", path[0].Kind.String())
}
