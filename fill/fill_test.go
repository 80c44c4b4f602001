// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

package fill

import (
	"testing"

	"github.com/mathertel/gfxDraw/point"
	"github.com/mathertel/gfxDraw/segment"
	"github.com/stretchr/testify/assert"
)

func square(x, y, w, h int16) segment.List {
	return segment.List{
		segment.NewMove(x, y),
		segment.NewLine(x+w, y),
		segment.NewLine(x+w, y+h),
		segment.NewLine(x, y+h),
		segment.NewClose(),
	}
}

func TestFillSegmentsSquareInterior(t *testing.T) {
	var stroke, fillPx []point.Point
	FillSegments(square(0, 0, 4, 4),
		func(p point.Point) { stroke = append(stroke, p) },
		func(p point.Point) { fillPx = append(fillPx, p) },
	)

	assert.NotEmpty(t, stroke)
	assert.NotEmpty(t, fillPx)

	fillSet := map[point.Point]bool{}
	for _, p := range fillPx {
		fillSet[p] = true
	}
	// rows strictly between top (y=0) and bottom (y=4), interior x in (0,4)
	for y := int16(1); y < 4; y++ {
		for x := int16(1); x < 4; x++ {
			assert.True(t, fillSet[point.New(x, y)], "expected (%d,%d) filled", x, y)
		}
	}
	// the border itself is never reported as interior fill.
	assert.False(t, fillSet[point.New(0, 0)])
	assert.False(t, fillSet[point.New(4, 4)])
}

func TestFillSegmentsNilStrokeSubstitutesFill(t *testing.T) {
	var fillPx []point.Point
	FillSegments(square(0, 0, 4, 4), nil, func(p point.Point) { fillPx = append(fillPx, p) })
	assert.NotEmpty(t, fillPx)
	// border pixels must appear too, via the substituted sink.
	found := false
	for _, p := range fillPx {
		if p == point.New(0, 0) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestFillSegmentsNilFillSkipsInterior(t *testing.T) {
	var stroke []point.Point
	FillSegments(square(0, 0, 4, 4), func(p point.Point) { stroke = append(stroke, p) }, nil)
	assert.NotEmpty(t, stroke)
}

func TestCollectEdgesMergesWraparound(t *testing.T) {
	edges := collectEdges(square(0, 0, 4, 4))
	var topRowEdges int
	for _, e := range edges {
		if !e.IsBreak() && e.Y == 0 {
			topRowEdges++
		}
	}
	assert.Equal(t, 1, topRowEdges)
}

func TestDoubleExtremaEvenParityPerRow(t *testing.T) {
	edges := collectEdges(square(0, 0, 4, 4))
	doubled := doubleExtrema(edges)

	counts := map[int16]int{}
	for _, e := range doubled {
		if !e.IsBreak() {
			counts[e.Y]++
		}
	}
	for y, c := range counts {
		assert.Equal(t, 0, c%2, "row %d has odd crossing count %d", y, c)
	}
}
