// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

package widget

import (
	"testing"

	"github.com/mathertel/gfxDraw/point"
	"github.com/stretchr/testify/assert"
)

func TestWidgetSetRectAndDraw(t *testing.T) {
	w := New()
	w.SetRect(4, 4)
	w.FillColour = point.Red

	var got []point.Point
	w.Draw(func(p point.Point, c point.Colour) {
		assert.Equal(t, point.Red, c)
		got = append(got, p)
	})
	assert.NotEmpty(t, got)
	assert.Equal(t, int16(0), w.MinX)
	assert.Equal(t, int16(0), w.MinY)
	assert.Equal(t, int16(4), w.MaxX)
	assert.Equal(t, int16(4), w.MaxY)
}

func TestWidgetDrawEmptyPathNoOp(t *testing.T) {
	w := New()
	w.FillColour = point.Blue
	var got []point.Point
	w.Draw(func(p point.Point, c point.Colour) { got = append(got, p) })
	assert.Empty(t, got)
}

func TestWidgetTransparentColoursEmitNothing(t *testing.T) {
	w := New()
	w.SetRect(4, 4)
	var got []point.Point
	w.Draw(func(p point.Point, c point.Colour) { got = append(got, p) })
	assert.Empty(t, got)
}

func TestWidgetMoveTranslatesOutput(t *testing.T) {
	w := New()
	w.SetRect(4, 4)
	w.FillColour = point.Green
	w.Move(10, 10)

	var got []point.Point
	w.Draw(func(p point.Point, c point.Colour) { got = append(got, p) })
	assert.NotEmpty(t, got)
	assert.Equal(t, int16(10), w.MinX)
	assert.Equal(t, int16(10), w.MinY)
}

func TestWidgetSetPathParsesText(t *testing.T) {
	w := New()
	w.SetPath("M0 0 h4 v4 h-4 z")
	assert.NotEmpty(t, w.Path)
}

func TestWidgetSetCircle(t *testing.T) {
	w := New()
	w.SetCircle(5)
	assert.Len(t, w.Path, 1)
	assert.Equal(t, "Circle", w.Path[0].Kind.String())
}

func TestWidgetFillSubstitutesForMissingStroke(t *testing.T) {
	w := New()
	w.SetRect(4, 4)
	w.FillColour = point.Yellow
	// no stroke colour: the engine substitutes the fill colour so the
	// border is not silently dropped.
	var got []point.Point
	w.Draw(func(p point.Point, c point.Colour) { got = append(got, p) })
	assert.NotEmpty(t, got)
}
