// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

package transform

import (
	"testing"

	"github.com/mathertel/gfxDraw/segment"
	"github.com/stretchr/testify/assert"
)

func TestIdentityApply(t *testing.T) {
	x, y := Identity.Apply(5, -3)
	assert.Equal(t, int16(5), x)
	assert.Equal(t, int16(-3), y)
}

func TestTranslateApply(t *testing.T) {
	m := Translate(10, -5)
	x, y := m.Apply(1, 1)
	assert.Equal(t, int16(11), x)
	assert.Equal(t, int16(-4), y)
}

func TestScaleApply(t *testing.T) {
	m := Scale(2000) // 2x
	x, y := m.Apply(3, 4)
	assert.Equal(t, int16(6), x)
	assert.Equal(t, int16(8), y)
}

func TestScaleAboutCenter(t *testing.T) {
	m := ScaleAbout(2000, 10, 10)
	x, y := m.Apply(10, 10)
	assert.Equal(t, int16(10), x)
	assert.Equal(t, int16(10), y)
	x, y = m.Apply(12, 10)
	assert.Equal(t, int16(14), x)
	assert.Equal(t, int16(10), y)
}

func TestRotate90(t *testing.T) {
	m := Rotate(90)
	x, y := m.Apply(1000, 0)
	assert.InDelta(t, 0, int(x), 1)
	assert.InDelta(t, 1000, int(y), 1)
}

func TestApplyMoveAndLine(t *testing.T) {
	path := segment.List{
		segment.NewMove(0, 0),
		segment.NewLine(10, 0),
	}
	out := Apply(path, Translate(5, 5))
	assert.Equal(t, segment.NewMove(5, 5), out[0])
	assert.Equal(t, segment.NewLine(15, 5), out[1])
}

func TestApplyCubicTransformsAllPoints(t *testing.T) {
	path := segment.List{
		segment.NewCubic(1, 2, 3, 4, 5, 6),
	}
	out := Apply(path, Translate(1, 1))
	assert.Equal(t, segment.NewCubic(2, 3, 4, 5, 6, 7), out[0])
}

func TestApplyCloseUnchanged(t *testing.T) {
	path := segment.List{segment.NewClose()}
	out := Apply(path, Translate(10, 10))
	assert.Equal(t, segment.NewClose(), out[0])
}

func TestApplyCircleUnchanged(t *testing.T) {
	path := segment.List{segment.NewCircle(5, 5, 3)}
	out := Apply(path, ScaleAbout(2000, 5, 5))
	assert.Equal(t, segment.NewCircle(5, 5, 3), out[0])
}

func TestApplyArcScalesRadii(t *testing.T) {
	path := segment.List{
		segment.NewArc(10, 10, 0, false, true, 20, 0),
	}
	out := Apply(path, Scale(2000))
	assert.Equal(t, int16(20), out[0].Rx)
	assert.Equal(t, int16(20), out[0].Ry)
	assert.Equal(t, int16(40), out[0].X)
}

func TestIsqrt(t *testing.T) {
	assert.Equal(t, int32(1000), isqrt(1000*1000))
	assert.Equal(t, int32(0), isqrt(0))
}
