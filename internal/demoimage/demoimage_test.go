// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

package demoimage

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/mathertel/gfxDraw/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasSetAndWritePNG(t *testing.T) {
	c := NewCanvas(4, 4, point.Black)
	c.Set(point.New(1, 1), point.White)
	c.Set(point.New(10, 10), point.White) // out of bounds, must not panic

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, c.WritePNG(path, 2))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestCanvasSetIgnoresTransparent(t *testing.T) {
	c := NewCanvas(2, 2, point.Black)
	c.Set(point.New(0, 0), point.Transparent)
	assert.Equal(t, toColor(point.Black), c.img.At(0, 0).(color.RGBA))
}
