// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

// Package demoimage renders gfxDraw output to a PNG for local preview.
// It lives outside the core rasterizer: the spec's pixel pipeline never
// touches image.Image or file I/O, but the CLI needs something to look
// at, and upscaling a tiny embedded-display-sized canvas with nearest
// neighbour is the easiest way to see individual pixels.
package demoimage

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/mathertel/gfxDraw/point"
)

// Canvas is an in-memory RGBA framebuffer sized to the target display,
// implementing the point.ColourSink signature so a widget can draw
// straight into it.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas returns a w x h Canvas filled with bg.
func NewCanvas(w, h int, bg point.Colour) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	c := toColor(bg)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return &Canvas{img: img}
}

// Set is a point.ColourSink: it writes one pixel, ignoring coordinates
// outside the canvas bounds and fully transparent colours.
func (c *Canvas) Set(p point.Point, col point.Colour) {
	if col.IsTransparent() {
		return
	}
	b := c.img.Bounds()
	if int(p.X) < b.Min.X || int(p.X) >= b.Max.X || int(p.Y) < b.Min.Y || int(p.Y) >= b.Max.Y {
		return
	}
	c.img.Set(int(p.X), int(p.Y), toColor(col))
}

func toColor(c point.Colour) color.RGBA {
	return color.RGBA{R: c.Red, G: c.Green, B: c.Blue, A: c.Alpha}
}

// WritePNG scales the canvas up by scale (nearest neighbour, so every
// source pixel stays a crisp block) and writes it to path as a PNG.
func (c *Canvas) WritePNG(path string, scale int) error {
	if scale < 1 {
		scale = 1
	}
	src := c.img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, src.Dx()*scale, src.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), c.img, src, draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, dst)
}
