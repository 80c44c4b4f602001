// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

package point

import "testing"

func TestNeighbour4(t *testing.T) {
	cases := []struct {
		a, b Point
		want bool
	}{
		{New(5, 5), New(5, 5), true},
		{New(5, 5), New(6, 5), true},
		{New(5, 5), New(5, 6), true},
		{New(5, 5), New(6, 6), false},
		{New(5, 5), New(7, 5), false},
	}
	for _, c := range cases {
		if got := c.a.Neighbour4(c.b); got != c.want {
			t.Errorf("Neighbour4(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestIsBreak(t *testing.T) {
	if !Break.IsBreak() {
		t.Error("Break.IsBreak() = false, want true")
	}
	if New(1, 2).IsBreak() {
		t.Error("New(1, 2).IsBreak() = true, want false")
	}
}

func TestColourPacked32(t *testing.T) {
	c := ARGB(0xFF, 0x11, 0x22, 0x33)
	want := uint32(0xFF112233)
	if got := c.Packed32(); got != want {
		t.Errorf("Packed32() = %#x, want %#x", got, want)
	}
}

func TestTransparent(t *testing.T) {
	if !Transparent.IsTransparent() {
		t.Error("Transparent.IsTransparent() = false, want true")
	}
	if Red.IsTransparent() {
		t.Error("Red.IsTransparent() = true, want false")
	}
}
