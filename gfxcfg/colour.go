// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

package gfxcfg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mathertel/gfxDraw/point"
)

// ParseColour decodes a "#RRGGBB" or "#AARRGGBB" hex string into a
// point.Colour. A missing alpha channel defaults to fully opaque.
func ParseColour(s string) (point.Colour, error) {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 6:
		s = "FF" + s
	case 8:
		// already has alpha
	default:
		return point.Colour{}, fmt.Errorf("gfxcfg: colour %q must be 6 or 8 hex digits", s)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return point.Colour{}, fmt.Errorf("gfxcfg: invalid colour %q: %w", s, err)
	}
	return point.ARGB(
		uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v),
	), nil
}
