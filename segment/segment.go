// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

// Package segment defines the tagged segment records that make up a
// PathList: the flat, ordered representation a parsed path is reduced
// to before the walker threads a pen through it.
package segment

import "github.com/mathertel/gfxDraw/point"

// Kind tags which variant a Segment holds.
type Kind uint8

const (
	Move Kind = iota
	Line
	Cubic
	Arc
	Circle
	Close
)

func (k Kind) String() string {
	switch k {
	case Move:
		return "Move"
	case Line:
		return "Line"
	case Cubic:
		return "Cubic"
	case Arc:
		return "Arc"
	case Circle:
		return "Circle"
	case Close:
		return "Close"
	default:
		return "Unknown"
	}
}

// Arc flag bits, packed into Segment.Flags.
const (
	FlagLargeArc uint8 = 0x01
	FlagSweep    uint8 = 0x02
)

// Segment is a fixed-size tagged record. Every variant stores its
// coordinates as plain int16 fields; unused fields for a given Kind are
// zero. Coordinates are always absolute: lowercase relative commands are
// folded into absolute form by the parser before a Segment is built.
type Segment struct {
	Kind Kind

	// Move, Line, Circle, Close: X, Y is the segment's end point
	// (for Circle, the centre).
	X, Y int16

	// Cubic: two control points, C1 and C2, before the end point X, Y.
	C1X, C1Y int16
	C2X, C2Y int16

	// Arc: radii and rotation. Circle: radius stored in Rx only.
	Rx, Ry int16
	Phi    int16

	// Arc: packed FlagLargeArc | FlagSweep.
	Flags uint8
}

// NewMove returns a Move segment to (x, y).
func NewMove(x, y int16) Segment {
	return Segment{Kind: Move, X: x, Y: y}
}

// NewLine returns a Line segment to (x, y).
func NewLine(x, y int16) Segment {
	return Segment{Kind: Line, X: x, Y: y}
}

// NewCubic returns a Cubic Bézier segment with the given control points
// and end point.
func NewCubic(c1x, c1y, c2x, c2y, x, y int16) Segment {
	return Segment{Kind: Cubic, C1X: c1x, C1Y: c1y, C2X: c2x, C2Y: c2y, X: x, Y: y}
}

// NewArc returns an elliptic arc segment. large and sweep are the SVG
// large-arc and sweep flags.
func NewArc(rx, ry, phi int16, large, sweep bool, x, y int16) Segment {
	var flags uint8
	if large {
		flags |= FlagLargeArc
	}
	if sweep {
		flags |= FlagSweep
	}
	return Segment{Kind: Arc, Rx: rx, Ry: ry, Phi: phi, Flags: flags, X: x, Y: y}
}

// NewCircle returns a full-circle segment (the non-SVG `O` extension).
func NewCircle(cx, cy, r int16) Segment {
	return Segment{Kind: Circle, X: cx, Y: cy, Rx: r}
}

// NewClose returns a Close segment.
func NewClose() Segment {
	return Segment{Kind: Close}
}

// LargeArc reports whether the SVG large-arc flag is set.
func (s Segment) LargeArc() bool {
	return s.Flags&FlagLargeArc != 0
}

// Sweep reports whether the SVG sweep (clockwise) flag is set.
func (s Segment) Sweep() bool {
	return s.Flags&FlagSweep != 0
}

// End returns the pen position after this segment, for Kinds that carry
// an explicit end point. Close and Circle do not change the pen via this
// method; the walker handles them specially.
func (s Segment) End() point.Point {
	return point.New(s.X, s.Y)
}

// List is an ordered sequence of segments, built once at widget
// construction and never mutated in place; transformations produce
// copies.
type List []Segment

// Clone returns an independent copy of the list.
func (l List) Clone() List {
	out := make(List, len(l))
	copy(out, l)
	return out
}

// WireSize is the serialised size of one Segment: a little-endian tag
// word followed by six int16 parameters, 14 bytes total.
const WireSize = 14

// MarshalWire encodes s into the 14-byte little-endian wire format: a
// 2-byte tag word (the Kind in the first byte, Flags in the second)
// followed by six int16 parameter slots in the order C1X, C1Y, C2X, C2Y,
// X, Y for Cubic; Rx, Ry, Phi, X, Y for Arc; X, Y, Rx for Circle; X, Y
// for Move/Line/Close. Unused slots are zero.
func (s Segment) MarshalWire() [WireSize]byte {
	var buf [WireSize]byte
	buf[0] = byte(s.Kind)
	buf[1] = s.Flags

	put := func(off int, v int16) {
		buf[off] = byte(v)
		buf[off+1] = byte(uint16(v) >> 8)
	}

	switch s.Kind {
	case Move, Line, Close:
		put(2, s.X)
		put(4, s.Y)
	case Cubic:
		put(2, s.C1X)
		put(4, s.C1Y)
		put(6, s.C2X)
		put(8, s.C2Y)
		put(10, s.X)
		put(12, s.Y)
	case Arc:
		put(2, s.Rx)
		put(4, s.Ry)
		put(6, s.Phi)
		put(8, s.X)
		put(10, s.Y)
	case Circle:
		put(2, s.X)
		put(4, s.Y)
		put(6, s.Rx)
	}
	return buf
}

// UnmarshalWire decodes a 14-byte wire-format segment.
func UnmarshalWire(buf [WireSize]byte) Segment {
	get := func(off int) int16 {
		return int16(uint16(buf[off]) | uint16(buf[off+1])<<8)
	}

	s := Segment{Kind: Kind(buf[0]), Flags: buf[1]}
	switch s.Kind {
	case Move, Line, Close:
		s.X = get(2)
		s.Y = get(4)
	case Cubic:
		s.C1X = get(2)
		s.C1Y = get(4)
		s.C2X = get(6)
		s.C2Y = get(8)
		s.X = get(10)
		s.Y = get(12)
	case Arc:
		s.Rx = get(2)
		s.Ry = get(4)
		s.Phi = get(6)
		s.X = get(8)
		s.Y = get(10)
	case Circle:
		s.X = get(2)
		s.Y = get(4)
		s.Rx = get(6)
	}
	return s
}
