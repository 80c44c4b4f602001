// Copyright (c) 2024-2024 by Matthias Hertel, http://www.mathertel.de
// This work is licensed under a BSD style license. See http://www.mathertel.de/License.aspx

// Package pathparse tokenizes the gfxDraw path mini-language — an
// SVG-path-like grammar restricted to signed decimal integers — into a
// flat segment.List, resolving absolute/relative addressing against a
// running cursor as it goes.
package pathparse

import (
	"github.com/mathertel/gfxDraw/segment"
)

// Parse walks text and returns the segments recognised so far together
// with the byte offset where parsing stopped. An unknown command letter,
// or a command that runs out of required numbers, stops parsing at that
// character; this is recoverable, not fatal — the caller gets back
// whatever was accumulated, per the core's error handling design.
func Parse(text string) (segment.List, int) {
	p := &parser{input: text}
	p.run()
	return p.out, p.pos
}

type parser struct {
	input string
	pos   int

	out segment.List

	curX, curY     int16 // running pen position
	startX, startY int16 // current sub-path start, for Close
	hasPoint       bool  // whether curX/curY hold a real position yet

	cmd    byte // last command letter seen, for implicit repetition
	hasCmd bool
}

func (p *parser) run() {
	for {
		p.skipSeparators()
		if p.pos >= len(p.input) {
			return
		}

		c := p.input[p.pos]
		if isCommandLetter(c) {
			p.pos++
			p.cmd = c
			p.hasCmd = true
		} else if !p.hasCmd || !isNumberStart(c) {
			// Unknown leading character, or a number with no command in
			// effect: stop, recoverably, with what we have.
			return
		}
		// else: implicit repetition of the last command.

		if !p.execute(p.cmd) {
			return
		}
	}
}

// execute consumes the parameters for one instance of cmd and appends
// the resulting segment(s). It returns false if the parameters could not
// be parsed, in which case parsing stops.
func (p *parser) execute(cmd byte) bool {
	relative := isLower(cmd)

	switch upper(cmd) {
	case 'M':
		x, y, ok := p.twoNumbers()
		if !ok {
			return false
		}
		if relative && p.hasPoint {
			x += p.curX
			y += p.curY
		}
		p.curX, p.curY = x, y
		p.startX, p.startY = x, y
		p.hasPoint = true
		p.out = append(p.out, segment.NewMove(x, y))
		// A bare repeat of M/m is treated as an implicit L/l, per the
		// SVG convention this grammar borrows.
		if relative {
			p.cmd = 'l'
		} else {
			p.cmd = 'L'
		}
		return true

	case 'L':
		x, y, ok := p.twoNumbers()
		if !ok {
			return false
		}
		if relative {
			x += p.curX
			y += p.curY
		}
		p.curX, p.curY = x, y
		p.out = append(p.out, segment.NewLine(x, y))
		return true

	case 'H':
		x, ok := p.oneNumber()
		if !ok {
			return false
		}
		if relative {
			x += p.curX
		}
		p.curX = x
		p.out = append(p.out, segment.NewLine(p.curX, p.curY))
		return true

	case 'V':
		y, ok := p.oneNumber()
		if !ok {
			return false
		}
		if relative {
			y += p.curY
		}
		p.curY = y
		p.out = append(p.out, segment.NewLine(p.curX, p.curY))
		return true

	case 'C':
		nums, ok := p.nNumbers(6)
		if !ok {
			return false
		}
		c1x, c1y, c2x, c2y, x, y := nums[0], nums[1], nums[2], nums[3], nums[4], nums[5]
		if relative {
			c1x += p.curX
			c1y += p.curY
			c2x += p.curX
			c2y += p.curY
			x += p.curX
			y += p.curY
		}
		p.curX, p.curY = x, y
		p.out = append(p.out, segment.NewCubic(c1x, c1y, c2x, c2y, x, y))
		return true

	case 'A':
		rx, ok := p.oneNumber()
		if !ok {
			return false
		}
		ry, ok := p.oneNumber()
		if !ok {
			return false
		}
		phi, ok := p.oneNumber()
		if !ok {
			return false
		}
		large, ok := p.oneFlag()
		if !ok {
			return false
		}
		sweep, ok := p.oneFlag()
		if !ok {
			return false
		}
		x, y, ok := p.twoNumbers()
		if !ok {
			return false
		}
		if relative {
			x += p.curX
			y += p.curY
		}
		p.curX, p.curY = x, y
		p.out = append(p.out, segment.NewArc(rx, ry, phi, large, sweep, x, y))
		return true

	case 'O':
		cx, cy, ok := p.twoNumbers()
		if !ok {
			return false
		}
		r, ok := p.oneNumber()
		if !ok {
			return false
		}
		if relative {
			cx += p.curX
			cy += p.curY
		}
		p.out = append(p.out, segment.NewCircle(cx, cy, r))
		return true

	case 'Z':
		p.out = append(p.out, segment.NewClose())
		p.curX, p.curY = p.startX, p.startY
		return true

	default:
		return false
	}
}
