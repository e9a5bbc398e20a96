/*
	Copyright 2015 Franc[e]sco (lolisamurai@tfwno.gf)
	This file is part of go-hachi.
	go-hachi is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.
	go-hachi is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.
	You should have received a copy of the GNU General Public License
	along with go-hachi. If not, see <http://www.gnu.org/licenses/>.
*/

package hachi

import (
	"image"
	"strings"
)

// Screen size in pixels.
const (
	ScreenWidth  = 64
	ScreenHeight = 32
)

// Display is the monochrome screen buffer, indexed as [y][x].
// It only changes through Clear and sprite drawing, which XORs pixels.
type Display [ScreenHeight][ScreenWidth]bool

// Clear turns every pixel off.
func (d *Display) Clear() { *d = Display{} }

// Pixel reports whether the pixel at x, y is lit. Coordinates outside the
// screen are never lit.
func (d *Display) Pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= ScreenWidth || y >= ScreenHeight {
		return false
	}
	return d[y][x]
}

// drawRow XORs one 8-pixel sprite row at x, y, clipping whatever falls off the
// right edge. Returns true if a lit pixel was turned off.
func (d *Display) drawRow(x, y int, row byte) (collision bool) {
	if y >= ScreenHeight {
		return false
	}
	for bit := 0; bit < 8; bit++ {
		if row&(0x80>>bit) == 0 {
			continue
		}
		px := x + bit
		if px >= ScreenWidth {
			break
		}
		if d[y][px] {
			collision = true
		}
		d[y][px] = !d[y][px]
	}
	return
}

// RGBA writes the screen into frame as 8-bit RGBA pixels, row by row. Lit
// pixels are white, the rest black. frame must hold at least
// ScreenWidth*ScreenHeight*4 bytes.
func (d *Display) RGBA(frame []byte) {
	for y := range d {
		for x, lit := range d[y] {
			i := (y*ScreenWidth + x) * 4
			var v byte
			if lit {
				v = 0xFF
			}
			frame[i], frame[i+1], frame[i+2], frame[i+3] = v, v, v, 0xFF
		}
	}
}

// Image returns a grayscale copy of the screen.
func (d *Display) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	for y := range d {
		for x, lit := range d[y] {
			if lit {
				img.Pix[y*img.Stride+x] = 0xFF
			}
		}
	}
	return img
}

// String renders the screen as text, one line per row.
func (d *Display) String() string {
	var sb strings.Builder
	sb.Grow((ScreenWidth + 1) * ScreenHeight)
	for y := range d {
		for _, lit := range d[y] {
			if lit {
				sb.WriteRune('█')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
