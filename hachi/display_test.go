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
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisplay_DrawRow(t *testing.T) {
	var d Display

	assert.False(t, d.drawRow(0, 0, 0xA5))
	assert.True(t, d.Pixel(0, 0))
	assert.False(t, d.Pixel(1, 0))
	assert.True(t, d.Pixel(2, 0))
	assert.True(t, d.Pixel(7, 0))

	// overlapping lit pixels collide and turn off
	assert.True(t, d.drawRow(0, 0, 0x80))
	assert.False(t, d.Pixel(0, 0))
	assert.True(t, d.Pixel(2, 0))

	// unlit sprite bits never collide
	assert.False(t, d.drawRow(0, 0, 0x40))
}

func TestDisplay_Clipping(t *testing.T) {
	var d Display

	assert.False(t, d.drawRow(ScreenWidth-2, 0, 0xFF))
	assert.True(t, d.Pixel(ScreenWidth-1, 0))
	assert.False(t, d.Pixel(0, 0))
	assert.False(t, d.Pixel(0, 1))

	assert.False(t, d.drawRow(0, ScreenHeight, 0xFF))
	assert.False(t, d.Pixel(ScreenWidth, 0))
	assert.False(t, d.Pixel(-1, 0))
}

func TestDisplay_Clear(t *testing.T) {
	var d Display
	d.drawRow(8, 8, 0xFF)
	d.Clear()
	assert.Equal(t, Display{}, d)
}

func TestDisplay_RGBA(t *testing.T) {
	var d Display
	d[1][2] = true

	frame := make([]byte, ScreenWidth*ScreenHeight*4)
	d.RGBA(frame)

	lit := (1*ScreenWidth + 2) * 4
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, frame[lit:lit+4])
	assert.Equal(t, []byte{0, 0, 0, 0xFF}, frame[0:4])
}

func TestDisplay_Image(t *testing.T) {
	var d Display
	d[31][63] = true

	img := d.Image()
	assert.Equal(t, ScreenWidth, img.Bounds().Dx())
	assert.Equal(t, ScreenHeight, img.Bounds().Dy())
	assert.Equal(t, uint8(0xFF), img.GrayAt(63, 31).Y)
	assert.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
}

func TestDisplay_String(t *testing.T) {
	var d Display
	d[0][0] = true

	lines := strings.Split(strings.TrimSuffix(d.String(), "\n"), "\n")
	assert.Len(t, lines, ScreenHeight)
	assert.True(t, strings.HasPrefix(lines[0], "█ "))
	assert.Equal(t, strings.Repeat(" ", ScreenWidth), lines[1])
}
