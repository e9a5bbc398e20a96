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

package export

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/hahohihu/chip8/hachi"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newTestChip8(t *testing.T) *hachi.Chip8 {
	t.Helper()
	c, err := hachi.New("null", &hachi.Chip8Settings{Logger: log.NewTestLogger(t)})
	assert.NoError(t, err)
	return c
}

func TestListing(t *testing.T) {
	lines := hachi.Disassemble([]byte{0x12, 0x02, 0x00, 0xE0, 0x48, 0x49, 0x7F})

	var buf bytes.Buffer
	assert.NoError(t, Listing(&buf, lines))

	out := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, out, 5)
	assert.True(t, strings.HasPrefix(out[0], "addr"))
	assert.Contains(t, out[1], "JP 202")
	assert.Contains(t, out[2], "L202")
	assert.Contains(t, out[2], "CLS")
	assert.Contains(t, out[3], "`HI`")
	assert.Contains(t, out[4], "DB 7F")
}

func TestScreenshot(t *testing.T) {
	var screen hachi.Display
	screen[1][2] = true

	var buf bytes.Buffer
	assert.NoError(t, Screenshot(&buf, &screen, 3))

	img, err := png.Decode(&buf)
	assert.NoError(t, err)
	assert.Equal(t, hachi.ScreenWidth*3, img.Bounds().Dx())
	assert.Equal(t, hachi.ScreenHeight*3, img.Bounds().Dy())

	lit, _, _, _ := img.At(2*3+1, 1*3+1).RGBA()
	off, _, _, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xFFFF), lit)
	assert.Equal(t, uint32(0), off)

	assert.Error(t, Screenshot(&buf, &screen, 0))
}

func TestNewState(t *testing.T) {
	c := newTestChip8(t)
	c.LoadRaw([]byte{0x22, 0x04, 0x00, 0x00, 0x6A, 0x12, 0x00, 0xE0})
	assert.NoError(t, c.Simulate(2))

	s := NewState(c)
	assert.Equal(t, uint16(0x206), s.PC)
	assert.Equal(t, uint8(0x12), s.V[0xA])
	assert.Equal(t, []uint16{0x202}, s.Stack)
	assert.Equal(t, "CLS", s.Next)
	assert.Equal(t, "", s.Halt)

	c.Stack[0] = 0x300
	assert.Equal(t, []uint16{0x202}, s.Stack)
}

func TestDot(t *testing.T) {
	c := newTestChip8(t)
	c.Stack = []uint16{0x204}

	var buf bytes.Buffer
	Dot(&buf, c)
	assert.Contains(t, buf.String(), "digraph")
}
