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

// Package export writes the emulator state and programs in formats meant for
// people and other tools: disassembly listings, screenshots and graphviz
// dumps.
package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"text/tabwriter"

	"github.com/bradleyjkemp/memviz"
	"github.com/hahohihu/chip8/hachi"
	"golang.org/x/image/draw"
)

// Listing writes a disassembly listing of lines as a table.
func Listing(w io.Writer, lines []hachi.Line) error {
	tw := new(tabwriter.Writer)
	tw.Init(w, 8, 8, 0, '\t', 0)
	_, _ = fmt.Fprintln(tw, "addr\tlabel\topcode\tpseudo-code\tascii\tdescription\t")

	for _, l := range lines {
		asciitext := ""
		if ascii := l.ASCII(); ascii != "" {
			asciitext = fmt.Sprintf("`%s`", ascii)
		}

		opcode := fmt.Sprintf("%04X", l.Instruction.Opcode())
		if l.Size() == 1 {
			opcode = fmt.Sprintf("%02X", l.Bytes[0])
		}

		_, _ = fmt.Fprintf(tw, "%04X\t%s\t%s\t%v\t%s\t%s\t\n",
			l.Address, l.Label, opcode, l, asciitext, l.Description())
	}
	return tw.Flush()
}

// Screenshot writes the screen as a PNG, every pixel scaled to a scale*scale
// square.
func Screenshot(w io.Writer, screen *hachi.Display, scale int) error {
	if scale <= 0 {
		return fmt.Errorf("invalid scale %d", scale)
	}
	src := screen.Image()
	dst := image.NewGray(image.Rect(0, 0,
		hachi.ScreenWidth*scale, hachi.ScreenHeight*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// State is the part of the machine state included in graphviz dumps. Memory
// and the screen are left out, they'd drown everything else.
type State struct {
	V     [16]uint8
	I     uint16
	PC    uint16
	DT    uint8
	ST    uint8
	Stack []uint16
	Next  string
	Halt  string
}

// NewState copies the state of c.
func NewState(c *hachi.Chip8) *State {
	s := &State{
		V:     c.V,
		I:     c.I,
		PC:    c.PC,
		DT:    c.DT,
		ST:    c.ST,
		Stack: append([]uint16(nil), c.Stack...),
	}
	if int(c.PC) <= hachi.MemorySize-2 {
		word := uint16(c.Memory[c.PC])<<8 | uint16(c.Memory[c.PC+1])
		in, _ := hachi.Decode(word)
		s.Next = in.String()
	}
	if err := c.Halted(); err != nil {
		s.Halt = err.Error()
	}
	return s
}

// Dot writes a graphviz graph of the state of c.
func Dot(w io.Writer, c *hachi.Chip8) {
	memviz.Map(w, NewState(c))
}
