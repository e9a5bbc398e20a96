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
	"fmt"

	"github.com/retroenv/retrogolib/set"
)

// A Line is one disassembled instruction, or 1 or 2 bytes of data that don't
// decode to anything.
type Line struct {
	Address     uint16
	Bytes       []byte
	Instruction Instruction
	// Label is set when another instruction in the program jumps, calls or
	// points I to this address.
	Label string
}

// Size returns the size of the line in bytes.
func (l Line) Size() int { return len(l.Bytes) }

// Data returns true if the bytes didn't decode to an instruction.
func (l Line) Data() bool {
	_, raw := l.Instruction.(RawData)
	return raw
}

// ASCII returns the ASCII representation of the raw data for this line.
// Returns an empty string if the data is not printable ascii.
func (l Line) ASCII() (res string) {
	if isPrintableASCII(l.Bytes) {
		res = string(l.Bytes)
	}
	return
}

func (l Line) String() string {
	if len(l.Bytes) == 1 {
		return fmt.Sprintf("DB %02X", l.Bytes[0])
	}
	return l.Instruction.String()
}

// Description returns a detailed description of the instruction.
func (l Line) Description() string { return l.Instruction.Description() }

// -----------------------------------------------------------------------------

// Disassemble disassembles a program image as it would be loaded at 0x200.
// It decodes every aligned word in order, so it cannot tell code from data:
// words that don't decode are returned as RawData and a trailing odd byte as
// a 1-byte line.
func Disassemble(b []byte) []Line {
	lines := make([]Line, 0, len(b)/2+1)
	targets := set.New[uint16]()

	for i := 0; i < len(b); i += 2 {
		address := uint16(ProgramStart + i)

		if i+1 >= len(b) {
			lines = append(lines, Line{
				Address:     address,
				Bytes:       b[i : i+1],
				Instruction: RawData{uint16(b[i])},
			})
			break
		}

		word := uint16(b[i])<<8 | uint16(b[i+1])
		in, _ := Decode(word)
		switch in := in.(type) {
		case Jump:
			targets.Add(in.Address)
		case Call:
			targets.Add(in.Address)
		case LoadIndex:
			targets.Add(in.Address)
		}

		lines = append(lines, Line{
			Address:     address,
			Bytes:       b[i : i+2],
			Instruction: in,
		})
	}

	for i := range lines {
		if targets.Contains(lines[i].Address) {
			lines[i].Label = fmt.Sprintf("L%03X", lines[i].Address)
		}
	}
	return lines
}

func isPrintableASCII(s []byte) bool {
	for _, c := range s {
		if c < 32 || c > 126 {
			return false
		}
	}
	return true
}
