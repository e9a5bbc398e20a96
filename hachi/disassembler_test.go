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
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisassemble(t *testing.T) {
	program := []byte{
		0xA2, 0x08, // 200: LD I,208
		0x22, 0x06, // 202: CALL 206
		0x12, 0x02, // 204: JP 202
		0x00, 0xEE, // 206: RET
		0x48, 0x49, // 208: data
		0xFF, 0xFF, // 20A: data
		0x7F, // 20C: odd byte
	}

	lines := Disassemble(program)
	assert.Len(t, lines, 7)

	assert.Equal(t, uint16(0x200), lines[0].Address)
	assert.Equal(t, "LD I,208", lines[0].String())
	assert.Equal(t, "", lines[0].Label)
	assert.False(t, lines[0].Data())

	assert.Equal(t, "L202", lines[1].Label)
	assert.Equal(t, "L206", lines[3].Label)
	assert.Equal(t, "L208", lines[4].Label)

	assert.Equal(t, "SNE V8,49", lines[4].String())
	assert.Equal(t, "DW FFFF", lines[5].String())
	assert.True(t, lines[5].Data())
	assert.Equal(t, "", lines[5].ASCII())

	assert.Equal(t, uint16(0x20C), lines[6].Address)
	assert.Equal(t, 1, lines[6].Size())
	assert.Equal(t, "DB 7F", lines[6].String())
	assert.True(t, lines[6].Data())
	assert.NotEmpty(t, lines[6].Description())
}

func TestDisassemble_ASCII(t *testing.T) {
	lines := Disassemble([]byte("HI"))
	assert.Len(t, lines, 1)
	assert.Equal(t, "HI", lines[0].ASCII())
	assert.Equal(t, 2, lines[0].Size())
}

func TestDisassemble_Empty(t *testing.T) {
	assert.Len(t, Disassemble(nil), 0)
}

func TestDisassemble_MatchesDecode(t *testing.T) {
	program := make([]byte, 0, 512)
	for w := 0; w < 0x10000; w += 0x101 {
		program = append(program, byte(w>>8), byte(w))
	}

	for i, line := range Disassemble(program) {
		word := uint16(program[i*2])<<8 | uint16(program[i*2+1])
		in, _ := Decode(word)
		assert.Equal(t, in, line.Instruction)
		assert.Equal(t, uint16(ProgramStart+i*2), line.Address)
	}
}
