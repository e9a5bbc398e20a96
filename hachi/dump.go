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
	"strings"
)

// String returns formatted information about the instance of the emulator.
func (c *Chip8) String() string {
	return fmt.Sprintf("Chip8{Memory: %v bytes, Registers: [% 02X] I: %04X, "+
		"Stack: % 04X, PC: %04X, DT: %02X, ST: %02X, Screen: %v*%v}",
		len(c.Memory), c.V, c.I, c.Stack, c.PC, c.DT, c.ST,
		ScreenWidth, ScreenHeight)
}

// Dump returns a human readable snapshot of the registers, the stack, the
// timers, the instruction at PC and the screen. The format is meant for
// debugging and may change.
func (c *Chip8) Dump() string {
	var sb strings.Builder

	for i, v := range c.V {
		fmt.Fprintf(&sb, "V%X:%02X", i, v)
		if i%8 == 7 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}
	fmt.Fprintf(&sb, "I:%04X PC:%04X DT:%02X ST:%02X\n", c.I, c.PC, c.DT, c.ST)

	sb.WriteString("Stack:")
	for i := len(c.Stack) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, " %04X", c.Stack[i])
	}
	sb.WriteByte('\n')

	if int(c.PC) <= MemorySize-2 {
		word := uint16(c.Memory[c.PC])<<8 | uint16(c.Memory[c.PC+1])
		in, _ := Decode(word)
		fmt.Fprintf(&sb, "Next: %04X %v\n", word, in)
	}
	if c.halt != nil {
		fmt.Fprintf(&sb, "Halted: %v\n", c.halt)
	}

	border := "+" + strings.Repeat("-", ScreenWidth) + "+\n"
	sb.WriteString(border)
	for _, line := range strings.SplitAfter(c.Screen.String(), "\n") {
		if line == "" {
			continue
		}
		sb.WriteString("|" + strings.TrimSuffix(line, "\n") + "|\n")
	}
	sb.WriteString(border)
	return sb.String()
}
