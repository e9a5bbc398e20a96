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

import "fmt"

// An Instruction is a decoded CHIP-8 instruction.
// The set of implementations is closed: every type in this file, plus RawData
// for words that don't decode to anything.
type Instruction interface {
	// Returns the 16-bit word the instruction encodes to.
	Opcode() uint16
	// Returns a pseudo-asm representation of the instruction.
	String() string
	// Returns a detailed description of what the instruction does.
	Description() string

	instruction()
}

func encodeNNN(op, nnn uint16) uint16 { return op<<12 | nnn&0x0FFF }

func encodeXKK(op uint16, x, kk uint8) uint16 {
	return op<<12 | uint16(x&0xF)<<8 | uint16(kk)
}

func encodeXYN(op uint16, x, y, n uint8) uint16 {
	return op<<12 | uint16(x&0xF)<<8 | uint16(y&0xF)<<4 | uint16(n&0xF)
}

// -----------------------------------------------------------------------------

// RawData is the unrecognized marker. It holds a word that doesn't decode to
// any known instruction.
type RawData struct{ Word uint16 }

func (i RawData) instruction()        {}
func (i RawData) Opcode() uint16      { return i.Word }
func (i RawData) String() string      { return fmt.Sprintf("DW %04X", i.Word) }
func (i RawData) Description() string { return "Unknown / Raw Data" }

// -----------------------------------------------------------------------------

type ClearScreen struct{}

func (i ClearScreen) instruction()        {}
func (i ClearScreen) Opcode() uint16      { return 0x00E0 }
func (i ClearScreen) String() string      { return "CLS" }
func (i ClearScreen) Description() string { return "00E0: Clears the screen." }

//

type Return struct{}

func (i Return) instruction()   {}
func (i Return) Opcode() uint16 { return 0x00EE }
func (i Return) String() string { return "RET" }
func (i Return) Description() string {
	return "00EE: Returns from a subroutine."
}

//

type Jump struct{ Address uint16 }

func (i Jump) instruction()        {}
func (i Jump) Opcode() uint16      { return encodeNNN(0x1, i.Address) }
func (i Jump) String() string      { return fmt.Sprintf("JP %03X", i.Address) }
func (i Jump) Description() string { return "1NNN: Jumps to address NNN." }

//

type Call struct{ Address uint16 }

func (i Call) instruction()        {}
func (i Call) Opcode() uint16      { return encodeNNN(0x2, i.Address) }
func (i Call) String() string      { return fmt.Sprintf("CALL %03X", i.Address) }
func (i Call) Description() string { return "2NNN: Calls subroutine at NNN." }

//

type SkipEqImm struct{ Register, Value uint8 }

func (i SkipEqImm) instruction()   {}
func (i SkipEqImm) Opcode() uint16 { return encodeXKK(0x3, i.Register, i.Value) }
func (i SkipEqImm) String() string {
	return fmt.Sprintf("SE V%1X,%02X", i.Register, i.Value)
}
func (i SkipEqImm) Description() string {
	return "3XNN: Skips the next instruction if VX equals NN."
}

//

type SkipNeqImm struct{ Register, Value uint8 }

func (i SkipNeqImm) instruction()   {}
func (i SkipNeqImm) Opcode() uint16 { return encodeXKK(0x4, i.Register, i.Value) }
func (i SkipNeqImm) String() string {
	return fmt.Sprintf("SNE V%1X,%02X", i.Register, i.Value)
}
func (i SkipNeqImm) Description() string {
	return "4XNN: Skips the next instruction if VX doesn't equal NN."
}

//

type SkipEqReg struct{ X, Y uint8 }

func (i SkipEqReg) instruction()   {}
func (i SkipEqReg) Opcode() uint16 { return encodeXYN(0x5, i.X, i.Y, 0) }
func (i SkipEqReg) String() string { return fmt.Sprintf("SE V%1X,V%1X", i.X, i.Y) }
func (i SkipEqReg) Description() string {
	return "5XY0: Skips the next instruction if VX equals VY."
}

//

type LoadImm struct{ Register, Value uint8 }

func (i LoadImm) instruction()   {}
func (i LoadImm) Opcode() uint16 { return encodeXKK(0x6, i.Register, i.Value) }
func (i LoadImm) String() string {
	return fmt.Sprintf("LD V%1X,%02X", i.Register, i.Value)
}
func (i LoadImm) Description() string { return "6XNN: Sets VX to NN." }

//

type AddImm struct{ Register, Value uint8 }

func (i AddImm) instruction()   {}
func (i AddImm) Opcode() uint16 { return encodeXKK(0x7, i.Register, i.Value) }
func (i AddImm) String() string {
	return fmt.Sprintf("ADD V%1X,%02X", i.Register, i.Value)
}
func (i AddImm) Description() string {
	return "7XNN: Adds NN to VX. VF is not affected."
}

//

type Move struct{ X, Y uint8 }

func (i Move) instruction()   {}
func (i Move) Opcode() uint16 { return encodeXYN(0x8, i.X, i.Y, 0x0) }
func (i Move) String() string { return fmt.Sprintf("LD V%1X,V%1X", i.X, i.Y) }
func (i Move) Description() string {
	return "8XY0: Sets VX to the value of VY."
}

//

type Or struct{ X, Y uint8 }

func (i Or) instruction()   {}
func (i Or) Opcode() uint16 { return encodeXYN(0x8, i.X, i.Y, 0x1) }
func (i Or) String() string { return fmt.Sprintf("OR V%1X,V%1X", i.X, i.Y) }
func (i Or) Description() string {
	return "8XY1: Sets VX to VX | VY (bit-wise OR)."
}

//

type And struct{ X, Y uint8 }

func (i And) instruction()   {}
func (i And) Opcode() uint16 { return encodeXYN(0x8, i.X, i.Y, 0x2) }
func (i And) String() string { return fmt.Sprintf("AND V%1X,V%1X", i.X, i.Y) }
func (i And) Description() string {
	return "8XY2: Sets VX to VX & VY (bit-wise AND)."
}

//

type Xor struct{ X, Y uint8 }

func (i Xor) instruction()   {}
func (i Xor) Opcode() uint16 { return encodeXYN(0x8, i.X, i.Y, 0x3) }
func (i Xor) String() string { return fmt.Sprintf("XOR V%1X,V%1X", i.X, i.Y) }
func (i Xor) Description() string {
	return "8XY3: Sets VX to VX ^ VY (bit-wise XOR)."
}

//

type Add struct{ X, Y uint8 }

func (i Add) instruction()   {}
func (i Add) Opcode() uint16 { return encodeXYN(0x8, i.X, i.Y, 0x4) }
func (i Add) String() string { return fmt.Sprintf("ADD V%1X,V%1X", i.X, i.Y) }
func (i Add) Description() string {
	return "8XY4: VX += VY. VF = 1 when there's a carry, 0 when there isn't."
}

//

type SubForward struct{ X, Y uint8 }

func (i SubForward) instruction()   {}
func (i SubForward) Opcode() uint16 { return encodeXYN(0x8, i.X, i.Y, 0x5) }
func (i SubForward) String() string {
	return fmt.Sprintf("SUB V%1X,V%1X", i.X, i.Y)
}
func (i SubForward) Description() string {
	return "8XY5: VX -= VY. VF = 0 when there's a borrow, 1 when there isn't."
}

//

type ShiftRight struct{ X, Y uint8 }

func (i ShiftRight) instruction()   {}
func (i ShiftRight) Opcode() uint16 { return encodeXYN(0x8, i.X, i.Y, 0x6) }
func (i ShiftRight) String() string { return fmt.Sprintf("SHR V%1X", i.X) }
func (i ShiftRight) Description() string {
	return "8XY6: VX >>= 1. VY is ignored unless the ShiftUsesVY quirk is on."
}

//

type SubBackward struct{ X, Y uint8 }

func (i SubBackward) instruction()   {}
func (i SubBackward) Opcode() uint16 { return encodeXYN(0x8, i.X, i.Y, 0x7) }
func (i SubBackward) String() string {
	return fmt.Sprintf("SUBN V%1X,V%1X", i.X, i.Y)
}
func (i SubBackward) Description() string {
	return "8XY7: VX = VY - VX. VF = 0 when there's a borrow, " +
		"1 when there isn't."
}

//

type ShiftLeft struct{ X, Y uint8 }

func (i ShiftLeft) instruction()   {}
func (i ShiftLeft) Opcode() uint16 { return encodeXYN(0x8, i.X, i.Y, 0xE) }
func (i ShiftLeft) String() string { return fmt.Sprintf("SHL V%1X", i.X) }
func (i ShiftLeft) Description() string {
	return "8XYE: VX <<= 1. VY is ignored unless the ShiftUsesVY quirk is on."
}

//

type SkipNeqReg struct{ X, Y uint8 }

func (i SkipNeqReg) instruction()   {}
func (i SkipNeqReg) Opcode() uint16 { return encodeXYN(0x9, i.X, i.Y, 0) }
func (i SkipNeqReg) String() string {
	return fmt.Sprintf("SNE V%1X,V%1X", i.X, i.Y)
}
func (i SkipNeqReg) Description() string {
	return "9XY0: Skips the next instruction if VX doesn't equal VY."
}

//

type LoadIndex struct{ Address uint16 }

func (i LoadIndex) instruction()        {}
func (i LoadIndex) Opcode() uint16      { return encodeNNN(0xA, i.Address) }
func (i LoadIndex) String() string      { return fmt.Sprintf("LD I,%03X", i.Address) }
func (i LoadIndex) Description() string { return "ANNN: Sets I to the address NNN." }

//

type Random struct{ Register, Value uint8 }

func (i Random) instruction()   {}
func (i Random) Opcode() uint16 { return encodeXKK(0xC, i.Register, i.Value) }
func (i Random) String() string {
	return fmt.Sprintf("RND V%1X,%02X", i.Register, i.Value)
}
func (i Random) Description() string {
	return "CXNN: Sets VX to a random number (0-FF) & NN (bit-wise AND)."
}

//

type Draw struct{ X, Y, Height uint8 }

func (i Draw) instruction()   {}
func (i Draw) Opcode() uint16 { return encodeXYN(0xD, i.X, i.Y, i.Height) }
func (i Draw) String() string {
	return fmt.Sprintf("DRW V%1X,V%1X,%1X", i.X, i.Y, i.Height)
}
func (i Draw) Description() string {
	return "DXYN: Draws N rows of sprite pointed by I at VX,VY."
}

//

type SkipKeyPressed struct{ Register uint8 }

func (i SkipKeyPressed) instruction()   {}
func (i SkipKeyPressed) Opcode() uint16 { return encodeXKK(0xE, i.Register, 0x9E) }
func (i SkipKeyPressed) String() string { return fmt.Sprintf("SKP V%1X", i.Register) }
func (i SkipKeyPressed) Description() string {
	return "EX9E: Skips the next instruction if the " +
		"key stored in VX is pressed."
}

//

type SkipKeyNotPressed struct{ Register uint8 }

func (i SkipKeyNotPressed) instruction() {}
func (i SkipKeyNotPressed) Opcode() uint16 {
	return encodeXKK(0xE, i.Register, 0xA1)
}
func (i SkipKeyNotPressed) String() string {
	return fmt.Sprintf("SKNP V%1X", i.Register)
}
func (i SkipKeyNotPressed) Description() string {
	return "EXA1: Skips the next instruction if the key stored " +
		"in VX isn't pressed."
}

//

type LoadDelay struct{ Register uint8 }

func (i LoadDelay) instruction()   {}
func (i LoadDelay) Opcode() uint16 { return encodeXKK(0xF, i.Register, 0x07) }
func (i LoadDelay) String() string { return fmt.Sprintf("LD V%1X,DT", i.Register) }
func (i LoadDelay) Description() string {
	return "FX07: Sets VX to the value of the delay timer."
}

//

type WaitKey struct{ Register uint8 }

func (i WaitKey) instruction()   {}
func (i WaitKey) Opcode() uint16 { return encodeXKK(0xF, i.Register, 0x0A) }
func (i WaitKey) String() string { return fmt.Sprintf("LD V%1X,K", i.Register) }
func (i WaitKey) Description() string {
	return "FX0A: A key press is awaited, and then key number is stored in VX."
}

//

type StoreDelay struct{ Register uint8 }

func (i StoreDelay) instruction()   {}
func (i StoreDelay) Opcode() uint16 { return encodeXKK(0xF, i.Register, 0x15) }
func (i StoreDelay) String() string { return fmt.Sprintf("LD DT,V%1X", i.Register) }
func (i StoreDelay) Description() string {
	return "FX15: Sets the delay timer to VX."
}

//

type StoreSound struct{ Register uint8 }

func (i StoreSound) instruction()   {}
func (i StoreSound) Opcode() uint16 { return encodeXKK(0xF, i.Register, 0x18) }
func (i StoreSound) String() string { return fmt.Sprintf("LD ST,V%1X", i.Register) }
func (i StoreSound) Description() string {
	return "FX18: Sets the sound timer to VX."
}

//

type AddToIndex struct{ Register uint8 }

func (i AddToIndex) instruction()   {}
func (i AddToIndex) Opcode() uint16 { return encodeXKK(0xF, i.Register, 0x1E) }
func (i AddToIndex) String() string { return fmt.Sprintf("ADD I,V%1X", i.Register) }
func (i AddToIndex) Description() string {
	return "FX1E: Adds VX to I. VF = 1 when I overflows 16 bits, 0 otherwise."
}

//

type FontChar struct{ Register uint8 }

func (i FontChar) instruction()   {}
func (i FontChar) Opcode() uint16 { return encodeXKK(0xF, i.Register, 0x29) }
func (i FontChar) String() string { return fmt.Sprintf("LD F,V%1X", i.Register) }
func (i FontChar) Description() string {
	return "FX29: Sets I to the location of the sprite for the character in VX."
}

//

type StoreBCD struct{ Register uint8 }

func (i StoreBCD) instruction()   {}
func (i StoreBCD) Opcode() uint16 { return encodeXKK(0xF, i.Register, 0x33) }
func (i StoreBCD) String() string { return fmt.Sprintf("LD B,V%1X", i.Register) }
func (i StoreBCD) Description() string {
	return "FX33: Store BCD representation of VX in memory at I, I+1, and I+2."
}

//

type StoreRange struct{ Register uint8 }

func (i StoreRange) instruction()   {}
func (i StoreRange) Opcode() uint16 { return encodeXKK(0xF, i.Register, 0x55) }
func (i StoreRange) String() string { return fmt.Sprintf("LD [I],V%1X", i.Register) }
func (i StoreRange) Description() string {
	return "FX55: Stores V0 to VX in memory starting at address I."
}

//

type LoadRange struct{ Register uint8 }

func (i LoadRange) instruction()   {}
func (i LoadRange) Opcode() uint16 { return encodeXKK(0xF, i.Register, 0x65) }
func (i LoadRange) String() string { return fmt.Sprintf("LD V%1X,[I]", i.Register) }
func (i LoadRange) Description() string {
	return "FX65: Fills V0 to VX with values from memory starting at address I."
}
