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

// Decode maps a 16-bit word to the instruction it encodes.
// It is total: words that don't match any instruction return RawData and
// false.
func Decode(word uint16) (Instruction, bool) {
	x := Nibble(word, 1)
	y := Nibble(word, 2)
	n := Nibble(word, 3)
	kk := uint8(Nibbles(word, 2, 2))
	nnn := Nibbles(word, 1, 3)

	switch Nibble(word, 0) {
	case 0x0:
		switch nnn {
		case 0x0E0:
			return ClearScreen{}, true
		case 0x0EE:
			return Return{}, true
		}
	case 0x1:
		return Jump{nnn}, true
	case 0x2:
		return Call{nnn}, true
	case 0x3:
		return SkipEqImm{x, kk}, true
	case 0x4:
		return SkipNeqImm{x, kk}, true
	case 0x5:
		if n == 0 {
			return SkipEqReg{x, y}, true
		}
	case 0x6:
		return LoadImm{x, kk}, true
	case 0x7:
		return AddImm{x, kk}, true
	case 0x8:
		switch n {
		case 0x0:
			return Move{x, y}, true
		case 0x1:
			return Or{x, y}, true
		case 0x2:
			return And{x, y}, true
		case 0x3:
			return Xor{x, y}, true
		case 0x4:
			return Add{x, y}, true
		case 0x5:
			return SubForward{x, y}, true
		case 0x6:
			return ShiftRight{x, y}, true
		case 0x7:
			return SubBackward{x, y}, true
		case 0xE:
			return ShiftLeft{x, y}, true
		}
	case 0x9:
		if n == 0 {
			return SkipNeqReg{x, y}, true
		}
	case 0xA:
		return LoadIndex{nnn}, true
	case 0xC:
		return Random{x, kk}, true
	case 0xD:
		return Draw{x, y, n}, true
	case 0xE:
		switch kk {
		case 0x9E:
			return SkipKeyPressed{x}, true
		case 0xA1:
			return SkipKeyNotPressed{x}, true
		}
	case 0xF:
		switch kk {
		case 0x07:
			return LoadDelay{x}, true
		case 0x0A:
			return WaitKey{x}, true
		case 0x15:
			return StoreDelay{x}, true
		case 0x18:
			return StoreSound{x}, true
		case 0x1E:
			return AddToIndex{x}, true
		case 0x29:
			return FontChar{x}, true
		case 0x33:
			return StoreBCD{x}, true
		case 0x55:
			return StoreRange{x}, true
		case 0x65:
			return LoadRange{x}, true
		}
	}

	// SYS NNN and JP V0,NNN end up here too
	return RawData{word}, false
}
