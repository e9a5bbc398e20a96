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

// Nibbles returns width nibbles of word starting at nibble index, right-aligned.
// Nibble 0 is the most significant one, so Nibbles(0xABCD, 1, 2) == 0xBC.
// It panics if width is 0 or the range doesn't fit in 16 bits, which is always
// a bug in the caller.
func Nibbles(word uint16, index, width uint8) uint16 {
	if width == 0 || width > 4 || index > 3 || index+width > 4 {
		panic(fmt.Sprintf("hachi: invalid nibble range (index %v, width %v)",
			index, width))
	}
	shift := (4 - index - width) * 4
	mask := uint16(0xFFFF) >> (16 - width*4)
	return word >> shift & mask
}

// Nibble returns the nibble at index.
func Nibble(word uint16, index uint8) uint8 {
	return uint8(Nibbles(word, index, 1))
}
