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

func TestNibbles(t *testing.T) {
	tests := []struct {
		name         string
		index, width uint8
		expected     uint16
	}{
		{"top nibble", 0, 1, 0xA},
		{"second nibble", 1, 1, 0xB},
		{"third nibble", 2, 1, 0xC},
		{"last nibble", 3, 1, 0xD},
		{"middle byte", 1, 2, 0xBC},
		{"low byte", 2, 2, 0xCD},
		{"address", 1, 3, 0xBCD},
		{"whole word", 0, 4, 0xABCD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Nibbles(0xABCD, tt.index, tt.width))
		})
	}
}

func TestNibbles_RoundTrip(t *testing.T) {
	for w := 0; w <= 0xFFFF; w++ {
		word := uint16(w)
		recomposed := uint16(Nibble(word, 0))<<12 | uint16(Nibble(word, 1))<<8 |
			uint16(Nibble(word, 2))<<4 | uint16(Nibble(word, 3))
		if recomposed != word || Nibbles(word, 0, 4) != word {
			t.Fatalf("nibble round trip failed for %04X", word)
		}
	}
}

func TestNibbles_InvalidRange(t *testing.T) {
	tests := []struct {
		name         string
		index, width uint8
	}{
		{"zero width", 0, 0},
		{"too wide", 0, 5},
		{"past the end", 3, 2},
		{"index out of range", 4, 1},
		{"overflowing index", 255, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				assert.NotNil(t, recover())
			}()
			Nibbles(0xFFFF, tt.index, tt.width)
		})
	}
}
