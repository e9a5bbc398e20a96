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

func TestChip8Settings_Validate(t *testing.T) {
	tests := []struct {
		name  string
		speed int
		valid bool
	}{
		{"default", 700, true},
		{"slowest", 1, true},
		{"fastest", maxClockSpeed, true},
		{"zero", 0, false},
		{"negative", -60, false},
		{"too fast", maxClockSpeed + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Chip8Settings{ClockSpeed: tt.speed}
			err := s.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	assert.NoError(t, DefaultSettings.Validate())
	assert.Equal(t, Quirks{}, DefaultSettings.Quirks)
	assert.False(t, DefaultSettings.WrapAddresses)
}
