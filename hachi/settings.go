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
	"time"

	"github.com/retroenv/retrogolib/log"
)

// Quirks toggles behaviour that differs between the original COSMAC VIP
// interpreter and the interpreters most programs are written for today.
// The zero value is the modern behaviour.
type Quirks struct {
	// SHR/SHL store the shifted out bit in VF.
	ShiftSetsFlag bool
	// SHR/SHL shift VY into VX instead of shifting VX in place.
	ShiftUsesVY bool
	// LD [I],VX and LD VX,[I] leave I pointing past the last byte copied.
	LoadStoreIncrementsIndex bool
	// DRW sets VF to 1 when a sprite erases a lit pixel and to 0 otherwise.
	// When false, DRW leaves the registers untouched.
	DrawSetsCollision bool
}

// Chip8Settings holds the configuration parameters for a Chip8 instance.
type Chip8Settings struct {
	// Seed of the random number generator used by RND.
	Seed int64
	// Instructions per second executed by Run. Drivers that run their own
	// loop use it to decide how many cycles fit in a frame.
	ClockSpeed int
	// Baseline for the 60hz timers. If zero, the first cycle sets it.
	Epoch time.Time
	// Makes an odd program counter a fatal error.
	StrictAlignment bool
	// Masks addresses computed from I to 12 bits instead of failing with an
	// AccessErr when they run past the end of memory.
	WrapAddresses bool
	Quirks        Quirks
	// Logs every executed instruction at debug level.
	Trace bool
	// Logger used by the emulator. A default logger is created when nil.
	Logger *log.Logger
}

// Validate validates the settings.
// Returns an error when the settings aren't valid.
func (s *Chip8Settings) Validate() error {
	if s.ClockSpeed <= 0 {
		return fmt.Errorf("ClockSpeed must be > 0, got %v.", s.ClockSpeed)
	}
	if s.ClockSpeed > maxClockSpeed {
		return fmt.Errorf("ClockSpeed must be <= %v, got %v.",
			maxClockSpeed, s.ClockSpeed)
	}
	return nil
}

const maxClockSpeed = 1000000

// The default settings for Chip8. The clock speed is roughly what most
// programs expect.
var DefaultSettings = &Chip8Settings{
	ClockSpeed: 700,
}
