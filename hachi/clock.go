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

import "time"

// updateTimers decrements both timers by one if at least TimerInterval has
// passed since the last decrement. However many cycles run in between, the
// timers never move faster than 60hz.
func (c *Chip8) updateTimers(now time.Time) {
	if c.lastTimerUpdate.IsZero() {
		c.lastTimerUpdate = now
		return
	}
	if now.Sub(c.lastTimerUpdate) < c.TimerInterval {
		return
	}
	c.lastTimerUpdate = now

	if c.DT > 0 {
		c.DT--
	}
	if c.ST > 0 {
		c.ST--
		c.drv.Beep()
	}
}
