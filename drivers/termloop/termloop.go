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

// Package termloop implements a syscall driver for termloop.
//
// The driver initializes a termloop game which can then be retrieved from
// GetDriverData("ctx"). Adding the entity returned by NewRunner to the game's
// screen runs the emulator on every frame.
//
// Key mappings can be modified through SetDriverData("key_map", myMap) and
// SetDriverData("char_map", myMap), where myMap is a map[termloop.Key]hachi.Key
// or a map[rune]hachi.Key respectively, with Chip-8 keys (hachi.Key0...
// hachi.KeyF) as values.
package termloop

import (
	"fmt"
	"reflect"
	"time"
	"unicode"

	tl "github.com/JoelOtter/termloop"
	"github.com/hahohihu/chip8/hachi"
	"github.com/retroenv/retrogolib/log"
)

const (
	// Frames per second the screen is redrawn at.
	fps = 60
	// termbox only reports key presses, so keys are released automatically
	// after this long.
	keyRelease = 100 * time.Millisecond

	stackRows   = 16
	syscallRows = 10
	// top left corner of the screen preview
	screenX, screenY = 20, 5
)

// DefaultKeyMap maps special keys to the hex keyboard.
// 8, 4, 6 and 2 are typically used for directional input.
var DefaultKeyMap = map[tl.Key]hachi.Key{
	tl.KeyArrowDown:  hachi.Key2,
	tl.KeyArrowLeft:  hachi.Key4,
	tl.KeyArrowRight: hachi.Key6,
	tl.KeyArrowUp:    hachi.Key8,
	tl.KeyEnter:      hachi.Key5,
	tl.KeySpace:      hachi.Key5,
}

// DefaultCharMap maps the left side of a qwerty keyboard to the hex keyboard:
//
//	1 2 3 4      1 2 3 C
//	q w e r  ->  4 5 6 D
//	a s d f      7 8 9 E
//	z x c v      A 0 B F
var DefaultCharMap = map[rune]hachi.Key{
	'1': hachi.Key1, '2': hachi.Key2, '3': hachi.Key3, '4': hachi.KeyC,
	'q': hachi.Key4, 'w': hachi.Key5, 'e': hachi.Key6, 'r': hachi.KeyD,
	'a': hachi.Key7, 's': hachi.Key8, 'd': hachi.Key9, 'f': hachi.KeyE,
	'z': hachi.KeyA, 'x': hachi.Key0, 'c': hachi.KeyB, 'v': hachi.KeyF,
}

// keyState remembers the last key pressed and when.
type keyState struct {
	keyMap  map[tl.Key]hachi.Key
	charMap map[rune]hachi.Key
	key     hachi.Key
	pressed time.Time
}

func newKeyState() keyState {
	return keyState{
		keyMap:  DefaultKeyMap,
		charMap: DefaultCharMap,
		key:     hachi.NoKey,
	}
}

// press records a key event. Returns false if the event isn't mapped.
func (k *keyState) press(ev tl.Event, now time.Time) bool {
	key, ok := k.charMap[unicode.ToLower(ev.Ch)]
	if ev.Ch == 0 {
		key, ok = k.keyMap[ev.Key]
	}
	if !ok {
		return false
	}
	k.key = key
	k.pressed = now
	return true
}

// held returns the key that is considered held down at now.
func (k *keyState) held(now time.Time) hachi.Key {
	if k.key == hachi.NoKey || now.Sub(k.pressed) > keyRelease {
		return hachi.NoKey
	}
	return k.key
}

// -----------------------------------------------------------------------------

// A TermloopDriver is a terminal-based driver that uses the termloop library.
// It shows the current emulator state in real time and the screen.
type TermloopDriver struct {
	hachi.Driver
	g                 *tl.Game
	logger            *log.Logger
	memory            *tl.Text
	registers         *tl.Text
	pointersAndTimers *tl.Text
	devices           *tl.Text
	stack             [stackRows]*tl.Text
	syscalls          [syscallRows]*tl.Text
	screen            [hachi.ScreenHeight][hachi.ScreenWidth]*tl.Rectangle
	lastScreen        hachi.Display
	keys              keyState
}

func (d *TermloopDriver) printSyscall(s string) {
	for i := syscallRows - 1; i > 0; i-- {
		d.syscalls[i].SetText(d.syscalls[i-1].Text())
	}
	d.syscalls[0].SetText(s)
}

// just a wrapper entity to handle input
type inputHandler struct{ d *TermloopDriver }

func (i *inputHandler) Draw(s *tl.Screen) {}

func (i *inputHandler) Tick(ev tl.Event) {
	if ev.Type == tl.EventKey {
		i.d.keys.press(ev, time.Now())
	}
}

// A Runner is an entity that runs the emulator for one frame worth of cycles
// every time termloop draws the screen.
type Runner struct {
	c   *hachi.Chip8
	d   *TermloopDriver
	err error
}

// NewRunner returns the entity that drives c. c must use the termloop driver.
func NewRunner(c *hachi.Chip8) *Runner {
	d, _ := c.GetDriverData("driver").(*TermloopDriver)
	return &Runner{c: c, d: d}
}

// Err returns the error that stopped the emulator, if any.
func (r *Runner) Err() error { return r.err }

func (r *Runner) Draw(s *tl.Screen) {
	if r.err != nil {
		return
	}
	cycles := max(r.c.ClockSpeed()/fps, 1)
	for i := 0; i < cycles; i++ {
		if err := r.c.Tick(); err != nil {
			r.err = err
			if r.d != nil {
				r.d.printSyscall("HALT")
				r.d.devices.SetText(err.Error())
			}
			return
		}
	}
}

func (r *Runner) Tick(ev tl.Event) {}

// -----------------------------------------------------------------------------

func (d *TermloopDriver) OnInit(c *hachi.Chip8) {
	d.keys = newKeyState()
	d.logger = c.Logger()
	d.lastScreen = hachi.Display{}

	// init termloop
	d.g = tl.NewGame()
	scr := d.g.Screen()
	scr.SetFps(fps)

	scr.AddEntity(&inputHandler{d})
	scr.AddEntity(tl.NewText(0, 0, "Stack   Syscalls",
		tl.ColorDefault, tl.ColorDefault))

	// stack
	for i := range d.stack {
		d.stack[i] = tl.NewText(0, i+1, "", tl.ColorDefault, tl.ColorDefault)
		scr.AddEntity(d.stack[i])
	}

	// syscall log
	for i := range d.syscalls {
		d.syscalls[i] = tl.NewText(8, i+1, "", tl.ColorDefault, tl.ColorDefault)
		scr.AddEntity(d.syscalls[i])
	}

	// chip info
	d.memory = tl.NewText(screenX, 0, "", tl.ColorDefault, tl.ColorDefault)
	scr.AddEntity(d.memory)

	d.registers = tl.NewText(screenX, 1, "", tl.ColorDefault, tl.ColorDefault)
	scr.AddEntity(d.registers)

	d.pointersAndTimers = tl.NewText(screenX, 2, "",
		tl.ColorDefault, tl.ColorDefault)
	scr.AddEntity(d.pointersAndTimers)

	d.devices = tl.NewText(screenX, 3, "", tl.ColorDefault, tl.ColorDefault)
	scr.AddEntity(d.devices)

	// screen preview, pixels are added to the screen when they light up
	for y := range d.screen {
		for x := range d.screen[y] {
			d.screen[y][x] = tl.NewRectangle(
				screenX+x, screenY+y, 1, 1, tl.ColorWhite)
		}
	}

	d.logger.Debug("TermloopDriver initialized")
}

func (d *TermloopDriver) Cls() { d.printSyscall("CLS") }

func (d *TermloopDriver) OnUpdate(c *hachi.Chip8) hachi.Key {
	key := d.keys.held(time.Now())

	// update chip info
	d.memory.SetText(fmt.Sprintf("Memory: %v bytes", len(c.Memory)))
	d.registers.SetText(fmt.Sprintf("Registers: % 02X", c.V))
	d.pointersAndTimers.SetText(
		fmt.Sprintf("I: %04X SP: %v, PC: %04X, DT: %02X, ST: %02X",
			c.I, len(c.Stack), c.PC, c.DT, c.ST))
	d.devices.SetText(fmt.Sprintf("Key: %v, Screen: %v*%v",
		key, hachi.ScreenWidth, hachi.ScreenHeight))

	// update stack, most recent return address first
	for i := range d.stack {
		top := len(c.Stack) - 1 - i
		if top >= 0 {
			d.stack[i].SetText(fmt.Sprintf("%04X", c.Stack[top]))
		} else {
			d.stack[i].SetText("")
		}
	}
	return key
}

func (d *TermloopDriver) UpdateScreen(c *hachi.Chip8) {
	d.printSyscall("DRW")

	scr := d.g.Screen()
	for y := range c.Screen {
		for x, lit := range c.Screen[y] {
			switch was := d.lastScreen[y][x]; {
			case lit && !was:
				// this pixel was activated
				scr.AddEntity(d.screen[y][x])
			case !lit && was:
				// this pixel was deactivated
				scr.RemoveEntity(d.screen[y][x])
			}
		}
	}

	d.lastScreen = c.Screen
}

func (d *TermloopDriver) Beep() { d.printSyscall("BEEP") }

func (d *TermloopDriver) GetData(key string) interface{} {
	switch key {
	case "ctx":
		return d.g
	case "driver":
		return d
	}
	return nil
}

func (d *TermloopDriver) SetData(key string, value interface{}) error {
	switch key {
	case "key_map":
		newMap, ok := value.(map[tl.Key]hachi.Key)
		if !ok {
			return fmt.Errorf("Invalid type %s for key_map.", reflect.TypeOf(value))
		}
		d.keys.keyMap = newMap
		return nil
	case "char_map":
		newMap, ok := value.(map[rune]hachi.Key)
		if !ok {
			return fmt.Errorf("Invalid type %s for char_map.", reflect.TypeOf(value))
		}
		d.keys.charMap = newMap
		return nil
	}
	return fmt.Errorf("Unknown data key '%s'.", key)
}

// -----------------------------------------------------------------------------

func init() {
	err := hachi.RegisterDriver("termloop", &TermloopDriver{})
	if err != nil {
		panic(err)
	}
}
