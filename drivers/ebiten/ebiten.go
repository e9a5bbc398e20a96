//go:build !headless

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

// Package ebiten implements a syscall driver that shows the screen in a
// window with ebiten.
//
// ebiten owns the main loop, so instead of calling Run on the emulator the
// caller passes it to the Run function of this package, which blocks until
// the window is closed or the emulator halts.
//
// Key mappings can be modified through SetDriverData("key_map", myMap), where
// myMap is a map[ebiten.Key]hachi.Key.
package ebiten

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/hahohihu/chip8/hachi"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrogolib/log"
)

// DefaultScale is the default window size multiplier.
const DefaultScale = 10

// DefaultKeyMap maps the left side of a qwerty keyboard to the hex keyboard:
//
//	1 2 3 4      1 2 3 C
//	q w e r  ->  4 5 6 D
//	a s d f      7 8 9 E
//	z x c v      A 0 B F
var DefaultKeyMap = map[ebiten.Key]hachi.Key{
	ebiten.KeyDigit1: hachi.Key1, ebiten.KeyDigit2: hachi.Key2,
	ebiten.KeyDigit3: hachi.Key3, ebiten.KeyDigit4: hachi.KeyC,
	ebiten.KeyQ: hachi.Key4, ebiten.KeyW: hachi.Key5,
	ebiten.KeyE: hachi.Key6, ebiten.KeyR: hachi.KeyD,
	ebiten.KeyA: hachi.Key7, ebiten.KeyS: hachi.Key8,
	ebiten.KeyD: hachi.Key9, ebiten.KeyF: hachi.KeyE,
	ebiten.KeyZ: hachi.KeyA, ebiten.KeyX: hachi.Key0,
	ebiten.KeyC: hachi.KeyB, ebiten.KeyV: hachi.KeyF,
}

// An EbitenDriver keeps the last frame and the key map for a Game.
type EbitenDriver struct {
	hachi.Driver
	logger *log.Logger
	keyMap map[ebiten.Key]hachi.Key
	// set by UpdateScreen, cleared once the frame is uploaded
	dirty bool
	frame []byte
}

// heldKey returns the lowest hex key whose mapped key is pressed.
func heldKey(keyMap map[ebiten.Key]hachi.Key, pressed func(ebiten.Key) bool) hachi.Key {
	held := hachi.NoKey
	for k, key := range keyMap {
		if pressed(k) && (held == hachi.NoKey || key < held) {
			held = key
		}
	}
	return held
}

func (d *EbitenDriver) OnInit(c *hachi.Chip8) {
	d.logger = c.Logger()
	if d.keyMap == nil {
		d.keyMap = DefaultKeyMap
	}
	d.frame = make([]byte, hachi.ScreenWidth*hachi.ScreenHeight*4)
	d.dirty = true
	d.logger.Debug("EbitenDriver initialized")
}

func (d *EbitenDriver) Cls() {}

func (d *EbitenDriver) OnUpdate(c *hachi.Chip8) hachi.Key {
	return heldKey(d.keyMap, ebiten.IsKeyPressed)
}

func (d *EbitenDriver) UpdateScreen(c *hachi.Chip8) {
	c.Screen.RGBA(d.frame)
	d.dirty = true
}

// Beep does nothing, there's no audio output.
func (d *EbitenDriver) Beep() {}

func (d *EbitenDriver) GetData(key string) interface{} {
	if key == "ctx" {
		return d
	}
	return nil
}

func (d *EbitenDriver) SetData(key string, value interface{}) error {
	if key == "key_map" {
		newMap, ok := value.(map[ebiten.Key]hachi.Key)
		if !ok {
			return fmt.Errorf("Invalid type %s for key_map.", reflect.TypeOf(value))
		}
		d.keyMap = newMap
		return nil
	}
	return fmt.Errorf("Unknown data key '%s'.", key)
}

// -----------------------------------------------------------------------------

// A Game runs the emulator inside ebiten's update loop.
type Game struct {
	c      *hachi.Chip8
	d      *EbitenDriver
	window *ebiten.Image
}

// NewGame returns a game for c, which must use the ebiten driver.
func NewGame(c *hachi.Chip8) (*Game, error) {
	d, ok := c.GetDriverData("ctx").(*EbitenDriver)
	if !ok {
		return nil, fmt.Errorf("Driver %s is not an ebiten driver.", c.Driver())
	}
	return &Game{c: c, d: d}, nil
}

// cycles returns the number of instructions to run per update.
func (g *Game) cycles() int {
	return max(g.c.ClockSpeed()/ebiten.TPS(), 1)
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	for i := 0; i < g.cycles(); i++ {
		if err := g.c.Tick(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.window == nil {
		g.window = ebiten.NewImage(hachi.ScreenWidth, hachi.ScreenHeight)
	}
	if g.d.dirty {
		g.window.WritePixels(g.d.frame)
		g.d.dirty = false
	}
	screen.DrawImage(g.window, nil)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return hachi.ScreenWidth, hachi.ScreenHeight
}

// Run opens a window scale times the size of the screen and runs c until the
// window is closed, which returns nil, or c halts.
func Run(c *hachi.Chip8, title string, scale int) error {
	g, err := NewGame(c)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(hachi.ScreenWidth*scale, hachi.ScreenHeight*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	ebiten.SetWindowClosingHandled(true)

	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// -----------------------------------------------------------------------------

func init() {
	err := hachi.RegisterDriver("ebiten", &EbitenDriver{})
	if err != nil {
		panic(err)
	}
}
