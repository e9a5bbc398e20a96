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

// Package term implements a syscall driver that draws the screen straight to
// an ANSI terminal and reads keys from stdin in raw mode.
//
// The driver itself can be retrieved from GetDriverData("ctx"). Start must be
// called before running the emulator and Stop after, to put the terminal back
// the way it was. Pressing Ctrl+C or Ctrl+D closes the channel returned by
// Done.
package term

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/hahohihu/chip8/hachi"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

const (
	// Terminals only send key presses, repeated while the key is held, so a
	// key is released if it doesn't repeat within this long.
	keyRelease = 150 * time.Millisecond

	// Two pixel rows fit in one line of text.
	columns = hachi.ScreenWidth
	lines   = hachi.ScreenHeight / 2
)

const (
	ctrlC = 0x03
	ctrlD = 0x04
)

// KeyMap maps the left side of a qwerty keyboard to the hex keyboard:
//
//	1 2 3 4      1 2 3 C
//	q w e r  ->  4 5 6 D
//	a s d f      7 8 9 E
//	z x c v      A 0 B F
var KeyMap = map[byte]hachi.Key{
	'1': hachi.Key1, '2': hachi.Key2, '3': hachi.Key3, '4': hachi.KeyC,
	'q': hachi.Key4, 'w': hachi.Key5, 'e': hachi.Key6, 'r': hachi.KeyD,
	'a': hachi.Key7, 's': hachi.Key8, 'd': hachi.Key9, 'f': hachi.KeyE,
	'z': hachi.KeyA, 'x': hachi.Key0, 'c': hachi.KeyB, 'v': hachi.KeyF,
}

// A TermDriver renders the screen with half block characters, so 64x32
// pixels take 64x16 cells.
type TermDriver struct {
	hachi.Driver
	in     *os.File
	out    io.Writer
	logger *log.Logger

	mu      sync.Mutex
	key     hachi.Key
	pressed time.Time

	quit     chan struct{}
	quitOnce sync.Once
	oldState *term.State
}

// New returns a driver that reads keys from in and draws to out.
func New(in *os.File, out io.Writer) *TermDriver {
	return &TermDriver{
		in:   in,
		out:  out,
		key:  hachi.NoKey,
		quit: make(chan struct{}),
	}
}

// Start puts the input terminal in raw mode, clears the output and starts
// reading keys. If the input isn't a terminal, keys are read as they come.
func (d *TermDriver) Start() error {
	fd := int(d.in.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("setting raw mode: %w", err)
		}
		d.oldState = oldState
	}

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < columns || h < lines) {
		d.logger.Warn("Terminal is smaller than the screen",
			log.Int("width", w), log.Int("height", h))
	}

	// clear the screen and hide the cursor
	_, _ = io.WriteString(d.out, "\x1b[2J\x1b[?25l")
	go d.read(d.in)
	return nil
}

// Stop shows the cursor again and restores the terminal state. The key
// reader exits with the input.
func (d *TermDriver) Stop() {
	_, _ = io.WriteString(d.out, "\x1b[?25h\r\n")
	if d.oldState != nil {
		_ = term.Restore(int(d.in.Fd()), d.oldState)
		d.oldState = nil
	}
}

// Done is closed when the user asks to quit.
func (d *TermDriver) Done() <-chan struct{} { return d.quit }

func (d *TermDriver) read(r io.Reader) {
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err != nil {
			return
		}
		d.press(b, time.Now())
	}
}

func (d *TermDriver) press(b byte, now time.Time) {
	if b == ctrlC || b == ctrlD {
		d.quitOnce.Do(func() { close(d.quit) })
		return
	}
	key, ok := KeyMap[toLower(b)]
	if !ok {
		return
	}

	d.mu.Lock()
	d.key = key
	d.pressed = now
	d.mu.Unlock()
}

func (d *TermDriver) held(now time.Time) hachi.Key {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.key == hachi.NoKey || now.Sub(d.pressed) > keyRelease {
		return hachi.NoKey
	}
	return d.key
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

// render draws the screen starting from the top left corner of the terminal.
func render(s *hachi.Display) string {
	var sb strings.Builder
	sb.WriteString("\x1b[H")
	for y := 0; y < hachi.ScreenHeight; y += 2 {
		for x := 0; x < hachi.ScreenWidth; x++ {
			top, bottom := s.Pixel(x, y), s.Pixel(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		// raw mode doesn't translate \n
		sb.WriteString("\r\n")
	}
	return sb.String()
}

// -----------------------------------------------------------------------------

func (d *TermDriver) OnInit(c *hachi.Chip8) {
	d.logger = c.Logger()
	d.logger.Debug("TermDriver initialized")
}

func (d *TermDriver) Cls() {}

func (d *TermDriver) OnUpdate(c *hachi.Chip8) hachi.Key { return d.held(time.Now()) }

func (d *TermDriver) UpdateScreen(c *hachi.Chip8) {
	_, _ = io.WriteString(d.out, render(&c.Screen))
}

func (d *TermDriver) Beep() { _, _ = io.WriteString(d.out, "\a") }

func (d *TermDriver) GetData(key string) interface{} {
	if key == "ctx" {
		return d
	}
	return nil
}

func (d *TermDriver) SetData(key string, value interface{}) error {
	return fmt.Errorf("Unknown data key '%s'.", key)
}

// -----------------------------------------------------------------------------

func init() {
	err := hachi.RegisterDriver("term", New(os.Stdin, os.Stdout))
	if err != nil {
		panic(err)
	}
}
