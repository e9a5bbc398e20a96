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

// Package hachi implements a CHIP-8 emulator core and a disassembler.
//
// The core is synchronous and does no I/O of its own: a host calls Step with
// the current time and the key being held down, and presents the screen when
// Step asks for a redraw. Drivers registered by name wrap that loop for
// terminals and windows.
package hachi

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// Memory layout.
const (
	MemorySize   = 0x1000
	ProgramStart = 0x200
	// Fonts are stored starting at 0x0000, 5 bytes per glyph.
	FontAddress = 0x000
	FontHeight  = 5
)

// -----------------------------------------------------------------------------

// A Key is one of the 16 keys of the hex keyboard, or NoKey.
type Key int8

// NoKey means that no key is held down.
const NoKey Key = -1

// Keys of the hex keyboard. 8, 4, 6 and 2 are typically used for directional
// input.
const (
	Key0 Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
)

// Valid reports whether k is one of Key0...KeyF.
func (k Key) Valid() bool { return k >= Key0 && k <= KeyF }

func (k Key) String() string {
	if !k.Valid() {
		return "none"
	}
	return fmt.Sprintf("%X", int8(k))
}

// -----------------------------------------------------------------------------

var font = [16 * FontHeight]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Chip8 is an implementation of a CHIP-8 emulator. It holds the state of the
// virtual machine and provides debugging tools.
// A Chip8 must only be used from one goroutine at a time.
type Chip8 struct {
	// The memory where programs are loaded and executed.
	// Programs start at 0x200 because the original interpreter
	// occupied those first 512 bytes.
	Memory [MemorySize]byte
	// V[0x0]~V[0xF] are 8-bit registers. V[0xF] doubles as a carry flag.
	V [16]uint8
	// 16-bit address register. Used for memory operations.
	I uint16
	// The call stack, which holds return addresses. It grows as needed.
	Stack []uint16
	// Program counter. Holds the address of the next instruction.
	PC uint16
	// Timers. These automatically count down at 60hz when they are non-zero.
	// DT/DelayTimer is intended to be used for timing events in games, while
	// ST/SoundTimer makes a beeping sound as long as its value is non-zero.
	DT uint8
	ST uint8
	// Monochrome screen buffer, 64x32.
	Screen Display
	// The interval between each timer tick. The original implementation uses
	// 60hz = time.Second / 60.
	TimerInterval time.Duration

	lastTimerUpdate time.Time
	rng             *rand.Rand
	clockSpeed      int
	driver          string
	drv             Driver
	logger          *log.Logger
	halt            error

	strictAlignment bool
	wrapAddresses   bool
	shiftSetsFlag   bool
	drawCollision   bool
	trace           bool

	pLdMemory, pLdSetMemory func(c *Chip8, x uint8, word uint16) error
	pShr, pShl              func(c *Chip8, x, y uint8) (out uint8)
}

// -----------------------------------------------------------------------------

// function pointers for the quirk switches
// (function pointers are a lot faster than if's)

type ldMemoryMap map[bool]func(c *Chip8, x uint8, word uint16) error

var ldMemory = ldMemoryMap{
	false: func(c *Chip8, x uint8, word uint16) error {
		return c.copyFromMemory(x, word)
	},
	true: func(c *Chip8, x uint8, word uint16) error {
		if err := c.copyFromMemory(x, word); err != nil {
			return err
		}
		c.I += uint16(x) + 1
		return nil
	},
}

var ldSetMemory = ldMemoryMap{
	false: func(c *Chip8, x uint8, word uint16) error {
		return c.copyToMemory(x, word)
	},
	true: func(c *Chip8, x uint8, word uint16) error {
		if err := c.copyToMemory(x, word); err != nil {
			return err
		}
		c.I += uint16(x) + 1
		return nil
	},
}

type shiftMap map[bool]func(c *Chip8, x, y uint8) uint8

var shl = shiftMap{
	false: func(c *Chip8, x, y uint8) uint8 {
		out := c.V[x] >> 7 // most significant bit
		c.V[x] <<= 1
		return out
	},
	true: func(c *Chip8, x, y uint8) uint8 {
		out := c.V[y] >> 7
		c.V[x] = c.V[y] << 1
		return out
	},
}

var shr = shiftMap{
	false: func(c *Chip8, x, y uint8) uint8 {
		out := c.V[x] & 0x01 // least significant bit
		c.V[x] >>= 1
		return out
	},
	true: func(c *Chip8, x, y uint8) uint8 {
		out := c.V[y] & 0x01
		c.V[x] = c.V[y] >> 1
		return out
	},
}

// -----------------------------------------------------------------------------

// New initializes a new instance of Chip8 with the given settings. If settings
// is nil, DefaultSettings will be used.
// driver is the name of the syscall driver that will be used.
func New(driver string, s *Chip8Settings) (c *Chip8, err error) {
	if drivers[driver] == nil {
		err = fmt.Errorf("Driver %s not found.", driver)
		return
	}

	if s == nil {
		s = DefaultSettings
	}
	settings := *s
	if settings.ClockSpeed == 0 {
		settings.ClockSpeed = DefaultSettings.ClockSpeed
	}
	s = &settings

	err = s.Validate()
	if err != nil {
		return
	}

	logger := s.Logger
	if logger == nil {
		logger = log.NewWithConfig(log.DefaultConfig())
	}

	c = &Chip8{
		PC:              ProgramStart,
		TimerInterval:   time.Second / 60,
		clockSpeed:      s.ClockSpeed,
		lastTimerUpdate: s.Epoch,
		rng:             rand.New(rand.NewSource(s.Seed)),
		driver:          driver,
		drv:             drivers[driver],
		logger:          logger,
		strictAlignment: s.StrictAlignment,
		wrapAddresses:   s.WrapAddresses,
		shiftSetsFlag:   s.Quirks.ShiftSetsFlag,
		drawCollision:   s.Quirks.DrawSetsCollision,
		trace:           s.Trace,
		pLdMemory:       ldMemory[s.Quirks.LoadStoreIncrementsIndex],
		pLdSetMemory:    ldSetMemory[s.Quirks.LoadStoreIncrementsIndex],
		pShr:            shr[s.Quirks.ShiftUsesVY],
		pShl:            shl[s.Quirks.ShiftUsesVY],
	}
	copy(c.Memory[FontAddress:], font[:])

	c.drv.OnInit(c)
	c.logger.Debug("Emulator initialized",
		log.String("driver", driver),
		log.Int("clock_speed", s.ClockSpeed))
	return
}

// Driver returns the name of the syscall driver in use by the emulator.
func (c *Chip8) Driver() string { return c.driver }

// ClockSpeed returns the number of instructions per second executed by Run.
func (c *Chip8) ClockSpeed() int { return c.clockSpeed }

// GetDriverData gets custom data from the driver the emulator was created
// with. Returns nil if the data key is not found.
func (c *Chip8) GetDriverData(key string) interface{} {
	return c.drv.GetData(key)
}

// SetDriverData sets custom data on the driver the emulator was created with.
func (c *Chip8) SetDriverData(key string, value interface{}) error {
	return c.drv.SetData(key, value)
}

// Logger returns the logger used by the emulator, so drivers can log to the
// same place.
func (c *Chip8) Logger() *log.Logger { return c.logger }

// Halted returns the fatal error that stopped the emulator, if any.
func (c *Chip8) Halted() error { return c.halt }

// Step runs one CPU cycle: it fetches the word at PC, advances PC, updates
// the timers for now, then decodes and executes the word. key is the key held
// down during this cycle, or NoKey.
// Returns true when the screen changed. Every error returned by Step is
// fatal; once one is returned, further calls return it again.
func (c *Chip8) Step(now time.Time, key Key) (redraw bool, err error) {
	if c.halt != nil {
		return false, c.halt
	}

	redraw, err = c.step(now, key)
	if err != nil {
		c.halt = err
		c.logger.Error("Execution halted", log.Err(err))
	}
	return
}

func (c *Chip8) step(now time.Time, key Key) (bool, error) {
	if c.PC < ProgramStart || int(c.PC) > MemorySize-2 {
		return false, &PCOutOfBoundsErr{c.PC}
	}
	if c.strictAlignment && c.PC%2 != 0 {
		return false, &MisalignedPCErr{c.PC}
	}

	address := c.PC
	word := uint16(c.Memory[address])<<8 | uint16(c.Memory[address+1])
	c.PC += 2

	c.updateTimers(now)

	in, ok := Decode(word)
	if !ok {
		return false, &BadCodeErr{Address: address, Word: word}
	}
	if c.trace {
		c.logger.Debug("Executing",
			log.Hex("address", address),
			log.Hex("opcode", word),
			log.String("instruction", in.String()),
			log.String("key", key.String()))
	}

	return c.Execute(in, key)
}

// Tick runs one CPU cycle using the current time and the key reported by the
// driver. Returns an error if any.
func (c *Chip8) Tick() error {
	key := c.drv.OnUpdate(c)

	redraw, err := c.Step(time.Now(), key)
	if err != nil {
		return err
	}
	if redraw {
		c.drv.UpdateScreen(c)
	}
	return nil
}

// Run runs the emulator at ClockSpeed instructions per second, blocking the
// thread until ctx is done or a fatal error occurs.
func (c *Chip8) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(c.clockSpeed))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if err := c.Tick(); err != nil {
			return err
		}
	}
}

// Simulate runs n cycles without a driver or real time: the clock starts at
// the timer baseline and advances by 1/ClockSpeed every cycle, and no key is
// ever held down. Redraws are not reported.
// Returns the first error, which halts the emulator like with Step.
func (c *Chip8) Simulate(n int) error {
	now := c.lastTimerUpdate
	if now.IsZero() {
		now = time.Unix(0, 0)
	}
	cycle := time.Second / time.Duration(c.clockSpeed)

	for i := 0; i < n; i++ {
		now = now.Add(cycle)
		if _, err := c.Step(now, NoKey); err != nil {
			return err
		}
	}
	return nil
}
