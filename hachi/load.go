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
	"errors"
	"io"
	"os"

	"github.com/retroenv/retrogolib/log"
)

// MaxProgramSize is the number of bytes available to a program.
const MaxProgramSize = MemorySize - ProgramStart

// Load opens a CHIP-8 binary file and loads it into memory.
// Returns the number of bytes loaded and an error if any.
func (c *Chip8) Load(path string) (size int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, &LoadErr{Path: path, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	size, err = c.LoadReader(f)
	if err != nil {
		var loadErr *LoadErr
		if errors.As(err, &loadErr) {
			loadErr.Path = path
		}
		return
	}
	c.logger.Debug("Loaded program", log.String("file", path), log.Int("size", size))
	return
}

// LoadReader loads a CHIP-8 binary from r into memory at 0x200 and resets PC.
// Programs that don't fit are silently truncated.
// Returns the number of bytes loaded.
func (c *Chip8) LoadReader(r io.Reader) (int, error) {
	region := c.Memory[ProgramStart:]
	clear(region)

	n, err := io.ReadFull(r, region)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return n, &LoadErr{Err: err}
	}
	c.PC = ProgramStart
	return n, nil
}

// LoadRaw loads a byte array as a CHIP-8 binary into memory.
// Returns the number of bytes loaded, which is less than len(program) if
// the program doesn't fit.
func (c *Chip8) LoadRaw(program []byte) int {
	region := c.Memory[ProgramStart:]
	clear(region)
	n := copy(region, program)
	c.PC = ProgramStart
	c.logger.Debug("Loaded program", log.Int("size", n))
	return n
}
