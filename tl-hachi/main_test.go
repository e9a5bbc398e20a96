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

package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hahohihu/chip8/hachi"
	"github.com/hahohihu/chip8/internal/cli"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func writeProgram(t *testing.T, program []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(path, program, 0o600))
	return path
}

func TestRun_Outputs(t *testing.T) {
	dir := t.TempDir()
	opts := cli.Options{
		// draw the 0 glyph at 0,0 then loop forever
		Input:      writeProgram(t, []byte{0xD0, 0x05, 0x12, 0x02}),
		Driver:     "null",
		Speed:      700,
		Cycles:     10,
		Scale:      2,
		Screenshot: filepath.Join(dir, "screen.png"),
		Dot:        filepath.Join(dir, "state.dot"),
	}

	assert.NoError(t, run(context.Background(), log.NewTestLogger(t), opts))

	png, err := os.ReadFile(opts.Screenshot)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(png), "\x89PNG"))

	dot, err := os.ReadFile(opts.Dot)
	assert.NoError(t, err)
	assert.Contains(t, string(dot), "digraph")
}

func TestRun_Halts(t *testing.T) {
	opts := cli.Options{
		Input:  writeProgram(t, []byte{0x00, 0xEE}),
		Driver: "null",
		Speed:  700,
		Cycles: 10,
		Scale:  1,
	}

	err := run(context.Background(), log.NewTestLogger(t), opts)
	var stackErr *hachi.StackUnderflowErr
	assert.True(t, errors.As(err, &stackErr))
}

func TestRun_MissingProgram(t *testing.T) {
	opts := cli.Options{
		Input:  filepath.Join(t.TempDir(), "missing.ch8"),
		Driver: "null",
		Speed:  700,
		Scale:  1,
	}

	err := run(context.Background(), log.NewTestLogger(t), opts)
	var loadErr *hachi.LoadErr
	assert.True(t, errors.As(err, &loadErr))
}

func TestRun_Cancelled(t *testing.T) {
	opts := cli.Options{
		Input:  writeProgram(t, []byte{0x12, 0x00}),
		Driver: "null",
		Speed:  700,
		Scale:  1,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := run(ctx, log.NewTestLogger(t), opts)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDisassemble(t *testing.T) {
	assert.NoError(t, disassemble(writeProgram(t, []byte{0x00, 0xE0})))

	err := disassemble(filepath.Join(t.TempDir(), "missing.ch8"))
	var loadErr *hachi.LoadErr
	assert.True(t, errors.As(err, &loadErr))
}
