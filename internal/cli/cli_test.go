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

package cli

import (
	"bytes"
	"errors"
	"testing"

	_ "github.com/hahohihu/chip8/drivers/term"
	_ "github.com/hahohihu/chip8/drivers/termloop"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	opts, err := ParseFlags("tl-hachi", []string{"game.ch8"})
	assert.NoError(t, err)
	assert.Equal(t, "game.ch8", opts.Input)
	assert.Equal(t, "termloop", opts.Driver)
	assert.Equal(t, 700, opts.Speed)
	assert.Equal(t, 10, opts.Scale)
	assert.False(t, opts.Wrap)
}

func TestParseFlags_Options(t *testing.T) {
	opts, err := ParseFlags("tl-hachi", []string{
		"-driver", "NULL", "-seed", "0", "-speed", "1000",
		"-shift-flag", "-shift-vy", "-inc-index", "-collision", "-wrap", "-strict-align",
		"-cycles", "50", "-screenshot", "out.png", "-dot", "out.dot",
		"game.ch8",
	})
	assert.NoError(t, err)
	assert.Equal(t, "null", opts.Driver)
	assert.Equal(t, int64(0), opts.Seed)
	assert.Equal(t, 1000, opts.Speed)
	assert.True(t, opts.ShiftFlag)
	assert.True(t, opts.ShiftVY)
	assert.True(t, opts.IncrementIndex)
	assert.True(t, opts.Collision)
	assert.True(t, opts.Wrap)
	assert.True(t, opts.StrictAlign)
	assert.Equal(t, 50, opts.Cycles)
	assert.Equal(t, "out.png", opts.Screenshot)
	assert.Equal(t, "out.dot", opts.Dot)
}

func TestParseFlags_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no program", []string{}},
		{"unknown flag", []string{"-nope", "game.ch8"}},
		{"flag after program", []string{"game.ch8", "-q"}},
		{"two programs", []string{"a.ch8", "b.ch8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags("tl-hachi", tt.args)
			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))

			var buf bytes.Buffer
			usageErr.ShowUsage(&buf)
			assert.Contains(t, buf.String(), "usage: tl-hachi")
			assert.Contains(t, buf.String(), "-driver")
		})
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{"driver", []string{"-driver", "sdl", "game.ch8"}, "unsupported driver"},
		{"speed", []string{"-speed", "0", "game.ch8"}, "invalid speed"},
		{"scale", []string{"-scale", "-1", "game.ch8"}, "invalid scale"},
		{"cycles", []string{"-cycles", "-5", "game.ch8"}, "invalid cycle count"},
		{"cycles without null driver", []string{"-driver", "term", "-cycles", "5", "game.ch8"}, "only supported by the null driver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags("tl-hachi", tt.args)
			assert.ErrorContains(t, err, tt.contains)
			var usageErr *UsageError
			assert.False(t, errors.As(err, &usageErr))
		})
	}
}
