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

package ebiten

import (
	"testing"

	"github.com/hahohihu/chip8/hachi"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestHeldKey(t *testing.T) {
	pressed := func(keys ...ebiten.Key) func(ebiten.Key) bool {
		return func(k ebiten.Key) bool {
			for _, p := range keys {
				if p == k {
					return true
				}
			}
			return false
		}
	}

	assert.Equal(t, hachi.NoKey, heldKey(DefaultKeyMap, pressed()))
	assert.Equal(t, hachi.Key0, heldKey(DefaultKeyMap, pressed(ebiten.KeyX)))
	assert.Equal(t, hachi.Key5, heldKey(DefaultKeyMap, pressed(ebiten.KeyW, ebiten.KeyV)))
	assert.Equal(t, hachi.NoKey, heldKey(DefaultKeyMap, pressed(ebiten.KeyP)))
}

func TestDefaultKeyMap(t *testing.T) {
	seen := map[hachi.Key]bool{}
	for _, key := range DefaultKeyMap {
		seen[key] = true
	}
	assert.Equal(t, 16, len(seen))
}

func TestDriver(t *testing.T) {
	c, err := hachi.New("ebiten", &hachi.Chip8Settings{Logger: log.NewTestLogger(t)})
	assert.NoError(t, err)

	g, err := NewGame(c)
	assert.NoError(t, err)
	assert.Equal(t, 700/60, g.cycles())
	w, h := g.Layout(640, 480)
	assert.Equal(t, hachi.ScreenWidth, w)
	assert.Equal(t, hachi.ScreenHeight, h)

	c.Screen[0][1] = true
	g.d.UpdateScreen(c)
	assert.True(t, g.d.dirty)
	assert.Equal(t, byte(0xFF), g.d.frame[4])
	assert.Equal(t, byte(0x00), g.d.frame[0])

	assert.Error(t, c.SetDriverData("key_map", 42))
	assert.NoError(t, c.SetDriverData("key_map", map[ebiten.Key]hachi.Key{}))
	assert.Error(t, c.SetDriverData("nope", nil))
}

func TestNewGame_WrongDriver(t *testing.T) {
	c, err := hachi.New("null", &hachi.Chip8Settings{Logger: log.NewTestLogger(t)})
	assert.NoError(t, err)

	_, err = NewGame(c)
	assert.Error(t, err)
}
