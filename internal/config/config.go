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

// Package config handles application configuration and setup.
package config

import (
	"github.com/hahohihu/chip8/internal/cli"
	"github.com/hahohihu/chip8/hachi"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// Settings converts the command line options to emulator settings.
func Settings(opts cli.Options, logger *log.Logger) *hachi.Chip8Settings {
	return &hachi.Chip8Settings{
		Seed:            opts.Seed,
		ClockSpeed:      opts.Speed,
		StrictAlignment: opts.StrictAlign,
		WrapAddresses:   opts.Wrap,
		Quirks: hachi.Quirks{
			ShiftSetsFlag:            opts.ShiftFlag,
			ShiftUsesVY:              opts.ShiftVY,
			LoadStoreIncrementsIndex: opts.IncrementIndex,
			DrawSetsCollision:        opts.Collision,
		},
		Trace:  opts.Trace,
		Logger: logger,
	}
}
