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

// Command tl-hachi runs CHIP-8 programs with any of the registered drivers,
// and disassembles them.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tl "github.com/JoelOtter/termloop"
	_ "github.com/hahohihu/chip8/drivers"
	"github.com/hahohihu/chip8/drivers/term"
	"github.com/hahohihu/chip8/drivers/termloop"
	"github.com/hahohihu/chip8/hachi"
	"github.com/hahohihu/chip8/internal/cli"
	"github.com/hahohihu/chip8/internal/config"
	"github.com/hahohihu/chip8/internal/export"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags(os.Args[0], os.Args[1:])
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage(os.Stderr)
			logger.Error(usageErr.Error())
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	printBanner(logger, opts)

	if err := run(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Emulation cancelled")
			return
		}
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func printBanner(logger *log.Logger, opts cli.Options) {
	if opts.Quiet {
		return
	}
	logger.Info("tl-hachi", log.String("version", buildinfo.Version(version, commit, date)))
}

func run(ctx context.Context, logger *log.Logger, opts cli.Options) error {
	if opts.Disasm {
		return disassemble(opts.Input)
	}

	// initialize emulator
	c, err := hachi.New(opts.Driver, config.Settings(opts, logger))
	if err != nil {
		return fmt.Errorf("initializing emulator: %w", err)
	}

	// load program
	if _, err := c.Load(opts.Input); err != nil {
		return err
	}

	runErr := emulate(ctx, c, opts)
	if hachi.IsFatal(runErr) {
		_, _ = fmt.Fprint(os.Stderr, c.Dump())
	}

	// outputs describe the final state, halted or not
	return errors.Join(runErr, writeOutputs(c, opts))
}

func emulate(ctx context.Context, c *hachi.Chip8, opts cli.Options) error {
	switch opts.Driver {
	case "termloop":
		return runTermloop(c)
	case "term":
		return runTerm(ctx, c)
	case "ebiten":
		return runEbiten(c, opts.Scale)
	}

	if opts.Cycles > 0 {
		return c.Simulate(opts.Cycles)
	}
	return c.Run(ctx)
}

func runTermloop(c *hachi.Chip8) error {
	g, ok := c.GetDriverData("ctx").(*tl.Game)
	if !ok {
		return fmt.Errorf("Driver context failed type assertion.")
	}
	if g == nil {
		return fmt.Errorf("Driver context is nil.")
	}

	// add emulator entity
	runner := termloop.NewRunner(c)
	g.Screen().AddEntity(runner)

	// start termloop, blocks until Ctrl+C
	g.Start()
	return runner.Err()
}

func runTerm(ctx context.Context, c *hachi.Chip8) error {
	d, ok := c.GetDriverData("ctx").(*term.TermDriver)
	if !ok {
		return fmt.Errorf("Driver context failed type assertion.")
	}
	if err := d.Start(); err != nil {
		return err
	}
	defer d.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-d.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	err := c.Run(ctx)
	select {
	case <-d.Done():
		// the user quit
		return nil
	default:
		return err
	}
}

func disassemble(path string) error {
	program, err := os.ReadFile(path)
	if err != nil {
		return &hachi.LoadErr{Path: path, Err: err}
	}
	if len(program) > hachi.MaxProgramSize {
		program = program[:hachi.MaxProgramSize]
	}
	return export.Listing(os.Stdout, hachi.Disassemble(program))
}

func writeOutputs(c *hachi.Chip8, opts cli.Options) error {
	if opts.Screenshot != "" {
		err := writeFile(opts.Screenshot, func(f *os.File) error {
			return export.Screenshot(f, &c.Screen, opts.Scale)
		})
		if err != nil {
			return fmt.Errorf("writing screenshot: %w", err)
		}
	}
	if opts.Dot != "" {
		err := writeFile(opts.Dot, func(f *os.File) error {
			export.Dot(f, c)
			return nil
		})
		if err != nil {
			return fmt.Errorf("writing graphviz dump: %w", err)
		}
	}
	return nil
}

func writeFile(path string, write func(f *os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	return write(f)
}
