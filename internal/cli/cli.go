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

// Package cli handles command line interface logic.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hahohihu/chip8/hachi"
)

// Options holds the command line options of tl-hachi.
type Options struct {
	Input  string
	Driver string

	Seed  int64
	Speed int

	Debug bool
	Quiet bool
	Trace bool

	StrictAlign    bool
	Wrap           bool
	ShiftFlag      bool
	ShiftVY        bool
	IncrementIndex bool
	Collision      bool

	Disasm     bool
	Cycles     int
	Screenshot string
	Scale      int
	Dot        string
}

// ParseFlags parses the command line arguments following the program name.
func ParseFlags(name string, args []string) (Options, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var opts Options
	readOptionFlags(flags, &opts)

	if err := flags.Parse(args); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}
	rest := flags.Args()
	if len(rest) == 0 {
		return opts, &UsageError{flags: flags, msg: "no program given"}
	}
	if err := validateArgs(flags, rest); err != nil {
		return opts, err
	}
	opts.Input = rest[0]

	seedSet := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})
	if !seedSet {
		opts.Seed = time.Now().UnixNano()
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information.
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and the flag defaults to w.
func (e *UsageError) ShowUsage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "usage: tl-hachi [options] <program.ch8>\n\n")
	e.flags.SetOutput(w)
	e.flags.PrintDefaults()
	_, _ = fmt.Fprintln(w)
}

// validateArgs checks that the program is the last argument.
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				flags: flags,
				msg: fmt.Sprintf("Potential argument %s found after the program, "+
					"please pass the program as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{flags: flags, msg: "only one program can be run"}
	}
	return nil
}

// normalizeOptions normalizes and validates option values.
func normalizeOptions(opts *Options) error {
	opts.Driver = strings.ToLower(opts.Driver)

	drivers := hachi.Drivers()
	found := false
	for _, name := range drivers {
		if name == opts.Driver {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unsupported driver: %s. Valid options: %s",
			opts.Driver, strings.Join(drivers, ", "))
	}

	if opts.Speed <= 0 {
		return fmt.Errorf("invalid speed %d, must be positive", opts.Speed)
	}
	if opts.Scale <= 0 {
		return fmt.Errorf("invalid scale %d, must be positive", opts.Scale)
	}
	if opts.Cycles < 0 {
		return fmt.Errorf("invalid cycle count %d", opts.Cycles)
	}
	if opts.Cycles > 0 && opts.Driver != "null" {
		return fmt.Errorf("-cycles is only supported by the null driver, not %s", opts.Driver)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *Options) {
	flags.StringVar(&opts.Driver, "driver", "termloop", "driver to run the program with (null/term/termloop/ebiten)")
	flags.Int64Var(&opts.Seed, "seed", 0, "seed of the random number generator, random if not given")
	flags.IntVar(&opts.Speed, "speed", hachi.DefaultSettings.ClockSpeed, "instructions executed per second")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, needs -debug")
	flags.BoolVar(&opts.StrictAlign, "strict-align", false, "halt when the program counter is odd")
	flags.BoolVar(&opts.Wrap, "wrap", false, "wrap memory addresses to 12 bits instead of halting")
	flags.BoolVar(&opts.ShiftFlag, "shift-flag", false, "SHR/SHL store the shifted out bit in VF")
	flags.BoolVar(&opts.ShiftVY, "shift-vy", false, "SHR/SHL shift VY into VX")
	flags.BoolVar(&opts.IncrementIndex, "inc-index", false, "LD [I],VX and LD VX,[I] increment I")
	flags.BoolVar(&opts.Collision, "collision", false, "DRW sets VF when a sprite erases a lit pixel")
	flags.BoolVar(&opts.Disasm, "disasm", false, "print a disassembly of the program and exit")
	flags.IntVar(&opts.Cycles, "cycles", 0, "with the null driver, run this many cycles with a simulated clock and exit")
	flags.StringVar(&opts.Screenshot, "screenshot", "", "write the final screen to this PNG file")
	flags.IntVar(&opts.Scale, "scale", 10, "pixel size of screenshots and of the ebiten window")
	flags.StringVar(&opts.Dot, "dot", "", "write a graphviz dump of the final machine state to this file")
}
