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
	"fmt"
)

// A LoadErr is returned when a program image can't be read. It is the only
// error the emulator can recover from.
type LoadErr struct {
	Path string
	Err  error
}

func (e *LoadErr) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("Loading program failed: %v", e.Err)
	}
	return fmt.Sprintf("Loading program \"%s\" failed: %v", e.Path, e.Err)
}

func (e *LoadErr) Unwrap() error { return e.Err }

// A StackUnderflowErr is returned when RET is executed with an empty stack.
type StackUnderflowErr struct {
	Address uint16
}

func (e *StackUnderflowErr) Error() string {
	return fmt.Sprintf("Stack underflow at %04X.", e.Address)
}

// A BadCodeErr is returned when the emulator tries to execute invalid code.
type BadCodeErr struct {
	Address uint16
	Word    uint16
}

func (e *BadCodeErr) Error() string {
	return fmt.Sprintf("Tried to execute invalid code %04X at %04X.",
		e.Word, e.Address)
}

// A PCOutOfBoundsErr is returned when the program counter leaves the program
// region.
type PCOutOfBoundsErr struct {
	PC uint16
}

func (e *PCOutOfBoundsErr) Error() string {
	return fmt.Sprintf("Program counter out of bounds: %04X.", e.PC)
}

// A MisalignedPCErr is returned in strict alignment mode when the program
// counter is odd.
type MisalignedPCErr struct {
	PC uint16
}

func (e *MisalignedPCErr) Error() string {
	return fmt.Sprintf("Program counter is not aligned: %04X.", e.PC)
}

// A AccessErr is returned when an instruction addresses memory past the end
// of the address space.
type AccessErr struct {
	Address int
	Word    uint16
}

func (e *AccessErr) Error() string {
	return fmt.Sprintf("Instruction %04X tried to access invalid memory at %X.",
		e.Word, e.Address)
}

// IsFatal reports whether err halts the emulator.
func IsFatal(err error) bool {
	var (
		stackErr *StackUnderflowErr
		codeErr  *BadCodeErr
		pcErr    *PCOutOfBoundsErr
		alignErr *MisalignedPCErr
		accErr   *AccessErr
	)
	return errors.As(err, &stackErr) || errors.As(err, &codeErr) ||
		errors.As(err, &pcErr) || errors.As(err, &alignErr) ||
		errors.As(err, &accErr)
}
