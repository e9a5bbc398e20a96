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

// address returns the memory address I+offset. Depending on the settings it
// either wraps to 12 bits or fails with an AccessErr past the end of memory.
func (c *Chip8) address(offset int, word uint16) (uint16, error) {
	a := int(c.I) + offset
	if c.wrapAddresses {
		return uint16(a) & (MemorySize - 1), nil
	}
	if a >= MemorySize {
		return 0, &AccessErr{Address: a, Word: word}
	}
	return uint16(a), nil
}

// checkRange validates I...I+n-1 up front so that an instruction either
// touches all of its bytes or none.
func (c *Chip8) checkRange(n int, word uint16) error {
	if n == 0 {
		return nil
	}
	_, err := c.address(n-1, word)
	return err
}

func (c *Chip8) copyToMemory(x uint8, word uint16) error {
	if err := c.checkRange(int(x)+1, word); err != nil {
		return err
	}
	for i := 0; i <= int(x); i++ {
		a, _ := c.address(i, word)
		c.Memory[a] = c.V[i]
	}
	return nil
}

func (c *Chip8) copyFromMemory(x uint8, word uint16) error {
	if err := c.checkRange(int(x)+1, word); err != nil {
		return err
	}
	for i := 0; i <= int(x); i++ {
		a, _ := c.address(i, word)
		c.V[i] = c.Memory[a]
	}
	return nil
}

func (c *Chip8) skipIf(cond bool) {
	if cond {
		c.PC += 2
	}
}

// Execute applies a decoded instruction to the machine. PC must already point
// past the instruction, so skips and the key wait are relative to the next
// one. key is the key held down during this cycle, or NoKey.
// Returns true when the screen changed.
func (c *Chip8) Execute(in Instruction, key Key) (redraw bool, err error) {
	switch in := in.(type) {
	case ClearScreen:
		c.Screen.Clear()
		c.drv.Cls()
		return true, nil
	case Return:
		// pop return address
		if len(c.Stack) == 0 {
			return false, &StackUnderflowErr{c.PC - 2}
		}
		c.PC = c.Stack[len(c.Stack)-1]
		c.Stack = c.Stack[:len(c.Stack)-1]
	case Jump:
		c.PC = in.Address
	case Call:
		// push return address
		c.Stack = append(c.Stack, c.PC)
		c.PC = in.Address
	case SkipEqImm:
		c.skipIf(c.V[in.Register] == in.Value)
	case SkipNeqImm:
		c.skipIf(c.V[in.Register] != in.Value)
	case SkipEqReg:
		c.skipIf(c.V[in.X] == c.V[in.Y])
	case SkipNeqReg:
		c.skipIf(c.V[in.X] != c.V[in.Y])
	case LoadImm:
		c.V[in.Register] = in.Value
	case AddImm:
		c.V[in.Register] += in.Value
	case Move:
		c.V[in.X] = c.V[in.Y]
	case Or:
		c.V[in.X] |= c.V[in.Y]
	case And:
		c.V[in.X] &= c.V[in.Y]
	case Xor:
		c.V[in.X] ^= c.V[in.Y]
	case Add:
		result := uint16(c.V[in.X]) + uint16(c.V[in.Y])
		// only store the 8 least significant bits
		c.V[in.X] = uint8(result)
		c.V[0xF] = uint8(result >> 8) // carry
	case SubForward:
		c.sub(in.X, in.X, in.Y)
	case SubBackward:
		c.sub(in.X, in.Y, in.X)
	case ShiftRight:
		out := c.pShr(c, in.X, in.Y)
		if c.shiftSetsFlag {
			c.V[0xF] = out
		}
	case ShiftLeft:
		out := c.pShl(c, in.X, in.Y)
		if c.shiftSetsFlag {
			c.V[0xF] = out
		}
	case LoadIndex:
		c.I = in.Address
	case Random:
		c.V[in.Register] = uint8(c.rng.Uint32()) & in.Value
	case Draw:
		if err := c.draw(in); err != nil {
			return false, err
		}
		return true, nil
	case SkipKeyPressed:
		c.skipIf(key.Valid() && Key(c.V[in.Register]) == key)
	case SkipKeyNotPressed:
		c.skipIf(!key.Valid() || Key(c.V[in.Register]) != key)
	case LoadDelay:
		c.V[in.Register] = c.DT
	case WaitKey:
		if !key.Valid() {
			// fetch this instruction again next cycle
			c.PC -= 2
			return false, nil
		}
		c.V[in.Register] = uint8(key)
	case StoreDelay:
		c.DT = c.V[in.Register]
	case StoreSound:
		c.ST = c.V[in.Register]
	case AddToIndex:
		sum := uint32(c.I) + uint32(c.V[in.Register])
		c.I = uint16(sum)
		// undocumented feature - set VF to 1 when there's a range overflow.
		if sum > 0xFFFF {
			c.V[0xF] = 1
		} else {
			c.V[0xF] = 0
		}
	case FontChar:
		c.I = FontAddress + uint16(c.V[in.Register]&0x0F)*FontHeight
	case StoreBCD:
		return false, c.storeBCD(in)
	case StoreRange:
		return false, c.pLdSetMemory(c, in.Register, in.Opcode())
	case LoadRange:
		return false, c.pLdMemory(c, in.Register, in.Opcode())
	default:
		return false, &BadCodeErr{Address: c.PC - 2, Word: in.Opcode()}
	}
	return false, nil
}

// sub computes V[dst] = V[a] - V[b]. VF = 0 when there's a borrow, 1 when
// there isn't. The flag is written last, so it wins when dst is VF.
func (c *Chip8) sub(dst, a, b uint8) {
	va, vb := c.V[a], c.V[b]
	c.V[dst] = va - vb
	if va >= vb {
		c.V[0xF] = 1
	} else {
		c.V[0xF] = 0
	}
}

// draw XORs Height rows of the sprite at I onto the screen at VX,VY.
// The origin wraps around the screen, the sprite itself is clipped at the
// edges. VF is set to 1 if any lit pixel was turned off (collision).
func (c *Chip8) draw(in Draw) error {
	if err := c.checkRange(int(in.Height), in.Opcode()); err != nil {
		return err
	}

	x := int(c.V[in.X] % ScreenWidth)
	y := int(c.V[in.Y] % ScreenHeight)

	collision := false
	for row := 0; row < int(in.Height); row++ {
		a, _ := c.address(row, in.Opcode())
		if c.Screen.drawRow(x, y+row, c.Memory[a]) {
			collision = true
		}
	}

	if c.drawCollision {
		c.V[0xF] = 0
		if collision {
			c.V[0xF] = 1
		}
	}
	return nil
}

func (c *Chip8) storeBCD(in StoreBCD) error {
	if err := c.checkRange(3, in.Opcode()); err != nil {
		return err
	}
	value := c.V[in.Register]
	ones, _ := c.address(2, in.Opcode())
	tens, _ := c.address(1, in.Opcode())
	hundreds, _ := c.address(0, in.Opcode())
	c.Memory[ones] = value % 10
	c.Memory[tens] = value / 10 % 10
	c.Memory[hundreds] = value / 100
	return nil
}
