package cpu

// push16 pushes a 16 bit value onto the stack.
func (c *CPU) push16(value uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value))
}

// pop16 pops a 16 bit value off the stack.
func (c *CPU) pop16() uint16 {
	low := uint16(c.readByte(c.SP))
	c.SP++
	high := uint16(c.readByte(c.SP))
	c.SP++
	return high<<8 | low
}

// jumpRelative reads a signed offset and, if cond holds, adds it to PC.
//
//	JR cc, e
//	cc = NZ, Z, NC, C (or none)
//	e = 8-bit signed immediate value
func jumpRelative(cond condition) func(*CPU) error {
	return func(c *CPU) error {
		offset := int8(c.readOperand())
		if cond(c) {
			c.PC = uint16(int32(c.PC) + int32(offset))
			c.branched = true
		}
		return nil
	}
}

// jumpAbsolute reads an address and, if cond holds, jumps to it.
//
//	JP cc, nn
//	cc = NZ, Z, NC, C (or none)
//	nn = 16-bit immediate value
func jumpAbsolute(cond condition) func(*CPU) error {
	return func(c *CPU) error {
		address := c.readOperand16()
		if cond(c) {
			c.PC = address
			c.branched = true
		}
		return nil
	}
}

// call reads an address and, if cond holds, pushes the address of the
// next instruction onto the stack and jumps to it.
//
//	CALL cc, nn
//	cc = NZ, Z, NC, C (or none)
//	nn = 16-bit immediate value
func call(cond condition) func(*CPU) error {
	return func(c *CPU) error {
		address := c.readOperand16()
		if cond(c) {
			c.push16(c.PC)
			c.PC = address
			c.branched = true
		}
		return nil
	}
}

// ret pops the return address off the stack and jumps to it, if
// cond holds.
//
//	RET cc
//	cc = NZ, Z, NC, C (or none)
func ret(cond condition) func(*CPU) error {
	return func(c *CPU) error {
		if cond(c) {
			c.PC = c.pop16()
			c.branched = true
		}
		return nil
	}
}

// retInterrupt returns from an interrupt handler, enabling the IME
// straight away.
//
//	RETI
func retInterrupt(c *CPU) error {
	c.PC = c.pop16()
	c.IME = true
	c.imeDelay = 0
	return nil
}

// restart pushes PC and jumps to one of the fixed restart vectors.
//
//	RST n
//	n = 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38
func restart(vector uint16) func(*CPU) error {
	return func(c *CPU) error {
		c.push16(c.PC)
		c.PC = vector
		return nil
	}
}

// push pushes a register pair onto the stack.
//
//	PUSH nn
//	nn = AF, BC, DE, HL
func push(pair func(*CPU) *RegisterPair) func(*CPU) error {
	return func(c *CPU) error {
		c.push16(pair(c).Uint16())
		return nil
	}
}

// pop pops a register pair off the stack. Popping into AF discards
// the low nibble of F.
//
//	POP nn
//	nn = AF, BC, DE, HL
func pop(pair func(*CPU) *RegisterPair) func(*CPU) error {
	return func(c *CPU) error {
		pair(c).SetUint16(c.pop16())
		return nil
	}
}
