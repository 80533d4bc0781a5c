package cpu

// handlers shared by the instruction tables. Each returns the function
// executed for a single opcode, so that the tables stay declarative.

type (
	register8  = func(*CPU) *Register
	register16 = func(*CPU) *RegisterPair
	aluOp      = func(c *CPU, n uint8)
	shiftOp    = func(c *CPU, n uint8) uint8
)

// loadRegisterToRegister copies src into dst. LD B, B and friends are
// real moves too.
//
//	LD r, r'
//	r, r' = A, B, C, D, E, H, L
func loadRegisterToRegister(dst, src register8) func(*CPU) error {
	return func(c *CPU) error {
		*dst(c) = *src(c)
		return nil
	}
}

// loadRegister8 loads the immediate value into dst.
//
//	LD r, d8
func loadRegister8(dst register8) func(*CPU) error {
	return func(c *CPU) error {
		*dst(c) = c.readOperand()
		return nil
	}
}

// loadMemoryToRegister loads the value at (HL) into dst.
//
//	LD r, (HL)
func loadMemoryToRegister(dst register8) func(*CPU) error {
	return func(c *CPU) error {
		*dst(c) = c.readByte(c.HL.Uint16())
		return nil
	}
}

// loadRegisterToMemory stores src at (HL).
//
//	LD (HL), r
func loadRegisterToMemory(src register8) func(*CPU) error {
	return func(c *CPU) error {
		c.writeByte(c.HL.Uint16(), *src(c))
		return nil
	}
}

// loadRegister16 loads the 16-bit immediate value into pair.
//
//	LD nn, d16
//	nn = BC, DE, HL
func loadRegister16(pair register16) func(*CPU) error {
	return func(c *CPU) error {
		pair(c).SetUint16(c.readOperand16())
		return nil
	}
}

// loadAccumulatorToPair stores A at the address held by pair, then adds
// step to HL (for LD (HL+), A and LD (HL-), A).
//
//	LD (nn), A
func loadAccumulatorToPair(pair register16, step uint16) func(*CPU) error {
	return func(c *CPU) error {
		c.writeByte(pair(c).Uint16(), c.A)
		if step != 0 {
			c.HL.SetUint16(c.HL.Uint16() + step)
		}
		return nil
	}
}

// loadPairToAccumulator loads A from the address held by pair, then adds
// step to HL (for LD A, (HL+) and LD A, (HL-)).
//
//	LD A, (nn)
func loadPairToAccumulator(pair register16, step uint16) func(*CPU) error {
	return func(c *CPU) error {
		c.A = c.readByte(pair(c).Uint16())
		if step != 0 {
			c.HL.SetUint16(c.HL.Uint16() + step)
		}
		return nil
	}
}

// incrementRegister and decrementRegister handle INC r and DEC r.
func incrementRegister(r register8) func(*CPU) error {
	return func(c *CPU) error {
		*r(c) = c.increment(*r(c))
		return nil
	}
}

func decrementRegister(r register8) func(*CPU) error {
	return func(c *CPU) error {
		*r(c) = c.decrement(*r(c))
		return nil
	}
}

// incrementNN and decrementNN handle INC nn and DEC nn, which leave the
// flags untouched.
func incrementNN(pair register16) func(*CPU) error {
	return func(c *CPU) error {
		p := pair(c)
		p.SetUint16(p.Uint16() + 1)
		return nil
	}
}

func decrementNN(pair register16) func(*CPU) error {
	return func(c *CPU) error {
		p := pair(c)
		p.SetUint16(p.Uint16() - 1)
		return nil
	}
}

// addHLRR adds the given RegisterPair to the HL RegisterPair.
//
//	ADD HL, nn
func addHLRR(pair register16) func(*CPU) error {
	return func(c *CPU) error {
		c.HL.SetUint16(c.add16(c.HL.Uint16(), pair(c).Uint16()))
		return nil
	}
}

// aluRegister, aluMemory and aluImmediate apply an 8-bit ALU operation
// to A with a register, (HL) or an immediate operand.
func aluRegister(op aluOp, src register8) func(*CPU) error {
	return func(c *CPU) error {
		op(c, *src(c))
		return nil
	}
}

func aluMemory(op aluOp) func(*CPU) error {
	return func(c *CPU) error {
		op(c, c.readByte(c.HL.Uint16()))
		return nil
	}
}

func aluImmediate(op aluOp) func(*CPU) error {
	return func(c *CPU) error {
		op(c, c.readOperand())
		return nil
	}
}

// exec adapts a handler that cannot fail.
func exec(fn func(c *CPU)) func(*CPU) error {
	return func(c *CPU) error {
		fn(c)
		return nil
	}
}

// prefix fetches the second byte of a prefixed instruction and
// dispatches it to StepExtended.
func prefix(p uint8) func(*CPU) error {
	return func(c *CPU) error {
		cycles, err := c.StepExtended(p, c.readOperand())
		if err != nil {
			return err
		}
		c.extended = cycles
		return nil
	}
}

func unknownOpcode(*CPU) error {
	return ErrUnknownOpcode
}

func unimplementedOpcode(*CPU) error {
	return ErrUnimplementedOpcode
}
