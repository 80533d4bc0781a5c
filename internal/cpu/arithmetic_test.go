package cpu

import "testing"

func TestCPU_add8(t *testing.T) {
	c, _ := newTestCPU()
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			for _, carryIn := range []bool{false, true} {
				c.setFlags(false, true, false, carryIn)

				carry := 0
				if carryIn {
					carry = 1
				}
				want := a + b + carry
				got := c.add8(uint8(a), uint8(b), true, true)

				if got != uint8(want) {
					t.Fatalf("0x%02X + 0x%02X + %d: expected 0x%02X, got 0x%02X", a, b, carry, uint8(want), got)
				}
				if c.isFlagSet(FlagZero) != (uint8(want) == 0) {
					t.Fatalf("0x%02X + 0x%02X + %d: wrong zero flag", a, b, carry)
				}
				if c.isFlagSet(FlagSubtract) {
					t.Fatalf("0x%02X + 0x%02X + %d: subtract flag set", a, b, carry)
				}
				if c.isFlagSet(FlagHalfCarry) != ((a&0xF)+(b&0xF)+carry > 0xF) {
					t.Fatalf("0x%02X + 0x%02X + %d: wrong half carry flag", a, b, carry)
				}
				if c.isFlagSet(FlagCarry) != (want > 0xFF) {
					t.Fatalf("0x%02X + 0x%02X + %d: wrong carry flag", a, b, carry)
				}
				if c.F&0x0F != 0 {
					t.Fatalf("low nibble of F set: %08b", c.F)
				}
			}
		}
	}
}

func TestCPU_sub8(t *testing.T) {
	c, _ := newTestCPU()
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			for _, carryIn := range []bool{false, true} {
				c.setFlags(false, false, false, carryIn)

				carry := 0
				if carryIn {
					carry = 1
				}
				want := a - b - carry
				got := c.sub8(uint8(a), uint8(b), true, true)

				if got != uint8(want) {
					t.Fatalf("0x%02X - 0x%02X - %d: expected 0x%02X, got 0x%02X", a, b, carry, uint8(want), got)
				}
				if c.isFlagSet(FlagZero) != (uint8(want) == 0) {
					t.Fatalf("0x%02X - 0x%02X - %d: wrong zero flag", a, b, carry)
				}
				if !c.isFlagSet(FlagSubtract) {
					t.Fatalf("0x%02X - 0x%02X - %d: subtract flag reset", a, b, carry)
				}
				if c.isFlagSet(FlagHalfCarry) != ((a&0xF)-(b&0xF)-carry < 0) {
					t.Fatalf("0x%02X - 0x%02X - %d: wrong half carry flag", a, b, carry)
				}
				if c.isFlagSet(FlagCarry) != (want < 0) {
					t.Fatalf("0x%02X - 0x%02X - %d: wrong carry flag", a, b, carry)
				}
			}
		}
	}
}

func TestCPU_add16(t *testing.T) {
	tests := []struct {
		a, b      uint16
		want      uint16
		halfCarry bool
		carry     bool
	}{
		{0x0000, 0x0000, 0x0000, false, false},
		{0x0FFF, 0x0001, 0x1000, true, false},
		{0xFFFF, 0x0001, 0x0000, true, true},
		{0x8000, 0x8000, 0x0000, false, true},
		{0x1234, 0x1111, 0x2345, false, false},
	}
	for _, tt := range tests {
		for _, zero := range []bool{false, true} {
			c, _ := newTestCPU()
			c.setFlags(zero, true, false, false)

			got := c.add16(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("0x%04X + 0x%04X: expected 0x%04X, got 0x%04X", tt.a, tt.b, tt.want, got)
			}
			if c.isFlagSet(FlagZero) != zero {
				t.Errorf("0x%04X + 0x%04X: zero flag modified", tt.a, tt.b)
			}
			if c.isFlagSet(FlagSubtract) {
				t.Errorf("0x%04X + 0x%04X: subtract flag set", tt.a, tt.b)
			}
			if c.isFlagSet(FlagHalfCarry) != tt.halfCarry || c.isFlagSet(FlagCarry) != tt.carry {
				t.Errorf("0x%04X + 0x%04X: wrong carry flags %08b", tt.a, tt.b, c.F)
			}
		}
	}
}

func TestCPU_addSPSigned(t *testing.T) {
	tests := []struct {
		sp        uint16
		n         uint8
		want      uint16
		halfCarry bool
		carry     bool
	}{
		{0xFFF8, 0x02, 0xFFFA, false, false},
		{0xFFF8, 0x08, 0x0000, true, true},
		{0x0000, 0xFF, 0xFFFF, false, false},
		{0x0001, 0xFF, 0x0000, true, true},
		{0x000F, 0x01, 0x0010, true, false},
		{0x00F0, 0x10, 0x0100, false, true},
		{0x1000, 0x80, 0x0F80, false, false},
	}
	for _, tt := range tests {
		c, _ := newTestCPU()
		c.SP = tt.sp
		c.setFlags(true, true, false, false)

		got := c.addSPSigned(tt.n)
		if got != tt.want {
			t.Errorf("0x%04X + %d: expected 0x%04X, got 0x%04X", tt.sp, int8(tt.n), tt.want, got)
		}
		if c.SP != tt.sp {
			t.Errorf("0x%04X + %d: SP modified", tt.sp, int8(tt.n))
		}
		if c.isFlagSet(FlagZero) || c.isFlagSet(FlagSubtract) {
			t.Errorf("0x%04X + %d: expected Z and N reset, got %08b", tt.sp, int8(tt.n), c.F)
		}
		if c.isFlagSet(FlagHalfCarry) != tt.halfCarry || c.isFlagSet(FlagCarry) != tt.carry {
			t.Errorf("0x%04X + %d: wrong carry flags %08b", tt.sp, int8(tt.n), c.F)
		}
	}
}

func TestInstruction_Arithmetic(t *testing.T) {
	incOpcodes := [8]uint8{0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x34, 0x3C}
	decOpcodes := [8]uint8{0x05, 0x0D, 0x15, 0x1D, 0x25, 0x2D, 0x35, 0x3D}

	for i, name := range registerNames {
		i := i
		testInstruction(t, "INC "+name, incOpcodes[i], func(t *testing.T, c *CPU, bus *testBus) {
			c.HL.SetUint16(0xD000)
			set := func(v uint8) {
				if i == 6 {
					bus[0xD000] = v
				} else {
					*operand(c, i) = v
				}
			}
			get := func() uint8 {
				if i == 6 {
					return bus[0xD000]
				}
				return *operand(c, i)
			}

			set(0x0F)
			c.setFlag(FlagCarry)
			mustStep(t, c)
			if get() != 0x10 {
				t.Errorf("expected 0x10, got 0x%02X", get())
			}
			if !c.isFlagsSet(FlagHalfCarry, FlagCarry) || c.isFlagSet(FlagZero) || c.isFlagSet(FlagSubtract) {
				t.Errorf("expected H and C set, got %08b", c.F)
			}

			c.PC = testOrigin
			set(0xFF)
			c.clearFlag(FlagCarry)
			mustStep(t, c)
			if get() != 0x00 || !c.isFlagsSet(FlagZero, FlagHalfCarry) || c.isFlagSet(FlagCarry) {
				t.Errorf("expected wrap to 0 with Z and H set, got 0x%02X %08b", get(), c.F)
			}
		})
		testInstruction(t, "DEC "+name, decOpcodes[i], func(t *testing.T, c *CPU, bus *testBus) {
			c.HL.SetUint16(0xD000)
			if i == 6 {
				bus[0xD000] = 0x10
			} else {
				*operand(c, i) = 0x10
			}
			c.setFlag(FlagCarry)

			mustStep(t, c)
			got := bus[0xD000]
			if i != 6 {
				got = *operand(c, i)
			}
			if got != 0x0F {
				t.Errorf("expected 0x0F, got 0x%02X", got)
			}
			if !c.isFlagsSet(FlagSubtract, FlagHalfCarry, FlagCarry) || c.isFlagSet(FlagZero) {
				t.Errorf("expected N, H and C set, got %08b", c.F)
			}
		})
	}

	// 0x03 - 0x3B INC/DEC rr
	pairs := []struct {
		name string
		pair func(*CPU) *RegisterPair
		inc  uint8
	}{
		{"BC", pairBC, 0x03},
		{"DE", pairDE, 0x13},
		{"HL", pairHL, 0x23},
	}
	for _, p := range pairs {
		p := p
		testInstruction(t, "INC "+p.name, p.inc, func(t *testing.T, c *CPU, _ *testBus) {
			p.pair(c).SetUint16(0xFFFF)
			c.F = 0xF0
			if cycles := mustStep(t, c); cycles != 8 {
				t.Errorf("expected 8 cycles, got %d", cycles)
			}
			if p.pair(c).Uint16() != 0x0000 {
				t.Errorf("expected 0x0000, got 0x%04X", p.pair(c).Uint16())
			}
			if c.F != 0xF0 {
				t.Errorf("expected flags to be untouched, got %08b", c.F)
			}
		})
		testInstruction(t, "DEC "+p.name, p.inc+0x08, func(t *testing.T, c *CPU, _ *testBus) {
			p.pair(c).SetUint16(0x0000)
			mustStep(t, c)
			if p.pair(c).Uint16() != 0xFFFF {
				t.Errorf("expected 0xFFFF, got 0x%04X", p.pair(c).Uint16())
			}
		})
	}
	testInstruction(t, "INC SP", 0x33, func(t *testing.T, c *CPU, _ *testBus) {
		c.SP = 0x1234
		mustStep(t, c)
		if c.SP != 0x1235 {
			t.Errorf("expected SP to be 0x1235, got 0x%04X", c.SP)
		}
	})

	testInstruction(t, "ADD HL, DE", 0x19, func(t *testing.T, c *CPU, _ *testBus) {
		c.HL.SetUint16(0x8A23)
		c.DE.SetUint16(0x0605)
		if cycles := mustStep(t, c); cycles != 8 {
			t.Errorf("expected 8 cycles, got %d", cycles)
		}
		if c.HL.Uint16() != 0x9028 {
			t.Errorf("expected HL to be 0x9028, got 0x%04X", c.HL.Uint16())
		}
		if !c.isFlagSet(FlagHalfCarry) || c.isFlagSet(FlagCarry) {
			t.Errorf("expected H set and C reset, got %08b", c.F)
		}
	})
	testInstruction(t, "ADD HL, HL", 0x29, func(t *testing.T, c *CPU, _ *testBus) {
		c.HL.SetUint16(0x8A23)
		mustStep(t, c)
		if c.HL.Uint16() != 0x1446 || !c.isFlagsSet(FlagHalfCarry, FlagCarry) {
			t.Errorf("expected 0x1446 with H and C set, got 0x%04X %08b", c.HL.Uint16(), c.F)
		}
	})

	testInstruction(t, "ADD SP, r8", 0xE8, func(t *testing.T, c *CPU, bus *testBus) {
		c.SP = 0xFFF8
		bus[testOrigin+1] = 0x02
		if cycles := mustStep(t, c); cycles != 16 {
			t.Errorf("expected 16 cycles, got %d", cycles)
		}
		if c.SP != 0xFFFA {
			t.Errorf("expected SP to be 0xFFFA, got 0x%04X", c.SP)
		}
		if c.F != 0 {
			t.Errorf("expected no flags, got %08b", c.F)
		}
	})

	// 0x80 - 0xBF ALU A, r
	aluNames := [8]string{"ADD A, ", "ADC A, ", "SUB ", "SBC A, ", "AND ", "XOR ", "OR ", "CP "}
	for op, mnemonic := range aluNames {
		for i, name := range registerNames {
			opcode := uint8(0x80 + op*8 + i)
			if got := InstructionSet[opcode].Name(); got != mnemonic+name {
				t.Errorf("expected opcode 0x%02X to be %s, got %s", opcode, mnemonic+name, got)
			}
		}
	}

	testInstruction(t, "ADC A, d8", 0xCE, func(t *testing.T, c *CPU, bus *testBus) {
		c.A = 0xE1
		bus[testOrigin+1] = 0x1E
		c.setFlag(FlagCarry)
		mustStep(t, c)
		if c.A != 0x00 || !c.isFlagsSet(FlagZero, FlagHalfCarry, FlagCarry) {
			t.Errorf("expected 0x00 with Z, H and C set, got 0x%02X %08b", c.A, c.F)
		}
	})
	testInstruction(t, "SUB (HL)", 0x96, func(t *testing.T, c *CPU, bus *testBus) {
		c.A = 0x3E
		c.HL.SetUint16(0xD000)
		bus[0xD000] = 0x40
		if cycles := mustStep(t, c); cycles != 8 {
			t.Errorf("expected 8 cycles, got %d", cycles)
		}
		if c.A != 0xFE || !c.isFlagsSet(FlagSubtract, FlagCarry) || c.isFlagSet(FlagHalfCarry) {
			t.Errorf("expected 0xFE with N and C set, got 0x%02X %08b", c.A, c.F)
		}
	})
	testInstruction(t, "SBC A, H", 0x9C, func(t *testing.T, c *CPU, _ *testBus) {
		c.A = 0x3B
		c.H = 0x2A
		c.setFlag(FlagCarry)
		mustStep(t, c)
		if c.A != 0x10 || c.isFlagSet(FlagCarry) || c.isFlagSet(FlagHalfCarry) {
			t.Errorf("expected 0x10 with no borrow, got 0x%02X %08b", c.A, c.F)
		}
	})
	testInstruction(t, "SUB A", 0x97, func(t *testing.T, c *CPU, _ *testBus) {
		c.A = 0x42
		mustStep(t, c)
		if c.A != 0 || c.F != 0xC0 {
			t.Errorf("expected 0 with Z and N set, got 0x%02X %08b", c.A, c.F)
		}
	})
}
