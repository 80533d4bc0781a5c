package cpu

import "testing"

func TestInstruction_LoadRegisterToRegister(t *testing.T) {
	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			opcode := uint8(0x40 + dst*8 + src)
			name := "LD " + registerNames[dst] + ", " + registerNames[src]
			if opcode == 0x76 {
				name = "HALT"
			}
			if got := InstructionSet[opcode].Name(); got != name {
				t.Errorf("expected opcode 0x%02X to be %s, got %s", opcode, name, got)
			}
			if dst == 6 || src == 6 {
				continue
			}

			c, _ := newTestCPU(opcode)
			for i, r := range []*Register{&c.B, &c.C, &c.D, &c.E, &c.H, &c.L} {
				*r = uint8(0x10 + i)
			}
			c.A = 0x17
			want := *operand(c, src)

			if cycles := mustStep(t, c); cycles != 4 {
				t.Errorf("%s: expected 4 cycles, got %d", name, cycles)
			}
			if got := *operand(c, dst); got != want {
				t.Errorf("%s: expected 0x%02X, got 0x%02X", name, want, got)
			}
		}
	}
}

func TestInstruction_LoadMemory(t *testing.T) {
	for i := 0; i < 8; i++ {
		if i == 6 {
			continue
		}
		name := registerNames[i]

		// LD r, (HL)
		c, bus := newTestCPU(uint8(0x46 + i*8))
		c.HL.SetUint16(0xD123)
		bus[0xD123] = 0x99
		if cycles := mustStep(t, c); cycles != 8 {
			t.Errorf("LD %s, (HL): expected 8 cycles, got %d", name, cycles)
		}
		if *operand(c, i) != 0x99 {
			t.Errorf("LD %s, (HL): expected 0x99, got 0x%02X", name, *operand(c, i))
		}

		// LD (HL), r
		c, bus = newTestCPU(uint8(0x70 + i))
		c.HL.SetUint16(0xD123)
		if i != 4 && i != 5 {
			*operand(c, i) = 0x42
		}
		want, address := *operand(c, i), c.HL.Uint16()
		if cycles := mustStep(t, c); cycles != 8 {
			t.Errorf("LD (HL), %s: expected 8 cycles, got %d", name, cycles)
		}
		if bus[address] != want {
			t.Errorf("LD (HL), %s: expected 0x%02X, got 0x%02X", name, want, bus[address])
		}
	}

	testInstruction(t, "LD (HL), d8", 0x36, func(t *testing.T, c *CPU, bus *testBus) {
		c.HL.SetUint16(0xD000)
		bus[testOrigin+1] = 0x5A
		if cycles := mustStep(t, c); cycles != 12 {
			t.Errorf("expected 12 cycles, got %d", cycles)
		}
		if bus[0xD000] != 0x5A {
			t.Errorf("expected 0x5A, got 0x%02X", bus[0xD000])
		}
	})
}

func TestInstruction_LoadImmediate(t *testing.T) {
	opcodes := [8]uint8{0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E}
	for i, opcode := range opcodes {
		if i == 6 {
			continue
		}
		c, _ := newTestCPU(opcode, 0xA5)
		if cycles := mustStep(t, c); cycles != 8 {
			t.Errorf("LD %s, d8: expected 8 cycles, got %d", registerNames[i], cycles)
		}
		if *operand(c, i) != 0xA5 {
			t.Errorf("LD %s, d8: expected 0xA5, got 0x%02X", registerNames[i], *operand(c, i))
		}
		if c.PC != testOrigin+2 {
			t.Errorf("LD %s, d8: expected PC to be 0x%04X, got 0x%04X", registerNames[i], testOrigin+2, c.PC)
		}
	}

	testInstruction(t, "LD BC, d16", 0x01, func(t *testing.T, c *CPU, bus *testBus) {
		bus[testOrigin+1] = 0x34
		bus[testOrigin+2] = 0x12
		if cycles := mustStep(t, c); cycles != 12 {
			t.Errorf("expected 12 cycles, got %d", cycles)
		}
		if c.BC.Uint16() != 0x1234 || c.PC != testOrigin+3 {
			t.Errorf("expected BC to be 0x1234, got 0x%04X", c.BC.Uint16())
		}
	})
	testInstruction(t, "LD SP, d16", 0x31, func(t *testing.T, c *CPU, bus *testBus) {
		bus[testOrigin+1] = 0xFE
		bus[testOrigin+2] = 0xDF
		mustStep(t, c)
		if c.SP != 0xDFFE {
			t.Errorf("expected SP to be 0xDFFE, got 0x%04X", c.SP)
		}
	})
}

func TestInstruction_LoadIndirect(t *testing.T) {
	testInstruction(t, "LD (BC), A", 0x02, func(t *testing.T, c *CPU, bus *testBus) {
		c.A = 0x77
		c.BC.SetUint16(0xD001)
		mustStep(t, c)
		if bus[0xD001] != 0x77 {
			t.Errorf("expected 0x77, got 0x%02X", bus[0xD001])
		}
	})
	testInstruction(t, "LD A, (DE)", 0x1A, func(t *testing.T, c *CPU, bus *testBus) {
		c.DE.SetUint16(0xD002)
		bus[0xD002] = 0x66
		mustStep(t, c)
		if c.A != 0x66 {
			t.Errorf("expected A to be 0x66, got 0x%02X", c.A)
		}
	})
	testInstruction(t, "LD (HL+), A", 0x22, func(t *testing.T, c *CPU, bus *testBus) {
		c.A = 0x11
		c.HL.SetUint16(0xD0FF)
		mustStep(t, c)
		if bus[0xD0FF] != 0x11 || c.HL.Uint16() != 0xD100 {
			t.Errorf("expected store then increment, got 0x%02X 0x%04X", bus[0xD0FF], c.HL.Uint16())
		}
	})
	testInstruction(t, "LD (HL-), A", 0x32, func(t *testing.T, c *CPU, bus *testBus) {
		c.A = 0x22
		c.HL.SetUint16(0xD100)
		mustStep(t, c)
		if bus[0xD100] != 0x22 || c.HL.Uint16() != 0xD0FF {
			t.Errorf("expected store then decrement, got 0x%02X 0x%04X", bus[0xD100], c.HL.Uint16())
		}
	})
	testInstruction(t, "LD A, (HL+)", 0x2A, func(t *testing.T, c *CPU, bus *testBus) {
		c.HL.SetUint16(0xFFFF)
		bus[0xFFFF] = 0x33
		mustStep(t, c)
		if c.A != 0x33 || c.HL.Uint16() != 0x0000 {
			t.Errorf("expected load then wrapping increment, got 0x%02X 0x%04X", c.A, c.HL.Uint16())
		}
	})
	testInstruction(t, "LD A, (HL-)", 0x3A, func(t *testing.T, c *CPU, bus *testBus) {
		c.HL.SetUint16(0xD000)
		bus[0xD000] = 0x44
		mustStep(t, c)
		if c.A != 0x44 || c.HL.Uint16() != 0xCFFF {
			t.Errorf("expected load then decrement, got 0x%02X 0x%04X", c.A, c.HL.Uint16())
		}
	})
}

func TestInstruction_LoadHigh(t *testing.T) {
	testInstruction(t, "LDH (a8), A", 0xE0, func(t *testing.T, c *CPU, bus *testBus) {
		c.A = 0x81
		bus[testOrigin+1] = 0x02
		if cycles := mustStep(t, c); cycles != 12 {
			t.Errorf("expected 12 cycles, got %d", cycles)
		}
		if bus[0xFF02] != 0x81 {
			t.Errorf("expected 0x81 at 0xFF02, got 0x%02X", bus[0xFF02])
		}
	})
	testInstruction(t, "LDH A, (a8)", 0xF0, func(t *testing.T, c *CPU, bus *testBus) {
		bus[testOrigin+1] = 0x44
		bus[0xFF44] = 0x90
		mustStep(t, c)
		if c.A != 0x90 {
			t.Errorf("expected A to be 0x90, got 0x%02X", c.A)
		}
	})
	testInstruction(t, "LD (C), A", 0xE2, func(t *testing.T, c *CPU, bus *testBus) {
		c.A = 0x12
		c.C = 0x80
		if cycles := mustStep(t, c); cycles != 8 {
			t.Errorf("expected 8 cycles, got %d", cycles)
		}
		if bus[0xFF80] != 0x12 {
			t.Errorf("expected 0x12 at 0xFF80, got 0x%02X", bus[0xFF80])
		}
	})
	testInstruction(t, "LD A, (C)", 0xF2, func(t *testing.T, c *CPU, bus *testBus) {
		c.C = 0x81
		bus[0xFF81] = 0x34
		mustStep(t, c)
		if c.A != 0x34 {
			t.Errorf("expected A to be 0x34, got 0x%02X", c.A)
		}
	})
	testInstruction(t, "LD (a16), A", 0xEA, func(t *testing.T, c *CPU, bus *testBus) {
		c.A = 0x56
		bus[testOrigin+1] = 0x00
		bus[testOrigin+2] = 0xD8
		if cycles := mustStep(t, c); cycles != 16 {
			t.Errorf("expected 16 cycles, got %d", cycles)
		}
		if bus[0xD800] != 0x56 {
			t.Errorf("expected 0x56 at 0xD800, got 0x%02X", bus[0xD800])
		}
	})
	testInstruction(t, "LD A, (a16)", 0xFA, func(t *testing.T, c *CPU, bus *testBus) {
		bus[testOrigin+1] = 0x00
		bus[testOrigin+2] = 0xD8
		bus[0xD800] = 0x78
		mustStep(t, c)
		if c.A != 0x78 || c.PC != testOrigin+3 {
			t.Errorf("expected A to be 0x78, got 0x%02X", c.A)
		}
	})
}

func TestInstruction_LoadStackPointer(t *testing.T) {
	testInstruction(t, "LD (a16), SP", 0x08, func(t *testing.T, c *CPU, bus *testBus) {
		c.SP = 0xBEEF
		bus[testOrigin+1] = 0x00
		bus[testOrigin+2] = 0xD0
		if cycles := mustStep(t, c); cycles != 20 {
			t.Errorf("expected 20 cycles, got %d", cycles)
		}
		if bus[0xD000] != 0xEF || bus[0xD001] != 0xBE {
			t.Errorf("expected 0xBEEF little-endian at 0xD000, got %02X %02X", bus[0xD000], bus[0xD001])
		}
	})
	testInstruction(t, "LD SP, HL", 0xF9, func(t *testing.T, c *CPU, _ *testBus) {
		c.HL.SetUint16(0xCAFE)
		if cycles := mustStep(t, c); cycles != 8 {
			t.Errorf("expected 8 cycles, got %d", cycles)
		}
		if c.SP != 0xCAFE {
			t.Errorf("expected SP to be 0xCAFE, got 0x%04X", c.SP)
		}
	})
	testInstruction(t, "LD HL, SP+r8", 0xF8, func(t *testing.T, c *CPU, bus *testBus) {
		c.SP = 0xFFF8
		bus[testOrigin+1] = 0x08
		if cycles := mustStep(t, c); cycles != 12 {
			t.Errorf("expected 12 cycles, got %d", cycles)
		}
		if c.HL.Uint16() != 0x0000 || c.SP != 0xFFF8 {
			t.Errorf("expected HL to be 0x0000, got 0x%04X", c.HL.Uint16())
		}
		if !c.isFlagsSet(FlagHalfCarry, FlagCarry) || c.isFlagSet(FlagZero) {
			t.Errorf("expected H and C set with Z reset, got %08b", c.F)
		}
	})
}
