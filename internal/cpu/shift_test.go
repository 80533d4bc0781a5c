package cpu

import "testing"

func TestCPU_Shift(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(c *CPU, n uint8) uint8
		n     uint8
		want  uint8
		carry bool
	}{
		{"SLA", (*CPU).shiftLeftArithmetic, 0x81, 0x02, true},
		{"SLA zero", (*CPU).shiftLeftArithmetic, 0x80, 0x00, true},
		{"SLA no carry", (*CPU).shiftLeftArithmetic, 0x7F, 0xFE, false},
		{"SRA", (*CPU).shiftRightArithmetic, 0x8A, 0xC5, false},
		{"SRA carry", (*CPU).shiftRightArithmetic, 0x01, 0x00, true},
		{"SRL", (*CPU).shiftRightLogical, 0xFF, 0x7F, true},
		{"SRL zero", (*CPU).shiftRightLogical, 0x00, 0x00, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCPU()
			c.F = 0xF0
			got := tt.fn(c, tt.n)
			if got != tt.want {
				t.Errorf("expected 0x%02X, got 0x%02X", tt.want, got)
			}
			if c.isFlagSet(FlagCarry) != tt.carry {
				t.Errorf("expected carry to be %v", tt.carry)
			}
			if c.isFlagSet(FlagZero) != (tt.want == 0) || c.isFlagSet(FlagSubtract) || c.isFlagSet(FlagHalfCarry) {
				t.Errorf("unexpected flags %08b", c.F)
			}
		})
	}
}

func TestInstruction_ShiftExtended(t *testing.T) {
	// CB 20 - SLA B
	c, _ := newTestCPU(0xCB, 0x20)
	c.B = 0x40
	if cycles := mustStep(t, c); cycles != 8 {
		t.Errorf("expected 8 cycles, got %d", cycles)
	}
	if c.B != 0x80 {
		t.Errorf("expected B to be 0x80, got 0x%02X", c.B)
	}

	// CB 3E - SRL (HL)
	c, bus := newTestCPU(0xCB, 0x3E)
	c.HL.SetUint16(0xD000)
	bus[0xD000] = 0x01
	if cycles := mustStep(t, c); cycles != 16 {
		t.Errorf("expected 16 cycles, got %d", cycles)
	}
	if bus[0xD000] != 0x00 || c.F != 0x90 {
		t.Errorf("expected 0x00 with Z and C set, got 0x%02X %08b", bus[0xD000], c.F)
	}
}
