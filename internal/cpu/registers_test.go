package cpu

import "testing"

func TestRegisterPair(t *testing.T) {
	c, _ := newTestCPU()
	pairs := map[string]*RegisterPair{"BC": c.BC, "DE": c.DE, "HL": c.HL}

	for name, pair := range pairs {
		for _, v := range []uint16{0x0000, 0x00FF, 0xFF00, 0x1234, 0xFFFF} {
			pair.SetUint16(v)
			if pair.Uint16() != v {
				t.Errorf("%s: expected 0x%04X, got 0x%04X", name, v, pair.Uint16())
			}
			if *pair.High != uint8(v>>8) || *pair.Low != uint8(v) {
				t.Errorf("%s: halves do not match 0x%04X", name, v)
			}
		}
	}

	c.B, c.C = 0x12, 0x34
	if c.BC.Uint16() != 0x1234 {
		t.Errorf("expected BC to reflect B and C, got 0x%04X", c.BC.Uint16())
	}

	// the low nibble of F cannot be written
	for v := 0; v < 0x10000; v += 0x0101 {
		c.AF.SetUint16(uint16(v))
		if want := uint16(v) & 0xFFF0; c.AF.Uint16() != want {
			t.Errorf("AF: expected 0x%04X, got 0x%04X", want, c.AF.Uint16())
		}
	}
}
