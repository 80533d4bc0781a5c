package cpu

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags, and only its upper 4 bits
// are ever set.
type Register = uint8

// RegisterPair represents a pair of GB Registers which is used to hold a 16-bit
// value. The CPU has 4 register pairs: AF, BC, DE, and HL. The High register
// holds the most significant byte.
type RegisterPair struct {
	High *Register
	Low  *Register

	lowMask uint8 // writable bits of Low
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value) & r.lowMask
}

// Registers represents the GB CPU registers.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// pair wires up the register pairs to the registers they are made of.
func (r *Registers) pair() {
	r.BC = &RegisterPair{High: &r.B, Low: &r.C, lowMask: 0xFF}
	r.DE = &RegisterPair{High: &r.D, Low: &r.E, lowMask: 0xFF}
	r.HL = &RegisterPair{High: &r.H, Low: &r.L, lowMask: 0xFF}
	r.AF = &RegisterPair{High: &r.A, Low: &r.F, lowMask: 0xF0}
}

// register selectors, used to build the instruction tables before
// any CPU exists.

func regA(c *CPU) *Register { return &c.A }
func regB(c *CPU) *Register { return &c.B }
func regC(c *CPU) *Register { return &c.C }
func regD(c *CPU) *Register { return &c.D }
func regE(c *CPU) *Register { return &c.E }
func regH(c *CPU) *Register { return &c.H }
func regL(c *CPU) *Register { return &c.L }

func pairBC(c *CPU) *RegisterPair { return c.BC }
func pairDE(c *CPU) *RegisterPair { return c.DE }
func pairHL(c *CPU) *RegisterPair { return c.HL }
func pairAF(c *CPU) *RegisterPair { return c.AF }
