package cpu

import "github.com/thelolagemann/sm83/internal/types"

// carryIn returns the carry flag as the bit it becomes when rotated
// into a byte at the given mask.
func (c *CPU) carryIn(mask uint8) uint8 {
	if c.isFlagSet(FlagCarry) {
		return mask
	}
	return 0
}

// rotateLeftCarry rotates n left, bit 7 going to both bit 0 and C.
//
//	RLC n	C <- [7 <- 0] <- [7]
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	return c.shifted(n<<1|n>>7, n&types.Bit7 != 0)
}

// rotateRightCarry rotates n right, bit 0 going to both bit 7 and C.
//
//	RRC n	[0] -> [7 -> 0] -> C
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	return c.shifted(n>>1|n<<7, n&types.Bit0 != 0)
}

// rotateLeftThroughCarry rotates the nine bits formed by C and n left.
//
//	RL n	C <- [7 <- 0] <- C
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	return c.shifted(n<<1|c.carryIn(types.Bit0), n&types.Bit7 != 0)
}

// rotateRightThroughCarry rotates the nine bits formed by n and C right.
//
//	RR n	C -> [7 -> 0] -> C
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	return c.shifted(n>>1|c.carryIn(types.Bit7), n&types.Bit0 != 0)
}

// rotateAccumulator applies one of the rotates above to A. Unlike the
// CB forms, RLCA, RRCA, RLA and RRA always reset Z.
func rotateAccumulator(rotate shiftOp) func(*CPU) error {
	return exec(func(c *CPU) {
		c.A = rotate(c, c.A)
		c.clearFlag(FlagZero)
	})
}
