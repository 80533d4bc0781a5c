package cpu

import "github.com/thelolagemann/sm83/internal/types"

// shifted stores the flags shared by every CB rotate, shift and swap:
// Z from the result, N and H reset, C from the bit moved out.
func (c *CPU) shifted(result uint8, carry bool) uint8 {
	c.setFlags(result == 0, false, false, carry)
	return result
}

// shiftLeftArithmetic moves n left, filling bit 0 with zero.
//
//	SLA n	C <- [7 <- 0] <- 0
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	return c.shifted(n<<1, n&types.Bit7 != 0)
}

// shiftRightArithmetic moves n right, keeping the sign bit.
//
//	SRA n	[7] -> [7 -> 0] -> C
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	return c.shifted(n>>1|n&types.Bit7, n&types.Bit0 != 0)
}

// shiftRightLogical moves n right, filling bit 7 with zero.
//
//	SRL n	0 -> [7 -> 0] -> C
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	return c.shifted(n>>1, n&types.Bit0 != 0)
}
