package cpu

// add8 adds b (and the carry flag, if useCarry) to a and
// sets the flags accordingly.
//
// Used by:
//
//	ADD A, n
//	ADC A, n
//	INC n (affectsCarry = false)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7, unless affectsCarry is false.
func (c *CPU) add8(a, b uint8, useCarry, affectsCarry bool) uint8 {
	var carryIn uint16
	if useCarry && c.isFlagSet(FlagCarry) {
		carryIn = 1
	}
	sum := uint16(a) + uint16(b) + carryIn
	sumHalf := uint16(a&0xF) + uint16(b&0xF) + carryIn

	carry := c.isFlagSet(FlagCarry)
	if affectsCarry {
		carry = sum > 0xFF
	}
	c.setFlags(uint8(sum) == 0, false, sumHalf > 0xF, carry)
	return uint8(sum)
}

// sub8 subtracts b (and the carry flag, if useCarry) from a and
// sets the flags accordingly.
//
// Used by:
//
//	SUB A, n
//	SBC A, n
//	CP n
//	DEC n (affectsCarry = false)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow, unless affectsCarry is false.
func (c *CPU) sub8(a, b uint8, useCarry, affectsCarry bool) uint8 {
	var carryIn int16
	if useCarry && c.isFlagSet(FlagCarry) {
		carryIn = 1
	}
	sub := int16(a) - int16(b) - carryIn
	subHalf := int16(a&0xF) - int16(b&0xF) - carryIn

	carry := c.isFlagSet(FlagCarry)
	if affectsCarry {
		carry = sub < 0
	}
	c.setFlags(uint8(sub) == 0, true, subHalf < 0, carry)
	return uint8(sub)
}

// add16 adds two uint16 values together and sets the flags accordingly.
//
// Used by:
//
//	ADD HL, nn
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) add16(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	c.setFlags(c.isFlagSet(FlagZero), false, (a&0xFFF)+(b&0xFFF) > 0xFFF, sum > 0xFFFF)
	return uint16(sum)
}

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	return c.add8(n, 1, false, false)
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	return c.sub8(n, 1, false, false)
}

// addSPSigned adds the signed 8-bit value n to SP and returns the
// result, leaving SP untouched. The half carry and carry flags are
// computed as if an unsigned 8-bit add of n to the low byte of SP
// had taken place.
//
// Used by:
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(n uint8) uint16 {
	result := uint16(int32(c.SP) + int32(int8(n)))
	c.setFlags(false, false, (c.SP&0xF)+uint16(n&0xF) > 0xF, (c.SP&0xFF)+uint16(n) > 0xFF)
	return result
}
