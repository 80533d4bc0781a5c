package cpu

// Flag is the bit position of a flag within F.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// clearFlag resets flag, leaving the others untouched.
func (c *CPU) clearFlag(flag Flag) {
	c.F = resetBit(c.F, flag)
}

// setFlag sets flag, leaving the others untouched.
func (c *CPU) setFlag(flag Flag) {
	c.F = setBit(c.F, flag)
}

// setFlags overwrites all four flags at once, leaving the low nibble
// of F clear.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.F = flagBit(zero, FlagZero) | flagBit(subtract, FlagSubtract) |
		flagBit(halfCarry, FlagHalfCarry) | flagBit(carry, FlagCarry)
}

func flagBit(set bool, flag Flag) uint8 {
	if set {
		return 1 << flag
	}
	return 0
}

// isFlagSet reports whether flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&(1<<flag) != 0
}

// isFlagsSet reports whether every one of flags is set.
func (c *CPU) isFlagsSet(flags ...Flag) bool {
	for _, flag := range flags {
		if !c.isFlagSet(flag) {
			return false
		}
	}
	return true
}

// condition is a branch condition of JR, JP, CALL and RET.
type condition func(c *CPU) bool

func condAlways(*CPU) bool { return true }
func condNZ(c *CPU) bool   { return !c.isFlagSet(FlagZero) }
func condZ(c *CPU) bool    { return c.isFlagSet(FlagZero) }
func condNC(c *CPU) bool   { return !c.isFlagSet(FlagCarry) }
func condC(c *CPU) bool    { return c.isFlagSet(FlagCarry) }
