package cpu

// swap exchanges the nibbles of n. The carry flag is always reset.
//
//	SWAP n
func (c *CPU) swap(n uint8) uint8 {
	return c.shifted(n<<4|n>>4, false)
}
