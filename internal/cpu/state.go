package cpu

import (
	"github.com/cespare/xxhash"

	"github.com/thelolagemann/sm83/internal/types"
)

var _ types.Stater = (*CPU)(nil)

// Load implements the types.Stater interface.
//
// The values are loaded in the following order:
//   - A, F, B, C, D, E, H, L (uint8)
//   - SP, PC (uint16)
//   - Halted, Stopped, IME (bool)
//   - pending IME delay (uint8) and target (bool)
func (c *CPU) Load(s *types.State) {
	c.A = s.Read8()
	c.F = s.Read8() & 0xF0
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.SP = s.Read16()
	c.PC = s.Read16()
	c.Halted = s.ReadBool()
	c.Stopped = s.ReadBool()
	c.IME = s.ReadBool()
	c.imeDelay = s.Read8()
	c.imeTarget = s.ReadBool()
}

// Save implements the types.Stater interface, in the order
// documented on Load.
func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.F)
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
	s.WriteBool(c.Halted)
	s.WriteBool(c.Stopped)
	s.WriteBool(c.IME)
	s.Write8(c.imeDelay)
	s.WriteBool(c.imeTarget)
}

// Fingerprint returns a hash of the processor state. Two CPUs with the
// same fingerprint will behave identically when attached to the same
// memory.
func (c *CPU) Fingerprint() uint64 {
	s := types.NewState()
	c.Save(s)
	return xxhash.Sum64(s.Bytes())
}
