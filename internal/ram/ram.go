// Package ram provides a basic RAM implementation.
package ram

import "github.com/thelolagemann/sm83/internal/types"

// RAM represents a block of RAM, addressed from 0.
type RAM interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	types.Stater
}

type ram struct {
	data []uint8
}

// NewRAM returns a new RAM of the given size. Accesses past the end
// read 0xFF and are otherwise ignored.
func NewRAM(size uint32) RAM {
	return &ram{
		data: make([]uint8, size),
	}
}

// Read returns the value at the given address.
func (r *ram) Read(address uint16) uint8 {
	if int(address) >= len(r.data) {
		return 0xFF
	}
	return r.data[address]
}

// Write writes the value to the given address.
func (r *ram) Write(address uint16, value uint8) {
	if int(address) < len(r.data) {
		r.data[address] = value
	}
}

// Load implements the types.Stater interface.
func (r *ram) Load(s *types.State) {
	for i := range r.data {
		r.data[i] = s.Read8()
	}
}

// Save implements the types.Stater interface.
func (r *ram) Save(s *types.State) {
	for _, v := range r.data {
		s.Write8(v)
	}
}
