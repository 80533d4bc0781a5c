package mmu

import "github.com/thelolagemann/sm83/internal/types"

// WRAM is the 8kB of work RAM at 0xC000 - 0xDFFF, along with its
// echo at 0xE000 - 0xFDFF.
type WRAM struct {
	raw [2][0x1000]uint8 // fixed bank 0, bank 1
}

// NewWRAM returns zeroed work RAM.
func NewWRAM() *WRAM {
	return &WRAM{}
}

// bank returns the bank and offset backing addr, folding the echo
// onto 0xC000 - 0xDDFF.
func (w *WRAM) bank(addr uint16) (*[0x1000]uint8, uint16) {
	offset := (addr - types.WRAM) & 0x1FFF
	return &w.raw[offset>>12], offset & 0xFFF
}

func (w *WRAM) Read(addr uint16) uint8 {
	b, offset := w.bank(addr)
	return b[offset]
}

func (w *WRAM) Write(addr uint16, v uint8) {
	b, offset := w.bank(addr)
	b[offset] = v
}

// Load implements the types.Stater interface.
func (w *WRAM) Load(s *types.State) {
	for b := range w.raw {
		for i := range w.raw[b] {
			w.raw[b][i] = s.Read8()
		}
	}
}

// Save implements the types.Stater interface.
func (w *WRAM) Save(s *types.State) {
	for b := range w.raw {
		for _, v := range w.raw[b] {
			s.Write8(v)
		}
	}
}
