package interrupts

import (
	"github.com/thelolagemann/sm83/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0).
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD STAT interrupt flag (bit 1).
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2),
	// raised when TIMA overflows.
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3),
	// which is requested when a serial transfer is
	// completed.
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt Flag (bit 4).
	JoypadFlag = types.Bit4
)

// Service holds the IF and IE registers, and decides which interrupt,
// if any, should be serviced next.
//
// When an interrupt is requested, the corresponding bit in the Flag
// register is set. When it is also enabled in the Enable register,
// and the CPU's IME is set, the CPU jumps to the interrupt vector and
// the bit in the Flag register is cleared. Tracking the IME belongs to
// the CPU.
type Service struct {
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)
}

// NewService returns a new Service.
func NewService() *Service {
	return &Service{}
}

// Read returns the value of IF or IE as seen by the CPU.
func (s *Service) Read(address uint16) uint8 {
	switch address {
	case types.IF:
		return s.Flag | 0xE0 // the upper 3 bits are always set
	case types.IE:
		return s.Enable
	}
	return 0xFF
}

// Write sets IF or IE.
func (s *Service) Write(address uint16, value uint8) {
	switch address {
	case types.IF:
		s.Flag = value & 0x1F // only the first 5 bits are used
	case types.IE:
		s.Enable = value
	}
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Enable&s.Flag&0x1F != 0
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag & 0x1F
}

// Vector returns the vector of the highest priority interrupt that is
// both requested and enabled, clearing its bit in the Flag register.
// It returns 0 if there is nothing to service.
func (s *Service) Vector() uint16 {
	if !s.HasInterrupts() {
		return 0
	}
	for i := uint8(0); i < 5; i++ {
		flag := types.Mask(i)
		if s.Flag&flag != 0 && s.Enable&flag != 0 {
			s.Flag &^= flag
			return uint16(0x0040 + i*8)
		}
	}

	return 0
}

var _ types.Stater = (*Service)(nil)

// Load implements the types.Stater interface.
//
// The values are loaded in the following order:
//   - Flag (uint8)
//   - Enable (uint8)
func (s *Service) Load(st *types.State) {
	s.Flag = st.Read8() & 0x1F
	s.Enable = st.Read8()
}

// Save implements the types.Stater interface, in the order
// documented on Load.
func (s *Service) Save(st *types.State) {
	st.Write8(s.Flag)
	st.Write8(s.Enable)
}
