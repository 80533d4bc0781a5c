package types

// Region is the first address of a region of the 16-bit
// address space seen by the CPU.
type Region = uint16

const (
	// ROM0 is the fixed ROM bank (16kB), 0x0000 - 0x3FFF.
	ROM0 Region = 0x0000
	// ROMX is the switchable ROM bank (16kB), 0x4000 - 0x7FFF.
	ROMX Region = 0x4000
	// VRAM is video RAM (8kB), 0x8000 - 0x9FFF.
	VRAM Region = 0x8000
	// ERAM is external cartridge RAM (8kB), 0xA000 - 0xBFFF.
	ERAM Region = 0xA000
	// WRAM is work RAM (8kB), 0xC000 - 0xDFFF.
	WRAM Region = 0xC000
	// Echo mirrors 0xC000 - 0xDDFF, 0xE000 - 0xFDFF.
	Echo Region = 0xE000
	// OAM is the sprite attribute table (160B), 0xFE00 - 0xFE9F.
	OAM Region = 0xFE00
	// Unusable memory (96B), 0xFEA0 - 0xFEFF. Reads return 0xFF
	// and writes are ignored.
	Unusable Region = 0xFEA0
	// IO is the hardware register block (128B), 0xFF00 - 0xFF7F.
	IO Region = 0xFF00
	// HRAM is high RAM (127B), 0xFF80 - 0xFFFE.
	HRAM Region = 0xFF80
)

// BootROMSize is the size of the DMG boot ROM overlay that is mapped
// over 0x0000 - 0x00FF until BDIS is written.
const BootROMSize = 0x100

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware IO are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// SB is the address of the SB hardware register. The SB
	// hardware register holds the byte to be transferred over
	// the serial port.
	SB HardwareAddress = 0xFF01
	// SC is the address of the SC hardware register. Writing
	// 0x81 starts a transfer using the internal clock.
	SC HardwareAddress = 0xFF02
	// IF is the address of the IF hardware register. The IF
	// hardware register is used to request interrupts.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//  Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F
	// BDIS is the address of the boot ROM disable register. Any
	// write to it unmaps the boot ROM.
	BDIS HardwareAddress = 0xFF50
	// IE is the address of the IE hardware register. The IE
	// hardware register is used to enable interrupts, using the
	// same bit layout as IF.
	IE HardwareAddress = 0xFFFF
)
