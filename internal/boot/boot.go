// Package boot loads Game Boy boot ROMs. A boot ROM is optional: when
// one is supplied it is overlaid on the start of the address space
// until the program disables it by writing to types.BDIS.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
)

const (
	// DMGSize is the size of the DMG, MGB and SGB boot ROMs.
	DMGSize = 256
	// CGBSize is the size of the CGB boot ROM, which is mapped at
	// 0x0000 - 0x00FF and 0x0200 - 0x08FF.
	CGBSize = 2304
)

// ErrInvalidSize is returned for a boot ROM that is neither DMGSize
// nor CGBSize bytes long.
var ErrInvalidSize = errors.New("boot: invalid boot rom length")

// ROM represents a boot ROM for the Game Boy. When the Game Boy first
// powers on, the boot ROM is mapped over the program, initializes the
// hardware and hands control to 0x0100 after unmapping itself.
type ROM struct {
	raw      []byte // the raw boot rom
	checksum string // the MD5 checksum of the boot rom
}

// LoadBootROM validates the length of b and returns the boot ROM it
// holds, along with its MD5 checksum.
func LoadBootROM(b []byte) (*ROM, error) {
	if len(b) != DMGSize && len(b) != CGBSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, len(b))
	}

	bootChecksum := md5.Sum(b)

	return &ROM{
		raw:      b,
		checksum: hex.EncodeToString(bootChecksum[:]),
	}, nil
}

// Read returns the byte at the given address, or 0xFF if the address
// lies outside of the boot ROM.
func (b *ROM) Read(addr uint16) byte {
	if int(addr) >= len(b.raw) {
		return 0xFF
	}
	return b.raw[addr]
}

// Size returns the length in bytes of the boot ROM.
func (b *ROM) Size() int {
	if b == nil {
		return 0
	}
	return len(b.raw)
}

// Checksum returns the MD5 checksum of the boot rom.
func (b *ROM) Checksum() string {
	if b == nil {
		return ""
	}
	return b.checksum
}

// Model returns the model of the boot rom. The model
// is determined by the checksum of the boot rom.
func (b *ROM) Model() string {
	if b == nil {
		return "none"
	}
	if model, ok := knownBootROMChecksums[b.checksum]; ok {
		return model
	}
	return "unknown"
}

var knownBootROMChecksums = map[string]string{
	DMG0:    "Game Boy (DMG-0)",
	DMG:     "Game Boy (DMG-01)",
	MGB:     "Game Boy Pocket",
	SGB:     "Super Game Boy",
	SGB2:    "Super Game Boy 2",
	CGB0:    "Game Boy Color (CGB-0)",
	CGB:     "Game Boy Color (CGB-A/B/C/D/E)",
	CGB_AGB: "Game Boy Advance (AGB-001)",
}

// MD5 checksums of the known boot ROMs.
const (
	// DMG0 is the early DMG boot ROM, only sold in Japan.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the boot ROM of the DMG-01.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB loads 0xFF into A rather than 0x01, which lets programs
	// detect a Game Boy Pocket.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// SGB hands the cartridge header to the SNES instead of
	// scrolling the logo.
	SGB  = "d574d4f9c12f305074798f54c091a8b4"
	SGB2 = "e0430bca9925fb9882148fd2dc2418c1"
	// CGB0 is the early CGB boot ROM.
	CGB0 = "7c773f3c0b01cb73bca8e83227287b7f"
	CGB  = "dbfce9db9deaa2567f6a84fde55f9680"
	// CGB_AGB is found in the GBC compatibility mode of the GBA.
	CGB_AGB = "e6cefb5f7d352fab6681989763917c73"
)
