// Package mmu provides a flat memory map for the SM83. Work RAM is
// echoed, the program region is read-only to the CPU, and only the
// registers needed to drive a program are wired: IF and IE, the boot
// ROM disable register and a serial port stub.
package mmu

import (
	"errors"
	"fmt"
	"io"

	"github.com/thelolagemann/sm83/internal/boot"
	"github.com/thelolagemann/sm83/internal/interrupts"
	"github.com/thelolagemann/sm83/internal/ram"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// ErrOutOfRange is returned by Load when the data does not fit in the
// address space.
var ErrOutOfRange = errors.New("mmu: data does not fit in address space")

// region handles the accesses to a range of addresses. write is used
// by the CPU, store by Load.
type region struct {
	read  func(address uint16) uint8
	write func(address uint16, value uint8)
	store func(address uint16, value uint8)
}

// MMU is the memory management unit. It handles all memory reads and
// writes to the 64kB address space.
type MMU struct {
	// 64kB address space
	raw [65536]*region

	// 0x0000 - 0x00FF - BOOT ROM (256B)
	bootROM     *boot.ROM
	bootROMDone bool

	// 0x0000 - 0x7FFF - ROM (32kB)
	rom [0x8000]uint8

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	vRAM ram.RAM
	// 0xA000 - 0xBFFF - External RAM (8kB)
	eRAM ram.RAM
	// 0xC000 - 0xDFFF - Work RAM (8kB)
	// 0xE000 - 0xFDFF - Echo RAM (7.5kB)
	wRAM *WRAM
	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	oam ram.RAM
	// 0xFF00 - 0xFF7F - I/O Registers
	io ram.RAM
	// 0xFF80 - 0xFFFE - Zero Page RAM (127B)
	zRAM ram.RAM

	// IF & IE
	interrupts *interrupts.Service

	serial io.Writer
	log    log.Logger
}

// Opt configures an MMU.
type Opt func(m *MMU)

// WithBootROM maps the boot ROM over 0x0000 - 0x00FF until BDIS is
// written.
func WithBootROM(rom *boot.ROM) Opt {
	return func(m *MMU) {
		m.bootROM = rom
	}
}

// WithSerial sets the writer that receives bytes sent over the serial
// port.
func WithSerial(w io.Writer) Opt {
	return func(m *MMU) {
		m.serial = w
	}
}

// WithLogger sets the logger of the MMU.
func WithLogger(l log.Logger) Opt {
	return func(m *MMU) {
		m.log = l
	}
}

// NewMMU returns a new MMU, routing IF and IE to irq.
func NewMMU(irq *interrupts.Service, opts ...Opt) *MMU {
	m := &MMU{
		vRAM:       ram.NewRAM(0x2000),
		eRAM:       ram.NewRAM(0x2000),
		wRAM:       NewWRAM(),
		oam:        ram.NewRAM(0xA0),
		io:         ram.NewRAM(0x80),
		zRAM:       ram.NewRAM(0x7F),
		interrupts: irq,
		log:        log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.init()

	return m
}

func (m *MMU) init() {
	ignore := func(uint16, uint8) {}

	rom := &region{read: m.readROM, write: ignore, store: m.storeROM}
	wRAM := &region{read: m.wRAM.Read, write: m.wRAM.Write, store: m.wRAM.Write}
	unusable := &region{read: func(uint16) uint8 { return 0xFF }, write: ignore, store: ignore}
	hardware := &region{read: m.readIO, write: m.writeIO, store: writeOffset(m.io.Write, types.IO)}
	irq := &region{read: m.interrupts.Read, write: m.interrupts.Write, store: m.interrupts.Write}

	fill := func(r *region, from, to int) {
		for i := from; i < to; i++ {
			m.raw[i] = r
		}
	}

	fill(rom, 0x0000, 0x8000)
	fill(offsetRegion(m.vRAM, types.VRAM), 0x8000, 0xA000)
	fill(offsetRegion(m.eRAM, types.ERAM), 0xA000, 0xC000)
	fill(wRAM, 0xC000, 0xFE00)
	fill(offsetRegion(m.oam, types.OAM), 0xFE00, 0xFEA0)
	fill(unusable, 0xFEA0, 0xFF00)
	fill(hardware, 0xFF00, 0xFF80)
	fill(offsetRegion(m.zRAM, types.HRAM), 0xFF80, 0xFFFF)
	m.raw[types.IE] = irq
	m.raw[types.IF] = irq
}

func offsetRegion(r ram.RAM, offset uint16) *region {
	write := writeOffset(r.Write, offset)
	return &region{read: readOffset(r.Read, offset), write: write, store: write}
}

func readOffset(read func(uint16) uint8, offset uint16) func(uint16) uint8 {
	return func(addr uint16) uint8 {
		return read(addr - offset)
	}
}

func writeOffset(write func(uint16, uint8), offset uint16) func(uint16, uint8) {
	return func(addr uint16, v uint8) {
		write(addr-offset, v)
	}
}

func (m *MMU) readROM(address uint16) uint8 {
	// handle the boot ROM (if enabled)
	if m.bootROM != nil && !m.bootROMDone && address < types.BootROMSize {
		return m.bootROM.Read(address)
	}
	return m.rom[address]
}

func (m *MMU) storeROM(address uint16, value uint8) {
	m.rom[address] = value
}

func (m *MMU) readIO(address uint16) uint8 {
	switch address {
	case types.SC:
		return m.io.Read(address-types.IO) | 0x7E // unused bits are always set
	case types.BDIS:
		return 0xFF
	}
	return m.io.Read(address - types.IO)
}

func (m *MMU) writeIO(address uint16, value uint8) {
	switch address {
	case types.BDIS:
		// it's assumed any write to this register will disable the boot rom
		if !m.bootROMDone && m.bootROM != nil {
			m.log.Debugf("mmu: boot rom disabled")
		}
		m.bootROMDone = true
	case types.SC:
		if value == 0x81 {
			m.transfer()
			value &^= types.Bit7
		}
	}
	m.io.Write(address-types.IO, value)
}

// transfer completes a serial transfer instantly. Without a link
// partner the byte shifted in is 0xFF.
func (m *MMU) transfer() {
	b := m.io.Read(types.SB - types.IO)
	if m.serial != nil {
		if _, err := m.serial.Write([]byte{b}); err != nil {
			m.log.Errorf("mmu: serial write: %v", err)
		}
	}
	m.io.Write(types.SB-types.IO, 0xFF)
	m.interrupts.Request(interrupts.SerialFlag)
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address].read(address)
}

// Write writes the value to the given address. Writes to the program
// region are ignored.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address].write(address, value)
}

// Read16 returns the little-endian word at address.
func (m *MMU) Read16(address uint16) uint16 {
	return uint16(m.Read(address)) | uint16(m.Read(address+1))<<8
}

// Write16 writes value as a little-endian word at address.
func (m *MMU) Write16(address uint16, value uint16) {
	m.Write(address, uint8(value))
	m.Write(address+1, uint8(value>>8))
}

// Load copies data into memory at offset, bypassing the read-only
// program region and the side effects of hardware registers.
func (m *MMU) Load(offset uint16, data []byte) error {
	if int(offset)+len(data) > len(m.raw) {
		return fmt.Errorf("%w: %d bytes at %04X", ErrOutOfRange, len(data), offset)
	}
	for i, b := range data {
		address := offset + uint16(i)
		m.raw[address].store(address, b)
	}
	return nil
}

// BootROMMapped reports whether the boot ROM is currently overlaid on
// the program.
func (m *MMU) BootROMMapped() bool {
	return m.bootROM != nil && !m.bootROMDone
}

// SaveState appends the writable memory to s. The program region and
// the boot ROM are not part of the state.
//
// The values are saved in the following order:
//   - boot ROM disabled (bool)
//   - VRAM, ERAM, WRAM, OAM, IO, HRAM
//   - IF & IE
func (m *MMU) SaveState(s *types.State) {
	s.WriteBool(m.bootROMDone)
	m.vRAM.Save(s)
	m.eRAM.Save(s)
	m.wRAM.Save(s)
	m.oam.Save(s)
	m.io.Save(s)
	m.zRAM.Save(s)
	m.interrupts.Save(s)
}

// LoadState restores memory saved by SaveState.
func (m *MMU) LoadState(s *types.State) {
	m.bootROMDone = s.ReadBool()
	m.vRAM.Load(s)
	m.eRAM.Load(s)
	m.wRAM.Load(s)
	m.oam.Load(s)
	m.io.Load(s)
	m.zRAM.Load(s)
	m.interrupts.Load(s)
}
