// Package cpu implements the Sharp SM83 processor of the Game Boy. The
// CPU executes one instruction per Step, and reports how many clock
// cycles the instruction took on hardware. Memory, interrupts and timing
// are left to the caller.
package cpu

import (
	"errors"

	"github.com/thelolagemann/sm83/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304

	// PrefixCB selects the bit, rotate and shift instructions.
	PrefixCB uint8 = 0xCB
	// PrefixStop selects STOP, whose second byte must be 0x00.
	PrefixStop uint8 = 0x10

	// idleCycles is the cost of a Step while halted or stopped.
	idleCycles = 4
	// interruptCycles is the cost of dispatching an interrupt.
	interruptCycles = 20
)

// Mode is the run state of the CPU.
type Mode = uint8

const (
	// ModeRunning is the normal CPU mode.
	ModeRunning Mode = iota
	// ModeHalted is entered by HALT.
	ModeHalted
	// ModeStopped is entered by STOP.
	ModeStopped
)

// Bus is the memory the CPU is attached to. Reads and writes must
// complete before they return.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	// Halted is set by HALT. The CPU will not fetch instructions until
	// it is woken by an interrupt.
	Halted bool
	// Stopped is set by STOP.
	Stopped bool
	// IME is the interrupt master enable flag.
	IME bool

	imeDelay  uint8 // instructions left until imeTarget is applied
	imeTarget bool

	branched bool  // set by a conditional instruction that took its branch
	extended uint8 // cycles of the prefixed instruction, if any

	bus Bus
	log log.Logger
}

// Opt configures a CPU.
type Opt func(c *CPU)

// WithLogger sets the logger used to report mode changes.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// NewCPU creates a new CPU instance attached to the given Bus.
func NewCPU(bus Bus, opts ...Opt) *CPU {
	c := &CPU{
		bus: bus,
		log: log.NewNullLogger(),
	}
	// create register pairs
	c.pair()

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Mode returns the current run state.
func (c *CPU) Mode() Mode {
	switch {
	case c.Stopped:
		return ModeStopped
	case c.Halted:
		return ModeHalted
	}
	return ModeRunning
}

// Step executes a single instruction and returns the number of clock
// cycles it took. A halted or stopped CPU fetches nothing, and reports
// idle cycles instead.
//
// An *OpcodeError is returned for undefined or unimplemented opcodes.
func (c *CPU) Step() (uint8, error) {
	if c.Halted || c.Stopped {
		return idleCycles, nil
	}

	c.branched = false
	c.extended = 0

	pc := c.PC
	opcode := c.readInstruction()
	instruction := &InstructionSet[opcode]

	if err := instruction.fn(c); err != nil {
		var opErr *OpcodeError
		if !errors.As(err, &opErr) {
			opErr = &OpcodeError{PC: pc, Opcode: opcode, Name: instruction.name, Err: err}
		}
		return 0, opErr
	}

	cycles := instruction.cycles
	if c.branched {
		cycles = instruction.branch
	}
	cycles += c.extended

	c.tickIME()

	return cycles, nil
}

// StepExtended executes the instruction op of the given prefix space.
// It is called by Step once both bytes have been fetched, and returns
// the cycles of the whole prefixed instruction.
func (c *CPU) StepExtended(prefix, op uint8) (uint8, error) {
	switch prefix {
	case PrefixCB:
		instruction := &InstructionSetCB[op]
		if err := instruction.fn(c); err != nil {
			return 0, c.extendedError(prefix, op, instruction.name, err)
		}
		return instruction.cycles, nil
	case PrefixStop:
		if op == 0x00 {
			c.Stopped = true
			c.log.Debugf("cpu: stopped at %04X", c.PC-2)
			return 4, nil
		}
	}
	return 0, c.extendedError(prefix, op, "", ErrUnknownOpcode)
}

func (c *CPU) extendedError(prefix, op uint8, name string, err error) *OpcodeError {
	return &OpcodeError{
		PC:       c.PC - 2,
		Prefix:   prefix,
		Opcode:   op,
		Prefixed: true,
		Name:     name,
		Err:      err,
	}
}

// scheduleIME arms the IME to be set to enabled once the instruction
// following the current one has completed.
func (c *CPU) scheduleIME(enabled bool) {
	c.imeTarget = enabled
	c.imeDelay = 2
}

// tickIME advances a pending EI/DI by one instruction.
func (c *CPU) tickIME() {
	if c.imeDelay == 0 {
		return
	}
	c.imeDelay--
	if c.imeDelay == 0 {
		c.IME = c.imeTarget
	}
}

// IMEPending reports whether an EI or DI is waiting to take effect,
// and the value the IME will be set to.
func (c *CPU) IMEPending() (pending bool, enabled bool) {
	return c.imeDelay > 0, c.imeTarget
}

// ServiceInterrupt pushes PC and jumps to the given interrupt vector,
// disabling the IME and waking the CPU. Deciding whether an interrupt
// should be serviced belongs to the caller.
func (c *CPU) ServiceInterrupt(vector uint16) uint8 {
	c.push16(c.PC)
	c.PC = vector
	c.IME = false
	c.imeDelay = 0
	c.Wake()
	return interruptCycles
}

// Wake returns a halted or stopped CPU to normal mode.
func (c *CPU) Wake() {
	if c.Halted || c.Stopped {
		c.log.Debugf("cpu: woken at %04X", c.PC)
	}
	c.Halted = false
	c.Stopped = false
}

// halt puts the CPU into halt mode.
func (c *CPU) halt() {
	c.Halted = true
	c.log.Debugf("cpu: halted at %04X", c.PC-1)
}

// readInstruction reads the next instruction from memory.
func (c *CPU) readInstruction() uint8 {
	value := c.bus.Read(c.PC)
	c.PC++
	return value
}

// readOperand reads the next operand from memory. The same as
// readInstruction, but will allow future optimizations.
func (c *CPU) readOperand() uint8 {
	value := c.bus.Read(c.PC)
	c.PC++
	return value
}

// readOperand16 reads a little-endian 16-bit operand.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return uint16(high)<<8 | uint16(low)
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	return c.bus.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.bus.Write(addr, val)
}

// read16 reads the little-endian word at addr.
func (c *CPU) read16(addr uint16) uint16 {
	return uint16(c.bus.Read(addr)) | uint16(c.bus.Read(addr+1))<<8
}

// write16 writes val as a little-endian word at addr.
func (c *CPU) write16(addr uint16, val uint16) {
	c.bus.Write(addr, uint8(val))
	c.bus.Write(addr+1, uint8(val>>8))
}
