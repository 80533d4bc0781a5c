// Package gameboy drives an SM83 attached to a flat Game Boy memory
// map. It owns the loop around cpu.CPU.Step: delivering interrupts,
// counting cycles and deciding when a program has finished.
package gameboy

import (
	"context"
	"errors"
	"fmt"

	"github.com/thelolagemann/sm83/internal/boot"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/interrupts"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed
	// MaxProgramSize is the size of the unbanked program region.
	MaxProgramSize = 0x8000

	// cancelInterval is how many steps Run takes between checks of
	// its context.
	cancelInterval = 4096
)

// ErrProgramTooLarge is returned by New for programs that do not fit
// in the program region.
var ErrProgramTooLarge = errors.New("gameboy: program too large")

// StopReason is the reason Run returned.
type StopReason uint8

const (
	// StopError means an instruction failed to execute.
	StopError StopReason = iota
	// StopHalted means the CPU halted with no interrupt able to wake it.
	StopHalted
	// StopStopped means the CPU executed STOP.
	StopStopped
	// StopStepLimit means the configured step limit was reached.
	StopStepLimit
	// StopCancelled means the context passed to Run was done.
	StopCancelled
)

func (r StopReason) String() string {
	switch r {
	case StopError:
		return "error"
	case StopHalted:
		return "halted"
	case StopStopped:
		return "stopped"
	case StopStepLimit:
		return "step limit"
	case StopCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("StopReason(%d)", uint8(r))
}

// Result summarizes a call to Run.
type Result struct {
	Cycles uint64 // clock cycles executed
	Steps  uint64 // calls to Step
	Reason StopReason
}

// GameBoy represents a Game Boy. It contains all the components of the
// Game Boy, and is the main entry point for running programs.
type GameBoy struct {
	CPU        *cpu.CPU
	MMU        *mmu.MMU
	Interrupts *interrupts.Service
	BootROM    *boot.ROM

	log.Logger

	cycles uint64
	steps  uint64

	cfg config
}

// New returns a GameBoy with program loaded at 0x0000. Without a boot
// ROM, the registers are set to the values the DMG boot ROM leaves
// behind, and execution starts at 0x0100.
func New(program []byte, opts ...Opt) (*GameBoy, error) {
	if len(program) > MaxProgramSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrProgramTooLarge, len(program))
	}

	g := &GameBoy{
		Logger: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.cfg.bootROM != nil {
		rom, err := boot.LoadBootROM(g.cfg.bootROM)
		if err != nil {
			return nil, err
		}
		g.BootROM = rom
		g.Infof("using boot rom %s (%s)", rom.Model(), rom.Checksum())
	}

	g.Interrupts = interrupts.NewService()
	mmuOpts := []mmu.Opt{mmu.WithLogger(g.Logger)}
	if g.BootROM != nil {
		mmuOpts = append(mmuOpts, mmu.WithBootROM(g.BootROM))
	}
	if g.cfg.serial != nil {
		mmuOpts = append(mmuOpts, mmu.WithSerial(g.cfg.serial))
	}
	g.MMU = mmu.NewMMU(g.Interrupts, mmuOpts...)
	if err := g.MMU.Load(0x0000, program); err != nil {
		return nil, err
	}

	g.CPU = cpu.NewCPU(g.MMU, cpu.WithLogger(g.Logger))
	if g.BootROM == nil {
		g.postBoot()
	}
	if g.cfg.entrySet {
		g.CPU.PC = g.cfg.entry
	}

	if g.cfg.state != nil {
		if err := g.Load(types.StateFromBytes(g.cfg.state)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// postBoot sets the CPU registers to the values the DMG boot ROM
// leaves behind.
func (g *GameBoy) postBoot() {
	g.CPU.AF.SetUint16(0x01B0)
	g.CPU.BC.SetUint16(0x0013)
	g.CPU.DE.SetUint16(0x00D8)
	g.CPU.HL.SetUint16(0x014D)
	g.CPU.SP = 0xFFFE
	g.CPU.PC = 0x0100
}

// Step executes a single instruction, then delivers any pending
// interrupt unless the CPU is stopped. It returns the cycles taken by
// both.
func (g *GameBoy) Step() (uint8, error) {
	cycles, err := g.CPU.Step()
	if err != nil {
		return 0, err
	}

	// a stopped CPU is left alone; only the caller can wake it
	if !g.CPU.Stopped && g.Interrupts.HasInterrupts() {
		// a pending interrupt wakes the CPU regardless of the IME
		if g.CPU.Halted {
			g.CPU.Wake()
		}
		if g.CPU.IME {
			vector := g.Interrupts.Vector()
			g.Debugf("servicing interrupt %04X from %04X", vector, g.CPU.PC)
			cycles += g.CPU.ServiceInterrupt(vector)
		}
	}

	g.cycles += uint64(cycles)
	g.steps++

	return cycles, nil
}

// Run steps the GameBoy until the program has finished, an instruction
// fails, the step limit is reached or ctx is done.
func (g *GameBoy) Run(ctx context.Context) (Result, error) {
	var res Result
	for {
		if res.Steps%cancelInterval == 0 {
			if err := ctx.Err(); err != nil {
				res.Reason = StopCancelled
				return res, err
			}
		}
		switch {
		case g.CPU.Stopped:
			res.Reason = StopStopped
			return res, nil
		case g.CPU.Halted && !g.Interrupts.HasInterrupts():
			res.Reason = StopHalted
			return res, nil
		case g.cfg.stepLimit > 0 && res.Steps >= g.cfg.stepLimit:
			res.Reason = StopStepLimit
			return res, nil
		}

		if g.cfg.trace {
			g.trace()
		}
		cycles, err := g.Step()
		if err != nil {
			res.Reason = StopError
			g.Errorf("%v", err)
			return res, err
		}
		res.Cycles += uint64(cycles)
		res.Steps++
	}
}

// trace logs the instruction about to be executed.
func (g *GameBoy) trace() {
	c := g.CPU
	name := cpu.InstructionSet[g.MMU.Read(c.PC)].Name()
	g.Debugf("%04X %-16s AF=%04X BC=%04X DE=%04X HL=%04X SP=%04X",
		c.PC, name, c.AF.Uint16(), c.BC.Uint16(), c.DE.Uint16(), c.HL.Uint16(), c.SP)
}

// Cycles returns the total number of cycles executed.
func (g *GameBoy) Cycles() uint64 {
	return g.cycles
}

// Steps returns the total number of steps taken.
func (g *GameBoy) Steps() uint64 {
	return g.steps
}

// Save appends the state of the CPU and memory to s.
func (g *GameBoy) Save(s *types.State) {
	g.CPU.Save(s)
	g.MMU.SaveState(s)
}

// Load restores a state written by Save.
func (g *GameBoy) Load(s *types.State) error {
	g.CPU.Load(s)
	g.MMU.LoadState(s)
	if err := s.Err(); err != nil {
		return fmt.Errorf("gameboy: loading state: %w", err)
	}
	return nil
}
