package gameboy

import (
	"io"

	"github.com/thelolagemann/sm83/pkg/log"
)

// config holds the options that must be known before the components
// are created.
type config struct {
	bootROM   []byte
	serial    io.Writer
	entry     uint16
	entrySet  bool
	stepLimit uint64
	trace     bool
	state     []byte
}

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// WithLogger sets the logger used by the GameBoy and its components.
func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithBootROM sets the boot ROM for the emulator. If we have a boot
// ROM, the CPU starts at 0x0000 with zeroed registers, rather than
// at 0x0100 with the registers set to the values upon completion of
// the boot ROM.
func WithBootROM(rom []byte) Opt {
	return func(gb *GameBoy) {
		gb.cfg.bootROM = rom
	}
}

// WithSerialOutput writes every byte sent over the serial port to w.
func WithSerialOutput(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.cfg.serial = w
	}
}

// WithEntryPoint starts execution at pc.
func WithEntryPoint(pc uint16) Opt {
	return func(gb *GameBoy) {
		gb.cfg.entry = pc
		gb.cfg.entrySet = true
	}
}

// WithStepLimit makes Run return after n steps. 0 means no limit.
func WithStepLimit(n uint64) Opt {
	return func(gb *GameBoy) {
		gb.cfg.stepLimit = n
	}
}

// WithTrace logs every instruction executed by Run at debug level.
func WithTrace() Opt {
	return func(gb *GameBoy) {
		gb.cfg.trace = true
	}
}

// WithState restores a state written by GameBoy.Save.
func WithState(b []byte) Opt {
	return func(gb *GameBoy) {
		gb.cfg.state = b
	}
}
