package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOpcode is returned when an opcode has no defined
	// behaviour, in either the primary or an extended table.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrUnimplementedOpcode is returned for opcodes that are recognized
	// but deliberately not implemented (DAA).
	ErrUnimplementedOpcode = errors.New("unimplemented opcode")
)

// OpcodeError describes an instruction that could not be executed.
// When it is returned, no register, flag or memory state has been
// modified, other than PC having advanced past the fetched bytes.
type OpcodeError struct {
	PC       uint16 // address of the first fetched byte
	Prefix   uint8  // prefix byte, only meaningful if Prefixed
	Opcode   uint8
	Prefixed bool
	Name     string
	Err      error
}

func (e *OpcodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("cpu: %v %02X %02X at %04X", e.Err, e.Prefix, e.Opcode, e.PC)
	}
	if e.Name != "" {
		return fmt.Sprintf("cpu: %v %02X (%s) at %04X", e.Err, e.Opcode, e.Name, e.PC)
	}
	return fmt.Sprintf("cpu: %v %02X at %04X", e.Err, e.Opcode, e.PC)
}

func (e *OpcodeError) Unwrap() error {
	return e.Err
}
