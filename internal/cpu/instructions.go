package cpu

// Instruction represents a single instruction of the
// CPU.
type Instruction struct {
	name   string           // name of the instruction
	cycles uint8            // clock cycles taken
	branch uint8            // clock cycles taken if a conditional branch was taken
	fn     func(*CPU) error // fn called when executing the instruction
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Cycles returns the clock cycles the instruction takes when it does not
// branch. Prefix entries report 0, as their cost is that of the
// instruction they select.
func (i Instruction) Cycles() uint8 {
	return i.cycles
}

// BranchCycles returns the clock cycles a conditional instruction takes
// when its condition held, or 0 for instructions that never branch.
func (i Instruction) BranchCycles() uint8 {
	return i.branch
}

// InstructionSet holds the first 256 instructions. Keys are explicit
// opcodes, so a repeated opcode fails to compile.
var InstructionSet = [256]Instruction{
	// 0x00 - 0x0F
	0x00: {"NOP", 4, 0, exec(func(c *CPU) {})},
	0x01: {"LD BC, d16", 12, 0, loadRegister16(pairBC)},
	0x02: {"LD (BC), A", 8, 0, loadAccumulatorToPair(pairBC, 0)},
	0x03: {"INC BC", 8, 0, incrementNN(pairBC)},
	0x04: {"INC B", 4, 0, incrementRegister(regB)},
	0x05: {"DEC B", 4, 0, decrementRegister(regB)},
	0x06: {"LD B, d8", 8, 0, loadRegister8(regB)},
	0x07: {"RLCA", 4, 0, rotateAccumulator((*CPU).rotateLeftCarry)},
	0x08: {"LD (a16), SP", 20, 0, exec(func(c *CPU) { c.write16(c.readOperand16(), c.SP) })},
	0x09: {"ADD HL, BC", 8, 0, addHLRR(pairBC)},
	0x0A: {"LD A, (BC)", 8, 0, loadPairToAccumulator(pairBC, 0)},
	0x0B: {"DEC BC", 8, 0, decrementNN(pairBC)},
	0x0C: {"INC C", 4, 0, incrementRegister(regC)},
	0x0D: {"DEC C", 4, 0, decrementRegister(regC)},
	0x0E: {"LD C, d8", 8, 0, loadRegister8(regC)},
	0x0F: {"RRCA", 4, 0, rotateAccumulator((*CPU).rotateRightCarry)},
	// 0x10 - 0x1F
	0x10: {"PREFIX STOP", 0, 0, prefix(PrefixStop)},
	0x11: {"LD DE, d16", 12, 0, loadRegister16(pairDE)},
	0x12: {"LD (DE), A", 8, 0, loadAccumulatorToPair(pairDE, 0)},
	0x13: {"INC DE", 8, 0, incrementNN(pairDE)},
	0x14: {"INC D", 4, 0, incrementRegister(regD)},
	0x15: {"DEC D", 4, 0, decrementRegister(regD)},
	0x16: {"LD D, d8", 8, 0, loadRegister8(regD)},
	0x17: {"RLA", 4, 0, rotateAccumulator((*CPU).rotateLeftThroughCarry)},
	0x18: {"JR r8", 12, 12, jumpRelative(condAlways)},
	0x19: {"ADD HL, DE", 8, 0, addHLRR(pairDE)},
	0x1A: {"LD A, (DE)", 8, 0, loadPairToAccumulator(pairDE, 0)},
	0x1B: {"DEC DE", 8, 0, decrementNN(pairDE)},
	0x1C: {"INC E", 4, 0, incrementRegister(regE)},
	0x1D: {"DEC E", 4, 0, decrementRegister(regE)},
	0x1E: {"LD E, d8", 8, 0, loadRegister8(regE)},
	0x1F: {"RRA", 4, 0, rotateAccumulator((*CPU).rotateRightThroughCarry)},
	// 0x20 - 0x2F
	0x20: {"JR NZ, r8", 8, 12, jumpRelative(condNZ)},
	0x21: {"LD HL, d16", 12, 0, loadRegister16(pairHL)},
	0x22: {"LD (HL+), A", 8, 0, loadAccumulatorToPair(pairHL, 1)},
	0x23: {"INC HL", 8, 0, incrementNN(pairHL)},
	0x24: {"INC H", 4, 0, incrementRegister(regH)},
	0x25: {"DEC H", 4, 0, decrementRegister(regH)},
	0x26: {"LD H, d8", 8, 0, loadRegister8(regH)},
	0x27: {"DAA", 4, 0, unimplementedOpcode},
	0x28: {"JR Z, r8", 8, 12, jumpRelative(condZ)},
	0x29: {"ADD HL, HL", 8, 0, addHLRR(pairHL)},
	0x2A: {"LD A, (HL+)", 8, 0, loadPairToAccumulator(pairHL, 1)},
	0x2B: {"DEC HL", 8, 0, decrementNN(pairHL)},
	0x2C: {"INC L", 4, 0, incrementRegister(regL)},
	0x2D: {"DEC L", 4, 0, decrementRegister(regL)},
	0x2E: {"LD L, d8", 8, 0, loadRegister8(regL)},
	0x2F: {"CPL", 4, 0, exec((*CPU).complement)},
	// 0x30 - 0x3F
	0x30: {"JR NC, r8", 8, 12, jumpRelative(condNC)},
	0x31: {"LD SP, d16", 12, 0, exec(func(c *CPU) { c.SP = c.readOperand16() })},
	0x32: {"LD (HL-), A", 8, 0, loadAccumulatorToPair(pairHL, 0xFFFF)},
	0x33: {"INC SP", 8, 0, exec(func(c *CPU) { c.SP++ })},
	0x34: {"INC (HL)", 12, 0, exec(func(c *CPU) { c.writeByte(c.HL.Uint16(), c.increment(c.readByte(c.HL.Uint16()))) })},
	0x35: {"DEC (HL)", 12, 0, exec(func(c *CPU) { c.writeByte(c.HL.Uint16(), c.decrement(c.readByte(c.HL.Uint16()))) })},
	0x36: {"LD (HL), d8", 12, 0, exec(func(c *CPU) { c.writeByte(c.HL.Uint16(), c.readOperand()) })},
	0x37: {"SCF", 4, 0, exec((*CPU).setCarryFlag)},
	0x38: {"JR C, r8", 8, 12, jumpRelative(condC)},
	0x39: {"ADD HL, SP", 8, 0, exec(func(c *CPU) { c.HL.SetUint16(c.add16(c.HL.Uint16(), c.SP)) })},
	0x3A: {"LD A, (HL-)", 8, 0, loadPairToAccumulator(pairHL, 0xFFFF)},
	0x3B: {"DEC SP", 8, 0, exec(func(c *CPU) { c.SP-- })},
	0x3C: {"INC A", 4, 0, incrementRegister(regA)},
	0x3D: {"DEC A", 4, 0, decrementRegister(regA)},
	0x3E: {"LD A, d8", 8, 0, loadRegister8(regA)},
	0x3F: {"CCF", 4, 0, exec((*CPU).complementCarryFlag)},
	// 0x40 - 0x4F
	0x40: {"LD B, B", 4, 0, loadRegisterToRegister(regB, regB)},
	0x41: {"LD B, C", 4, 0, loadRegisterToRegister(regB, regC)},
	0x42: {"LD B, D", 4, 0, loadRegisterToRegister(regB, regD)},
	0x43: {"LD B, E", 4, 0, loadRegisterToRegister(regB, regE)},
	0x44: {"LD B, H", 4, 0, loadRegisterToRegister(regB, regH)},
	0x45: {"LD B, L", 4, 0, loadRegisterToRegister(regB, regL)},
	0x46: {"LD B, (HL)", 8, 0, loadMemoryToRegister(regB)},
	0x47: {"LD B, A", 4, 0, loadRegisterToRegister(regB, regA)},
	0x48: {"LD C, B", 4, 0, loadRegisterToRegister(regC, regB)},
	0x49: {"LD C, C", 4, 0, loadRegisterToRegister(regC, regC)},
	0x4A: {"LD C, D", 4, 0, loadRegisterToRegister(regC, regD)},
	0x4B: {"LD C, E", 4, 0, loadRegisterToRegister(regC, regE)},
	0x4C: {"LD C, H", 4, 0, loadRegisterToRegister(regC, regH)},
	0x4D: {"LD C, L", 4, 0, loadRegisterToRegister(regC, regL)},
	0x4E: {"LD C, (HL)", 8, 0, loadMemoryToRegister(regC)},
	0x4F: {"LD C, A", 4, 0, loadRegisterToRegister(regC, regA)},
	// 0x50 - 0x5F
	0x50: {"LD D, B", 4, 0, loadRegisterToRegister(regD, regB)},
	0x51: {"LD D, C", 4, 0, loadRegisterToRegister(regD, regC)},
	0x52: {"LD D, D", 4, 0, loadRegisterToRegister(regD, regD)},
	0x53: {"LD D, E", 4, 0, loadRegisterToRegister(regD, regE)},
	0x54: {"LD D, H", 4, 0, loadRegisterToRegister(regD, regH)},
	0x55: {"LD D, L", 4, 0, loadRegisterToRegister(regD, regL)},
	0x56: {"LD D, (HL)", 8, 0, loadMemoryToRegister(regD)},
	0x57: {"LD D, A", 4, 0, loadRegisterToRegister(regD, regA)},
	0x58: {"LD E, B", 4, 0, loadRegisterToRegister(regE, regB)},
	0x59: {"LD E, C", 4, 0, loadRegisterToRegister(regE, regC)},
	0x5A: {"LD E, D", 4, 0, loadRegisterToRegister(regE, regD)},
	0x5B: {"LD E, E", 4, 0, loadRegisterToRegister(regE, regE)},
	0x5C: {"LD E, H", 4, 0, loadRegisterToRegister(regE, regH)},
	0x5D: {"LD E, L", 4, 0, loadRegisterToRegister(regE, regL)},
	0x5E: {"LD E, (HL)", 8, 0, loadMemoryToRegister(regE)},
	0x5F: {"LD E, A", 4, 0, loadRegisterToRegister(regE, regA)},
	// 0x60 - 0x6F
	0x60: {"LD H, B", 4, 0, loadRegisterToRegister(regH, regB)},
	0x61: {"LD H, C", 4, 0, loadRegisterToRegister(regH, regC)},
	0x62: {"LD H, D", 4, 0, loadRegisterToRegister(regH, regD)},
	0x63: {"LD H, E", 4, 0, loadRegisterToRegister(regH, regE)},
	0x64: {"LD H, H", 4, 0, loadRegisterToRegister(regH, regH)},
	0x65: {"LD H, L", 4, 0, loadRegisterToRegister(regH, regL)},
	0x66: {"LD H, (HL)", 8, 0, loadMemoryToRegister(regH)},
	0x67: {"LD H, A", 4, 0, loadRegisterToRegister(regH, regA)},
	0x68: {"LD L, B", 4, 0, loadRegisterToRegister(regL, regB)},
	0x69: {"LD L, C", 4, 0, loadRegisterToRegister(regL, regC)},
	0x6A: {"LD L, D", 4, 0, loadRegisterToRegister(regL, regD)},
	0x6B: {"LD L, E", 4, 0, loadRegisterToRegister(regL, regE)},
	0x6C: {"LD L, H", 4, 0, loadRegisterToRegister(regL, regH)},
	0x6D: {"LD L, L", 4, 0, loadRegisterToRegister(regL, regL)},
	0x6E: {"LD L, (HL)", 8, 0, loadMemoryToRegister(regL)},
	0x6F: {"LD L, A", 4, 0, loadRegisterToRegister(regL, regA)},
	// 0x70 - 0x7F
	0x70: {"LD (HL), B", 8, 0, loadRegisterToMemory(regB)},
	0x71: {"LD (HL), C", 8, 0, loadRegisterToMemory(regC)},
	0x72: {"LD (HL), D", 8, 0, loadRegisterToMemory(regD)},
	0x73: {"LD (HL), E", 8, 0, loadRegisterToMemory(regE)},
	0x74: {"LD (HL), H", 8, 0, loadRegisterToMemory(regH)},
	0x75: {"LD (HL), L", 8, 0, loadRegisterToMemory(regL)},
	0x76: {"HALT", 4, 0, exec((*CPU).halt)},
	0x77: {"LD (HL), A", 8, 0, loadRegisterToMemory(regA)},
	0x78: {"LD A, B", 4, 0, loadRegisterToRegister(regA, regB)},
	0x79: {"LD A, C", 4, 0, loadRegisterToRegister(regA, regC)},
	0x7A: {"LD A, D", 4, 0, loadRegisterToRegister(regA, regD)},
	0x7B: {"LD A, E", 4, 0, loadRegisterToRegister(regA, regE)},
	0x7C: {"LD A, H", 4, 0, loadRegisterToRegister(regA, regH)},
	0x7D: {"LD A, L", 4, 0, loadRegisterToRegister(regA, regL)},
	0x7E: {"LD A, (HL)", 8, 0, loadMemoryToRegister(regA)},
	0x7F: {"LD A, A", 4, 0, loadRegisterToRegister(regA, regA)},
	// 0x80 - 0x8F
	0x80: {"ADD A, B", 4, 0, aluRegister((*CPU).addA, regB)},
	0x81: {"ADD A, C", 4, 0, aluRegister((*CPU).addA, regC)},
	0x82: {"ADD A, D", 4, 0, aluRegister((*CPU).addA, regD)},
	0x83: {"ADD A, E", 4, 0, aluRegister((*CPU).addA, regE)},
	0x84: {"ADD A, H", 4, 0, aluRegister((*CPU).addA, regH)},
	0x85: {"ADD A, L", 4, 0, aluRegister((*CPU).addA, regL)},
	0x86: {"ADD A, (HL)", 8, 0, aluMemory((*CPU).addA)},
	0x87: {"ADD A, A", 4, 0, aluRegister((*CPU).addA, regA)},
	0x88: {"ADC A, B", 4, 0, aluRegister((*CPU).addCarryA, regB)},
	0x89: {"ADC A, C", 4, 0, aluRegister((*CPU).addCarryA, regC)},
	0x8A: {"ADC A, D", 4, 0, aluRegister((*CPU).addCarryA, regD)},
	0x8B: {"ADC A, E", 4, 0, aluRegister((*CPU).addCarryA, regE)},
	0x8C: {"ADC A, H", 4, 0, aluRegister((*CPU).addCarryA, regH)},
	0x8D: {"ADC A, L", 4, 0, aluRegister((*CPU).addCarryA, regL)},
	0x8E: {"ADC A, (HL)", 8, 0, aluMemory((*CPU).addCarryA)},
	0x8F: {"ADC A, A", 4, 0, aluRegister((*CPU).addCarryA, regA)},
	// 0x90 - 0x9F
	0x90: {"SUB B", 4, 0, aluRegister((*CPU).subA, regB)},
	0x91: {"SUB C", 4, 0, aluRegister((*CPU).subA, regC)},
	0x92: {"SUB D", 4, 0, aluRegister((*CPU).subA, regD)},
	0x93: {"SUB E", 4, 0, aluRegister((*CPU).subA, regE)},
	0x94: {"SUB H", 4, 0, aluRegister((*CPU).subA, regH)},
	0x95: {"SUB L", 4, 0, aluRegister((*CPU).subA, regL)},
	0x96: {"SUB (HL)", 8, 0, aluMemory((*CPU).subA)},
	0x97: {"SUB A", 4, 0, aluRegister((*CPU).subA, regA)},
	0x98: {"SBC A, B", 4, 0, aluRegister((*CPU).subCarryA, regB)},
	0x99: {"SBC A, C", 4, 0, aluRegister((*CPU).subCarryA, regC)},
	0x9A: {"SBC A, D", 4, 0, aluRegister((*CPU).subCarryA, regD)},
	0x9B: {"SBC A, E", 4, 0, aluRegister((*CPU).subCarryA, regE)},
	0x9C: {"SBC A, H", 4, 0, aluRegister((*CPU).subCarryA, regH)},
	0x9D: {"SBC A, L", 4, 0, aluRegister((*CPU).subCarryA, regL)},
	0x9E: {"SBC A, (HL)", 8, 0, aluMemory((*CPU).subCarryA)},
	0x9F: {"SBC A, A", 4, 0, aluRegister((*CPU).subCarryA, regA)},
	// 0xA0 - 0xAF
	0xA0: {"AND B", 4, 0, aluRegister((*CPU).and, regB)},
	0xA1: {"AND C", 4, 0, aluRegister((*CPU).and, regC)},
	0xA2: {"AND D", 4, 0, aluRegister((*CPU).and, regD)},
	0xA3: {"AND E", 4, 0, aluRegister((*CPU).and, regE)},
	0xA4: {"AND H", 4, 0, aluRegister((*CPU).and, regH)},
	0xA5: {"AND L", 4, 0, aluRegister((*CPU).and, regL)},
	0xA6: {"AND (HL)", 8, 0, aluMemory((*CPU).and)},
	0xA7: {"AND A", 4, 0, aluRegister((*CPU).and, regA)},
	0xA8: {"XOR B", 4, 0, aluRegister((*CPU).xor, regB)},
	0xA9: {"XOR C", 4, 0, aluRegister((*CPU).xor, regC)},
	0xAA: {"XOR D", 4, 0, aluRegister((*CPU).xor, regD)},
	0xAB: {"XOR E", 4, 0, aluRegister((*CPU).xor, regE)},
	0xAC: {"XOR H", 4, 0, aluRegister((*CPU).xor, regH)},
	0xAD: {"XOR L", 4, 0, aluRegister((*CPU).xor, regL)},
	0xAE: {"XOR (HL)", 8, 0, aluMemory((*CPU).xor)},
	0xAF: {"XOR A", 4, 0, aluRegister((*CPU).xor, regA)},
	// 0xB0 - 0xBF
	0xB0: {"OR B", 4, 0, aluRegister((*CPU).or, regB)},
	0xB1: {"OR C", 4, 0, aluRegister((*CPU).or, regC)},
	0xB2: {"OR D", 4, 0, aluRegister((*CPU).or, regD)},
	0xB3: {"OR E", 4, 0, aluRegister((*CPU).or, regE)},
	0xB4: {"OR H", 4, 0, aluRegister((*CPU).or, regH)},
	0xB5: {"OR L", 4, 0, aluRegister((*CPU).or, regL)},
	0xB6: {"OR (HL)", 8, 0, aluMemory((*CPU).or)},
	0xB7: {"OR A", 4, 0, aluRegister((*CPU).or, regA)},
	0xB8: {"CP B", 4, 0, aluRegister((*CPU).compare, regB)},
	0xB9: {"CP C", 4, 0, aluRegister((*CPU).compare, regC)},
	0xBA: {"CP D", 4, 0, aluRegister((*CPU).compare, regD)},
	0xBB: {"CP E", 4, 0, aluRegister((*CPU).compare, regE)},
	0xBC: {"CP H", 4, 0, aluRegister((*CPU).compare, regH)},
	0xBD: {"CP L", 4, 0, aluRegister((*CPU).compare, regL)},
	0xBE: {"CP (HL)", 8, 0, aluMemory((*CPU).compare)},
	0xBF: {"CP A", 4, 0, aluRegister((*CPU).compare, regA)},
	// 0xC0 - 0xCF
	0xC0: {"RET NZ", 8, 20, ret(condNZ)},
	0xC1: {"POP BC", 12, 0, pop(pairBC)},
	0xC2: {"JP NZ, a16", 12, 16, jumpAbsolute(condNZ)},
	0xC3: {"JP a16", 16, 16, jumpAbsolute(condAlways)},
	0xC4: {"CALL NZ, a16", 12, 24, call(condNZ)},
	0xC5: {"PUSH BC", 16, 0, push(pairBC)},
	0xC6: {"ADD A, d8", 8, 0, aluImmediate((*CPU).addA)},
	0xC7: {"RST 00H", 16, 0, restart(0x00)},
	0xC8: {"RET Z", 8, 20, ret(condZ)},
	0xC9: {"RET", 16, 16, ret(condAlways)},
	0xCA: {"JP Z, a16", 12, 16, jumpAbsolute(condZ)},
	0xCB: {"PREFIX CB", 0, 0, prefix(PrefixCB)},
	0xCC: {"CALL Z, a16", 12, 24, call(condZ)},
	0xCD: {"CALL a16", 24, 24, call(condAlways)},
	0xCE: {"ADC A, d8", 8, 0, aluImmediate((*CPU).addCarryA)},
	0xCF: {"RST 08H", 16, 0, restart(0x08)},
	// 0xD0 - 0xDF
	0xD0: {"RET NC", 8, 20, ret(condNC)},
	0xD1: {"POP DE", 12, 0, pop(pairDE)},
	0xD2: {"JP NC, a16", 12, 16, jumpAbsolute(condNC)},
	0xD3: {"disallowed", 0, 0, unknownOpcode},
	0xD4: {"CALL NC, a16", 12, 24, call(condNC)},
	0xD5: {"PUSH DE", 16, 0, push(pairDE)},
	0xD6: {"SUB d8", 8, 0, aluImmediate((*CPU).subA)},
	0xD7: {"RST 10H", 16, 0, restart(0x10)},
	0xD8: {"RET C", 8, 20, ret(condC)},
	0xD9: {"RETI", 16, 0, retInterrupt},
	0xDA: {"JP C, a16", 12, 16, jumpAbsolute(condC)},
	0xDB: {"disallowed", 0, 0, unknownOpcode},
	0xDC: {"CALL C, a16", 12, 24, call(condC)},
	0xDD: {"disallowed", 0, 0, unknownOpcode},
	0xDE: {"SBC A, d8", 8, 0, aluImmediate((*CPU).subCarryA)},
	0xDF: {"RST 18H", 16, 0, restart(0x18)},
	// 0xE0 - 0xEF
	0xE0: {"LDH (a8), A", 12, 0, exec(func(c *CPU) { c.writeByte(0xFF00+uint16(c.readOperand()), c.A) })},
	0xE1: {"POP HL", 12, 0, pop(pairHL)},
	0xE2: {"LD (C), A", 8, 0, exec(func(c *CPU) { c.writeByte(0xFF00+uint16(c.C), c.A) })},
	0xE3: {"disallowed", 0, 0, unknownOpcode},
	0xE4: {"disallowed", 0, 0, unknownOpcode},
	0xE5: {"PUSH HL", 16, 0, push(pairHL)},
	0xE6: {"AND d8", 8, 0, aluImmediate((*CPU).and)},
	0xE7: {"RST 20H", 16, 0, restart(0x20)},
	0xE8: {"ADD SP, r8", 16, 0, exec(func(c *CPU) { c.SP = c.addSPSigned(c.readOperand()) })},
	0xE9: {"JP HL", 4, 0, exec(func(c *CPU) { c.PC = c.HL.Uint16() })},
	0xEA: {"LD (a16), A", 16, 0, exec(func(c *CPU) { c.writeByte(c.readOperand16(), c.A) })},
	0xEB: {"disallowed", 0, 0, unknownOpcode},
	0xEC: {"disallowed", 0, 0, unknownOpcode},
	0xED: {"disallowed", 0, 0, unknownOpcode},
	0xEE: {"XOR d8", 8, 0, aluImmediate((*CPU).xor)},
	0xEF: {"RST 28H", 16, 0, restart(0x28)},
	// 0xF0 - 0xFF
	0xF0: {"LDH A, (a8)", 12, 0, exec(func(c *CPU) { c.A = c.readByte(0xFF00 + uint16(c.readOperand())) })},
	0xF1: {"POP AF", 12, 0, pop(pairAF)},
	0xF2: {"LD A, (C)", 8, 0, exec(func(c *CPU) { c.A = c.readByte(0xFF00 + uint16(c.C)) })},
	0xF3: {"DI", 4, 0, exec(func(c *CPU) { c.scheduleIME(false) })},
	0xF4: {"disallowed", 0, 0, unknownOpcode},
	0xF5: {"PUSH AF", 16, 0, push(pairAF)},
	0xF6: {"OR d8", 8, 0, aluImmediate((*CPU).or)},
	0xF7: {"RST 30H", 16, 0, restart(0x30)},
	0xF8: {"LD HL, SP+r8", 12, 0, exec(func(c *CPU) { c.HL.SetUint16(c.addSPSigned(c.readOperand())) })},
	0xF9: {"LD SP, HL", 8, 0, exec(func(c *CPU) { c.SP = c.HL.Uint16() })},
	0xFA: {"LD A, (a16)", 16, 0, exec(func(c *CPU) { c.A = c.readByte(c.readOperand16()) })},
	0xFB: {"EI", 4, 0, exec(func(c *CPU) { c.scheduleIME(true) })},
	0xFC: {"disallowed", 0, 0, unknownOpcode},
	0xFD: {"disallowed", 0, 0, unknownOpcode},
	0xFE: {"CP d8", 8, 0, aluImmediate((*CPU).compare)},
	0xFF: {"RST 38H", 16, 0, restart(0x38)},
}
