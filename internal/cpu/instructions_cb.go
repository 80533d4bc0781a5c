package cpu

// InstructionSetCB holds the instructions selected by the CB prefix. The
// cycles include fetching the prefix.
var InstructionSetCB = [256]Instruction{
	// RLC
	0x00: {"RLC B", 8, 0, shiftRegister((*CPU).rotateLeftCarry, regB)},
	0x01: {"RLC C", 8, 0, shiftRegister((*CPU).rotateLeftCarry, regC)},
	0x02: {"RLC D", 8, 0, shiftRegister((*CPU).rotateLeftCarry, regD)},
	0x03: {"RLC E", 8, 0, shiftRegister((*CPU).rotateLeftCarry, regE)},
	0x04: {"RLC H", 8, 0, shiftRegister((*CPU).rotateLeftCarry, regH)},
	0x05: {"RLC L", 8, 0, shiftRegister((*CPU).rotateLeftCarry, regL)},
	0x06: {"RLC (HL)", 16, 0, shiftMemory((*CPU).rotateLeftCarry)},
	0x07: {"RLC A", 8, 0, shiftRegister((*CPU).rotateLeftCarry, regA)},
	// RRC
	0x08: {"RRC B", 8, 0, shiftRegister((*CPU).rotateRightCarry, regB)},
	0x09: {"RRC C", 8, 0, shiftRegister((*CPU).rotateRightCarry, regC)},
	0x0A: {"RRC D", 8, 0, shiftRegister((*CPU).rotateRightCarry, regD)},
	0x0B: {"RRC E", 8, 0, shiftRegister((*CPU).rotateRightCarry, regE)},
	0x0C: {"RRC H", 8, 0, shiftRegister((*CPU).rotateRightCarry, regH)},
	0x0D: {"RRC L", 8, 0, shiftRegister((*CPU).rotateRightCarry, regL)},
	0x0E: {"RRC (HL)", 16, 0, shiftMemory((*CPU).rotateRightCarry)},
	0x0F: {"RRC A", 8, 0, shiftRegister((*CPU).rotateRightCarry, regA)},
	// RL
	0x10: {"RL B", 8, 0, shiftRegister((*CPU).rotateLeftThroughCarry, regB)},
	0x11: {"RL C", 8, 0, shiftRegister((*CPU).rotateLeftThroughCarry, regC)},
	0x12: {"RL D", 8, 0, shiftRegister((*CPU).rotateLeftThroughCarry, regD)},
	0x13: {"RL E", 8, 0, shiftRegister((*CPU).rotateLeftThroughCarry, regE)},
	0x14: {"RL H", 8, 0, shiftRegister((*CPU).rotateLeftThroughCarry, regH)},
	0x15: {"RL L", 8, 0, shiftRegister((*CPU).rotateLeftThroughCarry, regL)},
	0x16: {"RL (HL)", 16, 0, shiftMemory((*CPU).rotateLeftThroughCarry)},
	0x17: {"RL A", 8, 0, shiftRegister((*CPU).rotateLeftThroughCarry, regA)},
	// RR
	0x18: {"RR B", 8, 0, shiftRegister((*CPU).rotateRightThroughCarry, regB)},
	0x19: {"RR C", 8, 0, shiftRegister((*CPU).rotateRightThroughCarry, regC)},
	0x1A: {"RR D", 8, 0, shiftRegister((*CPU).rotateRightThroughCarry, regD)},
	0x1B: {"RR E", 8, 0, shiftRegister((*CPU).rotateRightThroughCarry, regE)},
	0x1C: {"RR H", 8, 0, shiftRegister((*CPU).rotateRightThroughCarry, regH)},
	0x1D: {"RR L", 8, 0, shiftRegister((*CPU).rotateRightThroughCarry, regL)},
	0x1E: {"RR (HL)", 16, 0, shiftMemory((*CPU).rotateRightThroughCarry)},
	0x1F: {"RR A", 8, 0, shiftRegister((*CPU).rotateRightThroughCarry, regA)},
	// SLA
	0x20: {"SLA B", 8, 0, shiftRegister((*CPU).shiftLeftArithmetic, regB)},
	0x21: {"SLA C", 8, 0, shiftRegister((*CPU).shiftLeftArithmetic, regC)},
	0x22: {"SLA D", 8, 0, shiftRegister((*CPU).shiftLeftArithmetic, regD)},
	0x23: {"SLA E", 8, 0, shiftRegister((*CPU).shiftLeftArithmetic, regE)},
	0x24: {"SLA H", 8, 0, shiftRegister((*CPU).shiftLeftArithmetic, regH)},
	0x25: {"SLA L", 8, 0, shiftRegister((*CPU).shiftLeftArithmetic, regL)},
	0x26: {"SLA (HL)", 16, 0, shiftMemory((*CPU).shiftLeftArithmetic)},
	0x27: {"SLA A", 8, 0, shiftRegister((*CPU).shiftLeftArithmetic, regA)},
	// SRA
	0x28: {"SRA B", 8, 0, shiftRegister((*CPU).shiftRightArithmetic, regB)},
	0x29: {"SRA C", 8, 0, shiftRegister((*CPU).shiftRightArithmetic, regC)},
	0x2A: {"SRA D", 8, 0, shiftRegister((*CPU).shiftRightArithmetic, regD)},
	0x2B: {"SRA E", 8, 0, shiftRegister((*CPU).shiftRightArithmetic, regE)},
	0x2C: {"SRA H", 8, 0, shiftRegister((*CPU).shiftRightArithmetic, regH)},
	0x2D: {"SRA L", 8, 0, shiftRegister((*CPU).shiftRightArithmetic, regL)},
	0x2E: {"SRA (HL)", 16, 0, shiftMemory((*CPU).shiftRightArithmetic)},
	0x2F: {"SRA A", 8, 0, shiftRegister((*CPU).shiftRightArithmetic, regA)},
	// SWAP
	0x30: {"SWAP B", 8, 0, shiftRegister((*CPU).swap, regB)},
	0x31: {"SWAP C", 8, 0, shiftRegister((*CPU).swap, regC)},
	0x32: {"SWAP D", 8, 0, shiftRegister((*CPU).swap, regD)},
	0x33: {"SWAP E", 8, 0, shiftRegister((*CPU).swap, regE)},
	0x34: {"SWAP H", 8, 0, shiftRegister((*CPU).swap, regH)},
	0x35: {"SWAP L", 8, 0, shiftRegister((*CPU).swap, regL)},
	0x36: {"SWAP (HL)", 16, 0, shiftMemory((*CPU).swap)},
	0x37: {"SWAP A", 8, 0, shiftRegister((*CPU).swap, regA)},
	// SRL
	0x38: {"SRL B", 8, 0, shiftRegister((*CPU).shiftRightLogical, regB)},
	0x39: {"SRL C", 8, 0, shiftRegister((*CPU).shiftRightLogical, regC)},
	0x3A: {"SRL D", 8, 0, shiftRegister((*CPU).shiftRightLogical, regD)},
	0x3B: {"SRL E", 8, 0, shiftRegister((*CPU).shiftRightLogical, regE)},
	0x3C: {"SRL H", 8, 0, shiftRegister((*CPU).shiftRightLogical, regH)},
	0x3D: {"SRL L", 8, 0, shiftRegister((*CPU).shiftRightLogical, regL)},
	0x3E: {"SRL (HL)", 16, 0, shiftMemory((*CPU).shiftRightLogical)},
	0x3F: {"SRL A", 8, 0, shiftRegister((*CPU).shiftRightLogical, regA)},
	// BIT 0
	0x40: {"BIT 0, B", 8, 0, testBitRegister(0, regB)},
	0x41: {"BIT 0, C", 8, 0, testBitRegister(0, regC)},
	0x42: {"BIT 0, D", 8, 0, testBitRegister(0, regD)},
	0x43: {"BIT 0, E", 8, 0, testBitRegister(0, regE)},
	0x44: {"BIT 0, H", 8, 0, testBitRegister(0, regH)},
	0x45: {"BIT 0, L", 8, 0, testBitRegister(0, regL)},
	0x46: {"BIT 0, (HL)", 16, 0, testBitMemory(0)},
	0x47: {"BIT 0, A", 8, 0, testBitRegister(0, regA)},
	// BIT 1
	0x48: {"BIT 1, B", 8, 0, testBitRegister(1, regB)},
	0x49: {"BIT 1, C", 8, 0, testBitRegister(1, regC)},
	0x4A: {"BIT 1, D", 8, 0, testBitRegister(1, regD)},
	0x4B: {"BIT 1, E", 8, 0, testBitRegister(1, regE)},
	0x4C: {"BIT 1, H", 8, 0, testBitRegister(1, regH)},
	0x4D: {"BIT 1, L", 8, 0, testBitRegister(1, regL)},
	0x4E: {"BIT 1, (HL)", 16, 0, testBitMemory(1)},
	0x4F: {"BIT 1, A", 8, 0, testBitRegister(1, regA)},
	// BIT 2
	0x50: {"BIT 2, B", 8, 0, testBitRegister(2, regB)},
	0x51: {"BIT 2, C", 8, 0, testBitRegister(2, regC)},
	0x52: {"BIT 2, D", 8, 0, testBitRegister(2, regD)},
	0x53: {"BIT 2, E", 8, 0, testBitRegister(2, regE)},
	0x54: {"BIT 2, H", 8, 0, testBitRegister(2, regH)},
	0x55: {"BIT 2, L", 8, 0, testBitRegister(2, regL)},
	0x56: {"BIT 2, (HL)", 16, 0, testBitMemory(2)},
	0x57: {"BIT 2, A", 8, 0, testBitRegister(2, regA)},
	// BIT 3
	0x58: {"BIT 3, B", 8, 0, testBitRegister(3, regB)},
	0x59: {"BIT 3, C", 8, 0, testBitRegister(3, regC)},
	0x5A: {"BIT 3, D", 8, 0, testBitRegister(3, regD)},
	0x5B: {"BIT 3, E", 8, 0, testBitRegister(3, regE)},
	0x5C: {"BIT 3, H", 8, 0, testBitRegister(3, regH)},
	0x5D: {"BIT 3, L", 8, 0, testBitRegister(3, regL)},
	0x5E: {"BIT 3, (HL)", 16, 0, testBitMemory(3)},
	0x5F: {"BIT 3, A", 8, 0, testBitRegister(3, regA)},
	// BIT 4
	0x60: {"BIT 4, B", 8, 0, testBitRegister(4, regB)},
	0x61: {"BIT 4, C", 8, 0, testBitRegister(4, regC)},
	0x62: {"BIT 4, D", 8, 0, testBitRegister(4, regD)},
	0x63: {"BIT 4, E", 8, 0, testBitRegister(4, regE)},
	0x64: {"BIT 4, H", 8, 0, testBitRegister(4, regH)},
	0x65: {"BIT 4, L", 8, 0, testBitRegister(4, regL)},
	0x66: {"BIT 4, (HL)", 16, 0, testBitMemory(4)},
	0x67: {"BIT 4, A", 8, 0, testBitRegister(4, regA)},
	// BIT 5
	0x68: {"BIT 5, B", 8, 0, testBitRegister(5, regB)},
	0x69: {"BIT 5, C", 8, 0, testBitRegister(5, regC)},
	0x6A: {"BIT 5, D", 8, 0, testBitRegister(5, regD)},
	0x6B: {"BIT 5, E", 8, 0, testBitRegister(5, regE)},
	0x6C: {"BIT 5, H", 8, 0, testBitRegister(5, regH)},
	0x6D: {"BIT 5, L", 8, 0, testBitRegister(5, regL)},
	0x6E: {"BIT 5, (HL)", 16, 0, testBitMemory(5)},
	0x6F: {"BIT 5, A", 8, 0, testBitRegister(5, regA)},
	// BIT 6
	0x70: {"BIT 6, B", 8, 0, testBitRegister(6, regB)},
	0x71: {"BIT 6, C", 8, 0, testBitRegister(6, regC)},
	0x72: {"BIT 6, D", 8, 0, testBitRegister(6, regD)},
	0x73: {"BIT 6, E", 8, 0, testBitRegister(6, regE)},
	0x74: {"BIT 6, H", 8, 0, testBitRegister(6, regH)},
	0x75: {"BIT 6, L", 8, 0, testBitRegister(6, regL)},
	0x76: {"BIT 6, (HL)", 16, 0, testBitMemory(6)},
	0x77: {"BIT 6, A", 8, 0, testBitRegister(6, regA)},
	// BIT 7
	0x78: {"BIT 7, B", 8, 0, testBitRegister(7, regB)},
	0x79: {"BIT 7, C", 8, 0, testBitRegister(7, regC)},
	0x7A: {"BIT 7, D", 8, 0, testBitRegister(7, regD)},
	0x7B: {"BIT 7, E", 8, 0, testBitRegister(7, regE)},
	0x7C: {"BIT 7, H", 8, 0, testBitRegister(7, regH)},
	0x7D: {"BIT 7, L", 8, 0, testBitRegister(7, regL)},
	0x7E: {"BIT 7, (HL)", 16, 0, testBitMemory(7)},
	0x7F: {"BIT 7, A", 8, 0, testBitRegister(7, regA)},
	// RES 0
	0x80: {"RES 0, B", 8, 0, resetBitRegister(0, regB)},
	0x81: {"RES 0, C", 8, 0, resetBitRegister(0, regC)},
	0x82: {"RES 0, D", 8, 0, resetBitRegister(0, regD)},
	0x83: {"RES 0, E", 8, 0, resetBitRegister(0, regE)},
	0x84: {"RES 0, H", 8, 0, resetBitRegister(0, regH)},
	0x85: {"RES 0, L", 8, 0, resetBitRegister(0, regL)},
	0x86: {"RES 0, (HL)", 16, 0, resetBitMemory(0)},
	0x87: {"RES 0, A", 8, 0, resetBitRegister(0, regA)},
	// RES 1
	0x88: {"RES 1, B", 8, 0, resetBitRegister(1, regB)},
	0x89: {"RES 1, C", 8, 0, resetBitRegister(1, regC)},
	0x8A: {"RES 1, D", 8, 0, resetBitRegister(1, regD)},
	0x8B: {"RES 1, E", 8, 0, resetBitRegister(1, regE)},
	0x8C: {"RES 1, H", 8, 0, resetBitRegister(1, regH)},
	0x8D: {"RES 1, L", 8, 0, resetBitRegister(1, regL)},
	0x8E: {"RES 1, (HL)", 16, 0, resetBitMemory(1)},
	0x8F: {"RES 1, A", 8, 0, resetBitRegister(1, regA)},
	// RES 2
	0x90: {"RES 2, B", 8, 0, resetBitRegister(2, regB)},
	0x91: {"RES 2, C", 8, 0, resetBitRegister(2, regC)},
	0x92: {"RES 2, D", 8, 0, resetBitRegister(2, regD)},
	0x93: {"RES 2, E", 8, 0, resetBitRegister(2, regE)},
	0x94: {"RES 2, H", 8, 0, resetBitRegister(2, regH)},
	0x95: {"RES 2, L", 8, 0, resetBitRegister(2, regL)},
	0x96: {"RES 2, (HL)", 16, 0, resetBitMemory(2)},
	0x97: {"RES 2, A", 8, 0, resetBitRegister(2, regA)},
	// RES 3
	0x98: {"RES 3, B", 8, 0, resetBitRegister(3, regB)},
	0x99: {"RES 3, C", 8, 0, resetBitRegister(3, regC)},
	0x9A: {"RES 3, D", 8, 0, resetBitRegister(3, regD)},
	0x9B: {"RES 3, E", 8, 0, resetBitRegister(3, regE)},
	0x9C: {"RES 3, H", 8, 0, resetBitRegister(3, regH)},
	0x9D: {"RES 3, L", 8, 0, resetBitRegister(3, regL)},
	0x9E: {"RES 3, (HL)", 16, 0, resetBitMemory(3)},
	0x9F: {"RES 3, A", 8, 0, resetBitRegister(3, regA)},
	// RES 4
	0xA0: {"RES 4, B", 8, 0, resetBitRegister(4, regB)},
	0xA1: {"RES 4, C", 8, 0, resetBitRegister(4, regC)},
	0xA2: {"RES 4, D", 8, 0, resetBitRegister(4, regD)},
	0xA3: {"RES 4, E", 8, 0, resetBitRegister(4, regE)},
	0xA4: {"RES 4, H", 8, 0, resetBitRegister(4, regH)},
	0xA5: {"RES 4, L", 8, 0, resetBitRegister(4, regL)},
	0xA6: {"RES 4, (HL)", 16, 0, resetBitMemory(4)},
	0xA7: {"RES 4, A", 8, 0, resetBitRegister(4, regA)},
	// RES 5
	0xA8: {"RES 5, B", 8, 0, resetBitRegister(5, regB)},
	0xA9: {"RES 5, C", 8, 0, resetBitRegister(5, regC)},
	0xAA: {"RES 5, D", 8, 0, resetBitRegister(5, regD)},
	0xAB: {"RES 5, E", 8, 0, resetBitRegister(5, regE)},
	0xAC: {"RES 5, H", 8, 0, resetBitRegister(5, regH)},
	0xAD: {"RES 5, L", 8, 0, resetBitRegister(5, regL)},
	0xAE: {"RES 5, (HL)", 16, 0, resetBitMemory(5)},
	0xAF: {"RES 5, A", 8, 0, resetBitRegister(5, regA)},
	// RES 6
	0xB0: {"RES 6, B", 8, 0, resetBitRegister(6, regB)},
	0xB1: {"RES 6, C", 8, 0, resetBitRegister(6, regC)},
	0xB2: {"RES 6, D", 8, 0, resetBitRegister(6, regD)},
	0xB3: {"RES 6, E", 8, 0, resetBitRegister(6, regE)},
	0xB4: {"RES 6, H", 8, 0, resetBitRegister(6, regH)},
	0xB5: {"RES 6, L", 8, 0, resetBitRegister(6, regL)},
	0xB6: {"RES 6, (HL)", 16, 0, resetBitMemory(6)},
	0xB7: {"RES 6, A", 8, 0, resetBitRegister(6, regA)},
	// RES 7
	0xB8: {"RES 7, B", 8, 0, resetBitRegister(7, regB)},
	0xB9: {"RES 7, C", 8, 0, resetBitRegister(7, regC)},
	0xBA: {"RES 7, D", 8, 0, resetBitRegister(7, regD)},
	0xBB: {"RES 7, E", 8, 0, resetBitRegister(7, regE)},
	0xBC: {"RES 7, H", 8, 0, resetBitRegister(7, regH)},
	0xBD: {"RES 7, L", 8, 0, resetBitRegister(7, regL)},
	0xBE: {"RES 7, (HL)", 16, 0, resetBitMemory(7)},
	0xBF: {"RES 7, A", 8, 0, resetBitRegister(7, regA)},
	// SET 0
	0xC0: {"SET 0, B", 8, 0, setBitRegister(0, regB)},
	0xC1: {"SET 0, C", 8, 0, setBitRegister(0, regC)},
	0xC2: {"SET 0, D", 8, 0, setBitRegister(0, regD)},
	0xC3: {"SET 0, E", 8, 0, setBitRegister(0, regE)},
	0xC4: {"SET 0, H", 8, 0, setBitRegister(0, regH)},
	0xC5: {"SET 0, L", 8, 0, setBitRegister(0, regL)},
	0xC6: {"SET 0, (HL)", 16, 0, setBitMemory(0)},
	0xC7: {"SET 0, A", 8, 0, setBitRegister(0, regA)},
	// SET 1
	0xC8: {"SET 1, B", 8, 0, setBitRegister(1, regB)},
	0xC9: {"SET 1, C", 8, 0, setBitRegister(1, regC)},
	0xCA: {"SET 1, D", 8, 0, setBitRegister(1, regD)},
	0xCB: {"SET 1, E", 8, 0, setBitRegister(1, regE)},
	0xCC: {"SET 1, H", 8, 0, setBitRegister(1, regH)},
	0xCD: {"SET 1, L", 8, 0, setBitRegister(1, regL)},
	0xCE: {"SET 1, (HL)", 16, 0, setBitMemory(1)},
	0xCF: {"SET 1, A", 8, 0, setBitRegister(1, regA)},
	// SET 2
	0xD0: {"SET 2, B", 8, 0, setBitRegister(2, regB)},
	0xD1: {"SET 2, C", 8, 0, setBitRegister(2, regC)},
	0xD2: {"SET 2, D", 8, 0, setBitRegister(2, regD)},
	0xD3: {"SET 2, E", 8, 0, setBitRegister(2, regE)},
	0xD4: {"SET 2, H", 8, 0, setBitRegister(2, regH)},
	0xD5: {"SET 2, L", 8, 0, setBitRegister(2, regL)},
	0xD6: {"SET 2, (HL)", 16, 0, setBitMemory(2)},
	0xD7: {"SET 2, A", 8, 0, setBitRegister(2, regA)},
	// SET 3
	0xD8: {"SET 3, B", 8, 0, setBitRegister(3, regB)},
	0xD9: {"SET 3, C", 8, 0, setBitRegister(3, regC)},
	0xDA: {"SET 3, D", 8, 0, setBitRegister(3, regD)},
	0xDB: {"SET 3, E", 8, 0, setBitRegister(3, regE)},
	0xDC: {"SET 3, H", 8, 0, setBitRegister(3, regH)},
	0xDD: {"SET 3, L", 8, 0, setBitRegister(3, regL)},
	0xDE: {"SET 3, (HL)", 16, 0, setBitMemory(3)},
	0xDF: {"SET 3, A", 8, 0, setBitRegister(3, regA)},
	// SET 4
	0xE0: {"SET 4, B", 8, 0, setBitRegister(4, regB)},
	0xE1: {"SET 4, C", 8, 0, setBitRegister(4, regC)},
	0xE2: {"SET 4, D", 8, 0, setBitRegister(4, regD)},
	0xE3: {"SET 4, E", 8, 0, setBitRegister(4, regE)},
	0xE4: {"SET 4, H", 8, 0, setBitRegister(4, regH)},
	0xE5: {"SET 4, L", 8, 0, setBitRegister(4, regL)},
	0xE6: {"SET 4, (HL)", 16, 0, setBitMemory(4)},
	0xE7: {"SET 4, A", 8, 0, setBitRegister(4, regA)},
	// SET 5
	0xE8: {"SET 5, B", 8, 0, setBitRegister(5, regB)},
	0xE9: {"SET 5, C", 8, 0, setBitRegister(5, regC)},
	0xEA: {"SET 5, D", 8, 0, setBitRegister(5, regD)},
	0xEB: {"SET 5, E", 8, 0, setBitRegister(5, regE)},
	0xEC: {"SET 5, H", 8, 0, setBitRegister(5, regH)},
	0xED: {"SET 5, L", 8, 0, setBitRegister(5, regL)},
	0xEE: {"SET 5, (HL)", 16, 0, setBitMemory(5)},
	0xEF: {"SET 5, A", 8, 0, setBitRegister(5, regA)},
	// SET 6
	0xF0: {"SET 6, B", 8, 0, setBitRegister(6, regB)},
	0xF1: {"SET 6, C", 8, 0, setBitRegister(6, regC)},
	0xF2: {"SET 6, D", 8, 0, setBitRegister(6, regD)},
	0xF3: {"SET 6, E", 8, 0, setBitRegister(6, regE)},
	0xF4: {"SET 6, H", 8, 0, setBitRegister(6, regH)},
	0xF5: {"SET 6, L", 8, 0, setBitRegister(6, regL)},
	0xF6: {"SET 6, (HL)", 16, 0, setBitMemory(6)},
	0xF7: {"SET 6, A", 8, 0, setBitRegister(6, regA)},
	// SET 7
	0xF8: {"SET 7, B", 8, 0, setBitRegister(7, regB)},
	0xF9: {"SET 7, C", 8, 0, setBitRegister(7, regC)},
	0xFA: {"SET 7, D", 8, 0, setBitRegister(7, regD)},
	0xFB: {"SET 7, E", 8, 0, setBitRegister(7, regE)},
	0xFC: {"SET 7, H", 8, 0, setBitRegister(7, regH)},
	0xFD: {"SET 7, L", 8, 0, setBitRegister(7, regL)},
	0xFE: {"SET 7, (HL)", 16, 0, setBitMemory(7)},
	0xFF: {"SET 7, A", 8, 0, setBitRegister(7, regA)},
}

// shiftRegister and shiftMemory apply a rotate, shift or swap to a
// register or to (HL).
func shiftRegister(op shiftOp, r register8) func(*CPU) error {
	return func(c *CPU) error {
		*r(c) = op(c, *r(c))
		return nil
	}
}

func shiftMemory(op shiftOp) func(*CPU) error {
	return func(c *CPU) error {
		c.writeByte(c.HL.Uint16(), op(c, c.readByte(c.HL.Uint16())))
		return nil
	}
}

func testBitRegister(bit uint8, r register8) func(*CPU) error {
	return func(c *CPU) error {
		c.testBit(*r(c), bit)
		return nil
	}
}

func testBitMemory(bit uint8) func(*CPU) error {
	return func(c *CPU) error {
		c.testBit(c.readByte(c.HL.Uint16()), bit)
		return nil
	}
}

func resetBitRegister(bit uint8, r register8) func(*CPU) error {
	return func(c *CPU) error {
		*r(c) = resetBit(*r(c), bit)
		return nil
	}
}

func resetBitMemory(bit uint8) func(*CPU) error {
	return func(c *CPU) error {
		c.writeByte(c.HL.Uint16(), resetBit(c.readByte(c.HL.Uint16()), bit))
		return nil
	}
}

func setBitRegister(bit uint8, r register8) func(*CPU) error {
	return func(c *CPU) error {
		*r(c) = setBit(*r(c), bit)
		return nil
	}
}

func setBitMemory(bit uint8) func(*CPU) error {
	return func(c *CPU) error {
		c.writeByte(c.HL.Uint16(), setBit(c.readByte(c.HL.Uint16()), bit))
		return nil
	}
}
