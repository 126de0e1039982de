// Package disassemble implements a disassembler for the documented
// 6502 opcode set this module's cpu package executes.
package disassemble

import (
	"fmt"

	"six502/memory"
)

const (
	modeImmediate = iota
	modeZP
	modeZPX
	modeZPY
	modeIndirectX
	modeIndirectY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeImplied
)

// Step disassembles the instruction at pc, returning a formatted line
// and the number of bytes (including the opcode byte) the instruction
// occupies. It does not follow control flow; reading a LDA, STA, LDA
// sequence in memory disassembles as exactly that sequence. This always
// reads two bytes past pc, so callers must ensure that range is valid.
func Step(pc uint16, r *memory.RAM) (string, int) {
	pc1 := r.Read(pc + 1)
	pc2 := r.Read(pc + 2)

	var op string
	mode := modeImplied
	o := r.Read(pc)
	switch o {
	case 0x69:
		op, mode = "ADC", modeImmediate
	case 0x65:
		op, mode = "ADC", modeZP
	case 0x75:
		op, mode = "ADC", modeZPX
	case 0x6D:
		op, mode = "ADC", modeAbsolute
	case 0x7D:
		op, mode = "ADC", modeAbsoluteX
	case 0x79:
		op, mode = "ADC", modeAbsoluteY
	case 0x61:
		op, mode = "ADC", modeIndirectX
	case 0x71:
		op, mode = "ADC", modeIndirectY
	case 0xE9:
		op, mode = "SBC", modeImmediate
	case 0xE5:
		op, mode = "SBC", modeZP
	case 0xF5:
		op, mode = "SBC", modeZPX
	case 0xED:
		op, mode = "SBC", modeAbsolute
	case 0xFD:
		op, mode = "SBC", modeAbsoluteX
	case 0xF9:
		op, mode = "SBC", modeAbsoluteY
	case 0xE1:
		op, mode = "SBC", modeIndirectX
	case 0xF1:
		op, mode = "SBC", modeIndirectY
	case 0x29:
		op, mode = "AND", modeImmediate
	case 0x25:
		op, mode = "AND", modeZP
	case 0x35:
		op, mode = "AND", modeZPX
	case 0x2D:
		op, mode = "AND", modeAbsolute
	case 0x3D:
		op, mode = "AND", modeAbsoluteX
	case 0x39:
		op, mode = "AND", modeAbsoluteY
	case 0x21:
		op, mode = "AND", modeIndirectX
	case 0x31:
		op, mode = "AND", modeIndirectY
	case 0x09:
		op, mode = "ORA", modeImmediate
	case 0x05:
		op, mode = "ORA", modeZP
	case 0x15:
		op, mode = "ORA", modeZPX
	case 0x0D:
		op, mode = "ORA", modeAbsolute
	case 0x1D:
		op, mode = "ORA", modeAbsoluteX
	case 0x19:
		op, mode = "ORA", modeAbsoluteY
	case 0x01:
		op, mode = "ORA", modeIndirectX
	case 0x11:
		op, mode = "ORA", modeIndirectY
	case 0x49:
		op, mode = "EOR", modeImmediate
	case 0x45:
		op, mode = "EOR", modeZP
	case 0x55:
		op, mode = "EOR", modeZPX
	case 0x4D:
		op, mode = "EOR", modeAbsolute
	case 0x5D:
		op, mode = "EOR", modeAbsoluteX
	case 0x59:
		op, mode = "EOR", modeAbsoluteY
	case 0x41:
		op, mode = "EOR", modeIndirectX
	case 0x51:
		op, mode = "EOR", modeIndirectY
	case 0xC9:
		op, mode = "CMP", modeImmediate
	case 0xC5:
		op, mode = "CMP", modeZP
	case 0xD5:
		op, mode = "CMP", modeZPX
	case 0xCD:
		op, mode = "CMP", modeAbsolute
	case 0xDD:
		op, mode = "CMP", modeAbsoluteX
	case 0xD9:
		op, mode = "CMP", modeAbsoluteY
	case 0xC1:
		op, mode = "CMP", modeIndirectX
	case 0xD1:
		op, mode = "CMP", modeIndirectY
	case 0xE0:
		op, mode = "CPX", modeImmediate
	case 0xE4:
		op, mode = "CPX", modeZP
	case 0xEC:
		op, mode = "CPX", modeAbsolute
	case 0xC0:
		op, mode = "CPY", modeImmediate
	case 0xC4:
		op, mode = "CPY", modeZP
	case 0xCC:
		op, mode = "CPY", modeAbsolute
	case 0x24:
		op, mode = "BIT", modeZP
	case 0x2C:
		op, mode = "BIT", modeAbsolute
	case 0xA9:
		op, mode = "LDA", modeImmediate
	case 0xA5:
		op, mode = "LDA", modeZP
	case 0xB5:
		op, mode = "LDA", modeZPX
	case 0xAD:
		op, mode = "LDA", modeAbsolute
	case 0xBD:
		op, mode = "LDA", modeAbsoluteX
	case 0xB9:
		op, mode = "LDA", modeAbsoluteY
	case 0xA1:
		op, mode = "LDA", modeIndirectX
	case 0xB1:
		op, mode = "LDA", modeIndirectY
	case 0xA2:
		op, mode = "LDX", modeImmediate
	case 0xA6:
		op, mode = "LDX", modeZP
	case 0xB6:
		op, mode = "LDX", modeZPY
	case 0xAE:
		op, mode = "LDX", modeAbsolute
	case 0xBE:
		op, mode = "LDX", modeAbsoluteY
	case 0xA0:
		op, mode = "LDY", modeImmediate
	case 0xA4:
		op, mode = "LDY", modeZP
	case 0xB4:
		op, mode = "LDY", modeZPX
	case 0xAC:
		op, mode = "LDY", modeAbsolute
	case 0xBC:
		op, mode = "LDY", modeAbsoluteX
	case 0x85:
		op, mode = "STA", modeZP
	case 0x95:
		op, mode = "STA", modeZPX
	case 0x8D:
		op, mode = "STA", modeAbsolute
	case 0x9D:
		op, mode = "STA", modeAbsoluteX
	case 0x99:
		op, mode = "STA", modeAbsoluteY
	case 0x81:
		op, mode = "STA", modeIndirectX
	case 0x91:
		op, mode = "STA", modeIndirectY
	case 0x86:
		op, mode = "STX", modeZP
	case 0x96:
		op, mode = "STX", modeZPY
	case 0x8E:
		op, mode = "STX", modeAbsolute
	case 0x84:
		op, mode = "STY", modeZP
	case 0x94:
		op, mode = "STY", modeZPX
	case 0x8C:
		op, mode = "STY", modeAbsolute
	case 0xE6:
		op, mode = "INC", modeZP
	case 0xF6:
		op, mode = "INC", modeZPX
	case 0xEE:
		op, mode = "INC", modeAbsolute
	case 0xFE:
		op, mode = "INC", modeAbsoluteX
	case 0xC6:
		op, mode = "DEC", modeZP
	case 0xD6:
		op, mode = "DEC", modeZPX
	case 0xCE:
		op, mode = "DEC", modeAbsolute
	case 0xDE:
		op, mode = "DEC", modeAbsoluteX
	case 0xE8:
		op = "INX"
	case 0xC8:
		op = "INY"
	case 0xCA:
		op = "DEX"
	case 0x88:
		op = "DEY"
	case 0x0A:
		op = "ASL"
	case 0x06:
		op, mode = "ASL", modeZP
	case 0x16:
		op, mode = "ASL", modeZPX
	case 0x0E:
		op, mode = "ASL", modeAbsolute
	case 0x1E:
		op, mode = "ASL", modeAbsoluteX
	case 0x4A:
		op = "LSR"
	case 0x46:
		op, mode = "LSR", modeZP
	case 0x56:
		op, mode = "LSR", modeZPX
	case 0x4E:
		op, mode = "LSR", modeAbsolute
	case 0x5E:
		op, mode = "LSR", modeAbsoluteX
	case 0x2A:
		op = "ROL"
	case 0x26:
		op, mode = "ROL", modeZP
	case 0x36:
		op, mode = "ROL", modeZPX
	case 0x2E:
		op, mode = "ROL", modeAbsolute
	case 0x3E:
		op, mode = "ROL", modeAbsoluteX
	case 0x6A:
		op = "ROR"
	case 0x66:
		op, mode = "ROR", modeZP
	case 0x76:
		op, mode = "ROR", modeZPX
	case 0x6E:
		op, mode = "ROR", modeAbsolute
	case 0x7E:
		op, mode = "ROR", modeAbsoluteX
	case 0xAA:
		op = "TAX"
	case 0xA8:
		op = "TAY"
	case 0x8A:
		op = "TXA"
	case 0x98:
		op = "TYA"
	case 0xBA:
		op = "TSX"
	case 0x9A:
		op = "TXS"
	case 0x48:
		op = "PHA"
	case 0x68:
		op = "PLA"
	case 0x08:
		op = "PHP"
	case 0x28:
		op = "PLP"
	case 0x18:
		op = "CLC"
	case 0x38:
		op = "SEC"
	case 0xD8:
		op = "CLD"
	case 0xF8:
		op = "SED"
	case 0x58:
		op = "CLI"
	case 0x78:
		op = "SEI"
	case 0xB8:
		op = "CLV"
	case 0xEA:
		op = "NOP"
	default:
		op = "UNIMPLEMENTED"
	}

	count := 2 // Default byte count, adjusted below.
	out := fmt.Sprintf("%.4X %.2X ", pc, o)
	switch mode {
	case modeImmediate:
		out += fmt.Sprintf("%.2X      %s #%.2X       ", pc1, op, pc1)
	case modeZP:
		out += fmt.Sprintf("%.2X      %s %.2X        ", pc1, op, pc1)
	case modeZPX:
		out += fmt.Sprintf("%.2X      %s %.2X,X      ", pc1, op, pc1)
	case modeZPY:
		out += fmt.Sprintf("%.2X      %s %.2X,Y      ", pc1, op, pc1)
	case modeIndirectX:
		out += fmt.Sprintf("%.2X      %s (%.2X,X)    ", pc1, op, pc1)
	case modeIndirectY:
		out += fmt.Sprintf("%.2X      %s (%.2X),Y    ", pc1, op, pc1)
	case modeAbsolute:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X      ", pc1, pc2, op, pc2, pc1)
		count++
	case modeAbsoluteX:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,X    ", pc1, pc2, op, pc2, pc1)
		count++
	case modeAbsoluteY:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,Y    ", pc1, pc2, op, pc2, pc1)
		count++
	case modeImplied:
		out += fmt.Sprintf("        %s           ", op)
		count--
	default:
		panic(fmt.Sprintf("invalid mode: %d", mode))
	}
	return out, count
}
