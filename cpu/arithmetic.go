package cpu

// overflowCheck sets V iff reg and operand share a sign bit but the
// result's sign bit differs from theirs (the standard two's-complement
// signed overflow test).
func (c *CPU) overflowCheck(reg, operand, result uint8) {
	c.setFlag(FlagOverflow, (reg^operand)&0x80 == 0 && (reg^result)&0x80 != 0)
}

// adc implements ADC. Z/N/V are derived from the binary sum even in
// decimal mode. On real NMOS 6502 hardware those three flags are
// documented as unreliable in BCD mode for exactly this reason, and this
// core reproduces that rather than "fixing" it.
func (c *CPU) adc(operand uint8) {
	carry := uint16(c.P & FlagCarry)
	tmp := uint16(c.A) + uint16(operand) + carry
	c.setFlag(FlagZero, uint8(tmp) == 0)
	c.setFlag(FlagNegative, tmp&0x80 != 0)
	c.overflowCheck(c.A, operand, uint8(tmp))

	if c.P&FlagDecimal == 0 {
		c.setFlag(FlagCarry, tmp > 0xFF)
		c.A = uint8(tmp)
		return
	}

	// BCD fixup: http://6502.org/tutorials/decimal_mode.html
	if (c.A&0x0F)+(operand&0x0F)+uint8(carry) > 9 {
		tmp += 6
	}
	if tmp > 0x99 {
		tmp += 0x60
		c.setFlag(FlagCarry, true)
	} else {
		c.setFlag(FlagCarry, false)
	}
	c.A = uint8(tmp)
}

// sbc implements SBC. Binary mode is computed as the standard
// two's-complement identity A + ^operand + C, which is what makes SEC
// followed by SBC #0 leave A unchanged and reuses adc directly. Decimal
// mode follows the canonical nibble-borrow BCD algorithm rather than a
// naive "A - operand - C", since only the canonical convention stays
// consistent with the binary-mode identity above.
func (c *CPU) sbc(operand uint8) {
	if c.P&FlagDecimal == 0 {
		c.adc(^operand)
		return
	}

	carry := int(c.P & FlagCarry)
	a, op := int(c.A), int(operand)
	full := a - op - (1 - carry)
	c.setFlag(FlagZero, uint8(full) == 0)
	c.setFlag(FlagNegative, uint8(full)&0x80 != 0)
	c.overflowCheck(c.A, ^operand, uint8(full))
	c.setFlag(FlagCarry, full >= 0)

	lo := int(c.A&0x0F) - int(operand&0x0F) - (1 - carry)
	hi := int(c.A>>4) - int(operand>>4)
	if lo < 0 {
		lo -= 6
		hi--
	}
	if hi < 0 {
		hi -= 6
	}
	c.A = uint8(lo&0x0F) | uint8((hi&0x0F)<<4)
}

// compare implements the shared logic for CMP/CPX/CPY: reg and operand
// are treated as unsigned, N/Z come from the low byte of reg-operand,
// and C is set iff reg >= operand (no borrow).
func (c *CPU) compare(reg, operand uint8) {
	tmp := int32(reg) - int32(operand)
	c.setFlag(FlagZero, uint8(tmp) == 0)
	c.setFlag(FlagNegative, uint8(tmp)&0x80 != 0)
	c.setFlag(FlagCarry, tmp >= 0)
}

// bit implements BIT: Z comes from A&operand, N/V are copied straight
// from bits 7/6 of operand.
func (c *CPU) bit(operand uint8) {
	c.setFlag(FlagZero, c.A&operand == 0)
	c.setFlag(FlagNegative, operand&0x80 != 0)
	c.setFlag(FlagOverflow, operand&0x40 != 0)
}

// asl shifts val left one bit; the old bit 7 becomes the carry out.
func (c *CPU) asl(val uint8) uint8 {
	carry := val&0x80 != 0
	result := val << 1
	c.setFlag(FlagCarry, carry)
	c.evaluateFlags(result)
	return result
}

// lsr shifts val right one bit; the old bit 0 becomes the carry out.
func (c *CPU) lsr(val uint8) uint8 {
	carry := val&0x01 != 0
	result := val >> 1
	c.setFlag(FlagCarry, carry)
	c.evaluateFlags(result)
	return result
}

// rol rotates val left through carry: old carry becomes bit 0, old bit
// 7 becomes the new carry.
func (c *CPU) rol(val uint8) uint8 {
	carryIn := c.P & FlagCarry
	carryOut := val&0x80 != 0
	result := (val << 1) | carryIn
	c.setFlag(FlagCarry, carryOut)
	c.evaluateFlags(result)
	return result
}

// ror rotates val right through carry: old carry becomes bit 7, old bit
// 0 becomes the new carry.
func (c *CPU) ror(val uint8) uint8 {
	carryIn := c.P & FlagCarry
	carryOut := val&0x01 != 0
	result := (val >> 1) | (carryIn << 7)
	c.setFlag(FlagCarry, carryOut)
	c.evaluateFlags(result)
	return result
}

// inc adds one to val, wrapping modulo 256.
func (c *CPU) inc(val uint8) uint8 {
	r := val + 1
	c.evaluateFlags(r)
	return r
}

// dec subtracts one from val, wrapping modulo 256.
func (c *CPU) dec(val uint8) uint8 {
	r := val - 1
	c.evaluateFlags(r)
	return r
}
