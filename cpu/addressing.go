package cpu

// addrFunc computes the effective address for one of the eight
// memory-referencing addressing modes, consuming whatever operand bytes
// follow the opcode from PC. Immediate mode has no effective address
// (the operand is embedded in the instruction stream itself) so it is
// handled separately as a value-producing function.
type addrFunc func(c *CPU) uint16

// zpReadWord reads a little-endian word starting at a zero-page
// pointer, wrapping the high-byte fetch within page zero rather than
// letting it spill into page one. This is what makes (d,x)/(d),y behave
// correctly at pointer 0xFF.
func (c *CPU) zpReadWord(ptr uint8) uint16 {
	lo := c.readByte(uint16(ptr))
	hi := c.readByte(uint16(uint8(ptr + 1)))
	return uint16(lo) | uint16(hi)<<8
}

// addrZP implements zero-page mode - d.
func addrZP(c *CPU) uint16 {
	return uint16(c.fetchByte())
}

// addrZPX implements zero-page,X mode - d,x. The sum wraps modulo 256,
// staying inside page zero.
func addrZPX(c *CPU) uint16 {
	return uint16(c.fetchByte() + c.X)
}

// addrZPY implements zero-page,Y mode - d,y.
func addrZPY(c *CPU) uint16 {
	return uint16(c.fetchByte() + c.Y)
}

// addrAbsolute implements absolute mode - a.
func addrAbsolute(c *CPU) uint16 {
	return c.fetchWord()
}

// addrAbsoluteX implements absolute,X mode - a,x. The sum wraps modulo
// 2^16; page-crossing tick penalties are not modelled.
func addrAbsoluteX(c *CPU) uint16 {
	return c.fetchWord() + uint16(c.X)
}

// addrAbsoluteY implements absolute,Y mode - a,y.
func addrAbsoluteY(c *CPU) uint16 {
	return c.fetchWord() + uint16(c.Y)
}

// addrIndirectX implements (indirect,X) mode - (d,x). The pointer is
// read from zero page at (d+X)&0xFF.
func addrIndirectX(c *CPU) uint16 {
	ptr := c.fetchByte() + c.X
	return c.zpReadWord(ptr)
}

// addrIndirectY implements (indirect),Y mode - (d),y. The pointer is
// read from zero page at d, then Y is added to the resulting 16-bit
// address (which may cross a page boundary; not separately penalized).
func addrIndirectY(c *CPU) uint16 {
	ptr := c.fetchByte()
	base := c.zpReadWord(ptr)
	return base + uint16(c.Y)
}

// execLoad reads through addr and hands the value to op. Used for
// instructions that only consume a value (LDA, ADC, AND, CMP, BIT, ...).
func execLoad(c *CPU, addr addrFunc, op func(c *CPU, val uint8)) {
	val := c.readByte(addr(c))
	op(c, val)
}

// execLoadImmediate hands the immediate operand byte to op.
func execLoadImmediate(c *CPU, op func(c *CPU, val uint8)) {
	op(c, c.fetchByte())
}

// execStore writes val to the address addr resolves.
func execStore(c *CPU, addr addrFunc, val uint8) {
	c.writeByte(addr(c), val)
}

// execRMW reads the byte at addr, applies op to transform it, and
// writes the result back to the same address (a read-modify-write
// cycle, as ASL/LSR/ROL/ROR/INC/DEC all are in memory form).
func execRMW(c *CPU, addr addrFunc, op func(c *CPU, val uint8) uint8) {
	a := addr(c)
	val := c.readByte(a)
	val = op(c, val)
	c.writeByte(a, val)
}
