// Package memory defines the flat 64 KiB address space that backs a
// six502 CPU. The buffer itself is owned by the host; this package only
// wraps it with bounds-safe reads and writes. Host-installed read/write
// interception lives one layer up in the cpu package, since a hook needs
// to see the CPU state, not just the bus.
package memory

// Size is the number of bytes in a full 6502 address space.
const Size = 1 << 16

// RAM is a flat, byte-addressable 64 KiB address space.
type RAM struct {
	buf [Size]uint8
}

// New builds a CPU's address space from buf. buf is copied in starting
// at address 0 (bytes past Size are ignored; later changes to buf are
// not seen) and any remainder is zero filled; a nil or empty buf yields
// an all-zero address space. This
// matches the common case of a host handing over an image smaller than
// the full 64 KiB.
func New(buf []uint8) *RAM {
	r := &RAM{}
	copy(r.buf[:], buf)
	return r
}

// Read returns the byte stored at addr.
func (r *RAM) Read(addr uint16) uint8 {
	return r.buf[addr]
}

// Write stores val at addr.
func (r *RAM) Write(addr uint16, val uint8) {
	r.buf[addr] = val
}

// Raw exposes the backing array for host inspection (dumping state,
// loading a program image after construction). Mutating it bypasses any
// hooks a CPU has installed.
func (r *RAM) Raw() *[Size]uint8 {
	return &r.buf
}
