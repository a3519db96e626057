// Package bits provides bit-serial CRC-8 operations.
//
// The register processes one input bit at a time, most significant bit
// first, and serves as the reference the table-driven routines are
// derived from and checked against.
package bits

// Register is an 8-bit CRC shift register for a non-reflected polynomial.
type Register struct {
	poly uint8 // generator polynomial without the implicit x^8 term
	x    uint8 // current register contents
}

// NewRegister returns a new Register for poly holding init.
func NewRegister(poly, init uint8) *Register {
	return &Register{poly: poly, x: init}
}

// WriteBit shifts the input bit b into the register.
func (r *Register) WriteBit(b bool) {
	top := r.x&0x80 != 0
	r.x <<= 1
	if top != b {
		r.x ^= r.poly
	}
}

// WriteByte shifts the 8 bits of c into the register,
// most significant bit first. It never returns an error.
func (r *Register) WriteByte(c byte) error {
	for i := 7; i >= 0; i-- {
		r.WriteBit(c>>uint(i)&1 == 1)
	}

	return nil
}

// Value returns the current register contents.
// No final XOR is applied.
func (r *Register) Value() uint8 {
	return r.x
}

// Reset loads init into the register.
func (r *Register) Reset(init uint8) {
	r.x = init
}
