// Package crc8 implements the 8-bit cyclic redundancy check, or CRC-8,
// checksum for non-reflected polynomials.
//
// The SAE J1850 table is precomputed; tables for other polynomials are
// built with MakeTable.
package crc8

import (
	"github.com/pchchv/e2e/internal/bits"
	"github.com/pchchv/e2e/internal/hashutil"
)

// Size of a CRC-8 checksum in bytes.
const Size = 1

// Predefined polynomials.
const (
	// SAEJ1850 is the polynomial x^8 + x^4 + x^3 + x^2 + 1 used by
	// SAE J1850 and the AUTOSAR E2E profiles.
	SAEJ1850 = 0x1D
)

// SAE J1850 initial value and final XOR value.
const (
	SAEJ1850Init   = 0xFF
	SAEJ1850XorOut = 0xFF
)

// Table is a 256-word table representing
// the polynomial for efficient processing.
type Table [256]uint8

// MakeTable returns the Table constructed from the specified polynomial.
func MakeTable(poly uint8) *Table {
	table := new(Table)
	r := bits.NewRegister(poly, 0)
	for i := range table {
		r.Reset(0)
		r.WriteByte(byte(i))
		table[i] = r.Value()
	}

	return table
}

// SAEJ1850Table returns a copy of the precomputed SAE J1850 table.
func SAEJ1850Table() Table {
	return saeJ1850Table
}

// Update returns the result of adding the bytes in p to the raw crc
// using the SAE J1850 table. No initial or final XOR is applied.
func Update(crc uint8, p []byte) uint8 {
	return update(crc, &saeJ1850Table, p)
}

// UpdateTable returns the result of adding the bytes in p to the raw crc
// using the given table.
func UpdateTable(crc uint8, table *Table, p []byte) uint8 {
	return update(crc, table, p)
}

func update(crc uint8, table *Table, p []byte) uint8 {
	for _, v := range p {
		crc = table[crc^v]
	}

	return crc
}

// Checksum returns the CRC-8 checksum of data using the polynomial
// represented by the table, seeded with init and finalized with xorOut.
func Checksum(data []byte, table *Table, init, xorOut uint8) uint8 {
	return update(init, table, data) ^ xorOut
}

// ChecksumSAEJ1850 returns the SAE J1850 CRC-8 checksum of data.
func ChecksumSAEJ1850(data []byte) uint8 {
	return Update(SAEJ1850Init, data) ^ SAEJ1850XorOut
}

// digest represents the partial evaluation of a checksum.
type digest struct {
	crc    uint8 // raw register, before the final XOR
	init   uint8
	xorOut uint8
	table  *Table
}

// New creates a new hashutil.Hash8 computing the CRC-8 checksum
// using the polynomial represented by the table.
func New(table *Table, init, xorOut uint8) hashutil.Hash8 {
	return &digest{crc: init, init: init, xorOut: xorOut, table: table}
}

// NewSAEJ1850 creates a new hashutil.Hash8 computing the SAE J1850
// CRC-8 checksum.
func NewSAEJ1850() hashutil.Hash8 {
	return New(&saeJ1850Table, SAEJ1850Init, SAEJ1850XorOut)
}

func (d *digest) Size() int {
	return Size
}

func (d *digest) BlockSize() int {
	return 1
}

func (d *digest) Reset() {
	d.crc = d.init
}

func (d *digest) Write(p []byte) (n int, err error) {
	d.crc = update(d.crc, d.table, p)
	return len(p), nil
}

// Sum appends the current hash to in and returns the resulting slice.
// It does not change the underlying hash state.
func (d *digest) Sum(in []byte) []byte {
	return append(in, d.Sum8())
}

func (d *digest) Sum8() uint8 {
	return d.crc ^ d.xorOut
}
