// Package e2e provides the 8-bit SAE J1850 cyclic redundancy check used by
// end-to-end protection of automotive messages.
//
// A single call computes the checksum of a complete message:
//
//	crc := e2e.CalculateCRC8(data, e2e.CRC8InitialValue, true)
//
// A message may also be split across several calls. The result of each
// call seeds the next one, and the final result equals the checksum of
// the concatenated data:
//
//	crc := e2e.CalculateCRC8(head, e2e.CRC8InitialValue, true)
//	crc = e2e.CalculateCRC8(tail, crc, false)
package e2e

import "github.com/pchchv/e2e/internal/hashutil/crc8"

// Size of a CRC-8 checksum in bytes.
const Size = crc8.Size

// SAE J1850 CRC-8 parameters.
const (
	// CRC8InitialValue is the seed of a new chain.
	CRC8InitialValue uint8 = crc8.SAEJ1850Init
	// CRC8XorValue is applied to the register at the end of every call,
	// and removed from the start value of a continued chain.
	CRC8XorValue uint8 = crc8.SAEJ1850XorOut
	// CRC8Check is the checksum of the ASCII string "123456789".
	CRC8Check uint8 = 0x4B
	// CRC8MagicCheck is the residue: the raw register after processing
	// any message followed by its own checksum.
	CRC8MagicCheck uint8 = 0xC4
)

// CalculateCRC8 returns the SAE J1850 CRC-8 of data.
//
// If firstCall is true, startValue is ignored and the computation is
// seeded with CRC8InitialValue. Otherwise startValue must be the result
// of the previous call of a sequence.
func CalculateCRC8(data []byte, startValue uint8, firstCall bool) uint8 {
	crc := CRC8InitialValue
	if !firstCall {
		crc = CRC8XorValue ^ startValue
	}

	return crc8.Update(crc, data) ^ CRC8XorValue
}
