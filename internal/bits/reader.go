package bits

import (
	"io"

	"github.com/icza/bitio"
)

// Checksum reads r until io.EOF, shifting every bit into a register for
// poly seeded with init, and returns the raw register value.
// Any error other than io.EOF is returned unchanged.
func Checksum(r io.Reader, poly, init uint8) (uint8, error) {
	br := bitio.NewReader(r)
	reg := NewRegister(poly, init)
	for {
		b, err := br.ReadBool()
		if err == io.EOF {
			return reg.Value(), nil
		}

		if err != nil {
			return 0, err
		}

		reg.WriteBit(b)
	}
}
