package e2e

// Digest accumulates the SAE J1850 CRC-8 of the data written to it.
// It implements hash.Hash and hashutil.Hash8.
//
// A Digest belongs to its caller and is not safe for concurrent use.
type Digest struct {
	crc   uint8 // result of the data written so far
	start uint8 // start value restored by Reset
	first bool  // whether Reset starts a new chain
}

// New returns a Digest starting a new chain.
func New() *Digest {
	return &Digest{crc: CalculateCRC8(nil, 0, true), first: true}
}

// Resume returns a Digest continuing a chain whose previous result was prev.
func Resume(prev uint8) *Digest {
	return &Digest{crc: prev, start: prev}
}

// Write adds p to the running checksum. It never returns an error.
func (d *Digest) Write(p []byte) (n int, err error) {
	d.crc = CalculateCRC8(p, d.crc, false)
	return len(p), nil
}

// Sum appends the current checksum to in and returns the resulting slice.
// It does not change the underlying hash state.
func (d *Digest) Sum(in []byte) []byte {
	return append(in, d.crc)
}

// Sum8 returns the checksum of the data written so far.
func (d *Digest) Sum8() uint8 {
	return d.crc
}

// Reset restores the Digest to the state returned by New or Resume.
func (d *Digest) Reset() {
	if d.first {
		d.crc = CalculateCRC8(nil, 0, true)
		return
	}

	d.crc = d.start
}

func (d *Digest) Size() int {
	return Size
}

func (d *Digest) BlockSize() int {
	return 1
}
