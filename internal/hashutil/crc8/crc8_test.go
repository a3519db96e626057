package crc8_test

import (
	"bytes"
	"testing"

	daqcrc8 "github.com/go-daq/crc8"
	"github.com/pchchv/e2e/internal/bits"
	"github.com/pchchv/e2e/internal/hashutil/crc8"
	sigurncrc8 "github.com/sigurn/crc8"
)

var saeJ1850Params = sigurncrc8.Params{
	Poly:   0x1D,
	Init:   0xFF,
	RefIn:  false,
	RefOut: false,
	XorOut: 0xFF,
	Check:  0x4B,
	Name:   "CRC-8/SAE-J1850",
}

var golden = []struct {
	data []byte
	want uint8
}{
	{[]byte{}, 0x00},
	{[]byte("123456789"), 0x4B},
	{[]byte{0x00, 0x00, 0x00, 0x00}, 0x59},
	{[]byte{0xF2, 0x01, 0x83}, 0x37},
	{[]byte{0x0F, 0xAA, 0x00, 0x55}, 0x79},
	{[]byte{0x00, 0xFF, 0x55, 0x11}, 0xB8},
	{[]byte{0x33, 0x22, 0x55, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}, 0xCB},
	{[]byte{0x92, 0x6B, 0x55}, 0x8C},
	{[]byte{0xFF, 0xFF, 0xFF, 0xFF}, 0x74},
}

func TestMakeTable(t *testing.T) {
	want := crc8.SAEJ1850Table()
	got := crc8.MakeTable(crc8.SAEJ1850)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("table[0x%02X] mismatch; expected 0x%02X, got 0x%02X", i, want[i], got[i])
		}
	}
}

func TestTableMatchesRegister(t *testing.T) {
	table := crc8.SAEJ1850Table()
	r := bits.NewRegister(crc8.SAEJ1850, 0)
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			r.Reset(uint8(x))
			r.WriteByte(byte(y))
			if got, want := table[x^y], r.Value(); got != want {
				t.Fatalf("table[0x%02X^0x%02X] mismatch; expected 0x%02X, got 0x%02X", x, y, want, got)
			}
		}
	}
}

func TestTableMatchesGoDaq(t *testing.T) {
	table := crc8.SAEJ1850Table()
	daq := daqcrc8.MakeTable(crc8.SAEJ1850)
	for i := 0; i < 256; i++ {
		if table[i] != daq[i] {
			t.Errorf("table[0x%02X] mismatch; expected 0x%02X, got 0x%02X", i, daq[i], table[i])
		}
	}
}

func TestSAEJ1850TableCopy(t *testing.T) {
	table := crc8.SAEJ1850Table()
	table[1] = 0
	if got := crc8.SAEJ1850Table(); got[1] != 0x1D {
		t.Fatalf("precomputed table modified through copy; table[1] = 0x%02X", got[1])
	}
}

func TestChecksumSAEJ1850(t *testing.T) {
	ref := sigurncrc8.MakeTable(saeJ1850Params)
	for i, g := range golden {
		if got := crc8.ChecksumSAEJ1850(g.data); got != g.want {
			t.Errorf("i=%d; checksum of %v mismatch; expected 0x%02X, got 0x%02X", i, g.data, g.want, got)
		}

		if got := sigurncrc8.Checksum(g.data, ref); got != g.want {
			t.Errorf("i=%d; reference checksum of %v mismatch; expected 0x%02X, got 0x%02X", i, g.data, g.want, got)
		}
	}
}

func TestChecksumTable(t *testing.T) {
	// CRC-8/SMBUS: poly 0x07, init 0x00, no final XOR.
	table := crc8.MakeTable(0x07)
	if got := crc8.Checksum([]byte("123456789"), table, 0x00, 0x00); got != 0xF4 {
		t.Fatalf("checksum mismatch; expected 0xF4, got 0x%02X", got)
	}

	if got := crc8.UpdateTable(0x00, table, []byte("123456789")); got != 0xF4 {
		t.Fatalf("update mismatch; expected 0xF4, got 0x%02X", got)
	}
}

func TestDigest(t *testing.T) {
	for i, g := range golden {
		h := crc8.NewSAEJ1850()
		for j := range g.data {
			n, err := h.Write(g.data[j : j+1])
			if err != nil || n != 1 {
				t.Fatalf("i=%d; unable to write byte %d; n=%d, err=%v", i, j, n, err)
			}
		}

		if got := h.Sum8(); got != g.want {
			t.Errorf("i=%d; digest of %v mismatch; expected 0x%02X, got 0x%02X", i, g.data, g.want, got)
		}

		if sum := h.Sum([]byte{0xAB}); !bytes.Equal(sum, []byte{0xAB, g.want}) {
			t.Errorf("i=%d; Sum mismatch; expected %v, got %v", i, []byte{0xAB, g.want}, sum)
		}

		h.Reset()
		if got := h.Sum8(); got != 0x00 {
			t.Errorf("i=%d; digest not reset; expected 0x00, got 0x%02X", i, got)
		}
	}
}

func TestDigestSize(t *testing.T) {
	h := crc8.NewSAEJ1850()
	if h.Size() != crc8.Size || h.BlockSize() != 1 {
		t.Fatalf("unexpected sizes; Size=%d, BlockSize=%d", h.Size(), h.BlockSize())
	}
}
