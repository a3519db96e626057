package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrStartValueRange = errors.New("start value out of range [0, 255]")
	ErrInvalidEncoding = errors.New("invalid encoding")
)

// parseStartValue parses s using Go integer literal syntax
// and returns it as an 8-bit start value.
func parseStartValue(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("e2ecrc.parseStartValue: invalid start value %q; %w", s, err)
	}

	return v, nil
}

// checkStartValue returns v as uint8, or ErrStartValueRange.
func checkStartValue(v int64) (uint8, error) {
	if v < 0 || v > 0xFF {
		return 0, fmt.Errorf("e2ecrc.checkStartValue: %d; %w", v, ErrStartValueRange)
	}

	return uint8(v), nil
}

// decodeData converts the data arguments into the bytes to checksum.
func decodeData(data []byte, encoding string) ([]byte, error) {
	switch encoding {
	case encodingASCII, "":
		return data, nil
	case encodingHex:
		s := strings.Join(strings.Fields(string(data)), "")
		s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
		buf, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("e2ecrc.decodeData: invalid hex data %q; %w", s, err)
		}
		return buf, nil
	default:
		return nil, fmt.Errorf("e2ecrc.decodeData: %q; %w", encoding, ErrInvalidEncoding)
	}
}
