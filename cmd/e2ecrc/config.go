package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Input encodings of the data to checksum.
const (
	encodingASCII = "ascii"
	encodingHex   = "hex"
)

// CRCOption holds the arguments passed to the engine.
type CRCOption struct {
	// StartValue is kept wide so out of range values reach validation.
	StartValue int64  `toml:"start_value"`
	FirstCall  bool   `toml:"first_call"`
	Encoding   string `toml:"encoding"`
}

// Option is the configuration of e2ecrc.
type Option struct {
	LogLevel string    `toml:"log_level"`
	CRC      CRCOption `toml:"crc"`
}

// defaultOption returns the configuration used when no file is given.
func defaultOption() Option {
	return Option{
		LogLevel: "info",
		CRC: CRCOption{
			StartValue: 0xFF,
			FirstCall:  true,
			Encoding:   encodingASCII,
		},
	}
}

// loadConfiguration decodes the TOML file filename over option.
// Keys missing from the file keep their current values.
func loadConfiguration(filename string, option *Option) error {
	md, err := toml.DecodeFile(filename, option)
	if err != nil {
		return fmt.Errorf("e2ecrc.loadConfiguration: unable to decode %q; %w", filename, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("e2ecrc.loadConfiguration: unknown keys in %q: %v", filename, undecoded)
	}

	return nil
}
