// Command e2ecrc computes the SAE J1850 CRC-8 of its arguments or of
// standard input.
//
// Usage:
//
//	e2ecrc [OPTIONS,...] [DATA ...]
//
// Chained computation over several invocations:
//
//	crc=$(e2ecrc 1234)
//	e2ecrc -continue -start "$crc" 56789
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pchchv/e2e"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := run(os.Args[1:], os.Stdin, os.Stdout, log); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		log.WithError(err).Error("e2ecrc failed")
		os.Exit(1)
	}
}

// run parses args, resolves the configuration and writes the checksum
// to stdout.
func run(args []string, stdin io.Reader, stdout io.Writer, log *logrus.Logger) error {
	fs := flag.NewFlagSet("e2ecrc", flag.ContinueOnError)
	fs.SetOutput(log.Out)
	var (
		configFile = fs.String("config", "", "TOML configuration file.")
		start      = fs.String("start", "0xFF", "Start value of a continued chain (0-255). Ignored unless -continue is set.")
		cont       = fs.Bool("continue", false, "Continue a chain; -start is the result of the previous call.")
		hexInput   = fs.Bool("hex", false, "Interpret data as hex encoded bytes.")
		logLevel   = fs.String("log-level", "info", "Logging level.")
		self       = fs.Bool("selftest", false, "Run the conformance self-test and exit.")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	option := defaultOption()
	if *configFile != "" {
		if err := loadConfiguration(*configFile, &option); err != nil {
			return err
		}
	}

	// flags given on the command line override the configuration file.
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "start":
			option.CRC.StartValue, err = parseStartValue(*start)
		case "continue":
			option.CRC.FirstCall = !*cont
		case "hex":
			if *hexInput {
				option.CRC.Encoding = encodingHex
			} else {
				option.CRC.Encoding = encodingASCII
			}
		case "log-level":
			option.LogLevel = *logLevel
		}
	})
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(option.LogLevel)
	if err != nil {
		return fmt.Errorf("e2ecrc.run: %w", err)
	}
	log.SetLevel(level)

	if *self {
		return selfTest(log)
	}

	startValue, err := checkStartValue(option.CRC.StartValue)
	if err != nil {
		return err
	}

	var raw []byte
	if fs.NArg() > 0 {
		raw = []byte(strings.Join(fs.Args(), " "))
	} else {
		if raw, err = io.ReadAll(stdin); err != nil {
			return fmt.Errorf("e2ecrc.run: unable to read standard input; %w", err)
		}
	}

	data, err := decodeData(raw, option.CRC.Encoding)
	if err != nil {
		return err
	}

	crc := e2e.CalculateCRC8(data, startValue, option.CRC.FirstCall)
	log.WithFields(logrus.Fields{
		"length":     len(data),
		"startValue": fmt.Sprintf("0x%02X", startValue),
		"firstCall":  option.CRC.FirstCall,
	}).Debug("computed CRC-8")

	_, err = fmt.Fprintf(stdout, "0x%02X\n", crc)
	return err
}
