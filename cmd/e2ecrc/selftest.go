package main

import (
	"fmt"

	"github.com/pchchv/e2e"
	"github.com/sirupsen/logrus"
)

// selfTest verifies the check value and the residue of the engine.
func selfTest(log *logrus.Logger) error {
	check := e2e.CalculateCRC8([]byte("123456789"), e2e.CRC8InitialValue, true)
	log.WithFields(logrus.Fields{
		"got":  fmt.Sprintf("0x%02X", check),
		"want": fmt.Sprintf("0x%02X", e2e.CRC8Check),
	}).Info("check value")
	if check != e2e.CRC8Check {
		return fmt.Errorf("e2ecrc.selfTest: check value mismatch; expected 0x%02X, got 0x%02X", e2e.CRC8Check, check)
	}

	residue := e2e.CalculateCRC8([]byte("123456789"), e2e.CRC8InitialValue, true)
	residue = e2e.CalculateCRC8([]byte{residue}, residue, false) ^ e2e.CRC8XorValue
	log.WithFields(logrus.Fields{
		"got":  fmt.Sprintf("0x%02X", residue),
		"want": fmt.Sprintf("0x%02X", e2e.CRC8MagicCheck),
	}).Info("magic check")
	if residue != e2e.CRC8MagicCheck {
		return fmt.Errorf("e2ecrc.selfTest: magic check mismatch; expected 0x%02X, got 0x%02X", e2e.CRC8MagicCheck, residue)
	}

	return nil
}
