package ledger

import (
	"encoding/hex"
	"errors"
	"fmt"
)

func HexToBytes(s string) []byte {
	if len(s) > 1 {
		if s[0:2] == "0x" || s[0:2] == "0X" {
			s = s[2:]
		}
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	bytes, err := hex.DecodeString(s)
	if err != nil {
		return nil
	}
	return bytes
}

// ValidateAddress reports whether address is well formed for the backend.
func ValidateAddress(kind Kind, address string) error {
	switch kind {
	case KindEVM:
		b := HexToBytes(address)
		if b == nil || len(b) != 20 {
			return errors.New("evm address must be 20 hex-encoded bytes")
		}
		return nil
	case KindSubstrate:
		_, _, err := DecodeSS58(address)
		return err
	}
	return fmt.Errorf("unknown ledger kind %q", kind)
}
