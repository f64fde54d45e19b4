package ledger

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/blake2b"
)

const (
	publicKeyLength = 32
	checksumLength  = 2
)

var ss58Prefix = []byte("SS58PRE")

var ErrInvalidSS58 = errors.New("invalid ss58 address")

// DecodeSS58 returns the network prefix and the 32 byte public key encoded in
// address. Both the one byte (< 64) and two byte (64..16383) prefix forms are
// accepted and the blake2b checksum is verified.
func DecodeSS58(address string) (uint16, []byte, error) {
	data := base58.Decode(address)
	if len(data) < 1 {
		return 0, nil, fmt.Errorf("%w: not base58", ErrInvalidSS58)
	}

	var (
		prefix    uint16
		prefixLen int
	)
	switch {
	case data[0] < 64:
		prefix, prefixLen = uint16(data[0]), 1
	case data[0] < 128:
		if len(data) < 2 {
			return 0, nil, fmt.Errorf("%w: truncated prefix", ErrInvalidSS58)
		}
		lower := (data[0]&0b0011_1111)<<2 | data[1]>>6
		upper := data[1] & 0b0011_1111
		prefix, prefixLen = uint16(lower)|uint16(upper)<<8, 2
	default:
		return 0, nil, fmt.Errorf("%w: reserved prefix byte %d", ErrInvalidSS58, data[0])
	}

	if len(data) != prefixLen+publicKeyLength+checksumLength {
		return 0, nil, fmt.Errorf("%w: unexpected length %d", ErrInvalidSS58, len(data))
	}

	body := data[:prefixLen+publicKeyLength]
	if !bytes.Equal(ss58Checksum(body), data[len(body):]) {
		return 0, nil, fmt.Errorf("%w: checksum mismatch", ErrInvalidSS58)
	}

	pub := make([]byte, publicKeyLength)
	copy(pub, data[prefixLen:])

	return prefix, pub, nil
}

func EncodeSS58(prefix uint16, pub []byte) (string, error) {
	if len(pub) != publicKeyLength {
		return "", fmt.Errorf("%w: public key must be %d bytes", ErrInvalidSS58, publicKeyLength)
	}
	if prefix > 16383 {
		return "", fmt.Errorf("%w: prefix %d out of range", ErrInvalidSS58, prefix)
	}

	var body []byte
	if prefix < 64 {
		body = append(body, byte(prefix))
	} else {
		first := byte((prefix&0b1111_1100)>>2) | 0b0100_0000
		second := byte(prefix>>8) | byte(prefix&0b11)<<6
		body = append(body, first, second)
	}
	body = append(body, pub...)
	body = append(body, ss58Checksum(body)...)

	return base58.Encode(body), nil
}

func ss58Checksum(body []byte) []byte {
	h, _ := blake2b.New512(nil)
	h.Write(ss58Prefix)
	h.Write(body)
	return h.Sum(nil)[:checksumLength]
}
