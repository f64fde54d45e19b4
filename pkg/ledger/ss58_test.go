package ledger

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSS58RoundTrip(t *testing.T) {
	pub := make([]byte, 32)
	for i := range pub {
		pub[i] = byte(255 - i)
	}

	for _, prefix := range []uint16{0, 2, 42, 63, 64, 6094, 16383} {
		address, err := EncodeSS58(prefix, pub)
		require.NoError(t, err)

		gotPrefix, gotPub, err := DecodeSS58(address)
		require.NoError(t, err, "prefix %d", prefix)
		assert.Equal(t, prefix, gotPrefix)
		assert.Equal(t, pub, gotPub)
	}
}

func TestDecodeSS58_Invalid(t *testing.T) {
	valid, err := EncodeSS58(42, make([]byte, 32))
	require.NoError(t, err)

	// flip the last character to break the checksum
	last := valid[len(valid)-1]
	replacement := "2"
	if last == '2' {
		replacement = "3"
	}
	corrupted := valid[:len(valid)-1] + replacement

	tests := []struct {
		name    string
		address string
	}{
		{name: "empty", address: ""},
		{name: "not base58", address: "0OIl"},
		{name: "too short", address: "5Grw"},
		{name: "bad checksum", address: corrupted},
		{name: "evm address", address: "0x81F37cc0EcAE1dD1c89D79A98f857563873cFA76"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := DecodeSS58(tc.address)
			assert.ErrorIs(t, err, ErrInvalidSS58)
		})
	}
}

func TestEncodeSS58_Invalid(t *testing.T) {
	_, err := EncodeSS58(42, []byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidSS58)

	_, err = EncodeSS58(16384, make([]byte, 32))
	assert.ErrorIs(t, err, ErrInvalidSS58)
}

func TestAccountStorageKey(t *testing.T) {
	pub := make([]byte, 32)
	key := AccountStorageKey(pub)

	assert.True(t, strings.HasPrefix(key, "0x"+systemAccountPrefix))
	// 0x + 32 byte prefix + 16 byte blake2_128 + 32 byte key, hex encoded
	assert.Len(t, key, 2+2*(32+16+32))
	assert.True(t, strings.HasSuffix(key, strings.Repeat("00", 32)))
}

func TestDecodeFreeBalance(t *testing.T) {
	info := make([]byte, 80)
	// 1 << 64 in the u128 little endian slot
	info[freeBalanceOffset+8] = 1
	// reserved must be ignored
	info[freeBalanceOffset+16] = 0xff

	got, err := DecodeFreeBalance(info)
	require.NoError(t, err)
	assert.Equal(t, new(big.Int).Lsh(big.NewInt(1), 64), got)

	_, err = DecodeFreeBalance(info[:20])
	assert.Error(t, err)
}

func TestValidateAddress(t *testing.T) {
	ss58, err := EncodeSS58(6094, make([]byte, 32))
	require.NoError(t, err)

	assert.NoError(t, ValidateAddress(KindSubstrate, ss58))
	assert.Error(t, ValidateAddress(KindSubstrate, "0x81F37cc0EcAE1dD1c89D79A98f857563873cFA76"))
	assert.NoError(t, ValidateAddress(KindEVM, "0x81F37cc0EcAE1dD1c89D79A98f857563873cFA76"))
	assert.Error(t, ValidateAddress(KindEVM, "0x1234"))
	assert.Error(t, ValidateAddress(KindEVM, ss58))
	assert.Error(t, ValidateAddress("bitcoin", ss58))
}
