package ledger

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"golang.org/x/crypto/blake2b"
)

// twox128("System") ++ twox128("Account")
const systemAccountPrefix = "26aa394eea5630e07c48ae0c9558cef7b99d880ec681799c0cf30e8886371da9"

// nonce, consumers, providers and sufficients (u32 each) precede data.free.
const freeBalanceOffset = 16

type substrateClient struct {
	rc *rpc.Client
}

func newSubstrateClient(rc *rpc.Client) *substrateClient {
	return &substrateClient{rc: rc}
}

func (c *substrateClient) probe(ctx context.Context) error {
	var chain string
	return c.rc.CallContext(ctx, &chain, "system_chain")
}

func (c *substrateClient) QueryBalance(ctx context.Context, address string) (*big.Int, error) {
	_, pub, err := DecodeSS58(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	var data *hexutil.Bytes
	if err := c.rc.CallContext(ctx, &data, "state_getStorage", AccountStorageKey(pub)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	// Accounts that were never endowed have no storage entry.
	if data == nil {
		return new(big.Int), nil
	}

	free, err := DecodeFreeBalance(*data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	return free, nil
}

func (c *substrateClient) Close() {
	c.rc.Close()
}

// AccountStorageKey builds the System.Account storage key for a public key
// using the Blake2_128Concat hasher.
func AccountStorageKey(pub []byte) string {
	h, _ := blake2b.New(16, nil)
	h.Write(pub)

	return "0x" + systemAccountPrefix + hex.EncodeToString(h.Sum(nil)) + hex.EncodeToString(pub)
}

// DecodeFreeBalance reads data.free, a little endian u128, out of a SCALE
// encoded AccountInfo.
func DecodeFreeBalance(accountInfo []byte) (*big.Int, error) {
	if len(accountInfo) < freeBalanceOffset+16 {
		return nil, fmt.Errorf("account info too short: %d bytes", len(accountInfo))
	}

	le := accountInfo[freeBalanceOffset : freeBalanceOffset+16]
	be := make([]byte, len(le))
	for i := range le {
		be[len(le)-1-i] = le[i]
	}

	return new(big.Int).SetBytes(be), nil
}
