package ledger

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

type evmClient struct {
	cli *ethclient.Client
}

func newEVMClient(rc *rpc.Client) *evmClient {
	return &evmClient{cli: ethclient.NewClient(rc)}
}

func (c *evmClient) probe(ctx context.Context) error {
	_, err := c.cli.ChainID(ctx)
	return err
}

// QueryBalance returns the latest balance in wei.
func (c *evmClient) QueryBalance(ctx context.Context, address string) (*big.Int, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: invalid evm address %q", ErrQuery, address)
	}

	b, err := c.cli.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	return b, nil
}

func (c *evmClient) Close() {
	c.cli.Close()
}
