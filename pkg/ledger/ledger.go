// Package ledger connects to a ledger node and reads account balances in the
// node's smallest unit. Two backends are supported: substrate nodes, read
// through System.Account storage, and EVM nodes, read through eth_getBalance.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/rpc"
)

type Kind string

const (
	KindSubstrate Kind = "substrate"
	KindEVM       Kind = "evm"
)

func (k Kind) Valid() bool {
	return k == KindSubstrate || k == KindEVM
}

var (
	ErrConnection = errors.New("ledger connection failed")
	ErrQuery      = errors.New("ledger query failed")
)

//go:generate mockgen -source=ledger.go -destination=mocks/ledger_mock.go
type Client interface {
	QueryBalance(ctx context.Context, address string) (*big.Int, error)
	Close()
}

type Connector interface {
	Connect(ctx context.Context, nodeURL string) (Client, error)
}

type connector struct {
	kind Kind
}

func NewConnector(kind Kind) (Connector, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("[ledger] invalid ledger kind %q", kind)
	}

	return &connector{kind: kind}, nil
}

// Connect dials the node and probes it with a cheap call so that an
// unreachable node is reported here rather than on the first query.
func (c *connector) Connect(ctx context.Context, nodeURL string) (Client, error) {
	rc, err := rpc.DialContext(ctx, nodeURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	var client Client
	switch c.kind {
	case KindEVM:
		client = newEVMClient(rc)
	default:
		client = newSubstrateClient(rc)
	}

	if err := client.(prober).probe(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return client, nil
}

type prober interface {
	probe(ctx context.Context) error
}
