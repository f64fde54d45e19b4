package balance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Entry struct {
	Balance   decimal.Decimal `json:"balance"`
	Known     bool            `json:"known"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BalanceChanged is produced only when a previous balance was known and the
// new one differs from it.
type BalanceChanged struct {
	Address  string
	Previous decimal.Decimal
	Current  decimal.Decimal
	Delta    decimal.Decimal
}

func NewBalanceChanged(address string, previous, current decimal.Decimal) BalanceChanged {
	return BalanceChanged{
		Address:  address,
		Previous: previous,
		Current:  current,
		Delta:    current.Sub(previous),
	}
}

func (e BalanceChanged) Message(symbol string) string {
	return fmt.Sprintf("Balance change detected for %s:\nChange: %s %s\nNew balance: %s %s",
		TruncateAddress(e.Address),
		FormatDelta(e.Delta), symbol,
		FormatAmount(e.Current), symbol,
	)
}
