package balance

import (
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Decimals is the number of smallest units (planck or wei) per main unit,
// as a power of ten.
const Decimals = 18

const displayPlaces = 4

func FromSmallestUnits(raw *big.Int) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(raw, -Decimals)
}

// TruncateAddress keeps the first and last four characters.
func TruncateAddress(address string) string {
	if len(address) <= 8 {
		return address
	}
	return address[:4] + "..." + address[len(address)-4:]
}

// FormatAmount rounds to four places and comma separates the integer part.
func FormatAmount(v decimal.Decimal) string {
	rounded := v.Round(displayPlaces)

	intPart, frac, _ := strings.Cut(rounded.Abs().StringFixed(displayPlaces), ".")
	n, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return rounded.StringFixed(displayPlaces)
	}

	out := humanize.BigComma(n) + "." + frac
	if rounded.Sign() < 0 {
		out = "-" + out
	}
	return out
}

// FormatDelta is FormatAmount with an explicit sign. Zero is positive.
func FormatDelta(delta decimal.Decimal) string {
	if delta.Sign() < 0 {
		return "-" + FormatAmount(delta.Abs())
	}
	return "+" + FormatAmount(delta)
}

// FormatStatus is the compact form used in the status line.
func FormatStatus(v decimal.Decimal) string {
	return v.StringFixed(displayPlaces)
}
