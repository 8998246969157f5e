package trade

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const NativeDecimals = 18

// ParseUnits converts a positive human-readable amount to base units.
// Digits beyond the token's precision are truncated; an amount that truncates
// to zero is rejected.
func ParseUnits(amount string, decimals uint8) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", amount, ErrInvalidInput)
	}
	if !d.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", ErrInvalidInput)
	}
	units := d.Shift(int32(decimals)).Truncate(0).BigInt()
	if units.Sign() == 0 {
		return nil, fmt.Errorf("amount %q is below the smallest unit: %w", amount, ErrInvalidInput)
	}
	return units, nil
}

func FormatUnits(value *big.Int, decimals uint8) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(value, -int32(decimals))
}

func ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e18))
}
