package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidAmount parses raw as a decimal and checks that it is positive.
// The returned decimal keeps the full precision of the input.
func ValidAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w, given value %q", ErrInvalidAmount, raw)
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, fmt.Errorf("%w, given value %s", ErrInvalidAmount, raw)
	}

	return amount, nil
}

// ValidParties checks that a transfer involves two distinct users.
func ValidParties(fromUserID, toUserID int64) error {
	if fromUserID == toUserID {
		return fmt.Errorf("%w %d", ErrSameParty, toUserID)
	}

	return nil
}

// CheckBalance checks that subtracting amount from balance leaves it non-negative.
// Callers must re-check against the locked, freshly read balance because
// balances read before locking may be stale.
func CheckBalance(balance, amount decimal.Decimal) error {
	if balance.Sub(amount).IsNegative() {
		return fmt.Errorf("%w: balance %s, amount %s", ErrInsufficientFunds, balance, amount)
	}

	return nil
}
