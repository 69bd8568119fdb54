package db_models

import (
	"math"
	"strings"

	"fundflow/pkg/utils"
)

// Money holds an amount in minor units (cents for USD). Every conversion
// from the major-unit amounts accepted at the API boundary goes through
// MoneyFromMajor, so there is exactly one rounding site in the codebase.
type Money struct {
	AmountMinor int64
	Currency    string
}

func MoneyFromMajor(amount float64, currency string) (Money, error) {
	minor, err := MinorUnits(amount)
	if err != nil {
		return Money{}, err
	}
	cur, err := NormalizeCurrency(currency)
	if err != nil {
		return Money{}, err
	}
	return Money{
		AmountMinor: minor,
		Currency:    cur,
	}, nil
}

// MinorUnits is the one rounding site. Callers that already know the
// currency from elsewhere (a refund against an existing intent) use it
// directly.
func MinorUnits(amount float64) (int64, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, utils.ErrInvalidAmount
	}
	return int64(math.Round(amount * 100)), nil
}

func MoneyFromMinor(amountMinor int64, currency string) (Money, error) {
	if amountMinor <= 0 {
		return Money{}, utils.ErrInvalidAmount
	}
	cur, err := NormalizeCurrency(currency)
	if err != nil {
		return Money{}, err
	}
	return Money{AmountMinor: amountMinor, Currency: cur}, nil
}

// Major converts back to major units for display only; persisted and
// transmitted amounts stay in minor units.
func (m Money) Major() float64 {
	return float64(m.AmountMinor) / 100
}

func NormalizeCurrency(currency string) (string, error) {
	cur := strings.ToLower(strings.TrimSpace(currency))
	if len(cur) != 3 {
		return "", utils.ErrInvalidCurrency
	}
	for _, r := range cur {
		if r < 'a' || r > 'z' {
			return "", utils.ErrInvalidCurrency
		}
	}
	return cur, nil
}
