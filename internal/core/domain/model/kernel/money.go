package kernel

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places money is stored with.
const MoneyScale = 2

var (
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrAmountCoerced         = errors.New("stored amount coerced to 0.00")
	ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or MoneyFromPersisted")
)

// Money is a monetary amount with two-decimal precision.
//
// Rounding is half away from zero applied to the shortest decimal form of the
// input: 150.505 becomes 150.51 and 150.504 becomes 150.50.
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney validates and rounds a raw amount. The rounded amount must be
// strictly positive.
func NewMoney(raw float64) (Money, error) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return Money{}, fmt.Errorf("%w: %w", ErrInvalidAmount,
			errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is not a finite number", raw)))
	}

	amount := decimal.NewFromFloat(raw).Round(MoneyScale)
	if !amount.IsPositive() {
		return Money{}, fmt.Errorf("%w: %w", ErrInvalidAmount,
			errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is not greater than 0", raw)))
	}

	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromPersisted reads an amount coming back from storage.
//
// Unlike NewMoney it never fails outright: a value that cannot be parsed is
// replaced by 0.00 and returned together with an error wrapping
// ErrAmountCoerced. The caller decides whether to log and continue or to
// refuse the record.
func MoneyFromPersisted(raw string) (Money, error) {
	trimmed := strings.TrimSpace(raw)

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return zeroMoney(), fmt.Errorf("%w: %w", ErrAmountCoerced,
			errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q: %w", raw, err)))
	}

	return Money{amount: amount.Round(MoneyScale), guard: guard.NewConstructorGuard()}, nil
}

func zeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Decimal returns the exact rounded amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float, e.g. for JSON responses.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

// String always renders two decimals, e.g. "150.50".
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}
