package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound is returned when the virtual account does not exist.
	ErrAccountNotFound = errors.New("virtual account not found")

	// ErrAccountNotActive is returned when the account's status forbids the
	// requested mutation.
	ErrAccountNotActive = errors.New("virtual account is not active")

	// ErrInvalidAmount is returned for zero or negative amounts.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
)

// ErrInsufficientFunds carries the available and required amounts so the
// caller can render a precise user-facing message.
type ErrInsufficientFunds struct {
	Available decimal.Decimal
	Required  decimal.Decimal
}

func (e ErrInsufficientFunds) Error() string {
	return fmt.Sprintf("insufficient funds: available=%s, required=%s", e.Available.String(), e.Required.String())
}
