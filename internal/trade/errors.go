package trade

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidInput error = errors.New("invalid input")
var ErrQuoteUnavailable error = errors.New("quote unavailable")
var ErrSimulationFailed error = errors.New("simulation failed")
var ErrUserRejected error = errors.New("transaction cancelled by user")
var ErrInsufficientFunds error = errors.New("insufficient funds for transaction")
var ErrTransactionFailed error = errors.New("transaction failed")
var ErrAmountExceedsLimit error = errors.New("amount exceeds limit")
var ErrTradeInProgress error = errors.New("a trade is already in progress for this account")
var ErrTokenNotFound error = errors.New("token not found - please check the address")

// LimitError reports a trade amount above the account's ceiling. Max is the
// buffered ceiling shown to the user.
type LimitError struct {
	Side   Side
	Max    decimal.Decimal
	Places int32
	Unit   string
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("maximum %s amount: %s %s", e.Side, e.Max.StringFixed(e.Places), e.Unit)
}

func (e *LimitError) Unwrap() error {
	return ErrAmountExceedsLimit
}

type PermitErrorKind int

const (
	PermitUnexpected PermitErrorKind = iota
	PermitInvalidToken
	PermitInvalidSignature
	PermitUserRejected
	PermitUnsupported
)

// PermitError is returned by PermitSigner.Generate. Message is meant to be shown as is.
type PermitError struct {
	Kind    PermitErrorKind
	Message string
	Err     error
}

func (e *PermitError) Error() string {
	return "permit generation failed: " + e.Message
}

func (e *PermitError) Unwrap() error {
	return e.Err
}
