package ethereum

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

var ErrUserRejected error = errors.New("user rejected the request")
var ErrTransactionReverted error = errors.New("transaction reverted")
var ErrEventNotFound error = errors.New("event not found in receipt")
var ErrUnexpectedCall error = errors.New("transaction does not call createTokenAndPool")

// RevertError carries the reason a contract call reverted, when the node returned one.
type RevertError struct {
	Reason string
	Err    error
}

func (e *RevertError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("execution reverted: %v", e.Err)
	}
	return fmt.Sprintf("execution reverted: %s", e.Reason)
}

func (e *RevertError) Unwrap() error {
	return e.Err
}

type FeesCollected struct {
	Token     common.Address
	Creator   common.Address
	EthFees   *big.Int
	TokenFees *big.Int
}

type TokenCreated struct {
	Token       common.Address
	Creator     common.Address
	Name        string
	Symbol      string
	Pool        common.Address
	PositionID  *big.Int
	TxHash      common.Hash
	BlockNumber uint64
}

// TradeEvent is a decoded TokenBought or TokenSold log.
type TradeEvent struct {
	Buy       bool
	Token     common.Address
	Trader    common.Address
	AmountIn  *big.Int
	AmountOut *big.Int
}

// SellOrder holds the sellToken arguments, permit included.
type SellOrder struct {
	Token       common.Address
	Amount      *big.Int
	SlippageBps *big.Int
	Deadline    *big.Int
	V           uint8
	R           [32]byte
	S           [32]byte
	RelayFee    *big.Int
}
