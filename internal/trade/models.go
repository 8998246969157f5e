package trade

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

func (s Side) Valid() bool {
	return s == Buy || s == Sell
}

type State string

const (
	StateIdle                       State = "idle"
	StatePreparing                  State = "preparing"
	StateAwaitingWalletConfirmation State = "awaitingWalletConfirmation"
	StateSubmitted                  State = "submitted"
	StateConfirmed                  State = "confirmed"
	StateFailed                     State = "failed"
)

// Attempt is the observable state of one trade.
type Attempt struct {
	Account common.Address
	Token   common.Address
	Side    Side
	State   State
	TxHash  common.Hash
	Err     error
}

type TradeRequest struct {
	Side   Side
	Token  common.Address
	Amount string
	// Symbol is only used in limit messages for sells.
	Symbol      string
	SlippageBps *big.Int
}

// Fill is a confirmed trade handed to settlement. Amount is in human units
// of the asset the user spent, as reported by the trader contract.
type Fill struct {
	Side    Side
	Token   common.Address
	Account common.Address
	Amount  decimal.Decimal
	TxHash  common.Hash
}

// Settlement is the outcome of recording a fill or a fee collection.
type Settlement struct {
	Type      string
	ValueUSD  decimal.Decimal
	Persisted bool
}

type TradeResult struct {
	TxHash     common.Hash
	State      State
	Settlement Settlement
	// SettlementErr is set when the trade confirmed but could not be recorded.
	SettlementErr error
}

type PermitSignature struct {
	Deadline int64
	V        uint8
	R        string
	S        string
}

type LaunchRequest struct {
	Name        string
	Symbol      string
	Description string
	Website     string
	Twitter     string
	Telegram    string
	ImageName   string
	Image       []byte
	InitialBuy  string
}

type FeeResult struct {
	TxHash     common.Hash
	EthFees    *big.Int
	TokenFees  *big.Int
	Settlement Settlement
}
