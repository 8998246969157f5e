package core

import (
	"fmt"
	"time"

	"moonpump/internal/metadata"

	"github.com/shopspring/decimal"
)

const (
	TransactionsPageSize = 10
	SessionDuration      = 24 * time.Hour
	// LoginMaxSkew bounds how far the signed issuedAt may be from the server clock.
	LoginMaxSkew = 10 * time.Minute
)

// InitialTokenValue seeds TVL and market cap of a freshly created token until the
// registry sync replaces it with aggregator data.
var InitialTokenValue = decimal.NewFromInt(6000)

type AuthMessage struct {
	Address   string `json:"address"`
	IssuedAt  int64  `json:"issuedAt"`
	Signature string `json:"signature"`
}

type NewToken struct {
	Address  string `json:"address"`
	Creator  string `json:"creator"`
	TokenURI string `json:"tokenURI"`
}

type TokenRecord struct {
	Address   string                  `json:"address"`
	Creator   string                  `json:"creator"`
	TokenURI  string                  `json:"tokenURI"`
	TVL       decimal.Decimal         `json:"tvl"`
	MarketCap decimal.Decimal         `json:"marketCap"`
	CreatedAt time.Time               `json:"createdAt"`
	Metadata  *metadata.TokenMetadata `json:"metadata"`
}

type NewTransaction struct {
	TokenAddress string          `json:"tokenAddress"`
	UserAddress  string          `json:"userAddress"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	ValueUSD     decimal.Decimal `json:"valueUsd"`
	TxHash       string          `json:"txHash"`
}

type TransactionRecord struct {
	TokenAddress string          `json:"tokenAddress"`
	UserAddress  string          `json:"userAddress"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	ValueUSD     decimal.Decimal `json:"valueUsd"`
	TxHash       string          `json:"txHash"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type TransactionPage struct {
	Transactions []TransactionRecord `json:"transactions"`
	Total        int64               `json:"total"`
	Page         int                 `json:"page"`
	TotalPages   int64               `json:"totalPages"`
}

type Stats struct {
	TotalMarketCap  decimal.Decimal `json:"totalMarketCap"`
	Tokens          int64           `json:"tokens"`
	TVL             decimal.Decimal `json:"tvl"`
	Volume24h       decimal.Decimal `json:"volume24h"`
	CreatorsRewards decimal.Decimal `json:"creatorsRewards"`
}

// LoginMessage is the text a wallet signs to open a session.
func LoginMessage(address string, issuedAt int64) string {
	return fmt.Sprintf("Sign in to Moon Pump\nAddress: %s\nIssued At: %d", address, issuedAt)
}
