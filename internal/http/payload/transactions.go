package payload

import (
	"fmt"
	"strconv"

	"moonpump/internal/core"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	TokenAddress string          `json:"tokenAddress"`
	UserAddress  string          `json:"userAddress"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	ValueUSD     decimal.Decimal `json:"valueUsd"`
	TxHash       string          `json:"txHash"`
}

func (c *CreateTransactionRequest) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.TokenAddress, validation.Required, isAddress),
		validation.Field(&c.UserAddress, validation.Required, isAddress),
		validation.Field(&c.Type, validation.Required, validation.In("BUY", "SELL", "REWARD")),
		validation.Field(&c.Amount, notNegative),
		validation.Field(&c.ValueUSD, notNegative),
		validation.Field(&c.TxHash, validation.Required, validation.Match(txHashRegex)),
	)
}

func (c CreateTransactionRequest) ToNewTransaction() core.NewTransaction {
	return core.NewTransaction{
		TokenAddress: c.TokenAddress,
		UserAddress:  c.UserAddress,
		Type:         c.Type,
		Amount:       c.Amount,
		ValueUSD:     c.ValueUSD,
		TxHash:       c.TxHash,
	}
}

// MaxTransactionsPage bounds the page number so the row offset stays well inside int range.
const MaxTransactionsPage = 1_000_000

type TransactionsRequest struct {
	TokenAddress string
	Page         int
}

// NewTransactionsRequest reads tokenAddress and page from the query string. A missing page
// means the first one.
func NewTransactionsRequest(tokenAddress, page string) (TransactionsRequest, error) {
	req := TransactionsRequest{TokenAddress: tokenAddress, Page: 1}
	if page != "" {
		p, err := strconv.Atoi(page)
		if err != nil {
			return req, fmt.Errorf("page: %w", err)
		}
		req.Page = p
	}
	return req, nil
}

func (t TransactionsRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.TokenAddress, validation.Required, isAddress),
		validation.Field(&t.Page, validation.Min(1), validation.Max(MaxTransactionsPage)),
	)
}
