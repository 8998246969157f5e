package handler

import (
	"context"
	"math/big"
	"net/http"

	"moonpump/internal/core"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name MoonPumpService . MoonPumpService
type MoonPumpService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	CreateToken(ctx context.Context, session string, token core.NewToken) (core.TokenRecord, error)
	ListTokens(ctx context.Context) ([]core.TokenRecord, error)
	GetToken(ctx context.Context, address string) (core.TokenRecord, error)
	SaveTransaction(ctx context.Context, session string, tx core.NewTransaction) (core.TransactionRecord, error)
	ListTransactions(ctx context.Context, tokenAddress string, page int) (core.TransactionPage, error)
	Stats(ctx context.Context) (core.Stats, error)
}

//counterfeiter:generate -o fake -fake-name QuoteService . QuoteService
type QuoteService interface {
	GetQuote(ctx context.Context, tokenIn, tokenOut common.Address, amountIn string) (*big.Int, error)
}
