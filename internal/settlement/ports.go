package settlement

import (
	"context"

	"moonpump/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TransactionStore . TransactionStore
type TransactionStore interface {
	SaveTransaction(ctx context.Context, tx repository.Transaction) error
}

//counterfeiter:generate -o fake -fake-name Prices . Prices
type Prices interface {
	NativePriceUSD(ctx context.Context) decimal.Decimal
	TokenPriceUSD(ctx context.Context, token common.Address) decimal.Decimal
}
