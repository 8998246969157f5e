package market

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name PriceSource . PriceSource
type PriceSource interface {
	PriceUSD(ctx context.Context, address string) (decimal.Decimal, error)
}

//counterfeiter:generate -o fake -fake-name PriceCache . PriceCache
type PriceCache interface {
	GetPrice(ctx context.Context, key string) (decimal.Decimal, error)
	SetPrice(ctx context.Context, key string, price decimal.Decimal, ttl time.Duration) error
}
