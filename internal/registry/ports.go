package registry

import (
	"context"
	"time"

	"moonpump/internal/market"

	"github.com/shopspring/decimal"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenStore . TokenStore
type TokenStore interface {
	TokenAddresses(ctx context.Context) ([]string, error)
	UpdateTokenMetrics(ctx context.Context, address string, tvl, marketCap decimal.Decimal) error
}

//counterfeiter:generate -o fake -fake-name MetricsSource . MetricsSource
type MetricsSource interface {
	Metrics(ctx context.Context, addresses []string) (map[string]market.Metrics, error)
}

//counterfeiter:generate -o fake -fake-name Locker . Locker
type Locker interface {
	AcquireLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
}

//counterfeiter:generate -o fake -fake-name Runner . Runner
type Runner interface {
	RunOnce(ctx context.Context) (Report, error)
}
