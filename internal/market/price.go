package market

import (
	"context"
	"errors"
	"strings"
	"time"

	"moonpump/internal/cache"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const DefaultPriceTTL = time.Minute

var (
	FallbackNativePrice = decimal.NewFromInt(4000)
	FallbackTokenPrice  = decimal.RequireFromString("0.000006")
)

// PriceFeed resolves USD prices for settlement. It never fails: every lookup
// falls back to a fixed constant so settlement is not blocked by the aggregator.
type PriceFeed struct {
	logs   *zap.SugaredLogger
	source PriceSource
	cache  PriceCache
	weth   common.Address
	ttl    time.Duration
}

// NewPriceFeed builds a feed. cache may be nil.
func NewPriceFeed(logger *zap.SugaredLogger, source PriceSource, cache PriceCache, weth common.Address) *PriceFeed {
	return &PriceFeed{
		logs:   logger,
		source: source,
		cache:  cache,
		weth:   weth,
		ttl:    DefaultPriceTTL,
	}
}

// NativePriceUSD prices ETH through its wrapped token.
func (f *PriceFeed) NativePriceUSD(ctx context.Context) decimal.Decimal {
	return f.price(ctx, f.weth.Hex(), FallbackNativePrice)
}

func (f *PriceFeed) TokenPriceUSD(ctx context.Context, token common.Address) decimal.Decimal {
	return f.price(ctx, token.Hex(), FallbackTokenPrice)
}

func (f *PriceFeed) price(ctx context.Context, address string, fallback decimal.Decimal) decimal.Decimal {
	key := strings.ToLower(address)

	if f.cache != nil {
		price, err := f.cache.GetPrice(ctx, key)
		if err == nil {
			return price
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			f.logs.Warnw("price cache read failed", "token", key, "error", err)
		}
	}

	price, err := f.source.PriceUSD(ctx, address)
	if err != nil || !price.IsPositive() {
		f.logs.Warnw("failed to fetch price, using fallback",
			"token", key,
			"fallback", fallback.String(),
			"error", err)
		return fallback
	}

	if f.cache != nil {
		if err := f.cache.SetPrice(ctx, key, price, f.ttl); err != nil {
			f.logs.Warnw("price cache write failed", "token", key, "error", err)
		}
	}
	return price
}
