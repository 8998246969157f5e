package market_test

import (
	"context"
	"errors"

	"moonpump/internal/cache"
	"moonpump/internal/market"
	"moonpump/internal/market/fake"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("PriceFeed", func() {
	var (
		feed       *market.PriceFeed
		fakeSource *fake.PriceSource
		fakeCache  *fake.PriceCache
		ctx        context.Context
		weth       common.Address
		token      common.Address
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeSource = new(fake.PriceSource)
		fakeCache = new(fake.PriceCache)
		fakeCache.GetPriceReturns(decimal.Zero, cache.ErrCacheMiss)
		weth = common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
		token = common.HexToAddress("0x1111111111111111111111111111111111111111")
		feed = market.NewPriceFeed(zap.NewNop().Sugar(), fakeSource, fakeCache, weth)
	})

	When("the aggregator answers", func() {
		BeforeEach(func() {
			fakeSource.PriceUSDReturns(decimal.NewFromInt(3500), nil)
		})

		It("should price ETH through WETH and cache the result", func() {
			price := feed.NativePriceUSD(ctx)
			Expect(price.Equal(decimal.NewFromInt(3500))).To(BeTrue())

			_, address := fakeSource.PriceUSDArgsForCall(0)
			Expect(address).To(Equal(weth.Hex()))
			Expect(fakeCache.SetPriceCallCount()).To(Equal(1))
			_, key, cached, ttl := fakeCache.SetPriceArgsForCall(0)
			Expect(key).To(Equal("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"))
			Expect(cached.Equal(decimal.NewFromInt(3500))).To(BeTrue())
			Expect(ttl).To(Equal(market.DefaultPriceTTL))
		})
	})

	When("the price is cached", func() {
		BeforeEach(func() {
			fakeCache.GetPriceReturns(decimal.RequireFromString("0.01"), nil)
		})

		It("should not call the aggregator", func() {
			price := feed.TokenPriceUSD(ctx, token)
			Expect(price.Equal(decimal.RequireFromString("0.01"))).To(BeTrue())
			Expect(fakeSource.PriceUSDCallCount()).To(Equal(0))
		})
	})

	When("the aggregator fails", func() {
		BeforeEach(func() {
			fakeSource.PriceUSDReturns(decimal.Zero, errors.New("timeout"))
		})

		It("should fall back to 4000 for ETH", func() {
			Expect(feed.NativePriceUSD(ctx).Equal(decimal.NewFromInt(4000))).To(BeTrue())
		})

		It("should fall back to 0.000006 for tokens", func() {
			Expect(feed.TokenPriceUSD(ctx, token).Equal(decimal.RequireFromString("0.000006"))).To(BeTrue())
			Expect(fakeCache.SetPriceCallCount()).To(Equal(0))
		})
	})

	When("no cache is configured", func() {
		BeforeEach(func() {
			feed = market.NewPriceFeed(zap.NewNop().Sugar(), fakeSource, nil, weth)
			fakeSource.PriceUSDReturns(decimal.NewFromInt(2), nil)
		})

		It("should go straight to the aggregator", func() {
			Expect(feed.TokenPriceUSD(ctx, token).Equal(decimal.NewFromInt(2))).To(BeTrue())
		})
	})
})
