package settlement_test

import (
	"context"
	"errors"
	"math/big"
	"strings"

	"moonpump/internal/ethereum"
	"moonpump/internal/repository"
	"moonpump/internal/settlement"
	"moonpump/internal/settlement/fake"
	"moonpump/internal/trade"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("Recorder", func() {
	var (
		recorder   *settlement.Recorder
		fakeStore  *fake.TransactionStore
		fakePrices *fake.Prices
		ctx        context.Context
		token      common.Address
		account    common.Address
		hash       common.Hash
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeStore = new(fake.TransactionStore)
		fakePrices = new(fake.Prices)
		fakePrices.NativePriceUSDReturns(decimal.NewFromInt(4000))
		fakePrices.TokenPriceUSDReturns(decimal.RequireFromString("0.000006"))
		token = common.HexToAddress("0x1111111111111111111111111111111111111111")
		account = common.HexToAddress("0x2222222222222222222222222222222222222222")
		hash = common.HexToHash("0xabc")
		recorder = settlement.NewRecorder(zap.NewNop().Sugar(), fakeStore, fakePrices)
	})

	Describe("RecordTrade", func() {
		var (
			fill    trade.Fill
			outcome trade.Settlement
			err     error
		)

		BeforeEach(func() {
			fill = trade.Fill{
				Side:    trade.Buy,
				Token:   token,
				Account: account,
				Amount:  decimal.RequireFromString("1.5"),
				TxHash:  hash,
			}
		})

		JustBeforeEach(func() {
			outcome, err = recorder.RecordTrade(ctx, fill)
		})

		It("should value a buy with the native price", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.Persisted).To(BeTrue())
			Expect(outcome.ValueUSD.Equal(decimal.NewFromInt(6000))).To(BeTrue())

			_, saved := fakeStore.SaveTransactionArgsForCall(0)
			Expect(saved.Type).To(Equal(repository.TypeBuy))
			Expect(saved.TxHash).To(Equal(hash.Hex()))
			Expect(saved.Amount.Equal(decimal.RequireFromString("1.5"))).To(BeTrue())
			Expect(fakePrices.TokenPriceUSDCallCount()).To(Equal(0))
		})

		When("the fill is a sell", func() {
			BeforeEach(func() {
				fill.Side = trade.Sell
				fill.Amount = decimal.NewFromInt(100)
			})

			It("should value it with the token price", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(outcome.Type).To(Equal("SELL"))
				Expect(outcome.ValueUSD.Equal(decimal.RequireFromString("0.0006"))).To(BeTrue())
				_, priced := fakePrices.TokenPriceUSDArgsForCall(0)
				Expect(priced).To(Equal(token))
			})
		})

		When("the hash was already recorded", func() {
			BeforeEach(func() {
				fakeStore.SaveTransactionReturns(repository.ErrDuplicateTransaction)
			})

			It("should report the fill as settled", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(outcome.Persisted).To(BeTrue())
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeStore.SaveTransactionReturns(errors.New("connection reset"))
			})

			It("should return the failure signal", func() {
				Expect(err).To(MatchError(ContainSubstring("connection reset")))
				Expect(outcome.Persisted).To(BeFalse())
			})
		})
	})

	Describe("RecordFees", func() {
		It("should sum both fee legs priced independently", func() {
			event := ethereum.FeesCollected{
				Token:     token,
				Creator:   account,
				EthFees:   big.NewInt(5e17),
				TokenFees: new(big.Int).Mul(big.NewInt(1_000_000), big.NewInt(1e18)),
			}

			outcome, err := recorder.RecordFees(ctx, event, hash)
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.Type).To(Equal("REWARD"))
			// 0.5 * 4000 + 1_000_000 * 0.000006
			Expect(outcome.ValueUSD.Equal(decimal.NewFromInt(2006))).To(BeTrue())

			_, saved := fakeStore.SaveTransactionArgsForCall(0)
			Expect(saved.Amount.IsZero()).To(BeTrue())
			Expect(strings.EqualFold(saved.UserAddress, account.Hex())).To(BeTrue())
		})
	})
})
