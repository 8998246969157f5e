package trade_test

import (
	"context"
	"errors"
	"math/big"

	"moonpump/internal/trade"
	"moonpump/internal/trade/fake"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Balances", func() {
	var (
		fakeQuoter *fake.Quoter
		fakeReader *fake.BalanceReader
		ctx        context.Context
		weth       common.Address
		token      common.Address
		account    common.Address
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeQuoter = new(fake.Quoter)
		fakeReader = new(fake.BalanceReader)
		weth = common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
		token = common.HexToAddress("0x1111111111111111111111111111111111111111")
		account = common.HexToAddress("0x2222222222222222222222222222222222222222")
	})

	Describe("TrialProbe", func() {
		var probe *trade.TrialProbe

		BeforeEach(func() {
			probe = trade.NewTrialProbe(fakeQuoter)
		})

		It("should return the first trial that quotes", func() {
			fakeQuoter.GetAmountOutReturnsOnCall(0, nil, errors.New("execution reverted"))
			fakeQuoter.GetAmountOutReturnsOnCall(1, big.NewInt(1), nil)

			ceiling, err := probe.MaxQuotableInput(ctx, weth, token)
			Expect(err).NotTo(HaveOccurred())
			Expect(ceiling).To(Equal(wei("100")))
			Expect(fakeQuoter.GetAmountOutCallCount()).To(Equal(2))
		})

		It("should fall back to one unit when every trial fails", func() {
			fakeQuoter.GetAmountOutReturns(nil, errors.New("execution reverted"))

			ceiling, err := probe.MaxQuotableInput(ctx, weth, token)
			Expect(err).NotTo(HaveOccurred())
			Expect(ceiling).To(Equal(wei("1")))
			Expect(fakeQuoter.GetAmountOutCallCount()).To(Equal(3))
			_, _, _, last := fakeQuoter.GetAmountOutArgsForCall(2)
			Expect(last).To(Equal(wei("10")))
		})
	})

	Describe("BalanceTracker", func() {
		var (
			tracker  *trade.BalanceTracker
			balances trade.Balances
		)

		BeforeEach(func() {
			fakeReader.NativeBalanceReturns(wei("2.01"), nil)
			fakeReader.TokenBalanceReturns(wei("200"), nil)
			fakeReader.TokenDecimalsReturns(18, nil)
			fakeQuoter.GetAmountOutReturns(big.NewInt(1), nil)
			tracker = trade.NewBalanceTracker(zap.NewNop().Sugar(), fakeReader, trade.NewTrialProbe(fakeQuoter), weth)
		})

		JustBeforeEach(func() {
			balances = tracker.Snapshot(ctx, token, account)
		})

		It("should derive the ceilings", func() {
			Expect(balances.MaxBuy()).To(Equal(wei("2.01")))
			Expect(balances.SafeMaxBuy()).To(Equal(wei("2")))
			Expect(balances.MaxSell()).To(Equal(wei("200")))
			Expect(balances.SafeMaxSell()).To(Equal(wei("199.8")))

			_, in, out, _ := fakeQuoter.GetAmountOutArgsForCall(0)
			Expect(in).To(Equal(weth))
			Expect(out).To(Equal(token))
		})

		When("liquidity is below the native balance", func() {
			BeforeEach(func() {
				fakeReader.NativeBalanceReturns(wei("5000"), nil)
			})

			It("should cap buys at the probed liquidity", func() {
				Expect(balances.MaxBuy()).To(Equal(wei("1000")))
			})
		})

		When("the balance is below the gas buffer", func() {
			BeforeEach(func() {
				fakeReader.NativeBalanceReturns(wei("0.005"), nil)
			})

			It("should floor the safe maximum at zero", func() {
				Expect(balances.SafeMaxBuy().Sign()).To(Equal(0))
			})
		})

		When("a read fails", func() {
			BeforeEach(func() {
				fakeReader.TokenDecimalsReturns(0, errors.New("not a token"))
			})

			It("should return the zero snapshot", func() {
				Expect(balances.Native.Sign()).To(Equal(0))
				Expect(balances.Token.Sign()).To(Equal(0))
				Expect(balances.MaxBuy().Sign()).To(Equal(0))
				Expect(balances.Decimals).To(Equal(uint8(18)))
			})
		})
	})
})
