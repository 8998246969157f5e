package trade_test

import (
	"context"
	"errors"
	"math/big"

	"moonpump/internal/ethereum"
	"moonpump/internal/trade"
	"moonpump/internal/trade/fake"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("FeeCollector", func() {
	var (
		collector    *trade.FeeCollector
		fakeContract *fake.FeeContract
		fakeSettler  *fake.Settler
		fakeWallet   *fake.Wallet
		ctx          context.Context
		tokenAddress string
		hash         common.Hash
		event        ethereum.FeesCollected
		result       trade.FeeResult
		err          error
	)

	BeforeEach(func() {
		ctx = context.Background()
		tokenAddress = "0x1111111111111111111111111111111111111111"
		hash = common.HexToHash("0xfee5")
		event = ethereum.FeesCollected{
			Token:     common.HexToAddress(tokenAddress),
			Creator:   common.HexToAddress("0x2222222222222222222222222222222222222222"),
			EthFees:   big.NewInt(1e16),
			TokenFees: big.NewInt(5e18),
		}

		fakeContract = new(fake.FeeContract)
		fakeContract.CollectFeesReturns(hash, nil)
		fakeContract.WaitReceiptReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
		fakeContract.FeesCollectedFromReceiptReturns(event, nil)

		fakeSettler = new(fake.Settler)
		fakeSettler.RecordFeesReturns(trade.Settlement{Type: "REWARD", ValueUSD: decimal.NewFromInt(40), Persisted: true}, nil)

		fakeWallet = new(fake.Wallet)
		fakeWallet.AddressReturns(event.Creator)

		collector = trade.NewFeeCollector(zap.NewNop().Sugar(), fakeContract, fakeSettler)
	})

	JustBeforeEach(func() {
		result, err = collector.Collect(ctx, fakeWallet, tokenAddress)
	})

	It("should simulate, submit and settle a REWARD", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(result.TxHash).To(Equal(hash))
		Expect(result.EthFees).To(Equal(big.NewInt(1e16)))
		Expect(result.Settlement.Type).To(Equal("REWARD"))

		_, from, token := fakeContract.SimulateCollectFeesArgsForCall(0)
		Expect(from).To(Equal(event.Creator))
		Expect(token).To(Equal(event.Token))

		_, settled, settledHash := fakeSettler.RecordFeesArgsForCall(0)
		Expect(settled).To(Equal(event))
		Expect(settledHash).To(Equal(hash))
	})

	DescribeTable("address validation",
		func(address string) {
			_, err := collector.Collect(ctx, fakeWallet, address)
			Expect(err).To(MatchError(trade.ErrInvalidInput))
		},
		Entry("empty", ""),
		Entry("missing prefix", "1111111111111111111111111111111111111111ab"),
		Entry("short", "0x1111"),
		Entry("not hex", "0xzz11111111111111111111111111111111111111"),
	)

	When("the simulation hits a nonexistent token", func() {
		BeforeEach(func() {
			fakeContract.SimulateCollectFeesReturns(&ethereum.RevertError{Reason: "ERC721: nonexistent token"})
		})

		It("should say the token was not found and not submit", func() {
			Expect(err).To(MatchError(trade.ErrTokenNotFound))
			Expect(err.Error()).To(Equal("token not found - please check the address"))
			Expect(fakeContract.CollectFeesCallCount()).To(Equal(0))
		})
	})

	When("the simulation reverts for another reason", func() {
		BeforeEach(func() {
			fakeContract.SimulateCollectFeesReturns(&ethereum.RevertError{Reason: "Only creator"})
		})

		It("should surface the reason", func() {
			Expect(err).To(MatchError(trade.ErrSimulationFailed))
			Expect(err.Error()).To(ContainSubstring("Only creator"))
		})
	})

	When("the receipt has no FeesCollected event", func() {
		BeforeEach(func() {
			fakeContract.FeesCollectedFromReceiptReturns(ethereum.FeesCollected{}, ethereum.ErrEventNotFound)
		})

		It("should fail without settling", func() {
			Expect(err).To(MatchError(ethereum.ErrEventNotFound))
			Expect(fakeSettler.RecordFeesCallCount()).To(Equal(0))
		})
	})

	When("settlement fails", func() {
		BeforeEach(func() {
			fakeSettler.RecordFeesReturns(trade.Settlement{Type: "REWARD"}, errors.New("db down"))
		})

		It("should still return the collected fees", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Settlement.Persisted).To(BeFalse())
		})
	})
})
