package trade_test

import (
	"context"
	"errors"
	"math/big"
	"sync"

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

type stateRecorder struct {
	mu     sync.Mutex
	states []trade.State
}

func (r *stateRecorder) OnStateChange(attempt trade.Attempt) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, attempt.State)
}

func (r *stateRecorder) Recorded() []trade.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]trade.State{}, r.states...)
}

var _ = Describe("Executor", func() {
	var (
		executor     *trade.Executor
		fakeBalances *fake.BalanceSource
		fakeReader   *fake.PermitReader
		fakeContract *fake.TradeContract
		fakeSettler  *fake.Settler
		fakeWallet   *fake.Wallet
		recorder     *stateRecorder
		ctx          context.Context
		token        common.Address
		account      common.Address
		trader       common.Address
		hash         common.Hash
		req          trade.TradeRequest
		result       trade.TradeResult
		err          error
	)

	BeforeEach(func() {
		ctx = context.Background()
		token = common.HexToAddress("0x1111111111111111111111111111111111111111")
		account = common.HexToAddress("0x2222222222222222222222222222222222222222")
		trader = common.HexToAddress("0x00000000000000000000000000000000000000ab")
		hash = common.HexToHash("0xfeed")

		fakeBalances = new(fake.BalanceSource)
		fakeBalances.SnapshotReturns(trade.Balances{
			Native:    wei("2.01"),
			Token:     wei("250"),
			Decimals:  18,
			Liquidity: wei("1000"),
		})

		fakeReader = new(fake.PermitReader)
		fakeReader.TokenNameReturns("Moon", nil)
		fakeReader.PermitNonceReturns(big.NewInt(0), nil)
		fakeReader.ChainIDReturns(big.NewInt(1), nil)

		fakeWallet = new(fake.Wallet)
		fakeWallet.AddressReturns(account)
		sig := make([]byte, 65)
		sig[64] = 27
		fakeWallet.SignTypedDataReturns(sig, nil)

		fakeContract = new(fake.TradeContract)
		fakeContract.BuyTokenReturns(hash, nil)
		fakeContract.SellTokenReturns(hash, nil)
		fakeContract.WaitReceiptReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

		fakeSettler = new(fake.Settler)
		fakeSettler.RecordTradeReturns(trade.Settlement{Type: "BUY", ValueUSD: decimal.NewFromInt(6000), Persisted: true}, nil)

		recorder = &stateRecorder{}
		permits := trade.NewPermitSigner(zap.NewNop().Sugar(), fakeReader)
		executor = trade.NewExecutor(zap.NewNop().Sugar(), fakeBalances, permits, fakeContract, fakeSettler, trader).
			WithObserver(recorder)

		req = trade.TradeRequest{Side: trade.Buy, Token: token, Amount: "1.5"}
	})

	JustBeforeEach(func() {
		result, err = executor.Execute(ctx, fakeWallet, req)
	})

	When("buying within the ceiling", func() {
		It("should submit, confirm and settle", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.State).To(Equal(trade.StateConfirmed))
			Expect(result.TxHash).To(Equal(hash))
			Expect(result.Settlement.Persisted).To(BeTrue())

			_, signer, boughtToken, value, slippage := fakeContract.BuyTokenArgsForCall(0)
			Expect(signer).To(Equal(fakeWallet))
			Expect(boughtToken).To(Equal(token))
			Expect(value).To(Equal(wei("1.5")))
			Expect(slippage).To(Equal(big.NewInt(500)))

			_, fill := fakeSettler.RecordTradeArgsForCall(0)
			Expect(fill.Side).To(Equal(trade.Buy))
			Expect(fill.Account).To(Equal(account))
			Expect(fill.Amount.Equal(decimal.RequireFromString("1.5"))).To(BeTrue())
			Expect(fill.TxHash).To(Equal(hash))

			Expect(recorder.Recorded()).To(Equal([]trade.State{
				trade.StatePreparing,
				trade.StateAwaitingWalletConfirmation,
				trade.StateSubmitted,
				trade.StateConfirmed,
			}))
			Expect(fakeWallet.SignTypedDataCallCount()).To(Equal(0))
		})
	})

	When("the receipt carries a TokenBought log", func() {
		var receipt *types.Receipt

		BeforeEach(func() {
			receipt = &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: hash}
			fakeContract.WaitReceiptReturns(receipt, nil)
			fakeContract.TradeEventFromReceiptReturns(ethereum.TradeEvent{
				Buy:       true,
				Token:     token,
				Trader:    account,
				AmountIn:  wei("1.4"),
				AmountOut: wei("23000"),
			}, nil)
		})

		It("should settle the amount the contract reported", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeContract.TradeEventFromReceiptArgsForCall(0)).To(Equal(receipt))

			_, fill := fakeSettler.RecordTradeArgsForCall(0)
			Expect(fill.Amount.Equal(decimal.RequireFromString("1.4"))).To(BeTrue())
		})
	})

	When("the receipt has no trade log", func() {
		BeforeEach(func() {
			fakeContract.TradeEventFromReceiptReturns(ethereum.TradeEvent{}, ethereum.ErrEventNotFound)
		})

		It("should settle the requested amount", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeContract.TradeEventFromReceiptCallCount()).To(Equal(1))

			_, fill := fakeSettler.RecordTradeArgsForCall(0)
			Expect(fill.Amount.Equal(decimal.RequireFromString("1.5"))).To(BeTrue())
		})
	})

	When("buying above the ceiling", func() {
		BeforeEach(func() {
			req.Amount = "2.5"
		})

		It("should stay idle and state the buffered ceiling", func() {
			Expect(err).To(MatchError(trade.ErrAmountExceedsLimit))
			Expect(err.Error()).To(Equal("maximum buy amount: 2.0000 ETH"))

			var limitErr *trade.LimitError
			Expect(errors.As(err, &limitErr)).To(BeTrue())
			Expect(limitErr.Max.Equal(decimal.NewFromInt(2))).To(BeTrue())

			Expect(result.State).To(Equal(trade.StateIdle))
			Expect(recorder.Recorded()).To(BeEmpty())
			Expect(fakeContract.BuyTokenCallCount()).To(Equal(0))
			Expect(fakeWallet.SignTxCallCount()).To(Equal(0))
			Expect(fakeWallet.SignTypedDataCallCount()).To(Equal(0))
		})
	})

	When("selling", func() {
		BeforeEach(func() {
			req = trade.TradeRequest{Side: trade.Sell, Token: token, Amount: "100", Symbol: "MOON"}
			fakeSettler.RecordTradeReturns(trade.Settlement{Type: "SELL", Persisted: true}, nil)
		})

		It("should sign a permit for the exact amount and send the relay fee", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.State).To(Equal(trade.StateConfirmed))

			expected := new(big.Int).Mul(big.NewInt(100), big.NewInt(1e18))
			_, typedData := fakeWallet.SignTypedDataArgsForCall(0)
			Expect(typedData.Message["value"]).To(Equal(expected))
			Expect(typedData.Message["spender"]).To(Equal(trader.Hex()))

			_, _, order := fakeContract.SellTokenArgsForCall(0)
			Expect(order.Amount).To(Equal(expected))
			Expect(order.RelayFee).To(Equal(big.NewInt(125_000_000_000_000)))
			Expect(order.V).To(Equal(uint8(27)))
			Expect(order.SlippageBps).To(Equal(big.NewInt(500)))
		})

		When("the holder rejects the permit", func() {
			BeforeEach(func() {
				fakeWallet.SignTypedDataReturns(nil, ethereum.ErrUserRejected)
			})

			It("should return to idle with a cancellation message", func() {
				Expect(err).To(MatchError(trade.ErrUserRejected))
				Expect(err.Error()).To(Equal("transaction cancelled by user"))
				Expect(result.State).To(Equal(trade.StateIdle))
				Expect(fakeContract.SellTokenCallCount()).To(Equal(0))

				states := recorder.Recorded()
				Expect(states[len(states)-1]).To(Equal(trade.StateIdle))
			})
		})

		When("the token does not support permit", func() {
			BeforeEach(func() {
				fakeWallet.SignTypedDataReturns(nil, errors.New("contract does not support EIP-2612"))
			})

			It("should fail with the permit error", func() {
				var permitErr *trade.PermitError
				Expect(errors.As(err, &permitErr)).To(BeTrue())
				Expect(permitErr.Kind).To(Equal(trade.PermitUnsupported))
				Expect(result.State).To(Equal(trade.StateFailed))
			})
		})

		When("selling more than the balance", func() {
			BeforeEach(func() {
				req.Amount = "300"
			})

			It("should name the token balance", func() {
				Expect(err).To(MatchError("maximum sell amount: 250.00 MOON"))
				Expect(fakeWallet.SignTypedDataCallCount()).To(Equal(0))
			})
		})
	})

	When("the wallet reports insufficient funds", func() {
		BeforeEach(func() {
			fakeContract.BuyTokenReturns(common.Hash{}, errors.New("estimate gas: insufficient funds for gas * price + value"))
		})

		It("should fail with ErrInsufficientFunds", func() {
			Expect(err).To(MatchError(trade.ErrInsufficientFunds))
			Expect(result.State).To(Equal(trade.StateFailed))
			Expect(fakeSettler.RecordTradeCallCount()).To(Equal(0))
		})
	})

	When("the holder declines the transaction", func() {
		BeforeEach(func() {
			fakeContract.BuyTokenReturns(common.Hash{}, ethereum.ErrUserRejected)
		})

		It("should return to idle", func() {
			Expect(err).To(MatchError(trade.ErrUserRejected))
			Expect(result.State).To(Equal(trade.StateIdle))
		})
	})

	When("the transaction reverts", func() {
		BeforeEach(func() {
			fakeContract.WaitReceiptReturns(&types.Receipt{Status: types.ReceiptStatusFailed}, ethereum.ErrTransactionReverted)
		})

		It("should fail without settling", func() {
			Expect(err).To(MatchError(trade.ErrTransactionFailed))
			Expect(err).To(MatchError(ethereum.ErrTransactionReverted))
			Expect(result.State).To(Equal(trade.StateFailed))
			Expect(result.TxHash).To(Equal(hash))
			Expect(fakeSettler.RecordTradeCallCount()).To(Equal(0))
		})
	})

	When("settlement fails", func() {
		BeforeEach(func() {
			fakeSettler.RecordTradeReturns(trade.Settlement{Type: "BUY"}, errors.New("db down"))
		})

		It("should still report the trade as confirmed", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.State).To(Equal(trade.StateConfirmed))
			Expect(result.SettlementErr).To(MatchError("db down"))
			Expect(result.Settlement.Persisted).To(BeFalse())
		})
	})

	When("the amount is below one wei", func() {
		BeforeEach(func() {
			req.Amount = "0.0000000000000000001"
		})

		It("should reject it without submitting", func() {
			Expect(err).To(MatchError(trade.ErrInvalidInput))
			Expect(result.State).To(Equal(trade.StateIdle))
			Expect(fakeContract.BuyTokenCallCount()).To(Equal(0))
		})
	})

	When("the side is unknown", func() {
		BeforeEach(func() {
			req.Side = "swap"
		})

		It("should reject the request", func() {
			Expect(err).To(MatchError(trade.ErrInvalidInput))
			Expect(fakeBalances.SnapshotCallCount()).To(Equal(0))
		})
	})
})

var _ = Describe("Executor single flight", func() {
	It("should refuse a second attempt for an account with one in flight", func() {
		account := common.HexToAddress("0x2222222222222222222222222222222222222222")
		token := common.HexToAddress("0x1111111111111111111111111111111111111111")

		fakeBalances := new(fake.BalanceSource)
		fakeBalances.SnapshotReturns(trade.Balances{
			Native:    wei("10"),
			Token:     new(big.Int),
			Decimals:  18,
			Liquidity: wei("1000"),
		})

		release := make(chan struct{})
		fakeContract := new(fake.TradeContract)
		fakeContract.BuyTokenReturns(common.HexToHash("0x01"), nil)
		fakeContract.WaitReceiptStub = func(ctx context.Context, _ common.Hash) (*types.Receipt, error) {
			<-release
			return &types.Receipt{Status: types.ReceiptStatusSuccessful}, nil
		}

		fakeWallet := new(fake.Wallet)
		fakeWallet.AddressReturns(account)

		executor := trade.NewExecutor(zap.NewNop().Sugar(), fakeBalances, nil, fakeContract, new(fake.Settler), common.Address{})
		req := trade.TradeRequest{Side: trade.Buy, Token: token, Amount: "1"}

		done := make(chan error, 1)
		go func() {
			_, err := executor.Execute(context.Background(), fakeWallet, req)
			done <- err
		}()
		Eventually(fakeContract.WaitReceiptCallCount).Should(Equal(1))

		_, err := executor.Execute(context.Background(), fakeWallet, req)
		Expect(err).To(MatchError(trade.ErrTradeInProgress))
		Expect(fakeContract.BuyTokenCallCount()).To(Equal(1))

		other := new(fake.Wallet)
		other.AddressReturns(common.HexToAddress("0x3333333333333333333333333333333333333333"))
		close(release)
		Eventually(done).Should(Receive(BeNil()))

		_, err = executor.Execute(context.Background(), other, req)
		Expect(err).NotTo(HaveOccurred())
		_, err = executor.Execute(context.Background(), fakeWallet, req)
		Expect(err).NotTo(HaveOccurred())
	})
})
