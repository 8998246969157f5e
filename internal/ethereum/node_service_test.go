package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"moonpump/internal/ethereum"
	"moonpump/internal/ethereum/fake"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type fakeSubscription struct {
	errs         chan error
	unsubscribed bool
}

func (s *fakeSubscription) Err() <-chan error { return s.errs }
func (s *fakeSubscription) Unsubscribe()      { s.unsubscribed = true }

var _ = Describe("EthService", func() {
	var (
		service    *ethereum.EthService
		fakeClient *fake.EthClient
		ctx        context.Context
		contracts  ethereum.Contracts
		token      common.Address
		creator    common.Address
		testErr    error
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		ctx = context.Background()
		testErr = errors.New("test error")
		contracts = ethereum.Contracts{
			Factory: common.HexToAddress("0x00000000000000000000000000000000000000fa"),
			Trader:  common.HexToAddress("0x00000000000000000000000000000000000000ab"),
		}
		token = common.HexToAddress("0x1111111111111111111111111111111111111111")
		creator = common.HexToAddress("0x2222222222222222222222222222222222222222")
		service = ethereum.NewEthService(zap.NewNop().Sugar(), fakeClient, contracts).
			WithPollInterval(time.Millisecond)
	})

	Describe("GetAmountOut", func() {
		var (
			amount *big.Int
			err    error
		)

		JustBeforeEach(func() {
			amount, err = service.GetAmountOut(ctx, common.Address{}, token, big.NewInt(1e18))
		})

		When("the trader contract answers", func() {
			BeforeEach(func() {
				out, packErr := ethereum.TraderABI.Methods["getAmountOut"].Outputs.Pack(big.NewInt(42_000))
				Expect(packErr).NotTo(HaveOccurred())
				fakeClient.CallContractReturns(out, nil)
			})

			It("should return the decoded amount", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(amount).To(Equal(big.NewInt(42_000)))
			})

			It("should call the trader contract", func() {
				_, msg, _ := fakeClient.CallContractArgsForCall(0)
				Expect(*msg.To).To(Equal(contracts.Trader))
				method, methodErr := ethereum.TraderABI.MethodById(msg.Data[:4])
				Expect(methodErr).NotTo(HaveOccurred())
				Expect(method.Name).To(Equal("getAmountOut"))
			})
		})

		When("the call reverts", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(nil, errors.New("execution reverted: ERC721: nonexistent token"))
			})

			It("should surface the revert reason", func() {
				var revertErr *ethereum.RevertError
				Expect(errors.As(err, &revertErr)).To(BeTrue())
				Expect(revertErr.Reason).To(Equal("ERC721: nonexistent token"))
				Expect(amount).To(BeNil())
			})
		})

		When("the node fails", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(nil, testErr)
			})

			It("should return the wrapped error", func() {
				Expect(err).To(MatchError(testErr))
				var revertErr *ethereum.RevertError
				Expect(errors.As(err, &revertErr)).To(BeFalse())
			})
		})
	})

	Describe("TokenDecimals", func() {
		It("should decode uint8 decimals", func() {
			out, err := ethereum.ERC20ABI.Methods["decimals"].Outputs.Pack(uint8(18))
			Expect(err).NotTo(HaveOccurred())
			fakeClient.CallContractReturns(out, nil)

			decimals, err := service.TokenDecimals(ctx, token)
			Expect(err).NotTo(HaveOccurred())
			Expect(decimals).To(Equal(uint8(18)))
		})
	})

	Describe("BuyToken", func() {
		var (
			wallet  *ethereum.KeyWallet
			hash    common.Hash
			err     error
			chainID *big.Int
		)

		BeforeEach(func() {
			key, keyErr := crypto.GenerateKey()
			Expect(keyErr).NotTo(HaveOccurred())
			wallet, err = ethereum.NewKeyWallet(common.Bytes2Hex(crypto.FromECDSA(key)), nil)
			Expect(err).NotTo(HaveOccurred())

			chainID = big.NewInt(1)
			fakeClient.ChainIDReturns(chainID, nil)
			fakeClient.PendingNonceAtReturns(3, nil)
			fakeClient.SuggestGasTipCapReturns(big.NewInt(1_000_000_000), nil)
			fakeClient.HeaderByNumberReturns(&types.Header{BaseFee: big.NewInt(10_000_000_000)}, nil)
			fakeClient.EstimateGasReturns(100_000, nil)
		})

		JustBeforeEach(func() {
			hash, err = service.BuyToken(ctx, wallet, token, big.NewInt(5e17), big.NewInt(500))
		})

		It("should send a signed dynamic fee transaction", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeClient.SendTransactionCallCount()).To(Equal(1))

			_, tx := fakeClient.SendTransactionArgsForCall(0)
			Expect(hash).To(Equal(tx.Hash()))
			Expect(*tx.To()).To(Equal(contracts.Trader))
			Expect(tx.Value()).To(Equal(big.NewInt(5e17)))
			Expect(tx.Nonce()).To(Equal(uint64(3)))
			Expect(tx.Gas()).To(Equal(uint64(120_000)))
			Expect(tx.GasFeeCap()).To(Equal(big.NewInt(21_000_000_000)))

			sender, senderErr := types.Sender(types.LatestSignerForChainID(chainID), tx)
			Expect(senderErr).NotTo(HaveOccurred())
			Expect(sender).To(Equal(wallet.Address()))

			method, methodErr := ethereum.TraderABI.MethodById(tx.Data()[:4])
			Expect(methodErr).NotTo(HaveOccurred())
			Expect(method.Name).To(Equal("buyToken"))
		})

		When("gas estimation reports insufficient funds", func() {
			BeforeEach(func() {
				fakeClient.EstimateGasReturns(0, errors.New("insufficient funds for gas * price + value"))
			})

			It("should not send anything", func() {
				Expect(err).To(MatchError(ContainSubstring("insufficient funds")))
				Expect(fakeClient.SendTransactionCallCount()).To(Equal(0))
			})
		})

		When("the nonce cannot be read", func() {
			BeforeEach(func() {
				fakeClient.PendingNonceAtReturns(0, testErr)
			})

			It("should fail before estimating gas", func() {
				Expect(err).To(MatchError(testErr))
				Expect(fakeClient.EstimateGasCallCount()).To(Equal(0))
			})
		})
	})

	Describe("WaitReceipt", func() {
		var (
			receipt *types.Receipt
			err     error
			hash    common.Hash
		)

		BeforeEach(func() {
			hash = common.HexToHash("0xbeef")
		})

		JustBeforeEach(func() {
			receipt, err = service.WaitReceipt(ctx, hash)
		})

		When("the transaction is mined after a few polls", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturnsOnCall(0, nil, geth.NotFound)
				fakeClient.TransactionReceiptReturnsOnCall(1, nil, geth.NotFound)
				fakeClient.TransactionReceiptReturnsOnCall(2, &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: hash}, nil)
			})

			It("should return the receipt", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(receipt.TxHash).To(Equal(hash))
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(3))
			})
		})

		When("the transaction reverted", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusFailed}, nil)
			})

			It("should report the revert", func() {
				Expect(err).To(MatchError(ethereum.ErrTransactionReverted))
				Expect(receipt).NotTo(BeNil())
			})
		})

		When("the context is cancelled while waiting", func() {
			BeforeEach(func() {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, 20*time.Millisecond)
				DeferCleanup(cancel)
				fakeClient.TransactionReceiptReturns(nil, geth.NotFound)
			})

			It("should stop polling", func() {
				Expect(err).To(HaveOccurred())
				Expect(receipt).To(BeNil())
			})
		})
	})

	Describe("FeesCollectedFromReceipt", func() {
		var receipt *types.Receipt

		BeforeEach(func() {
			event := ethereum.FactoryABI.Events["FeesCollected"]
			data, err := event.Inputs.NonIndexed().Pack(big.NewInt(2e18), big.NewInt(3e18))
			Expect(err).NotTo(HaveOccurred())

			receipt = &types.Receipt{Logs: []*types.Log{
				{Address: contracts.Trader, Topics: []common.Hash{event.ID}},
				{
					Address: contracts.Factory,
					Topics:  []common.Hash{event.ID, common.BytesToHash(token.Bytes()), common.BytesToHash(creator.Bytes())},
					Data:    data,
				},
			}}
		})

		It("should decode the factory log", func() {
			event, err := service.FeesCollectedFromReceipt(receipt)
			Expect(err).NotTo(HaveOccurred())
			Expect(event.Token).To(Equal(token))
			Expect(event.Creator).To(Equal(creator))
			Expect(event.EthFees).To(Equal(big.NewInt(2e18)))
			Expect(event.TokenFees).To(Equal(big.NewInt(3e18)))
		})

		It("should report a receipt without the event", func() {
			_, err := service.FeesCollectedFromReceipt(&types.Receipt{})
			Expect(err).To(MatchError(ethereum.ErrEventNotFound))
		})
	})

	Describe("TradeEventFromReceipt", func() {
		It("should decode a TokenSold log", func() {
			event := ethereum.TraderABI.Events["TokenSold"]
			data, err := event.Inputs.NonIndexed().Pack(big.NewInt(1000), big.NewInt(7))
			Expect(err).NotTo(HaveOccurred())

			receipt := &types.Receipt{Logs: []*types.Log{{
				Address: contracts.Trader,
				Topics:  []common.Hash{event.ID, common.BytesToHash(token.Bytes()), common.BytesToHash(creator.Bytes())},
				Data:    data,
			}}}

			trade, err := service.TradeEventFromReceipt(receipt)
			Expect(err).NotTo(HaveOccurred())
			Expect(trade.Buy).To(BeFalse())
			Expect(trade.Trader).To(Equal(creator))
			Expect(trade.AmountIn).To(Equal(big.NewInt(1000)))
			Expect(trade.AmountOut).To(Equal(big.NewInt(7)))
		})
	})

	Describe("TokenURIFromTx", func() {
		It("should recover the tokenURI argument", func() {
			data, err := ethereum.FactoryABI.Pack("createTokenAndPool", "Moon", "MOON", "ipfs://meta")
			Expect(err).NotTo(HaveOccurred())
			fakeClient.TransactionByHashReturns(types.NewTx(&types.DynamicFeeTx{Data: data}), false, nil)

			uri, err := service.TokenURIFromTx(ctx, common.HexToHash("0x01"))
			Expect(err).NotTo(HaveOccurred())
			Expect(uri).To(Equal("ipfs://meta"))
		})

		It("should reject other calls", func() {
			data, err := ethereum.FactoryABI.Pack("collectFees", token)
			Expect(err).NotTo(HaveOccurred())
			fakeClient.TransactionByHashReturns(types.NewTx(&types.DynamicFeeTx{Data: data}), false, nil)

			_, err = service.TokenURIFromTx(ctx, common.HexToHash("0x01"))
			Expect(err).To(MatchError(ethereum.ErrUnexpectedCall))
		})
	})

	Describe("WatchTokenCreated", func() {
		var (
			sub  *fakeSubscription
			logs chan<- types.Log
			sink chan ethereum.TokenCreated
			done chan error
		)

		BeforeEach(func() {
			sub = &fakeSubscription{errs: make(chan error, 1)}
			sink = make(chan ethereum.TokenCreated, 1)
			done = make(chan error, 1)
			ready := make(chan struct{})
			fakeClient.SubscribeFilterLogsStub = func(_ context.Context, _ geth.FilterQuery, ch chan<- types.Log) (geth.Subscription, error) {
				logs = ch
				close(ready)
				return sub, nil
			}

			go func() {
				done <- service.WatchTokenCreated(ctx, sink)
			}()
			Eventually(ready).Should(BeClosed())
		})

		It("should forward decoded events until the subscription fails", func() {
			event := ethereum.FactoryABI.Events["TokenCreated"]
			pool := common.HexToAddress("0x3333333333333333333333333333333333333333")
			data, err := event.Inputs.NonIndexed().Pack("Moon", "MOON", big.NewInt(9))
			Expect(err).NotTo(HaveOccurred())

			logs <- types.Log{
				Address: contracts.Factory,
				Topics: []common.Hash{
					event.ID,
					common.BytesToHash(token.Bytes()),
					common.BytesToHash(creator.Bytes()),
					common.BytesToHash(pool.Bytes()),
				},
				Data:   data,
				TxHash: common.HexToHash("0xfeed"),
			}

			var created ethereum.TokenCreated
			Eventually(sink).Should(Receive(&created))
			Expect(created.Token).To(Equal(token))
			Expect(created.Pool).To(Equal(pool))
			Expect(created.Symbol).To(Equal("MOON"))
			Expect(created.TxHash).To(Equal(common.HexToHash("0xfeed")))

			sub.errs <- testErr
			Eventually(done).Should(Receive(MatchError(testErr)))
			Expect(sub.unsubscribed).To(BeTrue())
		})
	})
})
