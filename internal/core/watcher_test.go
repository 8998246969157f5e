package core_test

import (
	"context"
	"errors"
	"time"

	"moonpump/internal/core"
	"moonpump/internal/core/fake"
	"moonpump/internal/ethereum"
	"moonpump/internal/repository"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("TokenWatcher", func() {
	var (
		watcher    *core.TokenWatcher
		fakeEvents *fake.TokenEvents
		fakeStore  *fake.TokenSaver
		ctx        context.Context
		cancel     context.CancelFunc
		runErr     chan error
		event      ethereum.TokenCreated
	)

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())
		fakeEvents = new(fake.TokenEvents)
		fakeStore = new(fake.TokenSaver)
		runErr = make(chan error, 1)

		event = ethereum.TokenCreated{
			Token:   common.HexToAddress("0x1111"),
			Creator: common.HexToAddress("0x2222"),
			Symbol:  "MOON",
			TxHash:  common.HexToHash("0xabc"),
		}
		fakeEvents.TokenURIFromTxReturns("ipfs://meta", nil)

		// First subscription delivers one event and drops, later ones block until shutdown.
		fakeEvents.WatchTokenCreatedStub = func(ctx context.Context, sink chan<- ethereum.TokenCreated) error {
			if fakeEvents.WatchTokenCreatedCallCount() == 1 {
				sink <- event
				return errors.New("websocket closed")
			}
			<-ctx.Done()
			return ctx.Err()
		}
	})

	JustBeforeEach(func() {
		watcher = core.NewTokenWatcher(zap.NewNop().Sugar(), fakeEvents, fakeStore).
			WithBackOff(func() backoff.BackOff { return backoff.NewConstantBackOff(time.Millisecond) })
		w, c, errs := watcher, ctx, runErr
		go func() {
			errs <- w.Run(c)
		}()
	})

	AfterEach(func() {
		cancel()
	})

	It("should persist created tokens with the uri from the creating transaction", func() {
		Eventually(fakeStore.SaveTokenCallCount).Should(Equal(1))

		_, hash := fakeEvents.TokenURIFromTxArgsForCall(0)
		Expect(hash).To(Equal(event.TxHash))

		_, token := fakeStore.SaveTokenArgsForCall(0)
		Expect(token.Address).To(Equal(event.Token.Hex()))
		Expect(token.Creator).To(Equal(event.Creator.Hex()))
		Expect(token.TokenURI).To(Equal("ipfs://meta"))
		Expect(token.TVL.Equal(core.InitialTokenValue)).To(BeTrue())
	})

	It("should resubscribe after the subscription drops", func() {
		Eventually(fakeEvents.WatchTokenCreatedCallCount).Should(Equal(2))
	})

	It("should return nil on shutdown", func() {
		Eventually(fakeEvents.WatchTokenCreatedCallCount).Should(Equal(2))
		cancel()
		Eventually(runErr).Should(Receive(BeNil()))
	})

	When("the token uri cannot be recovered", func() {
		BeforeEach(func() {
			fakeEvents.TokenURIFromTxReturns("", ethereum.ErrUnexpectedCall)
		})

		It("should skip the event", func() {
			Eventually(fakeEvents.WatchTokenCreatedCallCount).Should(Equal(2))
			Consistently(fakeStore.SaveTokenCallCount, 50*time.Millisecond).Should(Equal(0))
		})
	})

	When("the token is already registered", func() {
		BeforeEach(func() {
			fakeStore.SaveTokenReturns(repository.ErrDuplicateToken)
		})

		It("should keep watching", func() {
			Eventually(fakeStore.SaveTokenCallCount).Should(Equal(1))
			Eventually(fakeEvents.WatchTokenCreatedCallCount).Should(Equal(2))
			Consistently(runErr, 50*time.Millisecond).ShouldNot(Receive())
		})
	})
})
