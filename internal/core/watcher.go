package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moonpump/internal/ethereum"
	"moonpump/internal/repository"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

var errSubscriptionClosed = errors.New("subscription closed")

// TokenWatcher persists every token the factory creates, so tokens launched outside this
// application still show up in the registry.
type TokenWatcher struct {
	logs   *zap.SugaredLogger
	events TokenEvents
	store  TokenSaver
	policy func() backoff.BackOff
}

func NewTokenWatcher(logger *zap.SugaredLogger, events TokenEvents, store TokenSaver) *TokenWatcher {
	return &TokenWatcher{
		logs:   logger,
		events: events,
		store:  store,
		policy: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = time.Second
			b.MaxInterval = time.Minute
			b.MaxElapsedTime = 0
			return b
		},
	}
}

// WithBackOff replaces the resubscription policy.
func (w *TokenWatcher) WithBackOff(policy func() backoff.BackOff) *TokenWatcher {
	w.policy = policy
	return w
}

// Run subscribes until ctx is done, resubscribing with backoff whenever the subscription drops.
func (w *TokenWatcher) Run(ctx context.Context) error {
	events := make(chan ethereum.TokenCreated)
	go w.consume(ctx, events)

	b := backoff.WithContext(w.policy(), ctx)
	operation := func() error {
		w.logs.Infow("subscribing to TokenCreated events")
		err := w.events.WatchTokenCreated(ctx, events)
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		if err == nil {
			err = errSubscriptionClosed
		}
		w.logs.Warnw("TokenCreated subscription dropped", "error", err)
		return err
	}

	err := backoff.Retry(operation, b)
	if ctx.Err() != nil {
		w.logs.Infow("token watcher stopped")
		return nil
	}
	return fmt.Errorf("watch TokenCreated: %w", err)
}

func (w *TokenWatcher) consume(ctx context.Context, events <-chan ethereum.TokenCreated) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-events:
			w.handle(ctx, event)
		}
	}
}

func (w *TokenWatcher) handle(ctx context.Context, event ethereum.TokenCreated) {
	uri, err := w.events.TokenURIFromTx(ctx, event.TxHash)
	if err != nil {
		w.logs.Errorw("failed to recover token uri", "token", event.Token.Hex(), "tx", event.TxHash.Hex(), "error", err)
		return
	}

	err = w.store.SaveToken(ctx, repository.Token{
		Address:   event.Token.Hex(),
		Creator:   event.Creator.Hex(),
		TokenURI:  uri,
		TVL:       InitialTokenValue,
		MarketCap: InitialTokenValue,
		CreatedAt: TimeNow().UTC(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateToken) {
			w.logs.Debugw("token already registered", "token", event.Token.Hex())
			return
		}
		w.logs.Errorw("failed to save created token", "token", event.Token.Hex(), "error", err)
		return
	}

	w.logs.Infow("token registered from chain", "token", event.Token.Hex(), "creator", event.Creator.Hex(), "symbol", event.Symbol)
}
