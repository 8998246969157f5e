package trade

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

const DefaultDebounce = 500 * time.Millisecond

type QuoteGateway struct {
	logs   *zap.SugaredLogger
	quoter Quoter
}

func NewQuoteGateway(logger *zap.SugaredLogger, quoter Quoter) *QuoteGateway {
	return &QuoteGateway{
		logs:   logger,
		quoter: quoter,
	}
}

// GetQuote converts amountIn with 18 decimals and asks the trader contract for
// the output amount. The returned amount is never nil: on failure it is zero and
// the error wraps ErrQuoteUnavailable.
func (g *QuoteGateway) GetQuote(ctx context.Context, tokenIn, tokenOut common.Address, amountIn string) (*big.Int, error) {
	amountWei, err := ParseUnits(amountIn, NativeDecimals)
	if err != nil {
		return new(big.Int), err
	}

	amountOut, err := g.quoter.GetAmountOut(ctx, tokenIn, tokenOut, amountWei)
	if err != nil || amountOut == nil {
		g.logs.Warnw("quote failed",
			"token_in", tokenIn.Hex(),
			"token_out", tokenOut.Hex(),
			"amount_in", amountIn,
			"error", err)
		return new(big.Int), fmt.Errorf("get amount out: %w", ErrQuoteUnavailable)
	}
	return amountOut, nil
}

type QuoteResult struct {
	AmountIn  string
	AmountOut *big.Int
	Err       error
}

// Debouncer coalesces bursts of quote requests: only the last request issued
// inside the window reaches the gateway.
type Debouncer struct {
	gateway *QuoteGateway
	window  time.Duration
	results chan QuoteResult

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

func NewDebouncer(gateway *QuoteGateway, window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultDebounce
	}
	return &Debouncer{
		gateway: gateway,
		window:  window,
		results: make(chan QuoteResult, 1),
	}
}

func (d *Debouncer) Results() <-chan QuoteResult {
	return d.results
}

func (d *Debouncer) Request(ctx context.Context, tokenIn, tokenOut common.Address, amountIn string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	id := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.window, func() {
		amountOut, err := d.gateway.GetQuote(ctx, tokenIn, tokenOut, amountIn)

		d.mu.Lock()
		stale := id != d.seq
		d.mu.Unlock()
		if stale {
			return
		}

		select {
		case d.results <- QuoteResult{AmountIn: amountIn, AmountOut: amountOut, Err: err}:
		case <-ctx.Done():
		}
	})
}

// Stop cancels a pending request.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
}
