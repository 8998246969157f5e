package registry

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"moonpump/internal/market"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	DefaultBatchSize = 30
	DefaultPause     = 500 * time.Millisecond

	placeholderTVLBound       = 100_000
	placeholderMarketCapBound = 1_000_000
)

type Options struct {
	BatchSize int
	Pause     time.Duration
	// Placeholders fills tokens the aggregator knows nothing about with random figures.
	Placeholders bool
}

// Report summarizes one sync run.
type Report struct {
	Tokens       int
	Updated      int
	Placeholders int
	Skipped      int
	Failed       int
}

// Syncer refreshes cached TVL and market cap of every known token from the aggregator.
type Syncer struct {
	logs    *zap.SugaredLogger
	store   TokenStore
	source  MetricsSource
	options Options
	intN    func(n int) int
}

func NewSyncer(logger *zap.SugaredLogger, store TokenStore, source MetricsSource, options Options) *Syncer {
	if options.BatchSize <= 0 {
		options.BatchSize = DefaultBatchSize
	}
	return &Syncer{
		logs:    logger,
		store:   store,
		source:  source,
		options: options,
		intN:    rand.IntN,
	}
}

// RunOnce walks all tokens in batches. A failed lookup or update only affects its own
// token; the run fails only when the token list cannot be loaded or ctx is done.
func (s *Syncer) RunOnce(ctx context.Context) (Report, error) {
	addresses, err := s.store.TokenAddresses(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("load token addresses: %w", err)
	}

	report := Report{Tokens: len(addresses)}
	size := s.options.BatchSize

	for start := 0; start < len(addresses); start += size {
		end := min(start+size, len(addresses))
		batch := addresses[start:end]

		metrics, err := s.source.Metrics(ctx, batch)
		if err != nil {
			s.logs.Errorw("failed to fetch market data", "batch", start/size+1, "error", err)
		}

		for _, address := range batch {
			s.syncToken(ctx, address, metrics, &report)
		}

		s.logs.Infow("batch updated", "batch", start/size+1, "tokens", len(batch))

		if end < len(addresses) {
			select {
			case <-ctx.Done():
				return report, ctx.Err()
			case <-time.After(s.options.Pause):
			}
		}
	}

	s.logs.Infow("registry sync completed",
		"tokens", report.Tokens,
		"updated", report.Updated,
		"placeholders", report.Placeholders,
		"skipped", report.Skipped,
		"failed", report.Failed)

	return report, nil
}

func (s *Syncer) syncToken(ctx context.Context, address string, metrics map[string]market.Metrics, report *Report) {
	data := metrics[strings.ToLower(address)]

	if data.TVL.IsZero() && data.MarketCap.IsZero() {
		if !s.options.Placeholders {
			report.Skipped++
			return
		}
		data = market.Metrics{
			TVL:       decimal.NewFromInt(int64(s.intN(placeholderTVLBound))),
			MarketCap: decimal.NewFromInt(int64(s.intN(placeholderMarketCapBound))),
		}
		report.Placeholders++
	}

	if err := s.store.UpdateTokenMetrics(ctx, address, data.TVL, data.MarketCap); err != nil {
		s.logs.Errorw("failed to update token metrics", "token", address, "error", err)
		report.Failed++
		return
	}

	s.logs.Debugw("token metrics updated",
		"token", address,
		"tvl", data.TVL.String(),
		"market_cap", data.MarketCap.String())
	report.Updated++
}
