package market

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"moonpump/internal/httpclient"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrNoPrice error = errors.New("no price for token on configured chain")

type Pair struct {
	ChainID   string `json:"chainId"`
	BaseToken struct {
		Address string `json:"address"`
	} `json:"baseToken"`
	PriceUSD  decimal.Decimal `json:"priceUsd"`
	Liquidity *struct {
		USD decimal.Decimal `json:"usd"`
	} `json:"liquidity"`
	MarketCap decimal.Decimal `json:"marketCap"`
}

type pairsResponse struct {
	Pairs []Pair `json:"pairs"`
}

// Metrics are the aggregator's numbers for one token, zero when unknown.
type Metrics struct {
	TVL       decimal.Decimal
	MarketCap decimal.Decimal
}

// DexScreener queries the DexScreener tokens endpoint, which accepts up to 30
// comma separated addresses per call.
type DexScreener struct {
	logs    *zap.SugaredLogger
	http    *httpclient.Client
	baseURL string
	chain   string
}

func NewDexScreener(logger *zap.SugaredLogger, httpClient *httpclient.Client, baseURL, chain string) *DexScreener {
	return &DexScreener{
		logs:    logger,
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		chain:   chain,
	}
}

func (d *DexScreener) Pairs(ctx context.Context, addresses ...string) ([]Pair, error) {
	if len(addresses) == 0 {
		return nil, nil
	}

	var resp pairsResponse
	url := d.baseURL + "/" + strings.Join(addresses, ",")
	if err := d.http.GetJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("get pairs: %w", err)
	}
	return resp.Pairs, nil
}

// Metrics returns TVL and market cap keyed by lowercase base token address.
// Pairs on other chains are ignored; for several pairs of one token the last one wins.
func (d *DexScreener) Metrics(ctx context.Context, addresses []string) (map[string]Metrics, error) {
	pairs, err := d.Pairs(ctx, addresses...)
	if err != nil {
		return nil, err
	}

	metrics := make(map[string]Metrics, len(addresses))
	for _, pair := range pairs {
		if pair.ChainID != d.chain {
			continue
		}
		m := Metrics{MarketCap: pair.MarketCap}
		if pair.Liquidity != nil {
			m.TVL = pair.Liquidity.USD
		}
		metrics[strings.ToLower(pair.BaseToken.Address)] = m
	}
	return metrics, nil
}

// PriceUSD returns the USD price of the first pair on the configured chain.
func (d *DexScreener) PriceUSD(ctx context.Context, address string) (decimal.Decimal, error) {
	pairs, err := d.Pairs(ctx, address)
	if err != nil {
		return decimal.Zero, err
	}

	for _, pair := range pairs {
		if pair.ChainID == d.chain {
			return pair.PriceUSD, nil
		}
	}
	return decimal.Zero, fmt.Errorf("%s: %w", address, ErrNoPrice)
}
