package settlement

import (
	"context"
	"errors"
	"fmt"

	"moonpump/internal/ethereum"
	"moonpump/internal/repository"
	"moonpump/internal/trade"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Recorder values confirmed trades and fee collections in USD and persists them.
// A transaction hash that is already stored counts as settled.
type Recorder struct {
	logs   *zap.SugaredLogger
	store  TransactionStore
	prices Prices
}

func NewRecorder(logger *zap.SugaredLogger, store TransactionStore, prices Prices) *Recorder {
	return &Recorder{
		logs:   logger,
		store:  store,
		prices: prices,
	}
}

func (r *Recorder) RecordTrade(ctx context.Context, fill trade.Fill) (trade.Settlement, error) {
	var (
		txType repository.TransactionType
		price  decimal.Decimal
	)

	switch fill.Side {
	case trade.Buy:
		txType = repository.TypeBuy
		price = r.prices.NativePriceUSD(ctx)
	case trade.Sell:
		txType = repository.TypeSell
		price = r.prices.TokenPriceUSD(ctx, fill.Token)
	default:
		return trade.Settlement{}, fmt.Errorf("unknown trade side %q", fill.Side)
	}

	return r.save(ctx, repository.Transaction{
		TokenAddress: fill.Token.Hex(),
		UserAddress:  fill.Account.Hex(),
		Type:         txType,
		Amount:       fill.Amount,
		ValueUSD:     fill.Amount.Mul(price),
		TxHash:       fill.TxHash.Hex(),
	})
}

// RecordFees stores a REWARD whose value is the sum of both fee legs, each priced on its own.
func (r *Recorder) RecordFees(ctx context.Context, event ethereum.FeesCollected, txHash common.Hash) (trade.Settlement, error) {
	ethValue := trade.FormatUnits(event.EthFees, trade.NativeDecimals).Mul(r.prices.NativePriceUSD(ctx))
	tokenValue := trade.FormatUnits(event.TokenFees, trade.NativeDecimals).Mul(r.prices.TokenPriceUSD(ctx, event.Token))

	return r.save(ctx, repository.Transaction{
		TokenAddress: event.Token.Hex(),
		UserAddress:  event.Creator.Hex(),
		Type:         repository.TypeReward,
		Amount:       decimal.Zero,
		ValueUSD:     ethValue.Add(tokenValue),
		TxHash:       txHash.Hex(),
	})
}

func (r *Recorder) save(ctx context.Context, tx repository.Transaction) (trade.Settlement, error) {
	outcome := trade.Settlement{
		Type:     string(tx.Type),
		ValueUSD: tx.ValueUSD,
	}

	err := r.store.SaveTransaction(ctx, tx)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateTransaction) {
			r.logs.Infow("transaction already settled", "tx", tx.TxHash, "type", tx.Type)
			outcome.Persisted = true
			return outcome, nil
		}
		return outcome, fmt.Errorf("record %s transaction: %w", tx.Type, err)
	}

	r.logs.Infow("transaction settled",
		"tx", tx.TxHash,
		"type", tx.Type,
		"token", tx.TokenAddress,
		"value_usd", tx.ValueUSD.String())

	outcome.Persisted = true
	return outcome, nil
}
