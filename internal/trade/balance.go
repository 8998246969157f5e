package trade

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var gasBuffer = new(big.Int).Div(ether(1), big.NewInt(100))

const sellBufferDivisor = 1000

// Balances is a point-in-time view of what an account can trade for one token.
type Balances struct {
	Native    *big.Int
	Token     *big.Int
	Decimals  uint8
	Liquidity *big.Int
}

func zeroBalances() Balances {
	return Balances{
		Native:    new(big.Int),
		Token:     new(big.Int),
		Decimals:  NativeDecimals,
		Liquidity: new(big.Int),
	}
}

// MaxBuy is the smaller of the native balance and the probed liquidity ceiling.
func (b Balances) MaxBuy() *big.Int {
	if b.Native.Cmp(b.Liquidity) < 0 {
		return new(big.Int).Set(b.Native)
	}
	return new(big.Int).Set(b.Liquidity)
}

func (b Balances) MaxSell() *big.Int {
	return new(big.Int).Set(b.Token)
}

// SafeMaxBuy leaves room for gas below MaxBuy.
func (b Balances) SafeMaxBuy() *big.Int {
	return subFloor(b.MaxBuy(), gasBuffer)
}

// SafeMaxSell keeps back a thousandth of the balance for rounding.
func (b Balances) SafeMaxSell() *big.Int {
	ceiling := b.MaxSell()
	return subFloor(ceiling, new(big.Int).Div(ceiling, big.NewInt(sellBufferDivisor)))
}

func subFloor(a, b *big.Int) *big.Int {
	if a.Cmp(b) <= 0 {
		return new(big.Int)
	}
	return new(big.Int).Sub(a, b)
}

type BalanceTracker struct {
	logs   *zap.SugaredLogger
	reader BalanceReader
	probe  LiquidityProbe
	weth   common.Address
}

func NewBalanceTracker(logger *zap.SugaredLogger, reader BalanceReader, probe LiquidityProbe, weth common.Address) *BalanceTracker {
	return &BalanceTracker{
		logs:   logger,
		reader: reader,
		probe:  probe,
		weth:   weth,
	}
}

// Snapshot reads balances, decimals and the liquidity ceiling for account.
// Any failed read yields the zero snapshot instead of an error.
func (t *BalanceTracker) Snapshot(ctx context.Context, token, account common.Address) Balances {
	var (
		native    *big.Int
		balance   *big.Int
		decimals  uint8
		liquidity *big.Int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		native, err = t.reader.NativeBalance(gctx, account)
		return err
	})
	g.Go(func() (err error) {
		decimals, err = t.reader.TokenDecimals(gctx, token)
		return err
	})
	g.Go(func() (err error) {
		balance, err = t.reader.TokenBalance(gctx, token, account)
		return err
	})
	g.Go(func() (err error) {
		liquidity, err = t.probe.MaxQuotableInput(gctx, t.weth, token)
		return err
	})

	if err := g.Wait(); err != nil {
		t.logs.Errorw("failed to read balances",
			"token", token.Hex(),
			"account", account.Hex(),
			"error", err)
		return zeroBalances()
	}

	return Balances{
		Native:    native,
		Token:     balance,
		Decimals:  decimals,
		Liquidity: liquidity,
	}
}
