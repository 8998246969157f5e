package trade

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// LiquidityProbe finds the largest input the pool will quote for a pair.
type LiquidityProbe interface {
	MaxQuotableInput(ctx context.Context, tokenIn, tokenOut common.Address) (*big.Int, error)
}

// TrialProbe tries decreasing trial inputs until one quotes, then falls back to a minimum.
type TrialProbe struct {
	quoter   Quoter
	trials   []*big.Int
	fallback *big.Int
}

func NewTrialProbe(quoter Quoter) *TrialProbe {
	return &TrialProbe{
		quoter:   quoter,
		trials:   []*big.Int{ether(1000), ether(100), ether(10)},
		fallback: ether(1),
	}
}

func (p *TrialProbe) MaxQuotableInput(ctx context.Context, tokenIn, tokenOut common.Address) (*big.Int, error) {
	for _, trial := range p.trials {
		if _, err := p.quoter.GetAmountOut(ctx, tokenIn, tokenOut, trial); err == nil {
			return new(big.Int).Set(trial), nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	return new(big.Int).Set(p.fallback), nil
}
