package trade

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"moonpump/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

const DefaultSlippageBps = 500

// RelayFee is the native amount sent with every sell to pay the relayer (0.000125 ETH).
var RelayFee = big.NewInt(125_000_000_000_000)

// Executor runs trade attempts. Each account has at most one attempt in flight.
type Executor struct {
	logs     *zap.SugaredLogger
	balances BalanceSource
	permits  *PermitSigner
	contract TradeContract
	settler  Settler
	spender  common.Address
	observer Observer

	inflight sync.Map
}

func NewExecutor(
	logger *zap.SugaredLogger,
	balances BalanceSource,
	permits *PermitSigner,
	contract TradeContract,
	settler Settler,
	trader common.Address,
) *Executor {
	return &Executor{
		logs:     logger,
		balances: balances,
		permits:  permits,
		contract: contract,
		settler:  settler,
		spender:  trader,
	}
}

func (e *Executor) WithObserver(observer Observer) *Executor {
	e.observer = observer
	return e
}

func (e *Executor) Execute(ctx context.Context, wallet Wallet, req TradeRequest) (TradeResult, error) {
	account := wallet.Address()
	attempt := Attempt{
		Account: account,
		Token:   req.Token,
		Side:    req.Side,
		State:   StateIdle,
	}
	idle := TradeResult{State: StateIdle}

	if !req.Side.Valid() {
		return idle, fmt.Errorf("unknown trade side %q: %w", req.Side, ErrInvalidInput)
	}

	if _, busy := e.inflight.LoadOrStore(account, struct{}{}); busy {
		return idle, ErrTradeInProgress
	}
	defer e.inflight.Delete(account)

	balances := e.balances.Snapshot(ctx, req.Token, account)
	decimals := uint8(NativeDecimals)
	if req.Side == Sell {
		decimals = balances.Decimals
	}

	amount, err := ParseUnits(req.Amount, decimals)
	if err != nil {
		return idle, err
	}

	if err := checkLimit(req, amount, balances); err != nil {
		e.logs.Infow("trade rejected by limit",
			"account", account.Hex(),
			"token", req.Token.Hex(),
			"side", req.Side,
			"amount", req.Amount,
			"error", err)
		return idle, err
	}

	slippage := req.SlippageBps
	if slippage == nil {
		slippage = big.NewInt(DefaultSlippageBps)
	}

	e.transition(&attempt, StatePreparing, nil)

	var submit func() (common.Hash, error)
	switch req.Side {
	case Buy:
		submit = func() (common.Hash, error) {
			return e.contract.BuyToken(ctx, wallet, req.Token, amount, slippage)
		}
	case Sell:
		permit, err := e.permits.Generate(ctx, req.Token, e.spender, amount, account, wallet)
		if err != nil {
			var permitErr *PermitError
			if errors.As(err, &permitErr) && permitErr.Kind == PermitUserRejected {
				e.transition(&attempt, StateIdle, err)
				return idle, ErrUserRejected
			}
			e.transition(&attempt, StateFailed, err)
			return TradeResult{State: StateFailed}, err
		}

		order := ethereum.SellOrder{
			Token:       req.Token,
			Amount:      amount,
			SlippageBps: slippage,
			Deadline:    big.NewInt(permit.Deadline),
			V:           permit.V,
			R:           common.HexToHash(permit.R),
			S:           common.HexToHash(permit.S),
			RelayFee:    RelayFee,
		}
		submit = func() (common.Hash, error) {
			return e.contract.SellToken(ctx, wallet, order)
		}
	}

	e.transition(&attempt, StateAwaitingWalletConfirmation, nil)

	hash, err := submit()
	if err != nil {
		err = classifySubmitError(err)
		if errors.Is(err, ErrUserRejected) {
			e.transition(&attempt, StateIdle, err)
			return idle, err
		}
		e.transition(&attempt, StateFailed, err)
		return TradeResult{State: StateFailed}, err
	}

	attempt.TxHash = hash
	e.transition(&attempt, StateSubmitted, nil)

	receipt, err := e.contract.WaitReceipt(ctx, hash)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrTransactionFailed, err)
		e.transition(&attempt, StateFailed, err)
		return TradeResult{TxHash: hash, State: StateFailed}, err
	}

	e.transition(&attempt, StateConfirmed, nil)

	result := TradeResult{TxHash: hash, State: StateConfirmed}
	fill := Fill{
		Side:    req.Side,
		Token:   req.Token,
		Account: account,
		Amount:  FormatUnits(e.filledAmount(receipt, amount), decimals),
		TxHash:  hash,
	}

	settlement, err := e.settler.RecordTrade(ctx, fill)
	if err != nil {
		e.logs.Errorw("failed to settle confirmed trade",
			"tx", hash.Hex(),
			"account", account.Hex(),
			"error", err)
		result.SettlementErr = err
	}
	result.Settlement = settlement

	return result, nil
}

// filledAmount returns the input amount the trader contract reported in its
// TokenBought or TokenSold log, or requested when the receipt carries none.
func (e *Executor) filledAmount(receipt *types.Receipt, requested *big.Int) *big.Int {
	event, err := e.contract.TradeEventFromReceipt(receipt)
	if err != nil || event.AmountIn == nil {
		e.logs.Warnw("trade event not found in receipt, settling requested amount",
			"tx", receipt.TxHash.Hex(),
			"error", err)
		return requested
	}
	return event.AmountIn
}

func (e *Executor) transition(attempt *Attempt, state State, err error) {
	attempt.State = state
	attempt.Err = err

	if err != nil {
		e.logs.Warnw("trade state changed",
			"account", attempt.Account.Hex(),
			"token", attempt.Token.Hex(),
			"side", attempt.Side,
			"state", state,
			"error", err)
	} else {
		e.logs.Infow("trade state changed",
			"account", attempt.Account.Hex(),
			"token", attempt.Token.Hex(),
			"side", attempt.Side,
			"state", state,
			"tx", attempt.TxHash.Hex())
	}

	if e.observer != nil {
		e.observer.OnStateChange(*attempt)
	}
}

func checkLimit(req TradeRequest, amount *big.Int, balances Balances) error {
	switch req.Side {
	case Buy:
		if amount.Cmp(balances.MaxBuy()) > 0 {
			return &LimitError{
				Side:   Buy,
				Max:    FormatUnits(balances.SafeMaxBuy(), NativeDecimals),
				Places: 4,
				Unit:   "ETH",
			}
		}
	case Sell:
		if amount.Cmp(balances.MaxSell()) > 0 {
			unit := req.Symbol
			if unit == "" {
				unit = "tokens"
			}
			return &LimitError{
				Side:   Sell,
				Max:    FormatUnits(balances.MaxSell(), balances.Decimals),
				Places: 2,
				Unit:   unit,
			}
		}
	}
	return nil
}

func classifySubmitError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, ethereum.ErrUserRejected) || strings.Contains(msg, "user rejected"):
		return ErrUserRejected
	case strings.Contains(msg, "insufficient funds"):
		return fmt.Errorf("%w: %w", ErrInsufficientFunds, err)
	default:
		return fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}
}
