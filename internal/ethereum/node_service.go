package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultPollInterval = 2 * time.Second

// Contracts are the deployed addresses the service talks to.
type Contracts struct {
	Factory common.Address
	Trader  common.Address
}

// EthService is the gateway to the factory, trader and ERC-20 contracts.
type EthService struct {
	logs         *zap.SugaredLogger
	client       EthClient
	contracts    Contracts
	pollInterval time.Duration
}

func NewEthService(logger *zap.SugaredLogger, ethClient EthClient, contracts Contracts) *EthService {
	return &EthService{
		logs:         logger,
		client:       ethClient,
		contracts:    contracts,
		pollInterval: defaultPollInterval,
	}
}

// WithPollInterval sets the initial delay between receipt lookups.
func (s *EthService) WithPollInterval(d time.Duration) *EthService {
	s.pollInterval = d
	return s
}

func (s *EthService) ChainID(ctx context.Context) (*big.Int, error) {
	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}
	return chainID, nil
}

// GetAmountOut asks the trader contract for a single-hop quote through eth_call.
func (s *EthService) GetAmountOut(ctx context.Context, tokenIn, tokenOut common.Address, amountIn *big.Int) (*big.Int, error) {
	out, err := s.call(ctx, TraderABI, s.contracts.Trader, common.Address{}, "getAmountOut", tokenIn, tokenOut, amountIn)
	if err != nil {
		return nil, err
	}
	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}

func (s *EthService) NativeBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	balance, err := s.client.BalanceAt(ctx, account, nil)
	if err != nil {
		return nil, fmt.Errorf("get native balance: %w", err)
	}
	return balance, nil
}

func (s *EthService) TokenBalance(ctx context.Context, token, account common.Address) (*big.Int, error) {
	out, err := s.call(ctx, ERC20ABI, token, common.Address{}, "balanceOf", account)
	if err != nil {
		return nil, err
	}
	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}

func (s *EthService) TokenDecimals(ctx context.Context, token common.Address) (uint8, error) {
	out, err := s.call(ctx, ERC20ABI, token, common.Address{}, "decimals")
	if err != nil {
		return 0, err
	}
	decimals, ok := out[0].(uint8)
	if !ok {
		return 0, fmt.Errorf("decimals: unexpected type %T", out[0])
	}
	return decimals, nil
}

func (s *EthService) TokenName(ctx context.Context, token common.Address) (string, error) {
	return s.callString(ctx, token, "name")
}

func (s *EthService) TokenSymbol(ctx context.Context, token common.Address) (string, error) {
	return s.callString(ctx, token, "symbol")
}

// PermitNonce reads the EIP-2612 nonce of owner on token.
func (s *EthService) PermitNonce(ctx context.Context, token, owner common.Address) (*big.Int, error) {
	out, err := s.call(ctx, ERC20ABI, token, common.Address{}, "nonces", owner)
	if err != nil {
		return nil, err
	}
	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}

func (s *EthService) BuyToken(ctx context.Context, signer TxSigner, token common.Address, value, slippageBps *big.Int) (common.Hash, error) {
	data, err := TraderABI.Pack("buyToken", token, slippageBps)
	if err != nil {
		return common.Hash{}, fmt.Errorf("pack buyToken: %w", err)
	}
	return s.transact(ctx, signer, s.contracts.Trader, value, data)
}

func (s *EthService) SellToken(ctx context.Context, signer TxSigner, order SellOrder) (common.Hash, error) {
	data, err := TraderABI.Pack("sellToken", order.Token, order.Amount, order.SlippageBps, order.Deadline, order.V, order.R, order.S)
	if err != nil {
		return common.Hash{}, fmt.Errorf("pack sellToken: %w", err)
	}
	return s.transact(ctx, signer, s.contracts.Trader, order.RelayFee, data)
}

// SimulateCollectFees dry-runs collectFees from the given account and reports a revert as *RevertError.
func (s *EthService) SimulateCollectFees(ctx context.Context, from, token common.Address) error {
	_, err := s.call(ctx, FactoryABI, s.contracts.Factory, from, "collectFees", token)
	return err
}

func (s *EthService) CollectFees(ctx context.Context, signer TxSigner, token common.Address) (common.Hash, error) {
	data, err := FactoryABI.Pack("collectFees", token)
	if err != nil {
		return common.Hash{}, fmt.Errorf("pack collectFees: %w", err)
	}
	return s.transact(ctx, signer, s.contracts.Factory, nil, data)
}

// CreateTokenAndPool launches a token; value is the creator's initial purchase.
func (s *EthService) CreateTokenAndPool(ctx context.Context, signer TxSigner, name, symbol, tokenURI string, value *big.Int) (common.Hash, error) {
	data, err := FactoryABI.Pack("createTokenAndPool", name, symbol, tokenURI)
	if err != nil {
		return common.Hash{}, fmt.Errorf("pack createTokenAndPool: %w", err)
	}
	return s.transact(ctx, signer, s.contracts.Factory, value, data)
}

// WaitReceipt polls for the receipt of hash until it is mined or ctx is done.
// A mined but unsuccessful transaction returns the receipt together with ErrTransactionReverted.
func (s *EthService) WaitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt

	operation := func() error {
		r, err := s.client.TransactionReceipt(ctx, hash)
		if err != nil {
			if !errors.Is(err, geth.NotFound) {
				s.logs.Warnw("receipt lookup failed, retrying", "hash", hash.Hex(), "error", err)
			}
			return err
		}
		receipt = r
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.pollInterval
	b.MaxInterval = 5 * s.pollInterval
	b.MaxElapsedTime = 0

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("wait for receipt %s: %w", hash.Hex(), err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("transaction %s: %w", hash.Hex(), ErrTransactionReverted)
	}
	return receipt, nil
}

func (s *EthService) FeesCollectedFromReceipt(receipt *types.Receipt) (FeesCollected, error) {
	for _, l := range receipt.Logs {
		if l.Address != s.contracts.Factory {
			continue
		}
		if event, err := decodeFeesCollected(*l); err == nil {
			return event, nil
		}
	}
	return FeesCollected{}, fmt.Errorf("FeesCollected: %w", ErrEventNotFound)
}

func (s *EthService) TokenCreatedFromReceipt(receipt *types.Receipt) (TokenCreated, error) {
	for _, l := range receipt.Logs {
		if l.Address != s.contracts.Factory {
			continue
		}
		if event, err := decodeTokenCreated(*l); err == nil {
			return event, nil
		}
	}
	return TokenCreated{}, fmt.Errorf("TokenCreated: %w", ErrEventNotFound)
}

func (s *EthService) TradeEventFromReceipt(receipt *types.Receipt) (TradeEvent, error) {
	for _, l := range receipt.Logs {
		if l.Address != s.contracts.Trader {
			continue
		}
		if event, err := decodeTradeEvent(*l); err == nil {
			return event, nil
		}
	}
	return TradeEvent{}, fmt.Errorf("TokenBought/TokenSold: %w", ErrEventNotFound)
}

// WatchTokenCreated streams TokenCreated events from the factory into sink.
// It returns when ctx is done or the subscription fails.
func (s *EthService) WatchTokenCreated(ctx context.Context, sink chan<- TokenCreated) error {
	query := geth.FilterQuery{
		Addresses: []common.Address{s.contracts.Factory},
		Topics:    [][]common.Hash{{FactoryABI.Events["TokenCreated"].ID}},
	}

	logs := make(chan types.Log)
	sub, err := s.client.SubscribeFilterLogs(ctx, query, logs)
	if err != nil {
		return fmt.Errorf("subscribe to TokenCreated logs: %w", err)
	}
	defer sub.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return fmt.Errorf("subscription error: %w", err)
		case vLog := <-logs:
			if vLog.Removed {
				continue
			}
			event, err := decodeTokenCreated(vLog)
			if err != nil {
				s.logs.Errorw("failed to decode TokenCreated log", "tx", vLog.TxHash.Hex(), "error", err)
				continue
			}
			select {
			case sink <- event:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// TokenURIFromTx recovers the tokenURI argument of the createTokenAndPool call in hash.
func (s *EthService) TokenURIFromTx(ctx context.Context, hash common.Hash) (string, error) {
	tx, _, err := s.client.TransactionByHash(ctx, hash)
	if err != nil {
		return "", fmt.Errorf("get transaction %s: %w", hash.Hex(), err)
	}

	data := tx.Data()
	if len(data) < 4 {
		return "", ErrUnexpectedCall
	}

	method, err := FactoryABI.MethodById(data[:4])
	if err != nil || method.Name != "createTokenAndPool" {
		return "", ErrUnexpectedCall
	}

	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return "", fmt.Errorf("unpack createTokenAndPool input: %w", err)
	}

	uri, ok := args[2].(string)
	if !ok {
		return "", fmt.Errorf("tokenURI: unexpected type %T", args[2])
	}
	return uri, nil
}

func (s *EthService) callString(ctx context.Context, token common.Address, method string) (string, error) {
	out, err := s.call(ctx, ERC20ABI, token, common.Address{}, method)
	if err != nil {
		return "", err
	}
	value, ok := out[0].(string)
	if !ok {
		return "", fmt.Errorf("%s: unexpected type %T", method, out[0])
	}
	return value, nil
}

func (s *EthService) call(ctx context.Context, contract abi.ABI, to, from common.Address, method string, args ...any) ([]any, error) {
	data, err := contract.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	msg := geth.CallMsg{From: from, To: &to, Data: data}
	raw, err := s.client.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, decodeRevert(err))
	}

	out, err := contract.Unpack(method, raw)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	return out, nil
}

func (s *EthService) transact(ctx context.Context, signer TxSigner, to common.Address, value *big.Int, data []byte) (common.Hash, error) {
	from := signer.Address()
	if value == nil {
		value = new(big.Int)
	}

	var (
		chainID *big.Int
		nonce   uint64
		tip     *big.Int
		head    *types.Header
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		chainID, err = s.client.ChainID(gctx)
		return err
	})
	g.Go(func() (err error) {
		nonce, err = s.client.PendingNonceAt(gctx, from)
		return err
	})
	g.Go(func() (err error) {
		tip, err = s.client.SuggestGasTipCap(gctx)
		return err
	})
	g.Go(func() (err error) {
		head, err = s.client.HeaderByNumber(gctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return common.Hash{}, fmt.Errorf("prepare transaction: %w", err)
	}

	feeCap := new(big.Int).Set(tip)
	if head.BaseFee != nil {
		feeCap.Add(feeCap, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
	}

	gas, err := s.client.EstimateGas(ctx, geth.CallMsg{
		From:      from,
		To:        &to,
		Value:     value,
		Data:      data,
		GasTipCap: tip,
		GasFeeCap: feeCap,
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("estimate gas: %w", decodeRevert(err))
	}

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gas * 6 / 5,
		To:        &to,
		Value:     value,
		Data:      data,
	})

	signed, err := signer.SignTx(ctx, tx, chainID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("sign transaction: %w", err)
	}

	if err := s.client.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("send transaction: %w", err)
	}

	s.logs.Infow("transaction sent",
		"hash", signed.Hash().Hex(),
		"from", from.Hex(),
		"to", to.Hex(),
		"nonce", nonce,
		"value", value.String())

	return signed.Hash(), nil
}

func decodeRevert(err error) error {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if hexData, ok := dataErr.ErrorData().(string); ok {
			if data, decErr := hexutil.Decode(hexData); decErr == nil {
				if reason, unpackErr := abi.UnpackRevert(data); unpackErr == nil {
					return &RevertError{Reason: reason, Err: err}
				}
			}
		}
	}

	msg := err.Error()
	if idx := strings.Index(msg, "execution reverted"); idx >= 0 {
		reason := strings.TrimSpace(strings.TrimPrefix(msg[idx+len("execution reverted"):], ":"))
		return &RevertError{Reason: reason, Err: err}
	}
	return err
}

func decodeFeesCollected(l types.Log) (FeesCollected, error) {
	event := FactoryABI.Events["FeesCollected"]
	if len(l.Topics) != 3 || l.Topics[0] != event.ID {
		return FeesCollected{}, ErrEventNotFound
	}

	values, err := FactoryABI.Unpack("FeesCollected", l.Data)
	if err != nil {
		return FeesCollected{}, fmt.Errorf("unpack FeesCollected: %w", err)
	}

	return FeesCollected{
		Token:     common.BytesToAddress(l.Topics[1].Bytes()),
		Creator:   common.BytesToAddress(l.Topics[2].Bytes()),
		EthFees:   abi.ConvertType(values[0], new(big.Int)).(*big.Int),
		TokenFees: abi.ConvertType(values[1], new(big.Int)).(*big.Int),
	}, nil
}

func decodeTokenCreated(l types.Log) (TokenCreated, error) {
	event := FactoryABI.Events["TokenCreated"]
	if len(l.Topics) != 4 || l.Topics[0] != event.ID {
		return TokenCreated{}, ErrEventNotFound
	}

	values, err := FactoryABI.Unpack("TokenCreated", l.Data)
	if err != nil {
		return TokenCreated{}, fmt.Errorf("unpack TokenCreated: %w", err)
	}

	name, _ := values[0].(string)
	symbol, _ := values[1].(string)

	return TokenCreated{
		Token:       common.BytesToAddress(l.Topics[1].Bytes()),
		Creator:     common.BytesToAddress(l.Topics[2].Bytes()),
		Name:        name,
		Symbol:      symbol,
		Pool:        common.BytesToAddress(l.Topics[3].Bytes()),
		PositionID:  abi.ConvertType(values[2], new(big.Int)).(*big.Int),
		TxHash:      l.TxHash,
		BlockNumber: l.BlockNumber,
	}, nil
}

func decodeTradeEvent(l types.Log) (TradeEvent, error) {
	if len(l.Topics) != 3 {
		return TradeEvent{}, ErrEventNotFound
	}

	var name string
	switch l.Topics[0] {
	case TraderABI.Events["TokenBought"].ID:
		name = "TokenBought"
	case TraderABI.Events["TokenSold"].ID:
		name = "TokenSold"
	default:
		return TradeEvent{}, ErrEventNotFound
	}

	values, err := TraderABI.Unpack(name, l.Data)
	if err != nil {
		return TradeEvent{}, fmt.Errorf("unpack %s: %w", name, err)
	}

	return TradeEvent{
		Buy:       name == "TokenBought",
		Token:     common.BytesToAddress(l.Topics[1].Bytes()),
		Trader:    common.BytesToAddress(l.Topics[2].Bytes()),
		AmountIn:  abi.ConvertType(values[0], new(big.Int)).(*big.Int),
		AmountOut: abi.ConvertType(values[1], new(big.Int)).(*big.Int),
	}, nil
}
