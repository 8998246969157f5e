package trade

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"moonpump/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// FeeCollector claims accumulated creator fees for a token and settles them as a REWARD.
type FeeCollector struct {
	logs     *zap.SugaredLogger
	contract FeeContract
	settler  Settler
}

func NewFeeCollector(logger *zap.SugaredLogger, contract FeeContract, settler Settler) *FeeCollector {
	return &FeeCollector{
		logs:     logger,
		contract: contract,
		settler:  settler,
	}
}

func (c *FeeCollector) Collect(ctx context.Context, wallet Wallet, tokenAddress string) (FeeResult, error) {
	if tokenAddress == "" {
		return FeeResult{}, fmt.Errorf("token address is required: %w", ErrInvalidInput)
	}
	if !strings.HasPrefix(tokenAddress, "0x") || len(tokenAddress) != 42 || !common.IsHexAddress(tokenAddress) {
		return FeeResult{}, fmt.Errorf("invalid token address format: %w", ErrInvalidInput)
	}
	token := common.HexToAddress(tokenAddress)

	if err := c.contract.SimulateCollectFees(ctx, wallet.Address(), token); err != nil {
		return FeeResult{}, simulationError(err)
	}

	hash, err := c.contract.CollectFees(ctx, wallet, token)
	if err != nil {
		return FeeResult{}, classifySubmitError(err)
	}
	c.logs.Infow("collect fees transaction sent", "token", token.Hex(), "tx", hash.Hex())

	receipt, err := c.contract.WaitReceipt(ctx, hash)
	if err != nil {
		return FeeResult{TxHash: hash}, fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}

	event, err := c.contract.FeesCollectedFromReceipt(receipt)
	if err != nil {
		return FeeResult{TxHash: hash}, fmt.Errorf("decode fees collected: %w", err)
	}

	result := FeeResult{
		TxHash:    hash,
		EthFees:   event.EthFees,
		TokenFees: event.TokenFees,
	}

	settlement, err := c.settler.RecordFees(ctx, event, hash)
	if err != nil {
		c.logs.Errorw("failed to settle collected fees", "tx", hash.Hex(), "error", err)
	}
	result.Settlement = settlement

	return result, nil
}

func simulationError(err error) error {
	if strings.Contains(err.Error(), "nonexistent") {
		return ErrTokenNotFound
	}
	var revertErr *ethereum.RevertError
	if errors.As(err, &revertErr) && revertErr.Reason != "" {
		return fmt.Errorf("%w: %s", ErrSimulationFailed, revertErr.Reason)
	}
	return fmt.Errorf("%w: %w", ErrSimulationFailed, err)
}
