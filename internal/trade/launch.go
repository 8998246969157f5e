package trade

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"moonpump/internal/ethereum"
	"moonpump/internal/metadata"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Launcher uploads token metadata and creates the token and its pool in one transaction.
type Launcher struct {
	logs     *zap.SugaredLogger
	uploader MetadataUploader
	factory  FactoryContract
}

func NewLauncher(logger *zap.SugaredLogger, uploader MetadataUploader, factory FactoryContract) *Launcher {
	return &Launcher{
		logs:     logger,
		uploader: uploader,
		factory:  factory,
	}
}

func (l *Launcher) Launch(ctx context.Context, wallet Wallet, req LaunchRequest) (ethereum.TokenCreated, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Symbol) == "" {
		return ethereum.TokenCreated{}, fmt.Errorf("token name and symbol are required: %w", ErrInvalidInput)
	}

	value, err := parseInitialBuy(req.InitialBuy)
	if err != nil {
		return ethereum.TokenCreated{}, err
	}

	var imageURL string
	if len(req.Image) > 0 {
		imageURL, err = l.uploader.UploadImage(ctx, req.ImageName, req.Image)
		if err != nil {
			return ethereum.TokenCreated{}, fmt.Errorf("upload image: %w", err)
		}
	}

	tokenURI, err := l.uploader.UploadMetadata(ctx, metadata.TokenMetadata{
		Name:        req.Name,
		Symbol:      req.Symbol,
		Description: req.Description,
		Image:       imageURL,
		Website:     req.Website,
		Twitter:     req.Twitter,
		Telegram:    req.Telegram,
	})
	if err != nil {
		return ethereum.TokenCreated{}, fmt.Errorf("upload metadata: %w", err)
	}
	l.logs.Infow("token metadata uploaded", "symbol", req.Symbol, "token_uri", tokenURI)

	hash, err := l.factory.CreateTokenAndPool(ctx, wallet, req.Name, req.Symbol, tokenURI, value)
	if err != nil {
		return ethereum.TokenCreated{}, classifySubmitError(err)
	}

	receipt, err := l.factory.WaitReceipt(ctx, hash)
	if err != nil {
		return ethereum.TokenCreated{}, fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}

	created, err := l.factory.TokenCreatedFromReceipt(receipt)
	if err != nil {
		return ethereum.TokenCreated{}, fmt.Errorf("decode token created: %w", err)
	}

	l.logs.Infow("token created",
		"token", created.Token.Hex(),
		"pool", created.Pool.Hex(),
		"creator", created.Creator.Hex(),
		"tx", hash.Hex())

	return created, nil
}

func parseInitialBuy(amount string) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return new(big.Int), nil
	}
	d, err := decimal.NewFromString(amount)
	if err != nil || d.IsNegative() {
		return nil, fmt.Errorf("invalid initial purchase %q: %w", amount, ErrInvalidInput)
	}
	return d.Shift(NativeDecimals).Truncate(0).BigInt(), nil
}
