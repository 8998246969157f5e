package trade

import (
	"context"
	"math/big"

	"moonpump/internal/ethereum"
	"moonpump/internal/metadata"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Quoter . Quoter
type Quoter interface {
	GetAmountOut(ctx context.Context, tokenIn, tokenOut common.Address, amountIn *big.Int) (*big.Int, error)
}

//counterfeiter:generate -o fake -fake-name BalanceReader . BalanceReader
type BalanceReader interface {
	NativeBalance(ctx context.Context, account common.Address) (*big.Int, error)
	TokenBalance(ctx context.Context, token, account common.Address) (*big.Int, error)
	TokenDecimals(ctx context.Context, token common.Address) (uint8, error)
}

//counterfeiter:generate -o fake -fake-name BalanceSource . BalanceSource
type BalanceSource interface {
	Snapshot(ctx context.Context, token, account common.Address) Balances
}

//counterfeiter:generate -o fake -fake-name PermitReader . PermitReader
type PermitReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
	TokenName(ctx context.Context, token common.Address) (string, error)
	PermitNonce(ctx context.Context, token, owner common.Address) (*big.Int, error)
}

//counterfeiter:generate -o fake -fake-name TradeContract . TradeContract
type TradeContract interface {
	BuyToken(ctx context.Context, signer ethereum.TxSigner, token common.Address, value, slippageBps *big.Int) (common.Hash, error)
	SellToken(ctx context.Context, signer ethereum.TxSigner, order ethereum.SellOrder) (common.Hash, error)
	WaitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
	TradeEventFromReceipt(receipt *types.Receipt) (ethereum.TradeEvent, error)
}

//counterfeiter:generate -o fake -fake-name FeeContract . FeeContract
type FeeContract interface {
	SimulateCollectFees(ctx context.Context, from, token common.Address) error
	CollectFees(ctx context.Context, signer ethereum.TxSigner, token common.Address) (common.Hash, error)
	WaitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
	FeesCollectedFromReceipt(receipt *types.Receipt) (ethereum.FeesCollected, error)
}

//counterfeiter:generate -o fake -fake-name FactoryContract . FactoryContract
type FactoryContract interface {
	CreateTokenAndPool(ctx context.Context, signer ethereum.TxSigner, name, symbol, tokenURI string, value *big.Int) (common.Hash, error)
	WaitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
	TokenCreatedFromReceipt(receipt *types.Receipt) (ethereum.TokenCreated, error)
}

//counterfeiter:generate -o fake -fake-name Wallet . Wallet
type Wallet interface {
	Address() common.Address
	SignTypedData(ctx context.Context, data apitypes.TypedData) ([]byte, error)
	SignTx(ctx context.Context, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name Settler . Settler
type Settler interface {
	RecordTrade(ctx context.Context, fill Fill) (Settlement, error)
	RecordFees(ctx context.Context, event ethereum.FeesCollected, txHash common.Hash) (Settlement, error)
}

//counterfeiter:generate -o fake -fake-name MetadataUploader . MetadataUploader
type MetadataUploader interface {
	UploadImage(ctx context.Context, filename string, data []byte) (string, error)
	UploadMetadata(ctx context.Context, meta metadata.TokenMetadata) (string, error)
}

// Observer receives every state change of a trade attempt.
type Observer interface {
	OnStateChange(attempt Attempt)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(attempt Attempt)

func (f ObserverFunc) OnStateChange(attempt Attempt) {
	f(attempt)
}
