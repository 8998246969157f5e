package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// KeyWallet signs with a local private key. Every signature is gated by the
// Confirmer, when one is set, so the holder can decline it.
type KeyWallet struct {
	key       *ecdsa.PrivateKey
	address   common.Address
	confirmer Confirmer
}

func NewKeyWallet(hexKey string, confirmer Confirmer) (*KeyWallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return &KeyWallet{
		key:       key,
		address:   crypto.PubkeyToAddress(key.PublicKey),
		confirmer: confirmer,
	}, nil
}

func (w *KeyWallet) Address() common.Address {
	return w.address
}

// SignTypedData returns the 65 byte EIP-712 signature r || s || v with v in {27, 28}.
func (w *KeyWallet) SignTypedData(ctx context.Context, data apitypes.TypedData) ([]byte, error) {
	if err := w.confirm(ctx, fmt.Sprintf("Sign %s message for %s?", data.PrimaryType, data.Domain.Name)); err != nil {
		return nil, err
	}

	hash, _, err := apitypes.TypedDataAndHash(data)
	if err != nil {
		return nil, fmt.Errorf("hash typed data: %w", err)
	}

	sig, err := crypto.Sign(hash, w.key)
	if err != nil {
		return nil, fmt.Errorf("sign typed data: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}

func (w *KeyWallet) SignTx(ctx context.Context, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	prompt := fmt.Sprintf("Send transaction to %s with value %s wei?", tx.To().Hex(), tx.Value().String())
	if err := w.confirm(ctx, prompt); err != nil {
		return nil, err
	}

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), w.key)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}
	return signed, nil
}

func (w *KeyWallet) confirm(ctx context.Context, prompt string) error {
	if w.confirmer == nil {
		return nil
	}
	ok, err := w.confirmer.Confirm(ctx, prompt)
	if err != nil {
		return fmt.Errorf("confirm: %w", err)
	}
	if !ok {
		return ErrUserRejected
	}
	return nil
}

// RecoverPersonalSigner returns the address that produced an EIP-191 personal_sign
// signature over message.
func RecoverPersonalSigner(message []byte, signature []byte) (common.Address, error) {
	if len(signature) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("signature must be %d bytes, got %d", crypto.SignatureLength, len(signature))
	}

	sig := make([]byte, len(signature))
	copy(sig, signature)
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(personalHash(message), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("recover public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// SignPersonal produces an EIP-191 personal_sign signature, used by the auth command.
func (w *KeyWallet) SignPersonal(ctx context.Context, message []byte) ([]byte, error) {
	if err := w.confirm(ctx, fmt.Sprintf("Sign message %q?", string(message))); err != nil {
		return nil, err
	}
	sig, err := crypto.Sign(personalHash(message), w.key)
	if err != nil {
		return nil, fmt.Errorf("sign message: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}

func personalHash(message []byte) []byte {
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	return crypto.Keccak256([]byte(prefixed))
}
