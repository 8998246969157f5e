package trade

import (
	"context"
	"errors"
	"math/big"
	"strconv"
	"strings"
	"sync"
	"time"

	"moonpump/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"go.uber.org/zap"
)

const permitValidity = time.Hour

var permitTypes = apitypes.Types{
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
	"Permit": {
		{Name: "owner", Type: "address"},
		{Name: "spender", Type: "address"},
		{Name: "value", Type: "uint256"},
		{Name: "nonce", Type: "uint256"},
		{Name: "deadline", Type: "uint256"},
	},
}

// PermitSigner produces EIP-2612 permit signatures so the trader contract can
// pull tokens without a separate approval transaction.
type PermitSigner struct {
	logs   *zap.SugaredLogger
	reader PermitReader
	now    func() time.Time
}

func NewPermitSigner(logger *zap.SugaredLogger, reader PermitReader) *PermitSigner {
	return &PermitSigner{
		logs:   logger,
		reader: reader,
		now:    time.Now,
	}
}

func (p *PermitSigner) Generate(ctx context.Context, token, spender common.Address, amount *big.Int, owner common.Address, wallet Wallet) (PermitSignature, error) {
	var (
		wg       sync.WaitGroup
		name     string
		nonce    *big.Int
		nameErr  error
		nonceErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		name, nameErr = p.reader.TokenName(ctx, token)
	}()
	go func() {
		defer wg.Done()
		nonce, nonceErr = p.reader.PermitNonce(ctx, token, owner)
	}()
	wg.Wait()

	if nameErr != nil {
		return PermitSignature{}, &PermitError{Kind: PermitInvalidToken, Message: "invalid token name type", Err: nameErr}
	}
	if nonceErr != nil || nonce == nil {
		return PermitSignature{}, &PermitError{Kind: PermitInvalidToken, Message: "invalid nonce type", Err: nonceErr}
	}

	chainID, err := p.reader.ChainID(ctx)
	if err != nil {
		return PermitSignature{}, &PermitError{Kind: PermitUnexpected, Message: "unexpected error: " + err.Error(), Err: err}
	}

	deadline := p.now().Add(permitValidity).Unix()

	typedData := apitypes.TypedData{
		Types:       permitTypes,
		PrimaryType: "Permit",
		Domain: apitypes.TypedDataDomain{
			Name:              name,
			Version:           "1",
			ChainId:           (*math.HexOrDecimal256)(chainID),
			VerifyingContract: token.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"owner":    owner.Hex(),
			"spender":  spender.Hex(),
			"value":    amount,
			"nonce":    nonce,
			"deadline": big.NewInt(deadline),
		},
	}

	sig, err := wallet.SignTypedData(ctx, typedData)
	if err != nil {
		return PermitSignature{}, classifySigningError(err)
	}

	r, s, v, err := SplitSignature(sig)
	if err != nil {
		return PermitSignature{}, err
	}

	p.logs.Infow("permit signed",
		"token", token.Hex(),
		"owner", owner.Hex(),
		"spender", spender.Hex(),
		"nonce", nonce.String(),
		"deadline", deadline)

	return PermitSignature{
		Deadline: deadline,
		V:        v,
		R:        r,
		S:        s,
	}, nil
}

func classifySigningError(err error) *PermitError {
	msg := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, ethereum.ErrUserRejected) || strings.Contains(msg, "user rejected"):
		return &PermitError{Kind: PermitUserRejected, Message: "user rejected signature request", Err: err}
	case strings.Contains(msg, "does not support"):
		return &PermitError{Kind: PermitUnsupported, Message: "token does not support permit", Err: err}
	default:
		return &PermitError{Kind: PermitUnexpected, Message: "unexpected error: " + err.Error(), Err: err}
	}
}

// SplitSignature splits a 65 byte signature into 0x-prefixed r and s and the raw v byte.
// v is returned as signed, without normalizing it to 27 or 28.
func SplitSignature(sig []byte) (r, s string, v uint8, err error) {
	encoded := hexutil.Encode(sig)
	if len(encoded) != 132 {
		return "", "", 0, &PermitError{Kind: PermitInvalidSignature, Message: "invalid signature length"}
	}

	r = encoded[:66]
	s = "0x" + encoded[66:130]
	parsed, parseErr := strconv.ParseUint(encoded[130:132], 16, 8)
	if len(r) != 66 || len(s) != 66 || parseErr != nil {
		return "", "", 0, &PermitError{Kind: PermitInvalidSignature, Message: "invalid signature components", Err: parseErr}
	}
	return r, s, uint8(parsed), nil
}
