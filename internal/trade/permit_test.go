package trade_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"moonpump/internal/ethereum"
	"moonpump/internal/trade"
	"moonpump/internal/trade/fake"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("PermitSigner", func() {
	var (
		signer     *trade.PermitSigner
		fakeReader *fake.PermitReader
		fakeWallet *fake.Wallet
		ctx        context.Context
		token      common.Address
		spender    common.Address
		owner      common.Address
		amount     *big.Int
		permit     trade.PermitSignature
		err        error
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeReader = new(fake.PermitReader)
		fakeWallet = new(fake.Wallet)
		token = common.HexToAddress("0x1111111111111111111111111111111111111111")
		spender = common.HexToAddress("0x00000000000000000000000000000000000000ab")
		owner = common.HexToAddress("0x2222222222222222222222222222222222222222")
		amount = wei("100")

		fakeReader.TokenNameReturns("Moon", nil)
		fakeReader.PermitNonceReturns(big.NewInt(4), nil)
		fakeReader.ChainIDReturns(big.NewInt(1), nil)

		sig := make([]byte, 65)
		for i := range sig {
			sig[i] = byte(i + 1)
		}
		sig[64] = 28
		fakeWallet.SignTypedDataReturns(sig, nil)

		signer = trade.NewPermitSigner(zap.NewNop().Sugar(), fakeReader)
	})

	JustBeforeEach(func() {
		permit, err = signer.Generate(ctx, token, spender, amount, owner, fakeWallet)
	})

	It("should split the signature", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(permit.R).To(HaveLen(66))
		Expect(permit.S).To(HaveLen(66))
		Expect(permit.R).To(HavePrefix("0x0102"))
		Expect(permit.S).To(HavePrefix("0x2122"))
		Expect(permit.V).To(Equal(uint8(28)))
	})

	It("should sign an EIP-2612 permit valid for an hour", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(permit.Deadline).To(BeNumerically("~", time.Now().Add(time.Hour).Unix(), 5))

		_, typedData := fakeWallet.SignTypedDataArgsForCall(0)
		Expect(typedData.PrimaryType).To(Equal("Permit"))
		Expect(typedData.Domain.Name).To(Equal("Moon"))
		Expect(typedData.Domain.Version).To(Equal("1"))
		Expect(typedData.Domain.VerifyingContract).To(Equal(token.Hex()))
		Expect(typedData.Message["owner"]).To(Equal(owner.Hex()))
		Expect(typedData.Message["spender"]).To(Equal(spender.Hex()))
		Expect(typedData.Message["value"]).To(Equal(amount))
		Expect(typedData.Message["nonce"]).To(Equal(big.NewInt(4)))

		_, _, hashErr := apitypes.TypedDataAndHash(typedData)
		Expect(hashErr).NotTo(HaveOccurred())
	})

	When("the token name cannot be read", func() {
		BeforeEach(func() {
			fakeReader.TokenNameReturns("", errors.New("execution reverted"))
		})

		It("should report an invalid token", func() {
			var permitErr *trade.PermitError
			Expect(errors.As(err, &permitErr)).To(BeTrue())
			Expect(permitErr.Kind).To(Equal(trade.PermitInvalidToken))
			Expect(err.Error()).To(Equal("permit generation failed: invalid token name type"))
			Expect(fakeWallet.SignTypedDataCallCount()).To(Equal(0))
		})
	})

	When("the nonce cannot be read", func() {
		BeforeEach(func() {
			fakeReader.PermitNonceReturns(nil, errors.New("no nonces"))
		})

		It("should report an invalid nonce", func() {
			Expect(err).To(MatchError("permit generation failed: invalid nonce type"))
		})
	})

	DescribeTable("signing failures",
		func(signErr error, kind trade.PermitErrorKind, message string) {
			fakeWallet.SignTypedDataReturns(nil, signErr)
			_, err := signer.Generate(ctx, token, spender, amount, owner, fakeWallet)

			var permitErr *trade.PermitError
			Expect(errors.As(err, &permitErr)).To(BeTrue())
			Expect(permitErr.Kind).To(Equal(kind))
			Expect(permitErr.Message).To(Equal(message))
		},
		Entry("user rejection", ethereum.ErrUserRejected, trade.PermitUserRejected, "user rejected signature request"),
		Entry("wallet wording", errors.New("User rejected the request."), trade.PermitUserRejected, "user rejected signature request"),
		Entry("no permit support", errors.New("method does not support typed data"), trade.PermitUnsupported, "token does not support permit"),
		Entry("anything else", errors.New("boom"), trade.PermitUnexpected, "unexpected error: boom"),
	)

	When("the wallet returns a short signature", func() {
		BeforeEach(func() {
			fakeWallet.SignTypedDataReturns(make([]byte, 64), nil)
		})

		It("should report the length", func() {
			Expect(err).To(MatchError("permit generation failed: invalid signature length"))
		})
	})

	Describe("with a key wallet", func() {
		It("should produce a signature that recovers to the owner", func() {
			keyWallet, walletErr := ethereum.NewKeyWallet("4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318", nil)
			Expect(walletErr).NotTo(HaveOccurred())
			wallet := &recordingWallet{KeyWallet: keyWallet}

			permit, err := signer.Generate(ctx, token, spender, amount, wallet.Address(), wallet)
			Expect(err).NotTo(HaveOccurred())
			Expect(permit.V).To(BeElementOf(uint8(27), uint8(28)))

			hash, _, err := apitypes.TypedDataAndHash(wallet.signed)
			Expect(err).NotTo(HaveOccurred())

			sig := append(common.FromHex(permit.R), common.FromHex(permit.S)...)
			sig = append(sig, permit.V-27)
			pub, err := crypto.SigToPub(hash, sig)
			Expect(err).NotTo(HaveOccurred())
			Expect(crypto.PubkeyToAddress(*pub)).To(Equal(wallet.Address()))
		})
	})
})

type recordingWallet struct {
	*ethereum.KeyWallet
	signed apitypes.TypedData
}

func (w *recordingWallet) SignTypedData(ctx context.Context, data apitypes.TypedData) ([]byte, error) {
	w.signed = data
	return w.KeyWallet.SignTypedData(ctx, data)
}

var _ = Describe("SplitSignature", func() {
	It("should reject a malformed length", func() {
		_, _, _, err := trade.SplitSignature([]byte{1, 2, 3})
		var permitErr *trade.PermitError
		Expect(errors.As(err, &permitErr)).To(BeTrue())
		Expect(permitErr.Kind).To(Equal(trade.PermitInvalidSignature))
	})

	It("should keep v as signed", func() {
		sig := make([]byte, 65)
		sig[64] = 1
		_, _, v, err := trade.SplitSignature(sig)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(uint8(1)))
	})
})
