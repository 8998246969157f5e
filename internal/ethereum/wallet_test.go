package ethereum_test

import (
	"context"
	"errors"
	"math/big"

	"moonpump/internal/ethereum"
	"moonpump/internal/ethereum/fake"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const testKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

var _ = Describe("KeyWallet", func() {
	var (
		wallet        *ethereum.KeyWallet
		fakeConfirmer *fake.Confirmer
		ctx           context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeConfirmer = new(fake.Confirmer)
		fakeConfirmer.ConfirmReturns(true, nil)

		var err error
		wallet, err = ethereum.NewKeyWallet("0x"+testKey, fakeConfirmer)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should derive the address from the key", func() {
		key, err := crypto.HexToECDSA(testKey)
		Expect(err).NotTo(HaveOccurred())
		Expect(wallet.Address()).To(Equal(crypto.PubkeyToAddress(key.PublicKey)))
	})

	It("should reject a malformed key", func() {
		_, err := ethereum.NewKeyWallet("not-a-key", nil)
		Expect(err).To(HaveOccurred())
	})

	Describe("SignTypedData", func() {
		var typedData apitypes.TypedData

		BeforeEach(func() {
			typedData = apitypes.TypedData{
				Types: apitypes.Types{
					"EIP712Domain": {
						{Name: "name", Type: "string"},
						{Name: "chainId", Type: "uint256"},
					},
					"Ping": {{Name: "value", Type: "uint256"}},
				},
				PrimaryType: "Ping",
				Domain: apitypes.TypedDataDomain{
					Name:    "Test",
					ChainId: math.NewHexOrDecimal256(1),
				},
				Message: apitypes.TypedDataMessage{"value": big.NewInt(7)},
			}
		})

		It("should produce a recoverable signature with v of 27 or 28", func() {
			sig, err := wallet.SignTypedData(ctx, typedData)
			Expect(err).NotTo(HaveOccurred())
			Expect(sig).To(HaveLen(65))
			Expect(sig[64]).To(BeElementOf(byte(27), byte(28)))

			hash, _, err := apitypes.TypedDataAndHash(typedData)
			Expect(err).NotTo(HaveOccurred())
			raw := append([]byte{}, sig...)
			raw[64] -= 27
			pub, err := crypto.SigToPub(hash, raw)
			Expect(err).NotTo(HaveOccurred())
			Expect(crypto.PubkeyToAddress(*pub)).To(Equal(wallet.Address()))
		})

		When("the holder declines", func() {
			BeforeEach(func() {
				fakeConfirmer.ConfirmReturns(false, nil)
			})

			It("should return ErrUserRejected", func() {
				_, err := wallet.SignTypedData(ctx, typedData)
				Expect(err).To(MatchError(ethereum.ErrUserRejected))
			})
		})

		When("confirmation fails", func() {
			BeforeEach(func() {
				fakeConfirmer.ConfirmReturns(false, errors.New("stdin closed"))
			})

			It("should return the confirmation error", func() {
				_, err := wallet.SignTypedData(ctx, typedData)
				Expect(err).To(MatchError(ContainSubstring("stdin closed")))
				Expect(err).NotTo(MatchError(ethereum.ErrUserRejected))
			})
		})
	})

	Describe("SignTx", func() {
		It("should sign for the given chain after confirmation", func() {
			to := common.HexToAddress("0x01")
			tx := types.NewTx(&types.DynamicFeeTx{ChainID: big.NewInt(1), To: &to, Value: big.NewInt(1)})

			signed, err := wallet.SignTx(ctx, tx, big.NewInt(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeConfirmer.ConfirmCallCount()).To(Equal(1))

			sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(1)), signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(sender).To(Equal(wallet.Address()))
		})
	})

	Describe("RecoverPersonalSigner", func() {
		It("should recover the signer of a personal message", func() {
			message := []byte("Sign in to Moon Pump: 1234")
			sig, err := wallet.SignPersonal(ctx, message)
			Expect(err).NotTo(HaveOccurred())

			addr, err := ethereum.RecoverPersonalSigner(message, sig)
			Expect(err).NotTo(HaveOccurred())
			Expect(addr).To(Equal(wallet.Address()))
		})

		It("should not recover the signer for a different message", func() {
			sig, err := wallet.SignPersonal(ctx, []byte("hello"))
			Expect(err).NotTo(HaveOccurred())

			addr, err := ethereum.RecoverPersonalSigner([]byte("goodbye"), sig)
			if err == nil {
				Expect(addr).NotTo(Equal(wallet.Address()))
			}
		})

		It("should reject short signatures", func() {
			_, err := ethereum.RecoverPersonalSigner([]byte("hello"), []byte{1, 2, 3})
			Expect(err).To(HaveOccurred())
		})
	})
})
