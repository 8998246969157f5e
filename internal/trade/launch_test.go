package trade_test

import (
	"context"
	"errors"
	"math/big"

	"moonpump/internal/ethereum"
	"moonpump/internal/trade"
	"moonpump/internal/trade/fake"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Launcher", func() {
	var (
		launcher     *trade.Launcher
		fakeUploader *fake.MetadataUploader
		fakeFactory  *fake.FactoryContract
		fakeWallet   *fake.Wallet
		ctx          context.Context
		req          trade.LaunchRequest
		created      ethereum.TokenCreated
		err          error
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeUploader = new(fake.MetadataUploader)
		fakeUploader.UploadImageReturns("https://gateway/ipfs/QmImage", nil)
		fakeUploader.UploadMetadataReturns("https://gateway/ipfs/QmMeta", nil)

		fakeFactory = new(fake.FactoryContract)
		fakeFactory.CreateTokenAndPoolReturns(common.HexToHash("0x01"), nil)
		fakeFactory.WaitReceiptReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
		fakeFactory.TokenCreatedFromReceiptReturns(ethereum.TokenCreated{
			Token:  common.HexToAddress("0x1111111111111111111111111111111111111111"),
			Symbol: "MOON",
		}, nil)

		fakeWallet = new(fake.Wallet)
		launcher = trade.NewLauncher(zap.NewNop().Sugar(), fakeUploader, fakeFactory)

		req = trade.LaunchRequest{
			Name:       "Moon",
			Symbol:     "MOON",
			ImageName:  "moon.png",
			Image:      []byte{1, 2, 3},
			Website:    "https://moon.example",
			InitialBuy: "0.1",
		}
	})

	JustBeforeEach(func() {
		created, err = launcher.Launch(ctx, fakeWallet, req)
	})

	It("should upload metadata and create the token with the initial buy", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(created.Symbol).To(Equal("MOON"))

		_, meta := fakeUploader.UploadMetadataArgsForCall(0)
		Expect(meta.Image).To(Equal("https://gateway/ipfs/QmImage"))
		Expect(meta.Website).To(Equal("https://moon.example"))

		_, _, name, symbol, uri, value := fakeFactory.CreateTokenAndPoolArgsForCall(0)
		Expect(name).To(Equal("Moon"))
		Expect(symbol).To(Equal("MOON"))
		Expect(uri).To(Equal("https://gateway/ipfs/QmMeta"))
		Expect(value).To(Equal(wei("0.1")))
	})

	When("no image is given", func() {
		BeforeEach(func() {
			req.Image = nil
			req.InitialBuy = ""
		})

		It("should skip the image upload and send no value", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeUploader.UploadImageCallCount()).To(Equal(0))
			_, _, _, _, _, value := fakeFactory.CreateTokenAndPoolArgsForCall(0)
			Expect(value.Cmp(big.NewInt(0))).To(Equal(0))
		})
	})

	When("the symbol is missing", func() {
		BeforeEach(func() {
			req.Symbol = " "
		})

		It("should reject the request", func() {
			Expect(err).To(MatchError(trade.ErrInvalidInput))
			Expect(fakeUploader.UploadMetadataCallCount()).To(Equal(0))
		})
	})

	When("the upload fails", func() {
		BeforeEach(func() {
			fakeUploader.UploadMetadataReturns("", errors.New("pinata down"))
		})

		It("should not send a transaction", func() {
			Expect(err).To(MatchError(ContainSubstring("pinata down")))
			Expect(fakeFactory.CreateTokenAndPoolCallCount()).To(Equal(0))
		})
	})
})
