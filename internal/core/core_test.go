package core_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"moonpump/internal/core"
	"moonpump/internal/core/fake"
	"moonpump/internal/ethereum"
	"moonpump/internal/metadata"
	"moonpump/internal/repository"
	tokenIssuer "moonpump/pkg/jwt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const walletKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

var _ = Describe("MoonPump", func() {
	var (
		fakeRepo     *fake.Repository
		fakeJWT      *fake.JWTIssuer
		fakeMetadata *fake.MetadataFetcher
		ctx          context.Context
		now          time.Time

		moonPump *core.MoonPump

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeMetadata = new(fake.MetadataFetcher)
		ctx = context.Background()

		now = time.Unix(1_750_000_000, 0)
		core.TimeNow = func() time.Time { return now }

		moonPump = core.NewMoonPump(zap.NewNop().Sugar(), fakeRepo, fakeJWT, fakeMetadata)

		fakeErr = errors.New("fake error")
	})

	AfterEach(func() {
		moonPump.Close()
		core.TimeNow = time.Now
	})

	Describe("Authenticate", func() {
		var (
			wallet   *ethereum.KeyWallet
			authMsg  core.AuthMessage
			genToken *jwt.Token
			token    string
			err      error
		)

		sign := func(address string, issuedAt int64) string {
			sig, err := wallet.SignPersonal(ctx, []byte(core.LoginMessage(address, issuedAt)))
			Expect(err).NotTo(HaveOccurred())
			return hexutil.Encode(sig)
		}

		BeforeEach(func() {
			var err error
			wallet, err = ethereum.NewKeyWallet(walletKey, nil)
			Expect(err).NotTo(HaveOccurred())

			address := wallet.Address().Hex()
			authMsg = core.AuthMessage{
				Address:   address,
				IssuedAt:  now.Unix(),
				Signature: sign(address, now.Unix()),
			}

			genToken = jwt.New(jwt.SigningMethodHS512)
			fakeJWT.GenerateReturns(genToken)
			fakeJWT.SignReturns("signed.token", nil)
		})

		JustBeforeEach(func() {
			token, err = moonPump.Authenticate(ctx, authMsg)
		})

		When("the signature matches the address", func() {
			It("should return a signed session token for the address", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				info := fakeJWT.GenerateArgsForCall(0)
				Expect(info).To(Equal(tokenIssuer.SessionInfo{
					Address:    wallet.Address().Hex(),
					Expiration: 24 * time.Hour,
				}))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("the address is sent lowercase", func() {
			BeforeEach(func() {
				authMsg.Address = strings.ToLower(authMsg.Address)
				authMsg.Signature = sign(authMsg.Address, authMsg.IssuedAt)
			})

			It("should still authenticate", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("the signature was made for another address", func() {
			BeforeEach(func() {
				authMsg.Address = "0x000000000000000000000000000000000000dEaD"
			})

			It("should return ErrInvalidSignature", func() {
				Expect(err).To(MatchError(core.ErrInvalidSignature))
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("the signature is not hex", func() {
			BeforeEach(func() {
				authMsg.Signature = "zz"
			})

			It("should return ErrInvalidSignature", func() {
				Expect(err).To(MatchError(core.ErrInvalidSignature))
			})
		})

		When("the login message is too old", func() {
			BeforeEach(func() {
				issued := now.Add(-11 * time.Minute).Unix()
				authMsg.IssuedAt = issued
				authMsg.Signature = sign(authMsg.Address, issued)
			})

			It("should return ErrLoginExpired", func() {
				Expect(err).To(MatchError(core.ErrLoginExpired))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateToken", func() {
		var (
			newToken core.NewToken
			record   core.TokenRecord
			err      error
		)

		BeforeEach(func() {
			newToken = core.NewToken{
				Address:  "0xAbC0000000000000000000000000000000000001",
				Creator:  "0xC0FfEe0000000000000000000000000000000001",
				TokenURI: "ipfs://meta",
			}
			fakeJWT.SubjectReturns(strings.ToLower(newToken.Creator), nil)
		})

		JustBeforeEach(func() {
			record, err = moonPump.CreateToken(ctx, "session", newToken)
		})

		It("should save the token with initial figures", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeRepo.SaveTokenCallCount()).To(Equal(1))

			_, saved := fakeRepo.SaveTokenArgsForCall(0)
			Expect(saved.TVL.Equal(decimal.NewFromInt(6000))).To(BeTrue())
			Expect(saved.MarketCap.Equal(decimal.NewFromInt(6000))).To(BeTrue())
			Expect(saved.CreatedAt).To(Equal(now.UTC()))

			Expect(record.Address).To(Equal(strings.ToLower(newToken.Address)))
			Expect(fakeJWT.SubjectArgsForCall(0)).To(Equal("session"))
		})

		When("the session belongs to someone else", func() {
			BeforeEach(func() {
				fakeJWT.SubjectReturns("0x0000000000000000000000000000000000000002", nil)
			})

			It("should return ErrForbidden", func() {
				Expect(err).To(MatchError(core.ErrForbidden))
				Expect(fakeRepo.SaveTokenCallCount()).To(Equal(0))
			})
		})

		When("the session token is invalid", func() {
			BeforeEach(func() {
				fakeJWT.SubjectReturns("", tokenIssuer.ErrTokenExpired)
			})

			It("should return ErrUnauthorized", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
			})
		})

		When("the token already exists", func() {
			BeforeEach(func() {
				fakeRepo.SaveTokenReturns(repository.ErrDuplicateToken)
			})

			It("should return ErrTokenExists", func() {
				Expect(err).To(MatchError(core.ErrTokenExists))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.SaveTokenReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(core.ErrTokenExists))
			})
		})
	})

	Describe("ListTokens", func() {
		var (
			records []core.TokenRecord
			err     error
		)

		BeforeEach(func() {
			fakeRepo.ListTokensReturns([]repository.Token{
				{Address: "0xb", TokenURI: "ipfs://b"},
				{Address: "0xa", TokenURI: "ipfs://a"},
			}, nil)
			fakeMetadata.FetchStub = func(_ context.Context, uri string) (*metadata.TokenMetadata, error) {
				if uri == "ipfs://a" {
					return nil, fakeErr
				}
				return &metadata.TokenMetadata{Name: "Bee"}, nil
			}
		})

		JustBeforeEach(func() {
			records, err = moonPump.ListTokens(ctx)
		})

		It("should keep the repository order and attach metadata", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
			Expect(records[0].Address).To(Equal("0xb"))
			Expect(records[0].Metadata).To(Equal(&metadata.TokenMetadata{Name: "Bee"}))
		})

		It("should leave metadata nil when the fetch fails", func() {
			Expect(records[1].Address).To(Equal("0xa"))
			Expect(records[1].Metadata).To(BeNil())
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.ListTokensReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetToken", func() {
		It("should map a missing token to ErrTokenNotFound", func() {
			fakeRepo.GetTokenReturns(repository.Token{}, repository.ErrTokenNotFound)

			_, err := moonPump.GetToken(ctx, "0xa")
			Expect(err).To(MatchError(core.ErrTokenNotFound))
		})

		It("should return the token with its metadata", func() {
			fakeRepo.GetTokenReturns(repository.Token{Address: "0xa", TokenURI: "ipfs://a"}, nil)
			fakeMetadata.FetchReturns(&metadata.TokenMetadata{Symbol: "AAA"}, nil)

			record, err := moonPump.GetToken(ctx, "0xa")
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Metadata.Symbol).To(Equal("AAA"))
		})
	})

	Describe("SaveTransaction", func() {
		var (
			tx  core.NewTransaction
			err error
		)

		BeforeEach(func() {
			tx = core.NewTransaction{
				TokenAddress: "0xa",
				UserAddress:  "0xUser",
				Type:         "BUY",
				Amount:       decimal.NewFromInt(1),
				ValueUSD:     decimal.NewFromInt(4000),
				TxHash:       "0xhash",
			}
			fakeJWT.SubjectReturns("0xuser", nil)
		})

		JustBeforeEach(func() {
			_, err = moonPump.SaveTransaction(ctx, "session", tx)
		})

		It("should save the transaction", func() {
			Expect(err).NotTo(HaveOccurred())
			_, saved := fakeRepo.SaveTransactionArgsForCall(0)
			Expect(saved.Type).To(Equal(repository.TypeBuy))
			Expect(saved.TxHash).To(Equal("0xhash"))
		})

		When("the hash was already recorded", func() {
			BeforeEach(func() {
				fakeRepo.SaveTransactionReturns(repository.ErrDuplicateTransaction)
			})

			It("should return ErrTransactionExists", func() {
				Expect(err).To(MatchError(core.ErrTransactionExists))
			})
		})

		When("no session is given", func() {
			JustBeforeEach(func() {
				_, err = moonPump.SaveTransaction(ctx, "", tx)
			})

			It("should return ErrUnauthorized", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
			})
		})
	})

	Describe("ListTransactions", func() {
		It("should page with a fixed size and compute total pages", func() {
			fakeRepo.ListTransactionsReturns([]repository.Transaction{{TxHash: "0x1", Type: repository.TypeSell}}, 21, nil)

			page, err := moonPump.ListTransactions(ctx, "0xa", 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Total).To(Equal(int64(21)))
			Expect(page.TotalPages).To(Equal(int64(3)))
			Expect(page.Page).To(Equal(3))
			Expect(page.Transactions[0].Type).To(Equal("SELL"))

			_, token, p, size := fakeRepo.ListTransactionsArgsForCall(0)
			Expect(token).To(Equal("0xa"))
			Expect(p).To(Equal(3))
			Expect(size).To(Equal(10))
		})

		It("should treat pages below one as the first page", func() {
			page, err := moonPump.ListTransactions(ctx, "0xa", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Page).To(Equal(1))
			Expect(page.TotalPages).To(Equal(int64(0)))
		})
	})

	Describe("Stats", func() {
		It("should report the 24 hour volume", func() {
			fakeRepo.StatsReturns(repository.Stats{
				Tokens:          2,
				TotalMarketCap:  decimal.NewFromInt(12000),
				TVL:             decimal.NewFromInt(800),
				Volume24h:       decimal.NewFromInt(150),
				CreatorsRewards: decimal.NewFromInt(5),
			}, nil)

			stats, err := moonPump.Stats(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Volume24h.Equal(decimal.NewFromInt(150))).To(BeTrue())
			Expect(stats.Tokens).To(Equal(int64(2)))

			_, since := fakeRepo.StatsArgsForCall(0)
			Expect(since).To(Equal(now.Add(-24 * time.Hour)))
		})

		It("should return repository errors", func() {
			fakeRepo.StatsReturns(repository.Stats{}, fakeErr)

			_, err := moonPump.Stats(ctx)
			Expect(err).To(MatchError(fakeErr))
		})
	})
})
