package repository_test

import (
	"context"
	"errors"
	"time"

	"moonpump/internal/db"
	"moonpump/internal/repository"
	"moonpump/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("Repository", func() {
	var (
		repo        *repository.Repository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		When("migration succeeds", func() {
			It("should migrate tokens and transactions", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(2))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.Token{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Transaction{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("SaveToken", func() {
		var (
			token repository.Token
			err   error
		)

		BeforeEach(func() {
			token = repository.Token{
				Address:  "0xABCDEFabcdefABCDEFabcdefABCDEFabcdefABCD",
				Creator:  "0x00000000000000000000000000000000000000Ff",
				TokenURI: "ipfs://meta",
			}
		})

		JustBeforeEach(func() {
			err = repo.SaveToken(ctx, token)
		})

		When("insert succeeds", func() {
			It("should store lowercase addresses", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.InsertCallCount()).To(Equal(1))
				_, record := fakeStorage.InsertArgsForCall(0)
				saved := record.(*repository.Token)
				Expect(saved.Address).To(Equal("0xabcdefabcdefabcdefabcdefabcdefabcdefabcd"))
				Expect(saved.Creator).To(Equal("0x00000000000000000000000000000000000000ff"))
			})
		})

		When("the token already exists", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(db.ErrDuplicate)
			})

			It("should return ErrDuplicateToken", func() {
				Expect(err).To(MatchError(repository.ErrDuplicateToken))
			})
		})
	})

	Describe("GetToken", func() {
		var (
			token repository.Token
			err   error
		)

		JustBeforeEach(func() {
			token, err = repo.GetToken(ctx, "0xABC")
		})

		When("the token exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					t := dest.(*repository.Token)
					*t = repository.Token{Address: "0xabc", TokenURI: "ipfs://x"}
					return nil
				}
			})

			It("should look it up by lowercase address", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token.TokenURI).To(Equal("ipfs://x"))
				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("address"))
				Expect(val).To(Equal("0xabc"))
			})
		})

		When("the token does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrTokenNotFound", func() {
				Expect(err).To(MatchError(repository.ErrTokenNotFound))
			})
		})

		When("the storage fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(errors.Is(err, repository.ErrTokenNotFound)).To(BeFalse())
			})
		})
	})

	Describe("ListTokens", func() {
		It("should order newest first", func() {
			fakeStorage.FindStub = func(ctx context.Context, q db.Query, dest any) error {
				tokens := dest.(*[]repository.Token)
				*tokens = []repository.Token{{Address: "0x2"}, {Address: "0x1"}}
				return nil
			}

			tokens, err := repo.ListTokens(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(tokens).To(HaveLen(2))
			_, q, _ := fakeStorage.FindArgsForCall(0)
			Expect(q.OrderBy).To(Equal("created_at desc"))
		})
	})

	Describe("TokenAddresses", func() {
		It("should pluck the address column", func() {
			fakeStorage.PluckStub = func(ctx context.Context, model any, column string, dest any) error {
				addresses := dest.(*[]string)
				*addresses = []string{"0x1", "0x2"}
				return nil
			}

			addresses, err := repo.TokenAddresses(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(addresses).To(Equal([]string{"0x1", "0x2"}))
			_, model, column, _ := fakeStorage.PluckArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.Token{}))
			Expect(column).To(Equal("address"))
		})
	})

	Describe("UpdateTokenMetrics", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.UpdateTokenMetrics(ctx, "0xAB", decimal.NewFromInt(10), decimal.NewFromInt(20))
		})

		It("should update tvl and market cap", func() {
			Expect(err).NotTo(HaveOccurred())
			_, _, column, value, updates := fakeStorage.UpdateByArgsForCall(0)
			Expect(column).To(Equal("address"))
			Expect(value).To(Equal("0xab"))
			Expect(updates).To(HaveKeyWithValue("tvl", decimal.NewFromInt(10)))
			Expect(updates).To(HaveKeyWithValue("market_cap", decimal.NewFromInt(20)))
		})

		When("the token is gone", func() {
			BeforeEach(func() {
				fakeStorage.UpdateByReturns(db.ErrNotFound)
			})

			It("should return ErrTokenNotFound", func() {
				Expect(err).To(MatchError(repository.ErrTokenNotFound))
			})
		})
	})

	Describe("SaveTransaction", func() {
		var (
			tx  repository.Transaction
			err error
		)

		BeforeEach(func() {
			tx = repository.Transaction{
				TokenAddress: "0xAA",
				UserAddress:  "0xBB",
				Type:         repository.TypeBuy,
				Amount:       decimal.RequireFromString("1.5"),
				ValueUSD:     decimal.NewFromInt(6000),
				TxHash:       "0xhash",
			}
		})

		JustBeforeEach(func() {
			err = repo.SaveTransaction(ctx, tx)
		})

		When("insert succeeds", func() {
			It("should save the row", func() {
				Expect(err).NotTo(HaveOccurred())
				_, record := fakeStorage.InsertArgsForCall(0)
				saved := record.(*repository.Transaction)
				Expect(saved.TokenAddress).To(Equal("0xaa"))
				Expect(saved.UserAddress).To(Equal("0xbb"))
				Expect(saved.TxHash).To(Equal("0xhash"))
			})
		})

		When("the hash was already recorded", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(db.ErrDuplicate)
			})

			It("should return ErrDuplicateTransaction", func() {
				Expect(err).To(MatchError(repository.ErrDuplicateTransaction))
			})
		})

		When("insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListTransactions", func() {
		var (
			rows  []repository.Transaction
			total int64
			err   error
			page  int
		)

		BeforeEach(func() {
			page = 2
			fakeStorage.CountReturns(13, nil)
			fakeStorage.FindStub = func(ctx context.Context, q db.Query, dest any) error {
				txs := dest.(*[]repository.Transaction)
				*txs = []repository.Transaction{{TxHash: "0x11"}, {TxHash: "0x12"}, {TxHash: "0x13"}}
				return nil
			}
		})

		JustBeforeEach(func() {
			rows, total, err = repo.ListTransactions(ctx, "0xTOKEN", page, 10)
		})

		It("should page trade rows newest first", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(13)))
			Expect(rows).To(HaveLen(3))

			_, q, _ := fakeStorage.FindArgsForCall(0)
			Expect(q.OrderBy).To(Equal("created_at desc"))
			Expect(q.Offset).To(Equal(10))
			Expect(q.Limit).To(Equal(10))
			Expect(q.Conditions).To(ConsistOf(
				db.Condition{Expr: "token_address = ?", Args: []any{"0xtoken"}},
				db.Condition{Expr: "type IN ?", Args: []any{[]string{"BUY", "SELL"}}},
			))
		})

		When("page is below one", func() {
			BeforeEach(func() {
				page = 0
			})

			It("should start at the first page", func() {
				_, q, _ := fakeStorage.FindArgsForCall(0)
				Expect(q.Offset).To(Equal(0))
			})
		})

		When("count fails", func() {
			BeforeEach(func() {
				fakeStorage.CountReturns(0, fakeErr)
			})

			It("should return the error without querying rows", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeStorage.FindCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Stats", func() {
		var (
			stats repository.Stats
			since time.Time
			err   error
		)

		BeforeEach(func() {
			since = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
			fakeStorage.CountReturns(2, nil)
			fakeStorage.SumStub = func(ctx context.Context, model any, column string, q db.Query) (decimal.Decimal, error) {
				switch {
				case column == "market_cap":
					return decimal.NewFromInt(12000), nil
				case column == "tvl":
					return decimal.NewFromInt(7000), nil
				case len(q.Conditions) == 2:
					return decimal.NewFromInt(150), nil
				default:
					return decimal.NewFromInt(42), nil
				}
			}
		})

		JustBeforeEach(func() {
			stats, err = repo.Stats(ctx, since)
		})

		It("should aggregate tokens and trades", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Tokens).To(Equal(int64(2)))
			Expect(stats.TotalMarketCap.Equal(decimal.NewFromInt(12000))).To(BeTrue())
			Expect(stats.TVL.Equal(decimal.NewFromInt(7000))).To(BeTrue())
			Expect(stats.Volume24h.Equal(decimal.NewFromInt(150))).To(BeTrue())
			Expect(stats.CreatorsRewards.Equal(decimal.NewFromInt(42))).To(BeTrue())
		})

		It("should restrict volume to trades since the cut-off", func() {
			Expect(fakeStorage.SumCallCount()).To(Equal(4))
			_, model, column, q := fakeStorage.SumArgsForCall(2)
			Expect(model).To(BeAssignableToTypeOf(&repository.Transaction{}))
			Expect(column).To(Equal("value_usd"))
			Expect(q.Conditions).To(ConsistOf(
				db.Condition{Expr: "type IN ?", Args: []any{[]string{"BUY", "SELL"}}},
				db.Condition{Expr: "created_at >= ?", Args: []any{since}},
			))

			_, _, _, rewards := fakeStorage.SumArgsForCall(3)
			Expect(rewards.Conditions).To(ConsistOf(
				db.Condition{Expr: "type = ?", Args: []any{"REWARD"}},
			))
		})

		When("a sum fails", func() {
			BeforeEach(func() {
				fakeStorage.SumReturnsOnCall(1, decimal.Zero, fakeErr)
				fakeStorage.SumStub = nil
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(ContainSubstring("sum tvl")))
			})
		})
	})
})
