package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"moonpump/internal/db"

	"github.com/shopspring/decimal"
)

var ErrTokenNotFound error = errors.New("token not found")
var ErrDuplicateToken error = errors.New("token already exists")
var ErrDuplicateTransaction error = errors.New("transaction already recorded")

// tradeTypes are the rows shown in token history and counted as volume.
var tradeTypes = []string{string(TypeBuy), string(TypeSell)}

type Repository struct {
	db Storage
}

func NewRepository(db Storage) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) MigrateTables() error {
	err := r.db.MigrateTable(&Token{}, &Transaction{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

func (r *Repository) SaveToken(ctx context.Context, token Token) error {
	token.Address = strings.ToLower(token.Address)
	token.Creator = strings.ToLower(token.Creator)

	err := r.db.Insert(ctx, &token)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrDuplicateToken
		}
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (r *Repository) GetToken(ctx context.Context, address string) (Token, error) {
	var token Token

	err := r.db.GetOneBy(ctx, "address", strings.ToLower(address), &token)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Token{}, ErrTokenNotFound
		}
		return Token{}, fmt.Errorf("get token by address: %w", err)
	}

	return token, nil
}

// ListTokens returns every token, newest first.
func (r *Repository) ListTokens(ctx context.Context) ([]Token, error) {
	tokens := []Token{}
	err := r.db.Find(ctx, db.Query{OrderBy: "created_at desc"}, &tokens)
	if err != nil {
		return nil, fmt.Errorf("list tokens: %w", err)
	}
	return tokens, nil
}

func (r *Repository) TokenAddresses(ctx context.Context) ([]string, error) {
	addresses := []string{}
	err := r.db.Pluck(ctx, &Token{}, "address", &addresses)
	if err != nil {
		return nil, fmt.Errorf("token addresses: %w", err)
	}
	return addresses, nil
}

func (r *Repository) UpdateTokenMetrics(ctx context.Context, address string, tvl, marketCap decimal.Decimal) error {
	err := r.db.UpdateBy(ctx, &Token{}, "address", strings.ToLower(address), map[string]any{
		"tvl":        tvl,
		"market_cap": marketCap,
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrTokenNotFound
		}
		return fmt.Errorf("update token metrics: %w", err)
	}
	return nil
}

func (r *Repository) SaveTransaction(ctx context.Context, tx Transaction) error {
	tx.TokenAddress = strings.ToLower(tx.TokenAddress)
	tx.UserAddress = strings.ToLower(tx.UserAddress)

	err := r.db.Insert(ctx, &tx)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrDuplicateTransaction
		}
		return fmt.Errorf("save transaction: %w", err)
	}
	return nil
}

// ListTransactions pages through the BUY and SELL rows of a token, newest first.
// page starts at 1.
func (r *Repository) ListTransactions(ctx context.Context, tokenAddress string, page, pageSize int) ([]Transaction, int64, error) {
	if page < 1 {
		page = 1
	}

	conditions := []db.Condition{
		{Expr: "token_address = ?", Args: []any{strings.ToLower(tokenAddress)}},
		{Expr: "type IN ?", Args: []any{tradeTypes}},
	}

	total, err := r.db.Count(ctx, &Transaction{}, db.Query{Conditions: conditions})
	if err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	transactions := []Transaction{}
	err = r.db.Find(ctx, db.Query{
		Conditions: conditions,
		OrderBy:    "created_at desc",
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
	}, &transactions)
	if err != nil {
		return nil, 0, fmt.Errorf("find transactions: %w", err)
	}

	return transactions, total, nil
}

// Stats aggregates the dashboard figures; volume counts trades created at or after since.
func (r *Repository) Stats(ctx context.Context, since time.Time) (Stats, error) {
	var (
		stats Stats
		err   error
	)

	stats.Tokens, err = r.db.Count(ctx, &Token{}, db.Query{})
	if err != nil {
		return Stats{}, fmt.Errorf("count tokens: %w", err)
	}

	stats.TotalMarketCap, err = r.db.Sum(ctx, &Token{}, "market_cap", db.Query{})
	if err != nil {
		return Stats{}, fmt.Errorf("sum market cap: %w", err)
	}

	stats.TVL, err = r.db.Sum(ctx, &Token{}, "tvl", db.Query{})
	if err != nil {
		return Stats{}, fmt.Errorf("sum tvl: %w", err)
	}

	stats.Volume24h, err = r.db.Sum(ctx, &Transaction{}, "value_usd", db.Query{
		Conditions: []db.Condition{
			{Expr: "type IN ?", Args: []any{tradeTypes}},
			{Expr: "created_at >= ?", Args: []any{since}},
		},
	})
	if err != nil {
		return Stats{}, fmt.Errorf("sum volume: %w", err)
	}

	stats.CreatorsRewards, err = r.db.Sum(ctx, &Transaction{}, "value_usd", db.Query{
		Conditions: []db.Condition{
			{Expr: "type = ?", Args: []any{string(TypeReward)}},
		},
	})
	if err != nil {
		return Stats{}, fmt.Errorf("sum rewards: %w", err)
	}

	return stats, nil
}
