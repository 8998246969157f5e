package repository

import (
	"context"

	"moonpump/internal/db"

	"github.com/shopspring/decimal"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Insert(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	Find(ctx context.Context, q db.Query, entity any) error
	Count(ctx context.Context, model any, q db.Query) (int64, error)
	Sum(ctx context.Context, model any, column string, q db.Query) (decimal.Decimal, error)
	Pluck(ctx context.Context, model any, column string, dest any) error
	UpdateBy(ctx context.Context, model any, column string, value any, updates map[string]any) error
}
