package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")

const uniqueViolation = "23505"

// Condition is a single WHERE fragment with its bind arguments.
type Condition struct {
	Expr string
	Args []any
}

// Query narrows Find, Count and Sum. Zero values mean "no restriction".
type Query struct {
	Conditions []Condition
	OrderBy    string
	Offset     int
	Limit      int
}

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Insert creates a single record. Unique constraint violations are reported as ErrDuplicate.
func (f *PostgresDB) Insert(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("insert to table: %w", ErrDuplicate)
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) Find(ctx context.Context, q Query, entity any) error {
	tx := scoped(f.DB.WithContext(ctx), q)
	if q.OrderBy != "" {
		tx = tx.Order(q.OrderBy)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}

	if err := tx.Find(entity).Error; err != nil {
		return fmt.Errorf("find records: %w", err)
	}
	return nil
}

func (f *PostgresDB) Count(ctx context.Context, model any, q Query) (int64, error) {
	var count int64
	tx := scoped(f.DB.WithContext(ctx).Model(model), q)
	if err := tx.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

// Sum adds up a numeric column; an empty selection sums to zero.
func (f *PostgresDB) Sum(ctx context.Context, model any, column string, q Query) (decimal.Decimal, error) {
	var total decimal.Decimal
	tx := scoped(f.DB.WithContext(ctx).Model(model), q).
		Select(fmt.Sprintf("COALESCE(SUM(%s), 0)", column))

	row := tx.Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum %q: %w", column, err)
	}
	return total, nil
}

func (f *PostgresDB) Pluck(ctx context.Context, model any, column string, dest any) error {
	if err := f.DB.WithContext(ctx).Model(model).Pluck(column, dest).Error; err != nil {
		return fmt.Errorf("pluck %q: %w", column, err)
	}
	return nil
}

// UpdateBy updates the given columns of the rows where column equals value.
func (f *PostgresDB) UpdateBy(ctx context.Context, model any, column string, value any, updates map[string]any) error {
	tx := f.DB.WithContext(ctx).Model(model).Where(fmt.Sprintf("%s = ?", column), value).Updates(updates)
	if tx.Error != nil {
		return fmt.Errorf("update records by %q: %w", column, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func scoped(tx *gorm.DB, q Query) *gorm.DB {
	for _, c := range q.Conditions {
		tx = tx.Where(c.Expr, c.Args...)
	}
	return tx
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
