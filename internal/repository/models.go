package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeBuy    TransactionType = "BUY"
	TypeSell   TransactionType = "SELL"
	TypeReward TransactionType = "REWARD"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TypeBuy, TypeSell, TypeReward:
		return true
	}
	return false
}

// Token addresses are stored lowercase.
type Token struct {
	ID        uint            `gorm:"primaryKey"`
	Address   string          `gorm:"size:42;uniqueIndex;not null"`
	Creator   string          `gorm:"size:42;index;not null"`
	TokenURI  string          `gorm:"type:text;not null"`
	TVL       decimal.Decimal `gorm:"column:tvl;type:numeric;not null;default:0"`
	MarketCap decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	CreatedAt time.Time       `gorm:"not null;index"`
	UpdatedAt time.Time
}

// Transaction rows are append only; TxHash is unique so a retried settlement cannot double count.
type Transaction struct {
	ID           uint            `gorm:"primaryKey"`
	TokenAddress string          `gorm:"size:42;index;not null"`
	UserAddress  string          `gorm:"size:42;index;not null"`
	Type         TransactionType `gorm:"size:10;index;not null"`
	Amount       decimal.Decimal `gorm:"type:numeric;not null"`
	ValueUSD     decimal.Decimal `gorm:"column:value_usd;type:numeric;not null"`
	TxHash       string          `gorm:"size:66;uniqueIndex;not null"`
	CreatedAt    time.Time       `gorm:"not null;index"`
}

type Stats struct {
	Tokens          int64
	TotalMarketCap  decimal.Decimal
	TVL             decimal.Decimal
	Volume24h       decimal.Decimal
	CreatorsRewards decimal.Decimal
}
