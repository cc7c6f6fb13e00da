package models

import "github.com/shopspring/decimal"

// TradeSide represents the direction of a trade.
type TradeSide string

const (
	TradeSideBuy  TradeSide = "buy"
	TradeSideSell TradeSide = "sell"
)

// Transaction is one entry in the append-only trading ledger. Records are
// immutable once created: never updated, never deleted. IDs are UUIDv7, so
// id order equals creation order and ties cannot occur.
type Transaction struct {
	Base
	PortfolioID string          `gorm:"type:uuid;not null;index" json:"portfolio_id"`
	AssetSymbol string          `gorm:"not null" json:"asset_symbol"`
	Side        TradeSide       `gorm:"not null" json:"type"`
	Quantity    int64           `gorm:"type:bigint;not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:numeric;not null" json:"price"`

	// Relationships
	Portfolio Portfolio `gorm:"foreignKey:PortfolioID" json:"-"`
}

// Total returns the cash value of the transaction (quantity x unit price).
func (t *Transaction) Total() decimal.Decimal {
	return t.Price.Mul(decimal.NewFromInt(t.Quantity))
}
