package models

import "github.com/shopspring/decimal"

// Portfolio represents a user's portfolio: a cash balance plus the
// transaction history recorded against it. Holdings are never stored on the
// portfolio; they are derived from the transaction history on demand so they
// can never drift from the ledger of record.
type Portfolio struct {
	Base
	Email string          `gorm:"not null;index" json:"email"`
	Cash  decimal.Decimal `gorm:"type:numeric;not null" json:"cash"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:PortfolioID" json:"transactions,omitempty"`
}
