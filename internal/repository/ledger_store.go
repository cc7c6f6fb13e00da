// Package repository provides the GORM-backed implementation of the
// persistence interfaces consumed by the service layer.
package repository

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "assetboard/internal/errors"
	"assetboard/internal/models"
	"assetboard/internal/services"
)

// ledgerStore implements services.LedgerStore on a relational database.
type ledgerStore struct {
	db *gorm.DB
}

// NewLedgerStore creates a LedgerStore backed by the given database.
func NewLedgerStore(db *gorm.DB) services.LedgerStore {
	return &ledgerStore{db: db}
}

// GetPortfolio looks a portfolio up by id.
func (s *ledgerStore) GetPortfolio(id string) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := s.db.Where("id = ?", id).First(&portfolio).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPortfolioNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	return &portfolio, nil
}

// UpdatePortfolioCash writes a new cash balance onto the portfolio record
// and returns the updated portfolio.
func (s *ledgerStore) UpdatePortfolioCash(id string, cash decimal.Decimal) (*models.Portfolio, error) {
	res := s.db.Model(&models.Portfolio{}).Where("id = ?", id).Update("cash", cash)
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrPortfolioNotFound
	}
	return s.GetPortfolio(id)
}

// AppendTransaction adds an immutable record to the ledger.
func (s *ledgerStore) AppendTransaction(transaction *models.Transaction) (*models.Transaction, error) {
	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	return transaction, nil
}

// ListTransactions returns the full transaction history for a portfolio in
// creation order. The id tiebreak is exact because ids are time-ordered
// UUIDv7 values that are never reused.
func (s *ledgerStore) ListTransactions(portfolioID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("portfolio_id = ?", portfolioID).
		Order("created_at ASC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	return transactions, nil
}
