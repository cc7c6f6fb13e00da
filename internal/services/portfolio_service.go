package services

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "assetboard/internal/errors"
	"assetboard/internal/models"
	"assetboard/internal/pagination"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// portfolioService handles portfolio-related business logic.
type portfolioService struct {
	db    *gorm.DB
	store LedgerStore
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(db *gorm.DB, store LedgerStore) PortfolioServicer {
	return &portfolioService{db: db, store: store}
}

// CreatePortfolio creates a portfolio with an initial cash balance.
func (s *portfolioService) CreatePortfolio(email string, cash decimal.Decimal) (*models.Portfolio, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Email is required and cannot be empty")
	}
	if !emailRegex.MatchString(email) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid email format")
	}
	if cash.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Cash must be a non-negative number")
	}

	portfolio := &models.Portfolio{
		Email: email,
		Cash:  cash,
	}
	if err := s.db.Create(portfolio).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	return portfolio, nil
}

// GetPortfolioByID retrieves a portfolio by id.
func (s *portfolioService) GetPortfolioByID(id string) (*models.Portfolio, error) {
	return s.store.GetPortfolio(id)
}

// GetPortfolioView returns the portfolio together with its derived holdings
// and total value. Holdings are recomputed from the full transaction
// history on every call; the ledger is the only source of truth.
func (s *portfolioService) GetPortfolioView(id string) (*PortfolioView, error) {
	portfolio, err := s.store.GetPortfolio(id)
	if err != nil {
		return nil, err
	}

	history, err := s.store.ListTransactions(id)
	if err != nil {
		return nil, err
	}
	holdings := ComputeHoldings(history)

	return &PortfolioView{
		Portfolio:  portfolio,
		Holdings:   SortedHoldings(holdings),
		TotalValue: PortfolioTotalValue(portfolio.Cash, holdings),
	}, nil
}

// GetPortfolioTransactions returns a paginated transaction history, newest
// first.
func (s *portfolioService) GetPortfolioTransactions(id string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if _, err := s.store.GetPortfolio(id); err != nil {
		return nil, err
	}

	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("portfolio_id = ?", id)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}

	var transactions []models.Transaction
	if err := base.Order("created_at DESC, id DESC").
		Scopes(pagination.Paginate(page)).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}
