package services

import (
	"github.com/shopspring/decimal"

	"assetboard/internal/models"
	"assetboard/internal/pagination"
)

// LedgerStore is the entire persistence surface the trading ledger requires.
// Any keyed store that satisfies these four operations is interchangeable;
// the GORM implementation lives in internal/repository.
// ListTransactions must return records in creation order.
type LedgerStore interface {
	GetPortfolio(id string) (*models.Portfolio, error)
	UpdatePortfolioCash(id string, cash decimal.Decimal) (*models.Portfolio, error)
	AppendTransaction(transaction *models.Transaction) (*models.Transaction, error)
	ListTransactions(portfolioID string) ([]models.Transaction, error)
}

// Holding is the derived current position for one symbol within one
// portfolio. It is recomputed from the transaction history on demand and
// never persisted.
type Holding struct {
	Symbol      string          `json:"symbol"`
	Quantity    int64           `json:"quantity"`
	AverageCost decimal.Decimal `json:"average_cost"`
}

// TradeRequest holds the parameters of a proposed buy or sell.
type TradeRequest struct {
	PortfolioID string
	AssetSymbol string
	Side        models.TradeSide
	Quantity    int64
	Price       decimal.Decimal
}

// PortfolioUpdate is the post-trade snapshot of the mutated portfolio.
type PortfolioUpdate struct {
	ID            string          `json:"id"`
	CashRemaining decimal.Decimal `json:"cash_remaining"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// TradeResult is returned by a successfully executed trade.
type TradeResult struct {
	Transaction      *models.Transaction `json:"transaction"`
	PortfolioUpdated PortfolioUpdate     `json:"portfolio_updated"`
}

// TradingServicer defines the contract for executing trades against a
// portfolio's ledger.
type TradingServicer interface {
	Buy(req TradeRequest) (*TradeResult, error)
	Sell(req TradeRequest) (*TradeResult, error)
}

// PortfolioView is a portfolio together with its derived positions.
type PortfolioView struct {
	Portfolio  *models.Portfolio `json:"portfolio"`
	Holdings   []Holding         `json:"holdings"`
	TotalValue decimal.Decimal   `json:"total_value"`
}

// PortfolioServicer defines the contract for portfolio-related business logic.
type PortfolioServicer interface {
	CreatePortfolio(email string, cash decimal.Decimal) (*models.Portfolio, error)
	GetPortfolioByID(id string) (*models.Portfolio, error)
	GetPortfolioView(id string) (*PortfolioView, error)
	GetPortfolioTransactions(id string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	ListUsers(page pagination.PageRequest) (*pagination.PageResponse[models.User], error)
	UpdateUser(id, email, password string) (*models.User, error)
	DeleteUser(id string) error
}
