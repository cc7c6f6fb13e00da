package services

import (
	"sync"

	"github.com/shopspring/decimal"

	"assetboard/internal/models"
)

// tradingService validates and executes trades against portfolio ledgers.
type tradingService struct {
	store LedgerStore

	// One mutex per portfolio id. Without this, two concurrent sells could
	// both pass inventory validation against the same stale holdings
	// snapshot and overdraw the position.
	locks sync.Map
}

// NewTradingService creates a new TradingServicer on top of the given store.
func NewTradingService(store LedgerStore) TradingServicer {
	return &tradingService{store: store}
}

// Buy executes a purchase: cash decreases, the position grows.
func (s *tradingService) Buy(req TradeRequest) (*TradeResult, error) {
	return s.execute(req, models.TradeSideBuy)
}

// Sell executes a sale: cash increases, the position shrinks.
func (s *tradingService) Sell(req TradeRequest) (*TradeResult, error) {
	return s.execute(req, models.TradeSideSell)
}

// execute runs a trade as one logical unit: validate, append the
// transaction, update the portfolio cash, and return a fresh snapshot.
//
// The transaction record is written before the cash update. Every derived
// quantity can be recomputed by replaying the ledger; cash is the only field
// that cannot, so its write is the one that must not be skipped or
// duplicated. If the cash update fails after the append, the error is
// surfaced as a persistence failure and holdings are ahead of cash until
// the caller reconciles.
func (s *tradingService) execute(req TradeRequest, want models.TradeSide) (*TradeResult, error) {
	if err := validateTradeFields(req, want); err != nil {
		return nil, err
	}

	mu := s.lockFor(req.PortfolioID)
	mu.Lock()
	defer mu.Unlock()

	portfolio, err := s.store.GetPortfolio(req.PortfolioID)
	if err != nil {
		return nil, err
	}

	total := req.Price.Mul(decimal.NewFromInt(req.Quantity))

	var newCash decimal.Decimal
	switch want {
	case models.TradeSideBuy:
		if err := validateBuy(portfolio, total); err != nil {
			return nil, err
		}
		newCash = portfolio.Cash.Sub(total)
	case models.TradeSideSell:
		history, err := s.store.ListTransactions(req.PortfolioID)
		if err != nil {
			return nil, err
		}
		if err := validateSell(ComputeHoldings(history), req.AssetSymbol, req.Quantity); err != nil {
			return nil, err
		}
		newCash = portfolio.Cash.Add(total)
	}

	transaction, err := s.store.AppendTransaction(&models.Transaction{
		PortfolioID: req.PortfolioID,
		AssetSymbol: req.AssetSymbol,
		Side:        want,
		Quantity:    req.Quantity,
		Price:       req.Price,
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.store.UpdatePortfolioCash(req.PortfolioID, newCash)
	if err != nil {
		return nil, err
	}

	history, err := s.store.ListTransactions(req.PortfolioID)
	if err != nil {
		return nil, err
	}
	holdings := ComputeHoldings(history)

	return &TradeResult{
		Transaction: transaction,
		PortfolioUpdated: PortfolioUpdate{
			ID:            updated.ID,
			CashRemaining: updated.Cash,
			TotalValue:    PortfolioTotalValue(updated.Cash, holdings),
		},
	}, nil
}

// lockFor returns the mutex owning the given portfolio id.
func (s *tradingService) lockFor(portfolioID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(portfolioID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
