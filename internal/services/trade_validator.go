package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "assetboard/internal/errors"
	"assetboard/internal/models"
)

// validateTradeFields performs the write-free sanity checks on a trade
// request: required fields, value ranges, and that the request's side
// matches the operation being executed. Checks run in a fixed order and the
// first failure wins, so callers get deterministic error messages.
func validateTradeFields(req TradeRequest, want models.TradeSide) error {
	if strings.TrimSpace(req.PortfolioID) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Portfolio ID is required")
	}
	if strings.TrimSpace(req.AssetSymbol) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Asset symbol is required")
	}
	if req.Quantity <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Quantity must be a positive integer")
	}
	if !req.Price.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Price must be positive")
	}
	// Defends against mismatched call sites: a buy request must not carry a
	// sell side and vice versa.
	if req.Side != want {
		return apperrors.ErrInvalidTradeSide
	}
	return nil
}

// validateBuy checks cash sufficiency for a purchase.
func validateBuy(portfolio *models.Portfolio, total decimal.Decimal) error {
	if total.GreaterThan(portfolio.Cash) {
		return apperrors.WithMessage(apperrors.ErrInsufficientCash,
			fmt.Sprintf("Insufficient cash. Required: %s, Available: %s", total, portfolio.Cash))
	}
	return nil
}

// validateSell checks inventory sufficiency for a sale. A symbol that was
// never bought simply has an available quantity of zero.
func validateSell(holdings map[string]Holding, symbol string, quantity int64) error {
	available := holdings[symbol].Quantity
	if available < quantity {
		return apperrors.WithMessage(apperrors.ErrInsufficientAssets,
			fmt.Sprintf("Insufficient assets. Required: %d, Available: %d %s", quantity, available, symbol))
	}
	return nil
}
