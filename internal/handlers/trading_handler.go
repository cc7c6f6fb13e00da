package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "assetboard/internal/errors"
	"assetboard/internal/models"
	"assetboard/internal/services"
)

// TradingHandler handles trade execution requests.
type TradingHandler struct {
	tradingService services.TradingServicer
}

// NewTradingHandler creates a new TradingHandler.
func NewTradingHandler(tradingService services.TradingServicer) *TradingHandler {
	return &TradingHandler{tradingService: tradingService}
}

// TradeRequest represents the request payload for a buy or sell.
// The side defaults to the endpoint's operation when omitted; an explicit
// mismatching side is rejected.
type TradeRequest struct {
	PortfolioID string           `json:"portfolio_id" binding:"required,uuid"`
	AssetSymbol string           `json:"asset_symbol" binding:"required,asset_symbol"`
	Side        models.TradeSide `json:"type" binding:"omitempty,trade_side"`
	Quantity    int64            `json:"quantity" binding:"required,gt=0"`
	Price       decimal.Decimal  `json:"price" binding:"required"`
}

// toServiceRequest normalizes the boundary request: the symbol is trimmed
// and upper-cased before it reaches the validator.
func (r *TradeRequest) toServiceRequest(side models.TradeSide) services.TradeRequest {
	if r.Side != "" {
		side = r.Side
	}
	return services.TradeRequest{
		PortfolioID: strings.TrimSpace(r.PortfolioID),
		AssetSymbol: strings.ToUpper(strings.TrimSpace(r.AssetSymbol)),
		Side:        side,
		Quantity:    r.Quantity,
		Price:       r.Price,
	}
}

// Buy handles a buy order against a portfolio.
// @Summary     Buy an asset
// @Description Execute a buy trade: validates cash sufficiency, appends the transaction, and updates the portfolio cash
// @Tags        trading
// @Accept      json
// @Produce     json
// @Param       request body TradeRequest true "Trade details"
// @Success     201 {object} services.TradeResult "Executed trade"
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient cash"
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Failure     500 {object} ErrorResponse "Persistence failure"
// @Router      /trading/buy [post]
func (h *TradingHandler) Buy(c *gin.Context) {
	var req TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.tradingService.Buy(req.toServiceRequest(models.TradeSideBuy))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": result})
}

// Sell handles a sell order against a portfolio.
// @Summary     Sell an asset
// @Description Execute a sell trade: validates inventory sufficiency, appends the transaction, and updates the portfolio cash
// @Tags        trading
// @Accept      json
// @Produce     json
// @Param       request body TradeRequest true "Trade details"
// @Success     201 {object} services.TradeResult "Executed trade"
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient assets"
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Failure     500 {object} ErrorResponse "Persistence failure"
// @Router      /trading/sell [post]
func (h *TradingHandler) Sell(c *gin.Context) {
	var req TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.tradingService.Sell(req.toServiceRequest(models.TradeSideSell))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": result})
}
