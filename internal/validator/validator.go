// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"assetboard/internal/models"
)

// Asset symbols: 1-12 letters, digits, dots or dashes (covers tickers like
// BRK.B and crypto pairs like BTC-USD). Case-insensitive because handlers
// upper-case the symbol after binding.
var symbolRegex = regexp.MustCompile(`(?i)^[A-Z0-9.\-]{1,12}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("trade_side", validateTradeSide)
		_ = v.RegisterValidation("asset_symbol", validateAssetSymbol)
	}
}

func validateTradeSide(fl validator.FieldLevel) bool {
	switch models.TradeSide(fl.Field().String()) {
	case models.TradeSideBuy, models.TradeSideSell:
		return true
	}
	return false
}

func validateAssetSymbol(fl validator.FieldLevel) bool {
	return symbolRegex.MatchString(fl.Field().String())
}
