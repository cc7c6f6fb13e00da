package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestTradeFlow_BuyThenSell(t *testing.T) {
	app := setupApp(t)
	portfolioID := app.createPortfolio(t, "trader@test.com", 1000)

	// Step 1: Buy 10 SYM at 50. Cash drops to 500.
	data := app.trade(t, "buy", portfolioID, "SYM", 10, 50)
	updated := data["portfolio_updated"].(map[string]interface{})
	if updated["cash_remaining"] != "500" {
		t.Errorf("expected cash 500 after buy, got %v", updated["cash_remaining"])
	}
	if updated["total_value"] != "1000" {
		t.Errorf("expected total value 1000 after buy, got %v", updated["total_value"])
	}

	// Step 2: Holdings show 10 units at average cost 50.
	rec := app.request("GET", fmt.Sprintf("/api/v1/portfolios/%s/holdings", portfolioID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	holdings := result["holdings"].([]interface{})
	if len(holdings) != 1 {
		t.Fatalf("expected 1 holding, got %d", len(holdings))
	}
	holding := holdings[0].(map[string]interface{})
	if holding["symbol"] != "SYM" || holding["quantity"].(float64) != 10 {
		t.Errorf("expected 10 SYM, got %v %v", holding["quantity"], holding["symbol"])
	}
	if holding["average_cost"] != "50" {
		t.Errorf("expected average cost 50, got %v", holding["average_cost"])
	}

	// Step 3: Sell 4 SYM at 70. Cash rises to 780; average cost stays 50.
	data = app.trade(t, "sell", portfolioID, "SYM", 4, 70)
	updated = data["portfolio_updated"].(map[string]interface{})
	if updated["cash_remaining"] != "780" {
		t.Errorf("expected cash 780 after sell, got %v", updated["cash_remaining"])
	}
	if updated["total_value"] != "1080" {
		t.Errorf("expected total value 1080 after sell, got %v", updated["total_value"])
	}

	rec = app.request("GET", fmt.Sprintf("/api/v1/portfolios/%s/holdings", portfolioID), "")
	result = parseJSON(t, rec)
	holding = result["holdings"].([]interface{})[0].(map[string]interface{})
	if holding["quantity"].(float64) != 6 {
		t.Errorf("expected 6 SYM remaining, got %v", holding["quantity"])
	}
	if holding["average_cost"] != "50" {
		t.Errorf("expected average cost still 50, got %v", holding["average_cost"])
	}

	// Step 4: The ledger holds both trades, newest first.
	rec = app.request("GET", fmt.Sprintf("/api/v1/portfolios/%s/transactions", portfolioID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	txResult := parseJSON(t, rec)
	if txResult["total_items"].(float64) != 2 {
		t.Fatalf("expected 2 transactions, got %v", txResult["total_items"])
	}
	txData := txResult["data"].([]interface{})
	newest := txData[0].(map[string]interface{})
	if newest["type"] != "sell" {
		t.Errorf("expected newest transaction to be the sell, got %v", newest["type"])
	}
}

func TestTradeFlow_InsufficientCash(t *testing.T) {
	app := setupApp(t)
	portfolioID := app.createPortfolio(t, "broke@test.com", 100)

	body := fmt.Sprintf(`{"portfolio_id":%q,"asset_symbol":"SYM","quantity":10,"price":50}`, portfolioID)
	rec := app.request("POST", "/api/v1/trading/buy", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	assertErrorCode(t, parseJSON(t, rec), "INSUFFICIENT_CASH")

	// Nothing was recorded.
	rec = app.request("GET", fmt.Sprintf("/api/v1/portfolios/%s/transactions", portfolioID), "")
	if parseJSON(t, rec)["total_items"].(float64) != 0 {
		t.Error("expected no transactions after a rejected buy")
	}
	rec = app.request("GET", "/api/v1/portfolios/"+portfolioID, "")
	portfolio := parseJSON(t, rec)["portfolio"].(map[string]interface{})
	if portfolio["cash"] != "100" {
		t.Errorf("expected cash unchanged at 100, got %v", portfolio["cash"])
	}
}

func TestTradeFlow_InsufficientAssets(t *testing.T) {
	app := setupApp(t)
	portfolioID := app.createPortfolio(t, "oversell@test.com", 1000)

	app.trade(t, "buy", portfolioID, "SYM", 3, 10)

	body := fmt.Sprintf(`{"portfolio_id":%q,"asset_symbol":"SYM","quantity":5,"price":10}`, portfolioID)
	rec := app.request("POST", "/api/v1/trading/sell", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	assertErrorCode(t, parseJSON(t, rec), "INSUFFICIENT_ASSETS")

	// Selling a symbol that was never bought is the same rejection.
	body = fmt.Sprintf(`{"portfolio_id":%q,"asset_symbol":"NVR","quantity":1,"price":10}`, portfolioID)
	rec = app.request("POST", "/api/v1/trading/sell", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	assertErrorCode(t, parseJSON(t, rec), "INSUFFICIENT_ASSETS")
}

func TestTradeFlow_UnknownPortfolio(t *testing.T) {
	app := setupApp(t)

	body := `{"portfolio_id":"0198f6a0-0000-7000-8000-00000000dead","asset_symbol":"SYM","quantity":1,"price":10}`
	rec := app.request("POST", "/api/v1/trading/buy", body)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
	assertErrorCode(t, parseJSON(t, rec), "PORTFOLIO_NOT_FOUND")
}

func TestTradeFlow_SellEverythingThenRebuy(t *testing.T) {
	app := setupApp(t)
	portfolioID := app.createPortfolio(t, "cycle@test.com", 1000)

	app.trade(t, "buy", portfolioID, "SYM", 5, 20)
	app.trade(t, "buy", portfolioID, "SYM", 5, 30)
	app.trade(t, "sell", portfolioID, "SYM", 10, 40)

	// Fully sold: holdings are empty.
	rec := app.request("GET", fmt.Sprintf("/api/v1/portfolios/%s/holdings", portfolioID), "")
	result := parseJSON(t, rec)
	if len(result["holdings"].([]interface{})) != 0 {
		t.Errorf("expected no holdings after full sell, got %v", result["holdings"])
	}

	// A rebuy starts a fresh cost basis unaffected by history.
	app.trade(t, "buy", portfolioID, "SYM", 2, 90)
	rec = app.request("GET", fmt.Sprintf("/api/v1/portfolios/%s/holdings", portfolioID), "")
	holding := parseJSON(t, rec)["holdings"].([]interface{})[0].(map[string]interface{})
	if holding["average_cost"] != "90" {
		t.Errorf("expected fresh average cost 90, got %v", holding["average_cost"])
	}
}

func TestTradeFlow_SymbolNormalization(t *testing.T) {
	app := setupApp(t)
	portfolioID := app.createPortfolio(t, "case@test.com", 1000)

	// Lowercase on the wire is the same position as uppercase.
	app.trade(t, "buy", portfolioID, "sym", 2, 10)
	app.trade(t, "buy", portfolioID, "SYM", 3, 10)

	rec := app.request("GET", fmt.Sprintf("/api/v1/portfolios/%s/holdings", portfolioID), "")
	holdings := parseJSON(t, rec)["holdings"].([]interface{})
	if len(holdings) != 1 {
		t.Fatalf("expected one merged holding, got %d", len(holdings))
	}
	if holdings[0].(map[string]interface{})["quantity"].(float64) != 5 {
		t.Errorf("expected merged quantity 5, got %v", holdings[0].(map[string]interface{})["quantity"])
	}
}
