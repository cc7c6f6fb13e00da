package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"assetboard/internal/handlers"
	"assetboard/internal/logger"
	"assetboard/internal/middleware"
	"assetboard/internal/models"
	"assetboard/internal/repository"
	"assetboard/internal/services"
	"assetboard/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Portfolio{},
		&models.Transaction{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Persistence
	ledgerStore := repository.NewLedgerStore(db)

	// Services
	userService := services.NewUserService(db)
	portfolioService := services.NewPortfolioService(db, ledgerStore)
	tradingService := services.NewTradingService(ledgerStore)

	// Handlers
	userHandler := handlers.NewUserHandler(userService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	tradingHandler := handlers.NewTradingHandler(tradingService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	users := v1.Group("/users")
	users.POST("", userHandler.CreateUser)
	users.GET("", userHandler.ListUsers)
	users.GET("/:id", userHandler.GetUser)
	users.PUT("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser)

	portfolios := v1.Group("/portfolios")
	portfolios.POST("", portfolioHandler.CreatePortfolio)
	portfolios.GET("/:id", portfolioHandler.GetPortfolio)
	portfolios.GET("/:id/holdings", portfolioHandler.GetHoldings)
	portfolios.GET("/:id/transactions", portfolioHandler.GetTransactions)

	trading := v1.Group("/trading")
	trading.POST("/buy", tradingHandler.Buy)
	trading.POST("/sell", tradingHandler.Sell)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createPortfolio creates a portfolio over HTTP and returns its id.
func (app *testApp) createPortfolio(t *testing.T, email string, cash int64) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"cash":%d}`, email, cash)
	rec := app.request("POST", "/api/v1/portfolios", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create portfolio failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	portfolio := result["portfolio"].(map[string]interface{})
	return portfolio["id"].(string)
}

// trade executes a buy or sell over HTTP and fails the test on rejection.
func (app *testApp) trade(t *testing.T, side, portfolioID, symbol string, quantity, price int64) map[string]interface{} {
	t.Helper()
	body := fmt.Sprintf(`{"portfolio_id":%q,"asset_symbol":%q,"quantity":%d,"price":%d}`,
		portfolioID, symbol, quantity, price)
	rec := app.request("POST", "/api/v1/trading/"+side, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("%s failed: %d %s", side, rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["data"].(map[string]interface{})
}

// assertErrorCode checks for the structured error envelope.
func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
