package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"assetboard/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    fmt.Sprintf("user%d@test.com", nextID()),
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestPortfolio creates a portfolio with the given cash balance.
func CreateTestPortfolio(t *testing.T, db *gorm.DB, cash decimal.Decimal) *models.Portfolio {
	t.Helper()

	portfolio := &models.Portfolio{
		Email: fmt.Sprintf("owner%d@test.com", nextID()),
		Cash:  cash,
	}
	if err := db.Create(portfolio).Error; err != nil {
		t.Fatalf("failed to create test portfolio: %v", err)
	}
	return portfolio
}

// CreateTestTransaction appends a transaction to a portfolio's ledger.
func CreateTestTransaction(t *testing.T, db *gorm.DB, portfolioID, symbol string, side models.TradeSide, quantity int64, price decimal.Decimal) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		PortfolioID: portfolioID,
		AssetSymbol: symbol,
		Side:        side,
		Quantity:    quantity,
		Price:       price,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}
