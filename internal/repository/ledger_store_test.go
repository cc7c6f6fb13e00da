package repository

import (
	"testing"

	"github.com/shopspring/decimal"

	"assetboard/internal/models"
	"assetboard/internal/testutil"
	"assetboard/internal/uuid"
)

func TestGetPortfolio(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	store := NewLedgerStore(db)

	t.Run("found", func(t *testing.T) {
		created := testutil.CreateTestPortfolio(t, db, decimal.NewFromInt(300))

		p, err := store.GetPortfolio(created.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, decimal.NewFromInt(300), p.Cash, "cash")
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := store.GetPortfolio(uuid.New())
		testutil.AssertAppError(t, err, "PORTFOLIO_NOT_FOUND")
	})
}

func TestUpdatePortfolioCash(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	store := NewLedgerStore(db)

	t.Run("success", func(t *testing.T) {
		created := testutil.CreateTestPortfolio(t, db, decimal.NewFromInt(1000))

		p, err := store.UpdatePortfolioCash(created.ID, decimal.NewFromInt(640))
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, decimal.NewFromInt(640), p.Cash, "cash")

		reloaded, err := store.GetPortfolio(created.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, decimal.NewFromInt(640), reloaded.Cash, "reloaded cash")
	})

	t.Run("not_found", func(t *testing.T) {
		_, err := store.UpdatePortfolioCash(uuid.New(), decimal.NewFromInt(1))
		testutil.AssertAppError(t, err, "PORTFOLIO_NOT_FOUND")
	})
}

func TestAppendTransaction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	store := NewLedgerStore(db)

	p := testutil.CreateTestPortfolio(t, db, decimal.NewFromInt(1000))

	created, err := store.AppendTransaction(&models.Transaction{
		PortfolioID: p.ID,
		AssetSymbol: "SYM",
		Side:        models.TradeSideBuy,
		Quantity:    10,
		Price:       decimal.NewFromInt(50),
	})
	testutil.AssertNoError(t, err)
	if created.ID == "" {
		t.Error("expected an id to be assigned on create")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected a creation timestamp")
	}
}

func TestListTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	store := NewLedgerStore(db)

	t.Run("returns_creation_order", func(t *testing.T) {
		p := testutil.CreateTestPortfolio(t, db, decimal.NewFromInt(1000))
		for i := int64(1); i <= 4; i++ {
			testutil.CreateTestTransaction(t, db, p.ID, "SYM", models.TradeSideBuy, i, decimal.NewFromInt(10))
		}

		history, err := store.ListTransactions(p.ID)
		testutil.AssertNoError(t, err)

		if len(history) != 4 {
			t.Fatalf("expected 4 transactions, got %d", len(history))
		}
		for i, tx := range history {
			if tx.Quantity != int64(i+1) {
				t.Errorf("expected quantity %d at position %d, got %d", i+1, i, tx.Quantity)
			}
		}
	})

	t.Run("scoped_to_portfolio", func(t *testing.T) {
		a := testutil.CreateTestPortfolio(t, db, decimal.NewFromInt(1000))
		b := testutil.CreateTestPortfolio(t, db, decimal.NewFromInt(1000))
		testutil.CreateTestTransaction(t, db, a.ID, "AAA", models.TradeSideBuy, 1, decimal.NewFromInt(10))
		testutil.CreateTestTransaction(t, db, b.ID, "BBB", models.TradeSideBuy, 2, decimal.NewFromInt(20))

		history, err := store.ListTransactions(a.ID)
		testutil.AssertNoError(t, err)
		if len(history) != 1 || history[0].AssetSymbol != "AAA" {
			t.Errorf("expected only portfolio a's transactions, got %+v", history)
		}
	})

	t.Run("empty_history", func(t *testing.T) {
		p := testutil.CreateTestPortfolio(t, db, decimal.NewFromInt(1000))

		history, err := store.ListTransactions(p.ID)
		testutil.AssertNoError(t, err)
		if len(history) != 0 {
			t.Errorf("expected no transactions, got %d", len(history))
		}
	})
}
