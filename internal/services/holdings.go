package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"assetboard/internal/models"
)

// ComputeHoldings derives the current per-symbol positions from a
// portfolio's transaction history. The history must be in creation order;
// the result contains only symbols with strictly positive net quantity.
//
// Cost basis follows the weighted-average-cost method: a buy adds
// quantity x price to the running cost, a sell removes cost at the current
// average per unit rather than by any specific lot. The average cost of the
// remaining position is therefore unchanged by a sell.
//
// This is a pure function. Recomputing it from the same history always
// yields the same result, which is what makes the transaction log the
// single source of truth for positions.
func ComputeHoldings(history []models.Transaction) map[string]Holding {
	type position struct {
		quantity int64
		cost     decimal.Decimal
	}
	positions := make(map[string]position)

	for i := range history {
		tx := &history[i]
		pos := positions[tx.AssetSymbol]

		switch tx.Side {
		case models.TradeSideBuy:
			pos.quantity += tx.Quantity
			pos.cost = pos.cost.Add(tx.Total())
		case models.TradeSideSell:
			if pos.quantity > 0 {
				avgCost := pos.cost.Div(decimal.NewFromInt(pos.quantity))
				pos.cost = pos.cost.Sub(avgCost.Mul(decimal.NewFromInt(tx.Quantity)))
			}
			pos.quantity -= tx.Quantity
			if pos.quantity <= 0 {
				// A position sold down to nothing carries no residual cost.
				pos.cost = decimal.Zero
			}
		}

		positions[tx.AssetSymbol] = pos
	}

	holdings := make(map[string]Holding, len(positions))
	for symbol, pos := range positions {
		if pos.quantity <= 0 {
			continue
		}
		holdings[symbol] = Holding{
			Symbol:      symbol,
			Quantity:    pos.quantity,
			AverageCost: pos.cost.Div(decimal.NewFromInt(pos.quantity)),
		}
	}
	return holdings
}

// PortfolioTotalValue returns cash plus the value of all current holdings
// at their average cost.
func PortfolioTotalValue(cash decimal.Decimal, holdings map[string]Holding) decimal.Decimal {
	total := cash
	for _, h := range holdings {
		total = total.Add(h.AverageCost.Mul(decimal.NewFromInt(h.Quantity)))
	}
	return total
}

// SortedHoldings flattens a holdings map into a slice ordered by symbol for
// stable API responses.
func SortedHoldings(holdings map[string]Holding) []Holding {
	out := make([]Holding, 0, len(holdings))
	for _, h := range holdings {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}
