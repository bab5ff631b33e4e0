// Package report computes display aggregates over categorized transactions.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerloom-dev/ledgerloom/internal/model"
)

// CategoryTotal is the summed debit spend for one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// DayTotal is the summed debit spend for one calendar date.
type DayTotal struct {
	Date  time.Time
	Total decimal.Decimal
}

// CreditSummary totals the credit side of a statement.
type CreditSummary struct {
	Total decimal.Decimal
	Count int
}

// ByCategory sums debit amounts per category, sorted descending by total.
// Ties keep first-seen category order.
func ByCategory(txns []model.Transaction) []CategoryTotal {
	totals := map[string]decimal.Decimal{}
	var order []string
	for _, txn := range txns {
		if txn.Direction != model.Debit {
			continue
		}
		if _, seen := totals[txn.Category]; !seen {
			order = append(order, txn.Category)
		}
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		out = append(out, CategoryTotal{Category: cat, Total: totals[cat]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

// ByDay sums debit amounts per calendar date, sorted ascending by date.
func ByDay(txns []model.Transaction) []DayTotal {
	totals := map[time.Time]decimal.Decimal{}
	for _, txn := range txns {
		if txn.Direction != model.Debit {
			continue
		}
		day := txn.Date.Truncate(24 * time.Hour)
		totals[day] = totals[day].Add(txn.Amount)
	}

	out := make([]DayTotal, 0, len(totals))
	for day, total := range totals {
		out = append(out, DayTotal{Date: day, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Credits returns the credit-side summary and the credit transactions in
// input order.
func Credits(txns []model.Transaction) (CreditSummary, []model.Transaction) {
	summary := CreditSummary{Total: decimal.Zero}
	var credits []model.Transaction
	for _, txn := range txns {
		if txn.Direction != model.Credit {
			continue
		}
		summary.Total = summary.Total.Add(txn.Amount)
		summary.Count++
		credits = append(credits, txn)
	}
	return summary, credits
}

// DebitTotal sums all debit amounts.
func DebitTotal(txns []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		if txn.Direction == model.Debit {
			total = total.Add(txn.Amount)
		}
	}
	return total
}
