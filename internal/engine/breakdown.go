package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finlogix/finlogix/internal/domain"
)

// BreakdownEntry is one category's share of a total.
type BreakdownEntry struct {
	Category   domain.Category
	Amount     decimal.Decimal
	Percentage decimal.Decimal
}

// Breakdown converts per-category totals into a sorted,
// percentage-normalized breakdown against the sum of all supplied totals.
func Breakdown(totals map[domain.Category]decimal.Decimal) []BreakdownEntry {
	sum := decimal.Zero
	for _, amount := range totals {
		sum = sum.Add(amount)
	}
	return BreakdownWithTotal(totals, sum)
}

// BreakdownWithTotal is Breakdown with an explicit denominator. Percentages
// are rounded to 2 decimals and are 0 when total is not positive. Entries
// are ordered by amount descending; ties break by category declaration
// order, which keeps the output stable across runs.
func BreakdownWithTotal(totals map[domain.Category]decimal.Decimal, total decimal.Decimal) []BreakdownEntry {
	entries := make([]BreakdownEntry, 0, len(totals))
	for category, amount := range totals {
		entry := BreakdownEntry{
			Category:   category,
			Amount:     amount,
			Percentage: decimal.Zero,
		}
		if total.IsPositive() {
			entry.Percentage = amount.Div(total).Mul(hundred).Round(2)
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Amount.Equal(entries[j].Amount) {
			return entries[i].Amount.GreaterThan(entries[j].Amount)
		}
		return domain.CategoryOrder(entries[i].Category) < domain.CategoryOrder(entries[j].Category)
	})
	return entries
}
