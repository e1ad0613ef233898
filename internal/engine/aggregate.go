// Package engine implements the financial analytics core: aggregates,
// trend comparisons, category breakdowns, spend forecasts, heuristic
// insights, budget planning, and advice composition.
//
// Every function is a pure computation over a snapshot of ledger data.
// Currency math stays on decimal.Decimal end to end; callers convert to
// floats only at the presentation edge.
package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finlogix/finlogix/internal/domain"
)

// Aggregate is a scalar summary over a filtered transaction set. An empty
// set yields the zero Aggregate, never an error.
type Aggregate struct {
	Sum     decimal.Decimal
	Count   int64
	Average decimal.Decimal
}

// NewAggregate builds an Aggregate from a sum and count, deriving the
// average. A zero count yields a zero average.
func NewAggregate(sum decimal.Decimal, count int64) Aggregate {
	agg := Aggregate{Sum: sum, Count: count, Average: decimal.Zero}
	if count > 0 {
		agg.Average = sum.Div(decimal.NewFromInt(count))
	}
	return agg
}

// Summarize computes sum, count, and average over records.
func Summarize(records []*domain.Transaction) Aggregate {
	sum := decimal.Zero
	for _, r := range records {
		sum = sum.Add(r.Amount)
	}
	return NewAggregate(sum, int64(len(records)))
}

// SummarizeByCategory groups records by category and summarizes each group.
func SummarizeByCategory(records []*domain.Transaction) map[domain.Category]Aggregate {
	sums := make(map[domain.Category]decimal.Decimal)
	counts := make(map[domain.Category]int64)
	for _, r := range records {
		sums[r.Category] = sums[r.Category].Add(r.Amount)
		counts[r.Category]++
	}

	out := make(map[domain.Category]Aggregate, len(sums))
	for c, sum := range sums {
		out[c] = NewAggregate(sum, counts[c])
	}
	return out
}

// MonthFlow is one pre-aggregated (month, kind) total, as returned by the
// ledger store's monthly rollup.
type MonthFlow struct {
	Month time.Month
	Kind  domain.Kind
	Total decimal.Decimal
}

// MonthSlot is one row of the fixed-size monthly trends table.
type MonthSlot struct {
	Month     time.Month
	MonthName string
	Income    decimal.Decimal
	Expenses  decimal.Decimal
	Balance   decimal.Decimal
}

// MonthlyTable spreads per-month totals over exactly 12 slots, January
// through December. Months with no data report zero, not absence; this is a
// fixed-size presentation contract regardless of data sparsity.
func MonthlyTable(flows []MonthFlow) []MonthSlot {
	slots := make([]MonthSlot, 12)
	for i := range slots {
		m := time.Month(i + 1)
		slots[i] = MonthSlot{
			Month:     m,
			MonthName: m.String(),
			Income:    decimal.Zero,
			Expenses:  decimal.Zero,
		}
	}

	for _, f := range flows {
		if f.Month < time.January || f.Month > time.December {
			continue
		}
		slot := &slots[f.Month-1]
		switch f.Kind {
		case domain.KindIncome:
			slot.Income = slot.Income.Add(f.Total)
		case domain.KindExpense:
			slot.Expenses = slot.Expenses.Add(f.Total)
		}
	}

	for i := range slots {
		slots[i].Balance = slots[i].Income.Sub(slots[i].Expenses)
	}
	return slots
}
