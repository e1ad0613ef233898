package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finlogix/finlogix/internal/domain"
)

// Forecast scenario names, in the order they are always returned.
const (
	ScenarioCurrentTrend      = "Current Trend"
	ScenarioHistoricalAverage = "Historical Average"
	ScenarioConservative      = "Conservative"
)

// Confidence labels attached to forecast scenarios.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
)

// conservativeFactor pads the current trend by 20% for a budgeting buffer.
var conservativeFactor = decimal.RequireFromString("1.2")

// highConfidenceDays is the minimum days of month-to-date data before the
// current-trend scenario is labeled high confidence.
const highConfidenceDays = 7

// Scenario is one named projection of remaining-month spend.
type Scenario struct {
	Name               string
	Description        string
	ProjectedRemaining decimal.Decimal
	ProjectedTotal     decimal.Decimal
	Confidence         string
}

// Forecast projects spend for the remainder of the month under three fixed
// scenarios, always returned in order: Current Trend, Historical Average,
// Conservative.
func Forecast(monthToDateSpend decimal.Decimal, daysPassed, daysInMonth int, historicalDailyAverage decimal.Decimal) []Scenario {
	daysRemaining := daysInMonth - daysPassed
	if daysRemaining < 0 {
		daysRemaining = 0
	}
	remaining := decimal.NewFromInt(int64(daysRemaining))

	currentRate := decimal.Zero
	if daysPassed > 0 {
		currentRate = monthToDateSpend.Div(decimal.NewFromInt(int64(daysPassed)))
	}

	currentConfidence := ConfidenceMedium
	if daysPassed >= highConfidenceDays {
		currentConfidence = ConfidenceHigh
	}

	currentRemaining := currentRate.Mul(remaining)
	historicalRemaining := historicalDailyAverage.Mul(remaining)
	conservativeRemaining := currentRemaining.Mul(conservativeFactor)

	return []Scenario{
		{
			Name:               ScenarioCurrentTrend,
			Description:        "Based on your spending pattern this month",
			ProjectedRemaining: currentRemaining,
			ProjectedTotal:     monthToDateSpend.Add(currentRemaining),
			Confidence:         currentConfidence,
		},
		{
			Name:               ScenarioHistoricalAverage,
			Description:        "Based on your average daily spending over the last 3 months",
			ProjectedRemaining: historicalRemaining,
			ProjectedTotal:     monthToDateSpend.Add(historicalRemaining),
			Confidence:         ConfidenceMedium,
		},
		{
			Name:               ScenarioConservative,
			Description:        "20% higher than current trend (for budgeting buffer)",
			ProjectedRemaining: conservativeRemaining,
			ProjectedTotal:     monthToDateSpend.Add(conservativeRemaining),
			Confidence:         ConfidenceHigh,
		},
	}
}

// CategoryForecast projects one expense category independently.
type CategoryForecast struct {
	Category           domain.Category
	CurrentSpending    decimal.Decimal
	ProjectedRemaining decimal.Decimal
	ProjectedTotal     decimal.Decimal
}

// ForecastByCategory projects each category at its own month-to-date daily
// rate. The per-category totals are not reconciled against the aggregate
// forecast; each projection stands alone.
func ForecastByCategory(categoryTotals map[domain.Category]decimal.Decimal, daysPassed, daysInMonth int) []CategoryForecast {
	daysRemaining := daysInMonth - daysPassed
	if daysRemaining < 0 {
		daysRemaining = 0
	}
	remaining := decimal.NewFromInt(int64(daysRemaining))

	out := make([]CategoryForecast, 0, len(categoryTotals))
	for category, spent := range categoryTotals {
		rate := decimal.Zero
		if daysPassed > 0 {
			rate = spent.Div(decimal.NewFromInt(int64(daysPassed)))
		}
		projected := rate.Mul(remaining)
		out = append(out, CategoryForecast{
			Category:           category,
			CurrentSpending:    spent,
			ProjectedRemaining: projected,
			ProjectedTotal:     spent.Add(projected),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CurrentSpending.Equal(out[j].CurrentSpending) {
			return out[i].CurrentSpending.GreaterThan(out[j].CurrentSpending)
		}
		return domain.CategoryOrder(out[i].Category) < domain.CategoryOrder(out[j].Category)
	})
	return out
}
