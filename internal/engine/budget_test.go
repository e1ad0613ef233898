package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finlogix/finlogix/internal/domain"
)

func TestPlanBudgetReductionPath(t *testing.T) {
	// income 4000, target rate 20% -> target expense 3200; spend 3600.
	categoryAverages := map[domain.Category]decimal.Decimal{
		domain.CategoryFood:    decimal.NewFromInt(1800),
		domain.CategoryHousing: decimal.NewFromInt(1200),
		domain.CategoryTravel:  decimal.NewFromInt(600),
	}

	plan := PlanBudget(
		decimal.NewFromInt(20),
		decimal.NewFromInt(4000),
		decimal.NewFromInt(3600),
		categoryAverages,
	)

	assert.False(t, plan.MeetingGoal)
	assert.True(t, plan.TargetExpense.Equal(decimal.NewFromInt(3200)), "target expense = %s", plan.TargetExpense)
	assert.True(t, plan.ReductionNeeded.Equal(decimal.NewFromInt(400)), "reduction = %s", plan.ReductionNeeded)

	// Budgets are proportional shares of the target: 1800/3600 * 3200 = 1600.
	assert.True(t, plan.CategoryBudgets[domain.CategoryFood].Equal(decimal.NewFromInt(1600)))
	assert.True(t, plan.CategoryBudgets[domain.CategoryHousing].Equal(decimal.RequireFromString("1066.6666666666666667")))

	// Every category spends above its proportional share here, so every
	// category gets a reduction suggestion.
	require.Len(t, plan.Suggestions, 3)
	assert.Equal(t, domain.CategoryFood, plan.Suggestions[0].Category)
	assert.True(t, plan.Suggestions[0].ReductionNeeded.Equal(decimal.NewFromInt(200)))
	for _, s := range plan.Suggestions {
		assert.True(t, s.ReductionNeeded.Equal(s.CurrentAverage.Sub(s.SuggestedBudget)))
		assert.True(t, s.ReductionNeeded.IsPositive())
	}
}

func TestPlanBudgetMeetingGoal(t *testing.T) {
	categoryAverages := map[domain.Category]decimal.Decimal{
		domain.CategoryFood:   decimal.NewFromInt(500),
		domain.CategoryTravel: decimal.NewFromInt(100),
	}

	plan := PlanBudget(
		decimal.NewFromInt(20),
		decimal.NewFromInt(4000),
		decimal.NewFromInt(2000),
		categoryAverages,
	)

	assert.True(t, plan.MeetingGoal)
	assert.Empty(t, plan.Suggestions)
	assert.True(t, plan.CurrentSavingsRate.Equal(decimal.NewFromInt(50)), "savings rate = %s", plan.CurrentSavingsRate)

	// Each budget is the category average plus 10% headroom.
	for category, avg := range categoryAverages {
		want := avg.Mul(decimal.RequireFromString("1.1"))
		assert.True(t, plan.CategoryBudgets[category].Equal(want),
			"%s budget = %s, want %s", category, plan.CategoryBudgets[category], want)
	}
}

func TestPlanBudgetZeroIncome(t *testing.T) {
	categoryAverages := map[domain.Category]decimal.Decimal{
		domain.CategoryFood: decimal.NewFromInt(300),
	}

	var plan BudgetPlan
	assert.NotPanics(t, func() {
		plan = PlanBudget(decimal.NewFromInt(20), decimal.Zero, decimal.NewFromInt(300), categoryAverages)
	})

	assert.False(t, plan.MeetingGoal)
	assert.True(t, plan.TargetExpense.IsZero())
	assert.True(t, plan.ReductionNeeded.IsZero())
	assert.Empty(t, plan.Suggestions)
	assert.True(t, plan.CategoryBudgets[domain.CategoryFood].IsZero())
}

func TestPlanBudgetZeroCategorySpend(t *testing.T) {
	plan := PlanBudget(
		decimal.NewFromInt(50),
		decimal.NewFromInt(1000),
		decimal.NewFromInt(800),
		map[domain.Category]decimal.Decimal{},
	)

	assert.False(t, plan.MeetingGoal)
	assert.True(t, plan.ReductionNeeded.Equal(decimal.NewFromInt(300)))
	assert.Empty(t, plan.Suggestions)
}
