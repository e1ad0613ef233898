package engine

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finlogix/finlogix/internal/domain"
)

// headroomFactor gives categories 10% slack when the savings goal is
// already met.
var headroomFactor = decimal.RequireFromString("1.1")

// BudgetSuggestion recommends a per-category reduction.
type BudgetSuggestion struct {
	Category        domain.Category
	CurrentAverage  decimal.Decimal
	SuggestedBudget decimal.Decimal
	ReductionNeeded decimal.Decimal
	Message         string
}

// BudgetPlan is the planner's full output.
type BudgetPlan struct {
	TargetSavingsRate  decimal.Decimal
	TargetExpense      decimal.Decimal
	MeetingGoal        bool
	ReductionNeeded    decimal.Decimal // zero when the goal is already met
	CurrentSavingsRate decimal.Decimal // set only when the goal is met
	Overview           string
	Suggestions        []BudgetSuggestion
	CategoryBudgets    map[domain.Category]decimal.Decimal
}

// PlanBudget derives per-category budgets from trailing monthly averages
// and a target savings rate (a percentage of average monthly income).
//
// If average spend exceeds the target, each category's budget is its
// proportional share of the target and categories over budget get a
// reduction suggestion. Otherwise every category keeps its average plus 10%
// headroom. Zero average income yields a degenerate zero plan, never a
// division failure.
func PlanBudget(targetSavingsRate, avgMonthlyIncome, avgMonthlyExpense decimal.Decimal, categoryAverages map[domain.Category]decimal.Decimal) BudgetPlan {
	plan := BudgetPlan{
		TargetSavingsRate: targetSavingsRate,
		TargetExpense:     decimal.Zero,
		CategoryBudgets:   make(map[domain.Category]decimal.Decimal, len(categoryAverages)),
	}

	if !avgMonthlyIncome.IsPositive() {
		for category := range categoryAverages {
			plan.CategoryBudgets[category] = decimal.Zero
		}
		plan.Overview = "Not enough income history to plan a budget yet."
		return plan
	}

	plan.TargetExpense = avgMonthlyIncome.Mul(hundred.Sub(targetSavingsRate)).Div(hundred)

	if avgMonthlyExpense.GreaterThan(plan.TargetExpense) {
		plan.ReductionNeeded = avgMonthlyExpense.Sub(plan.TargetExpense)
		plan.Overview = fmt.Sprintf(
			"To achieve a %s%% savings rate, you need to reduce spending by $%s per month.",
			targetSavingsRate.StringFixed(0), plan.ReductionNeeded.StringFixed(2),
		)

		totalCategorySpend := decimal.Zero
		for _, avg := range categoryAverages {
			totalCategorySpend = totalCategorySpend.Add(avg)
		}

		for category, avg := range categoryAverages {
			suggested := decimal.Zero
			if totalCategorySpend.IsPositive() {
				proportion := avg.Div(totalCategorySpend)
				suggested = plan.TargetExpense.Mul(proportion)
			}
			plan.CategoryBudgets[category] = suggested

			if avg.GreaterThan(suggested) {
				reduction := avg.Sub(suggested)
				plan.Suggestions = append(plan.Suggestions, BudgetSuggestion{
					Category:        category,
					CurrentAverage:  avg,
					SuggestedBudget: suggested,
					ReductionNeeded: reduction,
					Message:         fmt.Sprintf("Consider reducing %s spending by $%s per month.", category, reduction.StringFixed(2)),
				})
			}
		}

		sort.Slice(plan.Suggestions, func(i, j int) bool {
			if !plan.Suggestions[i].ReductionNeeded.Equal(plan.Suggestions[j].ReductionNeeded) {
				return plan.Suggestions[i].ReductionNeeded.GreaterThan(plan.Suggestions[j].ReductionNeeded)
			}
			return domain.CategoryOrder(plan.Suggestions[i].Category) < domain.CategoryOrder(plan.Suggestions[j].Category)
		})
		return plan
	}

	plan.MeetingGoal = true
	plan.CurrentSavingsRate = avgMonthlyIncome.Sub(avgMonthlyExpense).Div(avgMonthlyIncome).Mul(hundred)
	plan.Overview = fmt.Sprintf(
		"Great job! You're already saving %s%% of your income.",
		plan.CurrentSavingsRate.StringFixed(1),
	)
	for category, avg := range categoryAverages {
		plan.CategoryBudgets[category] = avg.Mul(headroomFactor)
	}
	return plan
}
