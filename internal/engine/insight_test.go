package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finlogix/finlogix/internal/domain"
)

func TestSpendingTrendRuleWarning(t *testing.T) {
	// $4600 this month vs $3500 last month is a 31.43% increase.
	in := RuleInput{
		CurrentMonthIncome:   decimal.NewFromInt(5000),
		CurrentMonthExpense:  decimal.NewFromInt(4600),
		PreviousMonthExpense: decimal.NewFromInt(3500),
	}

	insights := EvaluateRules(in)

	require.NotEmpty(t, insights)
	assert.Equal(t, InsightWarning, insights[0].Kind)
	assert.Equal(t, "High Spending Alert", insights[0].Title)
	assert.Contains(t, insights[0].Message, "31.4")
}

func TestSpendingTrendRuleSuccess(t *testing.T) {
	in := RuleInput{
		CurrentMonthExpense:  decimal.NewFromInt(700),
		PreviousMonthExpense: decimal.NewFromInt(1000),
	}

	insights := EvaluateRules(in)

	require.Len(t, insights, 1)
	assert.Equal(t, InsightSuccess, insights[0].Kind)
	assert.Contains(t, insights[0].Message, "30.0")
}

func TestSpendingTrendRuleRequiresBaseline(t *testing.T) {
	in := RuleInput{
		CurrentMonthExpense:  decimal.NewFromInt(9999),
		PreviousMonthExpense: decimal.Zero,
	}

	assert.Empty(t, EvaluateRules(in))
}

func TestCategoryConcentrationRule(t *testing.T) {
	in := RuleInput{
		ExpenseBreakdown: Breakdown(map[domain.Category]decimal.Decimal{
			domain.CategoryFood:    decimal.NewFromInt(800),
			domain.CategoryTravel:  decimal.NewFromInt(150),
			domain.CategoryHousing: decimal.NewFromInt(50),
		}),
	}

	insights := EvaluateRules(in)

	require.Len(t, insights, 1)
	assert.Equal(t, InsightInfo, insights[0].Kind)
	assert.Equal(t, "Category Concentration", insights[0].Title)
	assert.Contains(t, insights[0].Message, "food")
	assert.Contains(t, insights[0].Message, "80.0")
}

func TestCategoryConcentrationRuleBelowThreshold(t *testing.T) {
	in := RuleInput{
		ExpenseBreakdown: Breakdown(map[domain.Category]decimal.Decimal{
			domain.CategoryFood:    decimal.NewFromInt(40),
			domain.CategoryTravel:  decimal.NewFromInt(30),
			domain.CategoryHousing: decimal.NewFromInt(30),
		}),
	}

	assert.Empty(t, EvaluateRules(in))
}

func TestExpenseRatioRule(t *testing.T) {
	tests := []struct {
		name    string
		income  int64
		expense int64
		want    InsightKind
		fires   bool
	}{
		{"high ratio", 1000, 950, InsightWarning, true},
		{"low ratio", 1000, 400, InsightSuccess, true},
		{"middle ratio", 1000, 750, "", false},
		{"no income", 0, 750, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := RuleInput{
				CurrentMonthIncome:  decimal.NewFromInt(tt.income),
				CurrentMonthExpense: decimal.NewFromInt(tt.expense),
			}

			insights := EvaluateRules(in)

			if !tt.fires {
				assert.Empty(t, insights)
				return
			}
			require.Len(t, insights, 1)
			assert.Equal(t, tt.want, insights[0].Kind)
		})
	}
}

func TestSmallTransactionRule(t *testing.T) {
	in := RuleInput{SmallExpenseCount: 25}

	insights := EvaluateRules(in)

	require.Len(t, insights, 1)
	assert.Equal(t, InsightInfo, insights[0].Kind)
	assert.Equal(t, "Frequent Small Purchases", insights[0].Title)
	assert.Contains(t, insights[0].Message, "25 small purchases")
}

func TestSmallTransactionRuleAtThreshold(t *testing.T) {
	in := RuleInput{SmallExpenseCount: 20}

	assert.Empty(t, EvaluateRules(in), "exactly 20 must not fire")
}

func TestRulesEvaluateInRegistrationOrder(t *testing.T) {
	// Inputs chosen so every rule fires at once.
	in := RuleInput{
		CurrentMonthIncome:   decimal.NewFromInt(1000),
		CurrentMonthExpense:  decimal.NewFromInt(950),
		PreviousMonthExpense: decimal.NewFromInt(500),
		ExpenseBreakdown: Breakdown(map[domain.Category]decimal.Decimal{
			domain.CategoryFood:   decimal.NewFromInt(900),
			domain.CategoryTravel: decimal.NewFromInt(50),
		}),
		SmallExpenseCount: 30,
	}

	insights := EvaluateRules(in)

	require.Len(t, insights, 4)
	assert.Equal(t, "High Spending Alert", insights[0].Title)
	assert.Equal(t, "Category Concentration", insights[1].Title)
	assert.Equal(t, "High Expense Ratio", insights[2].Title)
	assert.Equal(t, "Frequent Small Purchases", insights[3].Title)
}
