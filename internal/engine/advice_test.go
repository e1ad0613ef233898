package engine

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finlogix/finlogix/internal/domain"
)

func TestPromptSummary(t *testing.T) {
	goal := decimal.NewFromInt(2000)
	in := AdviceInput{
		MonthlyIncome:  decimal.NewFromInt(5000),
		MonthlyExpense: decimal.NewFromInt(2500),
		BudgetGoal:     &goal,
		Breakdown: Breakdown(map[domain.Category]decimal.Decimal{
			domain.CategoryFood:   decimal.NewFromInt(2000),
			domain.CategoryTravel: decimal.NewFromInt(500),
		}),
		IncomeCount:  2,
		ExpenseCount: 40,
	}

	prompt := PromptSummary(in)

	assert.Contains(t, prompt, "$5000.00")
	assert.Contains(t, prompt, "$2500.00")
	assert.Contains(t, prompt, "budget goal: $2000.00")
	assert.Contains(t, prompt, "2 income, 40 expense")
	assert.Contains(t, prompt, "food: $2000.00 (80.0%)")
	assert.Contains(t, prompt, "Most spent on: food")
	assert.Contains(t, prompt, "3 bullet points")
}

func TestCleanAdviceLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "dashed bullets",
			text: "- Cook at home twice a week\n- Cancel unused subscriptions\n- Set a weekly cash limit",
			want: []string{"Cook at home twice a week", "Cancel unused subscriptions", "Set a weekly cash limit"},
		},
		{
			name: "numbered with preamble and blanks",
			text: "Here are some ideas:\n\n1. Track daily coffee spend\n2) Batch errands to save on transport\n",
			want: []string{"Here are some ideas:", "Track daily coffee spend", "Batch errands to save on transport"},
		},
		{
			name: "caps at three lines",
			text: "* one\n* two\n* three\n* four\n* five",
			want: []string{"one", "two", "three"},
		},
		{
			name: "empty response",
			text: "   \n\n  ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanAdviceLines(tt.text)

			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i], got[i])
			}
		})
	}
}

func TestFallbackAdviceHighRatio(t *testing.T) {
	in := AdviceInput{
		MonthlyIncome:  decimal.NewFromInt(1000),
		MonthlyExpense: decimal.NewFromInt(950),
	}

	advice := FallbackAdvice(in)

	require.NotEmpty(t, advice)
	assert.Contains(t, advice[0], "95.0%")
	assert.LessOrEqual(t, len(advice), MaxAdviceLines)
}

func TestFallbackAdvicePraise(t *testing.T) {
	in := AdviceInput{
		MonthlyIncome:  decimal.NewFromInt(1000),
		MonthlyExpense: decimal.NewFromInt(300),
	}

	advice := FallbackAdvice(in)

	require.NotEmpty(t, advice)
	assert.Contains(t, advice[0], "only 30.0%")
}

func TestFallbackAdviceBudgetOverrun(t *testing.T) {
	goal := decimal.NewFromInt(500)
	in := AdviceInput{
		MonthlyIncome:  decimal.NewFromInt(1000),
		MonthlyExpense: decimal.NewFromInt(700),
		BudgetGoal:     &goal,
	}

	advice := FallbackAdvice(in)

	found := false
	for _, a := range advice {
		if strings.Contains(a, "$200.00 over your monthly budget goal") {
			found = true
		}
	}
	assert.True(t, found, "expected budget overrun tip in %v", advice)
}

func TestFallbackAdviceGenericTip(t *testing.T) {
	advice := FallbackAdvice(AdviceInput{})

	require.Len(t, advice, 1)
	assert.Contains(t, advice[0], "savings target")
}

func TestFallbackAdviceNeverExceedsCap(t *testing.T) {
	goal := decimal.NewFromInt(100)
	in := AdviceInput{
		MonthlyIncome:  decimal.NewFromInt(1000),
		MonthlyExpense: decimal.NewFromInt(990),
		BudgetGoal:     &goal,
		Breakdown: Breakdown(map[domain.Category]decimal.Decimal{
			domain.CategoryFood:   decimal.NewFromInt(900),
			domain.CategoryTravel: decimal.NewFromInt(90),
		}),
	}

	advice := FallbackAdvice(in)

	assert.LessOrEqual(t, len(advice), MaxAdviceLines)
	assert.NotEmpty(t, advice)
}
