package engine

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finlogix/finlogix/internal/domain"
)

// MaxAdviceLines bounds every advice response, generated or fallback.
const MaxAdviceLines = 3

// Fallback thresholds. The praise cutoff is deliberately stricter than the
// insight engine's 60%.
var (
	adviceCautionRatio = decimal.NewFromInt(90)
	advicePraiseRatio  = decimal.NewFromInt(50)
)

// AdviceInput summarizes one month of activity for the advice composer.
type AdviceInput struct {
	MonthlyIncome  decimal.Decimal
	MonthlyExpense decimal.Decimal
	BudgetGoal     *decimal.Decimal
	Breakdown      []BreakdownEntry
	IncomeCount    int64
	ExpenseCount   int64
}

// TopExpenseCategory returns the largest expense category, or false when
// there is no spending data.
func (in AdviceInput) TopExpenseCategory() (domain.Category, bool) {
	if len(in.Breakdown) == 0 {
		return "", false
	}
	return in.Breakdown[0].Category, true
}

// PromptSummary renders the input as a prompt for the text-generation
// collaborator, requesting exactly three short bullet recommendations.
func PromptSummary(in AdviceInput) string {
	var b strings.Builder

	b.WriteString("You are a personal finance assistant. Based on this month's summary, ")
	b.WriteString("give exactly 3 short, practical, non-judgmental recommendations as plain bullet points.\n\n")

	fmt.Fprintf(&b, "Monthly income: $%s\n", in.MonthlyIncome.StringFixed(2))
	fmt.Fprintf(&b, "Monthly spending: $%s\n", in.MonthlyExpense.StringFixed(2))
	if in.BudgetGoal != nil {
		fmt.Fprintf(&b, "Monthly budget goal: $%s\n", in.BudgetGoal.StringFixed(2))
	}
	fmt.Fprintf(&b, "Transactions: %d income, %d expense\n", in.IncomeCount, in.ExpenseCount)

	if len(in.Breakdown) > 0 {
		b.WriteString("Spending by category:\n")
		for _, entry := range in.Breakdown {
			fmt.Fprintf(&b, "- %s: $%s (%s%%)\n", entry.Category, entry.Amount.StringFixed(2), entry.Percentage.StringFixed(1))
		}
		fmt.Fprintf(&b, "Most spent on: %s\n", in.Breakdown[0].Category)
	}

	b.WriteString("\nRespond with only the 3 bullet points, one per line, no preamble.")
	return b.String()
}

// CleanAdviceLines extracts up to MaxAdviceLines usable lines from a
// free-form model response, tolerating bullet and numbered list markers.
func CleanAdviceLines(text string) []string {
	out := make([]string, 0, MaxAdviceLines)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•")
		// Strip a leading "1." / "2)" style numbering.
		if len(line) >= 2 && line[0] >= '0' && line[0] <= '9' && (line[1] == '.' || line[1] == ')') {
			line = line[2:]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == MaxAdviceLines {
			break
		}
	}
	return out
}

// FallbackAdvice produces deterministic advice from the same inputs when
// the text-generation collaborator is unavailable. It returns between 1 and
// MaxAdviceLines strings and never fails.
func FallbackAdvice(in AdviceInput) []string {
	advice := make([]string, 0, MaxAdviceLines)

	if in.MonthlyIncome.IsPositive() {
		ratio := in.MonthlyExpense.Div(in.MonthlyIncome).Mul(hundred)
		switch {
		case ratio.GreaterThan(adviceCautionRatio):
			advice = append(advice, fmt.Sprintf(
				"You're spending %s%% of your income this month. Try setting aside a fixed amount as savings before spending.",
				ratio.StringFixed(1)))
		case ratio.LessThan(advicePraiseRatio):
			advice = append(advice, fmt.Sprintf(
				"You're spending only %s%% of your income. Consider putting the surplus to work in savings or investments.",
				ratio.StringFixed(1)))
		}
	}

	if top, ok := in.TopExpenseCategory(); ok {
		share := in.Breakdown[0].Percentage
		if share.GreaterThan(concentrationThreshold) && len(advice) < MaxAdviceLines {
			advice = append(advice, fmt.Sprintf(
				"%s makes up %s%% of your spending. Look for one recurring %s cost you could trim.",
				top, share.StringFixed(1), top))
		}
	}

	if in.BudgetGoal != nil && in.BudgetGoal.IsPositive() &&
		in.MonthlyExpense.GreaterThan(*in.BudgetGoal) && len(advice) < MaxAdviceLines {
		over := in.MonthlyExpense.Sub(*in.BudgetGoal)
		advice = append(advice, fmt.Sprintf(
			"You're $%s over your monthly budget goal. Reviewing this week's purchases could help close the gap.",
			over.StringFixed(2)))
	}

	if len(advice) == 0 {
		advice = append(advice,
			"Review your transactions once a week and set a small savings target for next month.")
	}
	return advice
}
