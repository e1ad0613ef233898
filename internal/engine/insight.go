package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InsightKind classifies an insight's tone.
type InsightKind string

const (
	InsightWarning InsightKind = "warning"
	InsightSuccess InsightKind = "success"
	InsightInfo    InsightKind = "info"
)

// Insight is a short, rule-triggered observation about the user's finances.
type Insight struct {
	Kind           InsightKind
	Title          string
	Message        string
	Recommendation string
}

// RuleInput carries the pre-computed aggregates a rule may inspect. Rules
// never fetch data themselves.
type RuleInput struct {
	CurrentMonthIncome   decimal.Decimal
	CurrentMonthExpense  decimal.Decimal
	PreviousMonthExpense decimal.Decimal

	// ExpenseBreakdown is the current month's expense breakdown, sorted
	// largest first.
	ExpenseBreakdown []BreakdownEntry

	// SmallExpenseCount is the number of current-month expense
	// transactions under the small-purchase threshold.
	SmallExpenseCount int64
}

// Rule is one independent heuristic: it inspects the input and either emits
// an insight or stays silent. Rules must be pure.
type Rule struct {
	Name     string
	Evaluate func(RuleInput) *Insight
}

// Rule thresholds.
var (
	trendThreshold         = decimal.NewFromInt(20) // percent change either way
	concentrationThreshold = decimal.NewFromInt(40) // percent of total expense
	highExpenseRatio       = decimal.NewFromInt(90) // percent of income
	lowExpenseRatio        = decimal.NewFromInt(60) // percent of income
)

// SmallPurchaseLimit is the exclusive upper bound for a "small" expense.
var SmallPurchaseLimit = decimal.NewFromInt(20)

// smallPurchaseCountThreshold is how many small purchases trigger the
// frequency insight.
const smallPurchaseCountThreshold = 20

// defaultRules is the fixed rule sequence. Order defines presentation
// order, not priority; extending the engine means appending here.
var defaultRules = []Rule{
	{Name: "spending-trend", Evaluate: spendingTrendRule},
	{Name: "category-concentration", Evaluate: categoryConcentrationRule},
	{Name: "expense-ratio", Evaluate: expenseRatioRule},
	{Name: "small-transaction-frequency", Evaluate: smallTransactionRule},
}

// EvaluateRules runs every rule in order and collects the emitted insights.
// A rule whose condition does not hold simply contributes nothing.
func EvaluateRules(in RuleInput) []Insight {
	return evaluate(defaultRules, in)
}

func evaluate(rules []Rule, in RuleInput) []Insight {
	insights := make([]Insight, 0, len(rules))
	for _, rule := range rules {
		if insight := rule.Evaluate(in); insight != nil {
			insights = append(insights, *insight)
		}
	}
	return insights
}

func spendingTrendRule(in RuleInput) *Insight {
	if !in.PreviousMonthExpense.IsPositive() {
		return nil
	}

	change := Compare(in.CurrentMonthExpense, in.PreviousMonthExpense).PercentChange
	switch {
	case change.GreaterThan(trendThreshold):
		return &Insight{
			Kind:           InsightWarning,
			Title:          "High Spending Alert",
			Message:        fmt.Sprintf("Your spending has increased by %s%% compared to last month.", change.StringFixed(1)),
			Recommendation: "Consider reviewing your recent expenses and identifying areas to cut back.",
		}
	case change.LessThan(trendThreshold.Neg()):
		return &Insight{
			Kind:           InsightSuccess,
			Title:          "Great Job!",
			Message:        fmt.Sprintf("You've reduced your spending by %s%% compared to last month.", change.Abs().StringFixed(1)),
			Recommendation: "Keep up the good work with mindful spending!",
		}
	default:
		return nil
	}
}

func categoryConcentrationRule(in RuleInput) *Insight {
	if len(in.ExpenseBreakdown) == 0 {
		return nil
	}

	top := in.ExpenseBreakdown[0]
	if !top.Percentage.GreaterThan(concentrationThreshold) {
		return nil
	}

	return &Insight{
		Kind:           InsightInfo,
		Title:          "Category Concentration",
		Message:        fmt.Sprintf("Your %s expenses account for %s%% of your total spending.", top.Category, top.Percentage.StringFixed(1)),
		Recommendation: fmt.Sprintf("Consider diversifying your spending or finding ways to reduce %s costs.", top.Category),
	}
}

func expenseRatioRule(in RuleInput) *Insight {
	if !in.CurrentMonthIncome.IsPositive() {
		return nil
	}

	ratio := in.CurrentMonthExpense.Div(in.CurrentMonthIncome).Mul(hundred)
	switch {
	case ratio.GreaterThan(highExpenseRatio):
		return &Insight{
			Kind:           InsightWarning,
			Title:          "High Expense Ratio",
			Message:        fmt.Sprintf("You're spending %s%% of your income this month.", ratio.StringFixed(1)),
			Recommendation: "Try to aim for spending less than 80% of your income to build savings.",
		}
	case ratio.LessThan(lowExpenseRatio):
		return &Insight{
			Kind:           InsightSuccess,
			Title:          "Excellent Savings Rate",
			Message:        fmt.Sprintf("You're only spending %s%% of your income.", ratio.StringFixed(1)),
			Recommendation: "Great job saving! Consider investing your surplus for long-term growth.",
		}
	default:
		return nil
	}
}

func smallTransactionRule(in RuleInput) *Insight {
	if in.SmallExpenseCount <= smallPurchaseCountThreshold {
		return nil
	}

	return &Insight{
		Kind:           InsightInfo,
		Title:          "Frequent Small Purchases",
		Message:        fmt.Sprintf("You made %d small purchases (under $20) this month.", in.SmallExpenseCount),
		Recommendation: "These small expenses can add up. Consider tracking them more carefully.",
	}
}
