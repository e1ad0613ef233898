package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finlogix/finlogix/internal/domain"
	"github.com/finlogix/finlogix/internal/engine"
)

// AnalyticsUseCase serves read-only reporting over the ledger. Every call
// recomputes from the repository; results are never cached.
type AnalyticsUseCase struct {
	txRepo TransactionRepository
	now    func() time.Time
}

// NewAnalyticsUseCase creates a new AnalyticsUseCase.
func NewAnalyticsUseCase(txRepo TransactionRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		txRepo: txRepo,
		now:    time.Now,
	}
}

// WithClock overrides the time source. Used by tests.
func (uc *AnalyticsUseCase) WithClock(now func() time.Time) *AnalyticsUseCase {
	uc.now = now
	return uc
}

// SummaryOutput is the aggregate view of a period.
type SummaryOutput struct {
	Period  domain.Period
	Income  engine.Aggregate
	Expense engine.Aggregate
	Balance decimal.Decimal
}

// Summary aggregates income and expenses over the given period. An empty
// period yields zero aggregates, not an error.
func (uc *AnalyticsUseCase) Summary(ctx context.Context, userID string, period domain.Period) (*SummaryOutput, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	income, err := uc.aggregate(ctx, userID, domain.KindIncome, period)
	if err != nil {
		return nil, err
	}
	expense, err := uc.aggregate(ctx, userID, domain.KindExpense, period)
	if err != nil {
		return nil, err
	}

	return &SummaryOutput{
		Period:  period,
		Income:  income,
		Expense: expense,
		Balance: income.Sum.Sub(expense.Sum),
	}, nil
}

func (uc *AnalyticsUseCase) aggregate(ctx context.Context, userID string, kind domain.Kind, period domain.Period) (engine.Aggregate, error) {
	filter := domain.TransactionFilter{Kind: &kind, Period: period}

	sum, err := uc.txRepo.Sum(ctx, userID, filter)
	if err != nil {
		return engine.Aggregate{}, err
	}
	count, err := uc.txRepo.Count(ctx, userID, filter)
	if err != nil {
		return engine.Aggregate{}, err
	}

	return engine.NewAggregate(sum, count), nil
}

// CategoryBreakdown returns per-category totals with percentage shares for
// one kind over the period, largest first.
func (uc *AnalyticsUseCase) CategoryBreakdown(ctx context.Context, userID string, kind domain.Kind, period domain.Period) ([]engine.BreakdownEntry, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	totals, err := uc.txRepo.SumByCategory(ctx, userID, domain.TransactionFilter{Kind: &kind, Period: period})
	if err != nil {
		return nil, err
	}

	return engine.Breakdown(totals), nil
}

// MonthlyTrends returns the twelve-month income/expense/balance table for a
// calendar year. Months without activity appear with zero values.
func (uc *AnalyticsUseCase) MonthlyTrends(ctx context.Context, userID string, year int) ([]engine.MonthSlot, error) {
	flows, err := uc.txRepo.MonthlyTotals(ctx, userID, domain.PeriodFromYear(year))
	if err != nil {
		return nil, err
	}

	monthFlows := make([]engine.MonthFlow, 0, len(flows))
	for _, f := range flows {
		monthFlows = append(monthFlows, engine.MonthFlow{
			Month: f.Month,
			Kind:  f.Kind,
			Total: f.Total,
		})
	}

	return engine.MonthlyTable(monthFlows), nil
}

// DashboardOutput bundles the figures shown on the landing page.
type DashboardOutput struct {
	Month              domain.Period
	Income             engine.Aggregate
	Expense            engine.Aggregate
	Balance            decimal.Decimal
	ExpenseTrend       engine.TrendComparison
	ExpenseBreakdown   []engine.BreakdownEntry
	RecentTransactions []*domain.Transaction
}

// Dashboard computes the current-month overview: aggregates, the expense
// trend against the previous month, the expense breakdown and the latest
// transactions.
func (uc *AnalyticsUseCase) Dashboard(ctx context.Context, userID string) (*DashboardOutput, error) {
	now := uc.now().UTC()
	thisMonth := domain.PeriodFromMonth(now.Year(), now.Month())
	prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	lastMonth := domain.PeriodFromMonth(prev.Year(), prev.Month())

	summary, err := uc.Summary(ctx, userID, thisMonth)
	if err != nil {
		return nil, err
	}

	expenseKind := domain.KindExpense
	previousExpense, err := uc.txRepo.Sum(ctx, userID, domain.TransactionFilter{Kind: &expenseKind, Period: lastMonth})
	if err != nil {
		return nil, err
	}

	breakdown, err := uc.CategoryBreakdown(ctx, userID, domain.KindExpense, thisMonth)
	if err != nil {
		return nil, err
	}

	recent, err := uc.txRepo.ListRecent(ctx, userID, RecentTransactionsLimit)
	if err != nil {
		return nil, err
	}

	return &DashboardOutput{
		Month:              thisMonth,
		Income:             summary.Income,
		Expense:            summary.Expense,
		Balance:            summary.Balance,
		ExpenseTrend:       engine.Compare(summary.Expense.Sum, previousExpense),
		ExpenseBreakdown:   breakdown,
		RecentTransactions: recent,
	}, nil
}
