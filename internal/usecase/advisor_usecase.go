package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finlogix/finlogix/internal/domain"
	"github.com/finlogix/finlogix/internal/engine"
)

// defaultAdviceTimeout bounds a single text-generation call.
const defaultAdviceTimeout = 10 * time.Second

// AdvisorUseCase produces insights, forecasts, budget plans and advice from
// the user's ledger. Like analytics, everything is recomputed per call.
type AdvisorUseCase struct {
	txRepo        TransactionRepository
	userRepo      UserRepository
	textGen       TextGenerator
	adviceTimeout time.Duration
	now           func() time.Time
}

// NewAdvisorUseCase creates a new AdvisorUseCase. textGen may be nil, in
// which case advice always uses the deterministic fallback.
func NewAdvisorUseCase(txRepo TransactionRepository, userRepo UserRepository, textGen TextGenerator, adviceTimeout time.Duration) *AdvisorUseCase {
	if adviceTimeout <= 0 {
		adviceTimeout = defaultAdviceTimeout
	}
	return &AdvisorUseCase{
		txRepo:        txRepo,
		userRepo:      userRepo,
		textGen:       textGen,
		adviceTimeout: adviceTimeout,
		now:           time.Now,
	}
}

// WithClock overrides the time source. Used by tests.
func (uc *AdvisorUseCase) WithClock(now func() time.Time) *AdvisorUseCase {
	uc.now = now
	return uc
}

func (uc *AdvisorUseCase) currentMonth() (domain.Period, domain.Period, time.Time) {
	now := uc.now().UTC()
	thisMonth := domain.PeriodFromMonth(now.Year(), now.Month())
	prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	lastMonth := domain.PeriodFromMonth(prev.Year(), prev.Month())
	return thisMonth, lastMonth, now
}

// Insights evaluates the rule set against the current month and returns the
// findings in rule registration order.
func (uc *AdvisorUseCase) Insights(ctx context.Context, userID string) ([]engine.Insight, error) {
	thisMonth, lastMonth, _ := uc.currentMonth()

	incomeKind := domain.KindIncome
	expenseKind := domain.KindExpense

	income, err := uc.txRepo.Sum(ctx, userID, domain.TransactionFilter{Kind: &incomeKind, Period: thisMonth})
	if err != nil {
		return nil, err
	}
	expense, err := uc.txRepo.Sum(ctx, userID, domain.TransactionFilter{Kind: &expenseKind, Period: thisMonth})
	if err != nil {
		return nil, err
	}
	previousExpense, err := uc.txRepo.Sum(ctx, userID, domain.TransactionFilter{Kind: &expenseKind, Period: lastMonth})
	if err != nil {
		return nil, err
	}

	totals, err := uc.txRepo.SumByCategory(ctx, userID, domain.TransactionFilter{Kind: &expenseKind, Period: thisMonth})
	if err != nil {
		return nil, err
	}

	smallLimit := engine.SmallPurchaseLimit
	smallCount, err := uc.txRepo.Count(ctx, userID, domain.TransactionFilter{
		Kind:        &expenseKind,
		Period:      thisMonth,
		AmountBelow: &smallLimit,
	})
	if err != nil {
		return nil, err
	}

	return engine.EvaluateRules(engine.RuleInput{
		CurrentMonthIncome:   income,
		CurrentMonthExpense:  expense,
		PreviousMonthExpense: previousExpense,
		ExpenseBreakdown:     engine.Breakdown(totals),
		SmallExpenseCount:    smallCount,
	}), nil
}

// ForecastOutput is the month-end spending projection.
type ForecastOutput struct {
	DaysPassed  int
	DaysInMonth int
	MonthToDate decimal.Decimal
	Scenarios   []engine.Scenario
	ByCategory  []engine.CategoryForecast
}

// SpendingForecast projects this month's final spend under three scenarios
// plus an independent per-category projection.
func (uc *AdvisorUseCase) SpendingForecast(ctx context.Context, userID string) (*ForecastOutput, error) {
	thisMonth, _, now := uc.currentMonth()

	daysPassed := now.Day()
	daysInMonth := daysIn(now.Year(), now.Month())

	expenseKind := domain.KindExpense
	monthToDate, err := uc.txRepo.Sum(ctx, userID, domain.TransactionFilter{Kind: &expenseKind, Period: thisMonth})
	if err != nil {
		return nil, err
	}

	historicalAvg, err := uc.historicalDailyAverage(ctx, userID, thisMonth.Start, now)
	if err != nil {
		return nil, err
	}

	totals, err := uc.txRepo.SumByCategory(ctx, userID, domain.TransactionFilter{Kind: &expenseKind, Period: thisMonth})
	if err != nil {
		return nil, err
	}

	return &ForecastOutput{
		DaysPassed:  daysPassed,
		DaysInMonth: daysInMonth,
		MonthToDate: monthToDate,
		Scenarios:   engine.Forecast(monthToDate, daysPassed, daysInMonth, historicalAvg),
		ByCategory:  engine.ForecastByCategory(totals, daysPassed, daysInMonth),
	}, nil
}

// historicalDailyAverage derives a daily spending rate from the portion of
// the trailing ninety days that precedes the current month.
func (uc *AdvisorUseCase) historicalDailyAverage(ctx context.Context, userID string, monthStart, now time.Time) (decimal.Decimal, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	windowStart := today.AddDate(0, 0, -ForecastHistoryDays)
	if !windowStart.Before(monthStart) {
		return decimal.Zero, nil
	}

	days := int64(monthStart.Sub(windowStart).Hours() / 24)
	if days <= 0 {
		return decimal.Zero, nil
	}

	expenseKind := domain.KindExpense
	total, err := uc.txRepo.Sum(ctx, userID, domain.TransactionFilter{
		Kind:   &expenseKind,
		Period: domain.PeriodFromRange(&windowStart, &monthStart),
	})
	if err != nil {
		return decimal.Zero, err
	}

	return total.Div(decimal.NewFromInt(days)), nil
}

// BudgetPlan builds category budgets from the trailing three months of
// activity. A non-positive rate falls back to the default savings target;
// rates of 100 or more are rejected.
func (uc *AdvisorUseCase) BudgetPlan(ctx context.Context, userID string, targetSavingsRate decimal.Decimal) (*engine.BudgetPlan, error) {
	if targetSavingsRate.LessThanOrEqual(decimal.Zero) {
		targetSavingsRate = decimal.NewFromInt(DefaultTargetSavingsRate)
	}
	if targetSavingsRate.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return nil, domain.ErrInvalidSavingsRate
	}

	_, _, now := uc.currentMonth()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	windowStart := monthStart.AddDate(0, -AnalysisWindowMonths, 0)
	window := domain.PeriodFromRange(&windowStart, &monthStart)

	months := decimal.NewFromInt(AnalysisWindowMonths)

	incomeKind := domain.KindIncome
	expenseKind := domain.KindExpense

	incomeTotal, err := uc.txRepo.Sum(ctx, userID, domain.TransactionFilter{Kind: &incomeKind, Period: window})
	if err != nil {
		return nil, err
	}
	expenseTotal, err := uc.txRepo.Sum(ctx, userID, domain.TransactionFilter{Kind: &expenseKind, Period: window})
	if err != nil {
		return nil, err
	}

	totals, err := uc.txRepo.SumByCategory(ctx, userID, domain.TransactionFilter{Kind: &expenseKind, Period: window})
	if err != nil {
		return nil, err
	}

	categoryAverages := make(map[domain.Category]decimal.Decimal, len(totals))
	for category, total := range totals {
		categoryAverages[category] = total.Div(months)
	}

	plan := engine.PlanBudget(
		targetSavingsRate,
		incomeTotal.Div(months),
		expenseTotal.Div(months),
		categoryAverages,
	)
	return &plan, nil
}

// AdviceOutput carries the composed advice lines. Generated reports whether
// the lines came from the text generator or the fallback.
type AdviceOutput struct {
	Lines     []string
	Generated bool
}

// Advice composes up to three short saving tips from the current month's
// figures. Generator failures of any sort degrade silently to the
// deterministic fallback.
func (uc *AdvisorUseCase) Advice(ctx context.Context, userID string) (*AdviceOutput, error) {
	thisMonth, _, _ := uc.currentMonth()

	incomeKind := domain.KindIncome
	expenseKind := domain.KindExpense

	income, err := uc.txRepo.Sum(ctx, userID, domain.TransactionFilter{Kind: &incomeKind, Period: thisMonth})
	if err != nil {
		return nil, err
	}
	expense, err := uc.txRepo.Sum(ctx, userID, domain.TransactionFilter{Kind: &expenseKind, Period: thisMonth})
	if err != nil {
		return nil, err
	}
	incomeCount, err := uc.txRepo.Count(ctx, userID, domain.TransactionFilter{Kind: &incomeKind, Period: thisMonth})
	if err != nil {
		return nil, err
	}
	expenseCount, err := uc.txRepo.Count(ctx, userID, domain.TransactionFilter{Kind: &expenseKind, Period: thisMonth})
	if err != nil {
		return nil, err
	}
	totals, err := uc.txRepo.SumByCategory(ctx, userID, domain.TransactionFilter{Kind: &expenseKind, Period: thisMonth})
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	in := engine.AdviceInput{
		MonthlyIncome:  income,
		MonthlyExpense: expense,
		BudgetGoal:     user.BudgetGoal,
		Breakdown:      engine.Breakdown(totals),
		IncomeCount:    incomeCount,
		ExpenseCount:   expenseCount,
	}

	if uc.textGen != nil {
		genCtx, cancel := context.WithTimeout(ctx, uc.adviceTimeout)
		defer cancel()

		text, err := uc.textGen.Generate(genCtx, engine.PromptSummary(in))
		if err == nil {
			if lines := engine.CleanAdviceLines(text); len(lines) > 0 {
				return &AdviceOutput{Lines: lines, Generated: true}, nil
			}
		}
	}

	return &AdviceOutput{Lines: engine.FallbackAdvice(in), Generated: false}, nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
