package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finlogix/finlogix/internal/domain"
	"github.com/finlogix/finlogix/internal/usecase"
	"github.com/finlogix/finlogix/internal/usecase/mocks"
)

func seedTransaction(t *testing.T, repo *mocks.MockTransactionRepository, id string, kind domain.Kind, category domain.Category, amount int64, occurred time.Time) {
	t.Helper()
	err := repo.Create(context.Background(), &domain.Transaction{
		ID:         id,
		UserID:     "user-1",
		Amount:     decimal.NewFromInt(amount),
		Kind:       kind,
		Category:   category,
		OccurredAt: occurred,
	})
	if err != nil {
		t.Fatalf("seed %s: %v", id, err)
	}
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 10, 0, 0, 0, time.UTC)
	}
}

func TestAnalyticsUseCase_Summary(t *testing.T) {
	repo := mocks.NewMockTransactionRepository()
	june := time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)
	seedTransaction(t, repo, "t1", domain.KindIncome, domain.CategorySalary, 2000, june)
	seedTransaction(t, repo, "t2", domain.KindExpense, domain.CategoryFood, 600, june)
	seedTransaction(t, repo, "t3", domain.KindExpense, domain.CategoryFood, 200, june.AddDate(0, 0, 3))

	uc := usecase.NewAnalyticsUseCase(repo)
	out, err := uc.Summary(context.Background(), "user-1", domain.PeriodFromMonth(2025, time.June))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.Income.Sum.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("income sum = %s", out.Income.Sum)
	}
	if out.Expense.Count != 2 {
		t.Errorf("expense count = %d", out.Expense.Count)
	}
	if !out.Expense.Average.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expense average = %s", out.Expense.Average)
	}
	if !out.Balance.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("balance = %s", out.Balance)
	}
}

func TestAnalyticsUseCase_SummaryEmptyPeriod(t *testing.T) {
	repo := mocks.NewMockTransactionRepository()
	uc := usecase.NewAnalyticsUseCase(repo)

	out, err := uc.Summary(context.Background(), "user-1", domain.PeriodFromMonth(2025, time.January))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Income.Sum.IsZero() || !out.Expense.Sum.IsZero() || !out.Balance.IsZero() {
		t.Errorf("empty period must yield zero aggregates, got %+v", out)
	}
	if !out.Income.Average.IsZero() {
		t.Errorf("zero count must yield zero average, got %s", out.Income.Average)
	}
}

func TestAnalyticsUseCase_SummaryInvalidPeriod(t *testing.T) {
	uc := usecase.NewAnalyticsUseCase(mocks.NewMockTransactionRepository())

	start := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -5)
	_, err := uc.Summary(context.Background(), "user-1", domain.PeriodFromRange(&start, &end))
	if err == nil {
		t.Fatal("expected invalid period error")
	}
}

func TestAnalyticsUseCase_MonthlyTrends(t *testing.T) {
	repo := mocks.NewMockTransactionRepository()
	seedTransaction(t, repo, "t1", domain.KindIncome, domain.CategorySalary, 3000, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))
	seedTransaction(t, repo, "t2", domain.KindExpense, domain.CategoryHousing, 1000, time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC))
	seedTransaction(t, repo, "t3", domain.KindExpense, domain.CategoryFood, 400, time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC))
	// Outside the requested year.
	seedTransaction(t, repo, "t4", domain.KindExpense, domain.CategoryFood, 999, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC))

	uc := usecase.NewAnalyticsUseCase(repo)
	slots, err := uc.MonthlyTrends(context.Background(), "user-1", 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 12 {
		t.Fatalf("got %d slots, want 12", len(slots))
	}
	march := slots[time.March-1]
	if !march.Income.Equal(decimal.NewFromInt(3000)) || !march.Expenses.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("march = %+v", march)
	}
	if !march.Balance.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("march balance = %s", march.Balance)
	}
	november := slots[time.November-1]
	if !november.Expenses.Equal(decimal.NewFromInt(400)) {
		t.Errorf("november = %+v", november)
	}
	january := slots[0]
	if !january.Income.IsZero() || !january.Expenses.IsZero() {
		t.Errorf("january must be zero-filled, got %+v", january)
	}
}

func TestAnalyticsUseCase_Dashboard(t *testing.T) {
	repo := mocks.NewMockTransactionRepository()
	seedTransaction(t, repo, "t1", domain.KindIncome, domain.CategorySalary, 2000, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	seedTransaction(t, repo, "t2", domain.KindExpense, domain.CategoryFood, 460, time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC))
	seedTransaction(t, repo, "t3", domain.KindExpense, domain.CategoryFood, 350, time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC))

	uc := usecase.NewAnalyticsUseCase(repo).WithClock(fixedClock(2025, time.June, 15))
	out, err := uc.Dashboard(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.Expense.Sum.Equal(decimal.NewFromInt(460)) {
		t.Errorf("expense = %s", out.Expense.Sum)
	}
	if !out.Balance.Equal(decimal.NewFromInt(1540)) {
		t.Errorf("balance = %s", out.Balance)
	}
	// 350 -> 460 is a 31.43% increase.
	if !out.ExpenseTrend.PercentChange.Equal(decimal.RequireFromString("31.43")) {
		t.Errorf("trend = %s, want 31.43", out.ExpenseTrend.PercentChange)
	}
	if len(out.ExpenseBreakdown) != 1 || out.ExpenseBreakdown[0].Category != domain.CategoryFood {
		t.Errorf("breakdown = %+v", out.ExpenseBreakdown)
	}
	if !out.ExpenseBreakdown[0].Percentage.Equal(decimal.NewFromInt(100)) {
		t.Errorf("breakdown pct = %s", out.ExpenseBreakdown[0].Percentage)
	}
}

func TestAnalyticsUseCase_DashboardNoPreviousMonth(t *testing.T) {
	repo := mocks.NewMockTransactionRepository()
	seedTransaction(t, repo, "t1", domain.KindExpense, domain.CategoryFood, 100, time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC))

	uc := usecase.NewAnalyticsUseCase(repo).WithClock(fixedClock(2025, time.June, 15))
	out, err := uc.Dashboard(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No baseline: any positive spend counts as a 100% increase.
	if !out.ExpenseTrend.PercentChange.Equal(decimal.NewFromInt(100)) {
		t.Errorf("trend = %s, want 100", out.ExpenseTrend.PercentChange)
	}
}
