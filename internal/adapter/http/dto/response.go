package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finlogix/finlogix/internal/domain"
	"github.com/finlogix/finlogix/internal/engine"
	"github.com/finlogix/finlogix/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Role           domain.Role      `json:"role"`
	IncomeType     domain.IncomeType `json:"income_type"`
	BudgetGoal     *decimal.Decimal `json:"budget_goal,omitempty"`
	PhoneNumber    string           `json:"phone_number,omitempty"`
	ProfilePicture string           `json:"profile_picture,omitempty"`
	Active         bool             `json:"active"`
	CreatedAt      time.Time        `json:"created_at"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		IncomeType:     u.IncomeType,
		BudgetGoal:     u.BudgetGoal,
		PhoneNumber:    u.PhoneNumber,
		ProfilePicture: u.ProfilePicture,
		Active:         u.Active,
		CreatedAt:      u.CreatedAt,
	}
}

// UsersFromDomain converts domain users to responses.
func UsersFromDomain(users []*domain.User) []*UserResponse {
	result := make([]*UserResponse, len(users))
	for i, u := range users {
		result[i] = UserFromDomain(u)
	}
	return result
}

// LoginResponse carries the access token and the authenticated user.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID                string          `json:"id"`
	UserID            string          `json:"user_id,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Kind              domain.Kind     `json:"kind"`
	Category          domain.Category `json:"category"`
	Note              string          `json:"note,omitempty"`
	AudioMemoFilename string          `json:"audio_memo_filename,omitempty"`
	OccurredAt        time.Time       `json:"occurred_at"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:                t.ID,
		UserID:            t.UserID,
		Amount:            t.Amount,
		Kind:              t.Kind,
		Category:          t.Category,
		Note:              t.Note,
		AudioMemoFilename: t.AudioMemoFilename,
		OccurredAt:        t.OccurredAt,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txs []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txs))
	for i, t := range txs {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// ListTransactionsResponse wraps a transaction listing.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
}

// AggregateResponse represents one side of a summary.
type AggregateResponse struct {
	Total   decimal.Decimal `json:"total"`
	Count   int64           `json:"count"`
	Average decimal.Decimal `json:"average"`
}

func aggregateResponse(a engine.Aggregate) AggregateResponse {
	return AggregateResponse{Total: a.Sum, Count: a.Count, Average: a.Average}
}

// SummaryResponse represents the period summary.
type SummaryResponse struct {
	Income  AggregateResponse `json:"income"`
	Expense AggregateResponse `json:"expense"`
	Balance decimal.Decimal   `json:"balance"`
}

// SummaryFromOutput converts a summary to a response.
func SummaryFromOutput(out *usecase.SummaryOutput) *SummaryResponse {
	return &SummaryResponse{
		Income:  aggregateResponse(out.Income),
		Expense: aggregateResponse(out.Expense),
		Balance: out.Balance,
	}
}

// BreakdownEntryResponse is one category slice of a breakdown.
type BreakdownEntryResponse struct {
	Category   domain.Category `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// BreakdownFromEngine converts breakdown entries to responses.
func BreakdownFromEngine(entries []engine.BreakdownEntry) []BreakdownEntryResponse {
	result := make([]BreakdownEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = BreakdownEntryResponse{
			Category:   e.Category,
			Amount:     e.Amount,
			Percentage: e.Percentage,
		}
	}
	return result
}

// MonthSlotResponse is one month of the yearly table.
type MonthSlotResponse struct {
	Month    int             `json:"month"`
	Name     string          `json:"name"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// MonthlyTrendsFromEngine converts the twelve-slot table to a response.
func MonthlyTrendsFromEngine(slots []engine.MonthSlot) []MonthSlotResponse {
	result := make([]MonthSlotResponse, len(slots))
	for i, s := range slots {
		result[i] = MonthSlotResponse{
			Month:    int(s.Month),
			Name:     s.MonthName,
			Income:   s.Income,
			Expenses: s.Expenses,
			Balance:  s.Balance,
		}
	}
	return result
}

// TrendResponse compares a value to the previous period.
type TrendResponse struct {
	Current       decimal.Decimal `json:"current"`
	Previous      decimal.Decimal `json:"previous"`
	PercentChange decimal.Decimal `json:"percent_change"`
}

// DashboardResponse is the landing page payload.
type DashboardResponse struct {
	Income             AggregateResponse        `json:"income"`
	Expense            AggregateResponse        `json:"expense"`
	Balance            decimal.Decimal          `json:"balance"`
	ExpenseTrend       TrendResponse            `json:"expense_trend"`
	ExpenseBreakdown   []BreakdownEntryResponse `json:"expense_breakdown"`
	RecentTransactions []*TransactionResponse   `json:"recent_transactions"`
}

// DashboardFromOutput converts the dashboard output to a response.
func DashboardFromOutput(out *usecase.DashboardOutput) *DashboardResponse {
	return &DashboardResponse{
		Income:  aggregateResponse(out.Income),
		Expense: aggregateResponse(out.Expense),
		Balance: out.Balance,
		ExpenseTrend: TrendResponse{
			Current:       out.ExpenseTrend.Current,
			Previous:      out.ExpenseTrend.Previous,
			PercentChange: out.ExpenseTrend.PercentChange,
		},
		ExpenseBreakdown:   BreakdownFromEngine(out.ExpenseBreakdown),
		RecentTransactions: TransactionsFromDomain(out.RecentTransactions),
	}
}

// InsightResponse is one rule finding.
type InsightResponse struct {
	Kind           engine.InsightKind `json:"kind"`
	Title          string             `json:"title"`
	Message        string             `json:"message"`
	Recommendation string             `json:"recommendation"`
}

// InsightsFromEngine converts insights to responses.
func InsightsFromEngine(insights []engine.Insight) []InsightResponse {
	result := make([]InsightResponse, len(insights))
	for i, in := range insights {
		result[i] = InsightResponse{
			Kind:           in.Kind,
			Title:          in.Title,
			Message:        in.Message,
			Recommendation: in.Recommendation,
		}
	}
	return result
}

// ScenarioResponse is one forecast scenario.
type ScenarioResponse struct {
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	ProjectedRemaining decimal.Decimal `json:"projected_remaining"`
	ProjectedTotal     decimal.Decimal `json:"projected_total"`
	Confidence         string          `json:"confidence"`
}

// CategoryForecastResponse is one category's projection.
type CategoryForecastResponse struct {
	Category           domain.Category `json:"category"`
	SpentSoFar         decimal.Decimal `json:"spent_so_far"`
	ProjectedRemaining decimal.Decimal `json:"projected_remaining"`
	ProjectedTotal     decimal.Decimal `json:"projected_total"`
}

// ForecastResponse is the month-end spending projection.
type ForecastResponse struct {
	DaysPassed  int                        `json:"days_passed"`
	DaysInMonth int                        `json:"days_in_month"`
	MonthToDate decimal.Decimal            `json:"month_to_date"`
	Scenarios   []ScenarioResponse         `json:"scenarios"`
	ByCategory  []CategoryForecastResponse `json:"by_category"`
}

// ForecastFromOutput converts the forecast output to a response.
func ForecastFromOutput(out *usecase.ForecastOutput) *ForecastResponse {
	scenarios := make([]ScenarioResponse, len(out.Scenarios))
	for i, s := range out.Scenarios {
		scenarios[i] = ScenarioResponse{
			Name:               s.Name,
			Description:        s.Description,
			ProjectedRemaining: s.ProjectedRemaining,
			ProjectedTotal:     s.ProjectedTotal,
			Confidence:         s.Confidence,
		}
	}

	byCategory := make([]CategoryForecastResponse, len(out.ByCategory))
	for i, c := range out.ByCategory {
		byCategory[i] = CategoryForecastResponse{
			Category:           c.Category,
			SpentSoFar:         c.CurrentSpending,
			ProjectedRemaining: c.ProjectedRemaining,
			ProjectedTotal:     c.ProjectedTotal,
		}
	}

	return &ForecastResponse{
		DaysPassed:  out.DaysPassed,
		DaysInMonth: out.DaysInMonth,
		MonthToDate: out.MonthToDate,
		Scenarios:   scenarios,
		ByCategory:  byCategory,
	}
}

// BudgetSuggestionResponse is one category reduction suggestion.
type BudgetSuggestionResponse struct {
	Category        domain.Category `json:"category"`
	CurrentAverage  decimal.Decimal `json:"current_average"`
	SuggestedBudget decimal.Decimal `json:"suggested_budget"`
	ReductionNeeded decimal.Decimal `json:"reduction_needed"`
	Message         string          `json:"message"`
}

// BudgetPlanResponse is the budget planner payload.
type BudgetPlanResponse struct {
	TargetSavingsRate  decimal.Decimal                     `json:"target_savings_rate"`
	TargetExpense      decimal.Decimal                     `json:"target_expense"`
	MeetingGoal        bool                                `json:"meeting_goal"`
	ReductionNeeded    decimal.Decimal                     `json:"reduction_needed"`
	CurrentSavingsRate decimal.Decimal                     `json:"current_savings_rate"`
	Overview           string                              `json:"overview"`
	Suggestions        []BudgetSuggestionResponse          `json:"suggestions"`
	CategoryBudgets    map[domain.Category]decimal.Decimal `json:"category_budgets"`
}

// BudgetPlanFromEngine converts a budget plan to a response.
func BudgetPlanFromEngine(plan *engine.BudgetPlan) *BudgetPlanResponse {
	suggestions := make([]BudgetSuggestionResponse, len(plan.Suggestions))
	for i, s := range plan.Suggestions {
		suggestions[i] = BudgetSuggestionResponse{
			Category:        s.Category,
			CurrentAverage:  s.CurrentAverage,
			SuggestedBudget: s.SuggestedBudget,
			ReductionNeeded: s.ReductionNeeded,
			Message:         s.Message,
		}
	}

	return &BudgetPlanResponse{
		TargetSavingsRate:  plan.TargetSavingsRate,
		TargetExpense:      plan.TargetExpense,
		MeetingGoal:        plan.MeetingGoal,
		ReductionNeeded:    plan.ReductionNeeded,
		CurrentSavingsRate: plan.CurrentSavingsRate,
		Overview:           plan.Overview,
		Suggestions:        suggestions,
		CategoryBudgets:    plan.CategoryBudgets,
	}
}

// AdviceResponse is the composed advice payload.
type AdviceResponse struct {
	Advice    []string `json:"advice"`
	Generated bool     `json:"generated"`
}

// UserActivityResponse is one row of the most-active listing.
type UserActivityResponse struct {
	UserID           string `json:"user_id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	TransactionCount int64  `json:"transaction_count"`
}

// UserDetailResponse is the admin view of one account.
type UserDetailResponse struct {
	User             *UserResponse `json:"user"`
	TransactionCount int64         `json:"transaction_count"`
}

// PlatformStatsResponse is the admin dashboard payload.
type PlatformStatsResponse struct {
	TotalUsers        int64                  `json:"total_users"`
	ActiveUsers       int64                  `json:"active_users"`
	NewUsersThisMonth int64                  `json:"new_users_this_month"`
	TotalTransactions int64                  `json:"total_transactions"`
	TransactionsToday int64                  `json:"transactions_today"`
	TotalIncome       decimal.Decimal        `json:"total_income"`
	TotalExpenses     decimal.Decimal        `json:"total_expenses"`
	MostActiveUsers   []UserActivityResponse `json:"most_active_users"`
}

// PlatformStatsFromOutput converts platform stats to a response.
func PlatformStatsFromOutput(stats *usecase.PlatformStats) *PlatformStatsResponse {
	mostActive := make([]UserActivityResponse, len(stats.MostActiveUsers))
	for i, a := range stats.MostActiveUsers {
		mostActive[i] = UserActivityResponse{
			UserID:           a.UserID,
			Name:             a.Name,
			Email:            a.Email,
			TransactionCount: a.TransactionCount,
		}
	}

	return &PlatformStatsResponse{
		TotalUsers:        stats.TotalUsers,
		ActiveUsers:       stats.ActiveUsers,
		NewUsersThisMonth: stats.NewUsersThisMonth,
		TotalTransactions: stats.TotalTransactions,
		TransactionsToday: stats.TransactionsToday,
		TotalIncome:       stats.TotalIncome,
		TotalExpenses:     stats.TotalExpenses,
		MostActiveUsers:   mostActive,
	}
}

// ListUsersResponse wraps an admin user listing.
type ListUsersResponse struct {
	Users []*UserResponse `json:"users"`
	Total int64           `json:"total"`
}

// CategoriesResponse lists the valid categories per kind.
type CategoriesResponse struct {
	Income  []domain.Category `json:"income"`
	Expense []domain.Category `json:"expense"`
}
