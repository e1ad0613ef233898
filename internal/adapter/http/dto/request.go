package dto

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finlogix/finlogix/internal/domain"
	"github.com/finlogix/finlogix/internal/usecase"
)

// RegisterRequest represents a signup request.
type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	IncomeType string `json:"income_type,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterRequest) ToUseCaseInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Name:       r.Name,
		Email:      r.Email,
		Password:   r.Password,
		IncomeType: domain.IncomeType(r.IncomeType),
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest represents a partial profile update.
type UpdateProfileRequest struct {
	Name           *string          `json:"name,omitempty"`
	PhoneNumber    *string          `json:"phone_number,omitempty"`
	ProfilePicture *string          `json:"profile_picture,omitempty"`
	IncomeType     *string          `json:"income_type,omitempty"`
	BudgetGoal     *decimal.Decimal `json:"budget_goal,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateProfileRequest) ToUseCaseInput(userID string) usecase.UpdateProfileInput {
	input := usecase.UpdateProfileInput{
		UserID:         userID,
		Name:           r.Name,
		PhoneNumber:    r.PhoneNumber,
		ProfilePicture: r.ProfilePicture,
		BudgetGoal:     r.BudgetGoal,
	}
	if r.IncomeType != nil {
		incomeType := domain.IncomeType(*r.IncomeType)
		input.IncomeType = &incomeType
	}
	return input
}

// ChangePasswordRequest represents a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// CreateTransactionRequest represents a request to record a transaction.
type CreateTransactionRequest struct {
	Amount            decimal.Decimal `json:"amount"`
	Kind              string          `json:"kind"`
	Category          string          `json:"category"`
	Note              string          `json:"note,omitempty"`
	AudioMemoFilename string          `json:"audio_memo_filename,omitempty"`
	OccurredAt        *time.Time      `json:"occurred_at,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransactionRequest) ToUseCaseInput(userID string) usecase.CreateTransactionInput {
	return usecase.CreateTransactionInput{
		UserID:            userID,
		Amount:            r.Amount,
		Kind:              domain.Kind(r.Kind),
		Category:          domain.Category(r.Category),
		Note:              r.Note,
		AudioMemoFilename: r.AudioMemoFilename,
		OccurredAt:        r.OccurredAt,
	}
}

// UpdateTransactionRequest represents a partial transaction update.
type UpdateTransactionRequest struct {
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Kind       *string          `json:"kind,omitempty"`
	Category   *string          `json:"category,omitempty"`
	Note       *string          `json:"note,omitempty"`
	OccurredAt *time.Time       `json:"occurred_at,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateTransactionRequest) ToUseCaseInput(userID, id string) usecase.UpdateTransactionInput {
	input := usecase.UpdateTransactionInput{
		UserID:     userID,
		ID:         id,
		Amount:     r.Amount,
		Note:       r.Note,
		OccurredAt: r.OccurredAt,
	}
	if r.Kind != nil {
		kind := domain.Kind(*r.Kind)
		input.Kind = &kind
	}
	if r.Category != nil {
		category := domain.Category(*r.Category)
		input.Category = &category
	}
	return input
}

// UpdateUserRequest represents an admin change to a user account.
type UpdateUserRequest struct {
	Role   *string `json:"role,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateUserRequest) ToUseCaseInput(userID string) usecase.SetUserRoleInput {
	input := usecase.SetUserRoleInput{
		UserID: userID,
		Active: r.Active,
	}
	if r.Role != nil {
		role := domain.Role(*r.Role)
		input.Role = &role
	}
	return input
}

// ErrAmbiguousPeriod rejects queries mixing period selection modes.
var ErrAmbiguousPeriod = errors.New("use either start/end, year/month, or year")

// PeriodFromQuery reads the period selection from query parameters.
// Explicit start/end take precedence, then year+month, then year alone.
// With no parameters the period is unbounded.
func PeriodFromQuery(r *http.Request) (domain.Period, error) {
	q := r.URL.Query()

	startStr, endStr := q.Get("start"), q.Get("end")
	yearStr, monthStr := q.Get("year"), q.Get("month")

	if startStr != "" || endStr != "" {
		if yearStr != "" || monthStr != "" {
			return domain.Period{}, ErrAmbiguousPeriod
		}

		var start, end *time.Time
		if startStr != "" {
			t, err := parseDate(startStr)
			if err != nil {
				return domain.Period{}, err
			}
			start = &t
		}
		if endStr != "" {
			t, err := parseDate(endStr)
			if err != nil {
				return domain.Period{}, err
			}
			end = &t
		}

		period := domain.PeriodFromRange(start, end)
		return period, period.Validate()
	}

	if monthStr != "" {
		if yearStr == "" {
			return domain.Period{}, errors.New("month requires year")
		}
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return domain.Period{}, errors.New("invalid year")
		}
		month, err := strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			return domain.Period{}, errors.New("invalid month")
		}
		return domain.PeriodFromMonth(year, time.Month(month)), nil
	}

	if yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return domain.Period{}, errors.New("invalid year")
		}
		return domain.PeriodFromYear(year), nil
	}

	return domain.AllTime(), nil
}

// parseDate accepts RFC 3339 timestamps or plain dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, errors.New("invalid date: " + s)
	}
	return t.UTC(), nil
}
