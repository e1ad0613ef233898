package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finlogix/finlogix/internal/domain"
)

// PeriodFlow is one (year, month, kind) rollup row from the ledger store.
type PeriodFlow struct {
	Year  int
	Month time.Month
	Kind  domain.Kind
	Total decimal.Decimal
}

// UserActivity summarizes one user's transaction volume, for the admin
// dashboard.
type UserActivity struct {
	UserID           string
	Name             string
	Email            string
	TransactionCount int64
}

// TransactionRepository defines data access for the transaction ledger. The
// analytics use cases consume only the read side of this interface and
// never mutate ledger state.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByID(ctx context.Context, userID, id string) (*domain.Transaction, error)
	Update(ctx context.Context, tx *domain.Transaction) error
	Delete(ctx context.Context, userID, id string) error

	List(ctx context.Context, userID string, filter domain.TransactionFilter) ([]*domain.Transaction, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Transaction, error)

	// Pre-aggregated reads; filters combine with AND semantics.
	Sum(ctx context.Context, userID string, filter domain.TransactionFilter) (decimal.Decimal, error)
	Count(ctx context.Context, userID string, filter domain.TransactionFilter) (int64, error)
	SumByCategory(ctx context.Context, userID string, filter domain.TransactionFilter) (map[domain.Category]decimal.Decimal, error)
	Average(ctx context.Context, userID string, filter domain.TransactionFilter) (decimal.Decimal, error)
	MonthlyTotals(ctx context.Context, userID string, period domain.Period) ([]PeriodFlow, error)

	// Platform-wide reads for admin reporting.
	PlatformSum(ctx context.Context, kind domain.Kind) (decimal.Decimal, error)
	PlatformCount(ctx context.Context, since *time.Time) (int64, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	MostActiveUsers(ctx context.Context, limit int) ([]UserActivity, error)
	ListAll(ctx context.Context, filter domain.TransactionFilter, limit, offset int) ([]*domain.Transaction, error)
}

// TextGenerator is the external text-generation collaborator used by the
// advice composer. Implementations must honor ctx cancellation; any error
// triggers the deterministic fallback.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	Generate(user *domain.User) (string, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
