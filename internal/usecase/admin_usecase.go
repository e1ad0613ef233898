package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finlogix/finlogix/internal/domain"
)

// AdminUseCase serves platform-wide administration and reporting.
type AdminUseCase struct {
	userRepo UserRepository
	txRepo   TransactionRepository
	now      func() time.Time
}

// NewAdminUseCase creates a new AdminUseCase.
func NewAdminUseCase(userRepo UserRepository, txRepo TransactionRepository) *AdminUseCase {
	return &AdminUseCase{
		userRepo: userRepo,
		txRepo:   txRepo,
		now:      time.Now,
	}
}

// PlatformStats summarizes activity across all users.
type PlatformStats struct {
	TotalUsers        int64
	ActiveUsers       int64
	NewUsersThisMonth int64
	TotalTransactions int64
	TransactionsToday int64
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	MostActiveUsers   []UserActivity
}

// Stats gathers the admin dashboard figures.
func (uc *AdminUseCase) Stats(ctx context.Context) (*PlatformStats, error) {
	now := uc.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	totalUsers, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	activeUsers, err := uc.userRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	newUsers, err := uc.userRepo.CountCreatedSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}

	totalTx, err := uc.txRepo.PlatformCount(ctx, nil)
	if err != nil {
		return nil, err
	}
	todayTx, err := uc.txRepo.PlatformCount(ctx, &dayStart)
	if err != nil {
		return nil, err
	}

	totalIncome, err := uc.txRepo.PlatformSum(ctx, domain.KindIncome)
	if err != nil {
		return nil, err
	}
	totalExpenses, err := uc.txRepo.PlatformSum(ctx, domain.KindExpense)
	if err != nil {
		return nil, err
	}

	mostActive, err := uc.txRepo.MostActiveUsers(ctx, RecentTransactionsLimit)
	if err != nil {
		return nil, err
	}

	return &PlatformStats{
		TotalUsers:        totalUsers,
		ActiveUsers:       activeUsers,
		NewUsersThisMonth: newUsers,
		TotalTransactions: totalTx,
		TransactionsToday: todayTx,
		TotalIncome:       totalIncome,
		TotalExpenses:     totalExpenses,
		MostActiveUsers:   mostActive,
	}, nil
}

// ListUsers lists users with search and role filters, returning the total
// match count for pagination.
func (uc *AdminUseCase) ListUsers(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultPageSize
	}
	if filter.Limit > MaxPageSize {
		filter.Limit = MaxPageSize
	}
	if filter.Role != nil && !filter.Role.IsValid() {
		return nil, 0, domain.ErrInvalidRole
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	for _, u := range users {
		u.HashedPassword = ""
	}
	return users, total, nil
}

// GetUser returns one user's account together with their transaction count.
func (uc *AdminUseCase) GetUser(ctx context.Context, userID string) (*domain.User, int64, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	txCount, err := uc.txRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	user.HashedPassword = ""
	return user, txCount, nil
}

// SetUserRoleInput represents an admin change to another user's account.
type SetUserRoleInput struct {
	UserID string
	Role   *domain.Role
	Active *bool
}

// SetUserRole updates a user's role or active flag.
func (uc *AdminUseCase) SetUserRole(ctx context.Context, input SetUserRoleInput) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, domain.ErrInvalidRole
		}
		user.Role = *input.Role
	}
	if input.Active != nil {
		user.Active = *input.Active
	}

	user.UpdatedAt = uc.now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	user.HashedPassword = ""
	return user, nil
}

// DeleteUser removes a user account and, through the store's cascade, its
// transactions.
func (uc *AdminUseCase) DeleteUser(ctx context.Context, userID string) error {
	return uc.userRepo.Delete(ctx, userID)
}

// ListAllTransactions lists transactions across all users for moderation.
func (uc *AdminUseCase) ListAllTransactions(ctx context.Context, filter domain.TransactionFilter, limit, offset int) ([]*domain.Transaction, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if err := filter.Period.Validate(); err != nil {
		return nil, err
	}
	return uc.txRepo.ListAll(ctx, filter, limit, offset)
}
