package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finlogix/finlogix/internal/domain"
	"github.com/finlogix/finlogix/internal/usecase"
	"github.com/finlogix/finlogix/internal/usecase/mocks"
)

func TestAdminUseCase_Stats(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	txRepo := mocks.NewMockTransactionRepository()

	users := []*domain.User{
		{ID: "u1", Email: "a@b.com", Active: true, CreatedAt: time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "u2", Email: "c@d.com", Active: true, CreatedAt: time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "u3", Email: "e@f.com", Active: false, CreatedAt: time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC)},
	}
	for _, u := range users {
		if err := userRepo.Create(context.Background(), u); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	seedTransaction(t, txRepo, "t1", domain.KindIncome, domain.CategorySalary, 1000, time.Date(2025, time.June, 15, 8, 0, 0, 0, time.UTC))
	seedTransaction(t, txRepo, "t2", domain.KindExpense, domain.CategoryFood, 400, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))

	uc := usecase.NewAdminUseCase(userRepo, txRepo)
	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalUsers != 3 || stats.ActiveUsers != 2 {
		t.Errorf("users = %d/%d", stats.TotalUsers, stats.ActiveUsers)
	}
	if stats.TotalTransactions != 2 {
		t.Errorf("transactions = %d", stats.TotalTransactions)
	}
	if !stats.TotalIncome.Equal(decimal.NewFromInt(1000)) || !stats.TotalExpenses.Equal(decimal.NewFromInt(400)) {
		t.Errorf("income/expenses = %s/%s", stats.TotalIncome, stats.TotalExpenses)
	}
}

func TestAdminUseCase_ListUsersRejectsUnknownRole(t *testing.T) {
	uc := usecase.NewAdminUseCase(mocks.NewMockUserRepository(), mocks.NewMockTransactionRepository())

	bad := domain.Role("superuser")
	_, _, err := uc.ListUsers(context.Background(), usecase.ListUsersFilter{Role: &bad})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAdminUseCase_SetUserRole(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	if err := userRepo.Create(context.Background(), &domain.User{
		ID: "u1", Email: "a@b.com", Role: domain.RoleUser, Active: true,
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	uc := usecase.NewAdminUseCase(userRepo, mocks.NewMockTransactionRepository())

	admin := domain.RoleAdmin
	inactive := false
	user, err := uc.SetUserRole(context.Background(), usecase.SetUserRoleInput{
		UserID: "u1",
		Role:   &admin,
		Active: &inactive,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != domain.RoleAdmin || user.Active {
		t.Errorf("user = %+v", user)
	}

	bad := domain.Role("superuser")
	if _, err := uc.SetUserRole(context.Background(), usecase.SetUserRoleInput{UserID: "u1", Role: &bad}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
