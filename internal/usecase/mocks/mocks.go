package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finlogix/finlogix/internal/domain"
	"github.com/finlogix/finlogix/internal/usecase"
)

// MockTransactionRepository is a mock implementation of
// TransactionRepository. Set a Func field to control a method; unset
// methods fall back to an in-memory store.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]*domain.Transaction

	CreateFunc          func(ctx context.Context, tx *domain.Transaction) error
	GetByIDFunc         func(ctx context.Context, userID, id string) (*domain.Transaction, error)
	UpdateFunc          func(ctx context.Context, tx *domain.Transaction) error
	DeleteFunc          func(ctx context.Context, userID, id string) error
	ListFunc            func(ctx context.Context, userID string, filter domain.TransactionFilter) ([]*domain.Transaction, error)
	ListRecentFunc      func(ctx context.Context, userID string, limit int) ([]*domain.Transaction, error)
	SumFunc             func(ctx context.Context, userID string, filter domain.TransactionFilter) (decimal.Decimal, error)
	CountFunc           func(ctx context.Context, userID string, filter domain.TransactionFilter) (int64, error)
	SumByCategoryFunc   func(ctx context.Context, userID string, filter domain.TransactionFilter) (map[domain.Category]decimal.Decimal, error)
	AverageFunc         func(ctx context.Context, userID string, filter domain.TransactionFilter) (decimal.Decimal, error)
	MonthlyTotalsFunc   func(ctx context.Context, userID string, period domain.Period) ([]usecase.PeriodFlow, error)
	PlatformSumFunc     func(ctx context.Context, kind domain.Kind) (decimal.Decimal, error)
	PlatformCountFunc   func(ctx context.Context, since *time.Time) (int64, error)
	CountByUserFunc     func(ctx context.Context, userID string) (int64, error)
	MostActiveUsersFunc func(ctx context.Context, limit int) ([]usecase.UserActivity, error)
	ListAllFunc         func(ctx context.Context, filter domain.TransactionFilter, limit, offset int) ([]*domain.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		transactions: make(map[string]*domain.Transaction),
	}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions[tx.ID] = tx
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, userID, id string) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if tx, ok := m.transactions[id]; ok && tx.UserID == userID {
		return tx, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.transactions[tx.ID]; !ok {
		return domain.ErrTransactionNotFound
	}
	m.transactions[tx.ID] = tx
	return nil
}

func (m *MockTransactionRepository) Delete(ctx context.Context, userID, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if tx, ok := m.transactions[id]; ok && tx.UserID == userID {
		delete(m.transactions, id)
		return nil
	}
	return domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) List(ctx context.Context, userID string, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Transaction
	for _, tx := range m.transactions {
		if tx.UserID == userID && matches(tx, filter) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (m *MockTransactionRepository) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Transaction, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, userID, limit)
	}
	out, _ := m.List(ctx, userID, domain.TransactionFilter{})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MockTransactionRepository) Sum(ctx context.Context, userID string, filter domain.TransactionFilter) (decimal.Decimal, error) {
	if m.SumFunc != nil {
		return m.SumFunc(ctx, userID, filter)
	}
	txs, _ := m.List(ctx, userID, filter)
	sum := decimal.Zero
	for _, tx := range txs {
		sum = sum.Add(tx.Amount)
	}
	return sum, nil
}

func (m *MockTransactionRepository) Count(ctx context.Context, userID string, filter domain.TransactionFilter) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, userID, filter)
	}
	txs, _ := m.List(ctx, userID, filter)
	return int64(len(txs)), nil
}

func (m *MockTransactionRepository) SumByCategory(ctx context.Context, userID string, filter domain.TransactionFilter) (map[domain.Category]decimal.Decimal, error) {
	if m.SumByCategoryFunc != nil {
		return m.SumByCategoryFunc(ctx, userID, filter)
	}
	txs, _ := m.List(ctx, userID, filter)
	totals := make(map[domain.Category]decimal.Decimal)
	for _, tx := range txs {
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}
	return totals, nil
}

func (m *MockTransactionRepository) Average(ctx context.Context, userID string, filter domain.TransactionFilter) (decimal.Decimal, error) {
	if m.AverageFunc != nil {
		return m.AverageFunc(ctx, userID, filter)
	}
	sum, _ := m.Sum(ctx, userID, filter)
	count, _ := m.Count(ctx, userID, filter)
	if count == 0 {
		return decimal.Zero, nil
	}
	return sum.Div(decimal.NewFromInt(count)), nil
}

func (m *MockTransactionRepository) MonthlyTotals(ctx context.Context, userID string, period domain.Period) ([]usecase.PeriodFlow, error) {
	if m.MonthlyTotalsFunc != nil {
		return m.MonthlyTotalsFunc(ctx, userID, period)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	totals := make(map[[3]int]decimal.Decimal)
	for _, tx := range m.transactions {
		if tx.UserID != userID || !period.Contains(tx.OccurredAt) {
			continue
		}
		kindIdx := 0
		if tx.Kind == domain.KindExpense {
			kindIdx = 1
		}
		key := [3]int{tx.OccurredAt.Year(), int(tx.OccurredAt.Month()), kindIdx}
		totals[key] = totals[key].Add(tx.Amount)
	}
	var out []usecase.PeriodFlow
	for key, total := range totals {
		kind := domain.KindIncome
		if key[2] == 1 {
			kind = domain.KindExpense
		}
		out = append(out, usecase.PeriodFlow{
			Year:  key[0],
			Month: time.Month(key[1]),
			Kind:  kind,
			Total: total,
		})
	}
	return out, nil
}

func (m *MockTransactionRepository) PlatformSum(ctx context.Context, kind domain.Kind) (decimal.Decimal, error) {
	if m.PlatformSumFunc != nil {
		return m.PlatformSumFunc(ctx, kind)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, tx := range m.transactions {
		if tx.Kind == kind {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum, nil
}

func (m *MockTransactionRepository) PlatformCount(ctx context.Context, since *time.Time) (int64, error) {
	if m.PlatformCountFunc != nil {
		return m.PlatformCountFunc(ctx, since)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, tx := range m.transactions {
		if since == nil || !tx.OccurredAt.Before(*since) {
			count++
		}
	}
	return count, nil
}

func (m *MockTransactionRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	if m.CountByUserFunc != nil {
		return m.CountByUserFunc(ctx, userID)
	}
	return m.Count(ctx, userID, domain.TransactionFilter{})
}

func (m *MockTransactionRepository) MostActiveUsers(ctx context.Context, limit int) ([]usecase.UserActivity, error) {
	if m.MostActiveUsersFunc != nil {
		return m.MostActiveUsersFunc(ctx, limit)
	}
	return nil, nil
}

func (m *MockTransactionRepository) ListAll(ctx context.Context, filter domain.TransactionFilter, limit, offset int) ([]*domain.Transaction, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx, filter, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Transaction
	for _, tx := range m.transactions {
		if matches(tx, filter) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func matches(tx *domain.Transaction, filter domain.TransactionFilter) bool {
	if filter.Kind != nil && tx.Kind != *filter.Kind {
		return false
	}
	if filter.Category != nil && tx.Category != *filter.Category {
		return false
	}
	if !filter.Period.IsZero() && !filter.Period.Contains(tx.OccurredAt) {
		return false
	}
	if filter.AmountBelow != nil && !tx.Amount.LessThan(*filter.AmountBelow) {
		return false
	}
	return true
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	CreateFunc            func(ctx context.Context, user *domain.User) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc        func(ctx context.Context, email string) (*domain.User, error)
	UpdateFunc            func(ctx context.Context, user *domain.User) error
	DeleteFunc            func(ctx context.Context, id string) error
	ListFunc              func(ctx context.Context, filter usecase.ListUsersFilter) ([]*domain.User, int64, error)
	CountFunc             func(ctx context.Context) (int64, error)
	CountActiveFunc       func(ctx context.Context) (int64, error)
	CountCreatedSinceFunc func(ctx context.Context, since time.Time) (int64, error)
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *MockUserRepository) List(ctx context.Context, filter usecase.ListUsersFilter) ([]*domain.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.User
	for _, u := range m.users {
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.users)), nil
}

func (m *MockUserRepository) CountActive(ctx context.Context) (int64, error) {
	if m.CountActiveFunc != nil {
		return m.CountActiveFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, u := range m.users {
		if u.Active {
			count++
		}
	}
	return count, nil
}

func (m *MockUserRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	if m.CountCreatedSinceFunc != nil {
		return m.CountCreatedSinceFunc(ctx, since)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, u := range m.users {
		if !u.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "mock-id"
}

// MockTokenIssuer is a mock implementation of TokenIssuer.
type MockTokenIssuer struct {
	GenerateFunc func(user *domain.User) (string, error)
}

func (m *MockTokenIssuer) Generate(user *domain.User) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(user)
	}
	return "mock-token", nil
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu      sync.Mutex
	entries map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{entries: make(map[string][]byte)}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.entries[key]; ok {
		return true, existing, nil
	}
	m.entries[key] = response
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = response
	return nil
}
