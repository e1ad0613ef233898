package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/finlogix/finlogix/internal/adapter/http/dto"
	"github.com/finlogix/finlogix/internal/adapter/http/middleware"
	"github.com/finlogix/finlogix/internal/domain"
	"github.com/finlogix/finlogix/internal/usecase"
)

type transactionServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error)
	getFn    func(ctx context.Context, userID, id string) (*domain.Transaction, error)
	updateFn func(ctx context.Context, input usecase.UpdateTransactionInput) (*domain.Transaction, error)
	deleteFn func(ctx context.Context, userID, id string) error
	listFn   func(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error)
}

func (s *transactionServiceStub) CreateTransaction(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error) {
	return s.createFn(ctx, input)
}

func (s *transactionServiceStub) GetTransaction(ctx context.Context, userID, id string) (*domain.Transaction, error) {
	return s.getFn(ctx, userID, id)
}

func (s *transactionServiceStub) UpdateTransaction(ctx context.Context, input usecase.UpdateTransactionInput) (*domain.Transaction, error) {
	return s.updateFn(ctx, input)
}

func (s *transactionServiceStub) DeleteTransaction(ctx context.Context, userID, id string) error {
	return s.deleteFn(ctx, userID, id)
}

func (s *transactionServiceStub) ListTransactions(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error) {
	return s.listFn(ctx, input)
}

func withUser(r *http.Request, user *domain.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.UserContextKey, user))
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}

func TestTransactionHandler_Create_Success(t *testing.T) {
	tx := &domain.Transaction{
		ID:       "tx-1",
		UserID:   "user-1",
		Amount:   decimal.NewFromInt(42),
		Kind:     domain.KindExpense,
		Category: domain.CategoryFood,
	}

	var captured usecase.CreateTransactionInput
	handler := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error) {
			captured = input
			return tx, nil
		},
	})

	body, _ := json.Marshal(dto.CreateTransactionRequest{
		Amount:   decimal.NewFromInt(42),
		Kind:     "expense",
		Category: "food",
		Note:     "groceries",
	})

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	req = withUser(req, &domain.User{ID: "user-1"})
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.UserID != "user-1" || captured.Category != domain.CategoryFood || captured.Note != "groceries" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "tx-1" {
		t.Fatalf("expected transaction ID tx-1, got %s", resp.ID)
	}
}

func TestTransactionHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error) {
			t.Fatal("CreateTransaction should not be called for invalid payload")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewBufferString("{invalid json"))
	req = withUser(req, &domain.User{ID: "user-1"})
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Create_Unauthenticated(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{})

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestTransactionHandler_Create_DomainError(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateTransactionInput) (*domain.Transaction, error) {
			return nil, domain.ErrCategoryKindMismatch
		},
	})

	body, _ := json.Marshal(dto.CreateTransactionRequest{
		Amount:   decimal.NewFromInt(10),
		Kind:     "income",
		Category: "food",
	})
	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	req = withUser(req, &domain.User{ID: "user-1"})
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Get_NotFound(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		getFn: func(ctx context.Context, userID, id string) (*domain.Transaction, error) {
			return nil, domain.ErrTransactionNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions/tx-9", nil)
	req = withUser(req, &domain.User{ID: "user-1"})
	req = setChiURLParam(req, "id", "tx-9")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTransactionHandler_List_FilterFromQuery(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		listFn: func(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error) {
			if input.Filter.Kind == nil || *input.Filter.Kind != domain.KindExpense {
				t.Fatalf("expected expense kind filter, got %+v", input.Filter)
			}
			if !input.Filter.Period.HasStart || !input.Filter.Period.HasEnd {
				t.Fatalf("expected bounded period for year+month query")
			}
			return []*domain.Transaction{{ID: "tx-1"}, {ID: "tx-2"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions?kind=expense&year=2025&month=6", nil)
	req = withUser(req, &domain.User{ID: "user-1"})
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ListTransactionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Transactions) != 2 || resp.Total != 2 {
		t.Fatalf("expected 2 transactions, got %+v", resp)
	}
}

func TestTransactionHandler_List_RejectsInvalidKind(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{
		listFn: func(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error) {
			t.Fatal("ListTransactions should not be called for invalid filter")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions?kind=bogus", nil)
	req = withUser(req, &domain.User{ID: "user-1"})
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Delete(t *testing.T) {
	var deletedID string
	handler := NewTransactionHandler(&transactionServiceStub{
		deleteFn: func(ctx context.Context, userID, id string) error {
			deletedID = id
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/transactions/tx-3", nil)
	req = withUser(req, &domain.User{ID: "user-1"})
	req = setChiURLParam(req, "id", "tx-3")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deletedID != "tx-3" {
		t.Fatalf("expected tx-3 to be deleted, got %s", deletedID)
	}
}

func TestTransactionHandler_Categories(t *testing.T) {
	handler := NewTransactionHandler(&transactionServiceStub{})

	req := httptest.NewRequest(http.MethodGet, "/transactions/categories", nil)
	rec := httptest.NewRecorder()

	handler.Categories(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.CategoriesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Income) == 0 || len(resp.Expense) == 0 {
		t.Fatalf("expected both category lists to be populated, got %+v", resp)
	}
}
