package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finlogix/finlogix/internal/domain"
)

// TransactionUseCase handles ledger write and read operations for a single
// user.
type TransactionUseCase struct {
	txRepo TransactionRepository
	idGen  IDGenerator
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(txRepo TransactionRepository, idGen IDGenerator) *TransactionUseCase {
	return &TransactionUseCase{
		txRepo: txRepo,
		idGen:  idGen,
	}
}

// CreateTransactionInput represents input for recording a transaction.
type CreateTransactionInput struct {
	UserID            string
	Amount            decimal.Decimal
	Kind              domain.Kind
	Category          domain.Category
	Note              string
	AudioMemoFilename string
	OccurredAt        *time.Time
}

// CreateTransaction records a new transaction. OccurredAt defaults to the
// current time when absent.
func (uc *TransactionUseCase) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := domain.ValidateNote(input.Note); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	occurredAt := now
	if input.OccurredAt != nil {
		occurredAt = input.OccurredAt.UTC()
	}

	tx := &domain.Transaction{
		ID:                uc.idGen.Generate(),
		UserID:            input.UserID,
		Amount:            input.Amount,
		Kind:              input.Kind,
		Category:          input.Category,
		Note:              input.Note,
		AudioMemoFilename: input.AudioMemoFilename,
		OccurredAt:        occurredAt,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}

	if err := uc.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// GetTransaction retrieves one of the user's transactions by ID.
func (uc *TransactionUseCase) GetTransaction(ctx context.Context, userID, id string) (*domain.Transaction, error) {
	return uc.txRepo.GetByID(ctx, userID, id)
}

// UpdateTransactionInput represents input for updating a transaction. Nil
// fields are left unchanged.
type UpdateTransactionInput struct {
	UserID     string
	ID         string
	Amount     *decimal.Decimal
	Kind       *domain.Kind
	Category   *domain.Category
	Note       *string
	OccurredAt *time.Time
}

// UpdateTransaction applies a partial update to an existing transaction.
// Changing the kind requires the category to stay consistent, so the merged
// record is re-validated as a whole.
func (uc *TransactionUseCase) UpdateTransaction(ctx context.Context, input UpdateTransactionInput) (*domain.Transaction, error) {
	tx, err := uc.txRepo.GetByID(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if err := domain.ValidateAmount(*input.Amount); err != nil {
			return nil, err
		}
		tx.Amount = *input.Amount
	}
	if input.Kind != nil {
		tx.Kind = *input.Kind
	}
	if input.Category != nil {
		tx.Category = *input.Category
	}
	if input.Note != nil {
		if err := domain.ValidateNote(*input.Note); err != nil {
			return nil, err
		}
		tx.Note = *input.Note
	}
	if input.OccurredAt != nil {
		tx.OccurredAt = input.OccurredAt.UTC()
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}

	tx.UpdatedAt = time.Now().UTC()

	if err := uc.txRepo.Update(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// DeleteTransaction removes one of the user's transactions.
func (uc *TransactionUseCase) DeleteTransaction(ctx context.Context, userID, id string) error {
	return uc.txRepo.Delete(ctx, userID, id)
}

// ListTransactionsInput represents input for listing transactions.
type ListTransactionsInput struct {
	UserID string
	Filter domain.TransactionFilter
}

// ListTransactions lists the user's transactions matching the filter,
// newest first.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context, input ListTransactionsInput) ([]*domain.Transaction, error) {
	if err := input.Filter.Period.Validate(); err != nil {
		return nil, err
	}
	return uc.txRepo.List(ctx, input.UserID, input.Filter)
}

// ListRecentTransactions returns the user's most recent transactions.
func (uc *TransactionUseCase) ListRecentTransactions(ctx context.Context, userID string, limit int) ([]*domain.Transaction, error) {
	if limit <= 0 {
		limit = RecentTransactionsLimit
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return uc.txRepo.ListRecent(ctx, userID, limit)
}
