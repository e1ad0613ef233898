package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/finlogix/finlogix/internal/domain"
	"github.com/finlogix/finlogix/internal/usecase"
)

// TransactionRepository implements transaction persistence and the
// pre-aggregated reads the analytics layer runs on. Aggregation happens in
// SQL so only rollups cross the wire.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewTransactionRepository creates a new transaction repository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{
		pool:    pool,
		retrier: NewRetrier(log.Logger),
	}
}

const txColumns = `id, user_id, amount, kind, category, note, audio_memo_filename, occurred_at, created_at, updated_at`

// filterSQL renders the filter as AND conditions, continuing the
// placeholder numbering from argIdx.
func filterSQL(filter domain.TransactionFilter, argIdx int) (string, []any) {
	var sql string
	var args []any

	if filter.Kind != nil {
		sql += fmt.Sprintf(` AND kind = $%d`, argIdx)
		args = append(args, *filter.Kind)
		argIdx++
	}
	if filter.Category != nil {
		sql += fmt.Sprintf(` AND category = $%d`, argIdx)
		args = append(args, *filter.Category)
		argIdx++
	}
	if filter.Period.HasStart {
		sql += fmt.Sprintf(` AND occurred_at >= $%d`, argIdx)
		args = append(args, filter.Period.Start)
		argIdx++
	}
	if filter.Period.HasEnd {
		sql += fmt.Sprintf(` AND occurred_at < $%d`, argIdx)
		args = append(args, filter.Period.End)
		argIdx++
	}
	if filter.AmountBelow != nil {
		sql += fmt.Sprintf(` AND amount < $%d`, argIdx)
		args = append(args, *filter.AmountBelow)
	}

	return sql, args
}

// Create inserts a new transaction.
func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + txColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, query,
			tx.ID,
			tx.UserID,
			tx.Amount,
			tx.Kind,
			tx.Category,
			tx.Note,
			tx.AudioMemoFilename,
			tx.OccurredAt,
			tx.CreatedAt,
			tx.UpdatedAt,
		)
		return err
	})
}

// GetByID retrieves one of the user's transactions.
func (r *TransactionRepository) GetByID(ctx context.Context, userID, id string) (*domain.Transaction, error) {
	query := `SELECT ` + txColumns + ` FROM transactions WHERE id = $1 AND user_id = $2`

	tx, err := scanTransaction(r.pool.QueryRow(ctx, query, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTransactionNotFound
	}
	return tx, err
}

// Update rewrites a transaction's mutable fields.
func (r *TransactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	query := `
		UPDATE transactions
		SET amount = $3, kind = $4, category = $5, note = $6, occurred_at = $7, updated_at = $8
		WHERE id = $1 AND user_id = $2
	`

	return r.retrier.Retry(ctx, func() error {
		tag, err := r.pool.Exec(ctx, query,
			tx.ID,
			tx.UserID,
			tx.Amount,
			tx.Kind,
			tx.Category,
			tx.Note,
			tx.OccurredAt,
			tx.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrTransactionNotFound
		}
		return nil
	})
}

// Delete removes one of the user's transactions.
func (r *TransactionRepository) Delete(ctx context.Context, userID, id string) error {
	return r.retrier.Retry(ctx, func() error {
		tag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrTransactionNotFound
		}
		return nil
	})
}

// List returns the user's transactions matching the filter, newest first.
func (r *TransactionRepository) List(ctx context.Context, userID string, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	cond, args := filterSQL(filter, 2)
	query := `SELECT ` + txColumns + ` FROM transactions WHERE user_id = $1` + cond + ` ORDER BY occurred_at DESC, id DESC`

	return r.queryTransactions(ctx, query, append([]any{userID}, args...)...)
}

// ListRecent returns the user's latest transactions.
func (r *TransactionRepository) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Transaction, error) {
	query := `SELECT ` + txColumns + ` FROM transactions WHERE user_id = $1 ORDER BY occurred_at DESC, id DESC LIMIT $2`

	return r.queryTransactions(ctx, query, userID, limit)
}

// Sum totals the matching amounts. No matches yields zero.
func (r *TransactionRepository) Sum(ctx context.Context, userID string, filter domain.TransactionFilter) (decimal.Decimal, error) {
	cond, args := filterSQL(filter, 2)
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = $1` + cond

	var sum decimal.Decimal
	err := r.pool.QueryRow(ctx, query, append([]any{userID}, args...)...).Scan(&sum)
	return sum, err
}

// Count counts the matching transactions.
func (r *TransactionRepository) Count(ctx context.Context, userID string, filter domain.TransactionFilter) (int64, error) {
	cond, args := filterSQL(filter, 2)
	query := `SELECT COUNT(*) FROM transactions WHERE user_id = $1` + cond

	var count int64
	err := r.pool.QueryRow(ctx, query, append([]any{userID}, args...)...).Scan(&count)
	return count, err
}

// Average averages the matching amounts. No matches yields zero.
func (r *TransactionRepository) Average(ctx context.Context, userID string, filter domain.TransactionFilter) (decimal.Decimal, error) {
	cond, args := filterSQL(filter, 2)
	query := `SELECT COALESCE(AVG(amount), 0) FROM transactions WHERE user_id = $1` + cond

	var avg decimal.Decimal
	err := r.pool.QueryRow(ctx, query, append([]any{userID}, args...)...).Scan(&avg)
	return avg, err
}

// SumByCategory totals the matching amounts per category.
func (r *TransactionRepository) SumByCategory(ctx context.Context, userID string, filter domain.TransactionFilter) (map[domain.Category]decimal.Decimal, error) {
	cond, args := filterSQL(filter, 2)
	query := `SELECT category, SUM(amount) FROM transactions WHERE user_id = $1` + cond + ` GROUP BY category`

	rows, err := r.pool.Query(ctx, query, append([]any{userID}, args...)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[domain.Category]decimal.Decimal)
	for rows.Next() {
		var category domain.Category
		var total decimal.Decimal
		if err := rows.Scan(&category, &total); err != nil {
			return nil, err
		}
		totals[category] = total
	}

	return totals, rows.Err()
}

// MonthlyTotals rolls the period up into per-month, per-kind totals.
func (r *TransactionRepository) MonthlyTotals(ctx context.Context, userID string, period domain.Period) ([]usecase.PeriodFlow, error) {
	cond, args := filterSQL(domain.TransactionFilter{Period: period}, 2)
	query := `
		SELECT EXTRACT(YEAR FROM occurred_at)::int,
		       EXTRACT(MONTH FROM occurred_at)::int,
		       kind,
		       SUM(amount)
		FROM transactions
		WHERE user_id = $1` + cond + `
		GROUP BY 1, 2, 3
		ORDER BY 1, 2
	`

	rows, err := r.pool.Query(ctx, query, append([]any{userID}, args...)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flows []usecase.PeriodFlow
	for rows.Next() {
		var flow usecase.PeriodFlow
		var month int
		if err := rows.Scan(&flow.Year, &month, &flow.Kind, &flow.Total); err != nil {
			return nil, err
		}
		flow.Month = time.Month(month)
		flows = append(flows, flow)
	}

	return flows, rows.Err()
}

// PlatformSum totals all amounts of one kind across every user.
func (r *TransactionRepository) PlatformSum(ctx context.Context, kind domain.Kind) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE kind = $1`, kind).Scan(&sum)
	return sum, err
}

// PlatformCount counts transactions across every user, optionally only
// those occurring at or after since.
func (r *TransactionRepository) PlatformCount(ctx context.Context, since *time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM transactions`
	args := []any{}
	if since != nil {
		query += ` WHERE occurred_at >= $1`
		args = append(args, *since)
	}

	var count int64
	err := r.pool.QueryRow(ctx, query, args...).Scan(&count)
	return count, err
}

// CountByUser counts one user's transactions.
func (r *TransactionRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	return r.Count(ctx, userID, domain.TransactionFilter{})
}

// MostActiveUsers returns the users with the most transactions.
func (r *TransactionRepository) MostActiveUsers(ctx context.Context, limit int) ([]usecase.UserActivity, error) {
	query := `
		SELECT u.id, u.name, u.email, COUNT(t.id)
		FROM users u
		JOIN transactions t ON t.user_id = u.id
		GROUP BY u.id, u.name, u.email
		ORDER BY COUNT(t.id) DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activity []usecase.UserActivity
	for rows.Next() {
		var a usecase.UserActivity
		if err := rows.Scan(&a.UserID, &a.Name, &a.Email, &a.TransactionCount); err != nil {
			return nil, err
		}
		activity = append(activity, a)
	}

	return activity, rows.Err()
}

// ListAll returns transactions across every user for admin review.
func (r *TransactionRepository) ListAll(ctx context.Context, filter domain.TransactionFilter, limit, offset int) ([]*domain.Transaction, error) {
	cond, args := filterSQL(filter, 1)
	query := `SELECT ` + txColumns + ` FROM transactions WHERE 1=1` + cond +
		fmt.Sprintf(` ORDER BY occurred_at DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	return r.queryTransactions(ctx, query, args...)
}

func (r *TransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []*domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := row.Scan(
		&tx.ID,
		&tx.UserID,
		&tx.Amount,
		&tx.Kind,
		&tx.Category,
		&tx.Note,
		&tx.AudioMemoFilename,
		&tx.OccurredAt,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}
