package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fintrack/fintrack-api/models"
)

// LedgerStore is the query facade over the owner's ledger. Every query is
// scoped by owner id; cross-owner reads are impossible by construction.
type LedgerStore struct {
	db *sql.DB
}

func NewLedgerStore(db *sql.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

// TransactionFilter narrows a transaction query. Zero-valued fields are
// ignored.
type TransactionFilter struct {
	Kind     models.TransactionKind
	Category string
	From     time.Time
	To       time.Time
}

// Transactions returns the owner's transactions matching the filter,
// newest first.
func (s *LedgerStore) Transactions(ctx context.Context, ownerID string, f TransactionFilter) ([]models.Transaction, error) {
	query := `
		SELECT id, owner_id, type, category, amount, date, COALESCE(description, ''), created_at
		FROM transactions
		WHERE owner_id = $1
	`
	args := []interface{}{ownerID}

	if f.Kind != "" {
		args = append(args, f.Kind)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if !f.From.IsZero() {
		args = append(args, f.From)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if !f.To.IsZero() {
		args = append(args, f.To)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date DESC, created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.OwnerID, &tx.Kind, &tx.Category, &tx.Amount, &tx.Date, &tx.Description, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// GetTransaction fetches one transaction by id, owner-scoped.
func (s *LedgerStore) GetTransaction(ctx context.Context, ownerID, id string) (models.Transaction, error) {
	var tx models.Transaction
	err := s.db.QueryRowContext(ctx, `
		SELECT id, owner_id, type, category, amount, date, COALESCE(description, ''), created_at
		FROM transactions
		WHERE id = $1 AND owner_id = $2
	`, id, ownerID).Scan(&tx.ID, &tx.OwnerID, &tx.Kind, &tx.Category, &tx.Amount, &tx.Date, &tx.Description, &tx.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Transaction{}, NewNotFoundError("transaction", id)
	}
	if err != nil {
		return models.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	return tx, nil
}

// InsertTransaction writes a new ledger entry. Records are immutable:
// there is no update path, only insert and delete.
func (s *LedgerStore) InsertTransaction(ctx context.Context, tx *models.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (id, owner_id, type, category, amount, date, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, tx.ID, tx.OwnerID, tx.Kind, tx.Category, tx.Amount, tx.Date, tx.Description, tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// DeleteTransaction removes a ledger entry, owner-scoped.
func (s *LedgerStore) DeleteTransaction(ctx context.Context, ownerID, id string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM transactions WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return NewNotFoundError("transaction", id)
	}
	return nil
}

// Budgets returns all of the owner's budgets.
func (s *LedgerStore) Budgets(ctx context.Context, ownerID string) ([]models.Budget, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, category, monthly_limit, current_spent, created_at, updated_at
		FROM budgets
		WHERE owner_id = $1
		ORDER BY category
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query budgets: %w", err)
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.Category, &b.MonthlyLimit, &b.CurrentSpent, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// CreateBudget inserts a budget; the (owner, category) unique index turns
// a duplicate into a ConflictError.
func (s *LedgerStore) CreateBudget(ctx context.Context, budget *models.Budget) error {
	if budget.ID == "" {
		budget.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	budget.CreatedAt = now
	budget.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budgets (id, owner_id, category, monthly_limit, current_spent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, $5, $6)
	`, budget.ID, budget.OwnerID, budget.Category, budget.MonthlyLimit, budget.CreatedAt, budget.UpdatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return &ConflictError{Resource: "budget", Reason: "budget for category already exists"}
	}
	if err != nil {
		return fmt.Errorf("create budget: %w", err)
	}
	return nil
}

// UpdateBudgetLimit changes a budget's monthly limit, owner-scoped.
func (s *LedgerStore) UpdateBudgetLimit(ctx context.Context, ownerID, id string, limit models.Cents) (models.Budget, error) {
	var b models.Budget
	err := s.db.QueryRowContext(ctx, `
		UPDATE budgets
		SET monthly_limit = $1, updated_at = $2
		WHERE id = $3 AND owner_id = $4
		RETURNING id, owner_id, category, monthly_limit, current_spent, created_at, updated_at
	`, limit, time.Now().UTC(), id, ownerID).Scan(&b.ID, &b.OwnerID, &b.Category, &b.MonthlyLimit, &b.CurrentSpent, &b.CreatedAt, &b.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Budget{}, NewNotFoundError("budget", id)
	}
	if err != nil {
		return models.Budget{}, fmt.Errorf("update budget: %w", err)
	}
	return b, nil
}

// DeleteBudget removes a budget, owner-scoped.
func (s *LedgerStore) DeleteBudget(ctx context.Context, ownerID, id string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM budgets WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return NewNotFoundError("budget", id)
	}
	return nil
}

// PersistBudgetSpent writes the recomputed current_spent cache value for
// one (owner, category) budget.
func (s *LedgerStore) PersistBudgetSpent(ctx context.Context, ownerID, category string, spent models.Cents) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE budgets
		SET current_spent = $1, updated_at = $2
		WHERE owner_id = $3 AND category = $4
	`, spent, time.Now().UTC(), ownerID, category)
	if err != nil {
		return fmt.Errorf("persist budget spent: %w", err)
	}
	return nil
}
