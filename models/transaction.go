package models

import "time"

// ============================================================================
// TRANSACTION MODEL
// ============================================================================

type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

func (k TransactionKind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction is a single dated ledger entry. Records are immutable once
// created: the write path only ever inserts or deletes, never updates.
type Transaction struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	Kind        TransactionKind `json:"type"`
	Category    string          `json:"category"`
	Amount      Cents           `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TransactionSlim is the reduced shape embedded in per-category
// top-transaction listings.
type TransactionSlim struct {
	Amount      Cents     `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
}

type CreateTransactionRequest struct {
	Kind        TransactionKind `json:"type" binding:"required,oneof=income expense"`
	Category    string          `json:"category" binding:"required"`
	Amount      Cents           `json:"amount" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	Description string          `json:"description"`
}
