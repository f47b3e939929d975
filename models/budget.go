package models

import "time"

// Budget is a per-category monthly spending limit. At most one budget
// exists per (owner, category) pair, enforced by a unique index.
//
// CurrentSpent is a cached materialized value, recomputed wholesale from
// the ledger after every expense create/delete. It may be stale between
// writes and is never the source of truth.
type Budget struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Category     string    `json:"category"`
	MonthlyLimit Cents     `json:"monthly_limit"`
	CurrentSpent Cents     `json:"current_spent"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateBudgetRequest struct {
	Category     string `json:"category" binding:"required"`
	MonthlyLimit Cents  `json:"monthly_limit" binding:"required"`
}

type UpdateBudgetRequest struct {
	MonthlyLimit Cents `json:"monthly_limit" binding:"required"`
}
