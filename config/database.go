package config

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func InitDB() (*sql.DB, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			name VARCHAR(255) NOT NULL,
			totp_secret VARCHAR(255),
			totp_enabled BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID REFERENCES users(id) ON DELETE CASCADE,
			refresh_token VARCHAR(500) UNIQUE NOT NULL,
			expires_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		// Amounts are stored as integer cents (BIGINT); transactions are
		// immutable rows, there is no update path.
		`CREATE TABLE IF NOT EXISTS transactions (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			owner_id UUID REFERENCES users(id) ON DELETE CASCADE,
			type VARCHAR(10) NOT NULL CHECK (type IN ('income', 'expense')),
			category VARCHAR(100) NOT NULL,
			amount BIGINT NOT NULL CHECK (amount >= 0),
			date TIMESTAMP NOT NULL,
			description TEXT,
			created_at TIMESTAMP DEFAULT NOW()
		)`,

		// current_spent is a cached value recomputed from the ledger
		// after every expense write; it is never the source of truth.
		`CREATE TABLE IF NOT EXISTS budgets (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			owner_id UUID REFERENCES users(id) ON DELETE CASCADE,
			category VARCHAR(100) NOT NULL,
			monthly_limit BIGINT NOT NULL CHECK (monthly_limit > 0),
			current_spent BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW(),
			UNIQUE(owner_id, category)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_transactions_owner_date ON transactions(owner_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_owner_category ON transactions(owner_id, category)`,
		`CREATE INDEX IF NOT EXISTS idx_budgets_owner_id ON budgets(owner_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
