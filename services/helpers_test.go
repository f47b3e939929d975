package services

import (
	"testing"
	"time"

	"github.com/fintrack/fintrack-api/models"
)

// tx builds a test transaction; date is "2006-01-02".
func tx(t *testing.T, kind models.TransactionKind, category string, cents int64, date string) models.Transaction {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	return models.Transaction{
		Kind:     kind,
		Category: category,
		Amount:   models.Cents(cents),
		Date:     parsed,
	}
}

func expense(t *testing.T, category string, cents int64, date string) models.Transaction {
	return tx(t, models.KindExpense, category, cents, date)
}

func income(t *testing.T, category string, cents int64, date string) models.Transaction {
	return tx(t, models.KindIncome, category, cents, date)
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return parsed
}
