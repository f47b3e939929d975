package services

import "testing"

func TestSuggestCategory(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"Netflix", "Entertainment"},
		{"NETFLIX subscription", "Entertainment"},
		{"weekly groceries", "Food"},
		{"rent march", "Housing"},
		{"monthly payroll deposit", "Salary"},
		{"mystery purchase", ""},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := SuggestCategory(tt.description); got != tt.want {
			t.Errorf("SuggestCategory(%q) = %q, want %q", tt.description, got, tt.want)
		}
	}
}
