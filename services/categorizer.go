package services

import "strings"

// Static keyword rules mapping description fragments to categories.
// First match wins within a rule set; exact matches are tried before
// substring matches.
var categoryRules = map[string]string{
	// FOOD
	"grocery": "Food", "groceries": "Food", "supermarket": "Food", "restaurant": "Food",
	"cafe": "Food", "coffee": "Food", "lunch": "Food", "dinner": "Food", "takeout": "Food",

	// TRANSPORT
	"uber": "Transport", "lyft": "Transport", "taxi": "Transport", "bus": "Transport",
	"train": "Transport", "metro": "Transport", "fuel": "Transport", "gas station": "Transport",
	"parking": "Transport",

	// HOUSING
	"rent": "Housing", "mortgage": "Housing", "landlord": "Housing",

	// UTILITIES
	"electricity": "Utilities", "electric bill": "Utilities", "water bill": "Utilities",
	"internet": "Utilities", "phone bill": "Utilities", "mobile plan": "Utilities",

	// ENTERTAINMENT
	"netflix": "Entertainment", "spotify": "Entertainment", "cinema": "Entertainment",
	"movie": "Entertainment", "concert": "Entertainment", "gym": "Entertainment",

	// HEALTH
	"pharmacy": "Health", "doctor": "Health", "dentist": "Health", "hospital": "Health",
	"insurance": "Health",

	// INCOME
	"salary": "Salary", "payroll": "Salary", "paycheck": "Salary",
}

// SuggestCategory maps a free-text description to a category via the
// keyword rules. Returns "" when no rule matches so callers can fall
// back to asking the user.
func SuggestCategory(description string) string {
	normalized := strings.ToLower(strings.TrimSpace(description))
	if normalized == "" {
		return ""
	}

	if category, ok := categoryRules[normalized]; ok {
		return category
	}
	for keyword, category := range categoryRules {
		if strings.Contains(normalized, keyword) {
			return category
		}
	}
	return ""
}
