package expense

import "strings"

const (
	FoodAndDining     = "Food & Dining"
	Transportation    = "Transportation"
	Shopping          = "Shopping"
	Entertainment     = "Entertainment"
	BillsAndUtilities = "Bills & Utilities"
	Healthcare        = "Healthcare"
	Travel            = "Travel"
	Education         = "Education"
	PersonalCare      = "Personal Care"
	Other             = "Other"
)

var Categories = []string{
	FoodAndDining,
	Transportation,
	Shopping,
	Entertainment,
	BillsAndUtilities,
	Healthcare,
	Travel,
	Education,
	PersonalCare,
	Other,
}

// ParseCategory returns the canonical label matching raw case-insensitively.
func ParseCategory(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	for _, c := range Categories {
		if strings.EqualFold(c, raw) {
			return c, true
		}
	}
	return "", false
}

func IsCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}
