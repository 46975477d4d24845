package models

import "time"

// AllowedBudgetCategories is the fixed enumeration budget categories and
// expense category references must come from.
var AllowedBudgetCategories = []string{
	"Infrastructure",
	"Events",
	"Maintenance",
	"Sports",
	"Academics",
	"Miscellaneous",
}

// IsAllowedBudgetCategory reports whether name is in the fixed allow-list
func IsAllowedBudgetCategory(name string) bool {
	for _, c := range AllowedBudgetCategories {
		if c == name {
			return true
		}
	}
	return false
}

// BudgetCategory defines the budget category model based on the
// 'budget_categories' table. Spent is recomputed from matching expenses on
// every read; Remaining is always derived as Allocated - Spent.
type BudgetCategory struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Allocated float64   `json:"allocated" db:"allocated"`
	Spent     float64   `json:"spent" db:"spent"`
	Remaining float64   `json:"remaining"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Expense defines the expense model based on the 'expenses' table.
// Category is a string reference to a BudgetCategory by name, not an
// ownership relation.
type Expense struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	Amount          float64   `json:"amount" db:"amount"`
	Category        string    `json:"category" db:"category"`
	Date            string    `json:"date" db:"date"`
	ReceiptURL      string    `json:"receiptUrl" db:"receipt_url"`
	ReceiptPublicID string    `json:"receiptPublicId" db:"receipt_public_id"`
	AddedBy         int64     `json:"addedBy" db:"added_by"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}
