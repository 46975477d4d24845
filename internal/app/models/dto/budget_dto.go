package dto

import "github.com/RohitShalgar4/campus360/internal/app/models"

// CreateBudgetCategoryRequest is the admin payload for a new category.
// Name must come from the fixed allow-list.
type CreateBudgetCategoryRequest struct {
	Name      string  `json:"name" binding:"required"`
	Allocated float64 `json:"allocated" binding:"required,gt=0"`
}

// UpdateBudgetCategoryRequest adjusts a category's allocation
type UpdateBudgetCategoryRequest struct {
	Allocated float64 `json:"allocated" binding:"required,gt=0"`
}

// CreateExpenseRequest is the non-file portion of the multipart expense
// payload; the receipt arrives as the "receipt" form file.
type CreateExpenseRequest struct {
	Title       string  `form:"title" binding:"required"`
	Description string  `form:"description" binding:"required"`
	Amount      float64 `form:"amount" binding:"required,gt=0"`
	Category    string  `form:"category" binding:"required"`
	Date        string  `form:"date" binding:"required"`
}

// UpdateExpenseRequest mirrors the create payload; the receipt file is
// optional and replaces the stored one when present.
type UpdateExpenseRequest struct {
	Title       string  `form:"title" binding:"required"`
	Description string  `form:"description" binding:"required"`
	Amount      float64 `form:"amount" binding:"required,gt=0"`
	Category    string  `form:"category" binding:"required"`
	Date        string  `form:"date" binding:"required"`
}

// ExpenseResponse annotates an expense with its category's current rollup,
// re-joined on every read.
type ExpenseResponse struct {
	models.Expense
	CategoryAllocated float64 `json:"categoryAllocated"`
	CategorySpent     float64 `json:"categorySpent"`
	CategoryRemaining float64 `json:"categoryRemaining"`
}
