package controllers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RohitShalgar4/campus360/internal/app/models/dto"
	"github.com/RohitShalgar4/campus360/internal/app/services"
	"github.com/RohitShalgar4/campus360/internal/middleware"
)

// BudgetController handles budget category and expense endpoints
type BudgetController struct {
	budgetService services.BudgetService
}

// NewBudgetController creates a new BudgetController
func NewBudgetController(budgetService services.BudgetService) *BudgetController {
	return &BudgetController{budgetService: budgetService}
}

// CreateCategory godoc
// @Summary Create a budget category
// @Tags budget
// @Accept json
// @Produce json
// @Param request body dto.CreateBudgetCategoryRequest true "Category details"
// @Success 201 {object} dto.APIResponse
// @Security BearerAuth
// @Router /budget/categories [post]
func (bc *BudgetController) CreateCategory(c *gin.Context) {
	var req dto.CreateBudgetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	category, err := bc.budgetService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(category, "Budget category created successfully"))
}

// GetAllCategories godoc
// @Summary List budget categories with rollups
// @Tags budget
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /budget/categories [get]
func (bc *BudgetController) GetAllCategories(c *gin.Context) {
	categories, err := bc.budgetService.GetAllCategories(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(categories, "Budget categories retrieved successfully"))
}

// GetCategory godoc
// @Summary Get a budget category
// @Tags budget
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /budget/categories/{id} [get]
func (bc *BudgetController) GetCategory(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	category, err := bc.budgetService.GetCategory(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(category, "Budget category retrieved successfully"))
}

// UpdateCategory godoc
// @Summary Update a category's allocation
// @Tags budget
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body dto.UpdateBudgetCategoryRequest true "New allocation"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /budget/categories/{id} [put]
func (bc *BudgetController) UpdateCategory(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateBudgetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	category, err := bc.budgetService.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(category, "Budget category updated successfully"))
}

// DeleteCategory godoc
// @Summary Delete a budget category
// @Tags budget
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /budget/categories/{id} [delete]
func (bc *BudgetController) DeleteCategory(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := bc.budgetService.DeleteCategory(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Budget category deleted successfully"))
}

// receiptFile pulls the optional "receipt" form file, distinguishing
// absence from read failures
func receiptFile(c *gin.Context) (*multipart.FileHeader, error) {
	file, err := c.FormFile("receipt")
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return file, nil
}

// CreateExpense godoc
// @Summary Record an expense with its receipt
// @Tags budget
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Expense title"
// @Param amount formData number true "Amount"
// @Param category formData string true "Category name"
// @Param receipt formData file true "Receipt (JPEG, PNG or PDF)"
// @Success 201 {object} dto.APIResponse
// @Security BearerAuth
// @Router /budget/expenses [post]
func (bc *BudgetController) CreateExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	receipt, err := receiptFile(c)
	if err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	addedBy, _ := middleware.GetUserID(c)

	expense, err := bc.budgetService.CreateExpense(c.Request.Context(), addedBy, &req, receipt)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(expense, "Expense recorded successfully"))
}

// GetAllExpenses godoc
// @Summary List expenses with category rollups
// @Tags budget
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /budget/expenses [get]
func (bc *BudgetController) GetAllExpenses(c *gin.Context) {
	expenses, err := bc.budgetService.GetAllExpenses(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(expenses, "Expenses retrieved successfully"))
}

// GetExpense godoc
// @Summary Get an expense
// @Tags budget
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /budget/expenses/{id} [get]
func (bc *BudgetController) GetExpense(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	expense, err := bc.budgetService.GetExpense(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(expense, "Expense retrieved successfully"))
}

// UpdateExpense godoc
// @Summary Update an expense
// @Tags budget
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /budget/expenses/{id} [put]
func (bc *BudgetController) UpdateExpense(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	receipt, err := receiptFile(c)
	if err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	expense, err := bc.budgetService.UpdateExpense(c.Request.Context(), id, &req, receipt)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(expense, "Expense updated successfully"))
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Tags budget
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} dto.APIResponse
// @Security BearerAuth
// @Router /budget/expenses/{id} [delete]
func (bc *BudgetController) DeleteExpense(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := bc.budgetService.DeleteExpense(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Expense deleted successfully"))
}
