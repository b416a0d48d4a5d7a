package controllers

import (
	"backoffice/dto"
	"backoffice/models"
	"backoffice/response"
	"backoffice/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ExpenseController struct {
	db      *gorm.DB
	reports *services.ReportService
}

func NewExpenseController(db *gorm.DB, reports *services.ReportService) *ExpenseController {
	return &ExpenseController{db: db, reports: reports}
}

// GetExpenses danh sách chi phí kèm nhóm và admin
func (ec *ExpenseController) GetExpenses(c *gin.Context) {
	var expenses []models.Expense
	if err := ec.db.Preload("Admin").Preload("Category").Find(&expenses).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, "Expenses fetched successfully", gin.H{"expenses": expenses})
}

// GetTotalExpenses tổng amount của toàn bộ chi phí
func (ec *ExpenseController) GetTotalExpenses(c *gin.Context) {
	totalExpense, err := ec.reports.TotalExpenses()
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, "Total expense amount calculated successfully", gin.H{"totalExpense": totalExpense})
}

// GetExpenseById một chi phí theo id
func (ec *ExpenseController) GetExpenseById(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var expense models.Expense
	if err := ec.db.Preload("Admin").Preload("Category").First(&expense, id).Error; err != nil {
		response.NotFound(c, "Expense record not found")
		return
	}

	response.Success(c, "Expense fetched successfully", gin.H{"expense": expense})
}

// CreateExpense tạo chi phí mới, kiểm tra nhóm và admin tồn tại
func (ec *ExpenseController) CreateExpense(c *gin.Context) {
	var input dto.ExpenseCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var category models.ExpenseCategory
	if err := ec.db.First(&category, input.Category).Error; err != nil {
		response.NotFound(c, "Expense category not found")
		return
	}

	var admin models.User
	if err := ec.db.First(&admin, input.Admin).Error; err != nil {
		response.NotFound(c, "User not found")
		return
	}

	expense := models.Expense{
		Title:       input.Title,
		Description: input.Description,
		Amount:      *input.Amount,
		Month:       input.Month,
		Year:        input.Year,
		CategoryID:  category.ID,
		AdminID:     admin.ID,
	}
	if err := ec.db.Create(&expense).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, "Expense record created successfully", gin.H{"expense": expense})
}

// UpdateExpense cập nhật từng phần một chi phí
func (ec *ExpenseController) UpdateExpense(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.ExpenseUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var expense models.Expense
	if err := ec.db.First(&expense, id).Error; err != nil {
		response.NotFound(c, "Expense record not found")
		return
	}

	if input.Title != nil {
		expense.Title = *input.Title
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.Amount != nil {
		expense.Amount = *input.Amount
	}
	if input.Category != nil {
		var category models.ExpenseCategory
		if err := ec.db.First(&category, *input.Category).Error; err != nil {
			response.NotFound(c, "Expense category not found")
			return
		}
		expense.CategoryID = category.ID
	}
	if input.Month != nil {
		expense.Month = *input.Month
	}
	if input.Year != nil {
		expense.Year = *input.Year
	}
	if input.Admin != nil {
		expense.AdminID = *input.Admin
	}

	if err := ec.db.Save(&expense).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, "Expense record updated successfully", gin.H{"expense": expense})
}

// DeleteExpense xóa một chi phí
func (ec *ExpenseController) DeleteExpense(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var expense models.Expense
	if err := ec.db.First(&expense, id).Error; err != nil {
		response.NotFound(c, "Expense record not found")
		return
	}

	if err := ec.db.Delete(&expense).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, "Expense record deleted successfully", nil)
}
