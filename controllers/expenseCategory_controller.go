package controllers

import (
	"backoffice/dto"
	"backoffice/models"
	"backoffice/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ExpenseCategoryController struct {
	db *gorm.DB
}

func NewExpenseCategoryController(db *gorm.DB) *ExpenseCategoryController {
	return &ExpenseCategoryController{db: db}
}

// GetExpenseCategories danh sách nhóm chi phí
func (ec *ExpenseCategoryController) GetExpenseCategories(c *gin.Context) {
	var categories []models.ExpenseCategory
	if err := ec.db.Preload("Admin").Find(&categories).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, "Expense categories fetched successfully", gin.H{"expanceCategories": categories})
}

// CreateExpenseCategory tạo nhóm chi phí, admin lấy từ token
func (ec *ExpenseCategoryController) CreateExpenseCategory(c *gin.Context) {
	var input dto.ExpenseCategoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	adminID := c.GetUint("userID")

	category := models.ExpenseCategory{
		Name:    input.Name,
		AdminID: adminID,
	}
	if err := ec.db.Create(&category).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, "Expense category created successfully", gin.H{"expanceCategory": category})
}

// UpdateExpenseCategory đổi tên nhóm chi phí
func (ec *ExpenseCategoryController) UpdateExpenseCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.ExpenseCategoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var category models.ExpenseCategory
	if err := ec.db.First(&category, id).Error; err != nil {
		response.NotFound(c, "Expense category not found")
		return
	}

	category.Name = input.Name
	if err := ec.db.Save(&category).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, "Expense category updated successfully", gin.H{"expanceCategory": category})
}

// DeleteExpenseCategory xóa nhóm chi phí
func (ec *ExpenseCategoryController) DeleteExpenseCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var category models.ExpenseCategory
	if err := ec.db.First(&category, id).Error; err != nil {
		response.NotFound(c, "Expense category not found")
		return
	}

	if err := ec.db.Delete(&category).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, "Expense category deleted successfully", gin.H{"expanceCategory": category})
}
