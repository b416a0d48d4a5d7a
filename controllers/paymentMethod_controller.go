package controllers

import (
	"backoffice/dto"
	"backoffice/models"
	"backoffice/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaymentMethodController struct {
	db *gorm.DB
}

func NewPaymentMethodController(db *gorm.DB) *PaymentMethodController {
	return &PaymentMethodController{db: db}
}

// GetPaymentMethods danh sách phương thức thanh toán
func (pc *PaymentMethodController) GetPaymentMethods(c *gin.Context) {
	var paymentMethods []models.PaymentMethod
	if err := pc.db.Find(&paymentMethods).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, "Payment methods fetched successfully", gin.H{"paymentMethods": paymentMethods})
}

// CreatePaymentMethod tạo phương thức thanh toán mới, tên là duy nhất
func (pc *PaymentMethodController) CreatePaymentMethod(c *gin.Context) {
	var input dto.PaymentMethodRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var existing models.PaymentMethod
	if err := pc.db.Where("method = ?", input.Method).First(&existing).Error; err == nil {
		response.BadRequest(c, "Payment method already exists")
		return
	}

	paymentMethod := models.PaymentMethod{Method: input.Method}
	if err := pc.db.Create(&paymentMethod).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, "Payment method created successfully", gin.H{"paymentMethod": paymentMethod})
}

// UpdatePaymentMethod đổi tên phương thức thanh toán
func (pc *PaymentMethodController) UpdatePaymentMethod(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.PaymentMethodRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var paymentMethod models.PaymentMethod
	if err := pc.db.First(&paymentMethod, id).Error; err != nil {
		response.NotFound(c, "Payment method not found")
		return
	}

	paymentMethod.Method = input.Method
	if err := pc.db.Save(&paymentMethod).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, "Payment method updated successfully", gin.H{"paymentMethod": paymentMethod})
}

// DeletePaymentMethod xóa phương thức thanh toán
func (pc *PaymentMethodController) DeletePaymentMethod(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var paymentMethod models.PaymentMethod
	if err := pc.db.First(&paymentMethod, id).Error; err != nil {
		response.NotFound(c, "Payment method not found")
		return
	}

	if err := pc.db.Delete(&paymentMethod).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, "Payment method deleted successfully", gin.H{"paymentMethod": paymentMethod})
}
