package dto

type PaymentMethodRequest struct {
	Method string `json:"method" binding:"required"`
}
