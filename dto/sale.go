package dto

import "time"

type SaleCreateRequest struct {
	ClientName     string     `json:"clientName" binding:"required"`
	ProjectTitle   string     `json:"projectTitle" binding:"required"`
	Summary        string     `json:"summary"`
	TotalAmount    *float64   `json:"totalAmount" binding:"required"`
	UpfrontAmount  *float64   `json:"upfrontAmount"`
	ReceivedAmount *float64   `json:"receivedAmount"`
	Status         string     `json:"status"`
	PaymentMethod  uint       `json:"paymentMethod" binding:"required"`
	LeadDate       *time.Time `json:"leadDate"`
	Month          string     `json:"month"`
	Year           int        `json:"year"`
	User           uint       `json:"user" binding:"required"`
}

// SaleUpdateRequest là update từng phần: field nào nil thì giữ giá trị cũ
type SaleUpdateRequest struct {
	ClientName     *string    `json:"clientName"`
	ProjectTitle   *string    `json:"projectTitle"`
	Summary        *string    `json:"summary"`
	TotalAmount    *float64   `json:"totalAmount"`
	UpfrontAmount  *float64   `json:"upfrontAmount"`
	ReceivedAmount *float64   `json:"receivedAmount"`
	Status         *string    `json:"status"`
	PaymentMethod  *uint      `json:"paymentMethod"`
	LeadDate       *time.Time `json:"leadDate"`
	Month          *string    `json:"month"`
	Year           *int       `json:"year"`
	User           *uint      `json:"user"`
}
