package dto

import "time"

type SalaryCreateRequest struct {
	Employee uint       `json:"employee" binding:"required"`
	Amount   *float64   `json:"amount" binding:"required"`
	Bonus    *float64   `json:"bonus"`
	Status   string     `json:"status"`
	PaidDate *time.Time `json:"paidDate" binding:"required"`
	Admin    uint       `json:"admin" binding:"required"`
}

// SalaryUpdateRequest là update từng phần: field nào nil thì giữ giá trị cũ
type SalaryUpdateRequest struct {
	Employee *uint      `json:"employee"`
	Amount   *float64   `json:"amount"`
	Bonus    *float64   `json:"bonus"`
	Status   *string    `json:"status"`
	PaidDate *time.Time `json:"paidDate"`
}
