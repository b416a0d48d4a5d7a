package models

import (
	"time"

	"gorm.io/gorm"
)

type Salary struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	EmployeeID  uint      `gorm:"not null" json:"employeeId"`
	AdminID     uint      `gorm:"not null" json:"adminId"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Bonus       float64   `gorm:"default:0" json:"bonus"`
	TotalAmount float64   `json:"totalAmount"`
	Status      string    `gorm:"default:'Pending'" json:"status"`
	PaidDate    time.Time `gorm:"not null" json:"paidDate"`
	Month       string    `json:"month"`
	Year        int       `json:"year"`

	Employee User `json:"employee" gorm:"foreignKey:EmployeeID"`
	Admin    User `json:"admin" gorm:"foreignKey:AdminID"`
}

// BeforeSave tính lại totalAmount = amount + bonus trước mỗi lần ghi,
// đồng thời chuẩn hóa month/year từ paidDate.
func (s *Salary) BeforeSave(tx *gorm.DB) error {
	s.TotalAmount = s.Amount + s.Bonus

	if !s.PaidDate.IsZero() {
		s.Month = s.PaidDate.Month().String()
		s.Year = s.PaidDate.Year()
	}
	return nil
}
