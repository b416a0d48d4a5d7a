package models

import (
	"time"

	"gorm.io/gorm"
)

type Sale struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	ClientName      string     `gorm:"not null" json:"clientName"`
	ProjectTitle    string     `gorm:"not null" json:"projectTitle"`
	Summary         string     `json:"summary"`
	TotalAmount     float64    `gorm:"not null" json:"totalAmount"`
	UpfrontAmount   float64    `gorm:"default:0" json:"upfrontAmount"`
	ReceivedAmount  float64    `gorm:"default:0" json:"receivedAmount"`
	RemainingAmount float64    `gorm:"default:0" json:"remainingAmount"`
	Status          string     `gorm:"default:'Partially Paid'" json:"status"`
	PaymentMethodID uint       `gorm:"not null" json:"paymentMethodId"`
	LeadDate        *time.Time `json:"leadDate"`
	Month           string     `json:"month"`
	Year            int        `json:"year"`
	UserID          uint       `gorm:"not null" json:"userId"`

	User          User          `json:"user" gorm:"foreignKey:UserID"`
	PaymentMethod PaymentMethod `json:"paymentMethod" gorm:"foreignKey:PaymentMethodID"`
}

// BeforeSave tính lại các trường dẫn xuất trước mỗi lần ghi.
// remainingAmount luôn bằng totalAmount - (receivedAmount + upfrontAmount),
// có thể âm khi khách trả dư. Khi leadDate có giá trị thì month/year được
// chuẩn hóa lại từ leadDate để hai nguồn không lệch nhau.
func (s *Sale) BeforeSave(tx *gorm.DB) error {
	s.RemainingAmount = s.TotalAmount - (s.ReceivedAmount + s.UpfrontAmount)

	if s.LeadDate != nil && !s.LeadDate.IsZero() {
		s.Month = s.LeadDate.Month().String()
		s.Year = s.LeadDate.Year()
	}
	return nil
}
