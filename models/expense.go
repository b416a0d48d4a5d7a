package models

import "time"

type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Date        time.Time `gorm:"autoCreateTime" json:"date"`
	Month       string    `json:"month"`
	Year        string    `json:"year"`
	CategoryID  uint      `gorm:"not null" json:"categoryId"`
	AdminID     uint      `gorm:"not null" json:"adminId"`

	Category ExpenseCategory `json:"category" gorm:"foreignKey:CategoryID"`
	Admin    User            `json:"admin" gorm:"foreignKey:AdminID"`
}
