package models

import "time"

type ExpenseCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name      string    `gorm:"not null" json:"name"`
	AdminID   uint      `gorm:"not null" json:"adminId"`

	Admin User `json:"admin" gorm:"foreignKey:AdminID"`
}
