package ds

import (
	"time"

	"veres-tariff/internal/app/role"
)

// 1. Таблица пользователей
type User struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Username          string    `gorm:"type:varchar(50);unique;not null" json:"username"`
	PasswordHash      string    `gorm:"type:varchar(255);not null" json:"-"`
	Role              role.Role `gorm:"type:varchar(20);not null" json:"role"`
	FullName          string    `gorm:"type:varchar(100)" json:"full_name"`
	Email             string    `gorm:"type:varchar(100)" json:"email"`
	Phone             string    `gorm:"type:varchar(30)" json:"phone"`
	CompanyName       string    `gorm:"type:varchar(150)" json:"company_name"`       // Наименование компании
	ResponsiblePerson string    `gorm:"type:varchar(100)" json:"responsible_person"` // Ответственное лицо
	IsActive          bool      `gorm:"default:true;not null" json:"is_active"`
	CreatedAt         time.Time `gorm:"not null" json:"created_at"`
}
