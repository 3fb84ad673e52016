package models

import "time"

// Admin represents a moderator account in the admins table.
type Admin struct {
	AdminID      int        `gorm:"primaryKey;column:admin_id" json:"admin_id"`
	Username     string     `gorm:"column:username;unique" json:"username"`
	PasswordHash string     `gorm:"column:password_hash" json:"-"`
	Role         string     `gorm:"column:role" json:"role"`
	IsActive     bool       `gorm:"column:is_active;default:true" json:"is_active"`
	LastLogin    *time.Time `gorm:"column:last_login" json:"last_login,omitempty"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides
func (Admin) TableName() string {
	return "admins"
}
