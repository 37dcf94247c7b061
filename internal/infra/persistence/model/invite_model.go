package model

import "time"

// InviteModel mirrors the 'teacher_invites' table, keyed by lower-cased email.
type InviteModel struct {
	Email      string    `gorm:"type:varchar(255);primaryKey"`
	CodeHash   string    `gorm:"type:varchar(100);not null"`
	IssuedAt   time.Time `gorm:"not null"`
	ExpiresAt  time.Time `gorm:"not null"`
	ConsumedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (InviteModel) TableName() string {
	return "teacher_invites"
}
