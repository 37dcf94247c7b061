package model

import "time"

// RoleRecordModel mirrors the 'role_records' table. One row per (role, identity);
// the record's fields live in a JSON document so merge-writes can add fields
// without a schema change.
type RoleRecordModel struct {
	Role       string         `gorm:"type:varchar(16);primaryKey"`
	IdentityID string         `gorm:"type:varchar(128);primaryKey"`
	Document   map[string]any `gorm:"type:text;serializer:json;not null"`
	Version    int64          `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoleRecordModel) TableName() string {
	return "role_records"
}
