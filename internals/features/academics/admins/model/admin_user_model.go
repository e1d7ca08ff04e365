package model

import (
	"time"

	"github.com/google/uuid"
)

type AdminUserModel struct {
	// PK
	AdminID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:admin_id" json:"admin_id"`

	AdminName  string `gorm:"type:varchar(120);not null;column:admin_name" json:"admin_name"`
	AdminEmail string `gorm:"type:varchar(160);not null;uniqueIndex:uq_admin_users_email;column:admin_email" json:"admin_email"`

	// bcrypt hash, never serialized
	AdminPasswordHash string `gorm:"type:varchar(100);not null;column:admin_password_hash" json:"-"`

	AdminCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:admin_created_at" json:"admin_created_at"`
	AdminUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:admin_updated_at" json:"admin_updated_at"`
}

func (AdminUserModel) TableName() string { return "admin_users" }
