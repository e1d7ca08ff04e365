package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	adminModel "facultyfeedback_backend/internals/features/academics/admins/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateAdminRequest struct {
	AdminName     string `json:"admin_name" validate:"required,min=2"`
	AdminEmail    string `json:"admin_email" validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"required,min=8"`
}

func (r *CreateAdminRequest) Normalize() {
	r.AdminName = strings.TrimSpace(r.AdminName)
	r.AdminEmail = strings.ToLower(strings.TrimSpace(r.AdminEmail))
}

func (r *CreateAdminRequest) ToModel(passwordHash string) adminModel.AdminUserModel {
	return adminModel.AdminUserModel{
		AdminName:         r.AdminName,
		AdminEmail:        r.AdminEmail,
		AdminPasswordHash: passwordHash,
		AdminCreatedAt:    time.Now(),
		AdminUpdatedAt:    time.Now(),
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type AdminResponse struct {
	AdminID    uuid.UUID `json:"admin_id"`
	AdminName  string    `json:"admin_name"`
	AdminEmail string    `json:"admin_email"`
}

func NewAdminResponse(m adminModel.AdminUserModel) AdminResponse {
	return AdminResponse{
		AdminID:    m.AdminID,
		AdminName:  m.AdminName,
		AdminEmail: m.AdminEmail,
	}
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresAt   time.Time     `json:"expires_at"`
	Admin       AdminResponse `json:"admin"`
}
