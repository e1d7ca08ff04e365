package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	facultyModel "facultyfeedback_backend/internals/features/academics/faculty/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateFacultyRequest struct {
	FacultyName       string  `json:"faculty_name" validate:"required,min=2"`
	FacultyEmail      string  `json:"faculty_email" validate:"required,email"`
	FacultyCode       string  `json:"faculty_code" validate:"required,min=2,max=8"`
	FacultyDepartment *string `json:"faculty_department" validate:"omitempty,max=80"`
}

func (r *CreateFacultyRequest) Normalize() {
	r.FacultyName = strings.TrimSpace(r.FacultyName)
	r.FacultyEmail = strings.ToLower(strings.TrimSpace(r.FacultyEmail))
	r.FacultyCode = strings.ToUpper(strings.TrimSpace(r.FacultyCode))
	if r.FacultyDepartment != nil {
		d := strings.TrimSpace(*r.FacultyDepartment)
		if d == "" {
			r.FacultyDepartment = nil
		} else {
			r.FacultyDepartment = &d
		}
	}
}

func (r CreateFacultyRequest) Check() error {
	var missing []string
	if strings.TrimSpace(r.FacultyName) == "" {
		missing = append(missing, "faculty_name")
	}
	if strings.TrimSpace(r.FacultyEmail) == "" || !strings.Contains(r.FacultyEmail, "@") {
		missing = append(missing, "faculty_email")
	}
	if len(strings.TrimSpace(r.FacultyCode)) < 2 {
		missing = append(missing, "faculty_code")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing or invalid fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (r *CreateFacultyRequest) ToModel() facultyModel.FacultyModel {
	return facultyModel.FacultyModel{
		FacultyName:       r.FacultyName,
		FacultyEmail:      r.FacultyEmail,
		FacultyCode:       r.FacultyCode,
		FacultyDepartment: r.FacultyDepartment,
		FacultyCreatedAt:  time.Now(),
		FacultyUpdatedAt:  time.Now(),
	}
}

// Update (partial)
type UpdateFacultyRequest struct {
	FacultyName       *string `json:"faculty_name" validate:"omitempty,min=2"`
	FacultyCode       *string `json:"faculty_code" validate:"omitempty,min=2,max=8"`
	FacultyDepartment *string `json:"faculty_department" validate:"omitempty,max=80"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type FacultyResponse struct {
	FacultyID         uuid.UUID `json:"faculty_id"`
	FacultyName       string    `json:"faculty_name"`
	FacultyEmail      string    `json:"faculty_email"`
	FacultyCode       string    `json:"faculty_code"`
	FacultyDepartment *string   `json:"faculty_department,omitempty"`
}

func NewFacultyResponse(m facultyModel.FacultyModel) FacultyResponse {
	return FacultyResponse{
		FacultyID:         m.FacultyID,
		FacultyName:       m.FacultyName,
		FacultyEmail:      m.FacultyEmail,
		FacultyCode:       m.FacultyCode,
		FacultyDepartment: m.FacultyDepartment,
	}
}
