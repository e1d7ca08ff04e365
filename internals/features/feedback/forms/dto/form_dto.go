package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	formModel "facultyfeedback_backend/internals/features/feedback/forms/model"
)

func trimUpperPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.ToUpper(strings.TrimSpace(*p))
	if s == "" {
		return nil
	}
	return &s
}

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateFormRequest struct {
	FormSubjectName  string  `json:"form_subject_name" validate:"required,min=2"`
	FormSubjectCode  *string `json:"form_subject_code" validate:"omitempty,max=20"`
	FormFacultyName  string  `json:"form_faculty_name" validate:"required,min=2"`
	FormFacultyEmail string  `json:"form_faculty_email" validate:"required,email"`
	FormDivision     string  `json:"form_division" validate:"required,max=10"`
	FormBatch        *string `json:"form_batch" validate:"omitempty,max=10"`
	FormSemester     int     `json:"form_semester" validate:"required,min=1,max=12"`
	FormCourse       string  `json:"form_course" validate:"required,max=40"`
	FormType         string  `json:"form_type" validate:"required,oneof=theory lab"`
}

func (r *CreateFormRequest) Normalize() {
	r.FormSubjectName = strings.ToUpper(strings.TrimSpace(r.FormSubjectName))
	r.FormSubjectCode = trimUpperPtr(r.FormSubjectCode)
	r.FormFacultyName = strings.TrimSpace(r.FormFacultyName)
	r.FormFacultyEmail = strings.ToLower(strings.TrimSpace(r.FormFacultyEmail))
	r.FormDivision = strings.ToUpper(strings.TrimSpace(r.FormDivision))
	r.FormBatch = trimUpperPtr(r.FormBatch)
	r.FormCourse = strings.ToUpper(strings.TrimSpace(r.FormCourse))
	r.FormType = strings.ToLower(strings.TrimSpace(r.FormType))
}

func (r *CreateFormRequest) ToModel() formModel.FormModel {
	return formModel.FormModel{
		FormSubjectName:  r.FormSubjectName,
		FormSubjectCode:  r.FormSubjectCode,
		FormFacultyName:  r.FormFacultyName,
		FormFacultyEmail: r.FormFacultyEmail,
		FormDivision:     r.FormDivision,
		FormBatch:        r.FormBatch,
		FormSemester:     r.FormSemester,
		FormCourse:       r.FormCourse,
		FormType:         r.FormType,
		FormStatus:       formModel.FormStatusActive,
		FormCreatedAt:    time.Now(),
		FormUpdatedAt:    time.Now(),
	}
}

// Update (partial)
type UpdateFormRequest struct {
	FormSubjectName  *string `json:"form_subject_name" validate:"omitempty,min=2"`
	FormSubjectCode  *string `json:"form_subject_code" validate:"omitempty,max=20"`
	FormFacultyName  *string `json:"form_faculty_name" validate:"omitempty,min=2"`
	FormFacultyEmail *string `json:"form_faculty_email" validate:"omitempty,email"`
	FormDivision     *string `json:"form_division" validate:"omitempty,max=10"`
	FormBatch        *string `json:"form_batch" validate:"omitempty,max=10"`
	FormSemester     *int    `json:"form_semester" validate:"omitempty,min=1,max=12"`
	FormCourse       *string `json:"form_course" validate:"omitempty,max=40"`
}

type UpdateFormStatusRequest struct {
	FormStatus string `json:"form_status" validate:"required,oneof=active closed"`
}

// GenerateFormsRequest narrows which timetable entries get turned into
// form instances. Empty filters mean all entries.
type GenerateFormsRequest struct {
	Division string `json:"division" validate:"omitempty,max=10"`
	Semester int    `json:"semester" validate:"omitempty,min=1,max=12"`
	Course   string `json:"course" validate:"omitempty,max=40"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type FormResponse struct {
	FormID           uuid.UUID `json:"form_id"`
	FormSubjectName  string    `json:"form_subject_name"`
	FormSubjectCode  *string   `json:"form_subject_code,omitempty"`
	FormFacultyName  string    `json:"form_faculty_name"`
	FormFacultyEmail string    `json:"form_faculty_email"`
	FormDivision     string    `json:"form_division"`
	FormBatch        *string   `json:"form_batch,omitempty"`
	FormSemester     int       `json:"form_semester"`
	FormCourse       string    `json:"form_course"`
	FormType         string    `json:"form_type"`
	FormStatus       string    `json:"form_status"`
	FormCreatedAt    time.Time `json:"form_created_at"`
}

func NewFormResponse(m formModel.FormModel) FormResponse {
	return FormResponse{
		FormID:           m.FormID,
		FormSubjectName:  m.FormSubjectName,
		FormSubjectCode:  m.FormSubjectCode,
		FormFacultyName:  m.FormFacultyName,
		FormFacultyEmail: m.FormFacultyEmail,
		FormDivision:     m.FormDivision,
		FormBatch:        m.FormBatch,
		FormSemester:     m.FormSemester,
		FormCourse:       m.FormCourse,
		FormType:         m.FormType,
		FormStatus:       m.FormStatus,
		FormCreatedAt:    m.FormCreatedAt,
	}
}

type GenerateFormsResponse struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}
