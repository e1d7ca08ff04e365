package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	studentModel "facultyfeedback_backend/internals/features/academics/students/model"
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

type CreateStudentRequest struct {
	StudentName     string  `json:"student_name" validate:"required,min=2"`
	StudentEmail    string  `json:"student_email" validate:"required,email"`
	StudentSemester int     `json:"student_semester" validate:"required,min=1,max=12"`
	StudentCourse   string  `json:"student_course" validate:"required,max=40"`
	StudentDivision string  `json:"student_division" validate:"required,max=10"`
	StudentBatch    *string `json:"student_batch" validate:"omitempty,max=10"`
}

func (r *CreateStudentRequest) Normalize() {
	r.StudentName = strings.TrimSpace(r.StudentName)
	r.StudentEmail = strings.ToLower(strings.TrimSpace(r.StudentEmail))
	r.StudentCourse = strings.ToUpper(strings.TrimSpace(r.StudentCourse))
	r.StudentDivision = strings.ToUpper(strings.TrimSpace(r.StudentDivision))
	r.StudentBatch = trimUpperPtr(r.StudentBatch)
}

// Check reports the missing/malformed fields of one bulk row. Kept apart
// from the validator so bulk import can collect row errors instead of
// failing the whole batch.
func (r CreateStudentRequest) Check() error {
	var missing []string
	if strings.TrimSpace(r.StudentName) == "" {
		missing = append(missing, "student_name")
	}
	if strings.TrimSpace(r.StudentEmail) == "" || !strings.Contains(r.StudentEmail, "@") {
		missing = append(missing, "student_email")
	}
	if r.StudentSemester < 1 || r.StudentSemester > 12 {
		missing = append(missing, "student_semester")
	}
	if strings.TrimSpace(r.StudentCourse) == "" {
		missing = append(missing, "student_course")
	}
	if strings.TrimSpace(r.StudentDivision) == "" {
		missing = append(missing, "student_division")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing or invalid fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (r *CreateStudentRequest) ToModel() studentModel.StudentModel {
	return studentModel.StudentModel{
		StudentName:      r.StudentName,
		StudentEmail:     r.StudentEmail,
		StudentSemester:  r.StudentSemester,
		StudentCourse:    r.StudentCourse,
		StudentDivision:  r.StudentDivision,
		StudentBatch:     r.StudentBatch,
		StudentCreatedAt: time.Now(),
		StudentUpdatedAt: time.Now(),
	}
}

// Update (partial)
type UpdateStudentRequest struct {
	StudentName     *string `json:"student_name" validate:"omitempty,min=2"`
	StudentSemester *int    `json:"student_semester" validate:"omitempty,min=1,max=12"`
	StudentCourse   *string `json:"student_course" validate:"omitempty,max=40"`
	StudentDivision *string `json:"student_division" validate:"omitempty,max=10"`
	StudentBatch    *string `json:"student_batch" validate:"omitempty,max=10"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type StudentResponse struct {
	StudentID       uuid.UUID `json:"student_id"`
	StudentName     string    `json:"student_name"`
	StudentEmail    string    `json:"student_email"`
	StudentSemester int       `json:"student_semester"`
	StudentCourse   string    `json:"student_course"`
	StudentDivision string    `json:"student_division"`
	StudentBatch    *string   `json:"student_batch,omitempty"`
}

func NewStudentResponse(m studentModel.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:       m.StudentID,
		StudentName:     m.StudentName,
		StudentEmail:    m.StudentEmail,
		StudentSemester: m.StudentSemester,
		StudentCourse:   m.StudentCourse,
		StudentDivision: m.StudentDivision,
		StudentBatch:    m.StudentBatch,
	}
}
