package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	FormStatusActive = "active"
	FormStatusClosed = "closed"
)

// FormModel is one concrete feedback form: a (subject, faculty, division,
// batch) teaching assignment. Generated from timetable entries or created
// by hand; unique per combination at generation time.
type FormModel struct {
	// PK
	FormID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:form_id" json:"form_id"`

	FormSubjectName string  `gorm:"type:varchar(80);not null;column:form_subject_name" json:"form_subject_name"`
	FormSubjectCode *string `gorm:"type:varchar(20);column:form_subject_code" json:"form_subject_code,omitempty"`

	FormFacultyName  string `gorm:"type:varchar(120);not null;column:form_faculty_name" json:"form_faculty_name"`
	FormFacultyEmail string `gorm:"type:varchar(160);not null;index:idx_forms_faculty_email;column:form_faculty_email" json:"form_faculty_email"`

	// Cohort
	FormDivision string  `gorm:"type:varchar(10);not null;column:form_division" json:"form_division"`
	FormBatch    *string `gorm:"type:varchar(10);column:form_batch" json:"form_batch,omitempty"`
	FormSemester int     `gorm:"not null;column:form_semester" json:"form_semester"`
	FormCourse   string  `gorm:"type:varchar(40);not null;column:form_course" json:"form_course"`

	// theory | lab — selects the question catalog
	FormType string `gorm:"type:varchar(10);not null;column:form_type" json:"form_type"`

	FormStatus string `gorm:"type:varchar(10);not null;default:'active';column:form_status" json:"form_status"`

	FormCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:form_created_at" json:"form_created_at"`
	FormUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:form_updated_at" json:"form_updated_at"`
}

func (FormModel) TableName() string { return "feedback_forms" }
