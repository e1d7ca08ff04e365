package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentModel struct {
	// PK
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	// Identity
	StudentName  string `gorm:"type:varchar(120);not null;column:student_name" json:"student_name"`
	StudentEmail string `gorm:"type:varchar(160);not null;uniqueIndex:uq_students_email;column:student_email" json:"student_email"`

	// Cohort — checked against the form instance by the submission gate
	StudentSemester int     `gorm:"not null;column:student_semester" json:"student_semester"`
	StudentCourse   string  `gorm:"type:varchar(40);not null;column:student_course" json:"student_course"`
	StudentDivision string  `gorm:"type:varchar(10);not null;column:student_division" json:"student_division"`
	StudentBatch    *string `gorm:"type:varchar(10);column:student_batch" json:"student_batch,omitempty"`

	StudentCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_updated_at" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }
