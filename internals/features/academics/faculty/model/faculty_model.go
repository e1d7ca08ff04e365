package model

import (
	"time"

	"github.com/google/uuid"
)

type FacultyModel struct {
	// PK
	FacultyID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:faculty_id" json:"faculty_id"`

	// Identity
	FacultyName  string `gorm:"type:varchar(120);not null;column:faculty_name" json:"faculty_name"`
	FacultyEmail string `gorm:"type:varchar(160);not null;uniqueIndex:uq_faculties_email;column:faculty_email" json:"faculty_email"`

	// Short code as it appears in printed timetables (e.g. "JD")
	FacultyCode string `gorm:"type:varchar(8);not null;uniqueIndex:uq_faculties_code;column:faculty_code" json:"faculty_code"`

	FacultyDepartment *string `gorm:"type:varchar(80);column:faculty_department" json:"faculty_department,omitempty"`

	FacultyCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:faculty_created_at" json:"faculty_created_at"`
	FacultyUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:faculty_updated_at" json:"faculty_updated_at"`
}

func (FacultyModel) TableName() string { return "faculties" }
