package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Entry kinds mirror the two question-set categories.
const (
	EntryKindTheory = "theory"
	EntryKindLab    = "lab"
)

type TimetableEntryModel struct {
	// PK
	EntryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:entry_id" json:"entry_id"`

	EntryKind string `gorm:"type:varchar(10);not null;column:entry_kind" json:"entry_kind"`

	EntrySubject     string  `gorm:"type:varchar(40);not null;column:entry_subject" json:"entry_subject"`
	EntrySubjectCode *string `gorm:"type:varchar(20);column:entry_subject_code" json:"entry_subject_code,omitempty"`
	EntryRoom        *string `gorm:"type:varchar(10);column:entry_room" json:"entry_room,omitempty"`

	// Short faculty code as printed; resolved against faculties.faculty_code
	EntryFacultyCode string `gorm:"type:varchar(8);not null;column:entry_faculty_code" json:"entry_faculty_code"`

	// Week days the slot occurs on (MON..SUN); empty when unknown
	EntryDays pq.StringArray `gorm:"type:text[];column:entry_days" json:"entry_days,omitempty"`

	// Cohort the slot belongs to
	EntryDivision string  `gorm:"type:varchar(10);not null;column:entry_division" json:"entry_division"`
	EntryBatch    *string `gorm:"type:varchar(10);column:entry_batch" json:"entry_batch,omitempty"`
	EntrySemester int     `gorm:"not null;column:entry_semester" json:"entry_semester"`
	EntryCourse   string  `gorm:"type:varchar(40);not null;column:entry_course" json:"entry_course"`

	EntryCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:entry_created_at" json:"entry_created_at"`
	EntryUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:entry_updated_at" json:"entry_updated_at"`
}

func (TimetableEntryModel) TableName() string { return "timetable_entries" }
