package model

import (
	"time"

	"github.com/google/uuid"
)

// Form types categorize the question catalog.
const (
	FormTypeTheory = "theory"
	FormTypeLab    = "lab"
)

// Question response scales. Ratings are normalized to a common 0-10 axis
// when aggregated (see responses/service).
const (
	QuestionTypeScale3     = "scale_3"
	QuestionTypeScale1To10 = "scale_1_10"
	QuestionTypeYesNo      = "yes_no"
)

type QuestionModel struct {
	// PK
	QuestionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:question_id" json:"question_id"`

	QuestionText string `gorm:"type:text;not null;column:question_text" json:"question_text"`

	// Ordering key within one form type
	QuestionPosition int `gorm:"not null;column:question_position" json:"question_position"`

	QuestionFormType string `gorm:"type:varchar(10);not null;column:question_form_type" json:"question_form_type"`
	QuestionType     string `gorm:"type:varchar(12);not null;column:question_type" json:"question_type"`

	QuestionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:question_created_at" json:"question_created_at"`
	QuestionUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:question_updated_at" json:"question_updated_at"`
}

func (QuestionModel) TableName() string { return "feedback_questions" }

func ValidFormType(t string) bool {
	return t == FormTypeTheory || t == FormTypeLab
}

func ValidQuestionType(t string) bool {
	switch t {
	case QuestionTypeScale3, QuestionTypeScale1To10, QuestionTypeYesNo:
		return true
	}
	return false
}
