package model

import (
	"time"

	"github.com/google/uuid"
)

// ResponseModel is one student submission for one form. The composite unique
// index is the last line of defense against two concurrent submissions from
// the same student both passing the gate's existence check.
type ResponseModel struct {
	// PK
	ResponseID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:response_id" json:"response_id"`

	ResponseFormID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_responses_form_student;column:response_form_id" json:"response_form_id"`
	ResponseStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_responses_form_student;column:response_student_id" json:"response_student_id"`

	ResponseComment *string `gorm:"type:text;column:response_comment" json:"response_comment,omitempty"`

	ResponseSubmittedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:response_submitted_at" json:"response_submitted_at"`

	// Loaded eagerly for reports
	ResponseItems []ResponseItemModel `gorm:"foreignKey:ItemResponseID;references:ResponseID" json:"response_items,omitempty"`
}

func (ResponseModel) TableName() string { return "feedback_responses" }

// ResponseItemModel is one rating inside a submission. The question text and
// type are copied at submission time so later catalog edits or deletions
// never change what historical reports show.
type ResponseItemModel struct {
	// PK
	ItemID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:item_id" json:"item_id"`

	ItemResponseID uuid.UUID `gorm:"type:uuid;not null;index:idx_items_response;column:item_response_id" json:"item_response_id"`

	// The question at submission time
	ItemParameterID uuid.UUID `gorm:"type:uuid;not null;index:idx_items_parameter;column:item_parameter_id" json:"item_parameter_id"`

	// Clamped to [0,10] at write time
	ItemRating float64 `gorm:"not null;column:item_rating" json:"item_rating"`

	// Snapshots
	ItemQuestionText string `gorm:"type:text;not null;column:item_question_text" json:"item_question_text"`
	ItemQuestionType string `gorm:"type:varchar(12);not null;column:item_question_type" json:"item_question_type"`
}

func (ResponseItemModel) TableName() string { return "feedback_response_items" }
