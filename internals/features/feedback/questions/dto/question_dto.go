package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	questionModel "facultyfeedback_backend/internals/features/feedback/questions/model"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateQuestionRequest struct {
	QuestionText     string `json:"question_text" validate:"required,min=3"`
	QuestionPosition *int   `json:"question_position" validate:"omitempty,min=1"`
	QuestionFormType string `json:"question_form_type" validate:"required,oneof=theory lab"`
	QuestionType     string `json:"question_type" validate:"required,oneof=scale_3 scale_1_10 yes_no"`
}

func (r *CreateQuestionRequest) Normalize() {
	r.QuestionText = strings.TrimSpace(r.QuestionText)
	r.QuestionFormType = strings.ToLower(strings.TrimSpace(r.QuestionFormType))
	r.QuestionType = strings.ToLower(strings.TrimSpace(r.QuestionType))
}

func (r *CreateQuestionRequest) ToModel() questionModel.QuestionModel {
	m := questionModel.QuestionModel{
		QuestionText:     r.QuestionText,
		QuestionFormType: r.QuestionFormType,
		QuestionType:     r.QuestionType,
		QuestionCreatedAt: time.Now(),
		QuestionUpdatedAt: time.Now(),
	}
	if r.QuestionPosition != nil {
		m.QuestionPosition = *r.QuestionPosition
	}
	return m
}

// Update (partial)
type UpdateQuestionRequest struct {
	QuestionText     *string `json:"question_text" validate:"omitempty,min=3"`
	QuestionPosition *int    `json:"question_position" validate:"omitempty,min=1"`
	QuestionType     *string `json:"question_type" validate:"omitempty,oneof=scale_3 scale_1_10 yes_no"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type QuestionResponse struct {
	QuestionID       uuid.UUID `json:"question_id"`
	QuestionText     string    `json:"question_text"`
	QuestionPosition int       `json:"question_position"`
	QuestionFormType string    `json:"question_form_type"`
	QuestionType     string    `json:"question_type"`
}

func NewQuestionResponse(m questionModel.QuestionModel) QuestionResponse {
	return QuestionResponse{
		QuestionID:       m.QuestionID,
		QuestionText:     m.QuestionText,
		QuestionPosition: m.QuestionPosition,
		QuestionFormType: m.QuestionFormType,
		QuestionType:     m.QuestionType,
	}
}
