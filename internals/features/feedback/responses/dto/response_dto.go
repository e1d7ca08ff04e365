package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	responseModel "facultyfeedback_backend/internals/features/feedback/responses/model"
	"facultyfeedback_backend/internals/features/feedback/responses/service"
)

/* =========================================================
   REQUEST DTO
========================================================= */

type SubmitRatingRequest struct {
	ParameterID uuid.UUID `json:"parameter_id" validate:"required"`
	Rating      float64   `json:"rating"`
}

type SubmitResponseRequest struct {
	ResponseFormID  uuid.UUID             `json:"response_form_id" validate:"required"`
	ResponseComment *string               `json:"response_comment" validate:"omitempty,max=2000"`
	Ratings         []SubmitRatingRequest `json:"ratings" validate:"required,min=1,dive"`
}

func (r *SubmitResponseRequest) Normalize() {
	if r.ResponseComment != nil {
		c := strings.TrimSpace(*r.ResponseComment)
		if c == "" {
			r.ResponseComment = nil
		} else {
			r.ResponseComment = &c
		}
	}
}

func (r *SubmitResponseRequest) ToInput(studentID uuid.UUID) service.SubmitInput {
	in := service.SubmitInput{
		FormID:    r.ResponseFormID,
		StudentID: studentID,
		Comment:   r.ResponseComment,
	}
	for _, rt := range r.Ratings {
		in.Ratings = append(in.Ratings, service.SubmitRating{
			ParameterID: rt.ParameterID,
			Rating:      rt.Rating,
		})
	}
	return in
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type ResponseItemResponse struct {
	ItemParameterID  uuid.UUID `json:"item_parameter_id"`
	ItemRating       float64   `json:"item_rating"`
	ItemQuestionText string    `json:"item_question_text"`
	ItemQuestionType string    `json:"item_question_type"`
}

type ResponseResponse struct {
	ResponseID          uuid.UUID              `json:"response_id"`
	ResponseFormID      uuid.UUID              `json:"response_form_id"`
	ResponseComment     *string                `json:"response_comment,omitempty"`
	ResponseSubmittedAt time.Time              `json:"response_submitted_at"`
	ResponseAverage     float64                `json:"response_average"`
	ResponseItems       []ResponseItemResponse `json:"response_items,omitempty"`
}

func NewResponseResponse(m responseModel.ResponseModel) ResponseResponse {
	out := ResponseResponse{
		ResponseID:          m.ResponseID,
		ResponseFormID:      m.ResponseFormID,
		ResponseComment:     m.ResponseComment,
		ResponseSubmittedAt: m.ResponseSubmittedAt,
		ResponseAverage:     service.ResponseAverage(m.ResponseItems),
	}
	for _, it := range m.ResponseItems {
		out.ResponseItems = append(out.ResponseItems, ResponseItemResponse{
			ItemParameterID:  it.ItemParameterID,
			ItemRating:       it.ItemRating,
			ItemQuestionText: it.ItemQuestionText,
			ItemQuestionType: it.ItemQuestionType,
		})
	}
	return out
}
