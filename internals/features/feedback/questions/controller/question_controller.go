package controller

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionDTO "facultyfeedback_backend/internals/features/feedback/questions/dto"
	questionModel "facultyfeedback_backend/internals/features/feedback/questions/model"
	responseModel "facultyfeedback_backend/internals/features/feedback/responses/model"
	helper "facultyfeedback_backend/internals/helpers"
)

type QuestionController struct {
	DB *gorm.DB
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db}
}

// GetAll returns the question catalog, optionally filtered by
// ?form_type=theory|lab, ordered by question_position ascending.
func (ctrl *QuestionController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&questionModel.QuestionModel{})
	if ft := strings.ToLower(strings.TrimSpace(c.Query("form_type"))); ft != "" {
		if !questionModel.ValidFormType(ft) {
			return helper.Error(c, fiber.StatusBadRequest, "form_type must be theory or lab")
		}
		q = q.Where("question_form_type = ?", ft)
	}

	var questions []questionModel.QuestionModel
	if err := q.Order("question_position ASC").Find(&questions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	out := make([]questionDTO.QuestionResponse, 0, len(questions))
	for _, m := range questions {
		out = append(out, questionDTO.NewQuestionResponse(m))
	}
	return helper.Success(c, "OK", out)
}

// Create accepts a single question object or an array of them (the admin UI
// pastes whole question sets at once). Positions default to the tail of the
// catalog for the question's form type.
func (ctrl *QuestionController) Create(c *fiber.Ctx) error {
	body := c.Body()

	var reqs []questionDTO.CreateQuestionRequest
	if len(body) > 0 && body[0] == '[' {
		if err := json.Unmarshal(body, &reqs); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid array request body")
		}
	} else {
		var one questionDTO.CreateQuestionRequest
		if err := json.Unmarshal(body, &one); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
		}
		reqs = append(reqs, one)
	}
	if len(reqs) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No questions in request")
	}

	v := validator.New()
	for i := range reqs {
		reqs[i].Normalize()
		if err := v.Struct(reqs[i]); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	var created []questionModel.QuestionModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// tail position per form type
		maxPos := map[string]int{}
		for _, ft := range []string{questionModel.FormTypeTheory, questionModel.FormTypeLab} {
			var m int
			tx.Model(&questionModel.QuestionModel{}).
				Where("question_form_type = ?", ft).
				Select("COALESCE(MAX(question_position), 0)").Scan(&m)
			maxPos[ft] = m
		}

		for _, r := range reqs {
			m := r.ToModel()
			if m.QuestionPosition == 0 {
				maxPos[m.QuestionFormType]++
				m.QuestionPosition = maxPos[m.QuestionFormType]
			}
			if err := tx.Create(&m).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to insert question")
			}
			created = append(created, m)
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	out := make([]questionDTO.QuestionResponse, 0, len(created))
	for _, m := range created {
		out = append(out, questionDTO.NewQuestionResponse(m))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Questions created", out)
}

// Update edits text, position or response type. The form type of an existing
// question is fixed; moving a question between catalogs would orphan its
// position ordering.
func (ctrl *QuestionController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var question questionModel.QuestionModel
	if err := ctrl.DB.First(&question, "question_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Question not found")
	}

	var req questionDTO.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.QuestionText != nil {
		question.QuestionText = strings.TrimSpace(*req.QuestionText)
	}
	if req.QuestionPosition != nil {
		question.QuestionPosition = *req.QuestionPosition
	}
	if req.QuestionType != nil {
		question.QuestionType = strings.ToLower(strings.TrimSpace(*req.QuestionType))
	}
	question.QuestionUpdatedAt = time.Now()

	if err := ctrl.DB.Save(&question).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update question")
	}
	return helper.Success(c, "Question updated", questionDTO.NewQuestionResponse(question))
}

// Delete removes a question from the catalog. Blocked while any submitted
// response item still references it; historical reports keep their snapshots
// either way, but a referenced delete is almost always an admin mistake.
func (ctrl *QuestionController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var question questionModel.QuestionModel
		if err := tx.First(&question, "question_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Question not found")
		}

		var cnt int64
		if err := tx.Model(&responseModel.ResponseItemModel{}).
			Where("item_parameter_id = ?", question.QuestionID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check question references")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Question has submitted responses and cannot be deleted")
		}

		if err := tx.Delete(&question).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete question")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Question deleted", nil)
}
