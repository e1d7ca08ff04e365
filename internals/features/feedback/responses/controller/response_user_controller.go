package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	responseDTO "facultyfeedback_backend/internals/features/feedback/responses/dto"
	responseModel "facultyfeedback_backend/internals/features/feedback/responses/model"
	"facultyfeedback_backend/internals/features/feedback/responses/service"
	helper "facultyfeedback_backend/internals/helpers"
	"facultyfeedback_backend/internals/middlewares/identity"
)

type ResponseUserController struct {
	DB         *gorm.DB
	Submission *service.SubmissionService
}

func NewResponseUserController(db *gorm.DB) *ResponseUserController {
	return &ResponseUserController{
		DB:         db,
		Submission: service.NewSubmissionService(db),
	}
}

// Submit runs the submission gate for the calling student.
func (ctrl *ResponseUserController) Submit(c *fiber.Ctx) error {
	studentID, err := identity.SubjectID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req responseDTO.SubmitResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	created, err := ctrl.Submission.Submit(req.ToInput(studentID))
	if err != nil {
		return translateGateError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Feedback submitted", responseDTO.NewResponseResponse(created))
}

// GetMine lists the calling student's own submissions.
func (ctrl *ResponseUserController) GetMine(c *fiber.Ctx) error {
	studentID, err := identity.SubjectID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var responses []responseModel.ResponseModel
	if err := ctrl.DB.Preload("ResponseItems").
		Where("response_student_id = ?", studentID).
		Order("response_submitted_at DESC").
		Find(&responses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}

	out := make([]responseDTO.ResponseResponse, 0, len(responses))
	for _, m := range responses {
		out = append(out, responseDTO.NewResponseResponse(m))
	}
	return helper.Success(c, "OK", out)
}

// translateGateError maps the gate's tagged failures to caller-facing
// messages; unexpected errors fall through as 500.
func translateGateError(c *fiber.Ctx, err error) error {
	fe, ok := err.(*fiber.Error)
	if !ok {
		return helper.Error(c, fiber.StatusInternalServerError, "Submission failed")
	}
	switch fe.Message {
	case service.MsgStudentNotFound:
		return helper.Error(c, fe.Code, "Student record not found")
	case service.MsgFormNotFound:
		return helper.Error(c, fe.Code, "Feedback form not found")
	case service.MsgNotAuthorized:
		return helper.Error(c, fe.Code, "You are not part of this form's cohort or the form is closed")
	case service.MsgDuplicateSubmission:
		return helper.Error(c, fe.Code, "Feedback for this form was already submitted")
	}
	return helper.Error(c, fe.Code, fe.Message)
}
