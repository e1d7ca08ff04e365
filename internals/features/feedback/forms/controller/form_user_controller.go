package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentModel "facultyfeedback_backend/internals/features/academics/students/model"
	formDTO "facultyfeedback_backend/internals/features/feedback/forms/dto"
	formModel "facultyfeedback_backend/internals/features/feedback/forms/model"
	questionDTO "facultyfeedback_backend/internals/features/feedback/questions/dto"
	questionModel "facultyfeedback_backend/internals/features/feedback/questions/model"
	responseModel "facultyfeedback_backend/internals/features/feedback/responses/model"
	helper "facultyfeedback_backend/internals/helpers"
	"facultyfeedback_backend/internals/middlewares/identity"
)

type FormUserController struct {
	DB *gorm.DB
}

func NewFormUserController(db *gorm.DB) *FormUserController {
	return &FormUserController{DB: db}
}

// GetMyForms lists active forms for the calling student's cohort, minus the
// ones the student has already submitted. A form with no batch applies to
// every batch of the division.
func (ctrl *FormUserController) GetMyForms(c *fiber.Ctx) error {
	studentID, err := identity.SubjectID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Student record not found")
	}

	q := ctrl.DB.Model(&formModel.FormModel{}).
		Where("form_status = ?", formModel.FormStatusActive).
		Where("form_semester = ? AND form_course = ? AND form_division = ?",
			student.StudentSemester, student.StudentCourse, student.StudentDivision)
	if student.StudentBatch != nil {
		q = q.Where("form_batch IS NULL OR form_batch = ?", *student.StudentBatch)
	} else {
		q = q.Where("form_batch IS NULL")
	}

	var forms []formModel.FormModel
	if err := q.Order("form_subject_name ASC").Find(&forms).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch forms")
	}

	var submittedIDs []string
	if err := ctrl.DB.Model(&responseModel.ResponseModel{}).
		Where("response_student_id = ?", student.StudentID).
		Pluck("response_form_id", &submittedIDs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}
	submitted := make(map[string]bool, len(submittedIDs))
	for _, id := range submittedIDs {
		submitted[id] = true
	}

	out := make([]formDTO.FormResponse, 0, len(forms))
	for _, m := range forms {
		if submitted[m.FormID.String()] {
			continue
		}
		out = append(out, formDTO.NewFormResponse(m))
	}
	return helper.Success(c, "OK", out)
}

// GetFormQuestions returns the question catalog for one form's type, ordered
// by position. Public: the form page renders before the student identifies.
func (ctrl *FormUserController) GetFormQuestions(c *fiber.Ctx) error {
	id := c.Params("id")

	var form formModel.FormModel
	if err := ctrl.DB.First(&form, "form_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Form not found")
	}

	var questions []questionModel.QuestionModel
	if err := ctrl.DB.
		Where("question_form_type = ?", form.FormType).
		Order("question_position ASC").
		Find(&questions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	qs := make([]questionDTO.QuestionResponse, 0, len(questions))
	for _, m := range questions {
		qs = append(qs, questionDTO.NewQuestionResponse(m))
	}
	return helper.Success(c, "OK", fiber.Map{
		"form":      formDTO.NewFormResponse(form),
		"questions": qs,
	})
}
