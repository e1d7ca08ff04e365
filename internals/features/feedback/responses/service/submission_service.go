package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	studentModel "facultyfeedback_backend/internals/features/academics/students/model"
	formModel "facultyfeedback_backend/internals/features/feedback/forms/model"
	questionModel "facultyfeedback_backend/internals/features/feedback/questions/model"
	responseModel "facultyfeedback_backend/internals/features/feedback/responses/model"
)

// Tagged failure messages surfaced by the submission gate. Each maps to one
// status at the boundary; nothing generic swallows a known condition.
const (
	MsgStudentNotFound     = "STUDENT_NOT_FOUND"
	MsgFormNotFound        = "FORM_NOT_FOUND"
	MsgNotAuthorized       = "NOT_AUTHORIZED"
	MsgDuplicateSubmission = "DUPLICATE_SUBMISSION"
)

type SubmitRating struct {
	ParameterID uuid.UUID
	Rating      float64
}

type SubmitInput struct {
	FormID    uuid.UUID
	StudentID uuid.UUID
	Comment   *string
	Ratings   []SubmitRating
}

type SubmissionService struct {
	DB *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{DB: db}
}

// AuthorizeSubmission is the cohort precondition: the student must sit in the
// form's semester, course and division; a form without a batch accepts any
// batch; the form must still be active. Pure so the matrix is unit-testable.
func AuthorizeSubmission(form formModel.FormModel, student studentModel.StudentModel) error {
	if form.FormStatus != formModel.FormStatusActive {
		return fiber.NewError(fiber.StatusForbidden, MsgNotAuthorized)
	}
	if form.FormSemester != student.StudentSemester ||
		!strings.EqualFold(form.FormCourse, student.StudentCourse) ||
		!strings.EqualFold(form.FormDivision, student.StudentDivision) {
		return fiber.NewError(fiber.StatusForbidden, MsgNotAuthorized)
	}
	if form.FormBatch != nil {
		if student.StudentBatch == nil || !strings.EqualFold(*form.FormBatch, *student.StudentBatch) {
			return fiber.NewError(fiber.StatusForbidden, MsgNotAuthorized)
		}
	}
	return nil
}

// Submit runs the whole gate in one transaction: student exists, form
// exists, cohort authorized, no prior response, then one response plus its
// items inserted as a batch. The unique index on (form, student) catches the
// race where two concurrent submissions both pass the existence check.
func (s *SubmissionService) Submit(input SubmitInput) (responseModel.ResponseModel, error) {
	var created responseModel.ResponseModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var student studentModel.StudentModel
		if err := tx.First(&student, "student_id = ?", input.StudentID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, MsgStudentNotFound)
		}

		var form formModel.FormModel
		if err := tx.First(&form, "form_id = ?", input.FormID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, MsgFormNotFound)
		}

		if err := AuthorizeSubmission(form, student); err != nil {
			return err
		}

		var cnt int64
		if err := tx.Model(&responseModel.ResponseModel{}).
			Where("response_form_id = ? AND response_student_id = ?", form.FormID, student.StudentID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check prior submission")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, MsgDuplicateSubmission)
		}

		// snapshot source: the catalog for this form's type
		var questions []questionModel.QuestionModel
		if err := tx.Where("question_form_type = ?", form.FormType).Find(&questions).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load question catalog")
		}
		byID := make(map[uuid.UUID]questionModel.QuestionModel, len(questions))
		for _, q := range questions {
			byID[q.QuestionID] = q
		}

		created = responseModel.ResponseModel{
			ResponseFormID:      form.FormID,
			ResponseStudentID:   student.StudentID,
			ResponseComment:     input.Comment,
			ResponseSubmittedAt: time.Now(),
		}
		if err := tx.Create(&created).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, MsgDuplicateSubmission)
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to store response")
		}

		items := make([]responseModel.ResponseItemModel, 0, len(input.Ratings))
		for _, r := range input.Ratings {
			q, ok := byID[r.ParameterID]
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "Rating references an unknown question")
			}
			items = append(items, responseModel.ResponseItemModel{
				ItemResponseID:   created.ResponseID,
				ItemParameterID:  q.QuestionID,
				ItemRating:       ClampRating(r.Rating),
				ItemQuestionText: q.QuestionText,
				ItemQuestionType: q.QuestionType,
			})
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to store response items")
			}
		}
		created.ResponseItems = items
		return nil
	})

	return created, err
}

// isUniqueViolation recognizes sqlstate 23505 from either Postgres driver
// (pgx surfaces it normally; lib/pq when the error crossed a pq code path),
// with a message match as the last resort.
func isUniqueViolation(err error) bool {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == "23505"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
