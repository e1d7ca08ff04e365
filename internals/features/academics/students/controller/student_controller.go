package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentDTO "facultyfeedback_backend/internals/features/academics/students/dto"
	studentModel "facultyfeedback_backend/internals/features/academics/students/model"
	helper "facultyfeedback_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// GetAll lists students with optional cohort filters and paging.
func (ctrl *StudentController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 500)

	q := ctrl.DB.Model(&studentModel.StudentModel{})
	if v := strings.ToUpper(strings.TrimSpace(c.Query("division"))); v != "" {
		q = q.Where("student_division = ?", v)
	}
	if v := c.QueryInt("semester"); v > 0 {
		q = q.Where("student_semester = ?", v)
	}
	if v := strings.ToUpper(strings.TrimSpace(c.Query("course"))); v != "" {
		q = q.Where("student_course = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var students []studentModel.StudentModel
	if err := q.Order("student_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&students).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	out := make([]studentDTO.StudentResponse, 0, len(students))
	for _, m := range students {
		out = append(out, studentDTO.NewStudentResponse(m))
	}
	return helper.Success(c, "OK", fiber.Map{
		"students":   out,
		"pagination": helper.BuildPagination(paging.Page, paging.PerPage, total, len(out)),
	})
}

// Create adds one student; duplicate email is a conflict.
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	var req studentDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var created studentModel.StudentModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&studentModel.StudentModel{}).
			Where("lower(student_email) = ?", req.StudentEmail).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check duplicate email")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "A student with this email already exists")
		}

		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student created", studentDTO.NewStudentResponse(created))
}

// BulkImport accepts an array of students. Rows are processed independently:
// a bad row lands in errors[], existing emails are updated in place, and the
// response reports counts. Partial success is the expected outcome.
func (ctrl *StudentController) BulkImport(c *fiber.Ctx) error {
	var reqs []studentDTO.CreateStudentRequest
	if err := c.BodyParser(&reqs); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body, expected an array")
	}
	if len(reqs) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "No rows in request")
	}

	result := helper.NewBulkResult()
	for i := range reqs {
		reqs[i].Normalize()
		if err := reqs[i].Check(); err != nil {
			result.Errors = append(result.Errors, helper.BulkRowError{
				Row:   i + 1,
				Email: reqs[i].StudentEmail,
				Error: err.Error(),
			})
			continue
		}

		var existing studentModel.StudentModel
		err := ctrl.DB.Where("lower(student_email) = ?", reqs[i].StudentEmail).First(&existing).Error
		switch {
		case err == nil:
			existing.StudentName = reqs[i].StudentName
			existing.StudentSemester = reqs[i].StudentSemester
			existing.StudentCourse = reqs[i].StudentCourse
			existing.StudentDivision = reqs[i].StudentDivision
			existing.StudentBatch = reqs[i].StudentBatch
			existing.StudentUpdatedAt = time.Now()
			if err := ctrl.DB.Save(&existing).Error; err != nil {
				result.Errors = append(result.Errors, helper.BulkRowError{
					Row: i + 1, Email: reqs[i].StudentEmail, Error: "update failed",
				})
				continue
			}
			result.Updated++
		case err == gorm.ErrRecordNotFound:
			m := reqs[i].ToModel()
			if err := ctrl.DB.Create(&m).Error; err != nil {
				result.Errors = append(result.Errors, helper.BulkRowError{
					Row: i + 1, Email: reqs[i].StudentEmail, Error: "insert failed",
				})
				continue
			}
			result.Created++
		default:
			result.Errors = append(result.Errors, helper.BulkRowError{
				Row: i + 1, Email: reqs[i].StudentEmail, Error: "lookup failed",
			})
		}
	}

	return helper.Success(c, "Bulk import finished", result)
}

// Update edits one student (partial).
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Student not found")
	}

	var req studentDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.StudentName != nil {
		student.StudentName = strings.TrimSpace(*req.StudentName)
	}
	if req.StudentSemester != nil {
		student.StudentSemester = *req.StudentSemester
	}
	if req.StudentCourse != nil {
		student.StudentCourse = strings.ToUpper(strings.TrimSpace(*req.StudentCourse))
	}
	if req.StudentDivision != nil {
		student.StudentDivision = strings.ToUpper(strings.TrimSpace(*req.StudentDivision))
	}
	if req.StudentBatch != nil {
		student.StudentBatch = req.StudentBatch
	}
	student.StudentUpdatedAt = time.Now()

	if err := ctrl.DB.Save(&student).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	return helper.Success(c, "Student updated", studentDTO.NewStudentResponse(student))
}

// Delete removes one student record.
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	res := ctrl.DB.Delete(&studentModel.StudentModel{}, "student_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.Success(c, "Student deleted", nil)
}
