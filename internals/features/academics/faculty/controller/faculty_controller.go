package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	facultyDTO "facultyfeedback_backend/internals/features/academics/faculty/dto"
	facultyModel "facultyfeedback_backend/internals/features/academics/faculty/model"
	helper "facultyfeedback_backend/internals/helpers"
)

type FacultyController struct {
	DB *gorm.DB
}

func NewFacultyController(db *gorm.DB) *FacultyController {
	return &FacultyController{DB: db}
}

// GetAll lists faculty records ordered by name.
func (ctrl *FacultyController) GetAll(c *fiber.Ctx) error {
	var faculties []facultyModel.FacultyModel
	if err := ctrl.DB.Order("faculty_name ASC").Find(&faculties).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch faculty records")
	}

	out := make([]facultyDTO.FacultyResponse, 0, len(faculties))
	for _, m := range faculties {
		out = append(out, facultyDTO.NewFacultyResponse(m))
	}
	return helper.Success(c, "OK", out)
}

// Create adds one faculty member; email and code must both be unused.
func (ctrl *FacultyController) Create(c *fiber.Ctx) error {
	var req facultyDTO.CreateFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var created facultyModel.FacultyModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&facultyModel.FacultyModel{}).
			Where("lower(faculty_email) = ? OR upper(faculty_code) = ?", req.FacultyEmail, req.FacultyCode).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check duplicates")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Faculty email or code already in use")
		}

		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create faculty record")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Faculty created", facultyDTO.NewFacultyResponse(created))
}

// BulkImport mirrors the student importer: independent rows, upsert by
// email, errors collected per row.
func (ctrl *FacultyController) BulkImport(c *fiber.Ctx) error {
	var reqs []facultyDTO.CreateFacultyRequest
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
				Email: reqs[i].FacultyEmail,
				Error: err.Error(),
			})
			continue
		}

		var existing facultyModel.FacultyModel
		err := ctrl.DB.Where("lower(faculty_email) = ?", reqs[i].FacultyEmail).First(&existing).Error
		switch {
		case err == nil:
			existing.FacultyName = reqs[i].FacultyName
			existing.FacultyCode = reqs[i].FacultyCode
			existing.FacultyDepartment = reqs[i].FacultyDepartment
			existing.FacultyUpdatedAt = time.Now()
			if err := ctrl.DB.Save(&existing).Error; err != nil {
				result.Errors = append(result.Errors, helper.BulkRowError{
					Row: i + 1, Email: reqs[i].FacultyEmail, Error: "update failed",
				})
				continue
			}
			result.Updated++
		case err == gorm.ErrRecordNotFound:
			m := reqs[i].ToModel()
			if err := ctrl.DB.Create(&m).Error; err != nil {
				result.Errors = append(result.Errors, helper.BulkRowError{
					Row: i + 1, Email: reqs[i].FacultyEmail, Error: "insert failed",
				})
				continue
			}
			result.Created++
		default:
			result.Errors = append(result.Errors, helper.BulkRowError{
				Row: i + 1, Email: reqs[i].FacultyEmail, Error: "lookup failed",
			})
		}
	}

	return helper.Success(c, "Bulk import finished", result)
}

// Update edits one faculty record (partial). Email is the faculty's
// identity across forms and stays fixed.
func (ctrl *FacultyController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var fac facultyModel.FacultyModel
	if err := ctrl.DB.First(&fac, "faculty_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Faculty not found")
	}

	var req facultyDTO.UpdateFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.FacultyName != nil {
		fac.FacultyName = strings.TrimSpace(*req.FacultyName)
	}
	if req.FacultyCode != nil {
		fac.FacultyCode = strings.ToUpper(strings.TrimSpace(*req.FacultyCode))
	}
	if req.FacultyDepartment != nil {
		fac.FacultyDepartment = req.FacultyDepartment
	}
	fac.FacultyUpdatedAt = time.Now()

	if err := ctrl.DB.Save(&fac).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update faculty record")
	}
	return helper.Success(c, "Faculty updated", facultyDTO.NewFacultyResponse(fac))
}

// Delete removes one faculty record. Forms keep their own faculty name and
// email columns, so reports for past forms are unaffected.
func (ctrl *FacultyController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	res := ctrl.DB.Delete(&facultyModel.FacultyModel{}, "faculty_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete faculty record")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Faculty not found")
	}
	return helper.Success(c, "Faculty deleted", nil)
}
