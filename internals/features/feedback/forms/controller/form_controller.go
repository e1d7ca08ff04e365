package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	facultyModel "facultyfeedback_backend/internals/features/academics/faculty/model"
	timetableModel "facultyfeedback_backend/internals/features/academics/timetable/model"
	formDTO "facultyfeedback_backend/internals/features/feedback/forms/dto"
	formModel "facultyfeedback_backend/internals/features/feedback/forms/model"
	responseModel "facultyfeedback_backend/internals/features/feedback/responses/model"
	helper "facultyfeedback_backend/internals/helpers"
)

type FormController struct {
	DB *gorm.DB
}

func NewFormController(db *gorm.DB) *FormController {
	return &FormController{DB: db}
}

// GetAll lists form instances with optional filters
// (?division= &semester= &course= &status= &faculty_email=) and paging.
func (ctrl *FormController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 500)

	q := ctrl.DB.Model(&formModel.FormModel{})
	if v := strings.ToUpper(strings.TrimSpace(c.Query("division"))); v != "" {
		q = q.Where("form_division = ?", v)
	}
	if v := c.QueryInt("semester"); v > 0 {
		q = q.Where("form_semester = ?", v)
	}
	if v := strings.ToUpper(strings.TrimSpace(c.Query("course"))); v != "" {
		q = q.Where("form_course = ?", v)
	}
	if v := strings.ToLower(strings.TrimSpace(c.Query("status"))); v != "" {
		q = q.Where("form_status = ?", v)
	}
	if v := strings.ToLower(strings.TrimSpace(c.Query("faculty_email"))); v != "" {
		q = q.Where("lower(form_faculty_email) = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count forms")
	}

	var forms []formModel.FormModel
	if err := q.Order("form_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&forms).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch forms")
	}

	out := make([]formDTO.FormResponse, 0, len(forms))
	for _, m := range forms {
		out = append(out, formDTO.NewFormResponse(m))
	}
	return helper.Success(c, "OK", fiber.Map{
		"forms":      out,
		"pagination": helper.BuildPagination(paging.Page, paging.PerPage, total, len(out)),
	})
}

// Create adds one form instance by hand. Duplicates of an existing
// (subject, faculty, division, batch, type) combination are rejected.
func (ctrl *FormController) Create(c *fiber.Ctx) error {
	var req formDTO.CreateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var created formModel.FormModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		dup := tx.Model(&formModel.FormModel{}).
			Where("form_subject_name = ? AND lower(form_faculty_email) = ? AND form_division = ? AND form_type = ?",
				req.FormSubjectName, req.FormFacultyEmail, req.FormDivision, req.FormType)
		if req.FormBatch != nil {
			dup = dup.Where("form_batch = ?", *req.FormBatch)
		} else {
			dup = dup.Where("form_batch IS NULL")
		}
		if err := dup.Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check duplicate form")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "A form for this assignment already exists")
		}

		created = req.ToModel()
		if err := tx.Create(&created).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create form")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Form created", formDTO.NewFormResponse(created))
}

// Update edits form instance fields (partial).
func (ctrl *FormController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var form formModel.FormModel
	if err := ctrl.DB.First(&form, "form_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Form not found")
	}

	var req formDTO.UpdateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.FormSubjectName != nil {
		form.FormSubjectName = strings.ToUpper(strings.TrimSpace(*req.FormSubjectName))
	}
	if req.FormSubjectCode != nil {
		form.FormSubjectCode = req.FormSubjectCode
	}
	if req.FormFacultyName != nil {
		form.FormFacultyName = strings.TrimSpace(*req.FormFacultyName)
	}
	if req.FormFacultyEmail != nil {
		form.FormFacultyEmail = strings.ToLower(strings.TrimSpace(*req.FormFacultyEmail))
	}
	if req.FormDivision != nil {
		form.FormDivision = strings.ToUpper(strings.TrimSpace(*req.FormDivision))
	}
	if req.FormBatch != nil {
		form.FormBatch = req.FormBatch
	}
	if req.FormSemester != nil {
		form.FormSemester = *req.FormSemester
	}
	if req.FormCourse != nil {
		form.FormCourse = strings.ToUpper(strings.TrimSpace(*req.FormCourse))
	}
	form.FormUpdatedAt = time.Now()

	if err := ctrl.DB.Save(&form).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update form")
	}
	return helper.Success(c, "Form updated", formDTO.NewFormResponse(form))
}

// UpdateStatus opens or closes a form for submissions.
func (ctrl *FormController) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var req formDTO.UpdateFormStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var form formModel.FormModel
	if err := ctrl.DB.First(&form, "form_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Form not found")
	}

	form.FormStatus = req.FormStatus
	form.FormUpdatedAt = time.Now()
	if err := ctrl.DB.Save(&form).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update form status")
	}
	return helper.Success(c, "Form status updated", formDTO.NewFormResponse(form))
}

// Delete removes a form and its responses.
func (ctrl *FormController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var form formModel.FormModel
		if err := tx.First(&form, "form_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Form not found")
		}

		var responseIDs []string
		if err := tx.Model(&responseModel.ResponseModel{}).
			Where("response_form_id = ?", form.FormID).
			Pluck("response_id", &responseIDs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to collect responses")
		}
		if len(responseIDs) > 0 {
			if err := tx.Where("item_response_id IN ?", responseIDs).
				Delete(&responseModel.ResponseItemModel{}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete response items")
			}
			if err := tx.Where("response_form_id = ?", form.FormID).
				Delete(&responseModel.ResponseModel{}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete responses")
			}
		}

		if err := tx.Delete(&form).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete form")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Form deleted", nil)
}

// Generate turns timetable entries into form instances. Entries whose
// faculty code does not resolve are skipped, as are combinations that
// already have an instance. The endpoint is idempotent: re-running it
// only creates what is missing.
func (ctrl *FormController) Generate(c *fiber.Ctx) error {
	var req formDTO.GenerateFormsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	q := ctrl.DB.Model(&timetableModel.TimetableEntryModel{})
	if v := strings.ToUpper(strings.TrimSpace(req.Division)); v != "" {
		q = q.Where("entry_division = ?", v)
	}
	if req.Semester > 0 {
		q = q.Where("entry_semester = ?", req.Semester)
	}
	if v := strings.ToUpper(strings.TrimSpace(req.Course)); v != "" {
		q = q.Where("entry_course = ?", v)
	}

	var entries []timetableModel.TimetableEntryModel
	if err := q.Find(&entries).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch timetable entries")
	}

	var faculties []facultyModel.FacultyModel
	if err := ctrl.DB.Find(&faculties).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch faculty records")
	}
	byCode := make(map[string]facultyModel.FacultyModel, len(faculties))
	for _, f := range faculties {
		byCode[strings.ToUpper(f.FacultyCode)] = f
	}

	result := formDTO.GenerateFormsResponse{}
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		for _, e := range entries {
			fac, ok := byCode[strings.ToUpper(e.EntryFacultyCode)]
			if !ok {
				result.Skipped++
				continue
			}

			dup := tx.Model(&formModel.FormModel{}).
				Where("form_subject_name = ? AND lower(form_faculty_email) = ? AND form_division = ? AND form_type = ?",
					e.EntrySubject, strings.ToLower(fac.FacultyEmail), e.EntryDivision, e.EntryKind)
			if e.EntryBatch != nil {
				dup = dup.Where("form_batch = ?", *e.EntryBatch)
			} else {
				dup = dup.Where("form_batch IS NULL")
			}
			var cnt int64
			if err := dup.Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to check duplicate form")
			}
			if cnt > 0 {
				result.Skipped++
				continue
			}

			form := formModel.FormModel{
				FormSubjectName:  e.EntrySubject,
				FormSubjectCode:  e.EntrySubjectCode,
				FormFacultyName:  fac.FacultyName,
				FormFacultyEmail: strings.ToLower(fac.FacultyEmail),
				FormDivision:     e.EntryDivision,
				FormBatch:        e.EntryBatch,
				FormSemester:     e.EntrySemester,
				FormCourse:       e.EntryCourse,
				FormType:         e.EntryKind,
				FormStatus:       formModel.FormStatusActive,
				FormCreatedAt:    time.Now(),
				FormUpdatedAt:    time.Now(),
			}
			if err := tx.Create(&form).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to create form instance")
			}
			result.Created++
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Forms generated", result)
}
