package controller

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	responseDTO "facultyfeedback_backend/internals/features/feedback/responses/dto"
	responseModel "facultyfeedback_backend/internals/features/feedback/responses/model"
	"facultyfeedback_backend/internals/features/feedback/responses/service"
	helper "facultyfeedback_backend/internals/helpers"
	"facultyfeedback_backend/internals/middlewares/identity"
)

type ReportController struct {
	DB      *gorm.DB
	Reports *service.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{
		DB:      db,
		Reports: service.NewReportService(db),
	}
}

// GetFormResponses lists every submission for one form, items included.
func (ctrl *ReportController) GetFormResponses(c *fiber.Ctx) error {
	formID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid form id")
	}

	var responses []responseModel.ResponseModel
	if err := ctrl.DB.Preload("ResponseItems").
		Where("response_form_id = ?", formID).
		Order("response_submitted_at ASC").
		Find(&responses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch responses")
	}

	out := make([]responseDTO.ResponseResponse, 0, len(responses))
	for _, m := range responses {
		out = append(out, responseDTO.NewResponseResponse(m))
	}
	return helper.Success(c, "OK", out)
}

// GetFormReport computes the per-form report on demand.
func (ctrl *ReportController) GetFormReport(c *fiber.Ctx) error {
	formID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid form id")
	}

	report, err := ctrl.Reports.FormReport(formID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Form not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build report")
	}
	return helper.Success(c, "OK", report)
}

// GetFacultyRanking returns the ranked faculty summary listing.
func (ctrl *ReportController) GetFacultyRanking(c *fiber.Ctx) error {
	summaries, err := ctrl.Reports.FacultySummaries()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build faculty summaries")
	}
	return helper.Success(c, "OK", summaries)
}

// GetOwnReport is the faculty self-service report, keyed off the identity.
func (ctrl *ReportController) GetOwnReport(c *fiber.Ctx) error {
	email := identity.Email(c)
	report, err := ctrl.Reports.FacultyReport(email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Faculty record not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build report")
	}
	return helper.Success(c, "OK", report)
}

// DeleteResponse removes one submission and its items (admin cleanup for
// test submissions; students themselves can never mutate a response).
func (ctrl *ReportController) DeleteResponse(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var resp responseModel.ResponseModel
		if err := tx.First(&resp, "response_id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Response not found")
		}
		if err := tx.Where("item_response_id = ?", resp.ResponseID).
			Delete(&responseModel.ResponseItemModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete response items")
		}
		if err := tx.Delete(&resp).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete response")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Response deleted", nil)
}

// ExportReports writes the faculty summary and per-form question stats into
// one xlsx workbook.
func (ctrl *ReportController) ExportReports(c *fiber.Ctx) error {
	summaries, err := ctrl.Reports.FacultySummaries()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build faculty summaries")
	}

	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Faculty Summary"
	f.SetSheetName("Sheet1", summarySheet)
	headers := []string{"Rank", "Faculty", "Email", "Forms", "Responses", "Average (0-10)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(summarySheet, cell, h)
	}
	for i, s := range summaries {
		row := i + 2
		avg := "-"
		if s.ResponseCount > 0 {
			avg = fmt.Sprintf("%.2f", s.Average)
		}
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), s.FacultyName)
		f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), s.FacultyEmail)
		f.SetCellValue(summarySheet, fmt.Sprintf("D%d", row), s.FormCount)
		f.SetCellValue(summarySheet, fmt.Sprintf("E%d", row), s.ResponseCount)
		f.SetCellValue(summarySheet, fmt.Sprintf("F%d", row), avg)
	}

	const formSheet = "Form Reports"
	f.NewSheet(formSheet)
	formHeaders := []string{"Subject", "Faculty", "Division", "Batch", "Type", "Question", "Scale", "Ratings", "Raw Avg", "Normalized Avg"}
	for i, h := range formHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(formSheet, cell, h)
	}
	row := 2
	for _, s := range summaries {
		report, err := ctrl.Reports.FacultyReport(s.FacultyEmail)
		if err != nil {
			continue
		}
		for _, fr := range report.Forms {
			batch := ""
			if fr.Form.FormBatch != nil {
				batch = *fr.Form.FormBatch
			}
			for _, qs := range fr.QuestionStats {
				f.SetCellValue(formSheet, fmt.Sprintf("A%d", row), fr.Form.FormSubjectName)
				f.SetCellValue(formSheet, fmt.Sprintf("B%d", row), fr.Form.FormFacultyName)
				f.SetCellValue(formSheet, fmt.Sprintf("C%d", row), fr.Form.FormDivision)
				f.SetCellValue(formSheet, fmt.Sprintf("D%d", row), batch)
				f.SetCellValue(formSheet, fmt.Sprintf("E%d", row), fr.Form.FormType)
				f.SetCellValue(formSheet, fmt.Sprintf("F%d", row), qs.QuestionText)
				f.SetCellValue(formSheet, fmt.Sprintf("G%d", row), qs.QuestionType)
				f.SetCellValue(formSheet, fmt.Sprintf("H%d", row), qs.RatingCount)
				f.SetCellValue(formSheet, fmt.Sprintf("I%d", row), qs.RawAverage)
				f.SetCellValue(formSheet, fmt.Sprintf("J%d", row), qs.NormalizedAverage)
				row++
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to build workbook")
	}

	filename := fmt.Sprintf("feedback-reports-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}
