package controller

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	facultyModel "facultyfeedback_backend/internals/features/academics/faculty/model"
	timetableDTO "facultyfeedback_backend/internals/features/academics/timetable/dto"
	timetableModel "facultyfeedback_backend/internals/features/academics/timetable/model"
	timetableService "facultyfeedback_backend/internals/features/academics/timetable/service"
	helper "facultyfeedback_backend/internals/helpers"
)

// sheetFetchLimit caps how much of a published sheet we read (2 MiB).
const sheetFetchLimit = 2 << 20

type TimetableController struct {
	DB *gorm.DB

	// Client fetches published sheet CSVs; overridable in tests.
	Client *http.Client
}

func NewTimetableController(db *gorm.DB) *TimetableController {
	return &TimetableController{
		DB:     db,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetAll lists timetable entries with optional filters
// (?division= &semester= &course= &kind=) and paging.
func (ctrl *TimetableController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 100, 1000)

	q := ctrl.filtered(c)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count timetable entries")
	}

	var entries []timetableModel.TimetableEntryModel
	if err := q.Order("entry_division ASC, entry_subject ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&entries).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch timetable entries")
	}

	return helper.Success(c, "OK", fiber.Map{
		"entries":    entries,
		"pagination": helper.BuildPagination(paging.Page, paging.PerPage, total, len(entries)),
	})
}

func (ctrl *TimetableController) filtered(c *fiber.Ctx) *gorm.DB {
	q := ctrl.DB.Model(&timetableModel.TimetableEntryModel{})
	if v := strings.ToUpper(strings.TrimSpace(c.Query("division"))); v != "" {
		q = q.Where("entry_division = ?", v)
	}
	if v := c.QueryInt("semester"); v > 0 {
		q = q.Where("entry_semester = ?", v)
	}
	if v := strings.ToUpper(strings.TrimSpace(c.Query("course"))); v != "" {
		q = q.Where("entry_course = ?", v)
	}
	if v := strings.ToLower(strings.TrimSpace(c.Query("kind"))); v != "" {
		q = q.Where("entry_kind = ?", v)
	}
	return q
}

// Create adds one timetable entry by hand.
func (ctrl *TimetableController) Create(c *fiber.Ctx) error {
	var req timetableDTO.CreateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	entry := req.ToModel()
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create timetable entry")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Timetable entry created", entry)
}

// Update edits entry fields (partial).
func (ctrl *TimetableController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var entry timetableModel.TimetableEntryModel
	if err := ctrl.DB.First(&entry, "entry_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Timetable entry not found")
	}

	var req timetableDTO.UpdateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(&entry)
	if err := ctrl.DB.Save(&entry).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update timetable entry")
	}
	return helper.Success(c, "Timetable entry updated", entry)
}

// Delete removes one entry. Forms generated from it are untouched.
func (ctrl *TimetableController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Where("entry_id = ?", id).Delete(&timetableModel.TimetableEntryModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete timetable entry")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Timetable entry not found")
	}
	return helper.Success(c, "Timetable entry deleted", nil)
}

// ImportCSV ingests a CSV request body in the fixed export format.
// Rows are independent: bad rows land in errors[], good rows are upserted.
func (ctrl *TimetableController) ImportCSV(c *fiber.Ctx) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Empty CSV body")
	}
	return ctrl.importEntries(c, bytes.NewReader(body))
}

// ImportSheet downloads a published spreadsheet CSV and ingests it. Any
// upstream failure (network, non-200, non-CSV payload) maps to 502.
func (ctrl *TimetableController) ImportSheet(c *fiber.Ctx) error {
	var req timetableDTO.ImportSheetRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	httpReq, err := http.NewRequestWithContext(c.Context(), http.MethodGet, req.URL, nil)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sheet URL")
	}
	resp, err := ctrl.Client.Do(httpReq)
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Failed to fetch sheet")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return helper.Error(c, fiber.StatusBadGateway,
			fmt.Sprintf("Sheet fetch returned status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, sheetFetchLimit))
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Failed to read sheet")
	}
	if looksLikeHTML(data) {
		return helper.Error(c, fiber.StatusBadGateway, "Sheet URL did not return CSV; publish the sheet as CSV first")
	}
	return ctrl.importEntries(c, bytes.NewReader(data))
}

func (ctrl *TimetableController) importEntries(c *fiber.Ctx, r io.Reader) error {
	reqs, rowErrors, err := timetableDTO.ParseEntriesCSV(r)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	result := helper.NewBulkResult()
	for _, msg := range rowErrors {
		result.Errors = append(result.Errors, helper.BulkRowError{Error: msg})
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		for _, req := range reqs {
			var existing timetableModel.TimetableEntryModel
			q := tx.Where(
				"entry_kind = ? AND entry_subject = ? AND entry_faculty_code = ? AND entry_division = ? AND entry_semester = ? AND entry_course = ?",
				req.EntryKind, req.EntrySubject, req.EntryFacultyCode, req.EntryDivision, req.EntrySemester, req.EntryCourse)
			if req.EntryBatch != nil {
				q = q.Where("entry_batch = ?", *req.EntryBatch)
			} else {
				q = q.Where("entry_batch IS NULL")
			}

			err := q.First(&existing).Error
			switch {
			case err == nil:
				if ptrEq(existing.EntrySubjectCode, req.EntrySubjectCode) &&
					ptrEq(existing.EntryRoom, req.EntryRoom) &&
					daysEq(existing.EntryDays, req.EntryDays) {
					result.Skipped++
					continue
				}
				existing.EntrySubjectCode = req.EntrySubjectCode
				existing.EntryRoom = req.EntryRoom
				existing.EntryDays = pq.StringArray(req.EntryDays)
				existing.EntryUpdatedAt = time.Now()
				if err := tx.Save(&existing).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Failed to update timetable entry")
				}
				result.Updated++
			case err == gorm.ErrRecordNotFound:
				entry := req.ToModel()
				if err := tx.Create(&entry).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Failed to create timetable entry")
				}
				result.Created++
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to look up timetable entry")
			}
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Timetable imported", result)
}

// ExportCSV streams all entries (honoring the list filters) in the same
// fixed-header format ImportCSV reads.
func (ctrl *TimetableController) ExportCSV(c *fiber.Ctx) error {
	var entries []timetableModel.TimetableEntryModel
	if err := ctrl.filtered(c).
		Order("entry_division ASC, entry_subject ASC").
		Find(&entries).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch timetable entries")
	}

	var buf bytes.Buffer
	if err := timetableDTO.WriteEntriesCSV(&buf, entries); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to encode CSV")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="timetable-%s.csv"`, time.Now().Format("2006-01-02")))
	return c.Send(buf.Bytes())
}

// Extract runs the heuristic text parser over pasted timetable text and
// returns entry candidates. Nothing is persisted; the admin reviews the
// candidates and posts the good ones through Create or ImportCSV.
func (ctrl *TimetableController) Extract(c *fiber.Ctx) error {
	var req timetableDTO.ExtractRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var faculties []facultyModel.FacultyModel
	if err := ctrl.DB.Find(&faculties).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch faculty records")
	}
	known := make(map[string]timetableService.KnownFaculty, len(faculties))
	for _, f := range faculties {
		known[strings.ToUpper(f.FacultyCode)] = timetableService.KnownFaculty{
			Name:  f.FacultyName,
			Email: f.FacultyEmail,
		}
	}

	candidates := timetableService.ExtractEntries(req.Text, known)
	valid := 0
	for _, cand := range candidates {
		if cand.Valid {
			valid++
		}
	}
	return helper.Success(c, "OK", fiber.Map{
		"candidates": candidates,
		"total":      len(candidates),
		"valid":      valid,
	})
}

func looksLikeHTML(data []byte) bool {
	head := bytes.ToLower(bytes.TrimSpace(data))
	return bytes.HasPrefix(head, []byte("<!doctype")) || bytes.HasPrefix(head, []byte("<html"))
}

func ptrEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func daysEq(a pq.StringArray, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
