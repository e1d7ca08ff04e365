package dto

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"

	timetableModel "facultyfeedback_backend/internals/features/academics/timetable/model"
)

func trimUpperPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.ToUpper(strings.TrimSpace(*p))
	if s == "" {
		return nil
	}
	return &s
}

func daysToPQ(in []string) pq.StringArray {
	if len(in) == 0 {
		return nil
	}
	out := make(pq.StringArray, 0, len(in))
	for _, d := range in {
		if d = strings.ToUpper(strings.TrimSpace(d)); d != "" {
			out = append(out, d)
		}
	}
	return out
}

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateEntryRequest struct {
	EntryKind        string   `json:"entry_kind" validate:"required,oneof=theory lab"`
	EntrySubject     string   `json:"entry_subject" validate:"required,min=2,max=40"`
	EntrySubjectCode *string  `json:"entry_subject_code" validate:"omitempty,max=20"`
	EntryRoom        *string  `json:"entry_room" validate:"omitempty,max=10"`
	EntryFacultyCode string   `json:"entry_faculty_code" validate:"required,min=2,max=8"`
	EntryDays        []string `json:"entry_days" validate:"omitempty,dive,oneof=MON TUE WED THU FRI SAT SUN"`
	EntryDivision    string   `json:"entry_division" validate:"required,max=10"`
	EntryBatch       *string  `json:"entry_batch" validate:"omitempty,max=10"`
	EntrySemester    int      `json:"entry_semester" validate:"required,min=1,max=12"`
	EntryCourse      string   `json:"entry_course" validate:"required,max=40"`
}

func (r *CreateEntryRequest) Normalize() {
	r.EntryKind = strings.ToLower(strings.TrimSpace(r.EntryKind))
	r.EntrySubject = strings.ToUpper(strings.TrimSpace(r.EntrySubject))
	r.EntrySubjectCode = trimUpperPtr(r.EntrySubjectCode)
	r.EntryRoom = trimUpperPtr(r.EntryRoom)
	r.EntryFacultyCode = strings.ToUpper(strings.TrimSpace(r.EntryFacultyCode))
	for i, d := range r.EntryDays {
		r.EntryDays[i] = strings.ToUpper(strings.TrimSpace(d))
	}
	r.EntryDivision = strings.ToUpper(strings.TrimSpace(r.EntryDivision))
	r.EntryBatch = trimUpperPtr(r.EntryBatch)
	r.EntryCourse = strings.ToUpper(strings.TrimSpace(r.EntryCourse))
}

func (r CreateEntryRequest) Check() error {
	var missing []string
	if r.EntryKind != timetableModel.EntryKindTheory && r.EntryKind != timetableModel.EntryKindLab {
		missing = append(missing, "kind")
	}
	if len(strings.TrimSpace(r.EntrySubject)) < 2 {
		missing = append(missing, "subject")
	}
	if len(strings.TrimSpace(r.EntryFacultyCode)) < 2 {
		missing = append(missing, "faculty_code")
	}
	if strings.TrimSpace(r.EntryDivision) == "" {
		missing = append(missing, "division")
	}
	if r.EntrySemester < 1 || r.EntrySemester > 12 {
		missing = append(missing, "semester")
	}
	if strings.TrimSpace(r.EntryCourse) == "" {
		missing = append(missing, "course")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing or invalid fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (r *CreateEntryRequest) ToModel() timetableModel.TimetableEntryModel {
	return timetableModel.TimetableEntryModel{
		EntryKind:        r.EntryKind,
		EntrySubject:     r.EntrySubject,
		EntrySubjectCode: r.EntrySubjectCode,
		EntryRoom:        r.EntryRoom,
		EntryFacultyCode: r.EntryFacultyCode,
		EntryDays:        daysToPQ(r.EntryDays),
		EntryDivision:    r.EntryDivision,
		EntryBatch:       r.EntryBatch,
		EntrySemester:    r.EntrySemester,
		EntryCourse:      r.EntryCourse,
		EntryCreatedAt:   time.Now(),
		EntryUpdatedAt:   time.Now(),
	}
}

type UpdateEntryRequest struct {
	EntryKind        *string  `json:"entry_kind" validate:"omitempty,oneof=theory lab"`
	EntrySubject     *string  `json:"entry_subject" validate:"omitempty,min=2,max=40"`
	EntrySubjectCode *string  `json:"entry_subject_code" validate:"omitempty,max=20"`
	EntryRoom        *string  `json:"entry_room" validate:"omitempty,max=10"`
	EntryFacultyCode *string  `json:"entry_faculty_code" validate:"omitempty,min=2,max=8"`
	EntryDays        []string `json:"entry_days" validate:"omitempty,dive,oneof=MON TUE WED THU FRI SAT SUN"`
	EntryDivision    *string  `json:"entry_division" validate:"omitempty,max=10"`
	EntryBatch       *string  `json:"entry_batch" validate:"omitempty,max=10"`
	EntrySemester    *int     `json:"entry_semester" validate:"omitempty,min=1,max=12"`
	EntryCourse      *string  `json:"entry_course" validate:"omitempty,max=40"`
}

func (r *UpdateEntryRequest) Normalize() {
	if r.EntryKind != nil {
		k := strings.ToLower(strings.TrimSpace(*r.EntryKind))
		r.EntryKind = &k
	}
	r.EntrySubject = trimUpperPtr(r.EntrySubject)
	r.EntrySubjectCode = trimUpperPtr(r.EntrySubjectCode)
	r.EntryRoom = trimUpperPtr(r.EntryRoom)
	r.EntryFacultyCode = trimUpperPtr(r.EntryFacultyCode)
	for i, d := range r.EntryDays {
		r.EntryDays[i] = strings.ToUpper(strings.TrimSpace(d))
	}
	r.EntryDivision = trimUpperPtr(r.EntryDivision)
	r.EntryBatch = trimUpperPtr(r.EntryBatch)
	r.EntryCourse = trimUpperPtr(r.EntryCourse)
}

// ApplyTo copies the set fields onto an existing entry.
func (r *UpdateEntryRequest) ApplyTo(m *timetableModel.TimetableEntryModel) {
	if r.EntryKind != nil {
		m.EntryKind = *r.EntryKind
	}
	if r.EntrySubject != nil {
		m.EntrySubject = *r.EntrySubject
	}
	if r.EntrySubjectCode != nil {
		m.EntrySubjectCode = r.EntrySubjectCode
	}
	if r.EntryRoom != nil {
		m.EntryRoom = r.EntryRoom
	}
	if r.EntryFacultyCode != nil {
		m.EntryFacultyCode = *r.EntryFacultyCode
	}
	if r.EntryDays != nil {
		m.EntryDays = daysToPQ(r.EntryDays)
	}
	if r.EntryDivision != nil {
		m.EntryDivision = *r.EntryDivision
	}
	if r.EntryBatch != nil {
		m.EntryBatch = r.EntryBatch
	}
	if r.EntrySemester != nil {
		m.EntrySemester = *r.EntrySemester
	}
	if r.EntryCourse != nil {
		m.EntryCourse = *r.EntryCourse
	}
	m.EntryUpdatedAt = time.Now()
}

type ExtractRequest struct {
	Text string `json:"text" validate:"required,min=10"`
}

type ImportSheetRequest struct {
	URL string `json:"url" validate:"required,url"`
}

/* =========================================================
   CSV codec — fixed header, comma split
========================================================= */

var csvHeader = []string{
	"kind", "subject", "subject_code", "room", "faculty_code",
	"days", "division", "batch", "semester", "course",
}

// days serialize into one CSV cell, pipe-separated ("MON|WED|FRI").
const daysSeparator = "|"

// ParseEntriesCSV reads the fixed-header CSV format. Row problems are
// returned per row number (1-based after the header); good rows still parse.
func ParseEntriesCSV(r io.Reader) ([]CreateEntryRequest, []string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("missing CSV header")
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, want := range []string{"kind", "subject", "faculty_code", "division", "semester", "course"} {
		if _, ok := col[want]; !ok {
			return nil, nil, fmt.Errorf("CSV header is missing column %q", want)
		}
	}

	get := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	optional := func(row []string, name string) *string {
		if v := get(row, name); v != "" {
			return &v
		}
		return nil
	}

	var entries []CreateEntryRequest
	var rowErrors []string
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}

		semester, _ := strconv.Atoi(get(row, "semester"))
		var days []string
		for _, d := range strings.Split(get(row, "days"), daysSeparator) {
			if d = strings.TrimSpace(d); d != "" {
				days = append(days, d)
			}
		}
		req := CreateEntryRequest{
			EntryKind:        get(row, "kind"),
			EntrySubject:     get(row, "subject"),
			EntrySubjectCode: optional(row, "subject_code"),
			EntryRoom:        optional(row, "room"),
			EntryFacultyCode: get(row, "faculty_code"),
			EntryDays:        days,
			EntryDivision:    get(row, "division"),
			EntryBatch:       optional(row, "batch"),
			EntrySemester:    semester,
			EntryCourse:      get(row, "course"),
		}
		req.Normalize()
		if err := req.Check(); err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		entries = append(entries, req)
	}
	return entries, rowErrors, nil
}

// WriteEntriesCSV produces the same fixed-header format the importer reads.
func WriteEntriesCSV(w io.Writer, entries []timetableModel.TimetableEntryModel) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	str := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	for _, e := range entries {
		row := []string{
			e.EntryKind,
			e.EntrySubject,
			str(e.EntrySubjectCode),
			str(e.EntryRoom),
			e.EntryFacultyCode,
			strings.Join(e.EntryDays, daysSeparator),
			e.EntryDivision,
			str(e.EntryBatch),
			strconv.Itoa(e.EntrySemester),
			e.EntryCourse,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
