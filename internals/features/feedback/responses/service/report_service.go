package service

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	facultyModel "facultyfeedback_backend/internals/features/academics/faculty/model"
	formModel "facultyfeedback_backend/internals/features/feedback/forms/model"
	responseModel "facultyfeedback_backend/internals/features/feedback/responses/model"
)

// ReportService reads responses back out and shapes the display statistics.
// Nothing is pre-aggregated: every report is computed on demand from rows.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// FormReport is everything the per-form report page needs.
type FormReport struct {
	Form           formModel.FormModel           `json:"form"`
	OverallAverage float64                       `json:"overall_average"`
	ResponseCount  int                           `json:"response_count"`
	QuestionStats  []QuestionStat                `json:"question_stats"`
	Responses      []responseModel.ResponseModel `json:"responses"`
}

func (s *ReportService) FormReport(formID uuid.UUID) (FormReport, error) {
	var report FormReport

	if err := s.DB.First(&report.Form, "form_id = ?", formID).Error; err != nil {
		return report, err
	}

	if err := s.DB.Preload("ResponseItems").
		Where("response_form_id = ?", formID).
		Order("response_submitted_at ASC").
		Find(&report.Responses).Error; err != nil {
		return report, err
	}

	var allItems []responseModel.ResponseItemModel
	var sum float64
	for _, r := range report.Responses {
		allItems = append(allItems, r.ResponseItems...)
		sum += ResponseAverage(r.ResponseItems)
	}
	report.ResponseCount = len(report.Responses)
	if report.ResponseCount > 0 {
		report.OverallAverage = sum / float64(report.ResponseCount)
	}
	report.QuestionStats = QuestionStats(allItems)
	return report, nil
}

// FacultySummaries computes the ranked reports listing: one row per faculty
// record, averaging per-response averages over every form the faculty owns
// (matched case-insensitively by email).
func (s *ReportService) FacultySummaries() ([]FacultySummary, error) {
	var faculties []facultyModel.FacultyModel
	if err := s.DB.Order("faculty_name ASC").Find(&faculties).Error; err != nil {
		return nil, err
	}

	var forms []formModel.FormModel
	if err := s.DB.Find(&forms).Error; err != nil {
		return nil, err
	}
	formsByEmail := make(map[string][]uuid.UUID)
	for _, f := range forms {
		k := strings.ToLower(f.FormFacultyEmail)
		formsByEmail[k] = append(formsByEmail[k], f.FormID)
	}

	var responses []responseModel.ResponseModel
	if err := s.DB.Preload("ResponseItems").Find(&responses).Error; err != nil {
		return nil, err
	}
	avgByForm := make(map[uuid.UUID][]float64)
	for _, r := range responses {
		avgByForm[r.ResponseFormID] = append(avgByForm[r.ResponseFormID], ResponseAverage(r.ResponseItems))
	}

	summaries := make([]FacultySummary, 0, len(faculties))
	for _, fac := range faculties {
		email := strings.ToLower(fac.FacultyEmail)
		row := FacultySummary{
			FacultyName:  fac.FacultyName,
			FacultyEmail: email,
		}
		var sum float64
		for _, formID := range formsByEmail[email] {
			row.FormCount++
			for _, avg := range avgByForm[formID] {
				row.ResponseCount++
				sum += avg
			}
		}
		if row.ResponseCount > 0 {
			row.Average = sum / float64(row.ResponseCount)
		}
		summaries = append(summaries, row)
	}

	RankFaculty(summaries)
	return summaries, nil
}

// FacultyReport is the self-service view for one faculty member: their
// summary row plus each of their forms' reports.
type FacultyReport struct {
	Summary FacultySummary `json:"summary"`
	Forms   []FormReport   `json:"forms"`
}

func (s *ReportService) FacultyReport(email string) (FacultyReport, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var report FacultyReport

	var fac facultyModel.FacultyModel
	if err := s.DB.Where("lower(faculty_email) = ?", email).First(&fac).Error; err != nil {
		return report, err
	}
	report.Summary = FacultySummary{FacultyName: fac.FacultyName, FacultyEmail: email}

	var forms []formModel.FormModel
	if err := s.DB.Where("lower(form_faculty_email) = ?", email).Find(&forms).Error; err != nil {
		return report, err
	}

	var sum float64
	for _, f := range forms {
		fr, err := s.FormReport(f.FormID)
		if err != nil {
			return report, err
		}
		report.Forms = append(report.Forms, fr)
		report.Summary.FormCount++
		for _, r := range fr.Responses {
			report.Summary.ResponseCount++
			sum += ResponseAverage(r.ResponseItems)
		}
	}
	if report.Summary.ResponseCount > 0 {
		report.Summary.Average = sum / float64(report.Summary.ResponseCount)
	}
	return report, nil
}
