package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	studentModel "facultyfeedback_backend/internals/features/academics/students/model"
	formModel "facultyfeedback_backend/internals/features/feedback/forms/model"
)

func strPtr(s string) *string { return &s }

func baseForm() formModel.FormModel {
	return formModel.FormModel{
		FormStatus:   formModel.FormStatusActive,
		FormSemester: 5,
		FormCourse:   "BTECH-CS",
		FormDivision: "A",
	}
}

func baseStudent() studentModel.StudentModel {
	return studentModel.StudentModel{
		StudentSemester: 5,
		StudentCourse:   "BTECH-CS",
		StudentDivision: "A",
	}
}

func TestAuthorizeSubmission(t *testing.T) {
	tests := []struct {
		name    string
		form    func(f *formModel.FormModel)
		student func(s *studentModel.StudentModel)
		wantOK  bool
	}{
		{
			name:   "matching cohort, no batch on form",
			wantOK: true,
		},
		{
			name:    "case differences in course and division",
			student: func(s *studentModel.StudentModel) { s.StudentCourse = "btech-cs"; s.StudentDivision = "a" },
			wantOK:  true,
		},
		{
			name:    "form without batch accepts batched student",
			student: func(s *studentModel.StudentModel) { s.StudentBatch = strPtr("A2") },
			wantOK:  true,
		},
		{
			name:    "lab form with matching batch",
			form:    func(f *formModel.FormModel) { f.FormBatch = strPtr("A2") },
			student: func(s *studentModel.StudentModel) { s.StudentBatch = strPtr("a2") },
			wantOK:  true,
		},
		{
			name:   "closed form rejected",
			form:   func(f *formModel.FormModel) { f.FormStatus = formModel.FormStatusClosed },
			wantOK: false,
		},
		{
			name:    "semester mismatch rejected",
			student: func(s *studentModel.StudentModel) { s.StudentSemester = 3 },
			wantOK:  false,
		},
		{
			name:    "division mismatch rejected",
			student: func(s *studentModel.StudentModel) { s.StudentDivision = "B" },
			wantOK:  false,
		},
		{
			name:    "course mismatch rejected",
			student: func(s *studentModel.StudentModel) { s.StudentCourse = "BTECH-IT" },
			wantOK:  false,
		},
		{
			name:    "lab form rejects other batch",
			form:    func(f *formModel.FormModel) { f.FormBatch = strPtr("A1") },
			student: func(s *studentModel.StudentModel) { s.StudentBatch = strPtr("A2") },
			wantOK:  false,
		},
		{
			name:   "lab form rejects student without batch",
			form:   func(f *formModel.FormModel) { f.FormBatch = strPtr("A1") },
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := baseForm()
			student := baseStudent()
			if tt.form != nil {
				tt.form(&form)
			}
			if tt.student != nil {
				tt.student(&student)
			}

			err := AuthorizeSubmission(form, student)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("expected authorized, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected rejection, got nil")
			}
			fe, ok := err.(*fiber.Error)
			if !ok {
				t.Fatalf("expected *fiber.Error, got %T", err)
			}
			if fe.Code != fiber.StatusForbidden {
				t.Errorf("status = %d, want %d", fe.Code, fiber.StatusForbidden)
			}
			if fe.Message != MsgNotAuthorized {
				t.Errorf("message = %q, want %q", fe.Message, MsgNotAuthorized)
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			// what the pgx-based gorm postgres driver actually returns
			name: "pgx unique violation",
			err:  &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint \"uq_responses_form_student\""},
			want: true,
		},
		{
			name: "pgx foreign key violation",
			err:  &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"},
			want: false,
		},
		{
			name: "pq unique violation",
			err:  &pq.Error{Code: "23505"},
			want: true,
		},
		{
			name: "pq other sqlstate",
			err:  &pq.Error{Code: "23502", Message: "null value in column"},
			want: false,
		},
		{
			name: "wrapped pgx unique violation",
			err:  fmt.Errorf("create response: %w", &pgconn.PgError{Code: "23505"}),
			want: true,
		},
		{
			name: "plain message fallback",
			err:  errors.New("ERROR: duplicate key value violates unique constraint"),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection refused"),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isUniqueViolation(tt.err); got != tt.want {
				t.Errorf("isUniqueViolation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
