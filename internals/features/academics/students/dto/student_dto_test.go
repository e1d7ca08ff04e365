package dto

import (
	"strings"
	"testing"
)

func TestCreateStudentRequestNormalize(t *testing.T) {
	batch := " a2 "
	req := CreateStudentRequest{
		StudentName:     "  Priya Shah ",
		StudentEmail:    " Priya.Shah@College.EDU ",
		StudentSemester: 5,
		StudentCourse:   " btech-cs ",
		StudentDivision: " a ",
		StudentBatch:    &batch,
	}
	req.Normalize()

	if req.StudentName != "Priya Shah" {
		t.Errorf("name = %q", req.StudentName)
	}
	if req.StudentEmail != "priya.shah@college.edu" {
		t.Errorf("email = %q", req.StudentEmail)
	}
	if req.StudentCourse != "BTECH-CS" || req.StudentDivision != "A" {
		t.Errorf("course/division = %q/%q", req.StudentCourse, req.StudentDivision)
	}
	if req.StudentBatch == nil || *req.StudentBatch != "A2" {
		t.Errorf("batch = %v, want A2", req.StudentBatch)
	}
}

func TestCreateStudentRequestNormalizeDropsEmptyBatch(t *testing.T) {
	batch := "   "
	req := CreateStudentRequest{StudentBatch: &batch}
	req.Normalize()
	if req.StudentBatch != nil {
		t.Errorf("blank batch should normalize to nil, got %q", *req.StudentBatch)
	}
}

func TestCreateStudentRequestCheck(t *testing.T) {
	valid := CreateStudentRequest{
		StudentName:     "Priya Shah",
		StudentEmail:    "priya@college.edu",
		StudentSemester: 5,
		StudentCourse:   "BTECH-CS",
		StudentDivision: "A",
	}
	if err := valid.Check(); err != nil {
		t.Fatalf("valid row failed Check: %v", err)
	}

	tests := []struct {
		name      string
		mutate    func(r *CreateStudentRequest)
		wantField string
	}{
		{"missing name", func(r *CreateStudentRequest) { r.StudentName = "" }, "student_name"},
		{"bad email", func(r *CreateStudentRequest) { r.StudentEmail = "not-an-email" }, "student_email"},
		{"semester out of range", func(r *CreateStudentRequest) { r.StudentSemester = 0 }, "student_semester"},
		{"missing course", func(r *CreateStudentRequest) { r.StudentCourse = " " }, "student_course"},
		{"missing division", func(r *CreateStudentRequest) { r.StudentDivision = "" }, "student_division"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := valid
			tt.mutate(&row)
			err := row.Check()
			if err == nil {
				t.Fatal("expected Check to fail")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("error %q does not name %s", err.Error(), tt.wantField)
			}
		})
	}
}

func TestCreateStudentRequestCheckListsAllProblems(t *testing.T) {
	row := CreateStudentRequest{StudentEmail: "x@y.z"}
	err := row.Check()
	if err == nil {
		t.Fatal("expected Check to fail")
	}
	for _, f := range []string{"student_name", "student_semester", "student_course", "student_division"} {
		if !strings.Contains(err.Error(), f) {
			t.Errorf("error %q missing field %s", err.Error(), f)
		}
	}
}
