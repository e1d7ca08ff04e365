package dto

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lib/pq"

	timetableModel "facultyfeedback_backend/internals/features/academics/timetable/model"
)

const sampleCSV = `kind,subject,subject_code,room,faculty_code,days,division,batch,semester,course
theory,OOP,CS301,204,JD,MON|WED,A,,5,BTECH-CS
lab,DBMS,CS305,L302,SK,,A,A1,5,BTECH-CS
`

func TestParseEntriesCSV(t *testing.T) {
	entries, rowErrors, err := ParseEntriesCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ParseEntriesCSV: %v", err)
	}
	if len(rowErrors) != 0 {
		t.Fatalf("unexpected row errors: %v", rowErrors)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	theory := entries[0]
	if theory.EntryKind != "theory" || theory.EntrySubject != "OOP" || theory.EntryFacultyCode != "JD" {
		t.Errorf("theory row = %+v", theory)
	}
	if theory.EntryBatch != nil {
		t.Errorf("theory batch should be nil, got %q", *theory.EntryBatch)
	}
	if theory.EntrySubjectCode == nil || *theory.EntrySubjectCode != "CS301" {
		t.Errorf("theory subject code = %v", theory.EntrySubjectCode)
	}
	if len(theory.EntryDays) != 2 || theory.EntryDays[0] != "MON" || theory.EntryDays[1] != "WED" {
		t.Errorf("theory days = %v, want [MON WED]", theory.EntryDays)
	}

	lab := entries[1]
	if lab.EntryKind != "lab" || lab.EntryBatch == nil || *lab.EntryBatch != "A1" {
		t.Errorf("lab row = %+v", lab)
	}
	if len(lab.EntryDays) != 0 {
		t.Errorf("lab days should be empty, got %v", lab.EntryDays)
	}
}

func TestParseEntriesCSVCollectsRowErrors(t *testing.T) {
	csv := `kind,subject,subject_code,room,faculty_code,division,batch,semester,course
theory,OOP,,204,JD,A,,5,BTECH-CS
seminar,OOP,,204,JD,A,,5,BTECH-CS
theory,DBMS,,305,SK,,,5,BTECH-CS
`
	entries, rowErrors, err := ParseEntriesCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseEntriesCSV: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d entries, want 1 (only the valid row)", len(entries))
	}
	if len(rowErrors) != 2 {
		t.Fatalf("got %d row errors, want 2: %v", len(rowErrors), rowErrors)
	}
	if !strings.Contains(rowErrors[0], "row 2") || !strings.Contains(rowErrors[0], "kind") {
		t.Errorf("first error should name row 2 and kind: %q", rowErrors[0])
	}
	if !strings.Contains(rowErrors[1], "row 3") || !strings.Contains(rowErrors[1], "division") {
		t.Errorf("second error should name row 3 and division: %q", rowErrors[1])
	}
}

func TestParseEntriesCSVRejectsBadHeader(t *testing.T) {
	csv := "name,room\nOOP,204\n"
	if _, _, err := ParseEntriesCSV(strings.NewReader(csv)); err == nil {
		t.Fatal("expected header error")
	}
}

func TestWriteEntriesCSVRoundTrip(t *testing.T) {
	batch := "A1"
	code := "CS305"
	entries := []timetableModel.TimetableEntryModel{
		{
			EntryKind:        "lab",
			EntrySubject:     "DBMS",
			EntrySubjectCode: &code,
			EntryFacultyCode: "SK",
			EntryDays:        pq.StringArray{"TUE", "THU"},
			EntryDivision:    "A",
			EntryBatch:       &batch,
			EntrySemester:    5,
			EntryCourse:      "BTECH-CS",
		},
	}

	var buf bytes.Buffer
	if err := WriteEntriesCSV(&buf, entries); err != nil {
		t.Fatalf("WriteEntriesCSV: %v", err)
	}

	parsed, rowErrors, err := ParseEntriesCSV(&buf)
	if err != nil || len(rowErrors) != 0 {
		t.Fatalf("re-parse failed: err=%v rowErrors=%v", err, rowErrors)
	}
	if len(parsed) != 1 {
		t.Fatalf("got %d entries, want 1", len(parsed))
	}
	got := parsed[0]
	if got.EntrySubject != "DBMS" || got.EntryKind != "lab" ||
		got.EntryBatch == nil || *got.EntryBatch != "A1" ||
		got.EntrySubjectCode == nil || *got.EntrySubjectCode != "CS305" ||
		got.EntrySemester != 5 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if len(got.EntryDays) != 2 || got.EntryDays[0] != "TUE" || got.EntryDays[1] != "THU" {
		t.Errorf("round trip days = %v, want [TUE THU]", got.EntryDays)
	}
}
