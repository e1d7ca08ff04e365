package service

import (
	"testing"
)

var knownFaculty = map[string]KnownFaculty{
	"JD": {Name: "J. Doe", Email: "jdoe@college.edu"},
	"SK": {Name: "S. Kumar", Email: "skumar@college.edu"},
}

func findCandidate(cands []Candidate, kind, subject string) *Candidate {
	for i := range cands {
		if cands[i].Kind == kind && cands[i].Subject == subject {
			return &cands[i]
		}
	}
	return nil
}

func TestExtractEntriesTheory(t *testing.T) {
	text := "MON 09:00 OOP 204 JD\nMON 10:00 DBMS 305 SK\n"

	cands := ExtractEntries(text, knownFaculty)

	oop := findCandidate(cands, "theory", "OOP")
	if oop == nil {
		t.Fatalf("OOP candidate missing; got %+v", cands)
	}
	if oop.Room != "204" || oop.FacultyCode != "JD" {
		t.Errorf("OOP = room %q code %q, want 204/JD", oop.Room, oop.FacultyCode)
	}
	if !oop.Valid || oop.FacultyName != "J. Doe" {
		t.Errorf("OOP should resolve to J. Doe, got valid=%v name=%q", oop.Valid, oop.FacultyName)
	}
	if oop.Batch != nil {
		t.Errorf("theory candidate should have no batch, got %v", *oop.Batch)
	}

	if dbms := findCandidate(cands, "theory", "DBMS"); dbms == nil {
		t.Errorf("DBMS candidate missing; got %+v", cands)
	}
}

func TestExtractEntriesLabMasksTheory(t *testing.T) {
	text := "TUE 11:00 A1 DBMS L302 SK\n"

	cands := ExtractEntries(text, knownFaculty)

	lab := findCandidate(cands, "lab", "DBMS")
	if lab == nil {
		t.Fatalf("lab candidate missing; got %+v", cands)
	}
	if lab.Batch == nil || *lab.Batch != "A1" {
		t.Errorf("lab batch = %v, want A1", lab.Batch)
	}
	if lab.Room != "L302" || lab.FacultyCode != "SK" {
		t.Errorf("lab = room %q code %q, want L302/SK", lab.Room, lab.FacultyCode)
	}

	// the lab line must not additionally produce a theory candidate
	if th := findCandidate(cands, "theory", "DBMS"); th != nil {
		t.Errorf("lab line leaked a theory candidate: %+v", th)
	}
}

func TestExtractEntriesStripsFacultyPrefix(t *testing.T) {
	// PDF extraction sometimes glues the code onto the subject cell
	text := "WED 09:00 JDOOP 204 JD\n"

	cands := ExtractEntries(text, knownFaculty)

	oop := findCandidate(cands, "theory", "OOP")
	if oop == nil {
		t.Fatalf("expected glued prefix stripped to OOP; got %+v", cands)
	}
}

func TestExtractEntriesDiscardsNoise(t *testing.T) {
	text := "LUNCH 100 XX\nBREAK 101 YY\n"

	cands := ExtractEntries(text, knownFaculty)
	if len(cands) != 0 {
		t.Errorf("stopword lines produced candidates: %+v", cands)
	}
}

func TestExtractEntriesUnknownCodeStaysInvalid(t *testing.T) {
	text := "THU 14:00 MATHS 108 ZZ\n"

	cands := ExtractEntries(text, knownFaculty)

	m := findCandidate(cands, "theory", "MATHS")
	if m == nil {
		t.Fatalf("MATHS candidate missing; got %+v", cands)
	}
	if m.Valid || m.FacultyName != "" {
		t.Errorf("unknown code ZZ must stay invalid, got valid=%v name=%q", m.Valid, m.FacultyName)
	}
}

func TestExtractEntriesDeduplicates(t *testing.T) {
	// the same slot repeats across week days
	text := "MON 09:00 OOP 204 JD\nWED 09:00 OOP 204 JD\nFRI 09:00 OOP 204 JD\n"

	cands := ExtractEntries(text, knownFaculty)

	count := 0
	for _, c := range cands {
		if c.Kind == "theory" && c.Subject == "OOP" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("got %d OOP candidates, want 1 after dedupe", count)
	}
}
