package service

import (
	"regexp"
	"strings"
)

/* =========================================================
   Timetable text extraction

   Input is unstructured text pulled out of a timetable PDF. Two fixed
   token shapes are recognized:

     theory:  SUBJECT  ROOM  FACULTY_CODE
     lab:     BATCH  SUBJECT  ROOM  FACULTY_CODE

   with subject = 2-6 letters, room = optional letter + 3 digits +
   optional letter, faculty code = 2-4 letters, batch = [A-D][1-3].
   The parser only proposes candidates; nothing is committed without
   manual review.
========================================================= */

var (
	theoryPattern = regexp.MustCompile(`\b([A-Za-z]{2,6})\s+([A-Za-z]?\d{3}[A-Za-z]?)\s+([A-Za-z]{2,4})\b`)
	labPattern    = regexp.MustCompile(`\b([A-D][1-3])\s+([A-Za-z]{2,6})\s+([A-Za-z]?\d{3}[A-Za-z]?)\s+([A-Za-z]{2,4})\b`)
)

// Tokens that match the subject shape but never name a subject.
var subjectStopwords = map[string]bool{
	"LUNCH": true,
	"BREAK": true,
	"RECESS": true,
	"LAB":   true,
	"ROOM":  true,
	"BATCH": true,
	"SEM":   true,
	"DIV":   true,
	"HOURS": true,
	"DAY":   true,
}

// KnownFaculty is the resolution target for extracted faculty codes.
type KnownFaculty struct {
	Name  string
	Email string
}

// Candidate is one proposed timetable entry. Valid means the faculty code
// resolved against the known set; invalid candidates are still returned so
// the admin can fix codes by hand.
type Candidate struct {
	Kind        string  `json:"kind"` // theory | lab
	Subject     string  `json:"subject"`
	Room        string  `json:"room"`
	FacultyCode string  `json:"faculty_code"`
	Batch       *string `json:"batch,omitempty"`
	Valid       bool    `json:"valid"`
	FacultyName string  `json:"faculty_name,omitempty"`
}

// ExtractEntries scans the text for both patterns. Lab matches are located
// first and their spans masked out, otherwise every lab line would also
// produce a bogus theory candidate from its trailing tokens.
func ExtractEntries(text string, known map[string]KnownFaculty) []Candidate {
	var candidates []Candidate
	seen := make(map[string]bool)

	add := func(c Candidate) {
		key := c.Kind + "|" + c.Subject + "|" + c.FacultyCode
		if c.Batch != nil {
			key += "|" + *c.Batch
		}
		if seen[key] {
			return
		}
		seen[key] = true
		candidates = append(candidates, c)
	}

	labSpans := labPattern.FindAllStringSubmatchIndex(text, -1)
	for _, m := range labSpans {
		batch := strings.ToUpper(text[m[2]:m[3]])
		subject := strings.ToUpper(text[m[4]:m[5]])
		room := strings.ToUpper(text[m[6]:m[7]])
		code := strings.ToUpper(text[m[8]:m[9]])

		subject = stripFacultyPrefix(subject, known)
		if !usableSubject(subject, known) {
			continue
		}
		b := batch
		c := Candidate{Kind: "lab", Subject: subject, Room: room, FacultyCode: code, Batch: &b}
		if f, ok := known[code]; ok {
			c.Valid = true
			c.FacultyName = f.Name
		}
		add(c)
	}

	for _, m := range theoryPattern.FindAllStringSubmatchIndex(text, -1) {
		if overlapsAny(m[0], m[1], labSpans) {
			continue
		}
		subject := strings.ToUpper(text[m[2]:m[3]])
		room := strings.ToUpper(text[m[4]:m[5]])
		code := strings.ToUpper(text[m[6]:m[7]])

		subject = stripFacultyPrefix(subject, known)
		if !usableSubject(subject, known) {
			continue
		}
		c := Candidate{Kind: "theory", Subject: subject, Room: room, FacultyCode: code}
		if f, ok := known[code]; ok {
			c.Valid = true
			c.FacultyName = f.Name
		}
		add(c)
	}

	return candidates
}

// stripFacultyPrefix removes a faculty code glued onto the front of the
// subject token ("JDOOP" → "OOP"), which happens when the PDF extractor
// loses the whitespace between adjacent cells.
func stripFacultyPrefix(subject string, known map[string]KnownFaculty) string {
	for code := range known {
		if strings.HasPrefix(subject, code) && len(subject)-len(code) >= 2 {
			return subject[len(code):]
		}
	}
	return subject
}

// usableSubject drops stopwords and bare faculty codes.
func usableSubject(subject string, known map[string]KnownFaculty) bool {
	if len(subject) < 2 || subjectStopwords[subject] {
		return false
	}
	if _, isCode := known[subject]; isCode {
		return false
	}
	return true
}

func overlapsAny(start, end int, spans [][]int) bool {
	for _, s := range spans {
		if start < s[1] && end > s[0] {
			return true
		}
	}
	return false
}
