package service

import (
	"math"
	"testing"

	"github.com/google/uuid"

	questionModel "facultyfeedback_backend/internals/features/feedback/questions/model"
	responseModel "facultyfeedback_backend/internals/features/feedback/responses/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNormalizeRating(t *testing.T) {
	tests := []struct {
		name         string
		raw          float64
		questionType string
		want         float64
	}{
		{"scale_3 top", 3, questionModel.QuestionTypeScale3, 10},
		{"scale_3 mid", 2, questionModel.QuestionTypeScale3, 20.0 / 3},
		{"scale_3 bottom", 1, questionModel.QuestionTypeScale3, 10.0 / 3},
		{"yes", 1, questionModel.QuestionTypeYesNo, 10},
		{"no", 0, questionModel.QuestionTypeYesNo, 0},
		{"yes_no fraction", 0.6, questionModel.QuestionTypeYesNo, 6},
		{"scale_1_10 passthrough", 7, questionModel.QuestionTypeScale1To10, 7},
		{"unknown type passthrough", 4.5, "", 4.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRating(tt.raw, tt.questionType)
			if !almostEqual(got, tt.want) {
				t.Errorf("NormalizeRating(%v, %q) = %v, want %v", tt.raw, tt.questionType, got, tt.want)
			}
		})
	}
}

func TestNormalizeRatingMonotonic(t *testing.T) {
	// within one scale a higher raw rating must never normalize lower
	types := []string{
		questionModel.QuestionTypeScale3,
		questionModel.QuestionTypeScale1To10,
		questionModel.QuestionTypeYesNo,
	}
	for _, qt := range types {
		prev := math.Inf(-1)
		for raw := 0.0; raw <= 10.0; raw += 0.5 {
			got := NormalizeRating(raw, qt)
			if got < prev {
				t.Fatalf("normalization not monotonic for %s at raw=%v: %v < %v", qt, raw, got, prev)
			}
			prev = got
		}
	}
}

func TestClampRating(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{5.5, 5.5},
		{10, 10},
		{11, 10},
	}
	for _, tt := range tests {
		if got := ClampRating(tt.in); got != tt.want {
			t.Errorf("ClampRating(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestResponseAverage(t *testing.T) {
	if got := ResponseAverage(nil); got != 0 {
		t.Errorf("empty response average = %v, want 0", got)
	}

	// a top scale_3 rating and a "yes" both normalize to 10
	items := []responseModel.ResponseItemModel{
		{ItemRating: 3, ItemQuestionType: questionModel.QuestionTypeScale3},
		{ItemRating: 1, ItemQuestionType: questionModel.QuestionTypeYesNo},
	}
	if got := ResponseAverage(items); !almostEqual(got, 10) {
		t.Errorf("ResponseAverage = %v, want 10", got)
	}

	mixed := []responseModel.ResponseItemModel{
		{ItemRating: 2, ItemQuestionType: questionModel.QuestionTypeScale3},  // 6.666...
		{ItemRating: 8, ItemQuestionType: questionModel.QuestionTypeScale1To10}, // 8
		{ItemRating: 0, ItemQuestionType: questionModel.QuestionTypeYesNo},   // 0
	}
	want := (20.0/3 + 8 + 0) / 3
	if got := ResponseAverage(mixed); !almostEqual(got, want) {
		t.Errorf("ResponseAverage = %v, want %v", got, want)
	}
}

func TestQuestionStats(t *testing.T) {
	q1 := uuid.New()
	q2 := uuid.New()
	items := []responseModel.ResponseItemModel{
		{ItemParameterID: q1, ItemRating: 3, ItemQuestionText: "Clarity", ItemQuestionType: questionModel.QuestionTypeScale3},
		{ItemParameterID: q2, ItemRating: 1, ItemQuestionText: "Recommend", ItemQuestionType: questionModel.QuestionTypeYesNo},
		{ItemParameterID: q1, ItemRating: 2, ItemQuestionText: "Clarity", ItemQuestionType: questionModel.QuestionTypeScale3},
		{ItemParameterID: q2, ItemRating: 0, ItemQuestionText: "Recommend", ItemQuestionType: questionModel.QuestionTypeYesNo},
	}

	stats := QuestionStats(items)
	if len(stats) != 2 {
		t.Fatalf("got %d stats, want 2", len(stats))
	}

	// first-seen order preserved
	if stats[0].ParameterID != q1 || stats[1].ParameterID != q2 {
		t.Fatalf("stats not in first-seen order")
	}

	if stats[0].RatingCount != 2 || !almostEqual(stats[0].RawAverage, 2.5) {
		t.Errorf("q1 stat = count %d raw %v, want count 2 raw 2.5", stats[0].RatingCount, stats[0].RawAverage)
	}
	if !almostEqual(stats[0].NormalizedAverage, 2.5/3*10) {
		t.Errorf("q1 normalized = %v, want %v", stats[0].NormalizedAverage, 2.5/3*10)
	}
	if stats[1].RatingCount != 2 || !almostEqual(stats[1].RawAverage, 0.5) {
		t.Errorf("q2 stat = count %d raw %v, want count 2 raw 0.5", stats[1].RatingCount, stats[1].RawAverage)
	}
	if !almostEqual(stats[1].NormalizedAverage, 5) {
		t.Errorf("q2 normalized = %v, want 5", stats[1].NormalizedAverage)
	}
}

func TestQuestionStatsEmpty(t *testing.T) {
	if stats := QuestionStats(nil); len(stats) != 0 {
		t.Errorf("got %d stats for no items, want 0", len(stats))
	}
}

func TestRankFaculty(t *testing.T) {
	summaries := []FacultySummary{
		{FacultyName: "Carol", FacultyEmail: "carol@college.edu", ResponseCount: 10, Average: 7.2},
		{FacultyName: "alice", FacultyEmail: "alice@college.edu", ResponseCount: 5, Average: 8.1},
		{FacultyName: "Bob", FacultyEmail: "bob@college.edu", ResponseCount: 12, Average: 8.1},
		{FacultyName: "Dave", FacultyEmail: "dave@college.edu", ResponseCount: 0, Average: 0},
		{FacultyName: "Erin", FacultyEmail: "erin@college.edu", ResponseCount: 5, Average: 8.1},
	}

	RankFaculty(summaries)

	wantOrder := []string{"Bob", "alice", "Erin", "Carol", "Dave"}
	for i, want := range wantOrder {
		if summaries[i].FacultyName != want {
			t.Fatalf("rank %d = %s, want %s (full order: %+v)", i, summaries[i].FacultyName, want, summaries)
		}
	}
}
