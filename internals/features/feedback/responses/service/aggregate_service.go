package service

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	responseModel "facultyfeedback_backend/internals/features/feedback/responses/model"
	questionModel "facultyfeedback_backend/internals/features/feedback/questions/model"
)

/* =========================================================
   Rating normalization

   Ratings arrive on three scales and are compared on a common
   0-10 axis. The transforms are linear, so they apply equally
   to single ratings and to pre-averaged fractions (a 0.6 yes_no
   average normalizes to 6.0).
========================================================= */

// NormalizeRating maps a raw rating onto the 0-10 axis. An unknown or empty
// question type gets identity treatment, which keeps legacy items without a
// type snapshot readable.
func NormalizeRating(raw float64, questionType string) float64 {
	switch questionType {
	case questionModel.QuestionTypeScale3:
		return raw / 3 * 10
	case questionModel.QuestionTypeYesNo:
		return raw * 10
	default:
		// scale_1_10 and anything unrecognized
		return raw
	}
}

// ClampRating bounds a rating to [0,10] at write time.
func ClampRating(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 10 {
		return 10
	}
	return r
}

/* =========================================================
   Per-response and per-question aggregation
========================================================= */

// ResponseAverage is the mean of normalized ratings across one response's
// items. Zero items means "no signal" and averages to 0, not an error.
func ResponseAverage(items []responseModel.ResponseItemModel) float64 {
	if len(items) == 0 {
		return 0
	}
	var sum float64
	for _, it := range items {
		sum += NormalizeRating(it.ItemRating, it.ItemQuestionType)
	}
	return sum / float64(len(items))
}

// QuestionStat aggregates every item referencing one parameter across all of
// a form's responses. RawAverage is displayed in the question's own scale
// ("2.4/3", "60% yes"); NormalizedAverage drives color-coding.
type QuestionStat struct {
	ParameterID       uuid.UUID `json:"parameter_id"`
	QuestionText      string    `json:"question_text"`
	QuestionType      string    `json:"question_type"`
	RatingCount       int       `json:"rating_count"`
	RawAverage        float64   `json:"raw_average"`
	NormalizedAverage float64   `json:"normalized_average"`
}

// QuestionStats groups items by parameter id, preserving first-seen order
// (which follows question position when responses are stored in form order).
func QuestionStats(items []responseModel.ResponseItemModel) []QuestionStat {
	idx := make(map[uuid.UUID]int)
	var stats []QuestionStat
	sums := make(map[uuid.UUID]float64)

	for _, it := range items {
		i, ok := idx[it.ItemParameterID]
		if !ok {
			i = len(stats)
			idx[it.ItemParameterID] = i
			stats = append(stats, QuestionStat{
				ParameterID:  it.ItemParameterID,
				QuestionText: it.ItemQuestionText,
				QuestionType: it.ItemQuestionType,
			})
		}
		stats[i].RatingCount++
		sums[it.ItemParameterID] += it.ItemRating
	}

	for i := range stats {
		raw := sums[stats[i].ParameterID] / float64(stats[i].RatingCount)
		stats[i].RawAverage = raw
		stats[i].NormalizedAverage = NormalizeRating(raw, stats[i].QuestionType)
	}
	return stats
}

/* =========================================================
   Faculty ranking
========================================================= */

// FacultySummary is one row of the reports listing: the mean of per-response
// averages over every response of every form taught by the faculty, matched
// case-insensitively by email.
type FacultySummary struct {
	FacultyName   string  `json:"faculty_name"`
	FacultyEmail  string  `json:"faculty_email"`
	FormCount     int     `json:"form_count"`
	ResponseCount int     `json:"response_count"`
	Average       float64 `json:"average"`
}

// RankFaculty sorts descending by average; ties break by response count
// descending, then name ascending. Faculty with zero responses carry
// average 0 and land at the bottom.
func RankFaculty(summaries []FacultySummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		if a.Average != b.Average {
			return a.Average > b.Average
		}
		if a.ResponseCount != b.ResponseCount {
			return a.ResponseCount > b.ResponseCount
		}
		return strings.ToLower(a.FacultyName) < strings.ToLower(b.FacultyName)
	})
}
