package helper

// BulkResult is the summary returned by array-accepting import endpoints.
// Rows fail independently; the batch never aborts as a whole.
type BulkResult struct {
	Created int            `json:"created"`
	Updated int            `json:"updated"`
	Skipped int            `json:"skipped"`
	Errors  []BulkRowError `json:"errors"`
}

type BulkRowError struct {
	Row   int    `json:"row"`
	Email string `json:"email,omitempty"`
	Error string `json:"error"`
}

func NewBulkResult() BulkResult {
	return BulkResult{Errors: []BulkRowError{}}
}
