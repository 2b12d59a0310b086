package dto

// ImportRowError describes why a single spreadsheet row was rejected.
// Row numbers are 1-based and include the header row, so row 2 is the
// first data row, matching what the user sees in their spreadsheet program.
type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ImportResultResponse summarizes a bulk doctor import
type ImportResultResponse struct {
	TotalRows int              `json:"total_rows"`
	Imported  int              `json:"imported"`
	Failed    int              `json:"failed"`
	Errors    []ImportRowError `json:"errors,omitempty"`
}
