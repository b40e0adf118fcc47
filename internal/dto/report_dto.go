package dto

// ReportQuery is bound from the query string of GET /report.
// With workerName it produces the single-worker report (ascending dates);
// without it the filtered multi-worker variant runs (descending dates).
type ReportQuery struct {
	WorkerName  string `form:"workerName"`
	WorkerPhone string `form:"workerPhone"`
	CompanyName string `form:"companyName"`
	Date1       string `form:"date1" validate:"omitempty,datetime=2006-01-02"`
	Date2       string `form:"date2" validate:"omitempty,datetime=2006-01-02"`
	Searcher    string `form:"searcher"`
	Lang        string `form:"lang" validate:"omitempty,oneof=en he"`
}

// ReportFile is the rendered document plus the subject display name the
// attachment filename is derived from.
type ReportFile struct {
	Data        []byte
	SubjectName string
}
