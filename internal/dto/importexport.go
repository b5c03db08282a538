package dto

// RowError describes one rejected row of an imported workbook.
type RowError struct {
	Sheet   string `json:"sheet"`
	Row     int    `json:"row"` // 1-based, as shown in the spreadsheet UI
	Message string `json:"message"`
}

// ImportReport summarizes a workbook import. A non-empty RowErrors slice does
// not mean the import failed: good rows are persisted regardless.
type ImportReport struct {
	PeopleAdded       int        `json:"peopleAdded"`
	SitesAdded        int        `json:"sitesAdded"`
	TransactionsAdded int        `json:"transactionsAdded"`
	DuplicatesSkipped int        `json:"duplicatesSkipped"`
	RowErrors         []RowError `json:"rowErrors,omitempty"`
}
