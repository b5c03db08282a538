package services

import (
	"context"
	"io"

	"github.com/smart-ledger/ledger-backend/internal/dto"
)

// SpreadsheetSvcFacade defines xlsx import and export operations.
// Exports return the encoded workbook bytes ready to stream to the client.
type SpreadsheetSvcFacade interface {
	// ImportWorkbook reads a People/Sites/Transactions workbook and persists
	// its rows for userID. Bad rows are reported and skipped, not fatal;
	// duplicates of existing records are silently ignored.
	ImportWorkbook(ctx context.Context, userID string, r io.Reader) (*dto.ImportReport, error)

	// ExportAllTransactions builds a workbook with every transaction owned by
	// userID, newest first.
	ExportAllTransactions(ctx context.Context, userID string) ([]byte, error)

	// ExportPersonReport builds a two-sheet workbook for one person: a
	// summary sheet of totals and a detail sheet of their transactions.
	ExportPersonReport(ctx context.Context, userID string, personName string) ([]byte, error)

	// BuildTemplate builds the import template workbook with example rows.
	BuildTemplate(ctx context.Context) ([]byte, error)
}
