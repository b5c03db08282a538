package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smart-ledger/ledger-backend/internal/apperrors"
	"github.com/smart-ledger/ledger-backend/internal/core/domain"
	"github.com/smart-ledger/ledger-backend/internal/core/ledger"
	portssvc "github.com/smart-ledger/ledger-backend/internal/core/ports/services"
	"github.com/smart-ledger/ledger-backend/internal/dto"
	"github.com/xuri/excelize/v2"
)

const (
	sheetPeople       = "People"
	sheetSites        = "Sites"
	sheetTransactions = "Transactions"
	sheetSummary      = "Summary"
	sheetAllTxns      = "All Transactions"

	exportDateLayout = "02/01/2006"
	importDateLayout = "2006-01-02"
)

// spreadsheetService implements the SpreadsheetSvcFacade interface.
// Imports go through the regular create services so every validation rule
// (positive budgets, site derivation from the name) applies to file rows too.
type spreadsheetService struct {
	BaseService
	txnSvc    portssvc.TransactionSvcFacade
	siteSvc   portssvc.SiteSvcFacade
	personSvc portssvc.PersonSvcFacade
}

// NewSpreadsheetService creates a new spreadsheet service
func NewSpreadsheetService(txnSvc portssvc.TransactionSvcFacade, siteSvc portssvc.SiteSvcFacade, personSvc portssvc.PersonSvcFacade) portssvc.SpreadsheetSvcFacade {
	return &spreadsheetService{
		txnSvc:    txnSvc,
		siteSvc:   siteSvc,
		personSvc: personSvc,
	}
}

// Ensure spreadsheetService implements the SpreadsheetSvcFacade interface
var _ portssvc.SpreadsheetSvcFacade = (*spreadsheetService)(nil)

func (s *spreadsheetService) ImportWorkbook(ctx context.Context, userID string, r io.Reader) (*dto.ImportReport, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read workbook: %v", apperrors.ErrValidation, err)
	}
	defer f.Close()

	report := &dto.ImportReport{}

	// Sheet order matters: transactions reference people and sites imported
	// in the same file.
	s.importPeople(ctx, f, userID, report)
	s.importSites(ctx, f, userID, report)
	s.importTransactions(ctx, f, userID, report)

	s.LogInfo(ctx, "Workbook import finished",
		"people_added", report.PeopleAdded,
		"sites_added", report.SitesAdded,
		"transactions_added", report.TransactionsAdded,
		"duplicates_skipped", report.DuplicatesSkipped,
		"row_errors", len(report.RowErrors))
	return report, nil
}

// sheetRows returns the data rows of a sheet plus a header index, or nil if
// the sheet is absent. A workbook missing a sheet is fine; only present rows
// are validated.
func sheetRows(f *excelize.File, sheet string) ([][]string, map[string]int) {
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		return nil, nil
	}
	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return rows[1:], header
}

func cell(row []string, header map[string]int, column string) string {
	i, ok := header[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (s *spreadsheetService) importPeople(ctx context.Context, f *excelize.File, userID string, report *dto.ImportReport) {
	rows, header := sheetRows(f, sheetPeople)
	for i, row := range rows {
		rowNum := i + 2 // 1-based, after the header row
		name := cell(row, header, "name")
		typeCode := cell(row, header, "type")
		if name == "" || typeCode == "" {
			report.RowErrors = append(report.RowErrors, dto.RowError{Sheet: sheetPeople, Row: rowNum, Message: "missing required fields"})
			continue
		}

		var personType domain.PersonType
		switch typeCode {
		case "0":
			personType = domain.Worker
		case "1":
			personType = domain.Supplier
		default:
			report.RowErrors = append(report.RowErrors, dto.RowError{Sheet: sheetPeople, Row: rowNum, Message: fmt.Sprintf("invalid person type %q", typeCode)})
			continue
		}

		_, err := s.personSvc.CreatePerson(ctx, userID, dto.CreatePersonRequest{
			Name:  name,
			Type:  personType,
			Phone: cell(row, header, "phone"),
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				report.DuplicatesSkipped++
				continue
			}
			report.RowErrors = append(report.RowErrors, dto.RowError{Sheet: sheetPeople, Row: rowNum, Message: err.Error()})
			continue
		}
		report.PeopleAdded++
	}
}

func (s *spreadsheetService) importSites(ctx context.Context, f *excelize.File, userID string, report *dto.ImportReport) {
	rows, header := sheetRows(f, sheetSites)
	for i, row := range rows {
		rowNum := i + 2
		name := cell(row, header, "name")
		if name == "" {
			report.RowErrors = append(report.RowErrors, dto.RowError{Sheet: sheetSites, Row: rowNum, Message: "missing site name"})
			continue
		}

		budget, err := decimal.NewFromString(cell(row, header, "budget"))
		if err != nil {
			report.RowErrors = append(report.RowErrors, dto.RowError{Sheet: sheetSites, Row: rowNum, Message: "invalid budget"})
			continue
		}

		_, err = s.siteSvc.CreateSite(ctx, userID, dto.CreateSiteRequest{Name: name, Budget: budget})
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				report.DuplicatesSkipped++
				continue
			}
			report.RowErrors = append(report.RowErrors, dto.RowError{Sheet: sheetSites, Row: rowNum, Message: err.Error()})
			continue
		}
		report.SitesAdded++
	}
}

func (s *spreadsheetService) importTransactions(ctx context.Context, f *excelize.File, userID string, report *dto.ImportReport) {
	rows, header := sheetRows(f, sheetTransactions)
	for i, row := range rows {
		rowNum := i + 2
		personName := cell(row, header, "person_name")
		amountStr := cell(row, header, "amount")
		typeCode := cell(row, header, "type")
		note := cell(row, header, "note")
		if personName == "" || amountStr == "" || typeCode == "" || note == "" {
			report.RowErrors = append(report.RowErrors, dto.RowError{Sheet: sheetTransactions, Row: rowNum, Message: "missing required fields"})
			continue
		}

		var txnType domain.TransactionType
		switch typeCode {
		case "0":
			txnType = domain.MoneyIn
		case "1":
			txnType = domain.MoneyOut
		default:
			report.RowErrors = append(report.RowErrors, dto.RowError{Sheet: sheetTransactions, Row: rowNum, Message: fmt.Sprintf("invalid transaction type %q", typeCode)})
			continue
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			report.RowErrors = append(report.RowErrors, dto.RowError{Sheet: sheetTransactions, Row: rowNum, Message: "invalid amount"})
			continue
		}

		person, err := s.personSvc.GetPersonByName(ctx, userID, personName)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				report.RowErrors = append(report.RowErrors, dto.RowError{Sheet: sheetTransactions, Row: rowNum, Message: fmt.Sprintf("person %q not found", personName)})
				continue
			}
			report.RowErrors = append(report.RowErrors, dto.RowError{Sheet: sheetTransactions, Row: rowNum, Message: err.Error()})
			continue
		}

		date := time.Now()
		if dateStr := cell(row, header, "date"); dateStr != "" {
			parsed, err := time.Parse(importDateLayout, dateStr)
			if err != nil {
				parsed, err = time.Parse(time.RFC3339, dateStr)
			}
			if err != nil {
				report.RowErrors = append(report.RowErrors, dto.RowError{Sheet: sheetTransactions, Row: rowNum, Message: "invalid date"})
				continue
			}
			date = parsed
		}

		// The site tag travels inside the name; attribution is derived from
		// it on creation.
		name := personName
		if siteName := cell(row, header, "site_name"); siteName != "" {
			name = personName + "/" + siteName
		}

		_, err = s.txnSvc.CreateTransaction(ctx, userID, dto.CreateTransactionRequest{
			Name:       name,
			Amount:     amount,
			Type:       txnType,
			PersonType: person.Type,
			Note:       note,
			Date:       date,
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				report.DuplicatesSkipped++
				continue
			}
			report.RowErrors = append(report.RowErrors, dto.RowError{Sheet: sheetTransactions, Row: rowNum, Message: err.Error()})
			continue
		}
		report.TransactionsAdded++
	}
}

func (s *spreadsheetService) ExportAllTransactions(ctx context.Context, userID string) ([]byte, error) {
	txns, _, err := s.txnSvc.ListTransactions(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	ledger.SortByDateDesc(txns)

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName(f.GetSheetName(0), sheetAllTxns)

	if err := f.SetSheetRow(sheetAllTxns, "A1", &[]interface{}{"Date", "Person Name", "Person Type", "Type", "Amount", "Site", "Note"}); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}
	for i, txn := range txns {
		axis, _ := excelize.JoinCellName("A", i+2)
		if err := f.SetSheetRow(sheetAllTxns, axis, &[]interface{}{
			txn.Date.Format(exportDateLayout),
			txn.Name,
			personTypeLabel(txn.PersonType),
			txnTypeLabel(txn.Type),
			txn.Amount.InexactFloat64(),
			txn.Site.Label(),
			txn.Note,
		}); err != nil {
			return nil, fmt.Errorf("failed to write transaction row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *spreadsheetService) ExportPersonReport(ctx context.Context, userID string, personName string) ([]byte, error) {
	txns, _, err := s.txnSvc.ListTransactions(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	personTxns := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.Name == personName {
			personTxns = append(personTxns, txn)
		}
	}
	if len(personTxns) == 0 {
		return nil, apperrors.ErrNotFound
	}
	ledger.SortByDateDesc(personTxns)

	totals := ledger.GlobalTotals(personTxns)
	status := "You will receive"
	if !totals.IsPositive() {
		status = "You will pay"
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName(f.GetSheetName(0), sheetSummary)

	summaryRows := [][]interface{}{
		{"Metric", "Value"},
		{"Person Name", personName},
		{"Person Type", personTypeLabel(personTxns[0].PersonType)},
		{"Total Transactions", len(personTxns)},
		{"Total Money In", totals.TotalIn.InexactFloat64()},
		{"Total Money Out", totals.TotalOut.InexactFloat64()},
		{"Net Balance", totals.Net.InexactFloat64()},
		{"Status", status},
	}
	for i := range summaryRows {
		axis, _ := excelize.JoinCellName("A", i+1)
		if err := f.SetSheetRow(sheetSummary, axis, &summaryRows[i]); err != nil {
			return nil, fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	if _, err := f.NewSheet(sheetTransactions); err != nil {
		return nil, fmt.Errorf("failed to add transactions sheet: %w", err)
	}
	if err := f.SetSheetRow(sheetTransactions, "A1", &[]interface{}{"Date", "Type", "Amount", "Site", "Note"}); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}
	for i, txn := range personTxns {
		axis, _ := excelize.JoinCellName("A", i+2)
		if err := f.SetSheetRow(sheetTransactions, axis, &[]interface{}{
			txn.Date.Format(exportDateLayout),
			txnTypeLabel(txn.Type),
			txn.Amount.InexactFloat64(),
			txn.Site.Label(),
			txn.Note,
		}); err != nil {
			return nil, fmt.Errorf("failed to write transaction row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *spreadsheetService) BuildTemplate(ctx context.Context) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), sheetPeople)
	peopleRows := [][]interface{}{
		{"name", "type", "phone"},
		{"Ramesh Kumar", 0, "9876543210"},
		{"Vijay Patel", 0, "9988776655"},
		{"ABC Suppliers", 1, "9123456789"},
		{"XYZ Materials", 1, "9876501234"},
	}
	if err := writeRows(f, sheetPeople, peopleRows); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(sheetSites); err != nil {
		return nil, fmt.Errorf("failed to add sites sheet: %w", err)
	}
	sitesRows := [][]interface{}{
		{"name", "budget"},
		{"Site A - Building", 500000},
		{"Site B - Renovation", 300000},
	}
	if err := writeRows(f, sheetSites, sitesRows); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(sheetTransactions); err != nil {
		return nil, fmt.Errorf("failed to add transactions sheet: %w", err)
	}
	txnRows := [][]interface{}{
		{"person_name", "amount", "type", "date", "site_name", "note"},
		{"Ramesh Kumar", 5000, 1, "2024-01-15", "Site A - Building", "Daily wage payment"},
		{"Vijay Patel", 3000, 0, "2024-01-16", "Site A - Building", "Advance received from worker"},
		{"ABC Suppliers", 15000, 1, "2024-01-16", "Site A - Building", "Cement purchase"},
		{"XYZ Materials", 8000, 0, "2024-01-17", "Site B - Renovation", "Payment received for returned materials"},
	}
	if err := writeRows(f, sheetTransactions, txnRows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		axis, _ := excelize.JoinCellName("A", i+1)
		if err := f.SetSheetRow(sheet, axis, &rows[i]); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+1, sheet, err)
		}
	}
	return nil
}

func personTypeLabel(t domain.PersonType) string {
	if t == domain.Supplier {
		return "Supplier"
	}
	return "Worker"
}

func txnTypeLabel(t domain.TransactionType) string {
	if t == domain.MoneyIn {
		return "Money In"
	}
	return "Money Out"
}
