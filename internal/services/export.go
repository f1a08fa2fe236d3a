package services

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/kubev2v/filter-clauses/internal/models"
	"github.com/kubev2v/filter-clauses/internal/store"
	srvErrors "github.com/kubev2v/filter-clauses/pkg/errors"
)

const recordsSheet = "Records"

var recordHeader = []string{"ID", "Name", "Category", "Status", "Owner", "Region", "Country", "Size MB", "Archived", "Created At"}

// RecordService loads records into the store and writes them out as spreadsheets.
type RecordService struct {
	store   *store.Store
	clauses *ClauseService
}

func NewRecordService(st *store.Store, clauses *ClauseService) *RecordService {
	return &RecordService{store: st, clauses: clauses}
}

// Import stores the records. Records without an id get a generated one.
func (s *RecordService) Import(ctx context.Context, records []models.Record) (int, error) {
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.NewString()
		}
	}
	if err := s.store.Records().Insert(ctx, records...); err != nil {
		return 0, fmt.Errorf("importing records: %w", err)
	}
	return len(records), nil
}

// ImportXLSX reads records from the first sheet of a workbook laid out like Export writes it.
func (s *RecordService) ImportXLSX(ctx context.Context, r io.Reader) (int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return 0, srvErrors.NewInvalidWorkbookError("opening workbook", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return 0, srvErrors.NewInvalidWorkbookError("reading rows", err)
	}
	if len(rows) <= 1 {
		return 0, nil
	}

	records := make([]models.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		record, err := recordFromRow(row)
		if err != nil {
			return 0, srvErrors.NewInvalidWorkbookError(fmt.Sprintf("row %d", i+2), err)
		}
		records = append(records, record)
	}
	return s.Import(ctx, records)
}

// Export writes every record matching the request to w as an XLSX workbook.
// Pagination in the request is ignored.
func (s *RecordService) Export(ctx context.Context, req models.ClauseRequest, w io.Writer) error {
	req.Limit, req.Offset = 0, 0
	records, _, err := s.clauses.Query(ctx, req)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), recordsSheet); err != nil {
		return err
	}

	header := make([]any, 0, len(recordHeader))
	for _, h := range recordHeader {
		header = append(header, h)
	}
	if err := f.SetSheetRow(recordsSheet, "A1", &header); err != nil {
		return err
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{r.ID, r.Name, r.Category, r.Status, r.Owner, r.Region, r.Country, r.SizeMB, r.Archived, r.CreatedAt.Format(time.RFC3339)}
		if err := f.SetSheetRow(recordsSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func recordFromRow(row []string) (models.Record, error) {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	record := models.Record{
		ID:       cell(0),
		Name:     cell(1),
		Category: cell(2),
		Status:   cell(3),
		Owner:    cell(4),
		Region:   cell(5),
		Country:  cell(6),
	}
	if record.Name == "" {
		return record, fmt.Errorf("name is required")
	}

	if v := cell(7); v != "" {
		size, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return record, fmt.Errorf("size: %w", err)
		}
		record.SizeMB = size
	}
	if v := cell(8); v != "" {
		archived, err := strconv.ParseBool(v)
		if err != nil {
			return record, fmt.Errorf("archived: %w", err)
		}
		record.Archived = archived
	}
	if v := cell(9); v != "" {
		createdAt, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return record, fmt.Errorf("created at: %w", err)
		}
		record.CreatedAt = createdAt
	}
	return record, nil
}
