package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jide-lab/fieldlens/constants"
	"github.com/jide-lab/fieldlens/internal/repository"
)

// Service is a tiny façade over the job repository that produces XLSX bytes
// for exports.
type Service struct {
	jobs   repository.ExtractionJobRepository
	logger *slog.Logger
}

func NewService(jobs repository.ExtractionJobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobs: jobs, logger: logger}
}

// fixedHeaders precede the per-field columns, which are the sorted union of
// extracted field names across the exported jobs.
var fixedHeaders = []string{
	"Job ID",
	"Document",
	"Type",
	"Strategy",
	"Status",
	"Confidence",
	"Started At",
	"Finished At",
}

// ExportJobsXLSX returns an XLSX workbook (as bytes) for the given document
// type and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all jobs (optionally per type).
func (s *Service) ExportJobsXLSX(ctx context.Context, docType *constants.DocumentType, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	jobs, err := s.jobs.List(ctx, docType, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}

	// Decode result fields and collect the column set.
	fieldsByJob := make([]map[string]any, len(jobs))
	fieldSet := map[string]struct{}{}
	for i, j := range jobs {
		if len(j.ResultJSON) == 0 {
			continue
		}
		var res struct {
			Fields map[string]any `json:"fields"`
		}
		if err := json.Unmarshal(j.ResultJSON, &res); err != nil {
			s.logger.Warn("export.decode_result_failed", "job_id", j.ID, "error", err)
			continue
		}
		fieldsByJob[i] = res.Fields
		for k := range res.Fields {
			fieldSet[k] = struct{}{}
		}
	}
	fieldCols := make([]string, 0, len(fieldSet))
	for k := range fieldSet {
		fieldCols = append(fieldCols, k)
	}
	sort.Strings(fieldCols)

	f := excelize.NewFile()
	const sheet = "Extractions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := append(append([]string{}, fixedHeaders...), fieldCols...)
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for i, j := range jobs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, j.ID.String())
		write(2, j.DocumentName)
		write(3, j.DocumentType)
		write(4, j.Strategy)
		write(5, j.Status)
		write(6, j.Confidence)
		write(7, j.StartedAt.Format(time.RFC3339))
		if j.FinishedAt != nil {
			write(8, j.FinishedAt.Format(time.RFC3339))
		} else {
			write(8, "")
		}

		for c, name := range fieldCols {
			v, ok := fieldsByJob[i][name]
			if !ok {
				write(len(fixedHeaders)+c+1, "")
				continue
			}
			write(len(fixedHeaders)+c+1, fmt.Sprintf("%v", v))
		}
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 38) // job id
	_ = f.SetColWidth(sheet, "B", "B", 28) // document
	_ = f.SetColWidth(sheet, "C", "E", 12)
	_ = f.SetColWidth(sheet, "G", "H", 22) // timestamps

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(jobs),
		"field_columns", len(fieldCols),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
