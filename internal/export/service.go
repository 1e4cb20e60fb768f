package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fsun/ski-results/internal/repository"
)

// Service is a tiny façade over the query repository that produces XLSX
// bytes for result exports.
type Service struct {
	queries repository.QueryRepository
	logger  *slog.Logger
}

func NewService(queries repository.QueryRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{queries: queries, logger: logger}
}

// ExportResultsXLSX returns an XLSX workbook (as bytes) holding every result
// matching the filter, one row per athlete result.
func (s *Service) ExportResultsXLSX(ctx context.Context, filter repository.ResultFilter) ([]byte, error) {
	start := time.Now()

	details, err := s.queries.SearchResults(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Results"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Season",
		"Competition",
		"Venue",
		"Date",
		"Discipline",
		"Gender",
		"Age Group",
		"Round",
		"Rank",
		"Bib",
		"Name",
		"Team",
		"Run 1",
		"Run 2",
		"Total",
		"Diff",
		"Status",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range details {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, d.Season)
		write(2, d.Competition)
		write(3, d.Venue)
		write(4, d.EventDate)
		write(5, d.Discipline)
		write(6, d.Gender)
		write(7, d.AgeGroup)
		write(8, d.RoundType)
		if d.Rank != nil {
			write(9, *d.Rank)
		}
		write(10, d.Bib)
		write(11, d.Name)
		write(12, d.Team)
		write(13, d.Run1Time)
		write(14, d.Run2Time)
		write(15, d.TotalTime)
		write(16, d.TimeDiff)
		write(17, d.Status)

		row++
	}

	// Widen the descriptive columns
	_ = f.SetColWidth(sheet, "A", "A", 12) // season
	_ = f.SetColWidth(sheet, "B", "B", 36) // competition
	_ = f.SetColWidth(sheet, "C", "C", 18) // venue
	_ = f.SetColWidth(sheet, "E", "E", 14) // discipline
	_ = f.SetColWidth(sheet, "K", "K", 16) // name
	_ = f.SetColWidth(sheet, "L", "L", 24) // team

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(details),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
