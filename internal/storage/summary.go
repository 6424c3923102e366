package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/evidenceworks/go-exif-harvest/internal/logger"
	"github.com/evidenceworks/go-exif-harvest/internal/types"
)

// summaryHeader is the column layout of a persisted summary CSV
var summaryHeader = []string{"Tag", "NonNullCount", "UniqueValues"}

// WriteSummaryCSV persists column summaries so a later run can diff against
// them. Rows are written in the order given, one line per tag.
func WriteSummaryCSV(path string, summaries []types.ColumnSummary) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(summaryHeader); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}
	for _, s := range summaries {
		row := []string{s.Tag, strconv.Itoa(s.NonNullCount), strconv.Itoa(s.UniqueValues)}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write summary row for %q: %w", s.Tag, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush summary file: %w", err)
	}

	logger.Debugf("Wrote %d summary rows to %s", len(summaries), path)
	return nil
}

// ReadSummaryCSV loads a summary previously written by WriteSummaryCSV,
// validating the header before trusting the rows.
func ReadSummaryCSV(path string) ([]types.ColumnSummary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open summary file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read summary file %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("summary file %s is empty", path)
	}
	if !equalHeader(rows[0]) {
		return nil, fmt.Errorf("unexpected summary header in %s: %v", path, rows[0])
	}

	summaries := make([]types.ColumnSummary, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2
		nonNull, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("summary file %s line %d: bad NonNullCount %q: %w", path, line, row[1], err)
		}
		unique, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("summary file %s line %d: bad UniqueValues %q: %w", path, line, row[2], err)
		}
		summaries = append(summaries, types.ColumnSummary{
			Tag:          row[0],
			NonNullCount: nonNull,
			UniqueValues: unique,
		})
	}

	logger.Debugf("Loaded %d summary rows from %s", len(summaries), path)
	return summaries, nil
}

func equalHeader(row []string) bool {
	if len(row) != len(summaryHeader) {
		return false
	}
	for i, field := range row {
		if field != summaryHeader[i] {
			return false
		}
	}
	return true
}
