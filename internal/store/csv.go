package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fathomhq/fathom/internal/model"
)

// RowError records a rejected CSV row with its 1-based line number
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// csv column order: team, member, feature, hours[, category[, date]]
const (
	colTeam = iota
	colMember
	colFeature
	colHours
	colCategory
	colDate
)

// ImportCSV parses tracked-time entries from CSV data. The required columns
// are team, member, feature and hours; category and date (YYYY-MM-DD) are
// optional. Rows that fail validation are collected as RowErrors and the
// remaining valid rows are still returned, so one bad row never aborts a
// batch. A header row is detected and skipped.
func ImportCSV(r io.Reader) ([]model.TrackedTimeEntry, []RowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var entries []model.TrackedTimeEntry
	var rowErrs []RowError

	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read csv: %w", err)
		}
		line++

		if line == 1 && isHeaderRow(record) {
			continue
		}

		entry, err := parseRow(record)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Err: err})
			continue
		}
		entries = append(entries, *entry)
	}

	return entries, rowErrs, nil
}

func parseRow(record []string) (*model.TrackedTimeEntry, error) {
	if len(record) < colHours+1 {
		return nil, &model.ValidationError{Field: "row", Reason: "requires team, member, feature and hours columns"}
	}

	hours, err := strconv.ParseFloat(strings.TrimSpace(record[colHours]), 64)
	if err != nil {
		return nil, &model.ValidationError{Field: "hours", Value: record[colHours], Reason: "must be a number"}
	}

	entry := model.NewTrackedTimeEntry(
		model.Team(strings.ToLower(strings.TrimSpace(record[colTeam]))),
		strings.TrimSpace(record[colMember]),
		strings.TrimSpace(record[colFeature]),
		hours,
	)
	if len(record) > colCategory {
		entry.Category = strings.TrimSpace(record[colCategory])
	}
	if len(record) > colDate && strings.TrimSpace(record[colDate]) != "" {
		date, err := time.Parse("2006-01-02", strings.TrimSpace(record[colDate]))
		if err != nil {
			return nil, &model.ValidationError{Field: "date", Value: record[colDate], Reason: "must be YYYY-MM-DD"}
		}
		entry.Date = date
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}

func isHeaderRow(record []string) bool {
	if len(record) < colHours+1 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(record[colTeam]), "team")
}
