package registration

import (
	"strings"

	"github.com/regsheet/regsheet/internal/sheets"
)

// The uniqueness checks scan the whole table on every call. The spreadsheet
// is the sole source of truth and is always re-fetched, so no index or cache
// is kept. A header-only or empty table contains no conflicts.

// TeamNameExists reports whether any data row already uses the given team
// name, compared case-insensitively.
func TeamNameExists(table sheets.Table, name string) bool {
	for _, row := range table.DataRows() {
		if strings.EqualFold(sheets.Cell(row, ColTeamName), name) {
			return true
		}
	}
	return false
}

// ProjectNameExists reports whether any data row already uses the given
// project name, compared case-insensitively.
func ProjectNameExists(table sheets.Table, name string) bool {
	for _, row := range table.DataRows() {
		if strings.EqualFold(sheets.Cell(row, ColProjectName), name) {
			return true
		}
	}
	return false
}

// StudentIDExists reports whether the given student ID occupies any of the
// three student ID columns of any data row. Exact string match; empty cells
// never match.
func StudentIDExists(table sheets.Table, id string) bool {
	if id == "" {
		return false
	}
	for _, row := range table.DataRows() {
		for col := ColStudentID1; col <= ColStudentID3; col++ {
			if sheets.Cell(row, col) == id {
				return true
			}
		}
	}
	return false
}
