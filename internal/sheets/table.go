package sheets

// Table is the cell grid of a spreadsheet range. Row 0 is the header row and
// must be skipped by every scan; rows 1..n are data.
type Table [][]string

// DataRows returns the data rows of the table, excluding the header. A table
// with zero or one rows has no data.
func (t Table) DataRows() [][]string {
	if len(t) <= 1 {
		return nil
	}
	return t[1:]
}

// Cell returns the value at the given column of a row, or "" when the row is
// shorter than col+1. Trailing empty cells are routinely omitted by the
// upstream API.
func Cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}
