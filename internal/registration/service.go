package registration

import (
	"context"

	"github.com/regsheet/regsheet/internal/sheets"
)

// SheetClient is the subset of the spreadsheet adapter the workflow needs.
type SheetClient interface {
	Fetch(ctx context.Context, spreadsheetID, readRange string) (sheets.Table, error)
	Append(ctx context.Context, spreadsheetID, appendRange string, row []string) (sheets.AppendResult, error)
}

// Target identifies the spreadsheet a registration is checked against and
// written to.
type Target struct {
	SpreadsheetID string
	ReadRange     string
	AppendRange   string
}

// Service runs the registration workflow against a spreadsheet.
type Service struct {
	client SheetClient
}

// NewService creates a registration Service backed by the given sheet client.
func NewService(client SheetClient) *Service {
	return &Service{client: client}
}

// Register runs the full workflow: local shape validation, a fresh table
// fetch, uniqueness checks in documented order, then a single append. Every
// failure is returned unchanged; there are no retries and no rollback — the
// append is the only side-effecting step and is attempted last, so a failed
// append leaves nothing written.
//
// The fetch and append are not atomic. Two concurrent submissions can both
// validate against the same snapshot and both append; the upstream service
// exposes no transaction or lock to close this window. Known consistency gap.
func (s *Service) Register(ctx context.Context, target Target, sub Submission) (sheets.AppendResult, error) {
	if err := ValidateShape(sub); err != nil {
		return sheets.AppendResult{}, err
	}

	table, err := s.client.Fetch(ctx, target.SpreadsheetID, target.ReadRange)
	if err != nil {
		return sheets.AppendResult{}, err
	}

	if err := CheckUniqueness(table, sub); err != nil {
		return sheets.AppendResult{}, err
	}

	return s.client.Append(ctx, target.SpreadsheetID, target.AppendRange, sub.Row())
}
