package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/regsheet/regsheet/internal/api/response"
	"github.com/regsheet/regsheet/internal/registration"
	"github.com/regsheet/regsheet/internal/sheetcfg"
	"github.com/regsheet/regsheet/internal/sheets"
)

// SheetFetcher retrieves the current contents of a spreadsheet range.
type SheetFetcher interface {
	Fetch(ctx context.Context, spreadsheetID, readRange string) (sheets.Table, error)
}

// StatusReporter reports the upstream read and write capabilities.
type StatusReporter interface {
	Status() sheets.Status
}

// Registrar runs the registration workflow.
type Registrar interface {
	Register(ctx context.Context, target registration.Target, sub registration.Submission) (sheets.AppendResult, error)
}

// Pinger verifies a backing store connection is alive.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Defaults carries the environment fallback spreadsheet target, used when
// neither the request nor the config store supplies one.
type Defaults struct {
	SpreadsheetID string
	Range         string
	AppendRange   string
}

// resolveSheet returns the spreadsheet id and read range for a request:
// request-supplied value first, then the stored configuration, then the
// environment default. A failing config store falls through to the defaults.
func resolveSheet(ctx context.Context, store sheetcfg.Repository, defaults Defaults, reqID, reqRange string) (string, string) {
	id, readRange := reqID, reqRange
	if id != "" && readRange != "" {
		return id, readRange
	}

	if store != nil {
		cfg, err := store.Get(ctx)
		switch {
		case err == nil:
			if id == "" {
				id = cfg.SpreadsheetID
			}
			if readRange == "" {
				readRange = cfg.Range
			}
		case !errors.Is(err, sheetcfg.ErrNotConfigured):
			slog.Warn("config store unavailable, using defaults", "error", err)
		}
	}

	if id == "" {
		id = defaults.SpreadsheetID
	}
	if readRange == "" {
		readRange = defaults.Range
	}
	return id, readRange
}

// writeUpstreamError maps spreadsheet adapter failures to 500 responses with
// a capability-identifying code. Upstream failures are never retried.
func writeUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("upstream sheets failure", "error", err, "path", r.URL.Path)

	code := "UPSTREAM_FETCH"
	switch {
	case errors.Is(err, sheets.ErrAuth):
		code = "UPSTREAM_AUTH"
	case errors.Is(err, sheets.ErrAppend):
		code = "UPSTREAM_WRITE"
	}
	response.Err(w, http.StatusInternalServerError, code, err.Error())
}
