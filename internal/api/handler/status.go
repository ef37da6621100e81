package handler

import (
	"net/http"

	"github.com/regsheet/regsheet/internal/api/response"
	"github.com/regsheet/regsheet/internal/sheetcfg"
)

// StatusHandler handles GET /api/sheets/status.
type StatusHandler struct {
	reporter StatusReporter
	store    sheetcfg.Repository
	defaults Defaults
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(reporter StatusReporter, store sheetcfg.Repository, defaults Defaults) *StatusHandler {
	return &StatusHandler{reporter: reporter, store: store, defaults: defaults}
}

type statusData struct {
	Connected     bool   `json:"connected"`
	Authenticated bool   `json:"authenticated"`
	// Read and write use independent credentials; a working read path says
	// nothing about the write path, so both are reported.
	WriteAuthenticated bool   `json:"writeAuthenticated"`
	SpreadsheetID      string `json:"spreadsheetId"`
	Range              string `json:"range"`
	Error              string `json:"error,omitempty"`
}

// ServeHTTP reports the upstream connection status and the effective
// spreadsheet target.
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := h.reporter.Status()
	id, readRange := resolveSheet(r.Context(), h.store, h.defaults, "", "")

	data := statusData{
		Connected:          status.ReadReady,
		Authenticated:      status.ReadReady,
		WriteAuthenticated: status.WriteReady,
		SpreadsheetID:      id,
		Range:              readRange,
	}
	if status.ReadErr != nil {
		data.Error = status.ReadErr.Error()
	} else if status.WriteErr != nil {
		data.Error = status.WriteErr.Error()
	}

	response.JSON(w, http.StatusOK, data)
}
