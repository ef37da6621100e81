package handler

import (
	"net/http"

	"github.com/regsheet/regsheet/internal/api/response"
	"github.com/regsheet/regsheet/internal/sheetcfg"
	"github.com/regsheet/regsheet/internal/sheets"
)

// DataHandler handles GET /api/sheets/data.
type DataHandler struct {
	fetcher  SheetFetcher
	store    sheetcfg.Repository
	defaults Defaults
}

// NewDataHandler creates a new DataHandler.
func NewDataHandler(fetcher SheetFetcher, store sheetcfg.Repository, defaults Defaults) *DataHandler {
	return &DataHandler{fetcher: fetcher, store: store, defaults: defaults}
}

type sheetData struct {
	Range  string       `json:"range"`
	Values sheets.Table `json:"values"`
}

// ServeHTTP returns the current contents of the configured range. The
// spreadsheet id and range may be overridden per request via query params.
func (h *DataHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	id, readRange := resolveSheet(r.Context(), h.store, h.defaults, q.Get("spreadsheetId"), q.Get("range"))

	if id == "" {
		response.Err(w, http.StatusBadRequest, "MISSING_SPREADSHEET_ID", "Spreadsheet ID is required")
		return
	}

	table, err := h.fetcher.Fetch(r.Context(), id, readRange)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}

	if table == nil {
		table = sheets.Table{}
	}
	response.JSON(w, http.StatusOK, sheetData{Range: readRange, Values: table})
}
