package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/regsheet/regsheet/internal/api/response"
	"github.com/regsheet/regsheet/internal/sheetcfg"
)

// ConfigHandler handles GET and POST /api/sheets/config. The stored value
// overrides the environment defaults for every request that doesn't supply
// its own spreadsheet target.
type ConfigHandler struct {
	store    sheetcfg.Repository
	defaults Defaults
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(store sheetcfg.Repository, defaults Defaults) *ConfigHandler {
	return &ConfigHandler{store: store, defaults: defaults}
}

type configRequest struct {
	SpreadsheetID string `json:"spreadsheetId"`
	Range         string `json:"range"`
}

type configResponse struct {
	SpreadsheetID string `json:"spreadsheetId"`
	Range         string `json:"range"`
	Success       bool   `json:"success,omitempty"`
}

// Get returns the effective configuration.
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, readRange := resolveSheet(r.Context(), h.store, h.defaults, "", "")
	response.JSON(w, http.StatusOK, configResponse{SpreadsheetID: id, Range: readRange})
}

// Update validates and persists a new configuration.
func (h *ConfigHandler) Update(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req configRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON")
		return
	}

	if strings.TrimSpace(req.SpreadsheetID) == "" {
		response.Err(w, http.StatusBadRequest, "MISSING_FIELD", "Spreadsheet ID is required")
		return
	}
	if strings.TrimSpace(req.Range) == "" {
		response.Err(w, http.StatusBadRequest, "MISSING_FIELD", "Range is required")
		return
	}

	err := h.store.Put(r.Context(), &sheetcfg.Config{
		SpreadsheetID: req.SpreadsheetID,
		Range:         req.Range,
	})
	if err != nil {
		slog.Error("failed to store sheet configuration", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Error updating configuration")
		return
	}

	response.JSON(w, http.StatusOK, configResponse{
		SpreadsheetID: req.SpreadsheetID,
		Range:         req.Range,
		Success:       true,
	})
}
