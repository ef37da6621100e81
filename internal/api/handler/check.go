package handler

import (
	"net/http"

	"github.com/regsheet/regsheet/internal/api/response"
	"github.com/regsheet/regsheet/internal/registration"
	"github.com/regsheet/regsheet/internal/sheetcfg"
	"github.com/regsheet/regsheet/internal/sheets"
)

// CheckHandler serves the read-only duplicate probes used by the form for
// live per-field feedback. The server re-validates on registration; these
// endpoints are advisory.
type CheckHandler struct {
	fetcher  SheetFetcher
	store    sheetcfg.Repository
	defaults Defaults
}

// NewCheckHandler creates a new CheckHandler.
func NewCheckHandler(fetcher SheetFetcher, store sheetcfg.Repository, defaults Defaults) *CheckHandler {
	return &CheckHandler{fetcher: fetcher, store: store, defaults: defaults}
}

type existsData struct {
	Exists bool `json:"exists"`
}

// CheckTeam handles GET /api/sheets/check-team?teamName=.
func (h *CheckHandler) CheckTeam(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("teamName")
	if name == "" {
		response.Err(w, http.StatusBadRequest, "MISSING_PARAM", "Team name is required")
		return
	}
	h.check(w, r, func(table sheets.Table) bool {
		return registration.TeamNameExists(table, name)
	})
}

// CheckProject handles GET /api/sheets/check-project?projectName=.
func (h *CheckHandler) CheckProject(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("projectName")
	if name == "" {
		response.Err(w, http.StatusBadRequest, "MISSING_PARAM", "Project name is required")
		return
	}
	h.check(w, r, func(table sheets.Table) bool {
		return registration.ProjectNameExists(table, name)
	})
}

// CheckStudentID handles GET /api/sheets/check-student-id?studentId=.
func (h *CheckHandler) CheckStudentID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("studentId")
	if id == "" {
		response.Err(w, http.StatusBadRequest, "MISSING_PARAM", "Student ID is required")
		return
	}
	h.check(w, r, func(table sheets.Table) bool {
		return registration.StudentIDExists(table, id)
	})
}

func (h *CheckHandler) check(w http.ResponseWriter, r *http.Request, exists func(sheets.Table) bool) {
	id, readRange := resolveSheet(r.Context(), h.store, h.defaults, "", "")

	table, err := h.fetcher.Fetch(r.Context(), id, readRange)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, existsData{Exists: exists(table)})
}
