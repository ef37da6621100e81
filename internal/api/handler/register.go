package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/regsheet/regsheet/internal/api/response"
	"github.com/regsheet/regsheet/internal/registration"
	"github.com/regsheet/regsheet/internal/sheetcfg"
)

// RegisterHandler handles POST /api/sheets/register.
type RegisterHandler struct {
	registrar Registrar
	store     sheetcfg.Repository
	defaults  Defaults
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(registrar Registrar, store sheetcfg.Repository, defaults Defaults) *RegisterHandler {
	return &RegisterHandler{registrar: registrar, store: store, defaults: defaults}
}

type registerData struct {
	Success      bool   `json:"success"`
	UpdatedRange string `json:"updatedRange"`
	UpdatedRows  int64  `json:"updatedRows"`
}

// ServeHTTP decodes a submission and runs the registration workflow. Every
// validation or conflict failure is a 400 with a field-identifying message;
// upstream failures are 500s. Nothing is retried.
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var sub registration.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON")
		return
	}

	id, readRange := resolveSheet(r.Context(), h.store, h.defaults, "", "")
	target := registration.Target{
		SpreadsheetID: id,
		ReadRange:     readRange,
		AppendRange:   h.defaults.AppendRange,
	}

	result, err := h.registrar.Register(r.Context(), target, sub)
	if err != nil {
		var verr *registration.ValidationError
		if errors.As(err, &verr) {
			response.Err(w, http.StatusBadRequest, verr.Code, verr.Message)
			return
		}
		var cerr *registration.ConflictError
		if errors.As(err, &cerr) {
			response.Err(w, http.StatusBadRequest, cerr.Code, cerr.Message)
			return
		}
		writeUpstreamError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, registerData{
		Success:      true,
		UpdatedRange: result.UpdatedRange,
		UpdatedRows:  result.UpdatedRows,
	})
}
