package handler

import (
	"net/http"

	"github.com/regsheet/regsheet/internal/api/response"
)

// HealthHandler handles the GET /health endpoint.
type HealthHandler struct {
	reporter StatusReporter
	cfgStore Pinger // nil when the config store has no backing connection
	version  string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(reporter StatusReporter, cfgStore Pinger, version string) *HealthHandler {
	return &HealthHandler{reporter: reporter, cfgStore: cfgStore, version: version}
}

type sheetsStatus struct {
	ReadReady  bool `json:"readReady"`
	WriteReady bool `json:"writeReady"`
}

type healthData struct {
	Status      string       `json:"status"`
	Version     string       `json:"version"`
	Sheets      sheetsStatus `json:"sheets"`
	ConfigStore *bool        `json:"configStore,omitempty"`
}

// ServeHTTP reports overall health. The service is degraded when either
// upstream capability or the config store connection is down.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	upstream := h.reporter.Status()

	status := "healthy"
	if !upstream.ReadReady || !upstream.WriteReady {
		status = "degraded"
	}

	data := healthData{
		Status:  status,
		Version: h.version,
		Sheets: sheetsStatus{
			ReadReady:  upstream.ReadReady,
			WriteReady: upstream.WriteReady,
		},
	}

	if h.cfgStore != nil {
		ok := h.cfgStore.Ping(r.Context()) == nil
		data.ConfigStore = &ok
		if !ok {
			data.Status = "degraded"
		}
	}

	response.JSON(w, http.StatusOK, data)
}
