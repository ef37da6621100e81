package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/regsheet/regsheet/internal/api/handler"
	"github.com/regsheet/regsheet/internal/registration"
	"github.com/regsheet/regsheet/internal/sheetcfg"
	"github.com/regsheet/regsheet/internal/sheets"
)

// --- Mocks ---

type mockFetcher struct {
	fetchFn   func(ctx context.Context, spreadsheetID, readRange string) (sheets.Table, error)
	lastID    string
	lastRange string
	calls     int
}

func (m *mockFetcher) Fetch(ctx context.Context, spreadsheetID, readRange string) (sheets.Table, error) {
	m.calls++
	m.lastID = spreadsheetID
	m.lastRange = readRange
	if m.fetchFn != nil {
		return m.fetchFn(ctx, spreadsheetID, readRange)
	}
	return sheets.Table{}, nil
}

type mockStatus struct {
	status sheets.Status
}

func (m *mockStatus) Status() sheets.Status { return m.status }

type mockRegistrar struct {
	registerFn func(ctx context.Context, target registration.Target, sub registration.Submission) (sheets.AppendResult, error)
	lastTarget registration.Target
	lastSub    registration.Submission
	calls      int
}

func (m *mockRegistrar) Register(ctx context.Context, target registration.Target, sub registration.Submission) (sheets.AppendResult, error) {
	m.calls++
	m.lastTarget = target
	m.lastSub = sub
	if m.registerFn != nil {
		return m.registerFn(ctx, target, sub)
	}
	return sheets.AppendResult{UpdatedRange: "Sheet1!A2:F2", UpdatedRows: 1}, nil
}

type mockStore struct {
	getFn func(ctx context.Context) (*sheetcfg.Config, error)
	putFn func(ctx context.Context, cfg *sheetcfg.Config) error
	put   *sheetcfg.Config
}

func (m *mockStore) Get(ctx context.Context) (*sheetcfg.Config, error) {
	if m.getFn != nil {
		return m.getFn(ctx)
	}
	return nil, sheetcfg.ErrNotConfigured
}

func (m *mockStore) Put(ctx context.Context, cfg *sheetcfg.Config) error {
	m.put = cfg
	if m.putFn != nil {
		return m.putFn(ctx, cfg)
	}
	return nil
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error { return m.err }

// --- Helpers ---

var testDefaults = handler.Defaults{
	SpreadsheetID: "default-sheet",
	Range:         "Sheet1!A1:Z100",
	AppendRange:   "Sheet1!A:F",
}

func doRequest(h http.HandlerFunc, method, target string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func mustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}
