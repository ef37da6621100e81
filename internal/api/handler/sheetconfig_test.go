package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regsheet/regsheet/internal/api/handler"
	"github.com/regsheet/regsheet/internal/sheetcfg"
)

func TestConfigUpdate_PersistsAndEchoes(t *testing.T) {
	t.Parallel()

	store := &mockStore{}
	h := handler.NewConfigHandler(store, testDefaults)

	body, _ := json.Marshal(map[string]string{
		"spreadsheetId": "new-sheet",
		"range":         "Reg!A1:F200",
	})
	w := doRequest(h.Update, http.MethodPost, "/api/sheets/config", body)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseBody(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "new-sheet", resp["spreadsheetId"])
	assert.Equal(t, "Reg!A1:F200", resp["range"])

	require.NotNil(t, store.put)
	assert.Equal(t, "new-sheet", store.put.SpreadsheetID)
	assert.Equal(t, "Reg!A1:F200", store.put.Range)
}

func TestConfigUpdate_MissingSpreadsheetID(t *testing.T) {
	t.Parallel()

	h := handler.NewConfigHandler(&mockStore{}, testDefaults)

	body, _ := json.Marshal(map[string]string{"range": "Reg!A1:F200"})
	w := doRequest(h.Update, http.MethodPost, "/api/sheets/config", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Spreadsheet ID is required", parseBody(t, w)["error"])
}

func TestConfigUpdate_MissingRange(t *testing.T) {
	t.Parallel()

	h := handler.NewConfigHandler(&mockStore{}, testDefaults)

	body, _ := json.Marshal(map[string]string{"spreadsheetId": "new-sheet"})
	w := doRequest(h.Update, http.MethodPost, "/api/sheets/config", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Range is required", parseBody(t, w)["error"])
}

func TestConfigUpdate_InvalidJSON(t *testing.T) {
	t.Parallel()

	h := handler.NewConfigHandler(&mockStore{}, testDefaults)

	w := doRequest(h.Update, http.MethodPost, "/api/sheets/config", []byte("not json"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_JSON", parseBody(t, w)["code"])
}

func TestConfigUpdate_StoreFailure(t *testing.T) {
	t.Parallel()

	store := &mockStore{
		putFn: func(context.Context, *sheetcfg.Config) error {
			return errors.New("connection refused")
		},
	}
	h := handler.NewConfigHandler(store, testDefaults)

	body, _ := json.Marshal(map[string]string{
		"spreadsheetId": "new-sheet",
		"range":         "Reg!A1:F200",
	})
	w := doRequest(h.Update, http.MethodPost, "/api/sheets/config", body)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", parseBody(t, w)["code"])
}

func TestConfigGet_DefaultsWhenUnset(t *testing.T) {
	t.Parallel()

	h := handler.NewConfigHandler(&mockStore{}, testDefaults)

	w := doRequest(h.Get, http.MethodGet, "/api/sheets/config", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := parseBody(t, w)
	assert.Equal(t, "default-sheet", body["spreadsheetId"])
	assert.Equal(t, "Sheet1!A1:Z100", body["range"])
}

func TestConfigGet_StoredOverridesDefaults(t *testing.T) {
	t.Parallel()

	store := &mockStore{
		getFn: func(context.Context) (*sheetcfg.Config, error) {
			return &sheetcfg.Config{SpreadsheetID: "stored-sheet", Range: "Reg!A1:F99"}, nil
		},
	}
	h := handler.NewConfigHandler(store, testDefaults)

	w := doRequest(h.Get, http.MethodGet, "/api/sheets/config", nil)

	body := parseBody(t, w)
	assert.Equal(t, "stored-sheet", body["spreadsheetId"])
	assert.Equal(t, "Reg!A1:F99", body["range"])
}
