package sheets_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/regsheet/regsheet/internal/sheets"
)

// fakeSheetsAPI serves a minimal subset of the Sheets v4 surface plus an
// OAuth token endpoint for the service account flow.
type fakeSheetsAPI struct {
	valuesStatus int
	valuesBody   string
	appendStatus int
	appendBody   string

	lastAppendPath  string
	lastAppendQuery string
}

func (f *fakeSheetsAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"test-token","token_type":"Bearer","expires_in":3600}`)
	})
	mux.HandleFunc("/v4/spreadsheets/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost {
			f.lastAppendPath = r.URL.Path
			f.lastAppendQuery = r.URL.RawQuery
			w.WriteHeader(f.appendStatus)
			fmt.Fprint(w, f.appendBody)
			return
		}
		w.WriteHeader(f.valuesStatus)
		fmt.Fprint(w, f.valuesBody)
	})
	return mux
}

// writeServiceAccountFile writes a syntactically valid service account
// credentials file whose token_uri points at the fake server.
func writeServiceAccountFile(t *testing.T, tokenURL string) string {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})

	creds := map[string]string{
		"type":         "service_account",
		"client_email": "writer@example.iam.gserviceaccount.com",
		"private_key":  string(keyPEM),
		"token_uri":    tokenURL,
	}
	data, err := json.Marshal(creds)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func newTestClient(t *testing.T, fake *fakeSheetsAPI) *sheets.Client {
	t.Helper()

	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	credsFile := writeServiceAccountFile(t, srv.URL+"/token")
	return sheets.NewClient(context.Background(), "test-api-key", credsFile,
		option.WithEndpoint(srv.URL+"/"))
}

func TestFetch_ReturnsTable(t *testing.T) {
	t.Parallel()

	fake := &fakeSheetsAPI{
		valuesStatus: http.StatusOK,
		valuesBody: `{"range":"Sheet1!A1:F2","majorDimension":"ROWS","values":[
			["Team Name","Project Name","Description","Student 1","Student 2","Student 3"],
			["Alpha","Rover","desc","1111111111111","",""]
		]}`,
	}
	c := newTestClient(t, fake)

	table, err := c.Fetch(context.Background(), "sheet-id", "Sheet1!A1:Z100")
	require.NoError(t, err)

	require.Len(t, table, 2)
	assert.Equal(t, "Alpha", table[1][0])
	assert.Equal(t, "1111111111111", table[1][3])
	assert.Len(t, table.DataRows(), 1)
}

func TestFetch_PermissionDeniedIsAuthError(t *testing.T) {
	t.Parallel()

	fake := &fakeSheetsAPI{
		valuesStatus: http.StatusForbidden,
		valuesBody:   `{"error":{"code":403,"message":"The caller does not have permission","status":"PERMISSION_DENIED"}}`,
	}
	c := newTestClient(t, fake)

	_, err := c.Fetch(context.Background(), "sheet-id", "Sheet1!A1:Z100")
	assert.ErrorIs(t, err, sheets.ErrAuth)
}

func TestFetch_NotFoundIsFetchError(t *testing.T) {
	t.Parallel()

	fake := &fakeSheetsAPI{
		valuesStatus: http.StatusNotFound,
		valuesBody:   `{"error":{"code":404,"message":"Requested entity was not found.","status":"NOT_FOUND"}}`,
	}
	c := newTestClient(t, fake)

	_, err := c.Fetch(context.Background(), "missing", "Sheet1!A1:Z100")
	assert.ErrorIs(t, err, sheets.ErrFetch)
	assert.NotErrorIs(t, err, sheets.ErrAuth)
}

func TestFetch_WithoutAPIKey(t *testing.T) {
	t.Parallel()

	c := sheets.NewClient(context.Background(), "", filepath.Join(t.TempDir(), "nope.json"))

	_, err := c.Fetch(context.Background(), "sheet-id", "Sheet1!A1:Z100")
	assert.ErrorIs(t, err, sheets.ErrAuth)

	status := c.Status()
	assert.False(t, status.ReadReady)
	assert.False(t, status.WriteReady)
	assert.ErrorIs(t, status.ReadErr, sheets.ErrAuth)
	assert.ErrorIs(t, status.WriteErr, sheets.ErrAuth)
}

func TestAppend_Success(t *testing.T) {
	t.Parallel()

	fake := &fakeSheetsAPI{
		appendStatus: http.StatusOK,
		appendBody:   `{"spreadsheetId":"sheet-id","updates":{"updatedRange":"Sheet1!A3:F3","updatedRows":1,"updatedColumns":6,"updatedCells":6}}`,
	}
	c := newTestClient(t, fake)

	row := []string{"Alpha", "Rover", "", "1111111111111", "", ""}
	result, err := c.Append(context.Background(), "sheet-id", "Sheet1!A:F", row)
	require.NoError(t, err)

	assert.Equal(t, "Sheet1!A3:F3", result.UpdatedRange)
	assert.Equal(t, int64(1), result.UpdatedRows)
	assert.Contains(t, fake.lastAppendQuery, "valueInputOption=USER_ENTERED")
	assert.Contains(t, fake.lastAppendQuery, "insertDataOption=INSERT_ROWS")
}

func TestAppend_MissingCredentialsFile(t *testing.T) {
	t.Parallel()

	fake := &fakeSheetsAPI{valuesStatus: http.StatusOK, valuesBody: `{"values":[]}`}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	c := sheets.NewClient(context.Background(), "test-api-key",
		filepath.Join(t.TempDir(), "absent.json"), option.WithEndpoint(srv.URL+"/"))

	_, err := c.Append(context.Background(), "sheet-id", "Sheet1!A:F", []string{"x"})
	assert.ErrorIs(t, err, sheets.ErrAuth)

	status := c.Status()
	assert.True(t, status.ReadReady)
	assert.False(t, status.WriteReady)
}

func TestAppend_UnauthorizedIsAuthError(t *testing.T) {
	t.Parallel()

	fake := &fakeSheetsAPI{
		appendStatus: http.StatusUnauthorized,
		appendBody:   `{"error":{"code":401,"message":"Request had invalid authentication credentials.","status":"UNAUTHENTICATED"}}`,
	}
	c := newTestClient(t, fake)

	_, err := c.Append(context.Background(), "sheet-id", "Sheet1!A:F", []string{"x"})
	assert.ErrorIs(t, err, sheets.ErrAuth)
}
