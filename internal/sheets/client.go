package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

// AppendResult describes the outcome of a successful append. Once returned,
// the row is committed; there is no read-after-write verification.
type AppendResult struct {
	UpdatedRange string
	UpdatedRows  int64
}

// Status reports the two upstream capabilities independently. A working read
// path does not imply a working write path, or vice versa.
type Status struct {
	ReadReady  bool
	WriteReady bool
	ReadErr    error
	WriteErr   error
}

// Client wraps the Google Sheets API with two distinct credential modes: reads
// use a plain API key, writes use a service account credentials file. Either
// service may be nil when its credential could not be established; the
// corresponding init error is kept for status reporting.
type Client struct {
	read     *sheetsv4.Service
	write    *sheetsv4.Service
	readErr  error
	writeErr error
}

// NewClient builds read and write services from the given credentials. A
// missing or broken credential degrades that capability only and never fails
// construction. Extra options are passed through to both services, which lets
// tests point the client at a fake endpoint.
func NewClient(ctx context.Context, apiKey, credentialsFile string, extra ...option.ClientOption) *Client {
	c := &Client{}

	if apiKey == "" {
		c.readErr = fmt.Errorf("%w: GOOGLE_API_KEY is not set", ErrAuth)
	} else {
		opts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, extra...)
		svc, err := sheetsv4.NewService(ctx, opts...)
		if err != nil {
			c.readErr = fmt.Errorf("%w: creating read client: %v", ErrAuth, err)
		} else {
			c.read = svc
		}
	}

	c.write, c.writeErr = newWriteService(ctx, credentialsFile, extra...)

	return c
}

func newWriteService(ctx context.Context, credentialsFile string, extra ...option.ClientOption) (*sheetsv4.Service, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: service account credentials file: %v", ErrAuth, err)
	}

	jwtCfg, err := google.JWTConfigFromJSON(data, sheetsv4.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing service account credentials: %v", ErrAuth, err)
	}

	opts := append([]option.ClientOption{option.WithHTTPClient(jwtCfg.Client(ctx))}, extra...)
	svc, err := sheetsv4.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: creating write client: %v", ErrAuth, err)
	}

	return svc, nil
}

// Fetch retrieves the current contents of the given range via values.get.
func (c *Client) Fetch(ctx context.Context, spreadsheetID, readRange string) (Table, error) {
	if c.read == nil {
		return nil, c.readErr
	}

	resp, err := c.read.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, wrapUpstream(err, ErrFetch)
	}

	return tableFromValues(resp.Values), nil
}

// Append adds one row to the given range via values.append, using the write
// credential. Values are interpreted as if typed by a user, and the row is
// inserted rather than overwriting existing cells.
func (c *Client) Append(ctx context.Context, spreadsheetID, appendRange string, row []string) (AppendResult, error) {
	if c.write == nil {
		return AppendResult{}, c.writeErr
	}

	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}

	resp, err := c.write.Spreadsheets.Values.Append(spreadsheetID, appendRange, &sheetsv4.ValueRange{
		Values: [][]interface{}{cells},
	}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return AppendResult{}, wrapUpstream(err, ErrAppend)
	}

	result := AppendResult{}
	if resp.Updates != nil {
		result.UpdatedRange = resp.Updates.UpdatedRange
		result.UpdatedRows = resp.Updates.UpdatedRows
	}
	return result, nil
}

// Status reports whether the read and write capabilities are usable.
func (c *Client) Status() Status {
	return Status{
		ReadReady:  c.read != nil,
		WriteReady: c.write != nil,
		ReadErr:    c.readErr,
		WriteErr:   c.writeErr,
	}
}

func tableFromValues(values [][]interface{}) Table {
	table := make(Table, 0, len(values))
	for _, row := range values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprint(cell))
		}
		table = append(table, cells)
	}
	return table
}

// wrapUpstream classifies an upstream failure: credential rejections map to
// ErrAuth, everything else (network, bad range, missing sheet) to kind.
// Timeouts are deliberately not distinguished from generic failures.
func wrapUpstream(err error, kind error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if gerr.Code == http.StatusUnauthorized || gerr.Code == http.StatusForbidden {
			return fmt.Errorf("%w: upstream rejected credentials: %v", ErrAuth, err)
		}
	}
	return fmt.Errorf("%w: %v", kind, err)
}
