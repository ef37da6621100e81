package sheets

import "errors"

// ErrAuth is returned when a credential is absent, invalid, or rejected by the
// upstream service. Read and write credentials fail independently.
var ErrAuth = errors.New("sheets credential missing or rejected")

// ErrFetch is returned for any non-credential failure of a read call.
var ErrFetch = errors.New("fetching sheet data failed")

// ErrAppend is returned for any non-credential failure of an append call.
var ErrAppend = errors.New("appending sheet data failed")
