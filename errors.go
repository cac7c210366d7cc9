package cmdspec

import "errors"

// Standard errors shared across the module. Store implementations should
// return these so callers can match on them regardless of backend.
var (
	ErrNilDocument = errors.New("cmdspec: nil document")

	// Registry and store errors
	ErrNotExist     = errors.New("cmdspec: spec does not exist")
	ErrExist        = errors.New("cmdspec: spec already exists")
	ErrInvalidName  = errors.New("cmdspec: invalid spec name")
	ErrClosed       = errors.New("cmdspec: store already closed")
	ErrNotConnected = errors.New("cmdspec: store not opened")
)
