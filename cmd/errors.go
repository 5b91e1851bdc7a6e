package cmd

import "errors"

// Error kinds returned by the summarizer. Every one of them ends the run with a
// non-zero exit status; callers match them with errors.Is.
var (
	// ErrConfiguration reports a missing or invalid setting, such as an API key.
	ErrConfiguration = errors.New("configuration error")
	// ErrTransport reports connection failures and HTTP error statuses.
	ErrTransport = errors.New("transport error")
	// ErrParse reports malformed JSON or an unexpected response shape.
	ErrParse = errors.New("parse error")
	// ErrValidation reports empty input or an empty summary.
	ErrValidation = errors.New("validation error")
	// ErrUnknownProvider reports a provider identifier outside the supported set.
	ErrUnknownProvider = errors.New("unknown provider")
)
