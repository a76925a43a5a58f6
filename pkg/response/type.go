package response

import (
	stdErrors "errors"

	"department-api/pkg/errors"
)

// Resp is the error envelope. Successful payloads are written bare.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
}

// ErrorMapping maps domain sentinels to the HTTPError rendered for them.
// An error is expected to wrap at most one mapped sentinel.
type ErrorMapping map[error]*errors.HTTPError

// Lookup returns the HTTPError mapped to err or to a sentinel err wraps.
func (m ErrorMapping) Lookup(err error) (*errors.HTTPError, bool) {
	if httpErr, ok := m[err]; ok {
		return httpErr, true
	}
	for sentinel, httpErr := range m {
		if stdErrors.Is(err, sentinel) {
			return httpErr, true
		}
	}
	return nil, false
}
