package filter

import "errors"

// ErrFormat is returned when a raw query value cannot be coerced to the field type.
var ErrFormat = errors.New("filter: malformed search value")
