package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrNotConfirmed is returned when an insert succeeded but the row could not be read back.
	ErrNotConfirmed = errors.New("inserted row not found")
	ErrMultipleRows = errors.New("multiple rows for primary key")
)
