package repository

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrNotConfirmed = errors.New("inserted row not found")
	ErrMultipleRows = errors.New("multiple rows for primary key")
)
