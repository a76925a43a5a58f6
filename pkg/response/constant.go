package response

import "department-api/pkg/errors"

const (
	DefaultErrorMessage     = errors.MessageInternal
	InternalServerErrorCode = 500
)
