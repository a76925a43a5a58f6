package department

import "errors"

var (
	ErrInvalidQuery       = errors.New("invalid query parameter")
	ErrMalformedBody      = errors.New("malformed request body")
	ErrInvalidBody        = errors.New("missing request body")
	ErrRouteNotFound      = errors.New("route not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDatabase           = errors.New("database error")
)
