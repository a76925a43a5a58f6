package http

import (
	"net/http"

	"department-api/internal/department"
	pkgErrors "department-api/pkg/errors"
	"department-api/pkg/response"
)

var (
	errInvalidQuery       = pkgErrors.NewHTTPError(110001, "Invalid query parameter", http.StatusBadRequest)
	errMalformedBody      = pkgErrors.NewHTTPError(110002, "Malformed request body", http.StatusBadRequest)
	errInvalidBody        = pkgErrors.NewHTTPError(110003, "Missing request body", http.StatusBadRequest)
	errRouteNotFound      = pkgErrors.NewHTTPError(110004, "Not found", http.StatusNotFound)
	errDepartmentNotFound = pkgErrors.NewHTTPError(110005, "Department not found", http.StatusNotFound)
	errDatabase           = pkgErrors.NewHTTPError(110006, "Database error", http.StatusInternalServerError)
)

var errorMapping = response.ErrorMapping{
	department.ErrInvalidQuery:       errInvalidQuery,
	department.ErrMalformedBody:      errMalformedBody,
	department.ErrInvalidBody:        errInvalidBody,
	department.ErrRouteNotFound:      errRouteNotFound,
	department.ErrDepartmentNotFound: errDepartmentNotFound,
	department.ErrDatabase:           errDatabase,
}
