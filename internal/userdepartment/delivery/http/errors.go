package http

import (
	"net/http"

	"department-api/internal/userdepartment"
	pkgErrors "department-api/pkg/errors"
	"department-api/pkg/response"
)

var (
	errInvalidQuery           = pkgErrors.NewHTTPError(120001, "Invalid query parameter", http.StatusBadRequest)
	errMalformedBody          = pkgErrors.NewHTTPError(120002, "Malformed request body", http.StatusBadRequest)
	errInvalidBody            = pkgErrors.NewHTTPError(120003, "Missing request body", http.StatusBadRequest)
	errRouteNotFound          = pkgErrors.NewHTTPError(120004, "Not found", http.StatusNotFound)
	errUserDepartmentNotFound = pkgErrors.NewHTTPError(120005, "User department not found", http.StatusNotFound)
	errDatabase               = pkgErrors.NewHTTPError(120006, "Database error", http.StatusInternalServerError)
)

var errorMapping = response.ErrorMapping{
	userdepartment.ErrInvalidQuery:           errInvalidQuery,
	userdepartment.ErrMalformedBody:          errMalformedBody,
	userdepartment.ErrInvalidBody:            errInvalidBody,
	userdepartment.ErrRouteNotFound:          errRouteNotFound,
	userdepartment.ErrUserDepartmentNotFound: errUserDepartmentNotFound,
	userdepartment.ErrDatabase:               errDatabase,
}
