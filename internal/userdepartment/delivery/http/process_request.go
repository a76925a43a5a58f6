package http

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	"department-api/internal/userdepartment"
	"department-api/pkg/filter"
	postgres "department-api/pkg/postgre"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// request is the closed set of user-department request variants.
type request interface {
	isRequest()
}

type searchRequest struct{ input userdepartment.SearchInput }
type getRequest struct{ id uint64 }
type createRequest struct{ input userdepartment.CreateInput }
type updateRequest struct{ input userdepartment.UpdateInput }
type deleteRequest struct{ id uint64 }

func (searchRequest) isRequest() {}
func (getRequest) isRequest()    {}
func (createRequest) isRequest() {}
func (updateRequest) isRequest() {}
func (deleteRequest) isRequest() {}

type pathShape uint8

const (
	shapeCollection pathShape = iota
	shapeItem
)

type routeKey struct {
	method string
	shape  pathShape
}

type requestBuilder func(c *gin.Context, id uint64) (request, error)

var requestBuilders = map[routeKey]requestBuilder{
	{http.MethodGet, shapeCollection}: buildSearchRequest,
	{http.MethodGet, shapeItem}: func(_ *gin.Context, id uint64) (request, error) {
		return getRequest{id: id}, nil
	},
	{http.MethodPost, shapeCollection}: buildCreateRequest,
	{http.MethodPost, shapeItem}:       buildUpdateRequest,
	{http.MethodDelete, shapeItem}: func(_ *gin.Context, id uint64) (request, error) {
		return deleteRequest{id: id}, nil
	},
}

func (h Handler) processRequest(c *gin.Context) (request, error) {
	key := routeKey{method: c.Request.Method, shape: shapeCollection}

	var id uint64
	if raw := c.Param("id"); raw != "" {
		parsed, err := postgres.ParseID(raw)
		if err != nil {
			return nil, userdepartment.ErrRouteNotFound
		}
		id = parsed
		key.shape = shapeItem
	}

	build, ok := requestBuilders[key]
	if !ok {
		return nil, userdepartment.ErrRouteNotFound
	}

	return build(c, id)
}

func buildSearchRequest(c *gin.Context, _ uint64) (request, error) {
	values, err := url.ParseQuery(c.Request.URL.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", userdepartment.ErrInvalidQuery, err)
	}

	ip, err := parseSearchQuery(values)
	if err != nil {
		return nil, err
	}

	return searchRequest{input: ip}, nil
}

// parseSearchQuery maps each recognized parameter to its criterion. When a parameter
// repeats, the last value is used.
func parseSearchQuery(values url.Values) (userdepartment.SearchInput, error) {
	var ip userdepartment.SearchInput

	for key, vals := range values {
		raw := vals[len(vals)-1]

		var err error
		switch key {
		case "user_id":
			ip.UserID, err = filter.ParseSearch(raw, filter.Uint64)
		case "department_id":
			ip.DepartmentID, err = filter.ParseSearch(raw, filter.Uint64)
		case "user_first_name":
			ip.UserFirstName, err = filter.ParseSearch(raw, filter.String)
		case "user_last_name":
			ip.UserLastName, err = filter.ParseSearch(raw, filter.String)
		case "user_email":
			ip.UserEmail, err = filter.ParseNullableSearch(raw, filter.String)
		case "user_banner":
			ip.UserBanner, err = filter.ParseSearch(raw, filter.Uint32)
		case "department_name":
			ip.DepartmentName, err = filter.ParseSearch(raw, filter.String)
		case "department_abbreviation":
			ip.DepartmentAbbreviation, err = filter.ParseSearch(raw, filter.String)
		default:
			return userdepartment.SearchInput{}, fmt.Errorf("%w: unknown parameter %q", userdepartment.ErrInvalidQuery, key)
		}
		if err != nil {
			return userdepartment.SearchInput{}, fmt.Errorf("%w: %s: %w", userdepartment.ErrInvalidQuery, key, err)
		}
	}

	return ip, nil
}

func buildCreateRequest(c *gin.Context, _ uint64) (request, error) {
	var req createReq
	if err := bindBody(c, &req); err != nil {
		return nil, err
	}

	return createRequest{input: req.toInput()}, nil
}

func buildUpdateRequest(c *gin.Context, id uint64) (request, error) {
	var req updateReq
	if err := bindBody(c, &req); err != nil {
		return nil, err
	}

	return updateRequest{input: req.toInput(id)}, nil
}

func bindBody(c *gin.Context, obj any) error {
	body, err := c.GetRawData()
	if err != nil || len(body) == 0 {
		return userdepartment.ErrInvalidBody
	}
	// null would decode into the zero value without error.
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return userdepartment.ErrMalformedBody
	}

	if err := binding.JSON.BindBody(body, obj); err != nil {
		return fmt.Errorf("%w: %w", userdepartment.ErrMalformedBody, err)
	}

	return nil
}
