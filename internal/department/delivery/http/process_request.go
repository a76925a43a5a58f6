package http

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	"department-api/internal/department"
	"department-api/pkg/filter"
	postgres "department-api/pkg/postgre"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// request is the closed set of department request variants.
type request interface {
	isRequest()
}

type searchRequest struct{ input department.SearchInput }
type getRequest struct{ id uint64 }
type createRequest struct{ input department.CreateInput }
type updateRequest struct{ input department.UpdateInput }
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

// processRequest selects the request variant for the method and path shape and decodes it.
func (h Handler) processRequest(c *gin.Context) (request, error) {
	key := routeKey{method: c.Request.Method, shape: shapeCollection}

	var id uint64
	if raw := c.Param("id"); raw != "" {
		parsed, err := postgres.ParseID(raw)
		if err != nil {
			return nil, department.ErrRouteNotFound
		}
		id = parsed
		key.shape = shapeItem
	}

	build, ok := requestBuilders[key]
	if !ok {
		return nil, department.ErrRouteNotFound
	}

	return build(c, id)
}

func buildSearchRequest(c *gin.Context, _ uint64) (request, error) {
	values, err := url.ParseQuery(c.Request.URL.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", department.ErrInvalidQuery, err)
	}

	ip, err := parseSearchQuery(values)
	if err != nil {
		return nil, err
	}

	return searchRequest{input: ip}, nil
}

func parseSearchQuery(values url.Values) (department.SearchInput, error) {
	var ip department.SearchInput

	for key, vals := range values {
		raw := vals[len(vals)-1]

		var err error
		switch key {
		case "name":
			ip.Name, err = filter.ParseSearch(raw, filter.String)
		case "abbreviation":
			ip.Abbreviation, err = filter.ParseSearch(raw, filter.String)
		default:
			return department.SearchInput{}, fmt.Errorf("%w: unknown parameter %q", department.ErrInvalidQuery, key)
		}
		if err != nil {
			return department.SearchInput{}, fmt.Errorf("%w: %s: %w", department.ErrInvalidQuery, key, err)
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
		return department.ErrInvalidBody
	}
	// null would decode into the zero value without error.
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return department.ErrMalformedBody
	}

	if err := binding.JSON.BindBody(body, obj); err != nil {
		return fmt.Errorf("%w: %w", department.ErrMalformedBody, err)
	}

	return nil
}
