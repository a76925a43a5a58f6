package http

import (
	"context"

	"department-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handle decodes any /departments request into its variant and serves it.
func (h Handler) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.department.delivery.http.Handle.processRequest: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	resp, err := h.serve(ctx, req)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	resp.render(c)
}

func (h Handler) serve(ctx context.Context, req request) (responder, error) {
	switch req := req.(type) {
	case searchRequest:
		return h.search(ctx, req)
	case getRequest:
		return h.get(ctx, req)
	case createRequest:
		return h.create(ctx, req)
	case updateRequest:
		return h.update(ctx, req)
	case deleteRequest:
		return h.delete(ctx, req)
	default:
		panic("unhandled department request variant")
	}
}

// @Summary Search departments
// @Description A trailing * makes a value a prefix match. Unknown parameters are rejected.
// @Tags Department
// @Produce json
// @Param name query string false "Name, e.g. Comp*"
// @Param abbreviation query string false "Abbreviation, e.g. CS"
// @Success 200 {object} model.Departments
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /departments [GET]
func (h Handler) search(ctx context.Context, req searchRequest) (responder, error) {
	depts, err := h.uc.Search(ctx, req.input)
	if err != nil {
		return nil, err
	}

	return listResp{depts}, nil
}

// @Summary Get department
// @Tags Department
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} model.Department
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /departments/{id} [GET]
func (h Handler) get(ctx context.Context, req getRequest) (responder, error) {
	dept, err := h.uc.Get(ctx, req.id)
	if err != nil {
		return nil, err
	}

	return departmentResp{dept}, nil
}

// @Summary Create department
// @Tags Department
// @Accept json
// @Produce json
// @Param body body createReq true "Department"
// @Success 201 {object} model.Department
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /departments [POST]
func (h Handler) create(ctx context.Context, req createRequest) (responder, error) {
	dept, err := h.uc.Create(ctx, req.input)
	if err != nil {
		return nil, err
	}

	return createdResp{dept}, nil
}

// @Summary Update department
// @Description Only the supplied fields are written. An unknown id is not an error.
// @Tags Department
// @Accept json
// @Param id path int true "Department ID"
// @Param body body updateReq true "Fields to change"
// @Success 204
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /departments/{id} [POST]
func (h Handler) update(ctx context.Context, req updateRequest) (responder, error) {
	if err := h.uc.Update(ctx, req.input); err != nil {
		return nil, err
	}

	return noContentResp{}, nil
}

// @Summary Delete department
// @Tags Department
// @Param id path int true "Department ID"
// @Success 204
// @Failure 500 {object} response.Resp
// @Router /departments/{id} [DELETE]
func (h Handler) delete(ctx context.Context, req deleteRequest) (responder, error) {
	if err := h.uc.Delete(ctx, req.id); err != nil {
		return nil, err
	}

	return noContentResp{}, nil
}
