package http

import (
	"context"

	"department-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handle decodes any /user_departments request into its variant and serves it.
func (h Handler) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.userdepartment.delivery.http.Handle.processRequest: %v", err)
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	var resp responder
	switch req := req.(type) {
	case searchRequest:
		resp, err = h.search(ctx, req)
	case getRequest:
		resp, err = h.get(ctx, req)
	case createRequest:
		resp, err = h.create(ctx, req)
	case updateRequest:
		resp, err = h.update(ctx, req)
	case deleteRequest:
		resp, err = h.delete(ctx, req)
	default:
		panic("unhandled user department request variant")
	}
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	resp.render(c)
}

// @Summary Search user departments
// @Description Searches the join of user departments with their user and department.
// @Description A trailing * makes a value a prefix match; user_email also accepts null and ~null.
// @Tags UserDepartment
// @Produce json
// @Param user_id query string false "User ID"
// @Param department_id query string false "Department ID"
// @Param user_first_name query string false "User first name"
// @Param user_last_name query string false "User last name"
// @Param user_email query string false "User email, null or ~null"
// @Param user_banner query string false "User banner ID"
// @Param department_name query string false "Department name"
// @Param department_abbreviation query string false "Department abbreviation"
// @Success 200 {object} model.UserDepartments
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /user_departments [GET]
func (h Handler) search(ctx context.Context, req searchRequest) (responder, error) {
	rows, err := h.uc.Search(ctx, req.input)
	if err != nil {
		return nil, err
	}

	return listResp{rows}, nil
}

// @Summary Get user department
// @Tags UserDepartment
// @Produce json
// @Param id path int true "User department ID"
// @Success 200 {object} model.UserDepartment
// @Failure 404 {object} response.Resp
// @Router /user_departments/{id} [GET]
func (h Handler) get(ctx context.Context, req getRequest) (responder, error) {
	ud, err := h.uc.Get(ctx, req.id)
	if err != nil {
		return nil, err
	}

	return userDepartmentResp{ud}, nil
}

// @Summary Create user department
// @Tags UserDepartment
// @Accept json
// @Produce json
// @Param body body createReq true "User department"
// @Success 201 {object} model.UserDepartment
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /user_departments [POST]
func (h Handler) create(ctx context.Context, req createRequest) (responder, error) {
	ud, err := h.uc.Create(ctx, req.input)
	if err != nil {
		return nil, err
	}

	return createdResp{ud}, nil
}

// @Summary Update user department
// @Tags UserDepartment
// @Accept json
// @Param id path int true "User department ID"
// @Param body body updateReq true "Fields to change"
// @Success 204
// @Failure 400 {object} response.Resp
// @Router /user_departments/{id} [POST]
func (h Handler) update(ctx context.Context, req updateRequest) (responder, error) {
	if err := h.uc.Update(ctx, req.input); err != nil {
		return nil, err
	}

	return noContentResp{}, nil
}

// @Summary Delete user department
// @Tags UserDepartment
// @Param id path int true "User department ID"
// @Success 204
// @Router /user_departments/{id} [DELETE]
func (h Handler) delete(ctx context.Context, req deleteRequest) (responder, error) {
	if err := h.uc.Delete(ctx, req.id); err != nil {
		return nil, err
	}

	return noContentResp{}, nil
}
