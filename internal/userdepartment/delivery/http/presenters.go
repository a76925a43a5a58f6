package http

import (
	"department-api/internal/model"
	"department-api/internal/userdepartment"
	"department-api/pkg/response"

	"github.com/gin-gonic/gin"
)

type createReq struct {
	UserID       *uint64 `json:"user_id" binding:"required"`
	DepartmentID *uint64 `json:"department_id" binding:"required"`
}

func (r createReq) toInput() userdepartment.CreateInput {
	return userdepartment.CreateInput{
		UserDepartment: model.NewUserDepartment{
			UserID:       *r.UserID,
			DepartmentID: *r.DepartmentID,
		},
	}
}

type updateReq struct {
	UserID       *uint64 `json:"user_id"`
	DepartmentID *uint64 `json:"department_id"`
}

func (r updateReq) toInput(id uint64) userdepartment.UpdateInput {
	return userdepartment.UpdateInput{
		ID: id,
		Patch: model.UserDepartmentPatch{
			UserID:       r.UserID,
			DepartmentID: r.DepartmentID,
		},
	}
}

type responder interface {
	render(c *gin.Context)
}

type userDepartmentResp struct {
	model.UserDepartment
}

func (r userDepartmentResp) render(c *gin.Context) { response.OK(c, r.UserDepartment) }

type createdResp struct {
	model.UserDepartment
}

func (r createdResp) render(c *gin.Context) { response.Created(c, r.UserDepartment) }

type listResp struct {
	model.UserDepartments
}

func (r listResp) render(c *gin.Context) {
	if r.UserDepartments.UserDepartments == nil {
		r.UserDepartments.UserDepartments = []model.UserDepartmentJoin{}
	}
	response.OK(c, r.UserDepartments)
}

type noContentResp struct{}

func (noContentResp) render(c *gin.Context) { response.NoContent(c) }
