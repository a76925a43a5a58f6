package http

import (
	"department-api/internal/department"
	"department-api/internal/model"
	"department-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// --- Request DTOs ---

type createReq struct {
	Name         *string `json:"name" binding:"required"`
	Abbreviation *string `json:"abbreviation" binding:"required"`
}

func (r createReq) toInput() department.CreateInput {
	return department.CreateInput{
		Department: model.NewDepartment{
			Name:         *r.Name,
			Abbreviation: *r.Abbreviation,
		},
	}
}

type updateReq struct {
	Name         *string `json:"name"`
	Abbreviation *string `json:"abbreviation"`
}

func (r updateReq) toInput(id uint64) department.UpdateInput {
	return department.UpdateInput{
		ID: id,
		Patch: model.DepartmentPatch{
			Name:         r.Name,
			Abbreviation: r.Abbreviation,
		},
	}
}

// --- Response variants ---

type responder interface {
	render(c *gin.Context)
}

type departmentResp struct {
	model.Department
}

func (r departmentResp) render(c *gin.Context) { response.OK(c, r.Department) }

type createdResp struct {
	model.Department
}

func (r createdResp) render(c *gin.Context) { response.Created(c, r.Department) }

type listResp struct {
	model.Departments
}

func (r listResp) render(c *gin.Context) {
	if r.Departments.Departments == nil {
		r.Departments.Departments = []model.Department{}
	}
	response.OK(c, r.Departments)
}

type noContentResp struct{}

func (noContentResp) render(c *gin.Context) { response.NoContent(c) }
