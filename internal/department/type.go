package department

import (
	"department-api/internal/model"
	"department-api/pkg/filter"
)

// SearchInput holds one criterion per searchable column. The zero value matches every row.
type SearchInput struct {
	Name         filter.Search[string]
	Abbreviation filter.Search[string]
}

type CreateInput struct {
	Department model.NewDepartment
}

type UpdateInput struct {
	ID    uint64
	Patch model.DepartmentPatch
}
