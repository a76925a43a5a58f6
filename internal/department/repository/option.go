package repository

import (
	"department-api/internal/model"
	"department-api/pkg/filter"
)

// SearchOptions contains one criterion per searchable column.
type SearchOptions struct {
	Name         filter.Search[string]
	Abbreviation filter.Search[string]
}

// CreateOptions contains options for creating a department.
type CreateOptions struct {
	Department model.NewDepartment
}

// UpdateOptions contains options for updating a department.
// Only non-nil patch fields will be written.
type UpdateOptions struct {
	ID    uint64
	Patch model.DepartmentPatch
}
