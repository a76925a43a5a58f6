package repository

import (
	"department-api/internal/model"
	"department-api/pkg/filter"
)

// SearchOptions contains one criterion per column of the user-department join.
type SearchOptions struct {
	UserID                 filter.Search[uint64]
	DepartmentID           filter.Search[uint64]
	UserFirstName          filter.Search[string]
	UserLastName           filter.Search[string]
	UserEmail              filter.NullableSearch[string]
	UserBanner             filter.Search[uint32]
	DepartmentName         filter.Search[string]
	DepartmentAbbreviation filter.Search[string]
}

type CreateOptions struct {
	UserDepartment model.NewUserDepartment
}

// UpdateOptions contains options for updating a user department.
// Only non-nil patch fields will be written.
type UpdateOptions struct {
	ID    uint64
	Patch model.UserDepartmentPatch
}
