package userdepartment

import (
	"department-api/internal/model"
	"department-api/pkg/filter"
)

// SearchInput filters the user-department join. The zero value matches every row.
type SearchInput struct {
	UserID                 filter.Search[uint64]
	DepartmentID           filter.Search[uint64]
	UserFirstName          filter.Search[string]
	UserLastName           filter.Search[string]
	UserEmail              filter.NullableSearch[string]
	UserBanner             filter.Search[uint32]
	DepartmentName         filter.Search[string]
	DepartmentAbbreviation filter.Search[string]
}

type CreateInput struct {
	UserDepartment model.NewUserDepartment
}

type UpdateInput struct {
	ID    uint64
	Patch model.UserDepartmentPatch
}
