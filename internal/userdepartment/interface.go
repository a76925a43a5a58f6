package userdepartment

import (
	"context"

	"department-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Search(ctx context.Context, ip SearchInput) (model.UserDepartments, error)
	Get(ctx context.Context, id uint64) (model.UserDepartment, error)
	Create(ctx context.Context, ip CreateInput) (model.UserDepartment, error)
	Update(ctx context.Context, ip UpdateInput) error
	Delete(ctx context.Context, id uint64) error
}
