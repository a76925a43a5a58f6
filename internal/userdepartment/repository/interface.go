package repository

import (
	"context"

	"department-api/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Get(ctx context.Context, id uint64) (model.UserDepartment, error)
	Create(ctx context.Context, opts CreateOptions) (model.UserDepartment, error)
	Update(ctx context.Context, opts UpdateOptions) error
	Delete(ctx context.Context, id uint64) error
	Search(ctx context.Context, opts SearchOptions) ([]model.UserDepartmentJoin, error)
}
