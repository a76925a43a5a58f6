package department

import (
	"context"

	"department-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Search(ctx context.Context, ip SearchInput) (model.Departments, error)
	Get(ctx context.Context, id uint64) (model.Department, error)
	Create(ctx context.Context, ip CreateInput) (model.Department, error)
	Update(ctx context.Context, ip UpdateInput) error
	Delete(ctx context.Context, id uint64) error
}
