package repository

import (
	"context"

	"department-api/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Get(ctx context.Context, id uint64) (model.Department, error)
	Create(ctx context.Context, opts CreateOptions) (model.Department, error)
	Update(ctx context.Context, opts UpdateOptions) error
	Delete(ctx context.Context, id uint64) error
	Search(ctx context.Context, opts SearchOptions) ([]model.Department, error)
}
