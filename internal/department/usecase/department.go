package usecase

import (
	"context"
	"fmt"

	"department-api/internal/department"
	"department-api/internal/department/repository"
	"department-api/internal/model"
)

func (uc *usecase) Search(ctx context.Context, ip department.SearchInput) (model.Departments, error) {
	depts, err := uc.repo.Search(ctx, repository.SearchOptions{
		Name:         ip.Name,
		Abbreviation: ip.Abbreviation,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.department.usecase.Search: %v", err)
		return model.Departments{}, fmt.Errorf("%w: %w", department.ErrDatabase, err)
	}

	return model.Departments{Departments: depts}, nil
}

func (uc *usecase) Get(ctx context.Context, id uint64) (model.Department, error) {
	dept, err := uc.repo.Get(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Department{}, department.ErrDepartmentNotFound
		}
		uc.l.Errorf(ctx, "internal.department.usecase.Get: %v", err)
		return model.Department{}, fmt.Errorf("%w: %w", department.ErrDatabase, err)
	}

	return dept, nil
}

func (uc *usecase) Create(ctx context.Context, ip department.CreateInput) (model.Department, error) {
	uc.l.Debugf(ctx, "internal.department.usecase.Create: %+v", ip.Department)

	dept, err := uc.repo.Create(ctx, repository.CreateOptions{Department: ip.Department})
	if err != nil {
		uc.l.Errorf(ctx, "internal.department.usecase.Create: %v", err)
		return model.Department{}, fmt.Errorf("%w: %w", department.ErrDatabase, err)
	}

	return dept, nil
}

func (uc *usecase) Update(ctx context.Context, ip department.UpdateInput) error {
	if err := uc.repo.Update(ctx, repository.UpdateOptions{ID: ip.ID, Patch: ip.Patch}); err != nil {
		uc.l.Errorf(ctx, "internal.department.usecase.Update: %v", err)
		return fmt.Errorf("%w: %w", department.ErrDatabase, err)
	}

	return nil
}

func (uc *usecase) Delete(ctx context.Context, id uint64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.l.Errorf(ctx, "internal.department.usecase.Delete: %v", err)
		return fmt.Errorf("%w: %w", department.ErrDatabase, err)
	}

	return nil
}
