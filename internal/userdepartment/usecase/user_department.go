package usecase

import (
	"context"
	"fmt"

	"department-api/internal/model"
	"department-api/internal/userdepartment"
	"department-api/internal/userdepartment/repository"
)

func (uc *usecase) Search(ctx context.Context, ip userdepartment.SearchInput) (model.UserDepartments, error) {
	rows, err := uc.repo.Search(ctx, repository.SearchOptions{
		UserID:                 ip.UserID,
		DepartmentID:           ip.DepartmentID,
		UserFirstName:          ip.UserFirstName,
		UserLastName:           ip.UserLastName,
		UserEmail:              ip.UserEmail,
		UserBanner:             ip.UserBanner,
		DepartmentName:         ip.DepartmentName,
		DepartmentAbbreviation: ip.DepartmentAbbreviation,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.userdepartment.usecase.Search: %v", err)
		return model.UserDepartments{}, fmt.Errorf("%w: %w", userdepartment.ErrDatabase, err)
	}

	return model.UserDepartments{UserDepartments: rows}, nil
}

func (uc *usecase) Get(ctx context.Context, id uint64) (model.UserDepartment, error) {
	ud, err := uc.repo.Get(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.UserDepartment{}, userdepartment.ErrUserDepartmentNotFound
		}
		uc.l.Errorf(ctx, "internal.userdepartment.usecase.Get: %v", err)
		return model.UserDepartment{}, fmt.Errorf("%w: %w", userdepartment.ErrDatabase, err)
	}

	return ud, nil
}

func (uc *usecase) Create(ctx context.Context, ip userdepartment.CreateInput) (model.UserDepartment, error) {
	ud, err := uc.repo.Create(ctx, repository.CreateOptions{UserDepartment: ip.UserDepartment})
	if err != nil {
		uc.l.Errorf(ctx, "internal.userdepartment.usecase.Create: %v", err)
		return model.UserDepartment{}, fmt.Errorf("%w: %w", userdepartment.ErrDatabase, err)
	}

	return ud, nil
}

func (uc *usecase) Update(ctx context.Context, ip userdepartment.UpdateInput) error {
	if err := uc.repo.Update(ctx, repository.UpdateOptions{ID: ip.ID, Patch: ip.Patch}); err != nil {
		uc.l.Errorf(ctx, "internal.userdepartment.usecase.Update: %v", err)
		return fmt.Errorf("%w: %w", userdepartment.ErrDatabase, err)
	}

	return nil
}

func (uc *usecase) Delete(ctx context.Context, id uint64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.l.Errorf(ctx, "internal.userdepartment.usecase.Delete: %v", err)
		return fmt.Errorf("%w: %w", userdepartment.ErrDatabase, err)
	}

	return nil
}
