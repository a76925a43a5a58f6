package usecase

import (
	"department-api/internal/userdepartment"
	"department-api/internal/userdepartment/repository"
	pkgLog "department-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) userdepartment.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
