package usecase

import (
	"department-api/internal/department"
	"department-api/internal/department/repository"
	pkgLog "department-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) department.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
