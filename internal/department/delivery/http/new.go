package http

import (
	"department-api/internal/department"
	"department-api/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc department.UseCase
}

func New(l log.Logger, uc department.UseCase) Handler {
	return Handler{
		l:  l,
		uc: uc,
	}
}
