package http

import (
	"department-api/internal/userdepartment"
	"department-api/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc userdepartment.UseCase
}

func New(l log.Logger, uc userdepartment.UseCase) Handler {
	return Handler{
		l:  l,
		uc: uc,
	}
}
