package middleware

import (
	"department-api/pkg/log"
)

type Middleware struct {
	l       log.Logger
	metrics *Metrics
}

func New(l log.Logger, metrics *Metrics) Middleware {
	return Middleware{
		l:       l,
		metrics: metrics,
	}
}
