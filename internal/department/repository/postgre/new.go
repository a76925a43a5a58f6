package postgres

import (
	"database/sql"

	"department-api/internal/department/repository"
	pkgLog "department-api/pkg/log"

	"github.com/aarondl/sqlboiler/v4/drivers"
)

type implRepository struct {
	l       pkgLog.Logger
	db      *sql.DB
	dialect *drivers.Dialect
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *sql.DB, dialect *drivers.Dialect) *implRepository {
	return &implRepository{
		l:       l,
		db:      db,
		dialect: dialect,
	}
}
