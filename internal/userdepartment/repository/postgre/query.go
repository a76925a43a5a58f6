package postgres

import (
	"context"

	"department-api/internal/model"
	"department-api/internal/sqlboiler"
	"department-api/internal/userdepartment/repository"
	"department-api/pkg/filter"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

func (r *implRepository) buildGetQuery(id uint64) []qm.QueryMod {
	q := filter.Compile(filter.Source{Table: sqlboiler.TableNames.UserDepartments},
		filter.On(sqlboiler.UserDepartmentTableColumns.ID, filter.Exact(id)),
	)

	return sqlboiler.QueryMods(r.dialect, q)
}

// buildSearchQuery always reads the full three-way join, whichever fields are filtered.
func (r *implRepository) buildSearchQuery(ctx context.Context, opts repository.SearchOptions) []qm.QueryMod {
	q := filter.Compile(sqlboiler.UserDepartmentJoinSource(),
		filter.On(sqlboiler.UserDepartmentTableColumns.UserID, opts.UserID),
		filter.On(sqlboiler.UserDepartmentTableColumns.DepartmentID, opts.DepartmentID),
		filter.On(sqlboiler.UserTableColumns.FirstName, opts.UserFirstName),
		filter.On(sqlboiler.UserTableColumns.LastName, opts.UserLastName),
		filter.On(sqlboiler.UserTableColumns.Email, opts.UserEmail),
		filter.On(sqlboiler.UserTableColumns.BannerID, opts.UserBanner),
		filter.On(sqlboiler.DepartmentTableColumns.Name, opts.DepartmentName),
		filter.On(sqlboiler.DepartmentTableColumns.Abbreviation, opts.DepartmentAbbreviation),
	)

	for _, p := range q.Where {
		r.l.Debugf(ctx, "internal.userdepartment.repository.postgres.buildSearchQuery: %s %s %v", p.Column, p.Op, p.Value)
	}

	return sqlboiler.QueryMods(r.dialect, q)
}

func buildInsertChangeset(ud model.NewUserDepartment) sqlboiler.Changeset {
	var cs sqlboiler.Changeset
	cs.Set(sqlboiler.UserDepartmentColumns.UserID, ud.UserID).
		Set(sqlboiler.UserDepartmentColumns.DepartmentID, ud.DepartmentID)

	return cs
}

func buildUpdateChangeset(p model.UserDepartmentPatch) sqlboiler.Changeset {
	var cs sqlboiler.Changeset
	if p.UserID != nil {
		cs.Set(sqlboiler.UserDepartmentColumns.UserID, *p.UserID)
	}
	if p.DepartmentID != nil {
		cs.Set(sqlboiler.UserDepartmentColumns.DepartmentID, *p.DepartmentID)
	}

	return cs
}
