package postgres

import (
	"department-api/internal/department/repository"
	"department-api/internal/model"
	"department-api/internal/sqlboiler"
	"department-api/pkg/filter"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

func departmentSource() filter.Source {
	return filter.Source{Table: sqlboiler.TableNames.Departments}
}

func (r *implRepository) buildGetQuery(id uint64) []qm.QueryMod {
	q := filter.Compile(departmentSource(),
		filter.On(sqlboiler.DepartmentTableColumns.ID, filter.Exact(id)),
	)

	return sqlboiler.QueryMods(r.dialect, q)
}

func (r *implRepository) buildSearchQuery(opts repository.SearchOptions) []qm.QueryMod {
	q := filter.Compile(departmentSource(),
		filter.On(sqlboiler.DepartmentTableColumns.Name, opts.Name),
		filter.On(sqlboiler.DepartmentTableColumns.Abbreviation, opts.Abbreviation),
	)

	return sqlboiler.QueryMods(r.dialect, q)
}

func buildInsertChangeset(d model.NewDepartment) sqlboiler.Changeset {
	var cs sqlboiler.Changeset
	cs.Set(sqlboiler.DepartmentColumns.Name, d.Name).
		Set(sqlboiler.DepartmentColumns.Abbreviation, d.Abbreviation)

	return cs
}

func buildUpdateChangeset(p model.DepartmentPatch) sqlboiler.Changeset {
	var cs sqlboiler.Changeset
	if p.Name != nil {
		cs.Set(sqlboiler.DepartmentColumns.Name, *p.Name)
	}
	if p.Abbreviation != nil {
		cs.Set(sqlboiler.DepartmentColumns.Abbreviation, *p.Abbreviation)
	}

	return cs
}
