package postgres

import (
	"context"

	"department-api/internal/department/repository"
	"department-api/internal/model"
	"department-api/internal/sqlboiler"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/friendsofgo/errors"
)

func (r *implRepository) Get(ctx context.Context, id uint64) (model.Department, error) {
	return r.get(ctx, r.db, id)
}

func (r *implRepository) get(ctx context.Context, exec boil.ContextExecutor, id uint64) (model.Department, error) {
	var rows []*sqlboiler.Department
	if err := sqlboiler.NewQuery(r.dialect, r.buildGetQuery(id)...).Bind(ctx, exec, &rows); err != nil {
		r.l.Errorf(ctx, "internal.department.repository.postgres.get.Bind: %v", err)
		return model.Department{}, err
	}

	switch len(rows) {
	case 0:
		return model.Department{}, repository.ErrNotFound
	case 1:
		return model.NewDepartmentFromDB(rows[0]), nil
	default:
		r.l.Errorf(ctx, "internal.department.repository.postgres.get: %d rows for id %d", len(rows), id)
		return model.Department{}, repository.ErrMultipleRows
	}
}

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Department, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.department.repository.postgres.Create.Conn: %v", err)
		return model.Department{}, errors.Wrap(err, "checkout connection")
	}
	defer conn.Close()
	exec := sqlboiler.Conn{Conn: conn}

	id, err := sqlboiler.Insert(ctx, exec, r.dialect,
		sqlboiler.TableNames.Departments, sqlboiler.DepartmentColumns.ID,
		buildInsertChangeset(opts.Department),
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.department.repository.postgres.Create.Insert: %v", err)
		return model.Department{}, err
	}

	dept, err := r.get(ctx, exec, id)
	if err != nil {
		if err == repository.ErrNotFound {
			r.l.Errorf(ctx, "internal.department.repository.postgres.Create.Reload: id %d not found", id)
			return model.Department{}, repository.ErrNotConfirmed
		}
		return model.Department{}, err
	}

	return dept, nil
}

func (r *implRepository) Update(ctx context.Context, opts repository.UpdateOptions) error {
	if opts.Patch.IsEmpty() {
		return nil
	}

	_, err := sqlboiler.UpdateByID(ctx, r.db, r.dialect,
		sqlboiler.TableNames.Departments, sqlboiler.DepartmentColumns.ID,
		opts.ID, buildUpdateChangeset(opts.Patch),
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.department.repository.postgres.Update.UpdateByID: %v", err)
		return err
	}

	return nil
}

func (r *implRepository) Delete(ctx context.Context, id uint64) error {
	_, err := sqlboiler.DeleteByID(ctx, r.db, r.dialect,
		sqlboiler.TableNames.Departments, sqlboiler.DepartmentColumns.ID, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.department.repository.postgres.Delete.DeleteByID: %v", err)
		return err
	}

	return nil
}

func (r *implRepository) Search(ctx context.Context, opts repository.SearchOptions) ([]model.Department, error) {
	var rows []*sqlboiler.Department
	if err := sqlboiler.NewQuery(r.dialect, r.buildSearchQuery(opts)...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.department.repository.postgres.Search.Bind: %v", err)
		return nil, err
	}

	res := make([]model.Department, len(rows))
	for i, row := range rows {
		res[i] = model.NewDepartmentFromDB(row)
	}

	return res, nil
}
