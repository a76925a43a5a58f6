package postgres

import (
	"context"

	"department-api/internal/model"
	"department-api/internal/sqlboiler"
	"department-api/internal/userdepartment/repository"
	postgresPkg "department-api/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/friendsofgo/errors"
)

func (r *implRepository) Get(ctx context.Context, id uint64) (model.UserDepartment, error) {
	return r.get(ctx, r.db, id)
}

func (r *implRepository) get(ctx context.Context, exec boil.ContextExecutor, id uint64) (model.UserDepartment, error) {
	var rows []*sqlboiler.UserDepartment
	if err := sqlboiler.NewQuery(r.dialect, r.buildGetQuery(id)...).Bind(ctx, exec, &rows); err != nil {
		r.l.Errorf(ctx, "internal.userdepartment.repository.postgres.get.Bind: %v", err)
		return model.UserDepartment{}, err
	}

	switch len(rows) {
	case 0:
		return model.UserDepartment{}, repository.ErrNotFound
	case 1:
		return model.NewUserDepartmentFromDB(rows[0]), nil
	default:
		r.l.Errorf(ctx, "internal.userdepartment.repository.postgres.get: %d rows for id %d", len(rows), id)
		return model.UserDepartment{}, repository.ErrMultipleRows
	}
}

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.UserDepartment, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		r.l.Errorf(ctx, "internal.userdepartment.repository.postgres.Create.Conn: %v", err)
		return model.UserDepartment{}, errors.Wrap(err, "checkout connection")
	}
	defer conn.Close()
	exec := sqlboiler.Conn{Conn: conn}

	id, err := sqlboiler.Insert(ctx, exec, r.dialect,
		sqlboiler.TableNames.UserDepartments, sqlboiler.UserDepartmentColumns.ID,
		buildInsertChangeset(opts.UserDepartment),
	)
	if err != nil {
		if postgresPkg.IsForeignKeyViolation(err) {
			r.l.Warnf(ctx, "internal.userdepartment.repository.postgres.Create.Insert: unknown user or department: %v", err)
		} else {
			r.l.Errorf(ctx, "internal.userdepartment.repository.postgres.Create.Insert: %v", err)
		}
		return model.UserDepartment{}, err
	}

	ud, err := r.get(ctx, exec, id)
	if err != nil {
		if err == repository.ErrNotFound {
			r.l.Errorf(ctx, "internal.userdepartment.repository.postgres.Create.Reload: id %d not found", id)
			return model.UserDepartment{}, repository.ErrNotConfirmed
		}
		return model.UserDepartment{}, err
	}

	return ud, nil
}

func (r *implRepository) Update(ctx context.Context, opts repository.UpdateOptions) error {
	if opts.Patch.IsEmpty() {
		return nil
	}

	_, err := sqlboiler.UpdateByID(ctx, r.db, r.dialect,
		sqlboiler.TableNames.UserDepartments, sqlboiler.UserDepartmentColumns.ID,
		opts.ID, buildUpdateChangeset(opts.Patch),
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.userdepartment.repository.postgres.Update.UpdateByID: %v (class=%s)", err, postgresPkg.ErrorClass(err))
		return err
	}

	return nil
}

func (r *implRepository) Delete(ctx context.Context, id uint64) error {
	_, err := sqlboiler.DeleteByID(ctx, r.db, r.dialect,
		sqlboiler.TableNames.UserDepartments, sqlboiler.UserDepartmentColumns.ID, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.userdepartment.repository.postgres.Delete.DeleteByID: %v", err)
		return err
	}

	return nil
}

func (r *implRepository) Search(ctx context.Context, opts repository.SearchOptions) ([]model.UserDepartmentJoin, error) {
	var rows []*sqlboiler.UserDepartmentJoin
	if err := sqlboiler.NewQuery(r.dialect, r.buildSearchQuery(ctx, opts)...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.userdepartment.repository.postgres.Search.Bind: %v", err)
		return nil, err
	}

	res := make([]model.UserDepartmentJoin, len(rows))
	for i, row := range rows {
		res[i] = model.NewUserDepartmentJoinFromDB(row)
	}

	return res, nil
}
