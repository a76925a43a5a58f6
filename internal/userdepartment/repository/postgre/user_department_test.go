package postgres

import (
	"context"
	"database/sql"
	"sort"
	"testing"

	"department-api/internal/model"
	"department-api/internal/sqlboiler"
	"department-api/internal/userdepartment/repository"
	"department-api/pkg/filter"
	pkgLog "department-api/pkg/log"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schema = []string{
	`CREATE TABLE users (
		id INTEGER PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT,
		banner_id INTEGER NOT NULL
	)`,
	`CREATE TABLE departments (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		abbreviation TEXT NOT NULL
	)`,
	`CREATE TABLE user_departments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		department_id INTEGER NOT NULL
	)`,
	`INSERT INTO users (id, first_name, last_name, email, banner_id) VALUES
		(1, 'Ada', 'Lovelace', 'ada@example.edu', 900001),
		(2, 'Alan', 'Turing', NULL, 900002),
		(3, 'Grace', 'Hopper', 'grace@example.edu', 900003)`,
	`INSERT INTO departments (id, name, abbreviation) VALUES
		(1, 'Computer Science', 'CS'),
		(2, 'Mathematics', 'MATH')`,
}

func newTestRepository(t *testing.T) *implRepository {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	for _, stmt := range schema {
		_, err = db.Exec(stmt)
		require.NoError(t, err)
	}

	return New(pkgLog.NewNop(), db, &sqlboiler.SQLiteDialect)
}

func create(t *testing.T, r *implRepository, userID, departmentID uint64) model.UserDepartment {
	t.Helper()

	ud, err := r.Create(context.Background(), repository.CreateOptions{
		UserDepartment: model.NewUserDepartment{UserID: userID, DepartmentID: departmentID},
	})
	require.NoError(t, err)
	return ud
}

func userIDs(rows []model.UserDepartmentJoin) []uint64 {
	res := make([]uint64, len(rows))
	for i, r := range rows {
		res[i] = r.UserID
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

func TestCreate_ThenGetRoundTrips(t *testing.T) {
	r := newTestRepository(t)

	created := create(t, r, 1, 2)
	assert.Equal(t, uint64(1), created.UserID)
	assert.Equal(t, uint64(2), created.DepartmentID)

	got, err := r.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)
	ud := create(t, r, 1, 1)

	dept := uint64(2)
	require.NoError(t, r.Update(ctx, repository.UpdateOptions{ID: ud.ID, Patch: model.UserDepartmentPatch{DepartmentID: &dept}}))
	require.NoError(t, r.Update(ctx, repository.UpdateOptions{ID: ud.ID}))

	got, err := r.Get(ctx, ud.ID)
	require.NoError(t, err)
	assert.Equal(t, model.UserDepartment{ID: ud.ID, UserID: 1, DepartmentID: 2}, got)

	require.NoError(t, r.Delete(ctx, ud.ID))
	require.NoError(t, r.Delete(ctx, ud.ID))
	_, err = r.Get(ctx, ud.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOutOfRangeID(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)
	const id = uint64(1 << 63)
	dept := uint64(1)

	_, err := r.Get(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, r.Update(ctx, repository.UpdateOptions{ID: id, Patch: model.UserDepartmentPatch{DepartmentID: &dept}}))
	assert.NoError(t, r.Delete(ctx, id))
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)
	create(t, r, 1, 1)
	create(t, r, 2, 1)
	create(t, r, 3, 2)
	// Dangling references never show up in the join.
	create(t, r, 99, 1)
	create(t, r, 1, 99)

	tcs := map[string]struct {
		opts repository.SearchOptions
		want []uint64
	}{
		"no criteria returns every joined row": {
			want: []uint64{1, 2, 3},
		},
		"email is null": {
			opts: repository.SearchOptions{UserEmail: filter.IsNull[string]()},
			want: []uint64{2},
		},
		"email is not null": {
			opts: repository.SearchOptions{UserEmail: filter.NotNull[string]()},
			want: []uint64{1, 3},
		},
		"email prefix": {
			opts: repository.SearchOptions{UserEmail: filter.NullablePartial("grace@")},
			want: []uint64{3},
		},
		"department abbreviation": {
			opts: repository.SearchOptions{DepartmentAbbreviation: filter.Exact("CS")},
			want: []uint64{1, 2},
		},
		"first name prefix and department": {
			opts: repository.SearchOptions{
				UserFirstName: filter.Partial("A"),
				DepartmentID:  filter.Exact(uint64(1)),
			},
			want: []uint64{1, 2},
		},
		"banner partial degrades to exact": {
			opts: repository.SearchOptions{UserBanner: filter.Partial(uint32(900003))},
			want: []uint64{3},
		},
		"user id beyond bigint matches nothing": {
			opts: repository.SearchOptions{UserID: filter.Exact(uint64(1 << 63))},
			want: []uint64{},
		},
		"banner partial does not prefix match": {
			opts: repository.SearchOptions{UserBanner: filter.Partial(uint32(9000))},
			want: []uint64{},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, err := r.Search(ctx, tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, userIDs(got))
		})
	}
}

func TestSearch_ProjectsJoinShape(t *testing.T) {
	r := newTestRepository(t)
	ud := create(t, r, 2, 2)

	got, err := r.Search(context.Background(), repository.SearchOptions{UserID: filter.Exact(uint64(2))})
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, model.UserDepartmentJoin{
		ID:                     ud.ID,
		UserID:                 2,
		DepartmentID:           2,
		DepartmentName:         "Mathematics",
		DepartmentAbbreviation: "MATH",
		UserFirstName:          "Alan",
		UserLastName:           "Turing",
		UserEmail:              nil,
		UserBanner:             900002,
	}, got[0])
}
