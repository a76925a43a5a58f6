package postgres

import (
	"context"
	"database/sql"
	"sort"
	"testing"

	"department-api/internal/department/repository"
	"department-api/internal/model"
	"department-api/internal/sqlboiler"
	"department-api/pkg/filter"
	pkgLog "department-api/pkg/log"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schema = `CREATE TABLE departments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	abbreviation TEXT NOT NULL
)`

func newTestRepository(t *testing.T) (*implRepository, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(schema)
	require.NoError(t, err)

	return New(pkgLog.NewNop(), db, &sqlboiler.SQLiteDialect), db
}

func seed(t *testing.T, r *implRepository, depts ...model.NewDepartment) []model.Department {
	t.Helper()

	res := make([]model.Department, 0, len(depts))
	for _, d := range depts {
		created, err := r.Create(context.Background(), repository.CreateOptions{Department: d})
		require.NoError(t, err)
		res = append(res, created)
	}

	return res
}

func names(depts []model.Department) []string {
	res := make([]string, len(depts))
	for i, d := range depts {
		res[i] = d.Name
	}
	sort.Strings(res)
	return res
}

func TestCreate_ThenGetRoundTrips(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepository(t)

	created, err := r.Create(ctx, repository.CreateOptions{
		Department: model.NewDepartment{Name: "Computer Science", Abbreviation: "CS"},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Computer Science", created.Name)
	assert.Equal(t, "CS", created.Abbreviation)

	got, err := r.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGet_NotFound(t *testing.T) {
	r, _ := newTestRepository(t)

	_, err := r.Get(context.Background(), 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOutOfRangeID(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepository(t)
	const id = uint64(1 << 63)
	name := "Ghost"

	_, err := r.Get(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, r.Update(ctx, repository.UpdateOptions{ID: id, Patch: model.DepartmentPatch{Name: &name}}))
	assert.NoError(t, r.Delete(ctx, id))
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepository(t)
	dept := seed(t, r, model.NewDepartment{Name: "Computer Science", Abbreviation: "CS"})[0]

	newName := "CompSci"
	tcs := map[string]struct {
		patch model.DepartmentPatch
		want  model.Department
	}{
		"empty patch leaves the row unchanged": {
			patch: model.DepartmentPatch{},
			want:  dept,
		},
		"only supplied fields change": {
			patch: model.DepartmentPatch{Name: &newName},
			want:  model.Department{ID: dept.ID, Name: "CompSci", Abbreviation: "CS"},
		},
	}

	for _, name := range []string{"empty patch leaves the row unchanged", "only supplied fields change"} {
		tc := tcs[name]
		t.Run(name, func(t *testing.T) {
			require.NoError(t, r.Update(ctx, repository.UpdateOptions{ID: dept.ID, Patch: tc.patch}))

			got, err := r.Get(ctx, dept.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUpdate_MissingIDIsNoOp(t *testing.T) {
	r, _ := newTestRepository(t)
	name := "Ghost"

	err := r.Update(context.Background(), repository.UpdateOptions{ID: 404, Patch: model.DepartmentPatch{Name: &name}})
	assert.NoError(t, err)
}

func TestDelete_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepository(t)
	dept := seed(t, r, model.NewDepartment{Name: "Physics", Abbreviation: "PHY"})[0]

	require.NoError(t, r.Delete(ctx, dept.ID))
	require.NoError(t, r.Delete(ctx, dept.ID))

	_, err := r.Get(ctx, dept.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRepository(t)
	seed(t, r,
		model.NewDepartment{Name: "Computer Science", Abbreviation: "CS"},
		model.NewDepartment{Name: "Computer Engineering", Abbreviation: "CE"},
		model.NewDepartment{Name: "Chemistry", Abbreviation: "CHEM"},
		model.NewDepartment{Name: "Physics", Abbreviation: "PHY"},
	)

	tcs := map[string]struct {
		opts repository.SearchOptions
		want []string
	}{
		"no criteria returns every row": {
			opts: repository.SearchOptions{},
			want: []string{"Chemistry", "Computer Engineering", "Computer Science", "Physics"},
		},
		"exact": {
			opts: repository.SearchOptions{Abbreviation: filter.Exact("CS")},
			want: []string{"Computer Science"},
		},
		"prefix": {
			opts: repository.SearchOptions{Abbreviation: filter.Partial("C")},
			want: []string{"Chemistry", "Computer Engineering", "Computer Science"},
		},
		"criteria are ANDed": {
			opts: repository.SearchOptions{
				Name:         filter.Partial("Computer"),
				Abbreviation: filter.Exact("CE"),
			},
			want: []string{"Computer Engineering"},
		},
		"no match": {
			opts: repository.SearchOptions{Name: filter.Exact("Computer")},
			want: []string{},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, err := r.Search(ctx, tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, names(got))
		})
	}
}

func TestSearch_StoreFailure(t *testing.T) {
	r, db := newTestRepository(t)
	require.NoError(t, db.Close())

	_, err := r.Search(context.Background(), repository.SearchOptions{})
	assert.Error(t, err)
}
