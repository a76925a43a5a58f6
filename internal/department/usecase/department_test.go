package usecase

import (
	"context"
	"testing"

	"department-api/internal/department"
	"department-api/internal/department/repository"
	"department-api/internal/model"
	"department-api/pkg/filter"
	pkgLog "department-api/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Get(ctx context.Context, id uint64) (model.Department, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Department), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Department, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(model.Department), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, opts repository.UpdateOptions) error {
	args := m.Called(ctx, opts)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) Search(ctx context.Context, opts repository.SearchOptions) ([]model.Department, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Department), args.Error(1)
}

func TestUsecase_Get(t *testing.T) {
	ctx := context.Background()
	cs := model.Department{ID: 1, Name: "Computer Science", Abbreviation: "CS"}

	tcs := map[string]struct {
		repoDept model.Department
		repoErr  error
		want     model.Department
		wantErr  error
	}{
		"found": {
			repoDept: cs,
			want:     cs,
		},
		"not found": {
			repoErr: repository.ErrNotFound,
			wantErr: department.ErrDepartmentNotFound,
		},
		"multiple rows is a database error": {
			repoErr: repository.ErrMultipleRows,
			wantErr: department.ErrDatabase,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			repo := new(mockRepository)
			repo.On("Get", ctx, uint64(1)).Return(tc.repoDept, tc.repoErr)

			got, err := New(pkgLog.NewNop(), repo).Get(ctx, 1)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
			repo.AssertExpectations(t)
		})
	}
}

func TestUsecase_Create(t *testing.T) {
	ctx := context.Background()
	in := model.NewDepartment{Name: "Computer Science", Abbreviation: "CS"}

	t.Run("success", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Create", ctx, repository.CreateOptions{Department: in}).
			Return(model.Department{ID: 7, Name: in.Name, Abbreviation: in.Abbreviation}, nil)

		got, err := New(pkgLog.NewNop(), repo).Create(ctx, department.CreateInput{Department: in})
		assert.NoError(t, err)
		assert.Equal(t, uint64(7), got.ID)
	})

	t.Run("unconfirmed insert", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Create", ctx, mock.Anything).Return(model.Department{}, repository.ErrNotConfirmed)

		_, err := New(pkgLog.NewNop(), repo).Create(ctx, department.CreateInput{Department: in})
		assert.ErrorIs(t, err, department.ErrDatabase)
		assert.ErrorIs(t, err, repository.ErrNotConfirmed)
	})
}

func TestUsecase_Search(t *testing.T) {
	ctx := context.Background()
	ip := department.SearchInput{Abbreviation: filter.Partial("C")}

	t.Run("wraps rows", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Search", ctx, repository.SearchOptions{Abbreviation: filter.Partial("C")}).
			Return([]model.Department{{ID: 1, Name: "Computer Science", Abbreviation: "CS"}}, nil)

		got, err := New(pkgLog.NewNop(), repo).Search(ctx, ip)
		assert.NoError(t, err)
		assert.Len(t, got.Departments, 1)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Search", ctx, mock.Anything).Return(nil, assert.AnError)

		_, err := New(pkgLog.NewNop(), repo).Search(ctx, ip)
		assert.ErrorIs(t, err, department.ErrDatabase)
	})
}

func TestUsecase_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	name := "CompSci"
	patch := model.DepartmentPatch{Name: &name}

	repo := new(mockRepository)
	repo.On("Update", ctx, repository.UpdateOptions{ID: 1, Patch: patch}).Return(nil)
	repo.On("Delete", ctx, uint64(1)).Return(nil)
	repo.On("Delete", ctx, uint64(2)).Return(assert.AnError)

	uc := New(pkgLog.NewNop(), repo)
	assert.NoError(t, uc.Update(ctx, department.UpdateInput{ID: 1, Patch: patch}))
	assert.NoError(t, uc.Delete(ctx, 1))
	assert.ErrorIs(t, uc.Delete(ctx, 2), department.ErrDatabase)
	repo.AssertExpectations(t)
}
