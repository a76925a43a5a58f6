package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"department-api/internal/model"
	"department-api/internal/userdepartment"
	"department-api/pkg/filter"
	pkgLog "department-api/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Search(ctx context.Context, ip userdepartment.SearchInput) (model.UserDepartments, error) {
	args := m.Called(ctx, ip)
	return args.Get(0).(model.UserDepartments), args.Error(1)
}

func (m *mockUseCase) Get(ctx context.Context, id uint64) (model.UserDepartment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.UserDepartment), args.Error(1)
}

func (m *mockUseCase) Create(ctx context.Context, ip userdepartment.CreateInput) (model.UserDepartment, error) {
	args := m.Called(ctx, ip)
	return args.Get(0).(model.UserDepartment), args.Error(1)
}

func (m *mockUseCase) Update(ctx context.Context, ip userdepartment.UpdateInput) error {
	return m.Called(ctx, ip).Error(0)
}

func (m *mockUseCase) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func setupRouter(uc userdepartment.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(pkgLog.NewNop(), uc).RegisterRoutes(&r.RouterGroup)
	return r
}

func TestParseSearchQuery(t *testing.T) {
	tcs := map[string]struct {
		query   string
		want    userdepartment.SearchInput
		wantErr bool
	}{
		"empty": {
			query: "",
			want:  userdepartment.SearchInput{},
		},
		"numeric exact": {
			query: "user_id=7&user_banner=900001",
			want: userdepartment.SearchInput{
				UserID:     filter.Exact(uint64(7)),
				UserBanner: filter.Exact(uint32(900001)),
			},
		},
		"numeric partial is kept as partial": {
			query: "department_id=3*",
			want:  userdepartment.SearchInput{DepartmentID: filter.Partial(uint64(3))},
		},
		"email tokens": {
			query: "user_email=~null&user_last_name=Tur*",
			want: userdepartment.SearchInput{
				UserEmail:    filter.NotNull[string](),
				UserLastName: filter.Partial("Tur"),
			},
		},
		"email null": {
			query: "user_email=null",
			want:  userdepartment.SearchInput{UserEmail: filter.IsNull[string]()},
		},
		"non numeric id": {
			query:   "user_id=abc",
			wantErr: true,
		},
		"banner overflow": {
			query:   "user_banner=4294967296",
			wantErr: true,
		},
		"unknown parameter": {
			query:   "email=x",
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/user_departments?"+tc.query, nil)

			got, err := parseSearchQuery(req.URL.Query())
			if tc.wantErr {
				assert.ErrorIs(t, err, userdepartment.ErrInvalidQuery)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHandle(t *testing.T) {
	email := "ada@example.edu"
	uc := new(mockUseCase)
	uc.On("Search", mock.Anything, userdepartment.SearchInput{UserEmail: filter.NotNull[string]()}).
		Return(model.UserDepartments{UserDepartments: []model.UserDepartmentJoin{{
			ID: 1, UserID: 1, DepartmentID: 1,
			DepartmentName: "Computer Science", DepartmentAbbreviation: "CS",
			UserFirstName: "Ada", UserLastName: "Lovelace", UserEmail: &email, UserBanner: 900001,
		}}}, nil)
	uc.On("Search", mock.Anything, userdepartment.SearchInput{}).Return(model.UserDepartments{}, nil)
	uc.On("Get", mock.Anything, uint64(1)).Return(model.UserDepartment{ID: 1, UserID: 1, DepartmentID: 1}, nil)
	uc.On("Get", mock.Anything, uint64(2)).Return(model.UserDepartment{}, userdepartment.ErrUserDepartmentNotFound)
	uc.On("Create", mock.Anything, userdepartment.CreateInput{UserDepartment: model.NewUserDepartment{UserID: 1, DepartmentID: 2}}).
		Return(model.UserDepartment{ID: 5, UserID: 1, DepartmentID: 2}, nil)
	uc.On("Delete", mock.Anything, uint64(5)).Return(userdepartment.ErrDatabase)
	r := setupRouter(uc)

	tcs := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "search with join shape",
			method:     http.MethodGet,
			target:     "/user_departments?user_email=~null",
			wantStatus: http.StatusOK,
			wantBody: `{"user_departments":[{"id":1,"user_id":1,"department_id":1,"department_name":"Computer Science",` +
				`"department_abbreviation":"CS","user_first_name":"Ada","user_last_name":"Lovelace",` +
				`"user_email":"ada@example.edu","user_banner":900001}]}`,
		},
		{
			name:       "empty search",
			method:     http.MethodGet,
			target:     "/user_departments",
			wantStatus: http.StatusOK,
			wantBody:   `{"user_departments":[]}`,
		},
		{
			name:       "get",
			method:     http.MethodGet,
			target:     "/user_departments/1",
			wantStatus: http.StatusOK,
			wantBody:   `{"id":1,"user_id":1,"department_id":1}`,
		},
		{
			name:       "get missing",
			method:     http.MethodGet,
			target:     "/user_departments/2",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error_code":120005,"message":"User department not found"}`,
		},
		{
			name:       "create",
			method:     http.MethodPost,
			target:     "/user_departments",
			body:       `{"user_id":1,"department_id":2}`,
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":5,"user_id":1,"department_id":2}`,
		},
		{
			name:       "create with wrong type",
			method:     http.MethodPost,
			target:     "/user_departments",
			body:       `{"user_id":"one","department_id":2}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error_code":120002,"message":"Malformed request body"}`,
		},
		{
			name:       "undecodable query key",
			method:     http.MethodGet,
			target:     "/user_departments?usr_id%zz=1",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error_code":120001,"message":"Invalid query parameter"}`,
		},
		{
			name:       "undecodable query value",
			method:     http.MethodGet,
			target:     "/user_departments?user_email=%zz",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error_code":120001,"message":"Invalid query parameter"}`,
		},
		{
			name:       "update with null body",
			method:     http.MethodPost,
			target:     "/user_departments/5",
			body:       `null`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error_code":120002,"message":"Malformed request body"}`,
		},
		{
			name:       "update without body",
			method:     http.MethodPost,
			target:     "/user_departments/5",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error_code":120003,"message":"Missing request body"}`,
		},
		{
			name:       "delete store failure",
			method:     http.MethodDelete,
			target:     "/user_departments/5",
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error_code":120006,"message":"Database error"}`,
		},
		{
			name:       "delete collection",
			method:     http.MethodDelete,
			target:     "/user_departments",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error_code":120004,"message":"Not found"}`,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var body *strings.Reader
			if tc.body != "" {
				body = strings.NewReader(tc.body)
			}
			var req *http.Request
			if body != nil {
				req = httptest.NewRequest(tc.method, tc.target, body)
			} else {
				req = httptest.NewRequest(tc.method, tc.target, nil)
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.JSONEq(t, tc.wantBody, w.Body.String())
		})
	}
}
