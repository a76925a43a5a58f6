package model

import (
	"encoding/json"
	"testing"

	"department-api/internal/sqlboiler"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserDepartmentJoinFromDB(t *testing.T) {
	tcs := map[string]struct {
		email null.String
		want  *string
	}{
		"null email": {
			email: null.String{},
			want:  nil,
		},
		"present email": {
			email: null.StringFrom("ada@example.edu"),
			want:  func() *string { s := "ada@example.edu"; return &s }(),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got := NewUserDepartmentJoinFromDB(&sqlboiler.UserDepartmentJoin{
				ID:         3,
				UserID:     7,
				UserEmail:  tc.email,
				UserBanner: 900123,
			})

			assert.Equal(t, uint64(3), got.ID)
			assert.Equal(t, uint32(900123), got.UserBanner)
			assert.Equal(t, tc.want, got.UserEmail)
		})
	}
}

func TestDepartmentPatch_IsEmpty(t *testing.T) {
	name := "CompSci"

	assert.True(t, DepartmentPatch{}.IsEmpty())
	assert.False(t, DepartmentPatch{Name: &name}.IsEmpty())
}

func TestListWrappersSerializeEmptyAsArray(t *testing.T) {
	b, err := json.Marshal(Departments{Departments: []Department{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"departments":[]}`, string(b))

	b, err = json.Marshal(UserDepartments{UserDepartments: []UserDepartmentJoin{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"user_departments":[]}`, string(b))
}
