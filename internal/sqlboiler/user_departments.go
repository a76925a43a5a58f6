package sqlboiler

import (
	"department-api/pkg/filter"

	"github.com/aarondl/null/v8"
)

// UserDepartment is an object representing the database table.
type UserDepartment struct {
	ID           uint64 `boil:"id" json:"id" toml:"id" yaml:"id"`
	UserID       uint64 `boil:"user_id" json:"user_id" toml:"user_id" yaml:"user_id"`
	DepartmentID uint64 `boil:"department_id" json:"department_id" toml:"department_id" yaml:"department_id"`
}

var UserDepartmentColumns = struct {
	ID           string
	UserID       string
	DepartmentID string
}{
	ID:           "id",
	UserID:       "user_id",
	DepartmentID: "department_id",
}

var UserDepartmentTableColumns = struct {
	ID           filter.Column
	UserID       filter.Column
	DepartmentID filter.Column
}{
	ID:           filter.Col(TableNames.UserDepartments, UserDepartmentColumns.ID),
	UserID:       filter.Col(TableNames.UserDepartments, UserDepartmentColumns.UserID),
	DepartmentID: filter.Col(TableNames.UserDepartments, UserDepartmentColumns.DepartmentID),
}

// UserDepartmentJoin is one row of user_departments joined with its user and department.
type UserDepartmentJoin struct {
	ID                     uint64      `boil:"id" json:"id"`
	UserID                 uint64      `boil:"user_id" json:"user_id"`
	DepartmentID           uint64      `boil:"department_id" json:"department_id"`
	DepartmentName         string      `boil:"department_name" json:"department_name"`
	DepartmentAbbreviation string      `boil:"department_abbreviation" json:"department_abbreviation"`
	UserFirstName          string      `boil:"user_first_name" json:"user_first_name"`
	UserLastName           string      `boil:"user_last_name" json:"user_last_name"`
	UserEmail              null.String `boil:"user_email" json:"user_email"`
	UserBanner             uint32      `boil:"user_banner" json:"user_banner"`
}

// UserDepartmentJoinSource inner-joins user_departments with users and departments and
// projects the UserDepartmentJoin shape. Rows whose user or department is missing never appear.
func UserDepartmentJoinSource() filter.Source {
	return filter.Source{
		Table: TableNames.UserDepartments,
		Joins: []filter.Join{
			{
				Table: TableNames.Users,
				Left:  UserTableColumns.ID,
				Right: UserDepartmentTableColumns.UserID,
			},
			{
				Table: TableNames.Departments,
				Left:  DepartmentTableColumns.ID,
				Right: UserDepartmentTableColumns.DepartmentID,
			},
		},
		Select: []filter.Projection{
			{Column: UserDepartmentTableColumns.ID, Alias: "id"},
			{Column: UserDepartmentTableColumns.UserID, Alias: "user_id"},
			{Column: UserDepartmentTableColumns.DepartmentID, Alias: "department_id"},
			{Column: DepartmentTableColumns.Name, Alias: "department_name"},
			{Column: DepartmentTableColumns.Abbreviation, Alias: "department_abbreviation"},
			{Column: UserTableColumns.FirstName, Alias: "user_first_name"},
			{Column: UserTableColumns.LastName, Alias: "user_last_name"},
			{Column: UserTableColumns.Email, Alias: "user_email"},
			{Column: UserTableColumns.BannerID, Alias: "user_banner"},
		},
	}
}
