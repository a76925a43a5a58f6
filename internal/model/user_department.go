package model

import "department-api/internal/sqlboiler"

// UserDepartment links a user to a department.
type UserDepartment struct {
	ID           uint64 `json:"id"`
	UserID       uint64 `json:"user_id"`
	DepartmentID uint64 `json:"department_id"`
}

// NewUserDepartmentFromDB converts a SQLBoiler UserDepartment row to a domain UserDepartment.
func NewUserDepartmentFromDB(row *sqlboiler.UserDepartment) UserDepartment {
	return UserDepartment{
		ID:           row.ID,
		UserID:       row.UserID,
		DepartmentID: row.DepartmentID,
	}
}

type NewUserDepartment struct {
	UserID       uint64 `json:"user_id"`
	DepartmentID uint64 `json:"department_id"`
}

// UserDepartmentPatch carries the fields of a partial update. A nil field is left unchanged.
type UserDepartmentPatch struct {
	UserID       *uint64 `json:"user_id,omitempty"`
	DepartmentID *uint64 `json:"department_id,omitempty"`
}

func (p UserDepartmentPatch) IsEmpty() bool {
	return p.UserID == nil && p.DepartmentID == nil
}

// UserDepartmentJoin is a read-only projection of a user-department link together with
// its user and department columns.
type UserDepartmentJoin struct {
	ID                     uint64  `json:"id"`
	UserID                 uint64  `json:"user_id"`
	DepartmentID           uint64  `json:"department_id"`
	DepartmentName         string  `json:"department_name"`
	DepartmentAbbreviation string  `json:"department_abbreviation"`
	UserFirstName          string  `json:"user_first_name"`
	UserLastName           string  `json:"user_last_name"`
	UserEmail              *string `json:"user_email"`
	UserBanner             uint32  `json:"user_banner"`
}

// NewUserDepartmentJoinFromDB converts a joined row, mapping a NULL email to nil.
func NewUserDepartmentJoinFromDB(row *sqlboiler.UserDepartmentJoin) UserDepartmentJoin {
	j := UserDepartmentJoin{
		ID:                     row.ID,
		UserID:                 row.UserID,
		DepartmentID:           row.DepartmentID,
		DepartmentName:         row.DepartmentName,
		DepartmentAbbreviation: row.DepartmentAbbreviation,
		UserFirstName:          row.UserFirstName,
		UserLastName:           row.UserLastName,
		UserBanner:             row.UserBanner,
	}
	if row.UserEmail.Valid {
		j.UserEmail = &row.UserEmail.String
	}

	return j
}

// UserDepartments is the list wrapper returned by a user-department search.
type UserDepartments struct {
	UserDepartments []UserDepartmentJoin `json:"user_departments"`
}
