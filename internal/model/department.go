package model

import "department-api/internal/sqlboiler"

// Department represents a department entity in the domain layer.
type Department struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// NewDepartmentFromDB converts a SQLBoiler Department row to a domain Department.
func NewDepartmentFromDB(row *sqlboiler.Department) Department {
	return Department{
		ID:           row.ID,
		Name:         row.Name,
		Abbreviation: row.Abbreviation,
	}
}

// NewDepartment is the data needed to create a department. The store assigns the id.
type NewDepartment struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// DepartmentPatch carries the fields of a partial update. A nil field is left unchanged.
type DepartmentPatch struct {
	Name         *string `json:"name,omitempty"`
	Abbreviation *string `json:"abbreviation,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p DepartmentPatch) IsEmpty() bool {
	return p.Name == nil && p.Abbreviation == nil
}

// Departments is the list wrapper returned by a department search.
type Departments struct {
	Departments []Department `json:"departments"`
}
