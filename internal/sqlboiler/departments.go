package sqlboiler

import "department-api/pkg/filter"

// Department is an object representing the database table.
type Department struct {
	ID           uint64 `boil:"id" json:"id" toml:"id" yaml:"id"`
	Name         string `boil:"name" json:"name" toml:"name" yaml:"name"`
	Abbreviation string `boil:"abbreviation" json:"abbreviation" toml:"abbreviation" yaml:"abbreviation"`
}

var DepartmentColumns = struct {
	ID           string
	Name         string
	Abbreviation string
}{
	ID:           "id",
	Name:         "name",
	Abbreviation: "abbreviation",
}

var DepartmentTableColumns = struct {
	ID           filter.Column
	Name         filter.Column
	Abbreviation filter.Column
}{
	ID:           filter.Col(TableNames.Departments, DepartmentColumns.ID),
	Name:         filter.Col(TableNames.Departments, DepartmentColumns.Name),
	Abbreviation: filter.Col(TableNames.Departments, DepartmentColumns.Abbreviation),
}
