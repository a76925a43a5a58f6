package sqlboiler

import "department-api/pkg/filter"

// The users table belongs to the user module; it is only ever read here, through joins.

var UserColumns = struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	BannerID  string
}{
	ID:        "id",
	FirstName: "first_name",
	LastName:  "last_name",
	Email:     "email",
	BannerID:  "banner_id",
}

var UserTableColumns = struct {
	ID        filter.Column
	FirstName filter.Column
	LastName  filter.Column
	Email     filter.Column
	BannerID  filter.Column
}{
	ID:        filter.Col(TableNames.Users, UserColumns.ID),
	FirstName: filter.Col(TableNames.Users, UserColumns.FirstName),
	LastName:  filter.Col(TableNames.Users, UserColumns.LastName),
	Email:     filter.Col(TableNames.Users, UserColumns.Email),
	BannerID:  filter.Col(TableNames.Users, UserColumns.BannerID),
}
