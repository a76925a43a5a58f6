package sqlboiler

var TableNames = struct {
	Departments     string
	UserDepartments string
	Users           string
}{
	Departments:     "departments",
	UserDepartments: "user_departments",
	Users:           "users",
}
