package errors

const (
	MessageNotFound = "Not found"
	MessageInternal = "Internal server error"
)
