package log

// Values accepted by ZapConfig.Mode and ZapConfig.Encoding.
const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// Level names understood by Init. Anything else logs at debug.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)
