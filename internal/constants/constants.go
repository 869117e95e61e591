package constants

const (
	Version        = `0.1.0`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.fnotes/`

	DefaultServerURL = `http://localhost:3001/api`

	// DefaultAutosaveMillis is the editor's debounce quiescence window.
	DefaultAutosaveMillis = 1000
)
