package constants

// Folder Names
const (
	ThemesDirName = "themes"
	LogsDirName   = "logs"
)

// File Names
const (
	AppConfigFileName = "admindeck.toml"
	LogFileName       = "admindeck.log"
	AuditFileName     = "audit.yml"
)

// Observe modes accepted in the [modal] config section and by --observe.
const (
	ObserveDefault   = ""
	ObserveAttribute = "attribute"
	ObserveToggle    = "toggle"
	ObservePoll      = "poll"
)

// Modals the console can open at start-up with --open.
const (
	OpenAbout = "about"
	OpenPanic = "panic"
)
