package preferences

// Settings defines editable user preferences.
type Settings struct {
	NotifyOnComplete bool
	RecordHistory    bool
	DarkMode         bool

	// HistoryPath is the SQLite file for completed intervals. Empty means
	// the default location next to the settings file.
	HistoryPath string
}

// DefaultSettings returns default settings for FocusDesk.
func DefaultSettings() Settings {
	return Settings{
		NotifyOnComplete: true,
		RecordHistory:    true,
	}
}
