package preferences

import (
	"focusring/internal/audio"
)

// Settings defines editable user preferences. Phase lengths are fixed and
// intentionally absent.
type Settings struct {
	ChimeEnabled         bool
	ChimeVolume          float64
	DesktopNotifications bool
	StartAtLogin         bool
}

// DefaultSettings returns default settings for FocusRing.
func DefaultSettings() Settings {
	return Settings{
		ChimeEnabled:         true,
		ChimeVolume:          0,
		DesktopNotifications: true,
		StartAtLogin:         false,
	}
}

// AudioConfig converts settings to the chime player configuration.
func (settings Settings) AudioConfig() audio.Config {
	return audio.Config{
		Enabled: settings.ChimeEnabled,
		Volume:  settings.ChimeVolume,
	}
}
