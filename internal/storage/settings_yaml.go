package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"focusring/internal/audio"
	"focusring/internal/ui/preferences"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

// ErrInvalidSettings indicates the settings file exists but cannot be parsed.
var ErrInvalidSettings = errors.New("invalid settings file")

type yamlSettings struct {
	ChimeEnabled         *bool    `yaml:"chime_enabled"`
	ChimeVolume          *float64 `yaml:"chime_volume"`
	DesktopNotifications *bool    `yaml:"desktop_notifications"`
	StartAtLogin         *bool    `yaml:"start_at_login"`
}

// Store reads and writes user preferences on a filesystem.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a Store for the given settings path.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// NewDefaultStore creates a Store at the OS-standard config location.
func NewDefaultStore(appName string) (*Store, error) {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return nil, err
	}
	return NewStore(afero.NewOsFs(), configPath), nil
}

// Path returns the settings file location.
func (store *Store) Path() string {
	return store.path
}

// Load reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func (store *Store) Load() (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := afero.ReadFile(store.fs, store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// Save writes user preferences to YAML through a temp file and rename.
func (store *Store) Save(settings preferences.Settings) error {
	fileData := yamlSettings{
		ChimeEnabled:         &settings.ChimeEnabled,
		ChimeVolume:          &settings.ChimeVolume,
		DesktopNotifications: &settings.DesktopNotifications,
		StartAtLogin:         &settings.StartAtLogin,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	return writeFileAtomic(store.fs, store.path, serialized)
}

// ResolveConfigPath returns the settings file path for the application.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func writeFileAtomic(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmpFile, err := afero.TempFile(fs, dir, ".settings-*")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = fs.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write settings file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close settings file: %w", err)
	}
	if err := fs.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}
	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.ChimeEnabled != nil {
		settings.ChimeEnabled = *fileData.ChimeEnabled
	}
	if fileData.ChimeVolume != nil {
		settings.ChimeVolume = audio.ClampVolume(*fileData.ChimeVolume)
	}
	if fileData.DesktopNotifications != nil {
		settings.DesktopNotifications = *fileData.DesktopNotifications
	}
	if fileData.StartAtLogin != nil {
		settings.StartAtLogin = *fileData.StartAtLogin
	}
}
