package platform

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// Service defines OS-specific helpers needed by the application.
type Service interface {
	GetConfigDir() (string, error)
	EnableAutostart(appName, execPath string) error
	DisableAutostart(appName string) error
}

type platformService struct {
	fs      afero.Fs
	homeDir func() (string, error)
}

// NewService returns a platform-specific implementation.
func NewService() Service {
	return &platformService{fs: afero.NewOsFs(), homeDir: os.UserHomeDir}
}

// GetConfigDir returns the OS-standard configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := service.homeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

// LoginItem keeps the start-at-login registration in sync with preferences.
type LoginItem struct {
	service  Service
	appName  string
	execPath func() (string, error)
}

// NewLoginItem creates a LoginItem for the running executable.
func NewLoginItem(service Service, appName string) *LoginItem {
	return &LoginItem{service: service, appName: appName, execPath: os.Executable}
}

// Apply registers or unregisters the application as a login item.
func (item *LoginItem) Apply(enabled bool) error {
	if !enabled {
		return item.service.DisableAutostart(item.appName)
	}
	execPath, err := item.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	return item.service.EnableAutostart(item.appName, execPath)
}

func entryName(appName string) string {
	name := strings.TrimSpace(appName)
	if name == "" {
		name = "focusring"
	}
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "-")
}
