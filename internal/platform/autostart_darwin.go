//go:build darwin

package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

func (service *platformService) EnableAutostart(appName, execPath string) error {
	if appName == "" {
		return fmt.Errorf("enable autostart: app name is empty")
	}
	if execPath == "" {
		return fmt.Errorf("enable autostart: exec path is empty")
	}

	plistPath, err := service.launchAgentPath(appName)
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if err := service.fs.MkdirAll(filepath.Dir(plistPath), 0o755); err != nil {
		return fmt.Errorf("enable autostart: create LaunchAgents dir: %w", err)
	}

	content := buildLaunchAgentPlist(launchAgentLabel(appName), execPath)
	if err := afero.WriteFile(service.fs, plistPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("enable autostart: write plist: %w", err)
	}

	return nil
}

func (service *platformService) DisableAutostart(appName string) error {
	if appName == "" {
		return fmt.Errorf("disable autostart: app name is empty")
	}

	plistPath, err := service.launchAgentPath(appName)
	if err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	if err := service.fs.Remove(plistPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("disable autostart: remove plist: %w", err)
	}

	return nil
}

func (service *platformService) launchAgentPath(appName string) (string, error) {
	homeDir, err := service.homeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, "Library", "LaunchAgents", launchAgentLabel(appName)+".plist"), nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "Library", "Application Support")
}

func launchAgentLabel(appName string) string {
	return "io.focusring." + entryName(appName)
}

func buildLaunchAgentPlist(label, execPath string) string {
	escape := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)

	return fmt.Sprintf(
		`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%s</string>
	<key>ProgramArguments</key>
	<array>
		<string>%s</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
	<key>ProcessType</key>
	<string>Interactive</string>
</dict>
</plist>
`,
		escape.Replace(label),
		escape.Replace(execPath),
	)
}
