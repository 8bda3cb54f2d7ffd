package tray

import (
	"fmt"

	"focusring/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const menuTitle = "FocusRing"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnPreferences func()
	OnToggle      func()
	OnReset       func()
	OnQuit        func()
}

// Icons holds the tray icon variants.
type Icons struct {
	Running fyne.Resource
	Paused  fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	icons      Icons
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	resetItem  *fyne.MenuItem
	snapshot   model.Snapshot
	pending    bool
	iconState  *bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		icons:     icons,
		callbacks: callbacks,
		snapshot:  model.InitialSnapshot(),
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})

	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})

	manager.refresh()
	return manager
}

// SetSnapshot mirrors the countdown state in the menu and icon.
func (manager *Manager) SetSnapshot(snapshot model.Snapshot, notificationPending bool) {
	manager.snapshot = snapshot
	manager.pending = notificationPending
	manager.refresh()
}

// StatusLabel returns the current status line.
func (manager *Manager) StatusLabel() string {
	return manager.statusItem.Label
}

// ToggleLabel returns the current label of the start/pause item.
func (manager *Manager) ToggleLabel() string {
	return manager.toggleItem.Label
}

// ControlsEnabled reports whether the start/pause and reset items are active.
func (manager *Manager) ControlsEnabled() bool {
	return !manager.toggleItem.Disabled && !manager.resetItem.Disabled
}

func (manager *Manager) refresh() {
	manager.statusItem.Label = statusLabel(manager.snapshot)

	if manager.snapshot.Running {
		manager.toggleItem.Label = "Pause"
	} else {
		manager.toggleItem.Label = "Start"
	}
	manager.toggleItem.Disabled = manager.pending
	manager.resetItem.Disabled = manager.pending

	if manager.app == nil {
		return
	}
	manager.refreshIcon()
	manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		manager.resetItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show timer", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}

func (manager *Manager) refreshIcon() {
	running := manager.snapshot.Running
	if manager.iconState != nil && *manager.iconState == running {
		return
	}
	manager.iconState = &running

	icon := manager.icons.Paused
	if running {
		icon = manager.icons.Running
	}
	if icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func statusLabel(snapshot model.Snapshot) string {
	status := fmt.Sprintf("%s %s", snapshot.Phase.Label(), snapshot.DisplayText())
	if !snapshot.Running {
		status = fmt.Sprintf("%s (paused)", status)
	}
	return status
}
