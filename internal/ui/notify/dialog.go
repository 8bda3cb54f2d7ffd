package notify

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

const dialogTitle = "FocusRing"

// Dialog presents transition messages as a modal dialog on the main window
// and, optionally, as a desktop notification.
type Dialog struct {
	mu      sync.Mutex
	app     fyne.App
	window  fyne.Window
	desktop bool
}

// New creates a Dialog notifier bound to the given window.
func New(app fyne.App, window fyne.Window, desktop bool) *Dialog {
	return &Dialog{app: app, window: window, desktop: desktop}
}

// SetDesktopNotifications toggles the additional desktop notification.
func (notifier *Dialog) SetDesktopNotifications(enabled bool) {
	notifier.mu.Lock()
	notifier.desktop = enabled
	notifier.mu.Unlock()
}

// Notify shows message and calls done once the dialog is dismissed. The
// window is shown first since it may have been hidden to the tray.
func (notifier *Dialog) Notify(message string, done func()) {
	notifier.mu.Lock()
	desktop := notifier.desktop
	notifier.mu.Unlock()

	fyne.Do(func() {
		if desktop && notifier.app != nil {
			notifier.app.SendNotification(fyne.NewNotification(dialogTitle, message))
		}

		info := dialog.NewInformation(dialogTitle, message, notifier.window)
		info.SetOnClosed(func() {
			if done != nil {
				done()
			}
		})
		notifier.window.Show()
		notifier.window.RequestFocus()
		info.Show()
	})
}
