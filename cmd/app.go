package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"focusring/internal/audio"
	"focusring/internal/core/countdown"
	"focusring/internal/platform"
	"focusring/internal/storage"
	"focusring/internal/ui/notify"
	"focusring/internal/ui/preferences"
	"focusring/internal/ui/timerview"
	"focusring/internal/ui/tray"
	"focusring/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/afero"
	"github.com/tebeka/atexit"
)

const appName = "FocusRing"

func runApp(opts options) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("single instance: %v", err)
			return nil
		}
		return err
	}
	atexit.Register(func() {
		_ = guard.Release()
	})

	store, err := openStore(opts.configPath)
	if err != nil {
		return fmt.Errorf("open settings: %w", err)
	}
	settings, err := store.Load()
	if err != nil {
		log.Printf("settings: %v, using defaults", err)
	}
	effective := opts.apply(settings)

	fyneApp := app.NewWithID("io.focusring.app")
	fyneApp.SetIcon(resources.MustIcon(resources.AppIcon))

	player := audio.NewPlayer(effective.AudioConfig())

	var controller *countdown.Controller
	view := timerview.New(fyneApp, appName, timerview.Callbacks{
		OnToggle: func() {
			controller.Toggle()
		},
		OnReset: func() {
			controller.Reset()
		},
	})
	notifier := notify.New(fyneApp, view.Window(), effective.DesktopNotifications)

	controller = countdown.New(countdown.Config{
		TickInterval: time.Second,
		TickSource:   countdown.NewTickerSource(fyne.Do),
		Chime:        player,
		Notifier:     notifier,
	})
	atexit.Register(controller.Close)
	fyneApp.Lifecycle().SetOnStopped(controller.Close)

	loginItem := platform.NewLoginItem(platform.NewService(), appName)
	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if err := store.Save(updated); err != nil {
			log.Printf("settings: %v", err)
		}
		applied := opts.apply(updated)
		player.UpdateConfig(applied.AudioConfig())
		notifier.SetDesktopNotifications(applied.DesktopNotifications)
		if updated.StartAtLogin != settings.StartAtLogin {
			if err := loginItem.Apply(updated.StartAtLogin); err != nil {
				log.Printf("autostart: %v", err)
			}
		}
		settings = updated
	}, func(preview preferences.Settings) {
		player.Preview(preview.AudioConfig())
	})

	var trayManager *tray.Manager
	desktopApp, ok := fyneApp.(desktop.App)
	if ok && !opts.noTray {
		trayManager = tray.New(desktopApp, tray.Icons{
			Running: resources.MustIcon(resources.AppIcon),
			Paused:  resources.MustIcon(resources.PausedIcon),
		}, tray.Callbacks{
			OnShow:        view.Show,
			OnPreferences: prefsWindow.Show,
			OnToggle: func() {
				controller.Toggle()
			},
			OnReset: func() {
				controller.Reset()
			},
			OnQuit: fyneApp.Quit,
		})
		view.Window().SetCloseIntercept(view.Hide)
	} else {
		if !ok {
			log.Printf("system tray unsupported on this platform")
		}
		view.Window().SetMaster()
	}

	go forwardEvents(controller.Subscribe(16), func() {
		fyne.Do(func() {
			render(controller, view, trayManager)
		})
	})

	view.Show()
	fyneApp.Run()
	return nil
}

func openStore(configPath string) (*storage.Store, error) {
	if configPath != "" {
		return storage.NewStore(afero.NewOsFs(), configPath), nil
	}
	return storage.NewDefaultStore(appName)
}

// forwardEvents logs each event and requests a redraw until events closes.
func forwardEvents(events <-chan countdown.Event, refresh func()) {
	for event := range events {
		logEvent(event)
		refresh()
	}
}

func render(controller *countdown.Controller, view *timerview.Window, trayManager *tray.Manager) {
	snapshot := controller.Snapshot()
	pending := controller.NotificationPending()
	view.Render(snapshot, pending)
	if trayManager != nil {
		trayManager.SetSnapshot(snapshot, pending)
	}
}

func logEvent(event countdown.Event) {
	switch event.Type {
	case countdown.EventTransition:
		log.Printf("countdown: %s finished, now %s", event.From.Label(), event.Snapshot)
	case countdown.EventToggle, countdown.EventReset:
		log.Printf("countdown: %s -> %s", event.Type, event.Snapshot)
	case countdown.EventNotificationDismissed:
		log.Printf("countdown: transition message dismissed")
	}
}
