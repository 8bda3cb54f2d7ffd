package preferences

import (
	"focusring/internal/audio"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window       fyne.Window
	settings     Settings
	onSave       func(Settings)
	onPreview    func(Settings)
	chime        *widget.Check
	volume       *widget.Slider
	desktop      *widget.Check
	startAtLogin *widget.Check
}

// New creates a preferences window. onPreview plays the chime with the
// values currently shown, before they are saved.
func New(app fyne.App, settings Settings, onSave func(Settings), onPreview func(Settings)) *Window {
	window := app.NewWindow("FocusRing Preferences")

	chime := widget.NewCheck("Play a chime when a phase ends", nil)
	volume := widget.NewSlider(audio.MinVolume, audio.MaxVolume)
	volume.Step = 0.25
	desktop := widget.NewCheck("Show desktop notifications", nil)
	startAtLogin := widget.NewCheck("Start FocusRing at login", nil)

	prefs := &Window{
		window:       window,
		onSave:       onSave,
		onPreview:    onPreview,
		chime:        chime,
		volume:       volume,
		desktop:      desktop,
		startAtLogin: startAtLogin,
	}
	prefs.UpdateSettings(settings)

	preview := widget.NewButton("Test chime", func() {
		if prefs.onPreview != nil {
			prefs.onPreview(prefs.collect())
		}
	})

	form := container.NewVBox(
		widget.NewLabelWithStyle("Sound", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		chime,
		container.NewBorder(nil, nil, widget.NewLabel("Volume"), preview, volume),
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		desktop,
		startAtLogin,
		widget.NewLabel("Focus lasts 25 minutes, breaks last 5 minutes."),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 300))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.chime.SetChecked(settings.ChimeEnabled)
	prefs.volume.SetValue(settings.ChimeVolume)
	prefs.desktop.SetChecked(settings.DesktopNotifications)
	prefs.startAtLogin.SetChecked(settings.StartAtLogin)
}

func (prefs *Window) collect() Settings {
	settings := prefs.settings
	settings.ChimeEnabled = prefs.chime.Checked
	settings.ChimeVolume = prefs.volume.Value
	settings.DesktopNotifications = prefs.desktop.Checked
	settings.StartAtLogin = prefs.startAtLogin.Checked
	return settings
}

func (prefs *Window) handleSave() {
	settings := prefs.collect()
	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}
