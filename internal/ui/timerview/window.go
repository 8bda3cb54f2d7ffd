package timerview

import (
	"image/color"

	"focusring/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	windowWidth      = float32(360)
	windowHeight     = float32(480)
	focusStatusText  = "Focus mode on. Stay in the zone!"
	startButtonLabel = "Start"
	pauseButtonLabel = "Pause"
)

// Callbacks defines the intents issued from the window.
type Callbacks struct {
	OnToggle func()
	OnReset  func()
}

// Window renders the countdown ring and controls.
type Window struct {
	window       fyne.Window
	callbacks    Callbacks
	ring         *ring
	background   *canvas.LinearGradient
	timerLabel   *canvas.Text
	phaseLabel   *canvas.Text
	statusLabel  *canvas.Text
	toggleButton *widget.Button
	resetButton  *widget.Button
}

var (
	focusBackground = [2]color.NRGBA{{R: 32, G: 18, B: 58, A: 255}, {R: 72, G: 28, B: 70, A: 255}}
	breakBackground = [2]color.NRGBA{{R: 10, G: 38, B: 56, A: 255}, {R: 14, G: 70, B: 74, A: 255}}
	textColor       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	mutedTextColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 170}
)

// New creates the main timer window.
func New(app fyne.App, title string, callbacks Callbacks) *Window {
	window := app.NewWindow(title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	background := canvas.NewLinearGradient(focusBackground[0], focusBackground[1], 0)

	timerLabel := canvas.NewText(model.FormatSeconds(model.FocusSeconds), textColor)
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timerLabel.TextSize = 48

	phaseLabel := canvas.NewText(model.PhaseFocus.Label(), mutedTextColor)
	phaseLabel.Alignment = fyne.TextAlignCenter
	phaseLabel.TextStyle = fyne.TextStyle{Bold: true}
	phaseLabel.TextSize = 18

	statusLabel := canvas.NewText(focusStatusText, mutedTextColor)
	statusLabel.Alignment = fyne.TextAlignCenter
	statusLabel.TextSize = 14
	statusLabel.Hide()

	view := &Window{
		window:      window,
		callbacks:   callbacks,
		ring:        newRing(),
		background:  background,
		timerLabel:  timerLabel,
		phaseLabel:  phaseLabel,
		statusLabel: statusLabel,
	}

	view.toggleButton = widget.NewButtonWithIcon(startButtonLabel, theme.MediaPlayIcon(), func() {
		if view.callbacks.OnToggle != nil {
			view.callbacks.OnToggle()
		}
	})
	view.toggleButton.Importance = widget.HighImportance

	view.resetButton = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), func() {
		if view.callbacks.OnReset != nil {
			view.callbacks.OnReset()
		}
	})

	dial := container.NewStack(
		view.ring.raster,
		container.NewCenter(container.NewVBox(phaseLabel, timerLabel)),
	)
	controls := container.NewGridWithColumns(2, view.toggleButton, view.resetButton)
	content := container.New(&timerLayout{}, dial, statusLabel, controls)

	window.SetContent(container.NewStack(background, container.NewPadded(content)))
	window.Resize(fyne.NewSize(windowWidth, windowHeight))
	window.SetFixedSize(true)

	view.Render(model.InitialSnapshot(), false)
	return view
}

// Window returns the underlying fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Hide hides the window without stopping the countdown.
func (view *Window) Hide() {
	view.window.Hide()
}

// ControlsEnabled reports whether Start/Pause and Reset accept input.
func (view *Window) ControlsEnabled() bool {
	return !view.toggleButton.Disabled() && !view.resetButton.Disabled()
}

// Render updates every widget from snapshot. It must run on the UI thread.
func (view *Window) Render(snapshot model.Snapshot, notificationPending bool) {
	view.timerLabel.Text = snapshot.DisplayText()
	view.timerLabel.Refresh()

	view.phaseLabel.Text = snapshot.Phase.Label()
	view.phaseLabel.Refresh()

	if snapshot.ShowFocusStatus() {
		view.statusLabel.Show()
	} else {
		view.statusLabel.Hide()
	}

	if snapshot.Running {
		view.toggleButton.SetText(pauseButtonLabel)
		view.toggleButton.SetIcon(theme.MediaPauseIcon())
	} else {
		view.toggleButton.SetText(startButtonLabel)
		view.toggleButton.SetIcon(theme.MediaPlayIcon())
	}

	if notificationPending {
		view.toggleButton.Disable()
		view.resetButton.Disable()
	} else {
		view.toggleButton.Enable()
		view.resetButton.Enable()
	}

	colors := focusBackground
	if snapshot.Phase == model.PhaseBreak {
		colors = breakBackground
	}
	if view.background.StartColor != colors[0] {
		view.background.StartColor = colors[0]
		view.background.EndColor = colors[1]
		view.background.Refresh()
	}

	view.ring.set(snapshot.Progress(), gradientFor(snapshot.Phase))
}

// timerLayout stacks the dial, the status line and the controls, giving the
// dial all space that is left.
type timerLayout struct{}

func (layout *timerLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 3 {
		return
	}
	dial := objects[0]
	status := objects[1]
	controls := objects[2]

	pad := theme.Padding()
	controlsSize := controls.MinSize()
	statusSize := status.MinSize()

	controlsY := size.Height - controlsSize.Height
	controls.Move(fyne.NewPos(0, controlsY))
	controls.Resize(fyne.NewSize(size.Width, controlsSize.Height))

	statusY := controlsY - pad*2 - statusSize.Height
	status.Move(fyne.NewPos(0, statusY))
	status.Resize(fyne.NewSize(size.Width, statusSize.Height))

	side := statusY - pad*2
	if side > size.Width {
		side = size.Width
	}
	if side < 0 {
		side = 0
	}
	dial.Move(fyne.NewPos((size.Width-side)/2, 0))
	dial.Resize(fyne.NewSize(side, side))
}

func (layout *timerLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 3 {
		return fyne.NewSize(0, 0)
	}
	dialMin := objects[0].MinSize()
	statusMin := objects[1].MinSize()
	controlsMin := objects[2].MinSize()

	width := dialMin.Width
	if statusMin.Width > width {
		width = statusMin.Width
	}
	if controlsMin.Width > width {
		width = controlsMin.Width
	}
	height := dialMin.Height + statusMin.Height + controlsMin.Height + theme.Padding()*4
	return fyne.NewSize(width, height)
}
