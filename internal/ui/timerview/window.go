package timerview

import (
	"fmt"
	"image/color"

	"focusdesk/internal/core/focus"
	"focusdesk/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Controller is the part of focus.Timer the window drives.
type Controller interface {
	Toggle()
	Reset()
	SelectMode(model.Mode)
}

var (
	workColor  = color.NRGBA{R: 232, G: 93, B: 66, A: 255}
	breakColor = color.NRGBA{R: 66, G: 140, B: 232, A: 255}
)

// Window shows the focus timer.
type Window struct {
	window       fyne.Window
	controller   Controller
	clockText    *canvas.Text
	statusLabel  *widget.Label
	summaryLabel *widget.Label
	progress     *widget.ProgressBar
	workButton   *widget.Button
	breakButton  *widget.Button
	toggleButton *widget.Button
	resetButton  *widget.Button
}

// New creates the timer window. Buttons call controller directly; the
// caller feeds state back through Render.
func New(app fyne.App, controller Controller) *Window {
	window := app.NewWindow("FocusDesk")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	clockText := canvas.NewText("25:00", workColor)
	clockText.Alignment = fyne.TextAlignCenter
	clockText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	clockText.TextSize = 72

	progress := widget.NewProgressBar()
	progress.Min = 0
	progress.Max = 100
	progress.TextFormatter = func() string { return "" }

	view := &Window{
		window:       window,
		controller:   controller,
		clockText:    clockText,
		statusLabel:  widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{}),
		summaryLabel: widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
		progress:     progress,
	}

	view.workButton = widget.NewButtonWithIcon(model.ModeWork.Label(), theme.ComputerIcon(), func() {
		view.controller.SelectMode(model.ModeWork)
	})
	view.breakButton = widget.NewButtonWithIcon(model.ModeBreak.Label(), theme.HistoryIcon(), func() {
		view.controller.SelectMode(model.ModeBreak)
	})
	view.toggleButton = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		view.controller.Toggle()
	})
	view.toggleButton.Importance = widget.HighImportance
	view.resetButton = widget.NewButtonWithIcon("", theme.MediaReplayIcon(), func() {
		view.controller.Reset()
	})

	content := container.NewVBox(
		container.NewCenter(container.NewHBox(view.workButton, view.breakButton)),
		clockText,
		view.statusLabel,
		progress,
		container.NewCenter(container.NewHBox(view.toggleButton, view.resetButton)),
		view.summaryLabel,
	)
	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(420, 360))

	view.Render(focus.Snapshot{Mode: model.ModeWork, Remaining: model.WorkDuration})
	return view
}

// Render updates every widget from snapshot. Call on the UI goroutine.
func (view *Window) Render(snapshot focus.Snapshot) {
	view.clockText.Text = snapshot.Clock()
	if snapshot.Mode == model.ModeBreak {
		view.clockText.Color = breakColor
	} else {
		view.clockText.Color = workColor
	}
	view.clockText.Refresh()

	view.statusLabel.SetText(statusText(snapshot))
	view.progress.SetValue(snapshot.Progress)

	if snapshot.Running {
		view.toggleButton.SetIcon(theme.MediaPauseIcon())
	} else {
		view.toggleButton.SetIcon(theme.MediaPlayIcon())
	}
	view.workButton.Importance = modeImportance(snapshot.Mode == model.ModeWork)
	view.breakButton.Importance = modeImportance(snapshot.Mode == model.ModeBreak)
	view.workButton.Refresh()
	view.breakButton.Refresh()
}

// SetSummary shows today's totals below the controls.
func (view *Window) SetSummary(summary model.DailySummary) {
	view.summaryLabel.SetText(SummaryText(summary))
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Window exposes the underlying fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

// SummaryText formats a daily summary for display.
func SummaryText(summary model.DailySummary) string {
	return fmt.Sprintf("Today: %d focus, %d breaks, %d min focused",
		summary.WorkIntervals, summary.BreakIntervals, int(summary.FocusTime.Minutes()))
}

func statusText(snapshot focus.Snapshot) string {
	if !snapshot.Running {
		return "Press play to start"
	}
	if snapshot.Mode == model.ModeBreak {
		return "Enjoy your break"
	}
	return "Stay focused"
}

func modeImportance(active bool) widget.Importance {
	if active {
		return widget.HighImportance
	}
	return widget.LowImportance
}
