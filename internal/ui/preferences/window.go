package preferences

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window      fyne.Window
	settings    Settings
	onSave      func(Settings)
	notify      *widget.Check
	history     *widget.Check
	darkMode    *widget.Check
	historyPath *widget.Entry
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("FocusDesk Settings")

	notify := widget.NewCheck("Notify when an interval ends", nil)
	history := widget.NewCheck("Keep a history of completed intervals", nil)
	darkMode := widget.NewCheck("Dark mode", nil)
	historyPath := widget.NewEntry()
	historyPath.SetPlaceHolder("default location")

	form := container.NewVBox(
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		notify,
		darkMode,
		widget.NewLabelWithStyle("History", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		history,
		container.NewBorder(nil, nil, widget.NewLabel("Database file"), nil, historyPath),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 260))

	prefs := &Window{
		window:      window,
		onSave:      onSave,
		notify:      notify,
		history:     history,
		darkMode:    darkMode,
		historyPath: historyPath,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
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

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.notify.SetChecked(settings.NotifyOnComplete)
	prefs.history.SetChecked(settings.RecordHistory)
	prefs.darkMode.SetChecked(settings.DarkMode)
	prefs.historyPath.SetText(settings.HistoryPath)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.NotifyOnComplete = prefs.notify.Checked
	settings.RecordHistory = prefs.history.Checked
	settings.DarkMode = prefs.darkMode.Checked
	settings.HistoryPath = strings.TrimSpace(prefs.historyPath.Text)

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}
