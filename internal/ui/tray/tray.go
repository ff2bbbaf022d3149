package tray

import (
	"fmt"

	"focusdesk/internal/core/focus"
	"focusdesk/internal/core/model"

	"fyne.io/fyne/v2"
)

const menuTitle = "FocusDesk"

// Menu is the subset of desktop.App the tray needs.
type Menu interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggle      func()
	OnReset       func()
	OnSelectMode  func(model.Mode)
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        Menu
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	workItem   *fyne.MenuItem
	breakItem  *fyne.MenuItem
}

// New creates a tray manager with the provided callbacks.
func New(app Menu, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Focus 25:00", func() {
		call(manager.callbacks.OnShow)
	})
	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		call(manager.callbacks.OnToggle)
	})
	manager.workItem = fyne.NewMenuItem("Focus interval", func() {
		manager.selectMode(model.ModeWork)
	})
	manager.breakItem = fyne.NewMenuItem("Break interval", func() {
		manager.selectMode(model.ModeBreak)
	})

	manager.refreshMenu()
	return manager
}

// Update reflects snapshot in the status line and menu labels.
func (manager *Manager) Update(snapshot focus.Snapshot) {
	manager.statusItem.Label = StatusLabel(snapshot)
	if snapshot.Running {
		manager.toggleItem.Label = "Pause"
	} else {
		manager.toggleItem.Label = "Start"
	}
	manager.workItem.Checked = snapshot.Mode == model.ModeWork
	manager.breakItem.Checked = snapshot.Mode == model.ModeBreak
	manager.refreshMenu()
}

// StatusLabel formats the tray status line for snapshot.
func StatusLabel(snapshot focus.Snapshot) string {
	label := fmt.Sprintf("%s %s", snapshot.Mode.Label(), snapshot.Clock())
	if !snapshot.Running {
		label = fmt.Sprintf("%s (paused)", label)
	}
	return label
}

func (manager *Manager) selectMode(mode model.Mode) {
	if manager.callbacks.OnSelectMode != nil {
		manager.callbacks.OnSelectMode(mode)
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		fyne.NewMenuItem("Reset", func() {
			call(manager.callbacks.OnReset)
		}),
		manager.workItem,
		manager.breakItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", func() {
			call(manager.callbacks.OnPreferences)
		}),
		fyne.NewMenuItem("Quit", func() {
			call(manager.callbacks.OnQuit)
		}),
	))
}

func call(callback func()) {
	if callback != nil {
		callback()
	}
}
