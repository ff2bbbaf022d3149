package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"focusdesk/internal/clock"
	"focusdesk/internal/config"
	"focusdesk/internal/core/focus"
	"focusdesk/internal/core/model"
	"focusdesk/internal/platform"
	"focusdesk/internal/storage"
	"focusdesk/internal/ui/preferences"
	"focusdesk/internal/ui/timerview"
	"focusdesk/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/pflag"
)

const appName = "FocusDesk"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	flagSet := pflag.NewFlagSet("focusdesk", pflag.ContinueOnError)
	flagSet.StringVar(&env.LogLevel, "log-level", env.LogLevel, "log level (debug, info, warn, error)")
	flagSet.StringVar(&env.LogFormat, "log-format", env.LogFormat, "log format (text, json)")
	flagSet.StringVar(&env.HistoryPath, "history", env.HistoryPath, "history database file (overrides settings)")
	flagSet.DurationVar(&env.TickInterval, "tick", env.TickInterval, "countdown tick interval")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	logger, err := config.NewLogger(os.Stderr, env.LogLevel, env.LogFormat)
	if err != nil {
		return err
	}

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Info("already running, activating existing window")
			return platform.ActivateRunning(appName)
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		logger.Warn("load settings, using defaults", "error", err)
	}
	var currentSettings atomic.Pointer[preferences.Settings]
	currentSettings.Store(&settings)

	history := openHistory(logger, settings, env.HistoryPath)
	if history != nil {
		defer func() {
			if err := history.Close(); err != nil {
				logger.Warn("close history", "error", err)
			}
		}()
	}

	timer := focus.New(clock.Real(), focus.Config{TickInterval: env.TickInterval})
	defer timer.Close()

	fyneApp := app.NewWithID("com.focusdesk.app")
	timerview.ApplyTheme(fyneApp, settings.DarkMode)

	view := timerview.New(fyneApp, timer)
	refreshSummary(logger, history, view)

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		previous := currentSettings.Swap(&updated)
		if err := storage.SaveSettings(appName, updated); err != nil {
			logger.Error("save settings", "error", err)
		}
		timerview.ApplyTheme(fyneApp, updated.DarkMode)
		if previous.HistoryPath != updated.HistoryPath || previous.RecordHistory != updated.RecordHistory {
			logger.Info("history settings take effect after restart")
		}
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        view.Show,
			OnToggle:      timer.Toggle,
			OnReset:       timer.Reset,
			OnSelectMode:  timer.SelectMode,
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
		view.Window().SetCloseIntercept(func() {
			view.Window().Hide()
		})
	} else {
		logger.Info("system tray unsupported on this platform")
		view.Window().SetMaster()
	}

	guard.ServeActivations(func() {
		fyne.Do(view.Show)
	})

	events := timer.Subscribe(16)
	go func() {
		for event := range events {
			handleEvent(logger, event, currentSettings.Load(), history, fyneApp, view, trayManager)
		}
	}()

	logger.Info("focusdesk started", "tick", env.TickInterval)
	view.Show()
	fyneApp.Run()
	logger.Info("focusdesk stopped")
	return nil
}

func openHistory(logger *slog.Logger, settings preferences.Settings, override string) *storage.HistoryStore {
	if !settings.RecordHistory {
		return nil
	}
	if override != "" {
		settings.HistoryPath = override
	}
	path, err := storage.HistoryPath(appName, settings)
	if err != nil {
		logger.Warn("resolve history path", "error", err)
		return nil
	}
	history, err := storage.OpenHistory(path)
	if err != nil {
		logger.Warn("open history, completed intervals will not be recorded", "path", path, "error", err)
		return nil
	}
	logger.Debug("history opened", "path", path)
	return history
}

// handleEvent runs on the subscriber goroutine. Storage work happens here;
// widget updates are handed to the UI goroutine.
func handleEvent(logger *slog.Logger, event focus.Event, settings *preferences.Settings, history *storage.HistoryStore, fyneApp fyne.App, view *timerview.Window, trayManager *tray.Manager) {
	var summary *model.DailySummary
	if event.Type == focus.EventIntervalEnded {
		logger.Info("interval ended", "mode", event.Ended, "planned", event.Planned)
		if history != nil && settings.RecordHistory {
			summary = recordInterval(logger, history, event)
		}
	}

	fyne.Do(func() {
		view.Render(event.Snapshot)
		if trayManager != nil {
			trayManager.Update(event.Snapshot)
		}
		if summary != nil {
			view.SetSummary(*summary)
		}
		if event.Type == focus.EventIntervalEnded && settings.NotifyOnComplete {
			fyneApp.SendNotification(completionNotification(event.Ended))
		}
	})
}

func recordInterval(logger *slog.Logger, history *storage.HistoryStore, event focus.Event) *model.DailySummary {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := history.RecordInterval(ctx, model.IntervalRecord{
		Mode:    event.Ended,
		Planned: event.Planned,
		EndedAt: event.At,
	})
	if err != nil {
		logger.Error("record interval", "error", err)
		return nil
	}
	summary, err := history.SummarizeDay(ctx, event.At.Local())
	if err != nil {
		logger.Error("summarize day", "error", err)
		return nil
	}
	return &summary
}

func refreshSummary(logger *slog.Logger, history *storage.HistoryStore, view *timerview.Window) {
	if history == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	summary, err := history.SummarizeDay(ctx, time.Now())
	if err != nil {
		logger.Warn("summarize day", "error", err)
		return
	}
	view.SetSummary(summary)
}

func completionNotification(ended model.Mode) *fyne.Notification {
	if ended == model.ModeWork {
		return fyne.NewNotification("Focus interval finished", "Time for a short break.")
	}
	return fyne.NewNotification("Break is over", "Time to get back to work.")
}
