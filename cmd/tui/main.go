// Command tui runs the focus timer in a terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"focusdesk/internal/clock"
	"focusdesk/internal/config"
	"focusdesk/internal/core/focus"
	"focusdesk/internal/core/model"
	"focusdesk/internal/storage"
	"focusdesk/internal/ui/tui"

	tea "github.com/charmbracelet/bubbletea"
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

	var logOutput string
	var noHistory bool
	flagSet := pflag.NewFlagSet("focusdesk-tui", pflag.ContinueOnError)
	flagSet.StringVar(&env.LogLevel, "log-level", env.LogLevel, "log level (debug, info, warn, error)")
	flagSet.StringVar(&env.LogFormat, "log-format", env.LogFormat, "log format (text, json)")
	flagSet.StringVar(&env.HistoryPath, "history", env.HistoryPath, "history database file (overrides settings)")
	flagSet.DurationVar(&env.TickInterval, "tick", env.TickInterval, "countdown tick interval")
	flagSet.StringVar(&logOutput, "log-output", "", "write log records to this file (the terminal is owned by the UI)")
	flagSet.BoolVar(&noHistory, "no-history", false, "do not record completed intervals")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	var logWriter io.Writer = io.Discard
	if logOutput != "" {
		file, err := os.OpenFile(logOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log output: %w", err)
		}
		defer file.Close()
		logWriter = file
	}
	logger, err := config.NewLogger(logWriter, env.LogLevel, env.LogFormat)
	if err != nil {
		return err
	}

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		logger.Warn("load settings, using defaults", "error", err)
	}

	var history *storage.HistoryStore
	if settings.RecordHistory && !noHistory {
		if env.HistoryPath != "" {
			settings.HistoryPath = env.HistoryPath
		}
		path, err := storage.HistoryPath(appName, settings)
		if err != nil {
			return err
		}
		history, err = storage.OpenHistory(path)
		if err != nil {
			return err
		}
		defer history.Close()
	}

	timer := focus.New(clock.Real(), focus.Config{TickInterval: env.TickInterval})
	defer timer.Close()

	if history != nil {
		recorded := timer.Subscribe(4)
		go recordCompletions(logger, history, recorded)
	}

	program := tea.NewProgram(tui.NewModel(timer, timer.Subscribe(16)), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

func recordCompletions(logger *slog.Logger, history *storage.HistoryStore, events <-chan focus.Event) {
	for event := range events {
		if event.Type != focus.EventIntervalEnded {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := history.RecordInterval(ctx, model.IntervalRecord{
			Mode:    event.Ended,
			Planned: event.Planned,
			EndedAt: event.At,
		})
		cancel()
		if err != nil {
			logger.Error("record interval", "error", err)
			continue
		}
		logger.Info("interval recorded", "mode", event.Ended)
	}
}
