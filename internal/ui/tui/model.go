// Package tui is a terminal front end for the focus timer.
package tui

import (
	"fmt"
	"strings"

	"focusdesk/internal/core/focus"
	"focusdesk/internal/core/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Controller is the part of focus.Timer the terminal UI drives.
type Controller interface {
	Toggle()
	Reset()
	SelectMode(model.Mode)
	Snapshot() focus.Snapshot
}

const (
	defaultProgressWidth = 40
	maxProgressWidth     = 72
)

var (
	workStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E85D42"))
	breakStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#428CE8"))
	clockStyle  = lipgloss.NewStyle().Bold(true).Padding(1, 0)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E8BE42"))
	frameStyle  = lipgloss.NewStyle().Padding(1, 2)
)

type eventMsg struct {
	event focus.Event
}

type eventsClosedMsg struct{}

// Model implements tea.Model over a focus timer.
type Model struct {
	controller Controller
	events     <-chan focus.Event
	keys       KeyMap
	snapshot   focus.Snapshot
	progress   progress.Model
	notice     string
	quitting   bool
}

// NewModel creates a Model. events should be a subscription on the same
// timer that controller drives; it may be nil.
func NewModel(controller Controller, events <-chan focus.Event) Model {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = defaultProgressWidth
	return Model{
		controller: controller,
		events:     events,
		keys:       DefaultKeyMap,
		snapshot:   controller.Snapshot(),
		progress:   bar,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return listenForEvent(m.events)
}

// listenForEvent returns a tea.Cmd that blocks until the timer emits.
func listenForEvent(channel <-chan focus.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-channel
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg{event: event}
	}
}

// Update implements tea.Model.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return m.handleKey(message)
	case tea.WindowSizeMsg:
		width := message.Width - 4
		if width > maxProgressWidth {
			width = maxProgressWidth
		}
		if width > 0 {
			m.progress.Width = width
		}
		return m, nil
	case eventMsg:
		m.snapshot = message.event.Snapshot
		if message.event.Type == focus.EventIntervalEnded {
			m.notice = completionNotice(message.event.Ended)
		}
		return m, listenForEvent(m.events)
	case eventsClosedMsg:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(message, m.keys.Toggle):
		m.controller.Toggle()
		m.notice = ""
	case key.Matches(message, m.keys.Reset):
		m.controller.Reset()
		m.notice = ""
	case key.Matches(message, m.keys.Work):
		m.controller.SelectMode(model.ModeWork)
		m.notice = ""
	case key.Matches(message, m.keys.Break):
		m.controller.SelectMode(model.ModeBreak)
		m.notice = ""
	default:
		return m, nil
	}
	m.snapshot = m.controller.Snapshot()
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var builder strings.Builder
	builder.WriteString(renderModes(m.snapshot.Mode))
	builder.WriteString("\n")
	builder.WriteString(clockStyle.Render(m.snapshot.Clock()))
	builder.WriteString("\n")
	builder.WriteString(m.progress.ViewAs(m.snapshot.Progress / 100))
	builder.WriteString("\n\n")
	builder.WriteString(mutedStyle.Render(statusLine(m.snapshot)))
	if m.notice != "" {
		builder.WriteString("\n")
		builder.WriteString(noticeStyle.Render(m.notice))
	}
	builder.WriteString("\n\n")
	builder.WriteString(mutedStyle.Render(helpLine(m.keys)))
	return frameStyle.Render(builder.String())
}

func renderModes(active model.Mode) string {
	work := mutedStyle.Render(model.ModeWork.Label())
	brk := mutedStyle.Render(model.ModeBreak.Label())
	if active == model.ModeWork {
		work = workStyle.Render("[" + model.ModeWork.Label() + "]")
	} else {
		brk = breakStyle.Render("[" + model.ModeBreak.Label() + "]")
	}
	return work + "  " + brk
}

func statusLine(snapshot focus.Snapshot) string {
	if !snapshot.Running {
		return "paused"
	}
	if snapshot.Mode == model.ModeBreak {
		return "on a break"
	}
	return "focusing"
}

func completionNotice(ended model.Mode) string {
	if ended == model.ModeWork {
		return "Focus interval finished. Time for a short break."
	}
	return "Break is over. Back to work."
}

func helpLine(keys KeyMap) string {
	parts := make([]string, 0, len(keys.ShortHelp()))
	for _, binding := range keys.ShortHelp() {
		help := binding.Help()
		parts = append(parts, fmt.Sprintf("%s %s", help.Key, help.Desc))
	}
	return strings.Join(parts, " • ")
}
