// Package ui holds the transient notice line shown at the bottom of the TUI.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pokedex-cli/pokedex/icon"
	"github.com/pokedex-cli/pokedex/style"
	"github.com/pokedex-cli/pokedex/util"
)

// noticeLifetime is how long a notice stays on screen.
const noticeLifetime = 5 * time.Second

// NoticeMsg carries a notice into the Bubble Tea loop.
type NoticeMsg struct {
	Text string
	Warn bool
}

// clearMsg expires the notice that was shown at the given generation.
type clearMsg struct {
	generation int
}

// Model displays one notice at a time. Notices arriving while one is shown
// are queued in arrival order.
type Model struct {
	notice     NoticeMsg
	queue      []NoticeMsg
	generation int
}

// Notify returns a command delivering an informational notice.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg{Text: text}
	}
}

// Warn returns a command delivering a warning notice.
func Warn(text string) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg{Text: text, Warn: true}
	}
}

// FetchFailures reports entries that could not be loaded.
func FetchFailures(n int) tea.Cmd {
	if n == 0 {
		return nil
	}
	return Warn(fmt.Sprintf("%s could not be loaded", util.Quantify(n, "entry", "entries")))
}

// UnmappedTypes reports type labels rendered with the fallback color.
func UnmappedTypes(labels []string) tea.Cmd {
	if len(labels) == 0 {
		return nil
	}
	return Warn("no color for type " + strings.Join(labels, ", "))
}

// ThemeSaveFailed reports that the theme choice only applies to this session.
func ThemeSaveFailed() tea.Cmd {
	return Warn("theme could not be saved, it applies to this session only")
}

// Update processes notices and their expiry.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NoticeMsg:
		if m.notice.Text != "" {
			m.queue = append(m.queue, msg)
			return nil
		}
		return m.show(msg)
	case clearMsg:
		if msg.generation != m.generation {
			return nil
		}
		m.notice = NoticeMsg{}
		if len(m.queue) > 0 {
			next := m.queue[0]
			m.queue = m.queue[1:]
			return m.show(next)
		}
	}
	return nil
}

func (m *Model) show(notice NoticeMsg) tea.Cmd {
	m.notice = notice
	m.generation++
	generation := m.generation
	return tea.Tick(noticeLifetime, func(time.Time) tea.Msg {
		return clearMsg{generation: generation}
	})
}

// Text returns the current notice text, empty when none is shown.
func (m *Model) Text() string {
	return m.notice.Text
}

// View appends the notice to the last line of content.
func (m *Model) View(content string) string {
	if m.notice.Text == "" {
		return content
	}

	var rendered string
	if m.notice.Warn {
		rendered = style.Warning(icon.Get(icon.Warn) + " " + m.notice.Text)
	} else {
		rendered = style.Subtle(m.notice.Text)
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + rendered
	return strings.Join(lines, "\n")
}
