package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nicobailon/kecap/internal/tui/theme"
)

type toastType int

const (
	toastInfo toastType = iota
	toastWarning
)

const toastDuration = 1500 * time.Millisecond

type toast struct {
	message   string
	kind      toastType
	expiresAt time.Time
}

func newToast(message string, kind toastType) *toast {
	return &toast{message: message, kind: kind, expiresAt: time.Now().Add(toastDuration)}
}

func (t *toast) expired() bool {
	return time.Now().After(t.expiresAt)
}

type toastExpiredMsg struct{}

func toastExpireCmd() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

var (
	toastInfoStyle    = lipgloss.NewStyle().Foreground(theme.Accent2)
	toastWarningStyle = lipgloss.NewStyle().Foreground(theme.WarnColor)
)

func (t *toast) render() string {
	if t.kind == toastWarning {
		return toastWarningStyle.Render("! " + t.message)
	}
	return toastInfoStyle.Render("· " + t.message)
}
