package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nicobailon/kecap/internal/grid"
)

func handleMove(m *model, d grid.Direction) (tea.Model, tea.Cmd) {
	before := m.mgr.Cursor()
	scrolls := m.canvas.scrolls
	m.input.dispatch(d)
	after := m.mgr.Cursor()

	log.Printf("move %s cursor=%v view=%v scrolled=%v", d, after, m.mgr.ViewOrigin(), m.canvas.scrolls != scrolls)

	if after == before {
		m.toast = newToast("edge of grid ("+d.String()+")", toastWarning)
		return *m, toastExpireCmd()
	}
	return *m, nil
}

func handleHelp(m *model) (tea.Model, tea.Cmd) {
	m.help.ShowAll = !m.help.ShowAll
	return *m, nil
}

func handleQuit(m *model) (tea.Model, tea.Cmd) {
	m.mgr.Detach()
	log.Printf("detached, %d subscribers left", m.input.Subscribers())
	return *m, tea.Quit
}

func handleResize(m *model, msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	return *m, nil
}

func handleToastExpired(m *model) (tea.Model, tea.Cmd) {
	if m.toast != nil && m.toast.expired() {
		m.toast = nil
	}
	return *m, nil
}
