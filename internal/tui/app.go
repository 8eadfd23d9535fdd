package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nicobailon/kecap/internal/config"
	"github.com/nicobailon/kecap/internal/grid"
	"github.com/nicobailon/kecap/internal/tui/theme"
)

type model struct {
	cfg    *config.Config
	mgr    *grid.Manager[*Cell]
	canvas *canvas
	input  *keySource
	keys   keyMap
	help   help.Model
	vp     viewport.Model
	width  int
	height int
	toast  *toast
}

type App struct {
	cfg  *config.Config
	opts grid.Options
}

func New(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := cfg.GridOptions()
	if err != nil {
		return nil, err
	}
	if !slices.Contains(theme.SelectedClasses(), cfg.SelectedClass) {
		return nil, fmt.Errorf("unknown selected class %q (want one of %s)",
			cfg.SelectedClass, strings.Join(theme.SelectedClasses(), ", "))
	}
	return &App{cfg: cfg, opts: opts}, nil
}

func (a *App) Run() error {
	m, err := initialModel(a.cfg, a.opts)
	if err != nil {
		return err
	}
	defer m.mgr.Detach()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func initialModel(cfg *config.Config, opts grid.Options) (model, error) {
	cells := NewCells(opts.ItemRows, opts.ItemCols, cfg.CellWidth, cfg.CellHeight)
	mgr, err := grid.New(opts, cells)
	if err != nil {
		return model{}, err
	}
	cv := newCanvas(opts.ItemRows, opts.ItemCols, opts.Gap, cells, cfg.SelectedClass)
	input := newKeySource()
	if err := mgr.Attach(cv, input); err != nil {
		return model{}, err
	}

	w, h := cv.surfaceSize(opts.ViewportRows, opts.ViewportCols)
	return model{
		cfg:    cfg,
		mgr:    mgr,
		canvas: cv,
		input:  input,
		keys:   defaultKeyMap(),
		help:   help.New(),
		vp:     viewport.New(w, h),
	}, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return handleResize(&m, msg)
	case toastExpiredMsg:
		return handleToastExpired(&m)
	case tea.KeyMsg:
		if d, ok := m.keys.direction(msg); ok {
			return handleMove(&m, d)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return handleQuit(&m)
		case key.Matches(msg, m.keys.Help):
			return handleHelp(&m)
		}
	}
	return m, nil
}

func (m model) View() string {
	opts := m.mgr.Options()
	header := lipgloss.NewStyle().Padding(1, 2, 0, 2).Render(
		theme.Logo + "  " + theme.DimStyle.Render(fmt.Sprintf("%dx%d grid, %dx%d viewport, %s",
			opts.ItemRows, opts.ItemCols, opts.ViewportRows, opts.ViewportCols, opts.Strategy)))

	surface := lipgloss.NewStyle().Padding(1, 2).Render(
		theme.SurfaceStyle.Render(m.canvas.View(m.vp)))

	sections := []string{header, surface, m.statusLine()}
	if m.toast != nil {
		sections = append(sections, lipgloss.NewStyle().Padding(0, 2).Render(m.toast.render()))
	}
	sections = append(sections, lipgloss.NewStyle().Padding(1, 2, 0, 2).Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m model) statusLine() string {
	cur := m.mgr.Cursor()
	view := m.mgr.ViewOrigin()
	win := m.mgr.Window()
	geom := m.mgr.Geometry()

	parts := []string{
		theme.KeyStyle.Render("cursor") + " " + fmt.Sprintf("%d,%d", cur.Row, cur.Col),
		theme.KeyStyle.Render("view") + " " + fmt.Sprintf("%d,%d", view.Row, view.Col),
		theme.KeyStyle.Render("window") + " " + fmt.Sprintf("r%d-%d c%d-%d", win.Row0, win.Row1-1, win.Col0, win.Col1-1),
		theme.KeyStyle.Render("loaded") + " " + fmt.Sprintf("%d/%d", m.canvas.materialized, geom.Len()),
	}
	if it := m.mgr.SelectedItem(); it != nil {
		parts = append(parts, theme.KeyStyle.Render("item")+" "+it.Handle().Label)
	}
	return theme.StatusStyle.Render(strings.Join(parts, theme.DimStyle.Render("  │  ")))
}
