package theme

import "github.com/charmbracelet/lipgloss"

var (
	BaseBg       = lipgloss.Color("#11111b")
	PanelBg      = lipgloss.Color("#1e1e2e")
	SurfaceBg    = lipgloss.Color("#313244")
	Accent       = lipgloss.Color("#cba6f7")
	Accent2      = lipgloss.Color("#89b4fa")
	Teal         = lipgloss.Color("#94e2d5")
	Peach        = lipgloss.Color("#fab387")
	SuccessColor = lipgloss.Color("#a6e3a1")
	WarnColor    = lipgloss.Color("#f9e2af")
	ErrorColor   = lipgloss.Color("#f38ba8")
	TextColor    = lipgloss.Color("#cdd6f4")
	SubTextColor = lipgloss.Color("#a6adc8")
	DimColor     = lipgloss.Color("#6c7086")
	OverlayColor = lipgloss.Color("#45475a")
	Flamingo     = lipgloss.Color("#f5c2e7")
)

var (
	DimStyle = lipgloss.NewStyle().
			Foreground(DimColor)
	KeyStyle = lipgloss.NewStyle().
			Foreground(Teal).
			Bold(true)
	SurfaceStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(OverlayColor)
	StatusStyle = lipgloss.NewStyle().
			Foreground(SubTextColor).
			Padding(0, 1)
)

var PanelBorder = lipgloss.RoundedBorder()

// CellStyle is the look of a materialized, unselected cell.
var CellStyle = lipgloss.NewStyle().
	Border(PanelBorder).
	BorderForeground(SurfaceBg).
	Foreground(TextColor).
	Align(lipgloss.Center)

// selectedStyles maps the configurable selected class to a cell style.
var selectedStyles = map[string]lipgloss.Style{
	"select": CellStyle.
		BorderForeground(SuccessColor).
		Foreground(SuccessColor).
		Bold(true),
	"focus": CellStyle.
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(Teal).
		Foreground(Teal).
		Bold(true),
	"accent": CellStyle.
		BorderForeground(Accent).
		Background(SurfaceBg).
		Foreground(Flamingo).
		Bold(true),
}

// SelectedStyle returns the style registered for class, falling back to
// "select".
func SelectedStyle(class string) lipgloss.Style {
	if s, ok := selectedStyles[class]; ok {
		return s
	}
	return selectedStyles["select"]
}

// SelectedClasses lists the known selected classes.
func SelectedClasses() []string {
	return []string{"select", "focus", "accent"}
}

var Logo = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true).Render("▲ ") +
	lipgloss.NewStyle().Foreground(Flamingo).Bold(true).Render("ke") +
	lipgloss.NewStyle().Foreground(Accent).Bold(true).Render("ca") +
	lipgloss.NewStyle().Foreground(Accent2).Bold(true).Render("p")
