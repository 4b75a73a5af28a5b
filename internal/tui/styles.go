package tui

import "github.com/charmbracelet/lipgloss"

// Static styles for content elements
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	GreenCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1E824C"))

	RedCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#B0413E"))

	BlackCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2C3E50"))

	OutsideCellStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#14532D"))

	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#FFD700")).
			Bold(true)

	ToggledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#96CEB4")).
			Bold(true)

	MemberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Background(lipgloss.Color("#14532D")).
			Underline(true)

	TotalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	SummaryHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#96CEB4")).
				Bold(true)

	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FFD700")).
			Padding(1, 4).
			Bold(true)

	LoseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// chipColors is the presentation lookup for chip denominations. It is
// a lookup table only; nothing downstream depends on the choices.
var chipColors = map[int]lipgloss.Color{
	1:    "#FAFAFA",
	5:    "#FF6B6B",
	10:   "#4A90D9",
	25:   "#96CEB4",
	50:   "#FFA94D",
	100:  "#B0B0B0",
	500:  "#7D56F4",
	1000: "#FFEAA7",
}

// plateColors covers the two plate denominations.
var plateColors = map[int]lipgloss.Color{
	5000:  "#20B2AA",
	10000: "#FFD700",
}

// DenomStyle returns the style for a chip or plate denomination.
// Unknown values fall back to plain white.
func DenomStyle(value int, plate bool) lipgloss.Style {
	colors := chipColors
	if plate {
		colors = plateColors
	}
	color, ok := colors[value]
	if !ok {
		color = "#FAFAFA"
	}
	return lipgloss.NewStyle().Foreground(color).Bold(plate)
}
