// Package styles defines the lipgloss palette and shared styles for the
// deckfolio board. Two themes are available: the warm default booth
// palette and a high-contrast variant.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme holds the color palette rendered by the board.
type Theme struct {
	Name string

	Accent    lipgloss.Color // needle, focus ring, active elements
	Secondary lipgloss.Color // filled slider tracks, ON toggles
	Warning   lipgloss.Color // validation and reload problems
	Muted     lipgloss.Color // labels, inactive elements
	Surface   lipgloss.Color // panel backgrounds
	Text      lipgloss.Color // primary text
	Border    lipgloss.Color // panel borders
	LCD       lipgloss.Color // readout glyphs
	LCDDim    lipgloss.Color // readout background tint
}

// DefaultTheme is the amber-on-charcoal booth palette.
func DefaultTheme() Theme {
	return Theme{
		Name:      "default",
		Accent:    lipgloss.Color("#F59E0B"), // Amber
		Secondary: lipgloss.Color("#34D399"), // Green
		Warning:   lipgloss.Color("#F87171"), // Red
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Surface:   lipgloss.Color("#1F2937"), // Dark surface
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#6B7280"), // Gray
		LCD:       lipgloss.Color("#A3E635"), // Lime
		LCDDim:    lipgloss.Color("#1A2E05"), // Deep green
	}
}

// ContrastTheme swaps the palette for brighter, higher-contrast colors.
func ContrastTheme() Theme {
	return Theme{
		Name:      "contrast",
		Accent:    lipgloss.Color("#FFFFFF"),
		Secondary: lipgloss.Color("#00FF87"),
		Warning:   lipgloss.Color("#FF5F5F"),
		Muted:     lipgloss.Color("#D0D0D0"),
		Surface:   lipgloss.Color("#000000"),
		Text:      lipgloss.Color("#FFFFFF"),
		Border:    lipgloss.Color("#FFFFFF"),
		LCD:       lipgloss.Color("#00FF00"),
		LCDDim:    lipgloss.Color("#003300"),
	}
}

// ByName returns the theme for a config theme name, falling back to the
// default palette for unknown names.
func ByName(name string) Theme {
	if name == "contrast" {
		return ContrastTheme()
	}
	return DefaultTheme()
}

// Styles bundles the derived lipgloss styles for a theme.
type Styles struct {
	Theme Theme

	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Focused  lipgloss.Style
	Panel    lipgloss.Style
	LCDFrame lipgloss.Style
	LCDText  lipgloss.Style
	Needle   lipgloss.Style
	Fill     lipgloss.Style
	HelpBar  lipgloss.Style
	HelpKey  lipgloss.Style
	Status   lipgloss.Style
	Warning  lipgloss.Style
}

// New builds the style set for a theme.
func New(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		Label: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Value: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Text),

		Focused: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		LCDFrame: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Border).
			Background(theme.LCDDim).
			Padding(0, 1),

		LCDText: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.LCD).
			Background(theme.LCDDim),

		Needle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		Fill: lipgloss.NewStyle().
			Foreground(theme.Secondary),

		HelpBar: lipgloss.NewStyle().
			Foreground(theme.Muted),

		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Status: lipgloss.NewStyle().
			Foreground(theme.Text).
			Background(theme.Surface).
			Padding(0, 1),

		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Warning),
	}
}

// emphasisRamp orders gray shades from faint to bright. Terminal cells
// have no alpha channel, so panel opacity maps onto this ramp instead.
var emphasisRamp = []lipgloss.Color{
	"#4B5563",
	"#6B7280",
	"#9CA3AF",
	"#D1D5DB",
	"#F9FAFB",
}

// EmphasisText returns a foreground style whose brightness tracks an
// opacity value in [0.4, 1.0].
func (s Styles) EmphasisText(opacity float64) lipgloss.Style {
	if opacity >= 0.999 {
		return lipgloss.NewStyle().Foreground(s.Theme.Text)
	}
	idx := int((opacity - 0.4) / 0.6 * float64(len(emphasisRamp)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(emphasisRamp) {
		idx = len(emphasisRamp) - 1
	}
	return lipgloss.NewStyle().Foreground(emphasisRamp[idx])
}
