package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for focused controls, borders
	ColorLink      = "33"  // Blue - for the upload affordance and pills
	ColorPillBg    = "17"  // Dark blue - pill background
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for very dim text
)

// Styles contains shared style definitions used across the page and modals.
var Styles = struct {
	NavTitle  lipgloss.Style // "My Portfolio"
	Nav       lipgloss.Style // Sidebar frame
	NavItem   lipgloss.Style
	NavActive lipgloss.Style

	Heading lipgloss.Style // Section headings
	Pill    lipgloss.Style // Skill label
	Card    lipgloss.Style // Project card frame

	CardTitle lipgloss.Style
	CardBody  lipgloss.Style

	Link        lipgloss.Style // Upload Photo affordance
	LinkFocused lipgloss.Style

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	Box     lipgloss.Style // Resume "Coming soon" box
	Muted   lipgloss.Style
	Hint    lipgloss.Style
	Empty   lipgloss.Style // Broken image marker
	Title   lipgloss.Style // Modal title
	Dialog  lipgloss.Style // Modal frame
	HelpBar lipgloss.Style // Leader key hints
}{
	NavTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		MarginBottom(1),
	Nav: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(1, 1),
	NavItem: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	NavActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Pill: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorLink)).
		Background(lipgloss.Color(ColorPillBg)).
		Padding(0, 1),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	CardTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	CardBody: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Link: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorLink)),
	LinkFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Underline(true),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	ButtonFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 2),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Dialog: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	HelpBar: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
}
