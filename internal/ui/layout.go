package ui

// BoundsFunc returns a panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel is a bounded region of the screen.
type Panel struct {
	ID     string
	Bounds BoundsFunc
}

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string // Tab order for focus
}

const (
	PanelNav  = "nav"
	PanelMain = "main"

	// NavWidth is the fixed width of the anchor sidebar.
	NavWidth = 22
	// minMainWidth keeps the main column usable on narrow terminals.
	minMainWidth = 30
)

// PageLayout is the two-column portfolio page: a fixed sidebar and the
// scrollable main column.
type PageLayout struct{}

// Ensure PageLayout implements Layout.
var _ Layout = PageLayout{}

// Panels implements Layout.
func (PageLayout) Panels() []Panel {
	return []Panel{
		{
			ID: PanelNav,
			Bounds: func(width, height int) (int, int, int, int) {
				return 0, 0, NavWidth, height
			},
		},
		{
			ID: PanelMain,
			Bounds: func(width, height int) (int, int, int, int) {
				w := width - NavWidth
				if w < minMainWidth {
					w = minMainWidth
				}
				return NavWidth, 0, w, height
			},
		},
	}
}

// FocusOrder implements Layout.
func (PageLayout) FocusOrder() []string {
	return []string{FocusProfile, FocusSkill, FocusProjectTitle, FocusProjectDesc, FocusProjectAdd}
}

// PanelSize returns the width and height of the panel with id, or zeros.
func PanelSize(l Layout, id string, width, height int) (int, int) {
	for _, p := range l.Panels() {
		if p.ID == id {
			_, _, w, h := p.Bounds(width, height)
			return w, h
		}
	}
	return 0, 0
}
