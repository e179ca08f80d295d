package ui

import (
	"strings"

	"portfolio/internal/portfolio"
	"portfolio/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

// Section is an in-page anchor target.
type Section int

const (
	SectionProfile Section = iota
	SectionSkills
	SectionProjects
	SectionResume
)

// Sections lists every section in page order.
var Sections = []Section{SectionProfile, SectionSkills, SectionProjects, SectionResume}

func (s Section) String() string {
	switch s {
	case SectionProfile:
		return "Profile"
	case SectionSkills:
		return "Skills"
	case SectionProjects:
		return "Projects"
	case SectionResume:
		return "Resume"
	default:
		return "Unknown"
	}
}

// Anchor returns the in-page anchor name, e.g. "#skills".
func (s Section) Anchor() string {
	return "#" + strings.ToLower(s.String())
}

// sectionOf maps a focus target to the section that contains it.
func sectionOf(focusID string) Section {
	switch focusID {
	case FocusSkill:
		return SectionSkills
	case FocusProjectTitle, FocusProjectDesc, FocusProjectAdd:
		return SectionProjects
	default:
		return SectionProfile
	}
}

// firstTarget returns the first focus target inside s, if it has one.
func firstTarget(s Section) (string, bool) {
	switch s {
	case SectionProfile:
		return FocusProfile, true
	case SectionSkills:
		return FocusSkill, true
	case SectionProjects:
		return FocusProjectTitle, true
	}
	return "", false
}

// Anchors maps each section to the first line it occupies in the main column.
type Anchors map[Section]int

const (
	defaultPageWidth = 80
	minCardWidth     = 28
	cardGap          = 1

	resumeHint   = "Add downloadable link or embedded resume preview here."
	resumeStatus = "Coming soon..."
)

// Page is everything the main column is drawn from. Widget fields hold the
// already-rendered views of the draft inputs.
type Page struct {
	Portfolio         portfolio.Snapshot
	PhotoView         string // rendered thumbnail; empty when no photo is set
	Focus             string
	SkillInput        string
	ProjectTitleInput string
	ProjectDescInput  string
	Width             int
}

// RenderMain draws the main column. Output depends only on p.
func RenderMain(p Page) (string, Anchors) {
	width := p.Width
	if width <= 0 {
		width = defaultPageWidth
	}
	blocks := []struct {
		section Section
		body    string
	}{
		{SectionProfile, renderProfile(p)},
		{SectionSkills, renderSkills(p, width)},
		{SectionProjects, renderProjects(p, width)},
		{SectionResume, renderResume()},
	}

	anchors := make(Anchors, len(blocks))
	parts := make([]string, 0, len(blocks))
	line := 0
	for _, b := range blocks {
		anchors[b.section] = line
		parts = append(parts, b.body)
		line += lipgloss.Height(b.body) + 1
	}
	return strings.Join(parts, "\n\n"), anchors
}

func renderProfile(p Page) string {
	link := Styles.Link
	if p.Focus == FocusProfile {
		link = Styles.LinkFocused
	}
	upload := link.Render("⇪ Upload Photo")

	row := upload
	if p.PhotoView != "" {
		row = lipgloss.JoinHorizontal(lipgloss.Center, p.PhotoView, "  ", upload)
	}
	return Styles.Heading.Render("Profile Photo") + "\n\n" + row
}

func renderSkills(p Page, width int) string {
	pills := make([]string, len(p.Portfolio.Skills))
	for i, s := range p.Portfolio.Skills {
		pills[i] = Styles.Pill.Render(textutil.Truncate(s, width-2))
	}

	var rows []string
	row := ""
	for _, pill := range pills {
		switch {
		case row == "":
			row = pill
		case lipgloss.Width(row)+1+lipgloss.Width(pill) <= width:
			row += " " + pill
		default:
			rows = append(rows, row)
			row = pill
		}
	}
	if row != "" {
		rows = append(rows, row)
	}

	add := button("+ Add", p.Focus == FocusSkill)
	input := lipgloss.JoinHorizontal(lipgloss.Center, p.SkillInput, " ", add)

	body := Styles.Heading.Render("Skills") + "\n\n"
	if len(rows) > 0 {
		body += strings.Join(rows, "\n") + "\n\n"
	}
	return body + input
}

func renderProjects(p Page, width int) string {
	perRow := 1
	cardWidth := width
	if width >= 2*minCardWidth+cardGap {
		perRow = 2
		cardWidth = (width - cardGap) / 2
	}

	cards := make([]string, len(p.Portfolio.Projects))
	for i, proj := range p.Portfolio.Projects {
		cards[i] = renderCard(proj, cardWidth)
	}

	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := i + perRow
		if end > len(cards) {
			end = len(cards)
		}
		group := cards[i:end]
		if len(group) == 1 {
			rows = append(rows, group[0])
			continue
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, group[0], strings.Repeat(" ", cardGap), group[1]))
	}

	draft := strings.Join([]string{
		p.ProjectTitleInput,
		p.ProjectDescInput,
		button("+ Add Project", p.Focus == FocusProjectAdd),
	}, "\n")

	body := Styles.Heading.Render("Projects") + "\n\n"
	if len(rows) > 0 {
		body += strings.Join(rows, "\n") + "\n\n"
	}
	return body + draft
}

func renderCard(proj portfolio.Project, width int) string {
	frame := Styles.Card.GetHorizontalFrameSize()
	inner := width - frame
	if inner < 1 {
		inner = 1
	}
	lines := []string{Styles.CardTitle.Render(textutil.Truncate(proj.Title, inner))}
	for _, l := range textutil.Wrap(proj.Description, inner) {
		lines = append(lines, Styles.CardBody.Render(l))
	}
	return Styles.Card.Width(width - Styles.Card.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

func renderResume() string {
	return Styles.Heading.Render("Resume") + "\n\n" +
		Styles.Muted.Render(resumeHint) + "\n" +
		Styles.Box.Render(resumeStatus)
}

func button(label string, focused bool) string {
	if focused {
		return Styles.ButtonFocused.Render(label)
	}
	return Styles.Button.Render(label)
}

// RenderNav draws the anchor sidebar with active highlighted.
func RenderNav(active Section, height int) string {
	inner := NavWidth - Styles.Nav.GetHorizontalFrameSize()
	lines := []string{Styles.NavTitle.Render(textutil.Truncate("My Portfolio", inner))}
	for _, s := range Sections {
		label := textutil.PadRightVisual("  "+s.String(), inner)
		if s == active {
			lines = append(lines, Styles.NavActive.Render(textutil.PadRightVisual("▸ "+s.String(), inner)))
			continue
		}
		lines = append(lines, Styles.NavItem.Render(label))
	}
	lines = append(lines, "", Styles.Hint.Render(textutil.Truncate("tab: next field", inner)))

	style := Styles.Nav.Width(NavWidth - Styles.Nav.GetHorizontalBorderSize())
	if h := height - Styles.Nav.GetVerticalBorderSize(); h > 0 {
		style = style.Height(h)
	}
	return style.Render(strings.Join(lines, "\n"))
}
