package ui

import (
	"context"

	"portfolio/internal/photo"
	"portfolio/internal/portfolio"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	thumbCols = 12
	thumbRows = 6

	defaultEditorHeight = 24
	inputWidth          = 32
	descHeight          = 3
)

// EditorView is the portfolio page: it owns the portfolio state and the
// widgets that edit its drafts.
type EditorView struct {
	Portfolio *portfolio.Portfolio
	Focus     *FocusManager
	Tracer    oteltrace.Tracer

	skillInput textinput.Model
	titleInput textinput.Model
	descInput  textarea.Model
	viewport   viewport.Model

	anchors   Anchors
	active    Section
	photoView string
	width     int
	height    int
}

// Ensure EditorView implements View.
var _ View = (*EditorView)(nil)

// NewEditorView creates the page for p. A nil tracer records nothing.
func NewEditorView(p *portfolio.Portfolio, layout Layout, tracer oteltrace.Tracer) *EditorView {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}

	skill := textinput.New()
	skill.Placeholder = "Add new skill"
	skill.Width = inputWidth

	title := textinput.New()
	title.Placeholder = "Project Title"
	title.Width = inputWidth

	desc := textarea.New()
	desc.Placeholder = "Project Description"
	desc.ShowLineNumbers = false
	desc.SetWidth(inputWidth + 2)
	desc.SetHeight(descHeight)

	e := &EditorView{
		Portfolio:  p,
		Tracer:     tracer,
		skillInput: skill,
		titleInput: title,
		descInput:  desc,
		viewport:   viewport.New(defaultPageWidth, defaultEditorHeight),
		width:      defaultPageWidth,
		height:     defaultEditorHeight,
	}
	e.Focus = &FocusManager{
		Current:  FocusProfile,
		Order:    layout.FocusOrder(),
		OnChange: e.onFocusChange,
	}
	e.syncInputs()
	e.refresh()
	return e
}

// Init implements View.
func (e *EditorView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (e *EditorView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.Resize(msg.Width, msg.Height)
		return e, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		e.viewport, cmd = e.viewport.Update(msg)
		return e, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			e.Focus.Next()
			return e, textinput.Blink
		case "shift+tab":
			e.Focus.Prev()
			return e, textinput.Blink
		case "pgup", "pgdown":
			var cmd tea.Cmd
			e.viewport, cmd = e.viewport.Update(msg)
			return e, cmd
		case "ctrl+s":
			if sectionOf(e.Focus.Current) == SectionProjects {
				e.AddProject()
				return e, nil
			}
		case "enter":
			switch e.Focus.Current {
			case FocusProfile:
				return e, func() tea.Msg { return ShowPhotoPickerMsg{} }
			case FocusSkill:
				e.AddSkill()
				return e, nil
			case FocusProjectTitle:
				e.Focus.SetFocus(FocusProjectDesc)
				return e, textinput.Blink
			case FocusProjectAdd:
				e.AddProject()
				return e, nil
			}
		}
	}

	var cmd tea.Cmd
	switch e.Focus.Current {
	case FocusSkill:
		e.skillInput, cmd = e.skillInput.Update(msg)
		e.Portfolio.SetNewSkill(e.skillInput.Value())
	case FocusProjectTitle:
		e.titleInput, cmd = e.titleInput.Update(msg)
		e.Portfolio.SetProjectTitle(e.titleInput.Value())
	case FocusProjectDesc:
		e.descInput, cmd = e.descInput.Update(msg)
		e.Portfolio.SetProjectDescription(e.descInput.Value())
	}
	e.refresh()
	return e, cmd
}

// View implements View.
func (e *EditorView) View() string {
	return e.viewport.View()
}

// Mode reports whether keys currently type into a field.
func (e *EditorView) Mode() AppMode {
	if isTextTarget(e.Focus.Current) {
		return ModeInput
	}
	return ModeBrowse
}

// ActiveSection is the section last focused or jumped to.
func (e *EditorView) ActiveSection() Section {
	return e.active
}

// Anchors returns the line offset of each section in the main column.
func (e *EditorView) Anchors() Anchors {
	return e.anchors
}

// YOffset is the current scroll position of the main column.
func (e *EditorView) YOffset() int {
	return e.viewport.YOffset
}

// Resize fits the main column to w x h cells.
func (e *EditorView) Resize(w, h int) {
	e.width, e.height = w, h
	e.viewport.Width = w
	e.viewport.Height = h
	e.refresh()
}

// JumpTo scrolls to s and focuses its first target.
func (e *EditorView) JumpTo(s Section) {
	if target, ok := firstTarget(s); ok && target != e.Focus.Current {
		e.Focus.SetFocus(target)
	}
	e.scrollTo(s)
}

// AddSkill runs the skill adder and resets the input on success.
func (e *EditorView) AddSkill() bool {
	_, span := e.Tracer.Start(context.Background(), "portfolio.add_skill")
	defer span.End()

	ok := e.Portfolio.AddSkill()
	span.SetAttributes(
		attribute.Bool("portfolio.accepted", ok),
		attribute.Int("portfolio.skills", len(e.Portfolio.Skills)),
	)
	if ok {
		e.syncInputs()
	}
	e.refresh()
	return ok
}

// AddProject runs the project adder and resets the inputs on success.
func (e *EditorView) AddProject() bool {
	_, span := e.Tracer.Start(context.Background(), "portfolio.add_project")
	defer span.End()

	ok := e.Portfolio.AddProject()
	span.SetAttributes(
		attribute.Bool("portfolio.accepted", ok),
		attribute.Int("portfolio.projects", len(e.Portfolio.Projects)),
	)
	if ok {
		e.syncInputs()
	}
	e.refresh()
	return ok
}

// SetPhoto shows ref as the profile photo and returns the reference it
// replaced. The caller releases the returned reference. It decodes the
// image in the caller's goroutine; ShowPhoto takes a prepared thumbnail.
func (e *EditorView) SetPhoto(ref *photo.Ref) *photo.Ref {
	if ref == nil {
		return e.ShowPhoto(nil, "")
	}
	return e.ShowPhoto(ref, RenderPhoto(ref))
}

// ShowPhoto is SetPhoto with the thumbnail already rendered by RenderPhoto.
func (e *EditorView) ShowPhoto(ref *photo.Ref, thumbnail string) *photo.Ref {
	_, span := e.Tracer.Start(context.Background(), "portfolio.set_photo")
	defer span.End()

	prev := e.Portfolio.SetPhoto(ref)
	span.SetAttributes(attribute.Bool("portfolio.accepted", ref != nil))
	if ref != nil {
		span.SetAttributes(attribute.String("portfolio.photo.id", ref.ID))
		e.photoView = thumbnail
	}
	e.refresh()
	return prev
}

// RenderPhoto decodes ref and draws its thumbnail, or a broken-image
// marker when the bytes are not a decodable image.
func RenderPhoto(ref *photo.Ref) string {
	img, err := ref.Image()
	if err != nil {
		return Styles.Empty.Render("⚠ image unavailable")
	}
	return photo.RenderThumbnail(img, thumbCols, thumbRows)
}

// syncInputs copies the drafts into the widgets.
func (e *EditorView) syncInputs() {
	e.skillInput.SetValue(e.Portfolio.NewSkill)
	e.titleInput.SetValue(e.Portfolio.NewProject.Title)
	e.descInput.SetValue(e.Portfolio.NewProject.Description)
}

func (e *EditorView) onFocusChange(from, to string) {
	e.skillInput.Blur()
	e.titleInput.Blur()
	e.descInput.Blur()
	switch to {
	case FocusSkill:
		e.skillInput.Focus()
	case FocusProjectTitle:
		e.titleInput.Focus()
	case FocusProjectDesc:
		e.descInput.Focus()
	}
	e.refresh()
	e.scrollTo(sectionOf(to))
}

func (e *EditorView) scrollTo(s Section) {
	e.active = s
	e.viewport.SetYOffset(e.anchors[s])
}

// refresh re-renders the main column into the viewport.
func (e *EditorView) refresh() {
	content, anchors := RenderMain(Page{
		Portfolio:         e.Portfolio.Snapshot(),
		PhotoView:         e.photoView,
		Focus:             e.Focus.Current,
		SkillInput:        e.skillInput.View(),
		ProjectTitleInput: e.titleInput.View(),
		ProjectDescInput:  e.descInput.View(),
		Width:             e.width,
	})
	e.anchors = anchors
	e.viewport.SetContent(content)
}
