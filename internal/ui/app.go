package ui

import (
	"log"
	"strings"

	"portfolio/internal/photo"
	"portfolio/internal/portfolio"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Options configures NewAppModel.
type Options struct {
	PhotoDir string           // directory the photo picker opens in
	Photos   *photo.Registry  // nil creates a private registry
	Tracer   oteltrace.Tracer // nil records nothing
}

// AppModel is the root model: the portfolio page, its sidebar, and any
// modal stacked over the main column.
type AppModel struct {
	Editor     *EditorView
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Photos     *photo.Registry
	Layout     Layout
	PhotoDir   string

	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Editor.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		if a.Overlays.Len() > 0 {
			return a, a.Overlays.Update(msg)
		}
		return a, nil
	case ShowPhotoPickerMsg:
		if a.Overlays.Len() > 0 {
			return a, nil
		}
		if a.KeyHandler != nil {
			a.KeyHandler.Cancel()
		}
		modal := NewPhotoPickerModal(a.PhotoDir, a.height)
		a.Overlays.Push(modal)
		return a, modal.Init()
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case PhotoSelectedMsg:
		a.Overlays.Pop()
		return a, a.loadPhoto(msg.Path)
	case PhotoLoadedMsg:
		a.handlePhotoLoaded(msg)
		return a, nil
	case JumpToSectionMsg:
		a.Editor.JumpTo(msg.Section)
		return a, nil
	case tea.KeyMsg:
		// Keybind system (leader key, SPC-prefixed commands)
		if a.KeyHandler != nil && a.routesToKeybinds(msg) {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
		if a.Overlays.Len() > 0 {
			return a, a.Overlays.Update(msg)
		}
	}

	if a.Overlays.Len() > 0 {
		// Non-key messages (directory reads, cursor blinks) go to both.
		overlayCmd := a.Overlays.Update(msg)
		_, editorCmd := a.Editor.Update(msg)
		return a, tea.Batch(overlayCmd, editorCmd)
	}
	_, cmd := a.Editor.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	main := a.Overlays.Render(a.Editor.View())
	page := lipgloss.JoinHorizontal(lipgloss.Top, RenderNav(a.Editor.ActiveSection(), a.height), main)
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		page += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode())
	}
	return page
}

// Mode reports where key presses currently go.
func (m *AppModel) Mode() AppMode {
	if m.Overlays.Len() > 0 {
		return ModePicker
	}
	return m.Editor.Mode()
}

// routesToKeybinds decides whether msg is offered to the keybind system.
// Text fields and the picker keep plain keys; ctrl chords are always global.
func (m *AppModel) routesToKeybinds(msg tea.KeyMsg) bool {
	if m.KeyHandler.LeaderWaiting || strings.HasPrefix(msg.String(), "ctrl+") {
		return true
	}
	return m.Mode() == ModeBrowse
}

func (m *AppModel) resize(width, height int) {
	m.width, m.height = width, height
	w, h := PanelSize(m.Layout, PanelMain, width, height)
	m.Editor.Resize(w, h)
}

// loadPhoto reads, decodes and scales the picked file off the update loop.
func (m *AppModel) loadPhoto(path string) tea.Cmd {
	photos := m.Photos
	return func() tea.Msg {
		ref, err := photos.Create(path)
		if err != nil {
			return PhotoLoadedMsg{Err: err}
		}
		return PhotoLoadedMsg{Ref: ref, Thumbnail: RenderPhoto(ref)}
	}
}

func (m *AppModel) handlePhotoLoaded(msg PhotoLoadedMsg) {
	if msg.Err != nil {
		log.Printf("ui.handlePhotoLoaded: %v", msg.Err)
		return
	}
	thumbnail := msg.Thumbnail
	if thumbnail == "" {
		thumbnail = RenderPhoto(msg.Ref)
	}
	prev := m.Editor.ShowPhoto(msg.Ref, thumbnail)
	if prev != nil && m.Photos.Revoke(prev.ID) {
		log.Printf("ui.handlePhotoLoaded: replaced %s with %s", prev.ID, msg.Ref.ID)
	}
}

// Close releases every photo reference. Call once the program has exited.
func (m *AppModel) Close() {
	if m.Photos != nil {
		m.Photos.Close()
	}
}

// NewAppModel creates the root application model around a fresh portfolio.
func NewAppModel(opts Options) *AppModel {
	photos := opts.Photos
	if photos == nil {
		photos = photo.NewRegistry()
	}
	layout := PageLayout{}

	showPicker := func() tea.Msg { return ShowPhotoPickerMsg{} }
	jump := func(s Section) tea.Cmd {
		return func() tea.Msg { return JumpToSectionMsg{Section: s} }
	}
	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+o", showPicker, "Upload photo")
	reg.BindWithDescForMode("SPC u", showPicker, "Upload photo", []AppMode{ModeBrowse})
	reg.Label("SPC g", "Go to")
	reg.BindWithDesc("SPC g p", jump(SectionProfile), "Profile")
	reg.BindWithDesc("SPC g s", jump(SectionSkills), "Skills")
	reg.BindWithDesc("SPC g j", jump(SectionProjects), "Projects")
	reg.BindWithDesc("SPC g r", jump(SectionResume), "Resume")

	m := &AppModel{
		Editor:     NewEditorView(portfolio.New(), layout, opts.Tracer),
		KeyHandler: NewKeyHandler(reg),
		Photos:     photos,
		Layout:     layout,
		PhotoDir:   opts.PhotoDir,
	}
	m.KeyHandler.Mode = m.Mode
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
