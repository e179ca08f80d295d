package ui

import (
	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
)

// PhotoPickerModal browses the filesystem for a profile photo.
// Any file may be picked; there is no type filter.
type PhotoPickerModal struct {
	picker filepicker.Model
	rows   int
}

// Ensure PhotoPickerModal implements View.
var _ View = (*PhotoPickerModal)(nil)

const (
	// pickerChrome is the rows the dialog draws around the file list:
	// margin, border and padding on both sides, title, directory, spacers,
	// hint, and the list's own trailing newline.
	pickerChrome    = 12
	minPickerRows   = 3
	defaultTermRows = 24
)

// pickerRows is how many files fit in a terminal termHeight rows tall.
func pickerRows(termHeight int) int {
	if termHeight <= 0 {
		termHeight = defaultTermRows
	}
	return max(termHeight-pickerChrome, minPickerRows)
}

// NewPhotoPickerModal creates a picker rooted at dir, sized for a terminal
// termHeight rows tall. Zero means the size is not known yet.
func NewPhotoPickerModal(dir string, termHeight int) *PhotoPickerModal {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AutoHeight = false
	m := &PhotoPickerModal{picker: fp}
	m.resize(termHeight)
	return m
}

func (m *PhotoPickerModal) resize(termHeight int) {
	m.rows = pickerRows(termHeight)
	m.picker.SetHeight(m.rows)
}

// Rows is the number of file entries the list shows at once.
func (m *PhotoPickerModal) Rows() int {
	return m.rows
}

// Init implements View.
func (m *PhotoPickerModal) Init() tea.Cmd {
	return m.picker.Init()
}

// Update implements View.
func (m *PhotoPickerModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	case tea.WindowSizeMsg:
		// Not forwarded: the picker would reset its window to the top rows
		// regardless of where the cursor is.
		m.resize(msg.Height)
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		return m, tea.Batch(cmd, func() tea.Msg { return PhotoSelectedMsg{Path: path} })
	}
	return m, cmd
}

// View implements View.
func (m *PhotoPickerModal) View() string {
	content := Styles.Title.Render("Upload Photo") + "\n"
	content += Styles.Muted.Render(m.picker.CurrentDirectory) + "\n\n"
	content += m.picker.View() + "\n\n"
	content += Styles.Hint.Render("Enter: select  ←/h: up a directory  Esc: cancel")
	return Styles.Dialog.Render(content)
}
