package ui

import tea "github.com/charmbracelet/bubbletea"

// OverlayStack holds the modals drawn over the main column. Only the top
// one is shown and receives input.
type OverlayStack struct {
	views []View
}

// Push opens v above any current modal.
func (s *OverlayStack) Push(v View) {
	s.views = append(s.views, v)
}

// Pop closes the top modal and returns it.
func (s *OverlayStack) Pop() (View, bool) {
	v, ok := s.Top()
	if ok {
		s.views = s.views[:len(s.views)-1]
	}
	return v, ok
}

// Top returns the modal currently shown.
func (s *OverlayStack) Top() (View, bool) {
	if len(s.views) == 0 {
		return nil, false
	}
	return s.views[len(s.views)-1], true
}

// Len returns the number of open modals.
func (s *OverlayStack) Len() int {
	return len(s.views)
}

// Update passes msg to the top modal, keeping the View it returns.
// It returns nil when no modal is open.
func (s *OverlayStack) Update(msg tea.Msg) tea.Cmd {
	if len(s.views) == 0 {
		return nil
	}
	i := len(s.views) - 1
	var cmd tea.Cmd
	s.views[i], cmd = s.views[i].Update(msg)
	return cmd
}

// Render draws the top modal, or under when none is open.
func (s *OverlayStack) Render(under string) string {
	if v, ok := s.Top(); ok {
		return v.View()
	}
	return under
}
