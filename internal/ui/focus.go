package ui

// Focus targets on the portfolio page.
const (
	FocusProfile      = "profile"             // Upload Photo affordance
	FocusSkill        = "skill"               // new skill input
	FocusProjectTitle = "project-title"       // draft project title
	FocusProjectDesc  = "project-description" // draft project description
	FocusProjectAdd   = "project-add"         // Add Project button
)

// isTextTarget reports whether id is a text field (keys type into it).
func isTextTarget(id string) bool {
	switch id {
	case FocusSkill, FocusProjectTitle, FocusProjectDesc:
		return true
	}
	return false
}

// FocusManager tracks and rotates focus across targets.
type FocusManager struct {
	Current  string   // ID of the currently focused target
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

// Next advances focus to the next target in order.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous target in order.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := -1
	for i, id := range f.Order {
		if id == f.Current {
			idx = i
			break
		}
	}
	next := idx + delta
	if idx < 0 && delta < 0 {
		next = len(f.Order) - 1
	}
	next = (next + len(f.Order)) % len(f.Order)
	f.change(f.Order[next])
	return f.Current
}

// SetFocus sets focus to the given target ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.change(id)
			return true
		}
	}
	return false
}

func (f *FocusManager) change(to string) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
