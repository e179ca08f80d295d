package ui

import (
	"slices"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// LeaderSeq is the canonical name of the leader key in sequences.
const LeaderSeq = "SPC"

// binding is one registered key sequence.
type binding struct {
	cmd   tea.Cmd
	desc  string
	modes []AppMode // empty = every mode
}

func (b binding) appliesTo(mode AppMode) bool {
	return len(b.modes) == 0 || slices.Contains(b.modes, mode)
}

// KeybindRegistry maps key sequences to commands.
// Sequences use spacemacs notation: "SPC g s" is space, then g, then s.
// Single keys are written as Bubble Tea reports them: "q", "ctrl+o".
type KeybindRegistry struct {
	bindings map[string]binding
	labels   map[string]string // prefix -> submenu label
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings: make(map[string]binding),
		labels:   make(map[string]string),
	}
}

// Bind registers seq with no description, in every mode.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDescForMode(seq, cmd, "", nil)
}

// BindWithDesc registers seq with a help description, in every mode.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(seq, cmd, desc, nil)
}

// BindWithDescForMode registers seq for the given modes only.
// A nil cmd leaves the sequence unbound.
func (r *KeybindRegistry) BindWithDescForMode(seq string, cmd tea.Cmd, desc string, modes []AppMode) {
	n := normalizeSeq(seq)
	if cmd == nil {
		delete(r.bindings, n)
		return
	}
	r.bindings[n] = binding{cmd: cmd, desc: desc, modes: modes}
}

// Label names the submenu opened by prefix, e.g. Label("SPC g", "Go to").
func (r *KeybindRegistry) Label(prefix, label string) {
	r.labels[normalizeSeq(prefix)] = label
}

// Lookup returns the command bound to seq regardless of mode, or nil.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)].cmd
}

// LookupForMode returns the command bound to seq if it applies in mode.
func (r *KeybindRegistry) LookupForMode(seq string, mode AppMode) tea.Cmd {
	b, ok := r.bindings[normalizeSeq(seq)]
	if !ok || !b.appliesTo(mode) {
		return nil
	}
	return b.cmd
}

// HasPrefix reports whether a longer sequence than seq is bound in mode.
func (r *KeybindRegistry) HasPrefix(seq string, mode AppMode) bool {
	prefix := normalizeSeq(seq) + " "
	for s, b := range r.bindings {
		if strings.HasPrefix(s, prefix) && b.appliesTo(mode) {
			return true
		}
	}
	return false
}

// Hint is one entry of the help bar: the next key and what it does.
type Hint struct {
	Key  string
	Desc string
}

// LeaderHints lists the keys that may follow seq in mode, sorted by key.
// An empty seq means just after SPC. Keys that open a submenu show the
// prefix label, or the key followed by an ellipsis when none is set.
func (r *KeybindRegistry) LeaderHints(seq string, mode AppMode) []Hint {
	if seq == "" {
		seq = LeaderSeq
	}
	prefix := normalizeSeq(seq) + " "

	seen := make(map[string]string)
	for s, b := range r.bindings {
		if !strings.HasPrefix(s, prefix) || !b.appliesTo(mode) {
			continue
		}
		next, rest, more := strings.Cut(strings.TrimPrefix(s, prefix), " ")
		switch {
		case more && rest != "":
			if label, ok := r.labels[prefix+next]; ok {
				seen[next] = label
			} else {
				seen[next] = next + "…"
			}
		case b.desc != "":
			seen[next] = b.desc
		default:
			seen[next] = s
		}
	}

	hints := make([]Hint, 0, len(seen))
	for k, d := range seen {
		hints = append(hints, Hint{Key: k, Desc: d})
	}
	sort.Slice(hints, func(i, j int) bool { return hints[i].Key < hints[j].Key })
	return hints
}

// normalizeSeq rewrites space in any of its spellings to SPC and
// collapses runs of whitespace.
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	if seq != "" && strings.TrimSpace(seq) == "" {
		parts = []string{LeaderSeq}
	}
	for i, p := range parts {
		if p == "space" {
			parts[i] = LeaderSeq
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler tracks an in-progress leader sequence and dispatches
// completed sequences through the registry.
type KeyHandler struct {
	Registry *KeybindRegistry
	// Mode reports the current mode; nil treats every binding as active.
	Mode func() AppMode

	LeaderWaiting bool
	Buffer        []string // sequence typed so far, starting with SPC
}

// NewKeyHandler creates a handler for reg with SPC as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

func (h *KeyHandler) mode() (AppMode, bool) {
	if h.Mode == nil {
		return 0, false
	}
	return h.Mode(), true
}

func (h *KeyHandler) lookup(seq string) tea.Cmd {
	if mode, ok := h.mode(); ok {
		return h.Registry.LookupForMode(seq, mode)
	}
	return h.Registry.Lookup(seq)
}

func (h *KeyHandler) hasPrefix(seq string) bool {
	if mode, ok := h.mode(); ok {
		return h.Registry.HasPrefix(seq, mode)
	}
	for s := range h.Registry.bindings {
		if strings.HasPrefix(s, normalizeSeq(seq)+" ") {
			return true
		}
	}
	return false
}

// Handle offers msg to the keybind system. consumed reports whether the
// key was taken; cmd is the bound command, if a sequence completed.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	part := keyToSeqPart(msg.String())

	if part == "esc" {
		if h.LeaderWaiting {
			h.Cancel()
			return true, nil
		}
		return false, nil
	}

	if !h.LeaderWaiting {
		if part == LeaderSeq {
			h.LeaderWaiting = true
			h.Buffer = []string{LeaderSeq}
			return true, nil
		}
		if c := h.lookup(part); c != nil {
			return true, c
		}
		return false, nil
	}

	h.Buffer = append(h.Buffer, part)
	seq := strings.Join(h.Buffer, " ")
	if c := h.lookup(seq); c != nil {
		h.Cancel()
		return true, c
	}
	if !h.hasPrefix(seq) {
		h.Cancel()
	}
	// Keys typed during a sequence never leak to the page.
	return true, nil
}

// Cancel leaves leader mode and clears the buffered sequence.
func (h *KeyHandler) Cancel() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// Sequence is the buffered leader sequence, e.g. "SPC g".
func (h *KeyHandler) Sequence() string {
	return strings.Join(h.Buffer, " ")
}

// keyToSeqPart converts a tea key string to a sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return LeaderSeq
	}
	return s
}
