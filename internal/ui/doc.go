// Package ui renders the portfolio editor with Bubble Tea.
//
// The page is one EditorView (photo uploader, skill adder, project adder,
// resume placeholder) next to an anchor sidebar. Modals such as the photo
// picker sit on an OverlayStack and receive input first. Global commands go
// through a spacemacs-style KeybindRegistry with SPC as leader, which is only
// live while focus is on a button rather than a text field.
package ui
