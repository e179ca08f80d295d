package ui

import "portfolio/internal/photo"

// ShowPhotoPickerMsg opens the photo picker (Enter on Upload Photo, SPC u, ctrl+o).
type ShowPhotoPickerMsg struct{}

// PhotoSelectedMsg is sent when the user picks a file in the photo picker.
type PhotoSelectedMsg struct {
	Path string
}

// PhotoLoadedMsg carries the reference created for a picked file and its
// rendered thumbnail. Err is set when the file could not be read; no
// reference exists then.
type PhotoLoadedMsg struct {
	Ref       *photo.Ref
	Thumbnail string
	Err       error
}

// JumpToSectionMsg follows an in-page anchor (SPC g p/s/j/r).
type JumpToSectionMsg struct {
	Section Section
}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}
