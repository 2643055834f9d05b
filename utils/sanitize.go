package utils

import "github.com/microcosm-cc/bluemonday"

// notesPolicy allows basic formatting markup in appointment notes while
// stripping scripts and event handlers.
var notesPolicy = bluemonday.UGCPolicy()

// SanitizeNotes strips unsafe HTML from user-authored appointment notes.
// Notes arrive as raw HTML from the remote API and must never be rendered
// without passing through here.
func SanitizeNotes(raw string) string {
	if raw == "" {
		return ""
	}
	return notesPolicy.Sanitize(raw)
}
