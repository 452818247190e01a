// Package htmlsanitize strips unsafe markup from user-submitted text before
// it is stored or rendered.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var (
	// ugc keeps a conservative set of formatting tags for user content.
	ugc = bluemonday.UGCPolicy()

	// strict strips all markup, leaving plain text.
	strict = bluemonday.StrictPolicy()
)

// Sanitize removes scripts, event handlers, and other unsafe constructs
// while preserving basic formatting tags.
func Sanitize(s string) string {
	return ugc.Sanitize(s)
}

// PlainText strips all tags. Summary text is stored through this policy,
// since summaries are authored and displayed as plain text.
func PlainText(s string) string {
	return strict.Sanitize(s)
}
