package ai

import (
	"strings"

	"ai_site_builder/internal/types"
)

const (
	pageOpen  = `<div class="min-h-screen bg-white">`
	pageClose = `</div>`
)

// AssembleFromSections builds a page body by joining section contents in
// order inside a single container.
func AssembleFromSections(sections []types.Section) string {
	contents := make([]string, len(sections))
	for i, s := range sections {
		contents[i] = s.Content
	}

	var b strings.Builder
	b.WriteString(pageOpen)
	b.WriteString("\n")
	if len(contents) > 0 {
		b.WriteString(strings.Join(contents, "\n"))
		b.WriteString("\n")
	}
	b.WriteString(pageClose)
	return b.String()
}
