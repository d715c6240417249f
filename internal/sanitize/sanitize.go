// Package sanitize strips references to externally hosted assets from
// generated markup so it can render inside an isolated preview frame.
package sanitize

import "regexp"

const (
	// ImagePlaceholder stands in for a removed <img> element.
	ImagePlaceholder = `<div class="bg-gradient-to-r from-gray-200 to-gray-300 rounded-lg h-48 flex items-center justify-center text-gray-600"><span class="text-4xl">🖼️</span></div>`

	// GradientBackground replaces any background-image: url(...) declaration.
	GradientBackground = `background: linear-gradient(135deg, #667eea 0%, #764ba2 100%)`
)

var (
	imageTagPattern      = regexp.MustCompile(`(?i)<img[^>]+src=["'][^"']*\.(jpg|jpeg|png|gif|webp)["'][^>]*>`)
	assetSrcPattern      = regexp.MustCompile(`(?i)src=["'][^"']*\.(css|js|jpg|jpeg|png|gif|webp)["']`)
	assetHrefPattern     = regexp.MustCompile(`(?i)href=["'][^"']*\.(css|js)["']`)
	backgroundURLPattern = regexp.MustCompile(`(?i)background-image:\s*url\([^)]+\)`)
)

// Stats counts how many rewrites each rule performed.
type Stats struct {
	Images      int
	Attributes  int
	Backgrounds int
}

// Total is the sum of all rewrites.
func (s Stats) Total() int {
	return s.Images + s.Attributes + s.Backgrounds
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Images += o.Images
	s.Attributes += o.Attributes
	s.Backgrounds += o.Backgrounds
}

// Sanitize returns markup with no external image, stylesheet or script
// references. Sanitize(Sanitize(x)) == Sanitize(x) for every x.
func Sanitize(markup string) string {
	out, _ := Report(markup)
	return out
}

// Report sanitizes markup and returns how many rewrites were made.
//
// The rules are re-applied until a pass rewrites nothing. Removing an
// attribute can splice text into a new match, so nesting depth is unbounded.
// Every removal consumes input text that no replacement can reproduce, which
// ends the loop.
func Report(markup string) (string, Stats) {
	var total Stats
	out := markup
	for {
		next, st := pass(out)
		if st.Total() == 0 {
			return out, total
		}
		total.Add(st)
		out = next
	}
}

func pass(in string) (string, Stats) {
	var st Stats

	out := imageTagPattern.ReplaceAllStringFunc(in, func(string) string {
		st.Images++
		return ImagePlaceholder
	})

	strip := func(string) string {
		st.Attributes++
		return ""
	}
	out = assetSrcPattern.ReplaceAllStringFunc(out, strip)
	out = assetHrefPattern.ReplaceAllStringFunc(out, strip)

	out = backgroundURLPattern.ReplaceAllStringFunc(out, func(string) string {
		st.Backgrounds++
		return GradientBackground
	})

	return out, st
}
