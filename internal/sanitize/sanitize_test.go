package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize_ReplacesRasterImages(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"jpg", `<img src="hero.jpg" alt="Hero">`},
		{"jpeg upper case", `<IMG class="w-full" SRC='photo.JPEG'>`},
		{"png", `<img alt="logo" src="/assets/logo.png" />`},
		{"gif", `<img src="https://cdn.example.com/a.gif">`},
		{"webp", `<img src="pic.webp">`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Sanitize(tt.input)
			assert.Equal(t, ImagePlaceholder, out)
			assert.NotContains(t, strings.ToLower(out), "<img")
		})
	}
}

func TestSanitize_StripsAssetAttributes(t *testing.T) {
	in := `<script src="script.js"></script><link href="styles.css" rel="stylesheet"><source src="clip.png">`
	out := Sanitize(in)

	assert.Equal(t, `<script ></script><link  rel="stylesheet"><source >`, out)
}

func TestSanitize_ReplacesBackgroundImages(t *testing.T) {
	in := `<div style="color: red; background-image: url('chef-photo.jpg'); padding: 4px">Content</div>`
	out := Sanitize(in)

	assert.Equal(t, `<div style="color: red; `+GradientBackground+`; padding: 4px">Content</div>`, out)
	assert.NotContains(t, out, "url(")
	assert.NotContains(t, out, "chef-photo")
}

func TestSanitize_LeavesCleanMarkupAlone(t *testing.T) {
	in := `<section class="py-20"><h1>Hello</h1><a href="#contact">Contact</a><img src="data:image/svg+xml,abc"></section>`
	assert.Equal(t, in, Sanitize(in))
}

func TestSanitize_MixedDocument(t *testing.T) {
	in := `
<div class="hero">
    <img src="hero-image.jpg" alt="Hero">
    <img src="pizza-hero.jpg" class="w-full" alt="Pizza">
    <div style="background-image: url('chef-photo.jpg')">Content</div>
    <link href="styles.css" rel="stylesheet">
    <script src="script.js"></script>
</div>
`
	out, st := Report(in)

	assert.Equal(t, 2, st.Images)
	assert.Equal(t, 2, st.Attributes)
	assert.Equal(t, 1, st.Backgrounds)
	assert.Equal(t, 2, strings.Count(out, ImagePlaceholder))
	for _, ref := range []string{".jpg", ".css", ".js\"", "url("} {
		assert.NotContains(t, out, ref)
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		`<img src="a.png"><img src="b.svg">`,
		`<div style="background-image:url(x.png)"></div>`,
		`<img ssrc="a.js"rc="b.png">`,
		`<div style="background-imsrc="x.css"age: url(y.jpg)"></div>`,
		`<link href="a.css"><script src='b.js'></script>`,
		ImagePlaceholder,
	}

	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "input %q", in)
	}
}

func TestReport_SplicedMatchesAreCaught(t *testing.T) {
	out, st := Report(`<img ssrc="a.js"rc="b.png">`)

	require.Equal(t, ImagePlaceholder, out)
	assert.Equal(t, 1, st.Attributes)
	assert.Equal(t, 1, st.Images)
}

func TestReport_DeeplyNestedAttributes(t *testing.T) {
	const depth = 48
	in := "<script " + strings.Repeat("s", depth) + `src="a.js"` + strings.Repeat(`rc="a.js"`, depth) + "></script>"

	out, st := Report(in)

	assert.Equal(t, "<script ></script>", out)
	assert.Equal(t, depth+1, st.Attributes)
	assert.NotContains(t, out, "a.js")
	assert.Equal(t, out, Sanitize(out))
}

func TestReport_CleanInputHasNoRewrites(t *testing.T) {
	_, st := Report(`<p>nothing to do</p>`)
	assert.Zero(t, st.Total())
}
