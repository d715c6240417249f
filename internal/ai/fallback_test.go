package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai_site_builder/internal/sanitize"
	"ai_site_builder/internal/types"
)

func TestFallbackWebsite(t *testing.T) {
	rec := FallbackWebsite()

	assert.Equal(t, "Your Professional Website", rec.Title)
	assert.NotEmpty(t, rec.Description)
	assert.GreaterOrEqual(t, len(rec.HTML), minBodyLength)
	assert.Equal(t, DefaultTheme(), rec.Theme)

	require.Len(t, rec.Sections, 4)
	kinds := []types.SectionKind{types.SectionHero, types.SectionAbout, types.SectionServices, types.SectionContact}
	for i, s := range rec.Sections {
		assert.Equal(t, kinds[i], s.Type)
		assert.Equal(t, string(kinds[i]), s.ID)
		assert.NotEmpty(t, s.Content)
	}
}

func TestFallbackWebsite_IsSelfContained(t *testing.T) {
	rec := FallbackWebsite()

	out, st := sanitize.Report(rec.HTML)
	assert.Equal(t, rec.HTML, out)
	assert.Zero(t, st.Total())

	for _, s := range rec.Sections {
		assert.Equal(t, s.Content, sanitize.Sanitize(s.Content), s.ID)
	}
}

func TestFallbackWebsite_ReturnsCopy(t *testing.T) {
	first := FallbackWebsite()
	first.Title = "changed"
	first.Sections[0].Content = "changed"

	second := FallbackWebsite()
	assert.Equal(t, "Your Professional Website", second.Title)
	assert.NotEqual(t, "changed", second.Sections[0].Content)
}
