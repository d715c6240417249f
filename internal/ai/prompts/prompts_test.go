package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ai_site_builder/internal/types"
)

func TestGetSiteGenerationPrompt(t *testing.T) {
	req := types.GenerationRequest{
		Prompt:       "Create a modern restaurant website",
		BusinessType: "Restaurant",
		Style:        types.StyleModern,
		Features:     []string{"Contact Form", "Image Gallery"},
	}

	prompt := GetSiteGenerationPrompt(req)

	assert.True(t, strings.HasPrefix(prompt, "Generate a complete website for a Restaurant business"))
	assert.Contains(t, prompt, "**User Request:** Create a modern restaurant website")
	assert.Contains(t, prompt, "**Style:** modern")
	assert.Contains(t, prompt, "**Features:** Contact Form, Image Gallery")
	assert.Contains(t, prompt, "5. Apply modern design principles")
	assert.Contains(t, prompt, `"html": "COMPLETE HTML BODY CONTENT`)
	assert.Contains(t, prompt, "Do NOT use external images")
	assert.True(t, strings.HasSuffix(prompt, "Generate ONLY valid JSON without any additional text or markdown formatting."))
	assert.NotContains(t, prompt, "%!")
}

func TestGetSiteGenerationPrompt_NoFeatures(t *testing.T) {
	prompt := GetSiteGenerationPrompt(types.GenerationRequest{
		Prompt:       "A blog about 100% organic tea",
		BusinessType: "Blog",
		Style:        types.StyleMinimal,
	})

	assert.Contains(t, prompt, "**Features:** \n")
	assert.Contains(t, prompt, "100% organic tea")
}

func TestGetSectionEnhancementPrompt(t *testing.T) {
	prompt := GetSectionEnhancementPrompt("<section>Hi</section>", "make it bolder")

	assert.Contains(t, prompt, "**Current Section:**\n<section>Hi</section>")
	assert.Contains(t, prompt, "**Enhancement Instructions:**\nmake it bolder")
}
