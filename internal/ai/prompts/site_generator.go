package prompts

import (
	"fmt"
	"strings"

	"ai_site_builder/internal/types"
)

// siteGenerationPromptTemplate takes, in order: business type, user prompt,
// style, features, style again (for the design-principles constraint).
const siteGenerationPromptTemplate = `
Generate a complete website for a %s business with the following requirements:

**User Request:** %s
**Style:** %s
**Features:** %s

Please provide a JSON response with the following structure:
{
  "title": "Website title",
  "description": "Website description",
  "html": "COMPLETE HTML BODY CONTENT with all sections included - do not use external CSS/JS files",
  "css": "Additional CSS styles if needed (optional)",
  "sections": [
    {
      "id": "unique-id",
      "type": "hero|about|services|contact|features|testimonials|gallery|footer",
      "title": "Section title",
      "content": "Section content in HTML format"
    }
  ],
  "theme": {
    "primaryColor": "#hexcolor",
    "secondaryColor": "#hexcolor",
    "backgroundColor": "#hexcolor",
    "textColor": "#hexcolor",
    "fontFamily": "font-family-name"
  }
}

CRITICAL REQUIREMENTS:
1. The "html" field must contain the COMPLETE website body content with ALL sections
2. Use only Tailwind CSS classes (no external CSS files)
3. Include all sections (hero, about, services, contact, etc.) in the HTML
4. Make it fully responsive and modern
5. Apply %s design principles
6. Include proper semantic HTML5 elements
7. Make it visually appealing and professional
8. Do NOT reference external files (style.css, script.js, etc.)
9. Do NOT use external images (no .jpg, .png, .gif files) - use CSS backgrounds, gradients, or icons instead
10. Use placeholder text like "Lorem ipsum" or generic content instead of specific images
11. For visual elements, use CSS gradients, Tailwind background colors, or Unicode symbols

The HTML should be a complete, self-contained website body that can be directly displayed without any external dependencies.

Generate ONLY valid JSON without any additional text or markdown formatting.
`

// GetSiteGenerationPrompt renders the generation prompt for one request.
func GetSiteGenerationPrompt(req types.GenerationRequest) string {
	features := strings.Join(req.Features, ", ")
	prompt := fmt.Sprintf(siteGenerationPromptTemplate,
		req.BusinessType,
		req.Prompt,
		req.Style,
		features,
		req.Style,
	)
	return strings.TrimSpace(prompt)
}
