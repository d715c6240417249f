package prompts

import "fmt"

const sectionEnhancementPromptTemplate = `
Enhance this website section based on the following instructions:

**Current Section:**
%s

**Enhancement Instructions:**
%s

Return only the enhanced HTML content with Tailwind CSS classes. Make it modern, responsive, and visually appealing.
Do NOT reference external images, stylesheets or scripts.
`

// GetSectionEnhancementPrompt renders the revision prompt for a single section.
func GetSectionEnhancementPrompt(sectionContent, instructions string) string {
	return fmt.Sprintf(sectionEnhancementPromptTemplate, sectionContent, instructions)
}
