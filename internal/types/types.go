package types

import "errors"

var (
	// ErrMissingField is returned by the request boundary when a required
	// generation field is absent.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidStyle means the requested style is not one of Styles.
	ErrInvalidStyle = errors.New("invalid style")
)

// Style is the visual tone requested for a generated site.
type Style string

const (
	StyleModern       Style = "modern"
	StyleClassic      Style = "classic"
	StyleMinimal      Style = "minimal"
	StyleCreative     Style = "creative"
	StyleProfessional Style = "professional"
)

// Styles lists every accepted Style in display order.
var Styles = []Style{StyleModern, StyleClassic, StyleMinimal, StyleCreative, StyleProfessional}

// BusinessTypes are the industry categories offered by the builder form.
var BusinessTypes = []string{
	"Restaurant", "E-commerce", "Portfolio", "Blog", "Corporate",
	"Healthcare", "Education", "Real Estate", "Technology", "Creative Agency",
}

// AvailableFeatures is the feature checklist offered by the builder form.
var AvailableFeatures = []string{
	"Contact Form", "Image Gallery", "Testimonials", "Social Media Links",
	"Newsletter Signup", "Blog Section", "Product Showcase", "Team Section",
	"FAQ Section", "Pricing Tables", "Video Integration", "Maps Integration",
}

// GenerationRequest is one submission of the builder form.
type GenerationRequest struct {
	Prompt       string   `json:"prompt" binding:"required"`
	BusinessType string   `json:"businessType" binding:"required"`
	Style        Style    `json:"style" binding:"required,oneof=modern classic minimal creative professional"`
	Features     []string `json:"features"`
}

// SectionKind labels a block of a generated website.
type SectionKind string

const (
	SectionHero         SectionKind = "hero"
	SectionAbout        SectionKind = "about"
	SectionServices     SectionKind = "services"
	SectionContact      SectionKind = "contact"
	SectionFeatures     SectionKind = "features"
	SectionTestimonials SectionKind = "testimonials"
	SectionGallery      SectionKind = "gallery"
	SectionFooter       SectionKind = "footer"
)

// Section is one semantically typed block of a generated website.
// Content is an HTML fragment.
type Section struct {
	ID      string      `json:"id"`
	Type    SectionKind `json:"type"`
	Title   string      `json:"title"`
	Content string      `json:"content"`
}

// Theme carries the cosmetic palette of a generated site.
type Theme struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	FontFamily      string `json:"fontFamily"`
}

// WebsiteRecord is a complete generated site. HTML is always non-empty and
// self-contained once it leaves the generator.
type WebsiteRecord struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	HTML        string    `json:"html"`
	CSS         string    `json:"css"`
	Sections    []Section `json:"sections"`
	Theme       Theme     `json:"theme"`
}
