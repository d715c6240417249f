package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"ai_site_builder/internal/sanitize"
	"ai_site_builder/internal/types"
)

// ErrMalformedResponse means the model text could not be turned into a
// WebsiteRecord.
var ErrMalformedResponse = errors.New("malformed model response")

const (
	// minBodyLength is the shortest html body accepted as a real page.
	minBodyLength = 200

	// rootStubMarker shows up when the model echoes an app shell instead of
	// writing the page.
	rootStubMarker = `<div id="root"></div>`
)

var websiteSchema = gojsonschema.NewStringLoader(`{
  "type": "object",
  "required": ["title", "sections"],
  "properties": {
    "title": {"type": "string", "pattern": "\\S"},
    "description": {"type": ["string", "null"]},
    "html": {"type": ["string", "null"]},
    "css": {"type": ["string", "null"]},
    "sections": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "properties": {
          "content": {"type": ["string", "null"]}
        }
      }
    },
    "theme": {"type": ["object", "null"]}
  }
}`)

// draftRecord mirrors types.WebsiteRecord with the cosmetic fields left raw.
// Section labels and theme values of the wrong JSON type are replaced by
// defaults instead of failing the decode.
type draftRecord struct {
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	HTML        string                     `json:"html"`
	CSS         string                     `json:"css"`
	Sections    []draftSection             `json:"sections"`
	Theme       map[string]json.RawMessage `json:"theme"`
}

type draftSection struct {
	ID      json.RawMessage `json:"id"`
	Type    json.RawMessage `json:"type"`
	Title   json.RawMessage `json:"title"`
	Content string          `json:"content"`
}

func (d draftRecord) record() types.WebsiteRecord {
	rec := types.WebsiteRecord{
		Title:       d.Title,
		Description: d.Description,
		HTML:        d.HTML,
		CSS:         d.CSS,
		Sections:    make([]types.Section, len(d.Sections)),
		Theme: types.Theme{
			PrimaryColor:    stringOrEmpty(d.Theme["primaryColor"]),
			SecondaryColor:  stringOrEmpty(d.Theme["secondaryColor"]),
			BackgroundColor: stringOrEmpty(d.Theme["backgroundColor"]),
			TextColor:       stringOrEmpty(d.Theme["textColor"]),
			FontFamily:      stringOrEmpty(d.Theme["fontFamily"]),
		},
	}
	for i, s := range d.Sections {
		rec.Sections[i] = types.Section{
			ID:      stringOrEmpty(s.ID),
			Type:    types.SectionKind(stringOrEmpty(s.Type)),
			Title:   stringOrEmpty(s.Title),
			Content: s.Content,
		}
	}
	return rec
}

// stringOrEmpty returns raw as a string when it holds a JSON string.
func stringOrEmpty(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// parseResult carries a parsed record plus what the parser had to repair.
type parseResult struct {
	Record    *types.WebsiteRecord
	Assembled bool
	Rewrites  sanitize.Stats
}

// ParseWebsiteResponse converts raw model text into a sanitized record.
func ParseWebsiteResponse(raw string) (*types.WebsiteRecord, error) {
	res, err := parseWebsiteResponse(raw)
	if err != nil {
		return nil, err
	}
	return res.Record, nil
}

func parseWebsiteResponse(raw string) (*parseResult, error) {
	cleaned := stripCodeFence(raw)

	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrMalformedResponse, err)
	}
	if err := validateShape(doc); err != nil {
		return nil, err
	}

	var decoded draftRecord
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return nil, fmt.Errorf("%w: decode record: %w", ErrMalformedResponse, err)
	}
	draft := decoded.record()

	res := &parseResult{Record: &draft}
	draft.Sections = normalizeSections(draft.Sections)
	draft.Theme = withThemeDefaults(draft.Theme)

	if !usableBody(draft.HTML) {
		draft.HTML = AssembleFromSections(draft.Sections)
		res.Assembled = true
	}

	var stats sanitize.Stats
	draft.HTML, stats = sanitize.Report(draft.HTML)
	res.Rewrites.Add(stats)
	for i := range draft.Sections {
		draft.Sections[i].Content, stats = sanitize.Report(draft.Sections[i].Content)
		res.Rewrites.Add(stats)
	}

	return res, nil
}

func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func validateShape(doc map[string]interface{}) error {
	result, err := gojsonschema.Validate(websiteSchema, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: schema: %w", ErrMalformedResponse, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%w: %s", ErrMalformedResponse, strings.Join(errs, "; "))
	}
	return nil
}

func usableBody(html string) bool {
	return len(html) >= minBodyLength && !strings.Contains(html, rootStubMarker)
}

// normalizeSections gives every section a unique, non-empty id. Order and
// unknown kinds are kept.
func normalizeSections(sections []types.Section) []types.Section {
	seen := make(map[string]bool, len(sections))
	for i := range sections {
		id := strings.TrimSpace(sections[i].ID)
		if id == "" || seen[id] {
			id = newSectionID(sections[i].Type)
		}
		seen[id] = true
		sections[i].ID = id
	}
	return sections
}

func newSectionID(kind types.SectionKind) string {
	prefix := string(kind)
	if prefix == "" {
		prefix = "section"
	}
	return prefix + "-" + uuid.NewString()[:8]
}

// DefaultTheme is the neutral palette used when the model omits one.
func DefaultTheme() types.Theme {
	return types.Theme{
		PrimaryColor:    "#2563eb",
		SecondaryColor:  "#7c3aed",
		BackgroundColor: "#ffffff",
		TextColor:       "#1f2937",
		FontFamily:      "Inter, sans-serif",
	}
}

func withThemeDefaults(t types.Theme) types.Theme {
	def := DefaultTheme()
	if t.PrimaryColor == "" {
		t.PrimaryColor = def.PrimaryColor
	}
	if t.SecondaryColor == "" {
		t.SecondaryColor = def.SecondaryColor
	}
	if t.BackgroundColor == "" {
		t.BackgroundColor = def.BackgroundColor
	}
	if t.TextColor == "" {
		t.TextColor = def.TextColor
	}
	if t.FontFamily == "" {
		t.FontFamily = def.FontFamily
	}
	return t
}
