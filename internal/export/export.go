// Package export renders a generated website as a standalone HTML file.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"ai_site_builder/internal/types"
	"ai_site_builder/internal/utils"
)

// TailwindCDN is the runtime stylesheet the exported page loads.
const TailwindCDN = "https://cdn.tailwindcss.com"

const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <meta name="description" content="{{.Description}}">
    <script src="{{.TailwindCDN}}"></script>
    <style>
        {{.CSS}}
        body {
            font-family: {{.FontFamily}};
            color: {{.TextColor}};
            background-color: {{.BackgroundColor}};
        }
    </style>
</head>
<body>
    {{.Body}}
</body>
</html>`

var document = template.Must(template.New("document").Parse(documentTemplate))

type documentData struct {
	Title           string
	Description     string
	TailwindCDN     string
	CSS             template.CSS
	FontFamily      template.CSS
	TextColor       template.CSS
	BackgroundColor template.CSS
	Body            template.HTML
}

// BuildHTMLDocument wraps a record's markup in a complete HTML page with its
// styles and theme applied. Title and description are escaped; body markup
// and extra CSS are emitted as-is.
func BuildHTMLDocument(record *types.WebsiteRecord) (string, error) {
	data := documentData{
		Title:           record.Title,
		Description:     record.Description,
		TailwindCDN:     TailwindCDN,
		CSS:             template.CSS(stripStyleClose(record.CSS)),
		FontFamily:      cssValue(record.Theme.FontFamily),
		TextColor:       cssValue(record.Theme.TextColor),
		BackgroundColor: cssValue(record.Theme.BackgroundColor),
		Body:            template.HTML(record.HTML),
	}

	var buf bytes.Buffer
	if err := document.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render html document: %w", err)
	}
	return buf.String(), nil
}

// Filename derives the download name from the site title.
func Filename(title string) string {
	slug := strings.NewReplacer("/", "", "\\", "", `"`, "").Replace(utils.Slugify(title))
	if slug == "" {
		slug = "website"
	}
	return slug + ".html"
}

// cssValue keeps a theme value inside its declaration.
func cssValue(s string) template.CSS {
	return template.CSS(strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '{', '}', ';':
			return -1
		}
		return r
	}, s))
}

func stripStyleClose(css string) string {
	return strings.ReplaceAll(strings.ReplaceAll(css, "</style", ""), "</STYLE", "")
}
