package webinar

import (
	"bytes"
	"html/template"
	"log/slog"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	markdown          = goldmark.New()
	descriptionPolicy = bluemonday.UGCPolicy()
)

// DescriptionHTML renders the markdown description to sanitized HTML.
// Raw HTML in the source is dropped by goldmark; links and emphasis survive.
func (w Webinar) DescriptionHTML() template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(w.Description), &buf); err != nil {
		slog.Warn("failed to render webinar description", "webinar_id", w.ID, "error", err)
		return template.HTML(template.HTMLEscapeString(w.Description))
	}
	return template.HTML(descriptionPolicy.SanitizeBytes(buf.Bytes()))
}
