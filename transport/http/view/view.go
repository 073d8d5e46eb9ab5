package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"sorabora/shared/constant"
	"sorabora/shared/session"

	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticHandler serves the embedded site assets under /static/.
func StaticHandler() http.Handler {
	return http.FileServer(http.FS(staticFS))
}

// PageData is the envelope handed to every template: the page-specific
// payload plus the cross-cutting session state.
type PageData struct {
	Data          any
	Flashes       []session.Flash
	Authenticated bool
}

// Renderer turns a named template and its data into a full HTML response.
type Renderer interface {
	Render(w http.ResponseWriter, name string, data PageData) error
}

type rendererImpl struct {
	templates *template.Template
}

func NewRenderer() Renderer {
	return &rendererImpl{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Render executes into a buffer first so a template fault never leaks a
// half-written page to the client.
func (r *rendererImpl) Render(w http.ResponseWriter, name string, data PageData) error {
	buf := &bytes.Buffer{}

	if err := r.templates.ExecuteTemplate(buf, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("failed to render template")

		return fmt.Errorf("failed to render template %s: %w", name, err)
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)

	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Str("template", name).Msg("failed to write response")

		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}
