package httpserver

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"stayhaven/web"
)

// Renderer executes the embedded page templates. Pages are rendered into a
// buffer first so a template failure becomes a clean 500 instead of a
// half-written body.
type Renderer struct{ t *template.Template }

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{t: t}, nil
}

func (rn *Renderer) HTML(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := rn.t.ExecuteTemplate(&buf, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("template execution failed")
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Error().Err(err).Str("template", name).Msg("write response failed")
	}
}
