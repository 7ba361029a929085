package httpserver

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"stayhaven/web"
)

type Server struct{ mux *chi.Mux }

func New() *Server {
	m := chi.NewRouter()

	// middlewares first, routes after
	m.Use(chimw.RealIP)
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(Timeout(15 * time.Second))
	m.Use(Metrics)
	m.Use(Logger(log.Logger))

	return &Server{mux: m}
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches any extra handler (e.g., /metrics) to the router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}

// MountStatic serves the embedded assets under /static/.
func (s *Server) MountStatic() {
	sub, err := fs.Sub(web.Static, "static")
	if err != nil {
		log.Fatal().Err(err).Msg("static assets missing from embed")
	}
	s.mux.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(sub))))
}
