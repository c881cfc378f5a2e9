package server

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"NexusBoard/internal/prefs"
	"NexusBoard/internal/recorder"
)

// Server wires the dashboard JSON API. It holds no engine logic;
// handlers delegate to the ingest/strategy/modules packages.
type Server struct {
	prefs    *prefs.Manager
	recorder recorder.Recorder
	validate *validator.Validate
}

// New creates a Server around the shared preference manager and recorder.
func New(p *prefs.Manager, rec recorder.Recorder) *Server {
	return &Server{
		prefs:    p,
		recorder: rec,
		validate: validator.New(),
	}
}

// Routes builds the full router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/modules", s.handleListModules)
		r.Post("/modules/{id}", s.handleComputeModule)

		r.Route("/stock", func(r chi.Router) {
			r.Post("/parse", s.handleParse)
			r.Post("/analyze", s.handleAnalyze)
			r.Post("/export", s.handleExport)
		})

		r.Get("/prefs", s.handleGetPrefs)
		r.Put("/prefs", s.handlePutPrefs)
	})

	return r
}

// ListenAndServe runs the API on addr until the server fails.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("[INFO] dashboard API listening on %s", addr)
	return http.ListenAndServe(addr, s.Routes())
}

func badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, map[string]string{"error": msg})
}

func unprocessable(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusUnprocessableEntity)
	render.JSON(w, r, map[string]string{"error": msg})
}
