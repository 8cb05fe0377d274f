package transport

import (
	"database/sql"
	"net/http"
	"time"

	"puz_shelf/internal/app"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	Service        *app.Service
	Router         *chi.Mux
	SessionManager *scs.SessionManager
	MaxUploadBytes int64
}

func NewServer(svc *app.Service, db *sql.DB, isProd bool, maxUploadBytes int64) *Server {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.New(db)
	sessionManager.Lifetime = time.Hour * 24 * 7 * 6
	sessionManager.Cookie.Secure = isProd

	s := &Server{
		Service:        svc,
		Router:         chi.NewRouter(),
		SessionManager: sessionManager,
		MaxUploadBytes: maxUploadBytes,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.Use(middleware.Logger)
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, s.MaxUploadBytes)
			next.ServeHTTP(w, r)
		})
	})

	s.Router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "startedAt": s.Service.StartTime})
	})

	// Streams are long-lived, so they stay outside the session middleware,
	// which holds the response until the handler returns.
	s.Router.Get("/puzzles/events", s.handleImportEvents)

	s.Router.Get("/puzzles", s.handleListPuzzles)
	s.Router.Get("/puzzles/{id}", s.handleGetPuzzle)

	s.Router.Group(func(r chi.Router) {
		r.Use(s.SessionManager.LoadAndSave)
		r.Post("/puzzles", s.handleUploadPuzzle)
		r.Get("/session/puzzles", s.handleSessionPuzzles)
	})
}
