// Package server is the bundled development backend: the same wire contract
// the client's api package consumes, held in memory. It exists so the client
// runs end-to-end locally and so the api client is tested against the real
// routes instead of hand-rolled fixtures.
package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"todoterm/internal/model"
)

type user struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Server holds all state behind one mutex; the dataset is a dev fixture, not
// a database.
type Server struct {
	log      zerolog.Logger
	secret   []byte
	tokenTTL time.Duration

	mu    sync.Mutex
	users map[string]user // keyed by email
	todos []model.Todo    // insertion order is list order
}

func New(secret string, tokenTTL time.Duration, log zerolog.Logger) *Server {
	return &Server{
		log:      log,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		users:    map[string]user{},
	}
}

// Handler mounts the auth and todo routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/auth/signup", s.handleSignUp)
	r.Post("/auth/signin", s.handleSignIn)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/todos", s.handleListTodos)
		r.Post("/todos", s.handleCreateTodo)
		r.Get("/todos/{id}", s.handleGetTodo)
		r.Put("/todos/{id}", s.handleUpdateTodo)
		r.Delete("/todos/{id}", s.handleDeleteTodo)
	})
	return r
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			s.log.Error().Err(err).Msg("encode response")
		}
	}
}

type errBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, code, msg string) {
	s.writeJSON(w, status, errBody{Code: code, Message: msg})
}
