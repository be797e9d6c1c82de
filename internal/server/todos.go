package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"todoterm/internal/model"
)

func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]model.Todo, len(s.todos))
	copy(out, s.todos)
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.todos {
		if t.ID == id {
			s.writeJSON(w, http.StatusOK, t)
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "todo/not-found", "no todo with that id")
}

func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	var t model.Todo
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		s.writeError(w, http.StatusBadRequest, "todo/bad-request", "malformed body")
		return
	}
	if strings.TrimSpace(t.Title) == "" {
		s.writeError(w, http.StatusBadRequest, "todo/empty-title", "title is required")
		return
	}
	t.ID = uuid.NewString()
	if t.Status == "" {
		t.Status = model.StatusInProgress
	}
	s.mu.Lock()
	s.todos = append(s.todos, t)
	s.mu.Unlock()
	s.log.Debug().Str("id", t.ID).Msg("todo created")
	s.writeJSON(w, http.StatusCreated, t)
}

// handleUpdateTodo replaces the stored record wholesale. Absent fields in the
// body come through as zero values and overwrite; there is no merge.
func (s *Server) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var t model.Todo
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		s.writeError(w, http.StatusBadRequest, "todo/bad-request", "malformed body")
		return
	}
	t.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos[i] = t
			s.writeJSON(w, http.StatusNoContent, nil)
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "todo/not-found", "no todo with that id")
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			s.writeJSON(w, http.StatusNoContent, nil)
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "todo/not-found", "no todo with that id")
}
