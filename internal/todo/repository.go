// Package todo mediates every create/read/update/delete against the remote
// store. It owns the request-gating validation and the full-replace update
// contract; it never caches, merges, or retries.
package todo

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"todoterm/internal/apperr"
	"todoterm/internal/model"
)

// Store is the remote persistence collaborator. Implementations assign ids on
// Create and must report a missing id as apperr.ErrNotFound.
type Store interface {
	List(ctx context.Context) ([]model.Todo, error)
	Get(ctx context.Context, id string) (model.Todo, error)
	Create(ctx context.Context, t model.Todo) (model.Todo, error)
	Update(ctx context.Context, id string, t model.Todo) error
	Delete(ctx context.Context, id string) error
}

// Repository is the single write path for todo records. Reads are pull-based:
// each call is a fresh remote fetch, so a caller that wants to observe its own
// write re-invokes List.
type Repository struct {
	store Store
	log   zerolog.Logger
}

func NewRepository(store Store, log zerolog.Logger) *Repository {
	return &Repository{store: store, log: log}
}

// List returns the records in whatever order the store provides. Ordering
// stability across calls is not guaranteed here.
func (r *Repository) List(ctx context.Context) ([]model.Todo, error) {
	return r.store.List(ctx)
}

func (r *Repository) Get(ctx context.Context, id string) (model.Todo, error) {
	return r.store.Get(ctx, id)
}

// Create validates the title before any network call, fills in the default
// status, and returns the record with its store-assigned id. It does not
// touch any in-memory list.
func (r *Repository) Create(ctx context.Context, f model.Fields) (model.Todo, error) {
	if strings.TrimSpace(f.Title) == "" {
		return model.Todo{}, apperr.Validation("title", "Title cannot be empty")
	}
	created, err := r.store.Create(ctx, model.Todo{
		Title:       f.Title,
		Description: f.Description,
		Status:      model.StatusInProgress,
		Deadline:    f.Deadline,
		Attachment:  f.Attachment,
	})
	if err != nil {
		return model.Todo{}, err
	}
	r.log.Debug().Str("id", created.ID).Msg("todo created")
	return created, nil
}

// Update replaces the full field set of id. Fields the caller leaves zero are
// cleared on the backend, not preserved — callers must fetch first and
// resupply what they want kept. The repository performs no merge.
func (r *Repository) Update(ctx context.Context, id string, f model.Fields) error {
	if strings.TrimSpace(f.Title) == "" {
		return apperr.Validation("title", "Title cannot be empty")
	}
	err := r.store.Update(ctx, id, model.Todo{
		ID:          id,
		Title:       f.Title,
		Description: f.Description,
		Status:      model.StatusInProgress,
		Deadline:    f.Deadline,
		Attachment:  f.Attachment,
	})
	if err != nil {
		return err
	}
	r.log.Debug().Str("id", id).Msg("todo updated")
	return nil
}

// Delete is a hard delete. A missing id surfaces apperr.ErrNotFound; callers
// are free to treat that as already done.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return err
	}
	r.log.Debug().Str("id", id).Msg("todo deleted")
	return nil
}
