// Package entity defines the contract between the sync engine and the
// host application's entity stores. The engine never touches entity
// tables itself: it resolves selectors to ids through registered
// repositories and tracks metadata for those ids.
package entity

import (
	"context"
	"fmt"
	"sync"

	"github.com/upfleet/synckit/internal/models"
)

// Entity is the minimal view of a host entity the engine needs.
type Entity interface {
	// EntityID returns the primary id of the entity. An empty id means
	// the entity cannot be tracked.
	EntityID() string
}

// Fields is a generic entity backed by a plain field map. The id is
// read from the "id" key.
type Fields map[string]any

// EntityID implements Entity.
func (f Fields) EntityID() string {
	id, _ := f["id"].(string)
	return id
}

// Selector describes which entities a mutation targets, as a field
// equality match. Selectors are always resolved through the repository,
// so ids of entities that do not exist resolve to nothing.
type Selector map[string]any

// ID returns the directly selected entity id, if the selector has one.
// Repository implementations use it to fast-path primary key lookups.
func (s Selector) ID() (string, bool) {
	id, ok := s["id"].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

//go:generate moq -out repository_mock.go . Repository

// Repository is implemented by the host application for each syncable
// entity type.
type Repository interface {
	// FindFirst returns the first entity matching the selector,
	// or nil when nothing matches.
	FindFirst(ctx context.Context, sel Selector) (Entity, error)

	// FindMany returns all entities matching the selector.
	// Returns an empty slice when nothing matches.
	FindMany(ctx context.Context, sel Selector) ([]Entity, error)
}

// Registry maps syncable entity types to their repositories. Lookups
// are explicit: an unregistered type is a configuration error surfaced
// to the caller, not a silent fallthrough.
type Registry struct {
	mu    sync.RWMutex
	repos map[models.EntityType]Repository
}

// NewRegistry creates an empty repository registry.
func NewRegistry() *Registry {
	return &Registry{repos: make(map[models.EntityType]Repository)}
}

// Register binds a repository to a syncable entity type.
// Registering a non-syncable type is rejected.
func (r *Registry) Register(t models.EntityType, repo Repository) error {
	if !models.IsSyncable(t) {
		return fmt.Errorf("entity type %q is not syncable", t)
	}
	if repo == nil {
		return fmt.Errorf("repository for %q cannot be nil", t)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.repos[t] = repo
	return nil
}

// Lookup returns the repository registered for the entity type.
func (r *Registry) Lookup(t models.EntityType) (Repository, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	repo, ok := r.repos[t]
	return repo, ok
}
