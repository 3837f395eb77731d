package jsonstore

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"clubsite/internal/domain"
)

// eventDocument is the persisted shape of events.json.
type eventDocument struct {
	Events []*domain.Event `json:"events"`
}

type eventRepository struct {
	path string

	mu     sync.RWMutex
	events []*domain.Event
}

// NewEventRepository loads dataDir/events.json (creating it lazily on first
// write) and returns a repository backed by it.
func NewEventRepository(dataDir string) (domain.EventRepository, error) {
	r := &eventRepository{path: filepath.Join(dataDir, "events.json")}
	var doc eventDocument
	if err := loadDocument(r.path, &doc); err != nil {
		return nil, err
	}
	r.events = doc.Events
	return r, nil
}

func (r *eventRepository) flushLocked() error {
	return saveDocument(r.path, eventDocument{Events: r.events})
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Event, len(r.events))
	copy(out, r.events)
	return out, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.events {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return r.flushLocked()
}

// Update applies the patch to a clone and swaps the stored pointer, so
// records handed out by earlier reads are never written to.
func (r *eventRepository) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.events {
		if e.ID == id {
			updated := *e
			patch.Apply(&updated)
			updated.UpdatedAt = time.Now().UTC()
			r.events[i] = &updated
			if err := r.flushLocked(); err != nil {
				return nil, err
			}
			return &updated, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.events {
		if e.ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return r.flushLocked()
		}
	}
	return domain.ErrNotFound
}
