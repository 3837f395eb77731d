package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"clubsite/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

// ListEvents returns events matching the filter, upcoming events first in
// ascending date order, then everything else in descending date order.
func (s *eventService) ListEvents(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		if matchesFilter(e, filter) {
			filtered = append(filtered, e)
		}
	}
	return sortEvents(filtered), nil
}

func matchesFilter(e *domain.Event, f domain.EventFilter) bool {
	if f.Published != nil && e.Published != *f.Published {
		return false
	}
	if f.Year != nil && e.Year != *f.Year {
		return false
	}
	if f.Type != "" && !strings.EqualFold(e.Type, f.Type) {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	return true
}

// eventDate parses the event's calendar date. ok is false for a missing or
// malformed date, which sorts after every parseable date in its bucket.
func eventDate(e *domain.Event) (time.Time, bool) {
	t, err := time.Parse(domain.EventDateLayout, e.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// sortEvents splits events into an upcoming bucket and a past bucket and
// concatenates them: upcoming ascending by date, the rest descending. Both
// sorts are stable, so equal dates keep their stored order.
func sortEvents(events []*domain.Event) []*domain.Event {
	var upcoming, past []*domain.Event
	for _, e := range events {
		if e.Status == domain.EventStatusUpcoming {
			upcoming = append(upcoming, e)
		} else {
			past = append(past, e)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		di, iok := eventDate(upcoming[i])
		dj, jok := eventDate(upcoming[j])
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		return di.Before(dj)
	})
	sort.SliceStable(past, func(i, j int) bool {
		di, iok := eventDate(past[i])
		dj, jok := eventDate(past[j])
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		return di.After(dj)
	})

	out := make([]*domain.Event, 0, len(events))
	out = append(out, upcoming...)
	out = append(out, past...)
	return out
}

// GetEvent looks key up as an event ID first and falls back to a slug lookup,
// so both /events/{id} and /events/{slug} resolve.
func (s *eventService) GetEvent(ctx context.Context, key string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, key)
	if err == nil {
		return event, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return s.eventRepo.GetBySlug(ctx, key)
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if event.Title == "" {
		return domain.ErrInvalidInput
	}

	event.ID = uuid.NewString()
	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	return s.eventRepo.Create(ctx, event)
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.Update(ctx, id, patch)
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.Delete(ctx, id)
}
