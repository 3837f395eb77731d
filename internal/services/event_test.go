package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"clubsite/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventRepo is an in-memory EventRepository for tests. List returns
// events in insertion order so sort stability is observable.
type fakeEventRepo struct {
	events      []*domain.Event
	err         error // if set, every method returns this error
	slugLookups int
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Event, len(f.events))
	copy(out, f.events)
	return out, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	f.slugLookups++
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.events {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, e)
	return nil
}

func (f *fakeEventRepo) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.events {
		if e.ID == id {
			patch.Apply(e)
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i, e := range f.events {
		if e.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func ev(id, date, status string, published bool, year int, typ string) *domain.Event {
	return &domain.Event{
		ID:        id,
		Slug:      "slug-" + id,
		Title:     "Event " + id,
		Type:      typ,
		Year:      year,
		Status:    status,
		Date:      date,
		Published: published,
	}
}

func ids(events []*domain.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func TestListEvents_Ordering(t *testing.T) {
	repo := &fakeEventRepo{events: []*domain.Event{
		ev("past-new", "2025-06-01", domain.EventStatusCompleted, true, 2025, "workshop"),
		ev("up-late", "2026-03-10", domain.EventStatusUpcoming, true, 2026, "session"),
		ev("past-old", "2024-01-15", domain.EventStatusCompleted, true, 2024, "seminar"),
		ev("up-early", "2026-01-05", domain.EventStatusUpcoming, true, 2026, "workshop"),
		ev("cancelled", "2025-09-20", domain.EventStatusCancelled, true, 2025, "social"),
	}}
	svc := NewEventService(repo, time.Second)

	got, err := svc.ListEvents(context.Background(), domain.EventFilter{})
	require.NoError(t, err)

	// Upcoming first ascending, then the rest descending by date.
	assert.Equal(t, []string{"up-early", "up-late", "cancelled", "past-new", "past-old"}, ids(got))
}

func TestListEvents_StableOnEqualDates(t *testing.T) {
	repo := &fakeEventRepo{events: []*domain.Event{
		ev("a", "2026-05-01", domain.EventStatusUpcoming, true, 2026, "session"),
		ev("b", "2026-05-01", domain.EventStatusUpcoming, true, 2026, "session"),
		ev("c", "2026-05-01", domain.EventStatusUpcoming, true, 2026, "session"),
	}}
	svc := NewEventService(repo, time.Second)

	got, err := svc.ListEvents(context.Background(), domain.EventFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestListEvents_MalformedDatesSortLast(t *testing.T) {
	repo := &fakeEventRepo{events: []*domain.Event{
		ev("bad", "not-a-date", domain.EventStatusUpcoming, true, 2026, "session"),
		ev("none", "", domain.EventStatusUpcoming, true, 2026, "session"),
		ev("good", "2026-02-02", domain.EventStatusUpcoming, true, 2026, "session"),
	}}
	svc := NewEventService(repo, time.Second)

	got, err := svc.ListEvents(context.Background(), domain.EventFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"good", "bad", "none"}, ids(got))
}

func TestListEvents_Filters(t *testing.T) {
	events := []*domain.Event{
		ev("e1", "2026-01-01", domain.EventStatusUpcoming, true, 2026, "Workshop"),
		ev("e2", "2025-01-01", domain.EventStatusCompleted, false, 2025, "workshop"),
		ev("e3", "2025-06-01", domain.EventStatusCompleted, true, 2025, "session"),
		ev("e4", "2025-03-01", domain.EventStatusCancelled, true, 2025, "workshop"),
	}
	published := true
	year := 2025

	tests := []struct {
		name   string
		filter domain.EventFilter
		want   []string
	}{
		{
			name:   "no filter returns everything",
			filter: domain.EventFilter{},
			want:   []string{"e1", "e3", "e4", "e2"},
		},
		{
			name:   "published only",
			filter: domain.EventFilter{Published: &published},
			want:   []string{"e1", "e3", "e4"},
		},
		{
			name:   "year",
			filter: domain.EventFilter{Year: &year},
			want:   []string{"e3", "e4", "e2"},
		},
		{
			name:   "type is case-insensitive",
			filter: domain.EventFilter{Type: "WORKSHOP"},
			want:   []string{"e1", "e4", "e2"},
		},
		{
			name:   "status is exact",
			filter: domain.EventFilter{Status: domain.EventStatusCompleted},
			want:   []string{"e3", "e2"},
		},
		{
			name:   "filters combine with AND",
			filter: domain.EventFilter{Published: &published, Year: &year, Type: "workshop"},
			want:   []string{"e4"},
		},
		{
			name:   "no matches yields empty slice",
			filter: domain.EventFilter{Type: "webinar"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeEventRepo{events: events}
			svc := NewEventService(repo, time.Second)

			got, err := svc.ListEvents(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestGetEvent_ByIDThenSlug(t *testing.T) {
	repo := &fakeEventRepo{events: []*domain.Event{
		ev("id-1", "2026-01-01", domain.EventStatusUpcoming, true, 2026, "session"),
	}}
	svc := NewEventService(repo, time.Second)

	byID, err := svc.GetEvent(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, "id-1", byID.ID)

	bySlug, err := svc.GetEvent(context.Background(), "slug-id-1")
	require.NoError(t, err)
	assert.Equal(t, "id-1", bySlug.ID)

	_, err = svc.GetEvent(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetEvent_NoSlugFallbackOnOtherErrors(t *testing.T) {
	storeErr := errors.New("disk gone")
	repo := &fakeEventRepo{err: storeErr}
	svc := NewEventService(repo, time.Second)

	_, err := svc.GetEvent(context.Background(), "id-1")
	assert.ErrorIs(t, err, storeErr)
	// Only ErrNotFound triggers the slug lookup; other failures surface as-is.
	assert.Zero(t, repo.slugLookups)
}

func TestCreateEvent(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewEventService(repo, time.Second)

	event := &domain.Event{Title: "Intro to Go", Slug: "intro-to-go", Status: domain.EventStatusUpcoming}
	err := svc.CreateEvent(context.Background(), event)
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
	assert.Equal(t, event.CreatedAt, event.UpdatedAt)
	require.Len(t, repo.events, 1)
}

func TestCreateEvent_MissingTitle(t *testing.T) {
	svc := NewEventService(&fakeEventRepo{}, time.Second)

	err := svc.CreateEvent(context.Background(), &domain.Event{Slug: "untitled"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateEvent(t *testing.T) {
	repo := &fakeEventRepo{events: []*domain.Event{
		ev("e1", "2026-01-01", domain.EventStatusUpcoming, false, 2026, "session"),
	}}
	svc := NewEventService(repo, time.Second)

	published := true
	title := "Renamed"
	got, err := svc.UpdateEvent(context.Background(), "e1", domain.EventPatch{Published: &published, Title: &title})
	require.NoError(t, err)
	assert.True(t, got.Published)
	assert.Equal(t, "Renamed", got.Title)
	// Untouched fields survive a partial update.
	assert.Equal(t, "2026-01-01", got.Date)

	_, err = svc.UpdateEvent(context.Background(), "missing", domain.EventPatch{Title: &title})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateEvent_MovesBucketOnStatusChange(t *testing.T) {
	repo := &fakeEventRepo{events: []*domain.Event{
		ev("a", "2026-01-01", domain.EventStatusUpcoming, true, 2026, "session"),
		ev("b", "2026-02-01", domain.EventStatusUpcoming, true, 2026, "session"),
	}}
	svc := NewEventService(repo, time.Second)

	cancelled := domain.EventStatusCancelled
	_, err := svc.UpdateEvent(context.Background(), "a", domain.EventPatch{Status: &cancelled})
	require.NoError(t, err)

	got, err := svc.ListEvents(context.Background(), domain.EventFilter{})
	require.NoError(t, err)
	// The cancelled event drops out of the upcoming bucket and lists after it.
	assert.Equal(t, []string{"b", "a"}, ids(got))
}

func TestDeleteEvent(t *testing.T) {
	repo := &fakeEventRepo{events: []*domain.Event{
		ev("e1", "2026-01-01", domain.EventStatusUpcoming, true, 2026, "session"),
	}}
	svc := NewEventService(repo, time.Second)

	require.NoError(t, svc.DeleteEvent(context.Background(), "e1"))
	assert.Empty(t, repo.events)

	assert.ErrorIs(t, svc.DeleteEvent(context.Background(), "e1"), domain.ErrNotFound)
}
