package domain

import (
	"context"
	"time"
)

// Event status values. Status and date jointly determine the sort bucket in
// listings: upcoming events come first in ascending date order, everything
// else follows in descending date order.
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

// EventTypes is the fixed enumeration of event types.
var EventTypes = []string{
	"session", "workshop", "competition", "seminar",
	"webinar", "meeting", "social", "other",
}

// EventDateLayout is the calendar date format used by Event.Date.
const EventDateLayout = "2006-01-02"

// FullDescription is the long-form description block of an event.
type FullDescription struct {
	About  string   `json:"about"`
	Agenda []string `json:"agenda"`
	Rules  []string `json:"rules"`
}

// CompetitionDetails is present only for competition events.
type CompetitionDetails struct {
	Eligibility string   `json:"eligibility"`
	TeamSize    string   `json:"teamSize"`
	Prizes      []string `json:"prizes"`
}

// Outcomes summarizes a completed event.
type Outcomes struct {
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
}

// Event represents one club event. ID is assigned at creation and never
// reassigned; Slug is a unique human-readable identifier used as a lookup
// fallback. Published gates public visibility.
// swagger:model Event
type Event struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`

	Type   string `json:"type"`
	Year   int    `json:"year"`
	Status string `json:"status"`

	Date      string `json:"date"` // YYYY-MM-DD
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`

	Location string `json:"location"`
	Mode     string `json:"mode"` // physical | online | hybrid

	ShortDescription string              `json:"shortDescription"`
	FullDescription  FullDescription     `json:"fullDescription"`
	Competition      *CompetitionDetails `json:"competitionDetails"`

	CoverImage string    `json:"coverImage"`
	Gallery    []string  `json:"gallery"`
	Outcomes   *Outcomes `json:"outcomes"`

	Published bool `json:"published"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EventFilter holds the optional listing filters. Nil / empty fields apply no
// filter; present fields combine with logical AND. Type matches
// case-insensitively, Status matches exactly.
type EventFilter struct {
	Published *bool
	Year      *int
	Type      string
	Status    string
}

// EventPatch is a partial event update. Only non-nil fields are applied;
// omitted fields are retained. ID, CreatedAt, and UpdatedAt are never
// patchable: ID is immutable and UpdatedAt is refreshed by the store.
type EventPatch struct {
	Slug             *string             `json:"slug"`
	Title            *string             `json:"title"`
	Type             *string             `json:"type"`
	Year             *int                `json:"year"`
	Status           *string             `json:"status"`
	Date             *string             `json:"date"`
	StartTime        *string             `json:"startTime"`
	EndTime          *string             `json:"endTime"`
	Location         *string             `json:"location"`
	Mode             *string             `json:"mode"`
	ShortDescription *string             `json:"shortDescription"`
	FullDescription  *FullDescription    `json:"fullDescription"`
	Competition      *CompetitionDetails `json:"competitionDetails"`
	CoverImage       *string             `json:"coverImage"`
	Gallery          *[]string           `json:"gallery"`
	Outcomes         *Outcomes           `json:"outcomes"`
	Published        *bool               `json:"published"`
}

// Apply overwrites e's fields with the patch's non-nil fields.
func (p EventPatch) Apply(e *Event) {
	if p.Slug != nil {
		e.Slug = *p.Slug
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Year != nil {
		e.Year = *p.Year
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.StartTime != nil {
		e.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		e.EndTime = *p.EndTime
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Mode != nil {
		e.Mode = *p.Mode
	}
	if p.ShortDescription != nil {
		e.ShortDescription = *p.ShortDescription
	}
	if p.FullDescription != nil {
		e.FullDescription = *p.FullDescription
	}
	if p.Competition != nil {
		e.Competition = p.Competition
	}
	if p.CoverImage != nil {
		e.CoverImage = *p.CoverImage
	}
	if p.Gallery != nil {
		e.Gallery = *p.Gallery
	}
	if p.Outcomes != nil {
		e.Outcomes = p.Outcomes
	}
	if p.Published != nil {
		e.Published = *p.Published
	}
}

// EventRepository defines the interface for event storage. The repository
// exclusively owns the collection; List hands out a read-only snapshot.
type EventRepository interface {
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, id string, patch EventPatch) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for events, including the
// filter-and-sort listing used by the public site.
type EventService interface {
	ListEvents(ctx context.Context, filter EventFilter) ([]*Event, error)
	GetEvent(ctx context.Context, key string) (*Event, error)
	CreateEvent(ctx context.Context, event *Event) error
	UpdateEvent(ctx context.Context, id string, patch EventPatch) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
}
