package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"clubsite/internal/delivery/http/helpers"
	"clubsite/internal/domain"
)

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// parseEventFilter reads the optional listing filters from the query string.
// Unparseable published or year values are ignored rather than rejected.
func parseEventFilter(r *http.Request) domain.EventFilter {
	q := r.URL.Query()
	var filter domain.EventFilter
	if s := q.Get("published"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			filter.Published = &v
		}
	}
	if s := q.Get("year"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			filter.Year = &v
		}
	}
	filter.Type = q.Get("type")
	filter.Status = q.Get("status")
	return filter
}

// ListEvents godoc
// @Summary List events
// @Description List events, optionally filtered. Upcoming events come first in ascending date order, followed by past and cancelled events in descending date order.
// @Tags events
// @Produce json
// @Param published query bool false "Filter by published flag"
// @Param year query int false "Filter by event year"
// @Param type query string false "Filter by event type (case-insensitive)"
// @Param status query string false "Filter by status (upcoming, completed, cancelled)"
// @Success 200 {array} domain.Event
// @Failure 500 {object} helpers.MessageResponse
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context(), parseEventFilter(r))
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "list events failed", "err", err)
		helpers.WriteServiceError(w, err, "Event not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get one event
// @Description Fetch a single event by ID, falling back to slug lookup.
// @Tags events
// @Produce json
// @Param key path string true "Event ID or slug"
// @Success 200 {object} domain.Event
// @Failure 404 {object} helpers.MessageResponse
// @Router /events/{key} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetEvent(r.Context(), r.PathValue("key"))
	if err != nil {
		helpers.WriteServiceError(w, err, "Event not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body domain.Event true "Event data; id and timestamps are server-generated"
// @Success 201 {object} domain.Event
// @Failure 400 {object} helpers.MessageResponse
// @Failure 401 {object} helpers.MessageResponse
// @Failure 403 {object} helpers.MessageResponse
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var event domain.Event
	if !helpers.DecodeAndValidate(w, r, &event) {
		return
	}
	if err := c.Service.CreateEvent(r.Context(), &event); err != nil {
		c.Logger.ErrorContext(r.Context(), "create event failed", "err", err)
		helpers.WriteServiceError(w, err, "Event not found")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Partial update: only fields present in the body are changed.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param event body domain.EventPatch true "Fields to update"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var patch domain.EventPatch
	if !helpers.DecodeAndValidate(w, r, &patch) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		helpers.WriteServiceError(w, err, "Event not found")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.MessageResponse
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteEvent(r.Context(), r.PathValue("id")); err != nil {
		helpers.WriteServiceError(w, err, "Event not found")
		return
	}
	helpers.WriteMessage(w, http.StatusOK, "Event removed")
}

// RSVP godoc
// @Summary RSVP to an event
// @Description Reserved endpoint; RSVP is not implemented.
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Failure 501 {object} helpers.MessageResponse
// @Router /events/{id}/rsvp [post]
func (c *EventController) RSVP(w http.ResponseWriter, r *http.Request) {
	helpers.WriteMessage(w, http.StatusNotImplemented, "RSVP not implemented")
}
