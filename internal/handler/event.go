package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eventlane/eventlane-go/internal/model"
	"github.com/eventlane/eventlane-go/internal/service"
)

// EventHandler handles HTTP requests for event operations.
type EventHandler struct {
	service *service.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{service: svc}
}

// HandleAddEvent handles POST /addEvent requests.
func (h *EventHandler) HandleAddEvent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var doc map[string]any
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	id, err := h.service.Add(r.Context(), doc)
	if err != nil {
		if errors.Is(err, service.ErrEmptyEvent) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse(err.Error()))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":    "event created",
		"insertedId": id,
	})
}

// HandleListEvents handles GET /events requests.
func (h *EventHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	events, err := h.service.List(r.Context(), q.Get("email"), q.Get("filterByDate"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse(err.Error()))
		return
	}

	if events == nil {
		events = []model.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

// HandleGetEvent handles GET /event/{id} requests. A malformed id is
// rejected here, before any store call.
func (h *EventHandler) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid event id"))
		return
	}

	event, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse(err.Error()))
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// HandleJoinEvent handles PATCH /joinEvent/{id} requests.
func (h *EventHandler) HandleJoinEvent(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid event id"))
		return
	}

	event, err := h.service.Join(r.Context(), id, r.URL.Query().Get("email"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrEventNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse(err.Error()))
		}
		return
	}

	writeJSON(w, http.StatusOK, event)
}
