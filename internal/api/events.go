package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type eventRequest struct {
	TimelineID string  `json:"timeline_id"`
	LocationID *string `json:"location_id,omitempty"`
	Name       string  `json:"name"`
	Summary    string  `json:"summary"`
	StartDay   int64   `json:"start_day"`
	EndDay     int64   `json:"end_day"`
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Name == "" || req.TimelineID == "" {
		h.renderError(w, r, http.StatusBadRequest, "name and timeline_id are required", nil)
		return
	}

	event, err := h.store.CreateEvent(r.Context(), req.TimelineID, req.LocationID, req.Name, req.Summary, req.StartDay, req.EndDay)
	if err != nil {
		h.renderStoreError(w, r, "failed to create event", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, event)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.store.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.renderStoreError(w, r, "failed to get event", err)
		return
	}
	render.JSON(w, r, event)
}

// UpdateEvent rewrites an event; the timeline binding stays as created.
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Name == "" {
		h.renderError(w, r, http.StatusBadRequest, "name is required", nil)
		return
	}

	event, err := h.store.UpdateEvent(r.Context(), chi.URLParam(r, "id"), req.LocationID, req.Name, req.Summary, req.StartDay, req.EndDay)
	if err != nil {
		h.renderStoreError(w, r, "failed to update event", err)
		return
	}
	render.JSON(w, r, event)
}

// ListEvents returns the events of one timeline ordered by start day.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	timelineID := r.URL.Query().Get("timeline_id")
	if timelineID == "" {
		h.renderError(w, r, http.StatusBadRequest, "timeline_id query parameter is required", nil)
		return
	}

	limit, offset := pagination(r)
	events, err := h.store.ListEvents(r.Context(), timelineID, limit, offset)
	if err != nil {
		h.renderStoreError(w, r, "failed to list events", err)
		return
	}
	render.JSON(w, r, events)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.renderStoreError(w, r, "failed to delete event", err)
		return
	}
	render.NoContent(w, r)
}

func (h *Handler) AddEventParticipant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CharacterID string `json:"character_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CharacterID == "" {
		h.renderError(w, r, http.StatusBadRequest, "character_id is required", err)
		return
	}

	if err := h.store.AddEventParticipant(r.Context(), chi.URLParam(r, "id"), req.CharacterID); err != nil {
		h.renderStoreError(w, r, "failed to add event participant", err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]string{"status": "added"})
}

func (h *Handler) RemoveEventParticipant(w http.ResponseWriter, r *http.Request) {
	if err := h.store.RemoveEventParticipant(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "characterId")); err != nil {
		h.renderStoreError(w, r, "failed to remove event participant", err)
		return
	}
	render.NoContent(w, r)
}
