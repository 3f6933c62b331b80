package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func (h *Handler) CreateTimeline(w http.ResponseWriter, r *http.Request) {
	var req namedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.validate(); err != nil {
		h.renderError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	timeline, err := h.store.CreateTimeline(r.Context(), req.Name, req.Summary)
	if err != nil {
		h.renderStoreError(w, r, "failed to create timeline", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, timeline)
}

func (h *Handler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	timeline, err := h.store.GetTimeline(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.renderStoreError(w, r, "failed to get timeline", err)
		return
	}
	render.JSON(w, r, timeline)
}

func (h *Handler) ListTimelines(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	timelines, err := h.store.ListTimelines(r.Context(), limit, offset)
	if err != nil {
		h.renderStoreError(w, r, "failed to list timelines", err)
		return
	}
	render.JSON(w, r, timelines)
}

func (h *Handler) UpdateTimeline(w http.ResponseWriter, r *http.Request) {
	var req namedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.validate(); err != nil {
		h.renderError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	timeline, err := h.store.UpdateTimeline(r.Context(), chi.URLParam(r, "id"), req.Name, req.Summary)
	if err != nil {
		h.renderStoreError(w, r, "failed to update timeline", err)
		return
	}
	render.JSON(w, r, timeline)
}

func (h *Handler) DeleteTimeline(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteTimeline(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.renderStoreError(w, r, "failed to delete timeline", err)
		return
	}
	render.NoContent(w, r)
}
