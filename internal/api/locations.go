package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type locationRequest struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
	MapSeed string `json:"map_seed"`
}

func (h *Handler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Name == "" {
		h.renderError(w, r, http.StatusBadRequest, "name is required", nil)
		return
	}

	location, err := h.store.CreateLocation(r.Context(), req.Name, req.Summary, req.MapSeed)
	if err != nil {
		h.renderStoreError(w, r, "failed to create location", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, location)
}

func (h *Handler) GetLocation(w http.ResponseWriter, r *http.Request) {
	location, err := h.store.GetLocation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.renderStoreError(w, r, "failed to get location", err)
		return
	}
	render.JSON(w, r, location)
}

func (h *Handler) ListLocations(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	locations, err := h.store.ListLocations(r.Context(), limit, offset)
	if err != nil {
		h.renderStoreError(w, r, "failed to list locations", err)
		return
	}
	render.JSON(w, r, locations)
}

func (h *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Name == "" {
		h.renderError(w, r, http.StatusBadRequest, "name is required", nil)
		return
	}

	location, err := h.store.UpdateLocation(r.Context(), chi.URLParam(r, "id"), req.Name, req.Summary, req.MapSeed)
	if err != nil {
		h.renderStoreError(w, r, "failed to update location", err)
		return
	}
	render.JSON(w, r, location)
}

func (h *Handler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteLocation(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.renderStoreError(w, r, "failed to delete location", err)
		return
	}
	render.NoContent(w, r)
}
