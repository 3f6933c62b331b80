package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func (h *Handler) CreateFaction(w http.ResponseWriter, r *http.Request) {
	var req namedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.validate(); err != nil {
		h.renderError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	faction, err := h.store.CreateFaction(r.Context(), req.Name, req.Summary)
	if err != nil {
		h.renderStoreError(w, r, "failed to create faction", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, faction)
}

func (h *Handler) GetFaction(w http.ResponseWriter, r *http.Request) {
	faction, err := h.store.GetFaction(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.renderStoreError(w, r, "failed to get faction", err)
		return
	}
	render.JSON(w, r, faction)
}

func (h *Handler) ListFactions(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	factions, err := h.store.ListFactions(r.Context(), limit, offset)
	if err != nil {
		h.renderStoreError(w, r, "failed to list factions", err)
		return
	}
	render.JSON(w, r, factions)
}

func (h *Handler) UpdateFaction(w http.ResponseWriter, r *http.Request) {
	var req namedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.validate(); err != nil {
		h.renderError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	faction, err := h.store.UpdateFaction(r.Context(), chi.URLParam(r, "id"), req.Name, req.Summary)
	if err != nil {
		h.renderStoreError(w, r, "failed to update faction", err)
		return
	}
	render.JSON(w, r, faction)
}

func (h *Handler) DeleteFaction(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteFaction(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.renderStoreError(w, r, "failed to delete faction", err)
		return
	}
	render.NoContent(w, r)
}

func (h *Handler) AddFactionMember(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CharacterID string `json:"character_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CharacterID == "" {
		h.renderError(w, r, http.StatusBadRequest, "character_id is required", err)
		return
	}

	if err := h.store.AddFactionMember(r.Context(), chi.URLParam(r, "id"), req.CharacterID); err != nil {
		h.renderStoreError(w, r, "failed to add faction member", err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]string{"status": "added"})
}

func (h *Handler) RemoveFactionMember(w http.ResponseWriter, r *http.Request) {
	if err := h.store.RemoveFactionMember(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "characterId")); err != nil {
		h.renderStoreError(w, r, "failed to remove faction member", err)
		return
	}
	render.NoContent(w, r)
}
