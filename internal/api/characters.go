package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func (h *Handler) CreateCharacter(w http.ResponseWriter, r *http.Request) {
	var req namedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.validate(); err != nil {
		h.renderError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	character, err := h.store.CreateCharacter(r.Context(), req.Name, req.Summary)
	if err != nil {
		h.renderStoreError(w, r, "failed to create character", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, character)
}

func (h *Handler) GetCharacter(w http.ResponseWriter, r *http.Request) {
	character, err := h.store.GetCharacter(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.renderStoreError(w, r, "failed to get character", err)
		return
	}
	render.JSON(w, r, character)
}

func (h *Handler) ListCharacters(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	characters, err := h.store.ListCharacters(r.Context(), limit, offset)
	if err != nil {
		h.renderStoreError(w, r, "failed to list characters", err)
		return
	}
	render.JSON(w, r, characters)
}

func (h *Handler) UpdateCharacter(w http.ResponseWriter, r *http.Request) {
	var req namedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.validate(); err != nil {
		h.renderError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	character, err := h.store.UpdateCharacter(r.Context(), chi.URLParam(r, "id"), req.Name, req.Summary)
	if err != nil {
		h.renderStoreError(w, r, "failed to update character", err)
		return
	}
	render.JSON(w, r, character)
}

func (h *Handler) DeleteCharacter(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteCharacter(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.renderStoreError(w, r, "failed to delete character", err)
		return
	}
	render.NoContent(w, r)
}
