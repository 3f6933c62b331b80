package api

import (
	"net/http"

	"github.com/go-chi/render"
)

func (h *Handler) TemporalOverlapsReport(w http.ResponseWriter, r *http.Request) {
	overlaps, err := h.store.TemporalOverlaps(r.Context())
	if err != nil {
		h.renderStoreError(w, r, "failed to build temporal overlap report", err)
		return
	}
	render.JSON(w, r, overlaps)
}

func (h *Handler) OrphansReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.store.Orphans(r.Context())
	if err != nil {
		h.renderStoreError(w, r, "failed to build orphan report", err)
		return
	}
	render.JSON(w, r, report)
}
