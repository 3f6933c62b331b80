package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"github.com/Loreweave/api/internal/mapgen"
)

// MapPreview generates (or fetches from the coordinator's cache) the
// terrain layers for the supplied parameters. Missing parameters fall
// back to the configured preview defaults; out-of-range inputs are
// clamped, not rejected.
func (h *Handler) MapPreview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	width, err := strconv.Atoi(q.Get("width"))
	if err != nil {
		width = h.preview.PreviewWidth
	}
	height, err := strconv.Atoi(q.Get("height"))
	if err != nil {
		height = h.preview.PreviewHeight
	}
	seaLevel, err := strconv.ParseFloat(q.Get("sea_level"), 64)
	if err != nil {
		seaLevel = h.preview.DefaultSeaLevel
	}
	climate := q.Get("climate")
	if climate == "" {
		climate = h.preview.DefaultClimate
	}

	opts := mapgen.NewGenerationOptions(q.Get("seed"), width, height, seaLevel, climate)

	// The server-owned coordinator runs without a worker, so layers are
	// always ready here; the call blocks for the duration of a cache miss.
	layers, ready := h.mapGen.Request(opts)
	if !ready {
		h.renderError(w, r, http.StatusInternalServerError, "map generation unavailable", nil)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"options": opts,
		"layers":  layers,
	})
}
