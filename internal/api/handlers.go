package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/render"

	"github.com/Loreweave/api/internal/config"
	"github.com/Loreweave/api/internal/mapgen"
	"github.com/Loreweave/api/internal/world"
)

// Handler bundles the entity store and the map generation coordinator
// behind the HTTP surface.
type Handler struct {
	store   *world.Store
	mapGen  *mapgen.Coordinator
	preview config.MapConfig
	version string
}

func NewHandler(store *world.Store, mapGen *mapgen.Coordinator, preview config.MapConfig) *Handler {
	return &Handler{
		store:   store,
		mapGen:  mapGen,
		preview: preview,
		version: "1.0.0",
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"service":   "loreweave-api",
		"version":   h.version,
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		log.Debug("Request failed", "status", status, "message", message, "error", err)
	}
	render.Status(r, status)
	render.JSON(w, r, map[string]interface{}{
		"error":  message,
		"status": status,
	})
}

// renderStoreError maps store errors to HTTP status codes.
func (h *Handler) renderStoreError(w http.ResponseWriter, r *http.Request, message string, err error) {
	if errors.Is(err, world.ErrNotFound) {
		h.renderError(w, r, http.StatusNotFound, "not found", err)
		return
	}
	log.Error(message, "error", err)
	h.renderError(w, r, http.StatusInternalServerError, message, err)
}

// pagination reads limit/offset query parameters with store-side defaults.
func pagination(r *http.Request) (limit, offset int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// namedRequest is the shared create/update payload for the simple entities.
type namedRequest struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

func (req *namedRequest) validate() error {
	if req.Name == "" {
		return errors.New("name is required")
	}
	return nil
}
