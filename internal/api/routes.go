package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func SetupRoutes(handler *Handler) *chi.Mux {
	r := chi.NewRouter()

	for _, middleware := range SetupMiddleware() {
		r.Use(middleware)
	}

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/health", handler.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/characters", func(r chi.Router) {
			r.Post("/", handler.CreateCharacter)
			r.Get("/", handler.ListCharacters)
			r.Get("/{id}", handler.GetCharacter)
			r.Put("/{id}", handler.UpdateCharacter)
			r.Delete("/{id}", handler.DeleteCharacter)
		})

		r.Route("/factions", func(r chi.Router) {
			r.Post("/", handler.CreateFaction)
			r.Get("/", handler.ListFactions)
			r.Get("/{id}", handler.GetFaction)
			r.Put("/{id}", handler.UpdateFaction)
			r.Delete("/{id}", handler.DeleteFaction)
			r.Post("/{id}/members", handler.AddFactionMember)
			r.Delete("/{id}/members/{characterId}", handler.RemoveFactionMember)
		})

		r.Route("/locations", func(r chi.Router) {
			r.Post("/", handler.CreateLocation)
			r.Get("/", handler.ListLocations)
			r.Get("/{id}", handler.GetLocation)
			r.Put("/{id}", handler.UpdateLocation)
			r.Delete("/{id}", handler.DeleteLocation)
		})

		r.Route("/timelines", func(r chi.Router) {
			r.Post("/", handler.CreateTimeline)
			r.Get("/", handler.ListTimelines)
			r.Get("/{id}", handler.GetTimeline)
			r.Put("/{id}", handler.UpdateTimeline)
			r.Delete("/{id}", handler.DeleteTimeline)
		})

		r.Route("/events", func(r chi.Router) {
			r.Post("/", handler.CreateEvent)
			r.Get("/", handler.ListEvents)
			r.Get("/{id}", handler.GetEvent)
			r.Put("/{id}", handler.UpdateEvent)
			r.Delete("/{id}", handler.DeleteEvent)
			r.Post("/{id}/participants", handler.AddEventParticipant)
			r.Delete("/{id}/participants/{characterId}", handler.RemoveEventParticipant)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/temporal-overlaps", handler.TemporalOverlapsReport)
			r.Get("/orphans", handler.OrphansReport)
		})

		r.Get("/map/preview", handler.MapPreview)
	})

	return r
}
