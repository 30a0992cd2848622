package handler

import (
	"github.com/go-chi/chi/v5"
)

// Handlers bundles everything the route tree needs.
type Handlers struct {
	Chat       *ChatHandler
	Chats      *ChatsHandler
	Stats      *StatsHandler
	Auth       *AuthHandler
	Assistants *AssistantsHandler
	Health     *HealthHandler
}

// Router builds the route tree. Every route is mounted both at the
// root and under /api, since deployed clients use both prefixes.
func Router(h Handlers) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Health.Root)
	mountRoutes(r, h)

	r.Route("/api", func(api chi.Router) {
		api.Get("/", h.Health.APIRoot)
		mountRoutes(api, h)
	})

	return r
}

func mountRoutes(r chi.Router, h Handlers) {
	r.Get("/health", h.Health.Health)
	r.Get("/health/db", h.Health.HealthDB)

	r.Get("/assistants", h.Assistants.List)

	r.Post("/auth/identity", h.Auth.Exchange)
	r.Post("/auth/google", h.Auth.Exchange)

	r.Post("/chat/{assistant_key}", h.Chat.ChatByKey)
	r.Post("/ai/{assistant_id}", h.Chat.ChatByID)

	r.Post("/chats", h.Chats.Create)
	r.Put("/chats/{chat_id}", h.Chats.Update)
	r.Get("/chats/user/{user_id}", h.Chats.List)
	r.Delete("/chats/user/{user_id}/all", h.Chats.DeleteAll)
	r.Get("/chats/{chat_id}", h.Chats.Get)
	r.Get("/chats/{chat_id}/messages", h.Chats.Messages)
	r.Delete("/chats/{chat_id}", h.Chats.Delete)

	r.Get("/stats/user/{user_id}", h.Stats.Stats)
	r.Get("/stats/chart/user/{user_id}", h.Stats.Chart)
}
