package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)

		r.Post("/register", h.register)
		r.Post("/login", h.login)

		r.Get("/players/search", h.searchPlayers)
		r.Get("/players/{id:[0-9]+}", h.getPlayer)
		r.Get("/teams/search", h.searchTeams)
		r.Get("/teams/{id:[0-9]+}", h.getTeam)

		r.Get("/top-players", h.topPlayers)
		r.Get("/top-teams", h.topTeams)
	})

	// routes behind the JWT guard
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/{id:[0-9]+}", h.getUser)
		r.Put("/users/{id:[0-9]+}", h.updateUser)
		r.Delete("/users/{id:[0-9]+}", h.deleteUser)

		r.Post("/users/{id:[0-9]+}/favorites/players", h.addFavoritePlayer)
		r.Delete("/users/{id:[0-9]+}/favorites/players", h.removeFavoritePlayer)
		r.Post("/users/{id:[0-9]+}/favorites/teams", h.addFavoriteTeam)
		r.Delete("/users/{id:[0-9]+}/favorites/teams", h.removeFavoriteTeam)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
