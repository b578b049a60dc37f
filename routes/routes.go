package routes

import (
	"github.com/Dosada05/esports-db/handlers"
	"github.com/Dosada05/esports-db/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handlers struct {
	Auth           *handlers.AuthHandler
	Game           *handlers.GameHandler
	Tournament     *handlers.TournamentHandler
	Team           *handlers.TeamHandler
	Player         *handlers.PlayerHandler
	Match          *handlers.MatchHandler
	Standing       *handlers.StandingHandler
	TournamentTeam *handlers.TournamentTeamHandler
	Report         *handlers.ReportHandler
	Cabinet        *handlers.CabinetHandler
	Application    *handlers.ApplicationHandler
	Admin          *handlers.AdminHandler
	Health         *handlers.HealthHandler
}

// SetupRoutes вешает все маршруты API. Чтение открыто всем, записи в
// справочные сущности — только персоналу; кабинет и заявки требуют
// аутентификации.
func SetupRoutes(router *chi.Mux, auth *middleware.Authenticator, h Handlers, corsOrigins []string) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Recoverer)
	// Клиенты прежнего API шлют пути с завершающим слешем.
	router.Use(chiMiddleware.StripSlashes)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Use(auth.Authenticate)

	router.Get("/healthz", h.Health.Healthz)

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireUser)
				r.Post("/logout", h.Auth.Logout)
				r.Get("/me", h.Auth.Me)
				r.Patch("/me", h.Auth.UpdateMe)
				r.Post("/me/avatar", h.Auth.UploadAvatar)
			})
		})

		r.Route("/games", func(r chi.Router) {
			r.Get("/", h.Game.List)
			r.Get("/{id}", h.Game.GetByID)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Post("/", h.Game.Create)
				r.Put("/{id}", h.Game.Update)
				r.Delete("/{id}", h.Game.Delete)
			})
		})

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", h.Tournament.List)
			r.Get("/current", h.Tournament.ListCurrent)
			r.Get("/upcoming", h.Tournament.ListUpcoming)
			r.Get("/{id}", h.Tournament.GetByID)
			r.Get("/{id}/page", h.Tournament.Page)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Post("/", h.Tournament.Create)
				r.Put("/{id}", h.Tournament.Update)
				r.Delete("/{id}", h.Tournament.Delete)
			})
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", h.Team.List)
			r.Get("/{id}", h.Team.GetByID)
			r.Get("/{id}/roster", h.Team.Roster)
			r.Get("/{id}/current_tournaments", h.Team.CurrentTournaments)
			r.Get("/{id}/history", h.Team.History)
			r.Get("/{id}/recent_matches", h.Team.RecentMatches)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Post("/", h.Team.Create)
				r.Put("/{id}", h.Team.Update)
				r.Delete("/{id}", h.Team.Delete)
				r.Post("/{id}/logo", h.Team.UploadLogo)
			})
		})

		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.Player.List)
			r.Get("/{id}", h.Player.GetByID)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Post("/", h.Player.Create)
				r.Put("/{id}", h.Player.Update)
				r.Delete("/{id}", h.Player.Delete)
			})
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", h.Match.List)
			r.Get("/upcoming", h.Match.ListUpcoming)
			r.Get("/final_winner", h.Match.FinalWinner)
			r.Get("/{id}", h.Match.GetByID)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Post("/", h.Match.Create)
				r.Put("/{id}", h.Match.Update)
				r.Post("/{id}/result", h.Match.SetResult)
				r.Delete("/{id}", h.Match.Delete)
			})
		})

		r.Route("/standings", func(r chi.Router) {
			r.Get("/by_tournament", h.Standing.ByTournament)
			r.Get("/{id}", h.Standing.GetByID)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Post("/", h.Standing.Create)
				r.Put("/{id}", h.Standing.Update)
				r.Delete("/{id}", h.Standing.Delete)
			})
		})

		r.Route("/tournament-teams", func(r chi.Router) {
			r.Get("/", h.TournamentTeam.List)
			r.Get("/roster_by_tournament", h.TournamentTeam.RosterByTournament)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Post("/", h.TournamentTeam.Create)
				r.Delete("/{id}", h.TournamentTeam.Delete)
			})
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/popular-teams", h.Report.PopularTeams)
			r.Get("/tournaments-by-game", h.Report.TournamentsByGame)
		})

		r.Route("/me", func(r chi.Router) {
			r.Use(middleware.RequireUser)

			r.Route("/favorites", func(r chi.Router) {
				r.Get("/tournaments", h.Cabinet.ListFavoriteTournaments)
				r.Post("/tournaments", h.Cabinet.AddFavoriteTournament)
				r.Delete("/tournaments/{id}", h.Cabinet.RemoveFavoriteTournament)

				r.Get("/teams", h.Cabinet.ListFavoriteTeams)
				r.Post("/teams", h.Cabinet.AddFavoriteTeam)
				r.Delete("/teams/{id}", h.Cabinet.RemoveFavoriteTeam)
			})

			r.Get("/history", h.Cabinet.ListHistory)
			r.Post("/history", h.Cabinet.AddHistory)

			r.Get("/applications", h.Application.ListOwn)
			r.Post("/applications", h.Application.Submit)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireStaff)

			r.Get("/dashboard", h.Admin.Dashboard)
			r.Post("/teams/{id}/approve", h.Admin.ApproveTeam)

			r.Get("/applications", h.Application.ListPending)
			r.Post("/applications/{id}/decide", h.Application.Decide)
		})
	})
}
