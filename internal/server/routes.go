package server

import (
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, deps Deps) {
	broker := NewBroker()
	sessions := NewRegistry(deps.Catalog, broker, deps.Store, deps.Logger)

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("GlobeQuiz API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(deps.Logger, deps.DB))

	r.Route("/api", func(r chi.Router) {
		r.Get("/modes", handleModes(deps.Catalog))
		r.Get("/questions", handleQuestions(deps.Catalog))
		r.Get("/leaderboard", handleLeaderboard(deps.Store))
		r.Get("/config", handleConfig(deps.Codec))

		r.Post("/sessions", handleCreateSession(sessions, deps.Codec))
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", handleSessionState(sessions))
			r.Post("/guess", handleGuess(sessions))
			r.Post("/pause", handlePause(sessions))
			r.Get("/events", handleEvents(sessions, broker))
			r.Get("/share", handleShare(sessions, deps.Codec, deps.BaseURL))
		})

		r.Post("/admin/login", handleAdminLogin(deps.Store))
		r.Post("/admin/logout", handleAdminLogout(deps.Store))
		r.Group(func(r chi.Router) {
			r.Use(adminAuthMiddleware(deps.Store))
			r.Get("/admin/me", handleAdminMe())
			r.Delete("/admin/leaderboard", handleResetLeaderboard(deps.Store))
		})
	})

	if deps.SPADir != "" {
		if info, err := os.Stat(deps.SPADir); err == nil && info.IsDir() {
			deps.Logger.Info("serving SPA", "dir", deps.SPADir)
			r.NotFound(handleSPA(deps.SPADir))
		}
	}
}
