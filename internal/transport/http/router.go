package httptransport

import (
	"context"
	"expvar"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	apphistory "tarot345/internal/app/history"
	appscoring "tarot345/internal/app/scoring"
	"tarot345/internal/config"
	"tarot345/internal/game"
	"tarot345/internal/mcpserver"
)

// Backend is the persistence the router serves from. *store.Store satisfies
// it, as does the in-memory store used by tests.
type Backend interface {
	apphistory.Repository
	Ping(ctx context.Context) error
}

func NewRouter(db Backend, cfg config.ServerConfig, rules game.Rules) *chi.Mux {
	scoringSvc := appscoring.NewService(rules)
	historySvc := apphistory.NewService(db, rules)

	scoreHandlers := NewScoreHandlers(scoringSvc)
	historyHandlers := NewHistoryHandlers(historySvc)
	statsHandlers := NewStatsHandlers(historySvc)
	adminHandlers := NewAdminHandlers(db)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", adminHandlers.Health())

	if cfg.MCPEnabled {
		mcpSrv := mcpserver.New(scoringSvc, historySvc)
		r.With(APILogMiddleware()).MethodFunc(http.MethodOptions, "/mcp", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Allow", "POST, GET, DELETE, OPTIONS")
			w.WriteHeader(http.StatusNoContent)
		})
		r.With(APILogMiddleware()).Method(http.MethodPost, "/mcp", mcpSrv.Handler())
		r.With(APILogMiddleware()).Method(http.MethodGet, "/mcp", mcpSrv.Handler())
		r.With(APILogMiddleware()).Method(http.MethodDelete, "/mcp", mcpSrv.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())
		r.Use(MaxBodyMiddleware(cfg.MaxBodyKB))

		r.Get("/rules", scoreHandlers.Rules())
		r.Route("/scores", func(r chi.Router) {
			r.Use(BodyCaptureMiddleware(4096))
			r.Post("/compute", scoreHandlers.Compute())
			r.Post("/verify", scoreHandlers.Verify())
		})

		r.Get("/players", historyHandlers.Players())
		r.Post("/players", historyHandlers.CreatePlayer())
		r.Patch("/players/{player_id}", historyHandlers.RenamePlayer())

		r.Get("/games", historyHandlers.Games())
		r.Post("/games", historyHandlers.CreateGame())
		r.Get("/games/{game_id}", historyHandlers.Game())
		r.Post("/games/{game_id}/hands", historyHandlers.RecordHand())
		r.Put("/games/{game_id}/hands/{hand_id}", historyHandlers.UpdateHand())
		r.Delete("/games/{game_id}/hands/{hand_id}", historyHandlers.DeleteHand())

		r.Get("/stats", statsHandlers.Report())
		r.Get("/stats/players/{player_id}", statsHandlers.Player())
		r.Get("/stats/games/{game_id}", statsHandlers.Game())

		r.Get("/history", historyHandlers.Export())

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.AdminAPIKey))
			r.Delete("/players/{player_id}", historyHandlers.DeletePlayer())
			r.Delete("/games/{game_id}", historyHandlers.DeleteGame())
			r.Post("/history/import", historyHandlers.Import())

			r.Route("/debug", func(r chi.Router) {
				r.Use(BodyCaptureMiddleware(4096))
				r.Get("/vars", expvar.Handler().ServeHTTP)
			})
		})
	})
	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 32)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
