package main

import (
	"github.com/go-chi/chi/v5"

	"tarot345/internal/config"
	"tarot345/internal/game"
	httptransport "tarot345/internal/transport/http"
)

func newRouter(db httptransport.Backend, cfg config.ServerConfig, rules game.Rules) *chi.Mux {
	return httptransport.NewRouter(db, cfg, rules)
}

func logRoutes(r chi.Router) {
	httptransport.LogRoutes(r)
}
