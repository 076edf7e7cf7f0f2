package main

import (
	"context"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"tarot345/internal/config"
	"tarot345/internal/logging"
	"tarot345/internal/store"
)

func main() {
	// A missing .env is fine; the environment wins over the file.
	_ = godotenv.Load()

	cfg, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	closer, err := logging.Init(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer closer.Close()

	rules, err := cfg.Rules.Rules()
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Rules.Path).Msg("load rules failed")
	}

	st, err := store.New(cfg.Server.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}
	defer st.Close()
	ctx := context.Background()
	if err := st.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("db ping failed")
	}
	if err := st.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}

	r := newRouter(st, cfg.Server, rules)
	logRoutes(r)

	server := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.Server.HTTPAddr).Bool("mcp", cfg.Server.MCPEnabled).Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}
