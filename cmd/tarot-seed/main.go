// Command tarot-seed generates a synthetic score-sheet history. It writes
// the history as JSON when SEED_OUTPUT is set and imports it into Postgres
// otherwise.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"tarot345/internal/config"
	"tarot345/internal/game"
	"tarot345/internal/logging"
	"tarot345/internal/simulate"
	"tarot345/internal/stats"
	"tarot345/internal/store"
)

func main() {
	_ = godotenv.Load()

	logCfg, err := config.LoadLog()
	if err != nil {
		panic(err)
	}
	closer, err := logging.Init(logCfg)
	if err != nil {
		panic(err)
	}
	defer closer.Close()

	if err := run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadSeed()
	if err != nil {
		return fmt.Errorf("load seed config: %w", err)
	}
	rulesCfg, err := config.LoadRulesConfig()
	if err != nil {
		return fmt.Errorf("load rules config: %w", err)
	}
	rules, err := rulesCfg.Rules()
	if err != nil {
		return fmt.Errorf("load rules: %w", err)
	}

	h, err := generate(cfg, rules)
	if err != nil {
		return err
	}
	report, err := stats.Analyze(h)
	if err != nil {
		return err
	}
	log.Info().
		Int("games", report.Global.Games).
		Int("hands", report.Global.Hands).
		Int("players", len(report.Players)).
		Msg("history ready")

	if cfg.Output != "" {
		return writeHistory(cfg.Output, h)
	}
	if cfg.PostgresDSN == "" {
		return errors.New("either SEED_OUTPUT or POSTGRES_DSN must be set")
	}
	return importHistory(ctx, cfg.PostgresDSN, h)
}

func generate(cfg config.SeedConfig, rules game.Rules) (game.History, error) {
	gen, err := simulate.New(rules, simulate.Options{
		Games:      cfg.Games,
		MaxHands:   cfg.MaxHands,
		RosterSize: cfg.RosterSize,
		Seed:       cfg.Seed,
		End:        cfg.End,
	})
	if err != nil {
		return game.History{}, fmt.Errorf("init generator: %w", err)
	}
	return gen.History()
}

func writeHistory(path string, h game.History) error {
	b, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("history written")
	return nil
}

func importHistory(ctx context.Context, dsn string, h game.History) error {
	st, err := store.New(dsn)
	if err != nil {
		return fmt.Errorf("store init: %w", err)
	}
	defer st.Close()
	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := st.ImportHistory(ctx, h); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	log.Info().Int("games", len(h.Games)).Msg("history imported")
	return nil
}
