package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tarot345/internal/config"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tarot.log")
	closer, err := Init(config.LogConfig{Level: "debug", File: path, MaxMB: 1})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() {
		_ = closer.Close()
		_, _ = Init(config.LogConfig{Level: "info"})
	})

	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Fatalf("level = %s, want debug", zerolog.GlobalLevel())
	}
	log.Info().Str("hand", "h1").Msg("scores computed")

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), `"hand":"h1"`) {
		t.Fatalf("log file = %q", string(b))
	}
	if _, err := Writer().Write([]byte("raw\n")); err != nil {
		t.Fatalf("Writer().Write() error = %v", err)
	}
}

func TestInitUnknownLevelFallsBackToInfo(t *testing.T) {
	closer, err := Init(config.LogConfig{Level: "chatty"})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer closer.Close()
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Fatalf("level = %s, want info", zerolog.GlobalLevel())
	}
	if Writer() != os.Stdout {
		t.Fatal("Writer() should be stdout without a log file")
	}
}

func TestInitBadFile(t *testing.T) {
	_, err := Init(config.LogConfig{File: filepath.Join(t.TempDir(), "missing", "x.log")})
	if err == nil {
		t.Fatal("Init() expected error, got nil")
	}
}
