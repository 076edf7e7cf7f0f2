package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"

	"tarot345/internal/config"
	"tarot345/internal/game"
)

func TestGenerateAndWriteHistory(t *testing.T) {
	cfg := config.SeedConfig{Games: 3, MaxHands: 4, RosterSize: 6, Seed: 11}
	h, err := generate(cfg, game.DefaultRules())
	if err != nil {
		t.Fatalf("generate() error = %v", err)
	}
	path := filepath.Join(t.TempDir(), "history.json")
	if err := writeHistory(path, h); err != nil {
		t.Fatalf("writeHistory() error = %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var back game.History
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back.Games) != 3 || back.Games[0].ID != h.Games[0].ID {
		t.Fatalf("unexpected history: %d games", len(back.Games))
	}
}

func TestGenerateRejectsBadConfig(t *testing.T) {
	if _, err := generate(config.SeedConfig{Games: 1, MaxHands: 0, RosterSize: 6}, game.DefaultRules()); err == nil {
		t.Fatal("expected error")
	}
}

func TestRunWritesOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	t.Setenv("SEED_OUTPUT", path)
	t.Setenv("SEED_GAMES", "2")
	if err := run(t.Context()); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}

func TestRunIsReproducible(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SEED_GAMES", "3")
	var outputs [][]byte
	for _, name := range []string{"first.json", "second.json"} {
		path := filepath.Join(dir, name)
		t.Setenv("SEED_OUTPUT", path)
		if err := run(t.Context()); err != nil {
			t.Fatalf("run() error = %v", err)
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		outputs = append(outputs, raw)
	}
	if !bytes.Equal(outputs[0], outputs[1]) {
		t.Fatal("two runs with the same seed wrote different histories")
	}
}
