package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.Width != 320 || cfg.Game.Height != 240 {
		t.Errorf("playfield = %vx%v, want 320x240", cfg.Game.Width, cfg.Game.Height)
	}
	if cfg.Game.TickRate != 60 {
		t.Errorf("TickRate = %d, want 60", cfg.Game.TickRate)
	}
	if cfg.Game.Lives != 3 {
		t.Errorf("Lives = %d, want 3", cfg.Game.Lives)
	}
	if cfg.Scoreboard.Backend != BackendNone {
		t.Errorf("Backend = %q, want %q", cfg.Scoreboard.Backend, BackendNone)
	}
	if cfg.Scoreboard.Timeout != 2*time.Second {
		t.Errorf("Timeout = %v, want 2s", cfg.Scoreboard.Timeout)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brickbreaker.yaml")
	data := []byte(`
game:
  lives: 5
  start_level: 2
display:
  show_stats: true
scoreboard:
  backend: redis
  redis:
    addr: "cache:6380"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.Lives != 5 || cfg.Game.StartLevel != 2 {
		t.Errorf("game = %+v", cfg.Game)
	}
	if !cfg.Display.ShowStats {
		t.Error("ShowStats should be true")
	}
	if cfg.Scoreboard.Backend != BackendRedis || cfg.Scoreboard.Redis.Addr != "cache:6380" {
		t.Errorf("scoreboard = %+v", cfg.Scoreboard)
	}
	// Unset keys keep defaults
	if cfg.Scoreboard.Redis.Key != "brickbreaker:scores" {
		t.Errorf("Redis.Key = %q", cfg.Scoreboard.Redis.Key)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BRICKBREAKER_GAME_LIVES", "7")
	t.Setenv("BRICKBREAKER_SCOREBOARD_BACKEND", "postgres")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.Lives != 7 {
		t.Errorf("Lives = %d, want 7", cfg.Game.Lives)
	}
	if cfg.Scoreboard.Backend != BackendPostgres {
		t.Errorf("Backend = %q, want postgres", cfg.Scoreboard.Backend)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Game.Width = 0 }},
		{"zero tick rate", func(c *Config) { c.Game.TickRate = 0 }},
		{"no lives", func(c *Config) { c.Game.Lives = 0 }},
		{"level zero", func(c *Config) { c.Game.StartLevel = 0 }},
		{"cell size", func(c *Config) { c.Display.CellHeight = -1 }},
		{"loud", func(c *Config) { c.Audio.Volume = 1.5 }},
		{"sample rate", func(c *Config) { c.Audio.SampleRate = 0 }},
		{"backend", func(c *Config) { c.Scoreboard.Backend = "sqlite" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{Scoreboard: ScoreboardConfig{Postgres: PostgresConfig{
		Host: "db", Port: 5433, User: "u", Password: "p", DBName: "bb", SSLMode: "disable",
	}}}
	want := "host=db port=5433 user=u password=p dbname=bb sslmode=disable"
	if got := cfg.PostgresDSN(); got != want {
		t.Errorf("PostgresDSN = %q, want %q", got, want)
	}
}
