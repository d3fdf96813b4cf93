// Package config loads runtime settings from an optional file, environment and defaults
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. BRICKBREAKER_GAME_LIVES
const EnvPrefix = "BRICKBREAKER"

// Scoreboard backends
const (
	BackendNone     = "none"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config is the full runtime configuration
type Config struct {
	Game       GameConfig       `mapstructure:"game"`
	Display    DisplayConfig    `mapstructure:"display"`
	Audio      AudioConfig      `mapstructure:"audio"`
	Scoreboard ScoreboardConfig `mapstructure:"scoreboard"`
}

// GameConfig sizes the playfield and run
type GameConfig struct {
	Width      float64 `mapstructure:"width"`
	Height     float64 `mapstructure:"height"`
	TickRate   int     `mapstructure:"tick_rate"`
	StartLevel int     `mapstructure:"start_level"`
	Lives      int     `mapstructure:"lives"`

	// LevelsDir overrides built-in levels with <id>.txt files when set
	LevelsDir string `mapstructure:"levels_dir"`
}

// DisplayConfig maps pixels onto terminal cells
type DisplayConfig struct {
	CellWidth  float64 `mapstructure:"cell_width"`
	CellHeight float64 `mapstructure:"cell_height"`
	ShowStats  bool    `mapstructure:"show_stats"`
}

// AudioConfig controls sound playback
type AudioConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	Volume     float64 `mapstructure:"volume"`
	SampleRate int     `mapstructure:"sample_rate"`
}

// ScoreboardConfig selects and configures score storage
type ScoreboardConfig struct {
	Backend  string         `mapstructure:"backend"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Timeout  time.Duration  `mapstructure:"timeout"`
}

// RedisConfig is the leaderboard cache connection
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Key      string `mapstructure:"key"`
}

// PostgresConfig is the run history connection
type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN returns the lib/pq connection string
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// PostgresDSN returns the scoreboard postgres connection string
func (c *Config) PostgresDSN() string {
	return c.Scoreboard.Postgres.DSN()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.width", 320.0)
	v.SetDefault("game.height", 240.0)
	v.SetDefault("game.tick_rate", 60)
	v.SetDefault("game.start_level", 1)
	v.SetDefault("game.lives", 3)
	v.SetDefault("game.levels_dir", "")

	v.SetDefault("display.cell_width", 4.0)
	v.SetDefault("display.cell_height", 6.5)
	v.SetDefault("display.show_stats", false)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)
	v.SetDefault("audio.sample_rate", 44100)

	v.SetDefault("scoreboard.backend", BackendNone)
	v.SetDefault("scoreboard.redis.addr", "localhost:6379")
	v.SetDefault("scoreboard.redis.password", "")
	v.SetDefault("scoreboard.redis.db", 0)
	v.SetDefault("scoreboard.redis.key", "brickbreaker:scores")
	v.SetDefault("scoreboard.postgres.host", "localhost")
	v.SetDefault("scoreboard.postgres.port", 5432)
	v.SetDefault("scoreboard.postgres.user", "brickbreaker")
	v.SetDefault("scoreboard.postgres.password", "")
	v.SetDefault("scoreboard.postgres.dbname", "brickbreaker")
	v.SetDefault("scoreboard.postgres.sslmode", "disable")
	v.SetDefault("scoreboard.timeout", 2*time.Second)
}

// Load reads configuration from path (optional), BRICKBREAKER_* environment, and defaults
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Validate rejects settings the game cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Game.Width <= 0 || c.Game.Height <= 0:
		return fmt.Errorf("%w: playfield %vx%v", ErrInvalid, c.Game.Width, c.Game.Height)
	case c.Game.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate %d", ErrInvalid, c.Game.TickRate)
	case c.Game.Lives <= 0:
		return fmt.Errorf("%w: lives %d", ErrInvalid, c.Game.Lives)
	case c.Game.StartLevel <= 0:
		return fmt.Errorf("%w: start_level %d", ErrInvalid, c.Game.StartLevel)
	case c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0:
		return fmt.Errorf("%w: cell size %vx%v", ErrInvalid, c.Display.CellWidth, c.Display.CellHeight)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: volume %v", ErrInvalid, c.Audio.Volume)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample_rate %d", ErrInvalid, c.Audio.SampleRate)
	}
	switch c.Scoreboard.Backend {
	case BackendNone, BackendRedis, BackendPostgres:
	default:
		return fmt.Errorf("%w: scoreboard backend %q", ErrInvalid, c.Scoreboard.Backend)
	}
	return nil
}
