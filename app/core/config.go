package core

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/seriousplay/MegaSpace/app/core/srv"
	"github.com/seriousplay/MegaSpace/pkg/auth"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}
	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}

	return *conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr     string      `toml:"addr"`
	Log      Log         `toml:"log"`
	Postgres PGConfig    `toml:"postgres"`
	Redis    RedisConfig `toml:"redis"`

	Identity auth.IdentityServiceConfig `toml:"identity"`
	AI       srv.AIConfig               `toml:"ai"`
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("MEGASPACE_API_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Postgres.FromENV()
	c.Redis.FromENV()

	c.Identity.Mode = os.Getenv("MEGASPACE_IDENTITY_MODE")
	c.Identity.Endpoint = os.Getenv("MEGASPACE_IDENTITY_ENDPOINT")
	c.Identity.ServiceKey = os.Getenv("MEGASPACE_IDENTITY_SERVICE_KEY")
	c.Identity.PublicKeyPath = os.Getenv("MEGASPACE_IDENTITY_PUBLIC_KEY_PATH")

	c.AI.Driver = os.Getenv("MEGASPACE_AI_DRIVER")
	c.AI.Token = os.Getenv("MEGASPACE_AI_TOKEN")
	c.AI.Endpoint = os.Getenv("MEGASPACE_AI_ENDPOINT")
	c.AI.ChatModel = os.Getenv("MEGASPACE_AI_CHAT_MODEL")
}

type PGConfig struct {
	DSN string `toml:"dsn"`
}

func (m *PGConfig) FromENV() {
	m.DSN = os.Getenv("MEGASPACE_POSTGRESQL_DSN")
}

func (c PGConfig) FormatDSN() string {
	return c.DSN
}

type RedisConfig struct {
	Addr     string `toml:"addr"` // host:port
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

func (r *RedisConfig) FromENV() {
	r.Addr = os.Getenv("MEGASPACE_REDIS_ADDR")
	r.Password = os.Getenv("MEGASPACE_REDIS_PASSWORD")
	if dbStr := os.Getenv("MEGASPACE_REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			r.DB = db
		}
	}
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("MEGASPACE_LOG_LEVEL")
	l.Path = os.Getenv("MEGASPACE_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
