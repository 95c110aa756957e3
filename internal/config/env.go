// internal/config/env.go
package config

import (
	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config — настройки, которые можно поменять без пересборки (через переменные окружения)
type Config struct {
	Seed          int64  `config:"MARCH_SEED"` // 0 — сид от текущего времени
	ScoreStore    string `config:"MARCH_SCORE_STORE"`
	ScoreFile     string `config:"MARCH_SCORE_FILE"`
	RedisAddr     string `config:"MARCH_REDIS_ADDR"`
	RedisPassword string `config:"MARCH_REDIS_PASSWORD"`
	LogLevel      string `config:"MARCH_LOG_LEVEL"`
	LogPretty     bool   `config:"MARCH_LOG_PRETTY"`
	LogFile       string `config:"MARCH_LOG_FILE"` // пусто — stderr
	DefsDir       string `config:"MARCH_DEFS_DIR"` // пусто — встроенные определения
	Pprof         string `config:"MARCH_PPROF"`    // адрес pprof, пусто — выключен
}

// Default возвращает настройки по умолчанию
func Default() Config {
	return Config{
		ScoreStore: StoreFile,
		ScoreFile:  "mongol-march-score.json",
		RedisAddr:  "localhost:6379",
		LogLevel:   "info",
		LogPretty:  true,
	}
}

// Load накладывает переменные окружения поверх Default.
func Load() (Config, error) {
	cfg := Default()
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "failed to load config from env")
	}
	switch cfg.ScoreStore {
	case StoreFile, StoreRedis, StoreMemory:
	default:
		return Config{}, eris.Errorf("unknown score store %q", cfg.ScoreStore)
	}
	return cfg, nil
}
