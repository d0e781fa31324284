package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Pipeline
	WorkerCount    int
	MaxRanked      int
	RefineMaxChars int

	// Upload limits
	MaxUploadBytes int64
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8095"),

		WorkerCount:    envInt("WORKER_COUNT", 4),
		MaxRanked:      envInt("MAX_RANKED_SECTIONS", 15),
		RefineMaxChars: envInt("REFINE_MAX_CHARS", 1000),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxRanked <= 0 {
		cfg.MaxRanked = 15
	}
	if cfg.RefineMaxChars <= 0 {
		cfg.RefineMaxChars = 1000
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
