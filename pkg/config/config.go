package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v4"
)

type Config struct {
	Env         string      `yaml:"env"`
	Port        string      `yaml:"port"`
	DatabaseURL string      `yaml:"database_url"`
	Cache       CacheConfig `yaml:"cache"`
	LLM         LLMConfig   `yaml:"llm"`
}

type CacheConfig struct {
	RedisURL   string `yaml:"redis_url"`
	Size       int    `yaml:"size"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

type LLMConfig struct {
	Provider       string `yaml:"provider"` // "gateway" or "openai"
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func (c CacheConfig) TTL() time.Duration { return time.Duration(c.TTLSeconds) * time.Second }

func (c LLMConfig) Timeout() time.Duration { return time.Duration(c.TimeoutSeconds) * time.Second }

func (c Config) IsDevelopment() bool { return c.Env == "development" }

func defaults() Config {
	return Config{
		Env:  "development",
		Port: "8080",
		Cache: CacheConfig{
			Size:       256,
			TTLSeconds: 300,
		},
		LLM: LLMConfig{
			Provider:       "gateway",
			BaseURL:        "https://ai.gateway.lovable.dev/v1",
			Model:          "google/gemini-2.5-flash",
			TimeoutSeconds: 60,
		},
	}
}

// Load reads configuration: built-in defaults, then the optional YAML file
// named by CONFIG_FILE, then environment variables (optionally from .env).
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Env = getEnv("APP_ENV", cfg.Env)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)

	cfg.Cache.RedisURL = getEnv("REDIS_URL", cfg.Cache.RedisURL)
	cfg.Cache.Size = getEnvInt("SHARED_CACHE_SIZE", cfg.Cache.Size)
	cfg.Cache.TTLSeconds = getEnvInt("SHARED_CACHE_TTL_SECONDS", cfg.Cache.TTLSeconds)

	cfg.LLM.Provider = getEnv("LLM_PROVIDER", cfg.LLM.Provider)
	cfg.LLM.APIKey = getEnv("LOVABLE_API_KEY", getEnv("LLM_API_KEY", cfg.LLM.APIKey))
	cfg.LLM.BaseURL = getEnv("LLM_BASE_URL", cfg.LLM.BaseURL)
	cfg.LLM.Model = getEnv("LLM_MODEL", cfg.LLM.Model)
	cfg.LLM.TimeoutSeconds = getEnvInt("LLM_TIMEOUT_SECONDS", cfg.LLM.TimeoutSeconds)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
