package config

import (
	"log"
	"os"
	"time"
)

type Config struct {
	AppPort string

	PostgresDSN string
	RedisAddr   string

	CronSpec     string
	FetchTimeout time.Duration

	// AI 供应商：Google 直连 key 可选；OpenRouter 支持至多三个备用 key
	GoogleAPIKey   string
	OpenRouterKeys []string
	SiteURL        string
}

func Load() *Config {
	cfg := &Config{
		AppPort:      getEnv("APP_PORT", "9000"),
		PostgresDSN:  getEnv("POSTGRES_DSN", "host=localhost user=newspulse password=newspulse dbname=newspulse port=5432 sslmode=disable TimeZone=UTC"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6380"),
		CronSpec:     getEnv("CRON_SPEC", "*/30 * * * *"),
		FetchTimeout: getDurationEnv("FETCH_TIMEOUT", 12*time.Second),
		GoogleAPIKey: os.Getenv("GOOGLE_API_KEY"),
		SiteURL:      getEnv("SITE_URL", "http://localhost:9000"),
	}

	for _, key := range []string{"OPENROUTER_API_KEY", "OPENROUTER_API_KEY2", "OPENROUTER_API_KEY3"} {
		if v := os.Getenv(key); v != "" {
			cfg.OpenRouterKeys = append(cfg.OpenRouterKeys, v)
		}
	}

	log.Printf("config loaded: port=%s cron=%s fetch_timeout=%s openrouter_keys=%d",
		cfg.AppPort, cfg.CronSpec, cfg.FetchTimeout, len(cfg.OpenRouterKeys))
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("warn: invalid %s=%q, using default %s", key, v, def)
		return def
	}
	return d
}

// Now returns current time, 方便后续做可测试封装
func Now() time.Time {
	return time.Now()
}
