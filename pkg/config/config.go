package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type Config struct {
	ListenAddr      string
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	UserStore       string
	DatabaseURL     string
	LedgerStore     string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	SeedDemoData    bool
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, falling back to OS environment")
	}

	cfg := &Config{
		ListenAddr:      getString("LISTEN_ADDR", ":8080"),
		JWTSecret:       getString("JWT_SECRET", ""),
		AccessTokenTTL:  time.Duration(getInt("ACCESS_TOKEN_TTL_MS", 900000)) * time.Millisecond,
		RefreshTokenTTL: time.Duration(getInt("REFRESH_TOKEN_TTL_MS", 86400000)) * time.Millisecond,
		UserStore:       getString("USER_STORE", StoreMemory),
		DatabaseURL:     getString("DATABASE_URL", ""),
		LedgerStore:     getString("LEDGER_STORE", StoreMemory),
		RedisAddr:       getString("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getString("REDIS_PASSWORD", ""),
		RedisDB:         getInt("REDIS_DB", 0),
		SeedDemoData:    getBool("SEED_DEMO_DATA"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required environment variable: JWT_SECRET")
	}
	if cfg.AccessTokenTTL <= 0 || cfg.RefreshTokenTTL <= 0 {
		return nil, fmt.Errorf("token lifetimes must be positive")
	}
	if cfg.UserStore != StoreMemory && cfg.UserStore != StorePostgres {
		return nil, fmt.Errorf("unknown USER_STORE: %s", cfg.UserStore)
	}
	if cfg.UserStore == StorePostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("USER_STORE=postgres requires DATABASE_URL")
	}
	if cfg.LedgerStore != StoreMemory && cfg.LedgerStore != StoreRedis {
		return nil, fmt.Errorf("unknown LEDGER_STORE: %s", cfg.LedgerStore)
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getInt(key string, fallback int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		fmt.Printf("Invalid int for %s: %s\n", key, valueStr)
		return fallback
	}
	return value
}

func getBool(key string) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && value
}
