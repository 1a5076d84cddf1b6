package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr   string
	GinMode   string
	JWTSecret string

	DB DBConfig
}

// DBConfig holds the recognized backing-store options: host, user,
// password and database name. There are no other tunables.
type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		jwtSecret = "super-secret-key-change-me"
	}

	return Env{
		AppAddr:   appAddr,
		GinMode:   ginMode,
		JWTSecret: jwtSecret,
		DB:        LoadDBConfig(),
	}
}

func LoadDBConfig() DBConfig {
	return DBConfig{
		Host:     envOr("DB_HOST", "127.0.0.1:3306"),
		User:     envOr("DB_USER", "root"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     envOr("DB_NAME", "bus_booking_system"),
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
