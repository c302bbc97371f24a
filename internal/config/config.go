package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	JWTIssuer string
	JWTSecret string

	LogLevel string
	LogFile  string

	CORSOrigins []string

	ShutdownTimeoutSec int
}

func Load() Config {
	return Config{
		AppEnv:   get("APP_ENV", "dev"),
		HTTPAddr: get("HTTP_ADDR", ":5000"),

		JWTIssuer: get("JWT_ISSUER", "storefront"),
		JWTSecret: get("JWT_SECRET", ""),

		LogLevel: get("LOG_LEVEL", "info"),
		LogFile:  get("LOG_FILE", ""),

		CORSOrigins: getList("CORS_ORIGINS", []string{"*"}),

		ShutdownTimeoutSec: getInt("SHUTDOWN_TIMEOUT_SEC", 10),
	}
}

func (c Config) IsProd() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production"
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

// getList splits a comma-separated value, dropping blanks.
func getList(k string, def []string) []string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
