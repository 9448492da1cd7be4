package config

import "os"

// Config carries the handful of settings the server needs. Everything is
// read from the environment with development fallbacks.
type Config struct {
	Addr      string
	DBPath    string
	JWTSecret []byte
}

func Load() Config {
	return Config{
		Addr:      ":" + getEnv("POS_PORT", "8080"),
		DBPath:    getEnv("POS_DB", "restaurant_pos.db"),
		JWTSecret: []byte(getEnv("JWT_SECRET", "restaurant_pos_super_secret_2024")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
