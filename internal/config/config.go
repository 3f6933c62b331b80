package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Map      MapConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// MapConfig sets the preview endpoint's defaults. The generator still
// clamps whatever it receives, so these only need to be sensible, not
// validated.
type MapConfig struct {
	PreviewWidth    int
	PreviewHeight   int
	DefaultSeaLevel float64
	DefaultClimate  string
}

type LoggingConfig struct {
	Level      string
	Format     string
	Structured bool
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            getEnvStr("PORT", "8080"),
			ReadTimeout:     getEnvDuration("READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:     getEnvDuration("IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Path:            getEnvStr("DB_PATH", "./loreweave.db"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Map: MapConfig{
			PreviewWidth:    getEnvInt("MAP_PREVIEW_WIDTH", 512),
			PreviewHeight:   getEnvInt("MAP_PREVIEW_HEIGHT", 512),
			DefaultSeaLevel: getEnvFloat("MAP_DEFAULT_SEA_LEVEL", 0.5),
			DefaultClimate:  getEnvStr("MAP_DEFAULT_CLIMATE", "temperate"),
		},
		Logging: LoggingConfig{
			Level:      getEnvStr("LOG_LEVEL", "info"),
			Format:     getEnvStr("LOG_FORMAT", "json"),
			Structured: getEnvBool("LOG_STRUCTURED", true),
		},
	}
}

func getEnvStr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
