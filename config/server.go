package config

import (
	"time"

	"main/utils"
)

type ServerConfig struct {
	Port            string
	MaxRequestSize  int64
	ListCacheMaxAge int
	ShutdownTimeout time.Duration
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Port:            utils.GetEnvAsString("PORT", "8080"),
		MaxRequestSize:  utils.GetEnvAsInt64("MAX_REQUEST_SIZE", 1<<20),
		ListCacheMaxAge: utils.GetEnvAsInt("LIST_CACHE_MAX_AGE", 0),
		ShutdownTimeout: utils.GetEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}
