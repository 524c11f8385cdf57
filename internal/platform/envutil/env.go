package envutil

import (
	"os"
	"strconv"

	"github.com/ideaforge/ideaforge-backend/internal/platform/logger"
)

func GetEnv(key, defaultVal string, log *logger.Logger) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	if log != nil {
		log.Debug("env var missing, using default", "key", key, "default", defaultVal)
	}
	return defaultVal
}

func GetEnvAsInt(key string, defaultVal int, log *logger.Logger) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		if log != nil {
			log.Debug("env var missing, using default", "key", key, "default", defaultVal)
		}
		return defaultVal
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		if log != nil {
			log.Warn("env var not an int, using default", "key", key, "value", raw, "default", defaultVal)
		}
		return defaultVal
	}
	return v
}
