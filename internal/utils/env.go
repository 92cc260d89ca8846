package utils

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// LoadEnv loads the given dotenv files, ".env" when none are named.
// Missing files are not fatal: the process falls back to its environment.
func LoadEnv(logger *zap.Logger, files ...string) {
	if err := godotenv.Load(files...); err != nil {
		logger.Warn("ENV file not found or failed to load, using defaults", zap.Strings("files", files))
		return
	}
	logger.Info("ENV file loaded successfully")
}
