package main

import (
	"fmt"
	"os"

	"boardapi/internal/config"
	"boardapi/internal/db"
	"boardapi/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// environment is what every command needs: a logger, config and an open
// database. close releases the database connection.
type environment struct {
	logger *zap.Logger
	cfg    config.Config
	db     *gorm.DB
}

func openEnvironment() (*environment, error) {
	logger, err := utils.NewLogger(os.Getenv("ENV"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	utils.LoadEnv(logger, envFile)
	cfg := config.LoadConfig()

	conn, err := db.Connect(&cfg, logger)
	if err != nil {
		return nil, err
	}
	return &environment{logger: logger, cfg: cfg, db: conn}, nil
}

func (e *environment) close() {
	if sqlDB, err := e.db.DB(); err == nil {
		sqlDB.Close()
	}
	e.logger.Sync()
}
